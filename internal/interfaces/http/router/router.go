package router

import (
	"github.com/gin-gonic/gin"
)

const apiVersion = "v1"

// RouteRegistrar is implemented by every handler that mounts routes.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts registrars under /api/v1. Protected registrars share the
// authentication middleware; public ones (health, login) skip it.
type Router struct {
	engine      *gin.Engine
	requireAuth gin.HandlerFunc
	public      []RouteRegistrar
	protected   []RouteRegistrar
}

func New(engine *gin.Engine, requireAuth gin.HandlerFunc) *Router {
	return &Router{engine: engine, requireAuth: requireAuth}
}

func (r *Router) RegisterPublic(registrars ...RouteRegistrar) *Router {
	r.public = append(r.public, registrars...)
	return r
}

func (r *Router) RegisterProtected(registrars ...RouteRegistrar) *Router {
	r.protected = append(r.protected, registrars...)
	return r
}

// Setup mounts every registered handler and returns the engine.
func (r *Router) Setup() *gin.Engine {
	api := r.engine.Group("/api/" + apiVersion)
	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	authed := api.Group("", r.requireAuth)
	for _, registrar := range r.protected {
		registrar.RegisterRoutes(authed)
	}
	return r.engine
}
