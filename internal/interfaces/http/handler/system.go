package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping() error
}

// SystemHandler serves the unauthenticated health probe.
type SystemHandler struct {
	BaseHandler
	db      Pinger
	started time.Time
}

func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db, started: time.Now()}
}

func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
	}

	payload := gin.H{
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	}
	if status != "ok" {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("UNHEALTHY", "One or more dependencies are unreachable"))
		return
	}
	h.Success(c, "Service healthy", payload)
}
