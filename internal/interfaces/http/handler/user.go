package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shopadmin/backend/internal/application/identity"
)

// UserHandler serves staff account administration. Role and status
// changes are restricted to admins at registration time.
type UserHandler struct {
	BaseHandler
	userService  *identity.UserService
	requireAdmin gin.HandlerFunc
}

func NewUserHandler(userService *identity.UserService, requireAdmin gin.HandlerFunc) *UserHandler {
	return &UserHandler{userService: userService, requireAdmin: requireAdmin}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/admin/users")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.requireAdmin, h.Create)
	group.PATCH("/:id/role", h.requireAdmin, h.ChangeRole)
	group.PATCH("/:id/status", h.requireAdmin, h.ChangeStatus)
}

func (h *UserHandler) List(c *gin.Context) {
	var filter identity.UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	users, page, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Users retrieved", users, page)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "User retrieved", user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req identity.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "User created", user)
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}
	var req identity.ChangeUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.userService.ChangeRole(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "User role updated", user)
}

func (h *UserHandler) ChangeStatus(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}
	var req identity.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.userService.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "User status updated", user)
}
