package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/quickbite/backend/internal/application/identity"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// UserHandler handles user lookups and self-service account edits
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateMeRequest is the body of PUT /users/me. Absent fields stay unchanged.
type UpdateMeRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password *string `json:"password" binding:"omitempty,min=6,max=128"`
}

// GetByID handles GET /users/:id. The other services call this to resolve
// user references, so the response shape is part of the wire contract.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toUserResponse(user))
}

// GetByUsername handles GET /users/username/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.userService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toUserResponse(user))
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), principal(c).ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toUserResponse(user))
}

// UpdateMe handles PUT /users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user, err := h.userService.UpdateMe(c.Request.Context(), principal(c).ID, identityapp.UpdateMeInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toUserResponse(user))
}

// AdminUserHandler handles the system admin's user management endpoints
type AdminUserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewAdminUserHandler creates a new AdminUserHandler
func NewAdminUserHandler(userService *identityapp.UserService) *AdminUserHandler {
	return &AdminUserHandler{userService: userService}
}

// UpdateRoleRequest is the body of PUT /admin/users/:id/role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// List handles GET /admin/users
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	h.Success(c, out)
}

// UpdateRole handles PUT /admin/users/:id/role
func (h *AdminUserHandler) UpdateRole(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toUserResponse(user))
}
