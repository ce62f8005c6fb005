package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/quickbite/backend/internal/application/identity"
	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), identityapp.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.RegisterResponse{
		Message:  "User registered successfully",
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identityapp.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        toUserResponse(result.User),
	})
}

func toUserResponse(user *identity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}
