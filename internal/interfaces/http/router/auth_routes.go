package router

import (
	"github.com/gin-gonic/gin"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/interfaces/http/handler"
)

// AuthRoutes registers the auth service's endpoints. User lookups by ID and
// username are public because the other services resolve user references
// through them.
type AuthRoutes struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	AdminUser *handler.AdminUserHandler
	Guard     Guard
}

// Register implements Registrar
func (ar *AuthRoutes) Register(r *gin.Engine) {
	r.GET("/health", ar.Health.Health)

	r.POST("/auth/register", ar.Auth.Register)
	r.POST("/auth/login", ar.Auth.Login)

	r.GET("/users/:id", ar.User.GetByID)
	r.GET("/users/username/:username", ar.User.GetByUsername)

	me := r.Group("/users/me", ar.Guard())
	me.GET("", ar.User.Me)
	me.PUT("", ar.User.UpdateMe)

	admin := r.Group("/admin", ar.Guard(identity.RoleSystemAdmin))
	admin.GET("/users", ar.AdminUser.List)
	admin.PUT("/users/:id/role", ar.AdminUser.UpdateRole)
}
