package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/infrastructure/config"
	"github.com/quickbite/backend/internal/infrastructure/logger"
	"github.com/quickbite/backend/internal/interfaces/http/middleware"
)

// Registrar registers a set of routes on the engine
type Registrar interface {
	Register(r *gin.Engine)
}

// Guard builds an authentication middleware for the given roles. An empty
// role list admits any authenticated user.
type Guard func(roles ...identity.Role) gin.HandlerFunc

// New builds a gin engine with the common middleware chain and registers
// all routes. Paths are mounted at the root so peers can resolve
// references without a version prefix.
func New(cfg *config.Config, log *zap.Logger, registrars ...Registrar) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins),
		middleware.Secure(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	for _, registrar := range registrars {
		registrar.Register(engine)
	}
	return engine
}

// adminRoles are the roles allowed on restaurant management endpoints
var adminRoles = []identity.Role{identity.RoleRestaurantAdmin, identity.RoleSystemAdmin}
