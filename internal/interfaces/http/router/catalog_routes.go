package router

import (
	"github.com/gin-gonic/gin"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/interfaces/http/handler"
)

// CatalogRoutes registers the catalog service's endpoints. The menu,
// categories and restaurant record are public reads; writes sit behind the
// admin guard. Category management is reserved to the system admin.
type CatalogRoutes struct {
	Health     *handler.HealthHandler
	Menu       *handler.MenuHandler
	Category   *handler.CategoryHandler
	Restaurant *handler.RestaurantHandler
	Guard      Guard
}

// Register implements Registrar
func (cr *CatalogRoutes) Register(r *gin.Engine) {
	r.GET("/health", cr.Health.Health)

	r.GET("/menu", cr.Menu.List)
	r.GET("/menu/:id", cr.Menu.Get)

	r.GET("/categories", cr.Category.List)
	r.GET("/categories/:id", cr.Category.Get)

	r.GET("/restaurant/info", cr.Restaurant.Info)
	r.GET("/restaurant/reviews", cr.Restaurant.Reviews)
	r.GET("/restaurant/:id", cr.Restaurant.Get)

	admin := r.Group("/admin", cr.Guard(adminRoles...))
	admin.POST("/menu", cr.Menu.Create)
	admin.PUT("/menu/:id", cr.Menu.Update)
	admin.DELETE("/menu/:id", cr.Menu.Delete)
	admin.PUT("/restaurant", cr.Restaurant.Update)

	categories := r.Group("/admin/categories", cr.Guard(identity.RoleSystemAdmin))
	categories.POST("", cr.Category.Create)
	categories.PUT("/:id", cr.Category.Update)
	categories.DELETE("/:id", cr.Category.Delete)
}
