package router

import (
	"github.com/gin-gonic/gin"

	"github.com/quickbite/backend/internal/interfaces/http/handler"
)

// OrderRoutes registers the order service's endpoints. The review listing is
// public because the catalog service builds its review feed from it; the
// cart, orders and payments belong to the authenticated caller, and the
// management views sit behind the admin guard.
type OrderRoutes struct {
	Health     *handler.HealthHandler
	Cart       *handler.CartHandler
	Order      *handler.OrderHandler
	AdminOrder *handler.AdminOrderHandler
	Review     *handler.ReviewHandler
	Payment    *handler.PaymentHandler
	Stats      *handler.StatsHandler
	Guard      Guard
}

// Register implements Registrar
func (or *OrderRoutes) Register(r *gin.Engine) {
	r.GET("/health", or.Health.Health)

	r.GET("/reviews", or.Review.List)

	authed := r.Group("", or.Guard())
	authed.GET("/cart/me", or.Cart.Get)
	authed.DELETE("/cart/me", or.Cart.Clear)
	authed.POST("/cart/me/items", or.Cart.AddItem)
	authed.PUT("/cart/me/items/:id", or.Cart.UpdateItem)
	authed.DELETE("/cart/me/items/:id", or.Cart.RemoveItem)

	authed.POST("/orders", or.Order.Create)
	authed.GET("/orders", or.Order.List)
	authed.GET("/orders/:id", or.Order.Get)
	authed.PUT("/orders/:id/cancel", or.Order.Cancel)
	authed.POST("/orders/:id/review", or.Review.CreateForOrder)
	authed.GET("/orders/:id/review", or.Review.StatusForOrder)

	authed.POST("/reviews/order/:id", or.Review.CreateForOrder)
	authed.GET("/reviews/order/:id", or.Review.GetForOrder)
	authed.DELETE("/reviews/:id", or.Review.Delete)

	authed.POST("/payments/create", or.Payment.Create)
	authed.GET("/payments/:id", or.Payment.Get)
	authed.POST("/payments/:id/confirm", or.Payment.Confirm)

	admin := r.Group("/admin", or.Guard(adminRoles...))
	admin.GET("/orders", or.AdminOrder.List)
	admin.GET("/orders/:id", or.AdminOrder.Detail)
	admin.PUT("/orders/:id", or.AdminOrder.Update)
	admin.PUT("/orders/:id/status", or.AdminOrder.UpdateStatus)
	admin.GET("/stats/overview", or.Stats.Overview)
	admin.GET("/stats/orders-by-day", or.Stats.OrdersByDay)
}
