package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	orderapp "github.com/quickbite/backend/internal/application/order"
	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// OrderHandler handles a customer's own orders
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrderRequest is the body of POST /orders
type CreateOrderRequest struct {
	Address      string     `json:"address" binding:"required,min=1,max=500"`
	DeliveryTime *time.Time `json:"delivery_time"`
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	o, err := h.orderService.Create(c.Request.Context(), principal(c).ID, orderapp.CreateOrderInput{
		Address:      req.Address,
		DeliveryTime: req.DeliveryTime,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toOrderResponse(o))
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.ListByUser(c.Request.Context(), principal(c).ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponses(orders))
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	o, err := h.orderService.GetOwn(c.Request.Context(), principal(c).ID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponse(o))
}

// Cancel handles PUT /orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	o, err := h.orderService.Cancel(c.Request.Context(), principal(c).ID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponse(o))
}

func toOrderResponse(o *order.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		DeliveryAddress: o.DeliveryAddress,
		PaymentMethod:   string(o.PaymentMethod),
		TotalPrice:      o.TotalPrice,
		OperatorComment: o.OperatorComment,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
	if o.DeliveryTime != nil {
		resp.DeliveryTime = o.DeliveryTime.Format(time.RFC3339)
	}
	return resp
}

func toOrderResponses(orders []order.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}
