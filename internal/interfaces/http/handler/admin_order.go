package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/quickbite/backend/internal/application/order"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// AdminOrderHandler handles the restaurant staff's order management endpoints
type AdminOrderHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
}

// NewAdminOrderHandler creates a new AdminOrderHandler
func NewAdminOrderHandler(orderService *orderapp.OrderService) *AdminOrderHandler {
	return &AdminOrderHandler{orderService: orderService}
}

// UpdateOrderStatusRequest is the body of PUT /admin/orders/:id/status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminOrderUpdateRequest is the body of PUT /admin/orders/:id.
// Absent fields stay unchanged.
type AdminOrderUpdateRequest struct {
	Address         *string `json:"address" binding:"omitempty,min=1,max=500"`
	OperatorComment *string `json:"operator_comment" binding:"omitempty,max=2000"`
}

// AdminOrderDetailResponse is the aggregated admin view of one order
type AdminOrderDetailResponse struct {
	Order dto.OrderResponse         `json:"order"`
	Items []orderapp.AdminOrderItem `json:"items"`
}

// List handles GET /admin/orders. Supports ?status= filtering.
func (h *AdminOrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.AdminList(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponses(orders))
}

// Detail handles GET /admin/orders/:id
func (h *AdminOrderHandler) Detail(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	detail, err := h.orderService.AdminDetail(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, AdminOrderDetailResponse{
		Order: toOrderResponse(detail.Order),
		Items: detail.Items,
	})
}

// UpdateStatus handles PUT /admin/orders/:id/status
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	o, err := h.orderService.AdminUpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponse(o))
}

// Update handles PUT /admin/orders/:id
func (h *AdminOrderHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req AdminOrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	o, err := h.orderService.AdminUpdate(c.Request.Context(), id, orderapp.AdminOrderUpdateInput{
		Address:         req.Address,
		OperatorComment: req.OperatorComment,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponse(o))
}
