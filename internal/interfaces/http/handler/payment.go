package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/quickbite/backend/internal/application/order"
	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// PaymentHandler handles payment bookkeeping for orders
type PaymentHandler struct {
	BaseHandler
	paymentService *orderapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *orderapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest is the body of POST /payments/create
type CreatePaymentRequest struct {
	OrderID uint  `json:"order_id" binding:"required"`
	Amount  int64 `json:"amount" binding:"required,min=1"`
}

// Create handles POST /payments/create
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), req.OrderID, req.Amount)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toPaymentResponse(payment))
}

// Confirm handles POST /payments/:id/confirm
func (h *PaymentHandler) Confirm(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toPaymentResponse(payment))
}

// Get handles GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toPaymentResponse(payment))
}

func toPaymentResponse(payment *order.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Amount:        payment.Amount,
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
	}
}
