package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	orderapp "github.com/quickbite/backend/internal/application/order"
	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// ReviewHandler handles customer reviews
type ReviewHandler struct {
	BaseHandler
	reviewService *orderapp.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService *orderapp.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReviewRequest is the body of POST /reviews/order/:id
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,min=10,max=1000"`
}

// List handles GET /reviews. Unauthenticated; the catalog service calls it
// with ?restaurant_id= to build the public review feed.
func (h *ReviewHandler) List(c *gin.Context) {
	var restaurantID *uint
	if raw := c.Query("restaurant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.BadRequest(c, "Invalid restaurant ID")
			return
		}
		parsed := uint(id)
		restaurantID = &parsed
	}

	reviews, err := h.reviewService.List(c.Request.Context(), restaurantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	h.Success(c, out)
}

// CreateForOrder handles POST /reviews/order/:id
func (h *ReviewHandler) CreateForOrder(c *gin.Context) {
	orderID, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	review, err := h.reviewService.CreateForOrder(c.Request.Context(), principal(c).ID, orderID, orderapp.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toReviewResponse(review))
}

// GetForOrder handles GET /reviews/order/:id
func (h *ReviewHandler) GetForOrder(c *gin.Context) {
	orderID, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	review, err := h.reviewService.GetForOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toReviewResponse(review))
}

// StatusForOrder handles GET /orders/:id/review. Unlike the bare review
// lookup it answers 200 with has_review=false when no review exists, so the
// client can render the "leave a review" state without handling a 404.
func (h *ReviewHandler) StatusForOrder(c *gin.Context) {
	orderID, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	review, err := h.reviewService.GetForOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.Success(c, gin.H{"has_review": false})
			return
		}
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"has_review": true, "review": toReviewResponse(review)})
}

// Delete handles DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	caller := principal(c)
	if err := h.reviewService.Delete(c.Request.Context(), reviewID, caller.ID, caller.Role); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func toReviewResponse(review *order.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		OrderID:   review.OrderID,
		Rating:    review.Rating,
		Comment:   review.Text,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	}
}
