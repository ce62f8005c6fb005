package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/quickbite/backend/internal/application/order"
	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// CartHandler handles the user's cart. Cart writes are purely local: the
// menu item reference and its price snapshot come from the client, and the
// catalog service is never consulted. The stored line keeps that price even
// if the menu changes.
type CartHandler struct {
	BaseHandler
	cartService *orderapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *orderapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddCartItemRequest is the body of POST /cart/me/items
type AddCartItemRequest struct {
	MenuItemID uint  `json:"menu_item_id" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required,min=1"`
	Price      int64 `json:"price" binding:"required,min=1"`
}

// UpdateCartItemRequest is the body of PUT /cart/me/items/:id
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// Get handles GET /cart/me
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cartService.Get(c.Request.Context(), principal(c).ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCartResponse(cart))
}

// AddItem handles POST /cart/me/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), principal(c).ID, orderapp.AddCartItemInput{
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
		Price:      req.Price,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCartResponse(cart))
}

// UpdateItem handles PUT /cart/me/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart item ID")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cart, err := h.cartService.UpdateItem(c.Request.Context(), principal(c).ID, itemID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCartResponse(cart))
}

// RemoveItem handles DELETE /cart/me/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart item ID")
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), principal(c).ID, itemID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Clear handles DELETE /cart/me
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context(), principal(c).ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func toCartResponse(cart *order.Cart) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, dto.CartItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	return dto.CartResponse{
		ID:    cart.ID,
		Items: items,
		Total: cart.Total(),
	}
}
