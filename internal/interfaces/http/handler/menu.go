package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/quickbite/backend/internal/application/catalog"
	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// MenuHandler handles the public menu and its admin CRUD
type MenuHandler struct {
	BaseHandler
	menuService *catalogapp.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService *catalogapp.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// MenuItemRequest is the body of the admin menu item create/update endpoints
type MenuItemRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Price       int64  `json:"price" binding:"required,min=1"`
	CategoryID  *uint  `json:"category_id"`
	ImageURL    string `json:"image_url" binding:"omitempty,max=500"`
}

// List handles GET /menu. Supports ?category_id= and ?q= filters.
func (h *MenuHandler) List(c *gin.Context) {
	var filter catalog.MenuFilter
	filter.Search = c.Query("q")
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	items, err := h.menuService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toMenuItemResponse(&items[i]))
	}
	h.Success(c, out)
}

// Get handles GET /menu/:id
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toMenuItemResponse(item))
}

// Create handles POST /admin/menu
func (h *MenuHandler) Create(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.menuService.Create(c.Request.Context(), menuItemInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toMenuItemResponse(item))
}

// Update handles PUT /admin/menu/:id
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.menuService.Update(c.Request.Context(), id, menuItemInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toMenuItemResponse(item))
}

// Delete handles DELETE /admin/menu/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func menuItemInput(req MenuItemRequest) catalogapp.MenuItemInput {
	return catalogapp.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	}
}

func toMenuItemResponse(item *catalog.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CategoryID:  item.CategoryID,
		ImageURL:    item.ImageURL,
	}
}
