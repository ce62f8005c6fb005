package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/quickbite/backend/internal/application/catalog"
	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// CategoryHandler handles menu categories
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest is the body of the admin category create/update endpoints
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	h.Success(c, out)
}

// Get handles GET /categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCategoryResponse(category))
}

// Create handles POST /admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), catalogapp.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toCategoryResponse(category))
}

// Update handles PUT /admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, catalogapp.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCategoryResponse(category))
}

// Delete handles DELETE /admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func toCategoryResponse(category *catalog.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}
