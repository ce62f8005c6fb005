package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/quickbite/backend/internal/application/catalog"
	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// RestaurantHandler handles the restaurant record and its review feed
type RestaurantHandler struct {
	BaseHandler
	restaurantService *catalogapp.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler
func NewRestaurantHandler(restaurantService *catalogapp.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// RestaurantRequest is the body of PUT /admin/restaurant.
// Absent fields stay unchanged.
type RestaurantRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Address      *string `json:"address" binding:"omitempty,min=1,max=500"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	OpeningHours *string `json:"opening_hours" binding:"omitempty,max=200"`
}

// Info handles GET /restaurant/info
func (h *RestaurantHandler) Info(c *gin.Context) {
	restaurant, err := h.restaurantService.GetInfo(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toRestaurantResponse(restaurant))
}

// Get handles GET /restaurant/:id. The order service resolves restaurant
// references through this endpoint.
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID")
		return
	}

	restaurant, err := h.restaurantService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toRestaurantResponse(restaurant))
}

// Reviews handles GET /restaurant/reviews. Reviews live in the order
// service; when it is unreachable the feed degrades to an empty list.
func (h *RestaurantHandler) Reviews(c *gin.Context) {
	reviews, err := h.restaurantService.Reviews(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reviews)
}

// Update handles PUT /admin/restaurant
func (h *RestaurantHandler) Update(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	restaurant, err := h.restaurantService.Update(c.Request.Context(), catalogapp.RestaurantInput{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toRestaurantResponse(restaurant))
}

func toRestaurantResponse(restaurant *catalog.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{
		ID:           restaurant.ID,
		Name:         restaurant.Name,
		Description:  restaurant.Description,
		Address:      restaurant.Address,
		Phone:        restaurant.Phone,
		OpeningHours: restaurant.OpeningHours,
	}
}
