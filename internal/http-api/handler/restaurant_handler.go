package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/dto"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/service"
)

type RestaurantHandler struct {
	restaurantService service.RestaurantService
}

func NewRestaurantHandler(restaurantService service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// Home lists all restaurants, most recently visited first
// GET /
func (h *RestaurantHandler) Home(c *gin.Context) {
	list, err := h.restaurantService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load restaurants"})
		return
	}

	resp := make([]dto.RestaurantResponse, 0, len(list))
	for i := range list {
		resp = append(resp, *dto.FromModelToRestaurantResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Detail shows one restaurant with its meals and tags
// GET /restaurant/:id
func (h *RestaurantHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	rest, err := h.restaurantService.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load restaurant"})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToRestaurantResponse(rest))
}

// Create validates and persists a new restaurant
// POST /add_rest
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.CreateRestaurantDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rest := &models.Restaurant{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Cuisine: req.Cuisine,
		Rating:  req.Rating,
	}

	if err := h.restaurantService.Create(c.Request.Context(), rest); err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrMissingRestaurantName),
			errors.Is(err, service.ErrMissingCuisine),
			errors.Is(err, service.ErrInvalidRating),
			errors.Is(err, service.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create restaurant"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToRestaurantResponse(rest))
}

// Delete removes a restaurant and everything recorded under it
// DELETE /restaurant/:id
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	if err := h.restaurantService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete restaurant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// AddTag attaches a label to a restaurant
// POST /restaurant/:id/tags
func (h *RestaurantHandler) AddTag(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	var req dto.AddTagDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.restaurantService.AddTag(c.Request.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrTagExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrMissingTagName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not add tag"})
		}
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// RemoveTag detaches a label from a restaurant
// DELETE /restaurant/:id/tags/:name
func (h *RestaurantHandler) RemoveTag(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	if err := h.restaurantService.RemoveTag(c.Request.Context(), id, c.Param("name")); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not remove tag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag removed"})
}
