package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/dto"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/middleware"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/service"
)

type MealHandler struct {
	mealService service.MealService
}

func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// Create records a meal under a restaurant, attributed to the caller
// POST /add_meal/:restaurant_id
func (h *MealHandler) Create(c *gin.Context) {
	restaurantID, err := strconv.ParseInt(c.Param("restaurant_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	personID, exists := c.Get(middleware.ContextPersonID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req dto.CreateMealDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.mealService.Create(c.Request.Context(), restaurantID, personID.(int64), req.Name, req.Price, req.Rating, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrMealExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrMissingMealName),
			errors.Is(err, service.ErrInvalidPrice),
			errors.Is(err, service.ErrMissingMealRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not record meal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToMealResponse(meal))
}

// ListByRestaurant shows the meals recorded for one restaurant
// GET /meal/:restaurant_id
func (h *MealHandler) ListByRestaurant(c *gin.Context) {
	restaurantID, err := strconv.ParseInt(c.Param("restaurant_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	meals, err := h.mealService.GetByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load meals"})
		return
	}

	resp := make([]dto.MealResponse, 0, len(meals))
	for i := range meals {
		resp = append(resp, *dto.FromModelToMealResponse(&meals[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Detail shows one meal row
// GET /meal/:restaurant_id/:id
func (h *MealHandler) Detail(c *gin.Context) {
	restaurantID, mealID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	meal, err := h.mealService.Get(c.Request.Context(), restaurantID, mealID)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load meal"})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToMealResponse(meal))
}

// Delete removes one meal row only
// DELETE /meal/:restaurant_id/:id
func (h *MealHandler) Delete(c *gin.Context) {
	restaurantID, mealID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.mealService.Delete(c.Request.Context(), restaurantID, mealID); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}

func (h *MealHandler) parseIDs(c *gin.Context) (restaurantID, mealID int64, ok bool) {
	restaurantID, err := strconv.ParseInt(c.Param("restaurant_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return 0, 0, false
	}
	mealID, err = strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
		return 0, 0, false
	}
	return restaurantID, mealID, true
}
