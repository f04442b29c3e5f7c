package dto

import (
	"time"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
)

// CreateMealDTO used for POST /add_meal/:restaurant_id
type CreateMealDTO struct {
	Name   string  `json:"name" binding:"required"`
	Price  float64 `json:"price" binding:"required"`
	Rating string  `json:"rating" binding:"required"`
	Notes  *string `json:"notes,omitempty"`
}

// MealResponse DTO for responses
type MealResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	Price        float64   `json:"price"`
	Rating       string    `json:"rating"`
	Notes        *string   `json:"notes,omitempty"`
	RestaurantID int64     `json:"restaurant_id"`
	PersonName   string    `json:"person_name,omitempty"`
}

// FromModelToMealResponse converts a Meal model to its response DTO
func FromModelToMealResponse(meal *models.Meal) *MealResponse {
	resp := &MealResponse{
		ID:           meal.ID,
		Name:         meal.Name,
		Date:         meal.Date,
		Price:        meal.Price,
		Rating:       meal.Rating,
		Notes:        meal.Notes,
		RestaurantID: meal.RestaurantID,
	}
	if meal.Person != nil {
		resp.PersonName = meal.Person.Name
	}
	return resp
}
