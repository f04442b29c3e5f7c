package dto

import (
	"time"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
)

// CreateRestaurantDTO used for POST /add_rest
type CreateRestaurantDTO struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Cuisine string  `json:"cuisine" binding:"required"`
	Rating  int     `json:"rating" binding:"required"`
}

// RestaurantResponse DTO for detail and listing responses
type RestaurantResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Address   *string        `json:"address,omitempty"`
	Phone     *string        `json:"phone,omitempty"`
	Cuisine   string         `json:"cuisine"`
	Rating    int            `json:"rating"`
	CreatedAt time.Time      `json:"created_at"`
	Tags      []string       `json:"tags,omitempty"`
	Meals     []MealResponse `json:"meals,omitempty"`
}

// FromModelToRestaurantResponse converts a Restaurant model to its response DTO
func FromModelToRestaurantResponse(rest *models.Restaurant) *RestaurantResponse {
	resp := &RestaurantResponse{
		ID:        rest.ID,
		Name:      rest.Name,
		Address:   rest.Address,
		Phone:     rest.Phone,
		Cuisine:   rest.Cuisine,
		Rating:    rest.Rating,
		CreatedAt: rest.CreatedAt,
	}
	for _, tag := range rest.Tags {
		resp.Tags = append(resp.Tags, tag.Name)
	}
	for i := range rest.Meals {
		resp.Meals = append(resp.Meals, *FromModelToMealResponse(&rest.Meals[i]))
	}
	return resp
}

// AddTagDTO used for POST /restaurant/:id/tags
type AddTagDTO struct {
	Name string `json:"name" binding:"required"`
}

// SearchRequest: query parameters for GET /search
type SearchRequest struct {
	Name      string `form:"name"`
	Cuisine   string `form:"cuisine"`
	MinRating int    `form:"min_rating"`
	Tag       string `form:"tag"`
}
