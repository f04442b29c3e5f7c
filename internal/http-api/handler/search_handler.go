package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/dto"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/repository"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/service"
)

type SearchHandler struct {
	searchService service.SearchService
}

func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search filters restaurants by name/cuisine/rating/tag, most recent visit first
// GET /search?name=&cuisine=&min_rating=&tag=
func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.searchService.Search(c.Request.Context(), repository.RestaurantFilter{
		Name:      req.Name,
		Cuisine:   req.Cuisine,
		MinRating: req.MinRating,
		Tag:       req.Tag,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	resp := make([]dto.RestaurantResponse, 0, len(list))
	for i := range list {
		resp = append(resp, *dto.FromModelToRestaurantResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Favorites lists restaurants tagged "favorite"
// GET /favorites
func (h *SearchHandler) Favorites(c *gin.Context) {
	list, err := h.searchService.Favorites(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load favorites"})
		return
	}

	resp := make([]dto.RestaurantResponse, 0, len(list))
	for i := range list {
		resp = append(resp, *dto.FromModelToRestaurantResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}
