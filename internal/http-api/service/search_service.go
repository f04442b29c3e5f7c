package service

import (
	"context"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/repository"
)

// favoriteTag is the label that marks a restaurant as a favorite.
const favoriteTag = "favorite"

// SearchService filters the restaurant listing. All supplied criteria are
// AND-ed; results are ordered by most recent meal date descending.
type SearchService interface {
	Search(ctx context.Context, filter repository.RestaurantFilter) ([]models.Restaurant, error)
	Favorites(ctx context.Context) ([]models.Restaurant, error)
}

type searchService struct {
	restaurantRepo repository.RestaurantRepository
}

func NewSearchService(restaurantRepo repository.RestaurantRepository) SearchService {
	return &searchService{restaurantRepo: restaurantRepo}
}

func (s *searchService) Search(ctx context.Context, filter repository.RestaurantFilter) ([]models.Restaurant, error) {
	return s.restaurantRepo.Search(ctx, filter)
}

// Favorites is the search fixed to the "favorite" tag.
func (s *searchService) Favorites(ctx context.Context) ([]models.Restaurant, error) {
	return s.restaurantRepo.Search(ctx, repository.RestaurantFilter{Tag: favoriteTag})
}
