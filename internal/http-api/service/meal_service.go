package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/repository"
)

var (
	ErrMissingMealName   = errors.New("meal name is required")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
	ErrMissingMealRating = errors.New("meal rating is required")
	ErrMealExists        = errors.New("this meal is already recorded for this restaurant")
	ErrMealNotFound      = errors.New("meal not found")
)

type MealService interface {
	Create(ctx context.Context, restaurantID, personID int64, name string, price float64, rating string, notes *string) (*models.Meal, error)
	GetByRestaurant(ctx context.Context, restaurantID int64) ([]models.Meal, error)
	Get(ctx context.Context, restaurantID, id int64) (*models.Meal, error)
	Delete(ctx context.Context, restaurantID, id int64) error
}

type mealService struct {
	mealRepo       repository.MealRepository
	restaurantRepo repository.RestaurantRepository
	cache          *repository.RestaurantCache
}

func NewMealService(
	mealRepo repository.MealRepository,
	restaurantRepo repository.RestaurantRepository,
	cache *repository.RestaurantCache,
) MealService {
	return &mealService{
		mealRepo:       mealRepo,
		restaurantRepo: restaurantRepo,
		cache:          cache,
	}
}

// Create records a meal under the given restaurant, attributed to the
// calling person and dated now.
func (s *mealService) Create(ctx context.Context, restaurantID, personID int64, name string, price float64, rating string, notes *string) (*models.Meal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingMealName
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if strings.TrimSpace(rating) == "" {
		return nil, ErrMissingMealRating
	}

	// Check if restaurant exists
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	// Check the (name, restaurant) pair
	if _, err := s.mealRepo.FindByNameAndRestaurant(name, restaurantID); err == nil {
		return nil, ErrMealExists
	}

	meal := &models.Meal{
		Name:         name,
		Date:         time.Now(),
		Price:        price,
		Rating:       rating,
		Notes:        notes,
		RestaurantID: restaurantID,
		PersonID:     personID,
	}

	if err := s.mealRepo.Create(meal); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrMealExists
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, restaurantID)
	return meal, nil
}

// GetByRestaurant lists the meals recorded for one restaurant, newest first.
func (s *mealService) GetByRestaurant(ctx context.Context, restaurantID int64) ([]models.Meal, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return s.mealRepo.GetByRestaurant(restaurantID)
}

func (s *mealService) Get(ctx context.Context, restaurantID, id int64) (*models.Meal, error) {
	meal, err := s.mealRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	// route is scoped to one restaurant, reject a meal from another
	if meal.RestaurantID != restaurantID {
		return nil, ErrMealNotFound
	}
	return meal, nil
}

// Delete removes one meal row only; the restaurant and its other meals stay.
func (s *mealService) Delete(ctx context.Context, restaurantID, id int64) error {
	if _, err := s.Get(ctx, restaurantID, id); err != nil {
		return err
	}
	if err := s.mealRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, restaurantID)
	return nil
}
