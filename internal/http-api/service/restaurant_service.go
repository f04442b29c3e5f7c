package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/repository"
)

var (
	ErrMissingRestaurantName = errors.New("restaurant name is required")
	ErrRestaurantExists      = errors.New("restaurant name already in use")
	ErrMissingCuisine        = errors.New("cuisine is required")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrInvalidPhone          = errors.New("phone number must be 11 to 14 characters")
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrMissingTagName        = errors.New("tag name is required")
	ErrTagExists             = errors.New("tag already attached to this restaurant")
	ErrTagNotFound           = errors.New("tag not found")
)

const (
	minPhoneLen = 11
	maxPhoneLen = 14
)

type RestaurantService interface {
	Create(ctx context.Context, rest *models.Restaurant) error
	GetDetail(ctx context.Context, id int64) (*models.Restaurant, error)
	List(ctx context.Context) ([]models.Restaurant, error)
	Delete(ctx context.Context, id int64) error
	AddTag(ctx context.Context, restaurantID int64, name string) (*models.Tag, error)
	RemoveTag(ctx context.Context, restaurantID int64, name string) error
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	tagRepo        repository.TagRepository
	cache          *repository.RestaurantCache
}

func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	tagRepo repository.TagRepository,
	cache *repository.RestaurantCache,
) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		tagRepo:        tagRepo,
		cache:          cache,
	}
}

// Create validates and persists a new restaurant.
func (s *restaurantService) Create(ctx context.Context, rest *models.Restaurant) error {
	rest.Name = strings.TrimSpace(rest.Name)
	if rest.Name == "" {
		return ErrMissingRestaurantName
	}
	if strings.TrimSpace(rest.Cuisine) == "" {
		return ErrMissingCuisine
	}
	if rest.Rating < 1 || rest.Rating > 5 {
		return ErrInvalidRating
	}
	if rest.Phone != nil {
		if l := len(*rest.Phone); l < minPhoneLen || l > maxPhoneLen {
			return ErrInvalidPhone
		}
	}

	// Check if name exists
	if _, err := s.restaurantRepo.FindByName(ctx, rest.Name); err == nil {
		return ErrRestaurantExists
	}

	if err := s.restaurantRepo.Create(ctx, rest); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrRestaurantExists
		}
		return err
	}
	return nil
}

// GetDetail returns the restaurant with its meals and tags, read through the
// cache when one is configured.
func (s *restaurantService) GetDetail(ctx context.Context, id int64) (*models.Restaurant, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil {
		return cached, nil
	}

	rest, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	s.cache.Set(ctx, rest)
	return rest, nil
}

func (s *restaurantService) List(ctx context.Context) ([]models.Restaurant, error) {
	return s.restaurantRepo.GetAll(ctx)
}

// Delete removes the restaurant and all meals and tags referencing it. A
// delete of an already-deleted row reports not-found, not a fault.
func (s *restaurantService) Delete(ctx context.Context, id int64) error {
	if err := s.restaurantRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestaurantNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

// AddTag attaches a label to a restaurant. Tagging "favorite" is how a
// restaurant reaches the favorites listing.
func (s *restaurantService) AddTag(ctx context.Context, restaurantID int64, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingTagName
	}

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if _, err := s.tagRepo.FindByNameAndRestaurant(name, restaurantID); err == nil {
		return nil, ErrTagExists
	}

	tag := &models.Tag{Name: name, RestaurantID: restaurantID}
	if err := s.tagRepo.Create(tag); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrTagExists
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, restaurantID)
	return tag, nil
}

func (s *restaurantService) RemoveTag(ctx context.Context, restaurantID int64, name string) error {
	if err := s.tagRepo.DeleteByNameAndRestaurant(name, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, restaurantID)
	return nil
}
