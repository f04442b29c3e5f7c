package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
)

// RestaurantFilter carries the optional search predicates. Zero values mean
// "not filtered on".
type RestaurantFilter struct {
	Name      string // case-insensitive substring
	Cuisine   string // case-insensitive exact
	MinRating int    // 0 = any
	Tag       string // exact tag name
}

// RestaurantRepository defines the interface for restaurant data operations.
type RestaurantRepository interface {
	Create(ctx context.Context, rest *models.Restaurant) error
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
	FindByName(ctx context.Context, name string) (*models.Restaurant, error)
	GetAll(ctx context.Context) ([]models.Restaurant, error)
	Search(ctx context.Context, filter RestaurantFilter) ([]models.Restaurant, error)
	DeleteCascade(ctx context.Context, id int64) error
}

// restaurantRepository is the GORM implementation of RestaurantRepository.
type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, rest *models.Restaurant) error {
	if err := r.db.WithContext(ctx).Create(rest).Error; err != nil {
		return fmt.Errorf("create restaurant: %w", mapDuplicate(err))
	}
	// GORM will populate rest.ID and rest.CreatedAt
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.db.WithContext(ctx).Preload("Meals").Preload("Tags").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) FindByName(ctx context.Context, name string) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// GetAll returns every restaurant ordered by most recent associated meal
// date descending; restaurants with no meals sort last.
func (r *restaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	return r.findOrdered(r.db.WithContext(ctx))
}

// Search applies the filter predicates, AND-ed, with the same ordering as GetAll.
func (r *restaurantRepository) Search(ctx context.Context, filter RestaurantFilter) ([]models.Restaurant, error) {
	db := r.db.WithContext(ctx)

	if filter.Name != "" {
		db = db.Where("restaurants.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Cuisine != "" {
		db = db.Where("LOWER(restaurants.cuisine) = LOWER(?)", filter.Cuisine)
	}
	if filter.MinRating > 0 {
		db = db.Where("restaurants.rating >= ?", filter.MinRating)
	}
	if filter.Tag != "" {
		db = db.Where("EXISTS (SELECT 1 FROM tags WHERE tags.restaurant_id = restaurants.id AND tags.name = ?)", filter.Tag)
	}

	return r.findOrdered(db)
}

func (r *restaurantRepository) findOrdered(db *gorm.DB) ([]models.Restaurant, error) {
	var list []models.Restaurant
	err := db.Model(&models.Restaurant{}).
		Select("restaurants.*, MAX(meals.date) AS last_visited").
		Joins("LEFT JOIN meals ON meals.restaurant_id = restaurants.id").
		Group("restaurants.id").
		Order("last_visited DESC NULLS LAST").
		Preload("Tags").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return list, nil
}

// DeleteCascade removes the restaurant and every meal and tag referencing it
// in a single transaction. Returns gorm.ErrRecordNotFound when the row is
// already gone so a repeated delete stays a no-op for the caller.
func (r *restaurantRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Meal{}).Error; err != nil {
			return fmt.Errorf("delete meals: %w", err)
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Tag{}).Error; err != nil {
			return fmt.Errorf("delete tags: %w", err)
		}
		result := tx.Delete(&models.Restaurant{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete restaurant: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
