package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
)

// MealRepository defines the interface for meal data operations.
type MealRepository interface {
	Create(meal *models.Meal) error
	GetByID(id int64) (*models.Meal, error)
	FindByNameAndRestaurant(name string, restaurantID int64) (*models.Meal, error)
	GetByRestaurant(restaurantID int64) ([]models.Meal, error)
	Delete(id int64) error
}

// mealRepository is the GORM implementation of MealRepository.
type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(meal *models.Meal) error {
	if err := r.db.Create(meal).Error; err != nil {
		return fmt.Errorf("create meal: %w", mapDuplicate(err))
	}
	return nil
}

func (r *mealRepository) GetByID(id int64) (*models.Meal, error) {
	var meal models.Meal
	if err := r.db.Preload("Person").First(&meal, id).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) FindByNameAndRestaurant(name string, restaurantID int64) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.Where("name = ? AND restaurant_id = ?", name, restaurantID).First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) GetByRestaurant(restaurantID int64) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Preload("Person").
		Order("date DESC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// Delete removes one meal row. A second delete of the same row reports
// not-found rather than surfacing an error.
func (r *mealRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Meal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
