package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
)

// TagRepository defines the interface for tag data operations.
type TagRepository interface {
	Create(tag *models.Tag) error
	GetByRestaurant(restaurantID int64) ([]models.Tag, error)
	FindByNameAndRestaurant(name string, restaurantID int64) (*models.Tag, error)
	DeleteByNameAndRestaurant(name string, restaurantID int64) error
}

// tagRepository is the GORM implementation of TagRepository.
type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		return fmt.Errorf("create tag: %w", mapDuplicate(err))
	}
	return nil
}

func (r *tagRepository) GetByRestaurant(restaurantID int64) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Where("restaurant_id = ?", restaurantID).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) FindByNameAndRestaurant(name string, restaurantID int64) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ? AND restaurant_id = ?", name, restaurantID).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) DeleteByNameAndRestaurant(name string, restaurantID int64) error {
	result := r.db.Where("name = ? AND restaurant_id = ?", name, restaurantID).Delete(&models.Tag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
