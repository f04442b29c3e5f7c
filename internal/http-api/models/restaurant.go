package models

import "time"

type Restaurant struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty" gorm:"size:14"`
	Cuisine   string    `json:"cuisine" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Meals []Meal `json:"meals,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE;"`
	Tags  []Tag  `json:"tags,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE;"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
