package models

import "time"

// Meal is one priced, rated visit record. The (name, restaurant) pair is
// unique, a dish can only be recorded once per restaurant.
type Meal struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null;uniqueIndex:idx_meal_name_restaurant"`
	Date         time.Time `json:"date" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null;check:price > 0"`
	Rating       string    `json:"rating" gorm:"not null"` // free-form, e.g. "would order again"
	Notes        *string   `json:"notes,omitempty" gorm:"size:255"`
	RestaurantID int64     `json:"restaurant_id" gorm:"not null;index;uniqueIndex:idx_meal_name_restaurant"`
	PersonID     int64     `json:"person_id" gorm:"not null;index"`

	// Associations
	Restaurant *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Person     *Person     `json:"person,omitempty" gorm:"foreignKey:PersonID"`
}

func (Meal) TableName() string {
	return "meals"
}
