package models

// Tag is a free-form label on a restaurant. The "favorite" tag drives the
// favorites listing.
type Tag struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"not null;uniqueIndex:idx_tag_name_restaurant"`
	RestaurantID int64  `json:"restaurant_id" gorm:"not null;index;uniqueIndex:idx_tag_name_restaurant"`
}

func (Tag) TableName() string {
	return "tags"
}
