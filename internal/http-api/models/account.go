package models

import "time"

type Account struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string     `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;not null"` // Not show in JSON
	PersonID     int64      `json:"person_id" gorm:"not null;index"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	LastLogin    *time.Time `json:"last_login,omitempty"`

	// Associations
	Person *Person `json:"person,omitempty" gorm:"foreignKey:PersonID"`
}

// TableName keeps the original schema's table name for login rows.
func (Account) TableName() string {
	return "users"
}
