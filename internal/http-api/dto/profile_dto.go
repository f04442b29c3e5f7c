package dto

import "time"

// ProfileResponse: the current account's own view
type ProfileResponse struct {
	AccountID int64      `json:"account_id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	MealCount int64      `json:"meal_count"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// UpdateProfileDTO used for PUT /user (partial: either field may be set)
type UpdateProfileDTO struct {
	Name            *string `json:"name,omitempty"`
	CurrentPassword *string `json:"current_password,omitempty"`
	NewPassword     *string `json:"new_password,omitempty"`
}
