package models

import (
	"time"
)

// Rating is one user's score for one hotel. The (user, hotel) pair is unique:
// rating the same hotel again replaces the previous score.
type Rating struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"uniqueIndex:idx_rating_user_hotel;column:user_id" json:"user_id"`
	HotelID uint `gorm:"uniqueIndex:idx_rating_user_hotel;index;column:hotel_id" json:"hotel_id"`

	Score   float64 `json:"score"`
	Comment string  `gorm:"size:500" json:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
