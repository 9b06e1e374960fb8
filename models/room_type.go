package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	Name        string  `gorm:"size:100" json:"name"`
	Price       float64 `json:"price"`
	Capacity    int     `gorm:"default:2" json:"capacity"`
	Description string  `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
