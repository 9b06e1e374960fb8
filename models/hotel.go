package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MerchantID uint `gorm:"index;column:merchant_id" json:"merchant_id"`

	Name        string  `gorm:"size:100" json:"name"`
	NameEN      string  `gorm:"size:100;column:name_en" json:"name_en"`
	Address     string  `gorm:"size:200" json:"address"`
	Longitude   float64 `gorm:"column:longitude" json:"longitude"`
	Latitude    float64 `gorm:"column:latitude" json:"latitude"`
	StarRating  int     `gorm:"column:star_rating" json:"starRating"`
	Price       float64 `json:"price"`
	OpeningTime *time.Time `gorm:"column:opening_time" json:"openingTime,omitempty"`
	Description string  `gorm:"type:text" json:"description"`

	Amenities datatypes.JSONSlice[string] `gorm:"column:amenities" json:"amenities"`
	Images    datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	MainImage string                      `gorm:"column:main_image" json:"mainImage,omitempty"`

	// Status mutated only through the lifecycle transitions; RejectReason is
	// non-empty only while Status == rejected.
	Status       HotelStatus `gorm:"size:32;index;default:pending" json:"status,omitempty"`
	RejectReason string      `gorm:"column:reject_reason;size:500" json:"rejectReason,omitempty"`

	// Derived from the live rating set, recomputed on every rating mutation.
	AverageRating float64 `gorm:"column:average_rating" json:"averageRating"`
	RatingCount   int     `gorm:"column:rating_count" json:"ratingCount"`

	RoomTypes []RoomType `gorm:"foreignKey:HotelID" json:"roomTypes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Distance from the search base point in km, filled in by search only.
	Distance float64 `gorm:"-" json:"distance,omitempty"`
}
