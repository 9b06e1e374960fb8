package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingStatus follows the reservation through its life. Cancelled bookings
// are kept (soft delete) so history and availability queries stay correct.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Occupying reports whether the booking still blocks its date range.
func (s BookingStatus) Occupying() bool {
	return s == BookingConfirmed || s == BookingCompleted
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID     uint `gorm:"index;column:user_id" json:"user_id"`
	HotelID    uint `gorm:"index;column:hotel_id" json:"hotel_id"`
	RoomTypeID uint `gorm:"index;column:room_type_id" json:"room_type_id"`

	ReferenceCode string    `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	CheckIn       time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut      time.Time `gorm:"column:check_out" json:"check_out"`
	RoomCount     int       `gorm:"column:room_count;default:1" json:"roomCount"`
	TotalPrice    float64   `gorm:"column:total_price" json:"totalPrice"`

	Status BookingStatus `gorm:"size:32;index" json:"status"`

	Hotel    Hotel    `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"roomType,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Range returns the stay interval of the booking.
func (b Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}
