package repositories

import (
	"errors"

	"estay-backend/models"

	"gorm.io/gorm"
)

// BookingRepository is the booking ledger's storage. The overlap predicate
// itself lives in the booking service; the repository only distinguishes
// occupying (confirmed/completed) bookings from cancelled ones.
type BookingRepository interface {
	Create(booking *models.Booking) error
	Save(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	ListActiveByRoomType(roomTypeID uint) ([]models.Booking, error)
	ListActiveByHotel(hotelID uint) ([]models.Booking, error)
	ListByUser(userID uint, offset, limit int) ([]models.Booking, int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func occupyingStatuses() []models.BookingStatus {
	return []models.BookingStatus{models.BookingConfirmed, models.BookingCompleted}
}

func (r *bookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) Save(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

func (r *bookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListActiveByRoomType(roomTypeID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("room_type_id = ? AND status IN ?", roomTypeID, occupyingStatuses()).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListActiveByHotel(hotelID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("hotel_id = ? AND status IN ?", hotelID, occupyingStatuses()).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListByUser(userID uint, offset, limit int) ([]models.Booking, int64, error) {
	q := r.db.Model(&models.Booking{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	if err := q.Preload("Hotel").Preload("RoomType").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}
