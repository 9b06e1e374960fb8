package repositories

import (
	"errors"
	"fmt"

	"estay-backend/models"

	"gorm.io/gorm"
)

// HotelFilter carries the cheap, indexable search criteria. Amenity matching,
// availability filtering, sorting and pagination happen in the search service
// on the returned slice.
type HotelFilter struct {
	Statuses   []models.HotelStatus
	City       string // substring match on address
	Keyword    string // substring match on name / name_en / description / address
	MinPrice   float64
	MaxPrice   float64
	StarRating int
}

type HotelRepository interface {
	Create(hotel *models.Hotel) error
	Update(hotel *models.Hotel) error
	Delete(id uint) error
	GetByID(id uint) (*models.Hotel, error)
	ListVisible(filter HotelFilter) ([]models.Hotel, error)
	ListByMerchant(merchantID uint, status models.HotelStatus, offset, limit int) ([]models.Hotel, int64, error)
	ListByStatus(status models.HotelStatus, offset, limit int) ([]models.Hotel, int64, error)
	ListAll(offset, limit int) ([]models.Hotel, int64, error)
	ReplaceRoomTypes(hotelID uint, roomTypes []models.RoomType) error
	GetRoomType(id uint) (*models.RoomType, error)
	UpdateRatingStats(hotelID uint, average float64, count int) error
	SaveStatus(hotel *models.Hotel) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(hotel *models.Hotel) error {
	return r.db.Create(hotel).Error
}

func (r *hotelRepository) Update(hotel *models.Hotel) error {
	return r.db.Save(hotel).Error
}

func (r *hotelRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", id).Delete(&models.RoomType{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Hotel{}, id).Error
	})
}

func (r *hotelRepository) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.Preload("RoomTypes").First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) ListVisible(filter HotelFilter) ([]models.Hotel, error) {
	q := r.db.Preload("RoomTypes")

	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}
	if filter.City != "" {
		q = q.Where("address LIKE ?", "%"+filter.City+"%")
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		q = q.Where("name LIKE ? OR name_en LIKE ? OR description LIKE ? OR address LIKE ?", kw, kw, kw, kw)
	}
	if filter.MinPrice > 0 {
		q = q.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price <= ?", filter.MaxPrice)
	}
	if filter.StarRating > 0 {
		q = q.Where("star_rating = ?", filter.StarRating)
	}

	var hotels []models.Hotel
	if err := q.Order("created_at DESC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (r *hotelRepository) ListByMerchant(merchantID uint, status models.HotelStatus, offset, limit int) ([]models.Hotel, int64, error) {
	q := r.db.Model(&models.Hotel{}).Where("merchant_id = ?", merchantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []models.Hotel
	if err := q.Preload("RoomTypes").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&hotels).Error; err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}

func (r *hotelRepository) ListByStatus(status models.HotelStatus, offset, limit int) ([]models.Hotel, int64, error) {
	q := r.db.Model(&models.Hotel{}).Where("status = ?", status)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []models.Hotel
	if err := q.Preload("RoomTypes").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&hotels).Error; err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}

func (r *hotelRepository) ListAll(offset, limit int) ([]models.Hotel, int64, error) {
	var total int64
	if err := r.db.Model(&models.Hotel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []models.Hotel
	if err := r.db.Preload("RoomTypes").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&hotels).Error; err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}

// ReplaceRoomTypes swaps the hotel's room-type set in one transaction,
// used by merchant edits that resubmit the whole hotel form.
func (r *hotelRepository) ReplaceRoomTypes(hotelID uint, roomTypes []models.RoomType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.RoomType{}).Error; err != nil {
			return err
		}
		for i := range roomTypes {
			roomTypes[i].ID = 0
			roomTypes[i].HotelID = hotelID
			if err := tx.Create(&roomTypes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *hotelRepository) GetRoomType(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := r.db.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *hotelRepository) UpdateRatingStats(hotelID uint, average float64, count int) error {
	return r.db.Model(&models.Hotel{}).Where("id = ?", hotelID).
		Updates(map[string]interface{}{"average_rating": average, "rating_count": count}).Error
}

// SaveStatus persists only the lifecycle fields so admin transitions cannot
// clobber concurrent merchant edits to the rest of the record.
func (r *hotelRepository) SaveStatus(hotel *models.Hotel) error {
	return r.db.Model(&models.Hotel{}).Where("id = ?", hotel.ID).
		Updates(map[string]interface{}{
			"status":        hotel.Status,
			"reject_reason": hotel.RejectReason,
		}).Error
}
