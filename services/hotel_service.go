package services

import (
	"fmt"
	"strings"
	"time"

	"estay-backend/models"
	"estay-backend/repositories"

	"gorm.io/datatypes"
)

// RoomTypeInput is one room type row of the merchant's hotel form.
type RoomTypeInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
}

// HotelInput is the merchant submission form. Submitting it (create or
// update) always puts the hotel back in front of the review queue.
type HotelInput struct {
	Name        string          `json:"name" binding:"required"`
	NameEN      string          `json:"name_en" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	Longitude   float64         `json:"longitude"`
	Latitude    float64         `json:"latitude"`
	StarRating  int             `json:"starRating" binding:"required,min=1,max=5"`
	Price       float64         `json:"price" binding:"required,min=0"`
	OpeningTime *time.Time      `json:"openingTime"`
	Description string          `json:"description"`
	Amenities   []string        `json:"amenities"`
	Images      []string        `json:"images"`
	MainImage   string          `json:"mainImage"`
	RoomTypes   []RoomTypeInput `json:"roomTypes" binding:"required,min=1,dive"`
}

// HotelService owns merchant hotel CRUD and the admin-driven lifecycle
// transitions.
type HotelService struct {
	hotels repositories.HotelRepository
}

func NewHotelService(hotels repositories.HotelRepository) *HotelService {
	return &HotelService{hotels: hotels}
}

// Create registers a new hotel for review. Hotels created by an admin skip
// the queue and start approved.
func (s *HotelService) Create(merchantID uint, role models.UserRole, in HotelInput) (*models.Hotel, error) {
	status := models.StatusPending
	if role == models.RoleAdmin {
		status = models.StatusApproved
	}

	hotel := &models.Hotel{
		MerchantID:  merchantID,
		Status:      status,
		Name:        in.Name,
		NameEN:      in.NameEN,
		Address:     in.Address,
		Longitude:   in.Longitude,
		Latitude:    in.Latitude,
		StarRating:  in.StarRating,
		Price:       in.Price,
		OpeningTime: in.OpeningTime,
		Description: in.Description,
		Amenities:   datatypes.NewJSONSlice(in.Amenities),
		Images:      datatypes.NewJSONSlice(in.Images),
		MainImage:   in.MainImage,
		RoomTypes:   roomTypesFromInput(in.RoomTypes),
	}
	if err := s.hotels.Create(hotel); err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return hotel, nil
}

// Update applies a merchant edit and resubmits the hotel for review: status
// returns to pending and any prior reject reason is cleared. This is also the
// rejected -> pending edge of the lifecycle.
func (s *HotelService) Update(hotelID, merchantID uint, in HotelInput) (*models.Hotel, error) {
	hotel, err := s.ownedHotel(hotelID, merchantID)
	if err != nil {
		return nil, err
	}

	hotel.Name = in.Name
	hotel.NameEN = in.NameEN
	hotel.Address = in.Address
	hotel.Longitude = in.Longitude
	hotel.Latitude = in.Latitude
	hotel.StarRating = in.StarRating
	hotel.Price = in.Price
	hotel.OpeningTime = in.OpeningTime
	hotel.Description = in.Description
	hotel.Amenities = datatypes.NewJSONSlice(in.Amenities)
	hotel.Images = datatypes.NewJSONSlice(in.Images)
	hotel.MainImage = in.MainImage
	hotel.Status = models.StatusPending
	hotel.RejectReason = ""

	roomTypes := roomTypesFromInput(in.RoomTypes)
	hotel.RoomTypes = nil
	if err := s.hotels.Update(hotel); err != nil {
		return nil, fmt.Errorf("failed to update hotel %d: %w", hotelID, err)
	}
	if err := s.hotels.ReplaceRoomTypes(hotelID, roomTypes); err != nil {
		return nil, fmt.Errorf("failed to replace room types for hotel %d: %w", hotelID, err)
	}
	hotel.RoomTypes = roomTypes
	return hotel, nil
}

func (s *HotelService) Delete(hotelID, merchantID uint) error {
	if _, err := s.ownedHotel(hotelID, merchantID); err != nil {
		return err
	}
	if err := s.hotels.Delete(hotelID); err != nil {
		return fmt.Errorf("failed to delete hotel %d: %w", hotelID, err)
	}
	return nil
}

// GetForMerchant returns the hotel in any status, owner only.
func (s *HotelService) GetForMerchant(hotelID, merchantID uint) (*models.Hotel, error) {
	return s.ownedHotel(hotelID, merchantID)
}

func (s *HotelService) ListByMerchant(merchantID uint, status models.HotelStatus, page, limit int) ([]models.Hotel, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, ErrNotFound
	}
	page, limit = normalizePage(page, limit)
	return s.hotels.ListByMerchant(merchantID, status, (page-1)*limit, limit)
}

// ListPending is the admin review queue.
func (s *HotelService) ListPending(page, limit int) ([]models.Hotel, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.hotels.ListByStatus(models.StatusPending, (page-1)*limit, limit)
}

// ListAll is the admin overview, optionally narrowed to one status.
func (s *HotelService) ListAll(status models.HotelStatus, page, limit int) ([]models.Hotel, int64, error) {
	page, limit = normalizePage(page, limit)
	if status == "" {
		return s.hotels.ListAll((page-1)*limit, limit)
	}
	if !status.Valid() {
		return nil, 0, ErrNotFound
	}
	return s.hotels.ListByStatus(status, (page-1)*limit, limit)
}

// Approve passes review. Re-approving an approved hotel is a no-op success.
// Clears any reject reason from a previous round.
func (s *HotelService) Approve(hotelID uint) (*models.Hotel, error) {
	return s.transition(hotelID, models.StatusApproved, "")
}

// Reject fails review with a mandatory reason.
func (s *HotelService) Reject(hotelID uint, reason string) (*models.Hotel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	return s.transition(hotelID, models.StatusRejected, reason)
}

// Publish makes an approved (or re-listed offline) hotel bookable.
func (s *HotelService) Publish(hotelID uint) (*models.Hotel, error) {
	return s.transition(hotelID, models.StatusPublished, "")
}

// Offline withdraws a published hotel from booking.
func (s *HotelService) Offline(hotelID uint) (*models.Hotel, error) {
	return s.transition(hotelID, models.StatusOffline, "")
}

func (s *HotelService) transition(hotelID uint, target models.HotelStatus, reason string) (*models.Hotel, error) {
	hotel, err := s.hotels.GetByID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}
	if hotel == nil {
		return nil, ErrNotFound
	}
	if !hotel.Status.CanTransition(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, hotel.Status, target)
	}

	hotel.Status = target
	hotel.RejectReason = reason
	if err := s.hotels.SaveStatus(hotel); err != nil {
		return nil, fmt.Errorf("failed to save hotel %d status: %w", hotelID, err)
	}
	return hotel, nil
}

func (s *HotelService) ownedHotel(hotelID, merchantID uint) (*models.Hotel, error) {
	hotel, err := s.hotels.GetByID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}
	if hotel == nil {
		return nil, ErrNotFound
	}
	if hotel.MerchantID != merchantID {
		return nil, ErrNotOwner
	}
	return hotel, nil
}

func roomTypesFromInput(inputs []RoomTypeInput) []models.RoomType {
	roomTypes := make([]models.RoomType, 0, len(inputs))
	for _, in := range inputs {
		capacity := in.Capacity
		if capacity < 1 {
			capacity = 2
		}
		roomTypes = append(roomTypes, models.RoomType{
			Name:        in.Name,
			Price:       in.Price,
			Capacity:    capacity,
			Description: in.Description,
		})
	}
	return roomTypes
}
