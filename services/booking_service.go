package services

import (
	"fmt"
	"sync"

	"estay-backend/models"
	"estay-backend/repositories"
	"estay-backend/utils"
)

// roomLocks hands out one mutex per room type so reservation check-then-commit
// is serialized per room while unrelated rooms book concurrently. Locks are
// never removed; the map grows with the number of distinct room types booked.
type roomLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func (l *roomLocks) forRoomType(roomTypeID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[uint]*sync.Mutex)
	}
	lk, ok := l.locks[roomTypeID]
	if !ok {
		lk = &sync.Mutex{}
		l.locks[roomTypeID] = lk
	}
	return lk
}

// BookingService is the authoritative ledger of which (room type, date range)
// pairs are taken.
type BookingService struct {
	bookings repositories.BookingRepository
	hotels   repositories.HotelRepository
	locks    roomLocks
}

func NewBookingService(bookings repositories.BookingRepository, hotels repositories.HotelRepository) *BookingService {
	return &BookingService{bookings: bookings, hotels: hotels}
}

// IsAvailable reports whether no occupying booking for the room type overlaps
// the range. The answer can go stale immediately; Reserve re-checks under the
// room lock and is the only authority.
func (s *BookingService) IsAvailable(roomTypeID uint, r models.DateRange) (bool, error) {
	active, err := s.bookings.ListActiveByRoomType(roomTypeID)
	if err != nil {
		return false, fmt.Errorf("failed to load bookings for room type %d: %w", roomTypeID, err)
	}
	for _, b := range active {
		if b.Range().Overlaps(r) {
			return false, nil
		}
	}
	return true, nil
}

// Reserve books the room type for the range. The availability check and the
// insert run under the room type's mutex, so two overlapping requests cannot
// both succeed.
func (s *BookingService) Reserve(userID, hotelID, roomTypeID uint, r models.DateRange, roomCount int) (*models.Booking, error) {
	hotel, err := s.hotels.GetByID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}
	if hotel == nil {
		return nil, ErrNotFound
	}
	if !hotel.Status.Bookable() {
		return nil, ErrHotelNotBookable
	}

	roomType, err := s.hotels.GetRoomType(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room type %d: %w", roomTypeID, err)
	}
	if roomType == nil || roomType.HotelID != hotelID {
		return nil, ErrNotFound
	}

	if roomCount < 1 {
		roomCount = 1
	}

	lk := s.locks.forRoomType(roomTypeID)
	lk.Lock()
	defer lk.Unlock()

	free, err := s.IsAvailable(roomTypeID, r)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrRoomConflict
	}

	ref, err := utils.GenerateReferenceCode(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reference code: %w", err)
	}

	booking := &models.Booking{
		UserID:        userID,
		HotelID:       hotelID,
		RoomTypeID:    roomTypeID,
		ReferenceCode: ref,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		RoomCount:     roomCount,
		TotalPrice:    float64(r.Nights()) * roomType.Price * float64(roomCount),
		Status:        models.BookingConfirmed,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// Cancel marks the booking cancelled, freeing its range. Only the owner may
// cancel. Cancelling an already-cancelled booking is a no-op so client
// retries do not error.
func (s *BookingService) Cancel(bookingID, userID uint) error {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}
	if booking == nil {
		return ErrNotFound
	}
	if booking.UserID != userID {
		return ErrNotOwner
	}
	if booking.Status == models.BookingCancelled {
		return nil
	}
	if booking.Status == models.BookingCompleted {
		return ErrBookingCompleted
	}

	booking.Status = models.BookingCancelled
	if err := s.bookings.Save(booking); err != nil {
		return fmt.Errorf("failed to cancel booking %d: %w", bookingID, err)
	}
	return nil
}

// ListByUser returns the user's bookings in every status, newest first.
func (s *BookingService) ListByUser(userID uint, page, limit int) ([]models.Booking, int64, error) {
	page, limit = normalizePage(page, limit)
	bookings, total, err := s.bookings.ListByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, total, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

