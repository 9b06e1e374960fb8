package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"estay-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(t *testing.T, ci, co time.Time) models.DateRange {
	t.Helper()
	r, err := models.NewDateRange(ci, co)
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}
	return r
}

// seedPublishedHotel puts one published hotel with a single room type into the
// repo and returns (hotel, roomType).
func seedPublishedHotel(hotels *memHotelRepo) (*models.Hotel, models.RoomType) {
	h := hotels.add(models.Hotel{
		MerchantID: 7,
		Name:       "海悦酒店",
		NameEN:     "Seaview Hotel",
		Address:    "北京市朝阳区",
		Status:     models.StatusPublished,
		Price:      300,
		RoomTypes: []models.RoomType{
			{Name: "Standard Twin", Price: 300, Capacity: 2},
		},
	})
	return h, h.RoomTypes[0]
}

func newBookingFixture() (*BookingService, *memBookingRepo, *memHotelRepo) {
	bookings := newMemBookingRepo()
	hotels := newMemHotelRepo()
	return NewBookingService(bookings, hotels), bookings, hotels
}

func TestReserveAndConflict(t *testing.T) {
	svc, _, hotels := newBookingFixture()
	hotel, room := seedPublishedHotel(hotels)

	first := stay(t, day(2026, 2, 20), day(2026, 2, 25))
	booking, err := svc.Reserve(1, hotel.ID, room.ID, first, 1)
	if err != nil {
		t.Fatalf("first Reserve: %v", err)
	}
	if booking.Status != models.BookingConfirmed {
		t.Fatalf("status = %s, want confirmed", booking.Status)
	}
	if booking.ReferenceCode == "" {
		t.Fatal("reference code not assigned")
	}
	if booking.TotalPrice != 5*300 {
		t.Fatalf("total price = %v, want %v", booking.TotalPrice, 5*300)
	}

	// An overlapping request for the same room type must fail with a
	// conflict, never double-book.
	overlap := stay(t, day(2026, 2, 22), day(2026, 2, 24))
	if _, err := svc.Reserve(2, hotel.ID, room.ID, overlap, 1); !errors.Is(err, ErrRoomConflict) {
		t.Fatalf("overlapping Reserve: got %v, want ErrRoomConflict", err)
	}

	// A back-to-back stay starting on the checkout day is legal.
	next := stay(t, day(2026, 2, 25), day(2026, 2, 28))
	if _, err := svc.Reserve(2, hotel.ID, room.ID, next, 1); err != nil {
		t.Fatalf("back-to-back Reserve: %v", err)
	}
}

func TestReserveUnpublishedHotel(t *testing.T) {
	svc, _, hotels := newBookingFixture()
	r := stay(t, day(2026, 3, 1), day(2026, 3, 3))

	for _, status := range []models.HotelStatus{
		models.StatusPending, models.StatusApproved, models.StatusRejected, models.StatusOffline,
	} {
		h := hotels.add(models.Hotel{
			MerchantID: 7,
			Status:     status,
			RoomTypes:  []models.RoomType{{Name: "Room", Price: 100}},
		})
		if _, err := svc.Reserve(1, h.ID, h.RoomTypes[0].ID, r, 1); !errors.Is(err, ErrHotelNotBookable) {
			t.Errorf("Reserve on %s hotel: got %v, want ErrHotelNotBookable", status, err)
		}
	}
}

func TestReserveUnknownHotelOrRoom(t *testing.T) {
	svc, _, hotels := newBookingFixture()
	hotel, _ := seedPublishedHotel(hotels)
	_, otherRoom := seedPublishedHotel(hotels)
	r := stay(t, day(2026, 3, 1), day(2026, 3, 3))

	if _, err := svc.Reserve(1, 999, 1, r, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown hotel: got %v, want ErrNotFound", err)
	}
	if _, err := svc.Reserve(1, hotel.ID, 999, r, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown room type: got %v, want ErrNotFound", err)
	}
	// A room type belonging to a different hotel is not found either.
	if _, err := svc.Reserve(1, hotel.ID, otherRoom.ID, r, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign room type: got %v, want ErrNotFound", err)
	}
}

func TestCancelFreesRange(t *testing.T) {
	svc, _, hotels := newBookingFixture()
	hotel, room := seedPublishedHotel(hotels)

	r := stay(t, day(2026, 2, 20), day(2026, 2, 25))
	booking, err := svc.Reserve(1, hotel.ID, room.ID, r, 1)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	if _, err := svc.Reserve(2, hotel.ID, room.ID, r, 1); !errors.Is(err, ErrRoomConflict) {
		t.Fatalf("pre-cancel Reserve: got %v, want ErrRoomConflict", err)
	}

	if err := svc.Cancel(booking.ID, 1); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	// The exact same range is bookable again once the first stay is cancelled.
	if _, err := svc.Reserve(2, hotel.ID, room.ID, r, 1); err != nil {
		t.Fatalf("post-cancel Reserve: %v", err)
	}
}

func TestCancelRules(t *testing.T) {
	svc, bookings, hotels := newBookingFixture()
	hotel, room := seedPublishedHotel(hotels)

	r := stay(t, day(2026, 2, 20), day(2026, 2, 25))
	booking, err := svc.Reserve(1, hotel.ID, room.ID, r, 1)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	if err := svc.Cancel(999, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown booking: got %v, want ErrNotFound", err)
	}
	if err := svc.Cancel(booking.ID, 2); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("foreign cancel: got %v, want ErrNotOwner", err)
	}

	if err := svc.Cancel(booking.ID, 1); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	// Cancelling again is an idempotent no-op.
	if err := svc.Cancel(booking.ID, 1); err != nil {
		t.Fatalf("repeat Cancel: %v", err)
	}

	// A completed stay can no longer be cancelled.
	stored, _ := bookings.GetByID(booking.ID)
	stored.Status = models.BookingCompleted
	if err := bookings.Save(stored); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Cancel(booking.ID, 1); !errors.Is(err, ErrBookingCompleted) {
		t.Fatalf("completed cancel: got %v, want ErrBookingCompleted", err)
	}
}

func TestIsAvailableIgnoresCancelled(t *testing.T) {
	svc, _, hotels := newBookingFixture()
	hotel, room := seedPublishedHotel(hotels)

	r := stay(t, day(2026, 2, 20), day(2026, 2, 25))
	booking, err := svc.Reserve(1, hotel.ID, room.ID, r, 1)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	free, err := svc.IsAvailable(room.ID, r)
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if free {
		t.Fatal("range should be occupied")
	}

	if err := svc.Cancel(booking.ID, 1); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	free, err = svc.IsAvailable(room.ID, r)
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if !free {
		t.Fatal("cancelled booking should not block the range")
	}
}

func TestConcurrentReserveExactlyOneWins(t *testing.T) {
	svc, bookings, hotels := newBookingFixture()
	hotel, room := seedPublishedHotel(hotels)

	r := stay(t, day(2026, 2, 20), day(2026, 2, 25))

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Reserve(uint(i+1), hotel.ID, room.ID, r, 1)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrRoomConflict):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("%d reservations succeeded, want exactly 1", succeeded)
	}

	active, err := bookings.ListActiveByRoomType(room.ID)
	if err != nil {
		t.Fatalf("ListActiveByRoomType: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("%d active bookings stored, want 1", len(active))
	}
}

func TestListByUser(t *testing.T) {
	svc, _, hotels := newBookingFixture()
	hotel, room := seedPublishedHotel(hotels)

	for d := 0; d < 3; d++ {
		r := stay(t, day(2026, 4, 1+d*3), day(2026, 4, 3+d*3))
		if _, err := svc.Reserve(1, hotel.ID, room.ID, r, 1); err != nil {
			t.Fatalf("Reserve %d: %v", d, err)
		}
	}
	r := stay(t, day(2026, 5, 1), day(2026, 5, 2))
	if _, err := svc.Reserve(2, hotel.ID, room.ID, r, 1); err != nil {
		t.Fatalf("Reserve for other user: %v", err)
	}

	list, total, err := svc.ListByUser(1, 1, 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if len(list) != 2 {
		t.Fatalf("page size = %d, want 2", len(list))
	}
	for _, b := range list {
		if b.UserID != 1 {
			t.Fatalf("booking %d belongs to user %d", b.ID, b.UserID)
		}
	}
}
