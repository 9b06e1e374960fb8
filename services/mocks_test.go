package services

import (
	"sort"
	"strings"
	"sync"

	"estay-backend/models"
	"estay-backend/repositories"
)

// In-memory repositories backing the service tests. They hold everything in
// maps behind a mutex so the concurrency tests can hammer them safely.

type memUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*models.User)}
}

func (r *memUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type memHotelRepo struct {
	mu         sync.Mutex
	nextID     uint
	nextRoomID uint
	hotels     map[uint]*models.Hotel
}

func newMemHotelRepo() *memHotelRepo {
	return &memHotelRepo{hotels: make(map[uint]*models.Hotel)}
}

// add seeds a hotel (and its room types) and returns it with IDs assigned.
func (r *memHotelRepo) add(h models.Hotel) *models.Hotel {
	if err := r.Create(&h); err != nil {
		panic(err)
	}
	return &h
}

func (r *memHotelRepo) Create(hotel *models.Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	hotel.ID = r.nextID
	for i := range hotel.RoomTypes {
		r.nextRoomID++
		hotel.RoomTypes[i].ID = r.nextRoomID
		hotel.RoomTypes[i].HotelID = hotel.ID
	}
	cp := *hotel
	cp.RoomTypes = append([]models.RoomType(nil), hotel.RoomTypes...)
	r.hotels[hotel.ID] = &cp
	return nil
}

func (r *memHotelRepo) Update(hotel *models.Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.hotels[hotel.ID]
	if !ok {
		return nil
	}
	rooms := stored.RoomTypes
	cp := *hotel
	cp.RoomTypes = rooms
	r.hotels[hotel.ID] = &cp
	return nil
}

func (r *memHotelRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.hotels, id)
	return nil
}

func (r *memHotelRepo) GetByID(id uint) (*models.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	cp.RoomTypes = append([]models.RoomType(nil), h.RoomTypes...)
	return &cp, nil
}

func (r *memHotelRepo) ListVisible(filter repositories.HotelFilter) ([]models.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Hotel
	for _, h := range r.hotels {
		if len(filter.Statuses) > 0 && !statusIn(h.Status, filter.Statuses) {
			continue
		}
		if filter.City != "" && !strings.Contains(h.Address, filter.City) {
			continue
		}
		if filter.Keyword != "" && !matchesKeyword(h, filter.Keyword) {
			continue
		}
		if filter.MinPrice > 0 && h.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && h.Price > filter.MaxPrice {
			continue
		}
		if filter.StarRating > 0 && h.StarRating != filter.StarRating {
			continue
		}
		cp := *h
		cp.RoomTypes = append([]models.RoomType(nil), h.RoomTypes...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memHotelRepo) ListByMerchant(merchantID uint, status models.HotelStatus, offset, limit int) ([]models.Hotel, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.Hotel
	for _, h := range r.hotels {
		if h.MerchantID != merchantID {
			continue
		}
		if status != "" && h.Status != status {
			continue
		}
		all = append(all, *h)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return pageHotels(all, offset, limit), int64(len(all)), nil
}

func (r *memHotelRepo) ListByStatus(status models.HotelStatus, offset, limit int) ([]models.Hotel, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.Hotel
	for _, h := range r.hotels {
		if h.Status == status {
			all = append(all, *h)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return pageHotels(all, offset, limit), int64(len(all)), nil
}

func (r *memHotelRepo) ListAll(offset, limit int) ([]models.Hotel, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.Hotel
	for _, h := range r.hotels {
		all = append(all, *h)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return pageHotels(all, offset, limit), int64(len(all)), nil
}

func (r *memHotelRepo) ReplaceRoomTypes(hotelID uint, roomTypes []models.RoomType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[hotelID]
	if !ok {
		return nil
	}
	fresh := make([]models.RoomType, len(roomTypes))
	copy(fresh, roomTypes)
	for i := range fresh {
		r.nextRoomID++
		fresh[i].ID = r.nextRoomID
		fresh[i].HotelID = hotelID
	}
	h.RoomTypes = fresh
	return nil
}

func (r *memHotelRepo) GetRoomType(id uint) (*models.RoomType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.hotels {
		for _, rt := range h.RoomTypes {
			if rt.ID == id {
				cp := rt
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *memHotelRepo) UpdateRatingStats(hotelID uint, average float64, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.hotels[hotelID]; ok {
		h.AverageRating = average
		h.RatingCount = count
	}
	return nil
}

func (r *memHotelRepo) SaveStatus(hotel *models.Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.hotels[hotel.ID]; ok {
		h.Status = hotel.Status
		h.RejectReason = hotel.RejectReason
	}
	return nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[uint]*models.Booking)}
}

func (r *memBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	booking.ID = r.nextID
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *memBookingRepo) Save(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *memBookingRepo) GetByID(id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBookingRepo) ListActiveByRoomType(roomTypeID uint) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.RoomTypeID == roomTypeID && b.Status.Occupying() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListActiveByHotel(hotelID uint) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.HotelID == hotelID && b.Status.Occupying() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByUser(userID uint, offset, limit int) ([]models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			all = append(all, *b)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type memRatingRepo struct {
	mu      sync.Mutex
	nextID  uint
	ratings map[uint]*models.Rating
}

func newMemRatingRepo() *memRatingRepo {
	return &memRatingRepo{ratings: make(map[uint]*models.Rating)}
}

func (r *memRatingRepo) Create(rating *models.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rating.ID = r.nextID
	cp := *rating
	r.ratings[rating.ID] = &cp
	return nil
}

func (r *memRatingRepo) Save(rating *models.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rating
	r.ratings[rating.ID] = &cp
	return nil
}

func (r *memRatingRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ratings, id)
	return nil
}

func (r *memRatingRepo) GetByID(id uint) (*models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.ratings[id]
	if !ok {
		return nil, nil
	}
	cp := *rt
	return &cp, nil
}

func (r *memRatingRepo) GetByUserAndHotel(userID, hotelID uint) (*models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range r.ratings {
		if rt.UserID == userID && rt.HotelID == hotelID {
			cp := *rt
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRatingRepo) ListByHotel(hotelID uint, offset, limit int) ([]models.Rating, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.Rating
	for _, rt := range r.ratings {
		if rt.HotelID == hotelID {
			all = append(all, *rt)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memRatingRepo) AggregateForHotel(hotelID uint) (float64, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum float64
	count := 0
	for _, rt := range r.ratings {
		if rt.HotelID == hotelID {
			sum += rt.Score
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

func statusIn(s models.HotelStatus, set []models.HotelStatus) bool {
	for _, st := range set {
		if s == st {
			return true
		}
	}
	return false
}

func matchesKeyword(h *models.Hotel, kw string) bool {
	return strings.Contains(h.Name, kw) ||
		strings.Contains(h.NameEN, kw) ||
		strings.Contains(h.Description, kw) ||
		strings.Contains(h.Address, kw)
}

func pageHotels(all []models.Hotel, offset, limit int) []models.Hotel {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
