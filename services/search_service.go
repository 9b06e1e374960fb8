package services

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"estay-backend/models"
	"estay-backend/repositories"
	"estay-backend/utils"

	"github.com/karlseguin/ccache/v3"
)

// Sort orders accepted by Search. Empty means "recommended": rated hotels
// first, then by rating, star level and recency.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating_desc"
	SortDistance  = "distance_asc"
)

const searchCacheTTL = 30 * time.Second

// SearchParams are the public search filters. Range, when set, switches the
// room-type list from informational to filtered.
type SearchParams struct {
	Page       int
	Limit      int
	City       string
	Keyword    string
	MinPrice   float64
	MaxPrice   float64
	StarRating int
	Amenities  []string
	Sort       string
	Latitude   float64
	Longitude  float64
	Range      *models.DateRange
}

// HotelResult is a hotel with its room types replaced by the availability
// view. The outer RoomTypes field shadows the model's on marshalling.
type HotelResult struct {
	models.Hotel
	RoomTypes []RoomTypeView `json:"roomTypes"`
}

type searchPage struct {
	Hotels []HotelResult
	Total  int64
}

// SearchService serves the public read side: search, featured, detail.
// Responses are kept in a short-TTL in-process cache; any hotel, booking or
// rating mutation flushes it.
type SearchService struct {
	hotels   repositories.HotelRepository
	bookings repositories.BookingRepository
	cache    *ccache.Cache[searchPage]
}

func NewSearchService(hotels repositories.HotelRepository, bookings repositories.BookingRepository) *SearchService {
	return &SearchService{
		hotels:   hotels,
		bookings: bookings,
		cache:    ccache.New(ccache.Configure[searchPage]().MaxSize(1000)),
	}
}

// FlushCache drops every cached search page. Called after any mutation that
// can change what the public sees.
func (s *SearchService) FlushCache() {
	s.cache.Clear()
}

// Search lists publicly visible hotels matching the filters.
func (s *SearchService) Search(params SearchParams) ([]HotelResult, int64, error) {
	params.Page, params.Limit = normalizePage(params.Page, params.Limit)

	key := searchCacheKey(params)
	if item := s.cache.Get(key); item != nil && !item.Expired() {
		page := item.Value()
		return page.Hotels, page.Total, nil
	}

	hotels, err := s.hotels.ListVisible(repositories.HotelFilter{
		Statuses:   models.PublicStatuses(),
		City:       params.City,
		Keyword:    params.Keyword,
		MinPrice:   params.MinPrice,
		MaxPrice:   params.MaxPrice,
		StarRating: params.StarRating,
	})
	if err != nil {
		return nil, 0, err
	}

	hotels = filterByAmenities(hotels, params.Amenities)

	lon, lat, hasBase := utils.ResolveBasePoint(params.City, params.Keyword, params.Latitude, params.Longitude)
	if hasBase {
		for i := range hotels {
			hotels[i].Distance = hotelDistance(&hotels[i], lat, lon)
		}
	}

	results, err := s.buildResults(hotels, params.Range, true)
	if err != nil {
		return nil, 0, err
	}

	sortResults(results, params.Sort, hasBase)

	total := int64(len(results))
	page := paginate(results, params.Page, params.Limit)

	s.cache.Set(key, searchPage{Hotels: page, Total: total}, searchCacheTTL)
	return page, total, nil
}

// Featured returns a random sample of published hotels for the home banner.
func (s *SearchService) Featured(limit int, city string, latitude, longitude float64, requested *models.DateRange) ([]HotelResult, error) {
	if limit < 1 {
		limit = 3
	}

	hotels, err := s.hotels.ListVisible(repositories.HotelFilter{
		Statuses: []models.HotelStatus{models.StatusPublished},
	})
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(hotels), func(i, j int) {
		hotels[i], hotels[j] = hotels[j], hotels[i]
	})
	if len(hotels) > limit {
		hotels = hotels[:limit]
	}

	if lon, lat, ok := utils.ResolveBasePoint(city, "", latitude, longitude); ok {
		for i := range hotels {
			hotels[i].Distance = hotelDistance(&hotels[i], lat, lon)
		}
	}

	return s.buildResults(hotels, requested, true)
}

// Detail returns one publicly visible hotel with its room-type view. Unlike
// search, a hotel with no available room types is still returned.
func (s *SearchService) Detail(hotelID uint, requested *models.DateRange) (*HotelResult, error) {
	hotel, err := s.hotels.GetByID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}
	if hotel == nil || !hotel.Status.PublicVisible() {
		return nil, ErrNotFound
	}

	active, err := s.bookings.ListActiveByHotel(hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for hotel %d: %w", hotelID, err)
	}

	return &HotelResult{
		Hotel:     *hotel,
		RoomTypes: FilterRoomTypes(hotel.RoomTypes, active, requested),
	}, nil
}

// buildResults attaches the room-type view to each hotel. When filtering by a
// range, hotels left with no available room types are dropped (dropEmpty).
func (s *SearchService) buildResults(hotels []models.Hotel, requested *models.DateRange, dropEmpty bool) ([]HotelResult, error) {
	results := make([]HotelResult, 0, len(hotels))
	for i := range hotels {
		active, err := s.bookings.ListActiveByHotel(hotels[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load bookings for hotel %d: %w", hotels[i].ID, err)
		}
		views := FilterRoomTypes(hotels[i].RoomTypes, active, requested)
		if requested != nil && dropEmpty && len(views) == 0 {
			continue
		}
		results = append(results, HotelResult{Hotel: hotels[i], RoomTypes: views})
	}
	return results, nil
}

func filterByAmenities(hotels []models.Hotel, wanted []string) []models.Hotel {
	if len(wanted) == 0 {
		return hotels
	}
	out := hotels[:0]
	for _, h := range hotels {
		if hasAllAmenities(h.Amenities, wanted) {
			out = append(out, h)
		}
	}
	return out
}

func hasAllAmenities(have []string, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, a := range have {
			if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(w)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func hotelDistance(h *models.Hotel, lat, lon float64) float64 {
	if h.Longitude == 0 && h.Latitude == 0 {
		return utils.UnknownDistance
	}
	return utils.Haversine(lat, lon, h.Latitude, h.Longitude)
}

func sortResults(results []HotelResult, order string, hasBase bool) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	case SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price > results[j].Price })
	case SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].AverageRating != results[j].AverageRating {
				return results[i].AverageRating > results[j].AverageRating
			}
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	case SortDistance:
		if hasBase {
			sort.SliceStable(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
		}
	default:
		// Recommended: rated hotels first, then rating, star level, recency.
		sort.SliceStable(results, func(i, j int) bool {
			ri, rj := results[i], results[j]
			if (ri.RatingCount > 0) != (rj.RatingCount > 0) {
				return ri.RatingCount > 0
			}
			if ri.AverageRating != rj.AverageRating {
				return ri.AverageRating > rj.AverageRating
			}
			if ri.StarRating != rj.StarRating {
				return ri.StarRating > rj.StarRating
			}
			return ri.CreatedAt.After(rj.CreatedAt)
		})
	}
}

func paginate(results []HotelResult, page, limit int) []HotelResult {
	start := (page - 1) * limit
	if start >= len(results) {
		return []HotelResult{}
	}
	end := start + limit
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

func searchCacheKey(p SearchParams) string {
	rangeKey := ""
	if p.Range != nil {
		rangeKey = p.Range.CheckIn.Format("2006-01-02") + ":" + p.Range.CheckOut.Format("2006-01-02")
	}
	return fmt.Sprintf("search|%d|%d|%s|%s|%g|%g|%d|%s|%s|%g|%g|%s",
		p.Page, p.Limit, strings.ToLower(p.City), strings.ToLower(p.Keyword),
		p.MinPrice, p.MaxPrice, p.StarRating,
		strings.ToLower(strings.Join(p.Amenities, ",")), p.Sort,
		p.Latitude, p.Longitude, rangeKey)
}
