package controllers

import (
	"net/http"
	"strings"

	"estay-backend/services"
	"estay-backend/utils"

	"github.com/gin-gonic/gin"
)

// HotelController serves the public read side: search, featured, detail and
// the rating list. No authentication required.
type HotelController struct {
	Search  *services.SearchService
	Ratings *services.RatingService
}

func NewHotelController(search *services.SearchService, ratings *services.RatingService) *HotelController {
	return &HotelController{Search: search, Ratings: ratings}
}

// SearchHotels handles GET /api/hotels with the full filter set. An optional
// checkInDate/checkOutDate pair narrows room types to available ones and
// drops hotels with nothing left.
func (ctl *HotelController) SearchHotels(c *gin.Context) {
	stay, ok := queryRange(c)
	if !ok {
		return
	}

	var amenities []string
	if raw := c.Query("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				amenities = append(amenities, a)
			}
		}
	}

	params := services.SearchParams{
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 10),
		City:       c.Query("city"),
		Keyword:    c.Query("keyword"),
		MinPrice:   queryFloat(c, "minPrice"),
		MaxPrice:   queryFloat(c, "maxPrice"),
		StarRating: queryInt(c, "starRating", 0),
		Amenities:  amenities,
		Sort:       c.DefaultQuery("sort", c.Query("sorter")),
		Latitude:   queryFloat(c, "latitude"),
		Longitude:  queryFloat(c, "longitude"),
		Range:      stay,
	}

	hotels, total, err := ctl.Search.Search(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, "hotels", hotels, params.Page, params.Limit, total)
}

// GetFeatured handles GET /api/hotels/featured for the home banner.
func (ctl *HotelController) GetFeatured(c *gin.Context) {
	stay, ok := queryRange(c)
	if !ok {
		return
	}

	hotels, err := ctl.Search.Featured(
		queryInt(c, "limit", 3),
		c.Query("city"),
		queryFloat(c, "latitude"),
		queryFloat(c, "longitude"),
		stay,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotels": hotels})
}

// GetHotelDetail handles GET /api/hotels/:id.
func (ctl *HotelController) GetHotelDetail(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	stay, ok := queryRange(c)
	if !ok {
		return
	}

	hotel, err := ctl.Search.Detail(hotelID, stay)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotel": hotel})
}

// GetHotelRatings handles GET /api/hotels/:id/ratings.
func (ctl *HotelController) GetHotelRatings(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	ratings, total, err := ctl.Ratings.ListByHotel(hotelID, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, "ratings", ratings, page, limit, total)
}
