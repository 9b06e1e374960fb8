package controllers

import (
	"net/http"

	"estay-backend/services"
	"estay-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookingPayload struct {
	HotelID    uint   `json:"hotelId" binding:"required"`
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
	CheckIn    string `json:"checkInDate" binding:"required"`
	CheckOut   string `json:"checkOutDate" binding:"required"`
	RoomCount  int    `json:"roomCount"`
}

type BookingController struct {
	Bookings *services.BookingService
	Search   *services.SearchService
}

func NewBookingController(bookings *services.BookingService, search *services.SearchService) *BookingController {
	return &BookingController{Bookings: bookings, Search: search}
}

// CreateBooking handles POST /api/bookings. A conflict on the requested
// range comes back as 409; the client picks other dates, never another room.
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	stay, err := services.ParseStayRange(payload.CheckIn, payload.CheckOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	userID, _ := currentUser(c)
	booking, err := ctl.Bookings.Reserve(userID, payload.HotelID, payload.RoomTypeID, stay, payload.RoomCount)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctl.Search.FlushCache()
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"booking": booking})
}

// ListMyBookings handles GET /api/bookings, newest first, every status.
func (ctl *BookingController) ListMyBookings(c *gin.Context) {
	userID, _ := currentUser(c)
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	bookings, total, err := ctl.Bookings.ListByUser(userID, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, "bookings", bookings, page, limit, total)
}

// CancelBooking handles PUT /api/bookings/:id/cancel. Idempotent.
func (ctl *BookingController) CancelBooking(c *gin.Context) {
	bookingID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	userID, _ := currentUser(c)
	if err := ctl.Bookings.Cancel(bookingID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	ctl.Search.FlushCache()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking cancelled"})
}
