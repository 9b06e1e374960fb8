package controllers

import (
	"net/http"

	"estay-backend/models"
	"estay-backend/services"
	"estay-backend/utils"

	"github.com/gin-gonic/gin"
)

type RejectHotelPayload struct {
	Reason string `json:"reason" binding:"required"`
}

// AdminController drives the hotel review lifecycle. Handlers assume the
// admin role guard already ran.
type AdminController struct {
	Hotels *services.HotelService
	Search *services.SearchService
}

func NewAdminController(hotels *services.HotelService, search *services.SearchService) *AdminController {
	return &AdminController{Hotels: hotels, Search: search}
}

// ListPendingHotels handles GET /api/admin/hotels/pending — the review queue.
func (ctl *AdminController) ListPendingHotels(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	hotels, total, err := ctl.Hotels.ListPending(page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, "hotels", hotels, page, limit, total)
}

// ListAllHotels handles GET /api/admin/hotels, optionally ?status= narrowed.
func (ctl *AdminController) ListAllHotels(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	hotels, total, err := ctl.Hotels.ListAll(models.HotelStatus(c.Query("status")), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, "hotels", hotels, page, limit, total)
}

// ApproveHotel handles PUT /api/admin/hotels/:id/approve.
func (ctl *AdminController) ApproveHotel(c *gin.Context) {
	ctl.runTransition(c, ctl.Hotels.Approve)
}

// RejectHotel handles PUT /api/admin/hotels/:id/reject; the reason is
// mandatory and stored on the hotel.
func (ctl *AdminController) RejectHotel(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var payload RejectHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hotel, err := ctl.Hotels.Reject(hotelID, payload.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctl.Search.FlushCache()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotel": hotel})
}

// PublishHotel handles PUT /api/admin/hotels/:id/publish.
func (ctl *AdminController) PublishHotel(c *gin.Context) {
	ctl.runTransition(c, ctl.Hotels.Publish)
}

// OfflineHotel handles PUT /api/admin/hotels/:id/offline.
func (ctl *AdminController) OfflineHotel(c *gin.Context) {
	ctl.runTransition(c, ctl.Hotels.Offline)
}

func (ctl *AdminController) runTransition(c *gin.Context, action func(uint) (*models.Hotel, error)) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	hotel, err := action(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctl.Search.FlushCache()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotel": hotel})
}
