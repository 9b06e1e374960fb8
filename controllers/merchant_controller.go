package controllers

import (
	"net/http"

	"estay-backend/models"
	"estay-backend/services"
	"estay-backend/utils"

	"github.com/gin-gonic/gin"
)

// MerchantController is the hotel owner's back office. Every handler assumes
// the merchant/admin role guard already ran.
type MerchantController struct {
	Hotels *services.HotelService
	Search *services.SearchService
}

func NewMerchantController(hotels *services.HotelService, search *services.SearchService) *MerchantController {
	return &MerchantController{Hotels: hotels, Search: search}
}

// CreateHotel handles POST /api/merchant/hotels. New hotels enter the review
// queue as pending.
func (ctl *MerchantController) CreateHotel(c *gin.Context) {
	var input services.HotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role := currentUser(c)
	hotel, err := ctl.Hotels.Create(userID, role, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctl.Search.FlushCache()
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"hotel": hotel})
}

// ListMyHotels handles GET /api/merchant/hotels; all statuses are visible to
// the owner, optionally narrowed with ?status=.
func (ctl *MerchantController) ListMyHotels(c *gin.Context) {
	userID, _ := currentUser(c)
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	hotels, total, err := ctl.Hotels.ListByMerchant(userID, models.HotelStatus(c.Query("status")), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, "hotels", hotels, page, limit, total)
}

// GetMyHotel handles GET /api/merchant/hotels/:id.
func (ctl *MerchantController) GetMyHotel(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	userID, _ := currentUser(c)
	hotel, err := ctl.Hotels.GetForMerchant(hotelID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotel": hotel})
}

// UpdateHotel handles PUT /api/merchant/hotels/:id. Editing resubmits the
// hotel for review.
func (ctl *MerchantController) UpdateHotel(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var input services.HotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := currentUser(c)
	hotel, err := ctl.Hotels.Update(hotelID, userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctl.Search.FlushCache()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotel": hotel})
}

// UploadImagePayload carries one base64-encoded image, optionally as a data
// URL ("data:image/png;base64,...").
type UploadImagePayload struct {
	Image string `json:"image" binding:"required"`
}

// UploadImage handles POST /api/merchant/images. The returned path goes into
// the hotel form's images/mainImage fields and is served under /uploads.
func (ctl *MerchantController) UploadImage(c *gin.Context) {
	var payload UploadImagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	path, err := services.SaveHotelImage(payload.Image)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"path": path, "url": "/uploads/" + path})
}

// DeleteHotel handles DELETE /api/merchant/hotels/:id.
func (ctl *MerchantController) DeleteHotel(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	userID, _ := currentUser(c)
	if err := ctl.Hotels.Delete(hotelID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	ctl.Search.FlushCache()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "hotel deleted"})
}
