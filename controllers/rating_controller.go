package controllers

import (
	"net/http"

	"estay-backend/services"
	"estay-backend/utils"

	"github.com/gin-gonic/gin"
)

type RateHotelPayload struct {
	Score   float64 `json:"score" binding:"min=0,max=5"`
	Comment string  `json:"comment" binding:"max=500"`
}

type RatingController struct {
	Ratings *services.RatingService
	Search  *services.SearchService
}

func NewRatingController(ratings *services.RatingService, search *services.SearchService) *RatingController {
	return &RatingController{Ratings: ratings, Search: search}
}

// RateHotel handles POST /api/ratings/:hotelId. Rating the same hotel twice
// replaces the earlier score.
func (ctl *RatingController) RateHotel(c *gin.Context) {
	hotelID, ok := paramUint(c, "hotelId")
	if !ok {
		return
	}

	var payload RateHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := currentUser(c)
	rating, aggregate, err := ctl.Ratings.Upsert(userID, hotelID, payload.Score, payload.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctl.Search.FlushCache()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rating": rating, "aggregate": aggregate})
}

// GetMyRating handles GET /api/ratings/:hotelId/me.
func (ctl *RatingController) GetMyRating(c *gin.Context) {
	hotelID, ok := paramUint(c, "hotelId")
	if !ok {
		return
	}

	userID, _ := currentUser(c)
	rating, err := ctl.Ratings.GetUserRating(userID, hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rating": rating})
}

// DeleteRating handles DELETE /api/ratings/:id, owner only.
func (ctl *RatingController) DeleteRating(c *gin.Context) {
	ratingID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	userID, _ := currentUser(c)
	aggregate, err := ctl.Ratings.Delete(ratingID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctl.Search.FlushCache()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"aggregate": aggregate})
}
