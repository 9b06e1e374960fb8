package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"estay-backend/models"
	"estay-backend/services"
	"estay-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the domain error taxonomy onto HTTP statuses.
// Anything unmapped is logged and returned as a 500 without leaking detail.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidRange),
		errors.Is(err, services.ErrReasonRequired),
		errors.Is(err, services.ErrInvalidScore):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomConflict),
		errors.Is(err, services.ErrHotelNotBookable),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrBookingCompleted),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "server error")
	}
}

// currentUser reads the identity the auth middleware stored on the context.
func currentUser(c *gin.Context) (uint, models.UserRole) {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")
	id, _ := userID.(uint)
	r, _ := role.(models.UserRole)
	return id, r
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, ""))
	if err != nil {
		return def
	}
	return v
}

func queryFloat(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return v
}

// queryRange parses optional checkInDate/checkOutDate params. Returns nil
// with ok=true when neither is supplied.
func queryRange(c *gin.Context) (*models.DateRange, bool) {
	checkIn := c.Query("checkInDate")
	checkOut := c.Query("checkOutDate")
	if checkIn == "" && checkOut == "" {
		return nil, true
	}
	r, err := services.ParseStayRange(checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	return &r, true
}
