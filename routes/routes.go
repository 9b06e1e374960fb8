package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"estay-backend/controllers"
	"estay-backend/middleware"
	"estay-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the gin engine. The public read side is
// open; bookings and ratings need a login; merchant and admin groups are
// role-guarded.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	bc *controllers.BookingController,
	mc *controllers.MerchantController,
	adc *controllers.AdminController,
	rc *controllers.RatingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.SearchHotels)
			hotels.GET("/featured", hc.GetFeatured)
			hotels.GET("/:id", hc.GetHotelDetail)
			hotels.GET("/:id/ratings", hc.GetHotelRatings)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.ListMyBookings)
			bookings.PUT("/:id/cancel", bc.CancelBooking)
		}

		ratings := api.Group("/ratings", middleware.RequireAuth())
		{
			ratings.POST("/:hotelId", rc.RateHotel)
			ratings.GET("/:hotelId/me", rc.GetMyRating)
			ratings.DELETE("/:id", rc.DeleteRating)
		}

		merchant := api.Group("/merchant", middleware.RequireAuth(), middleware.RequireRole(models.RoleMerchant))
		{
			merchant.POST("/hotels", mc.CreateHotel)
			merchant.GET("/hotels", mc.ListMyHotels)
			merchant.GET("/hotels/:id", mc.GetMyHotel)
			merchant.PUT("/hotels/:id", mc.UpdateHotel)
			merchant.DELETE("/hotels/:id", mc.DeleteHotel)
			merchant.POST("/images", mc.UploadImage)
		}

		admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/hotels", adc.ListAllHotels)
			admin.GET("/hotels/pending", adc.ListPendingHotels)
			admin.PUT("/hotels/:id/approve", adc.ApproveHotel)
			admin.PUT("/hotels/:id/reject", adc.RejectHotel)
			admin.PUT("/hotels/:id/publish", adc.PublishHotel)
			admin.PUT("/hotels/:id/offline", adc.OfflineHotel)
		}
	}

	return r
}
