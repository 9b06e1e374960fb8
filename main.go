package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"estay-backend/config"
	"estay-backend/controllers"
	"estay-backend/repositories"
	"estay-backend/routes"
	"estay-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	hotelRepo := repositories.NewHotelRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	hotelService := services.NewHotelService(hotelRepo)
	bookingService := services.NewBookingService(bookingRepo, hotelRepo)
	ratingService := services.NewRatingService(ratingRepo, hotelRepo)
	searchService := services.NewSearchService(hotelRepo, bookingRepo)

	// Controllers
	authController := controllers.NewAuthController(authService)
	hotelController := controllers.NewHotelController(searchService, ratingService)
	bookingController := controllers.NewBookingController(bookingService, searchService)
	merchantController := controllers.NewMerchantController(hotelService, searchService)
	adminController := controllers.NewAdminController(hotelService, searchService)
	ratingController := controllers.NewRatingController(ratingService, searchService)

	router := routes.SetupRouter(
		authController,
		hotelController,
		bookingController,
		merchantController,
		adminController,
		ratingController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
