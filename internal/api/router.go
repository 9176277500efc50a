package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/efinder/venue-booking/internal/api/handler"
	"github.com/efinder/venue-booking/internal/api/middleware"
	"github.com/efinder/venue-booking/internal/core/service"
	mongodb "github.com/efinder/venue-booking/internal/infrastructure/db/mongo"
	redisdb "github.com/efinder/venue-booking/internal/infrastructure/db/redis"
	"github.com/efinder/venue-booking/internal/infrastructure/storage"
	"github.com/efinder/venue-booking/internal/pkg/config"
	"github.com/efinder/venue-booking/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the slot lock then degrades to an unguarded availability
// check and readiness reports redis as disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, photos *storage.PhotoStore, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("venuebooking"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Development())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	venueRepo := mongodb.NewVenueRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)

	var slots service.SlotLocker
	if rdb != nil {
		slots = redisdb.NewSlotLock(rdb)
	}

	availability := service.NewAvailabilityService(bookingRepo, log)
	userService := service.NewUserService(userRepo, venueRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	venueService := service.NewVenueService(venueRepo, userRepo, bookingRepo, log)
	bookingService := service.NewBookingService(bookingRepo, venueRepo, userRepo, availability, slots, log)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService, userService)
	venueHandler := handler.NewVenueHandler(venueService, photos)
	bookingHandler := handler.NewBookingHandler(bookingService)
	authGuard := middleware.Auth(cfg.JWTSecret)

	// --- Users ---
	e.POST("/api/users", userHandler.Register)
	e.GET("/api/users", userHandler.List)
	e.GET("/api/users/:id", userHandler.Get)
	e.PUT("/api/users/:id", userHandler.Update)
	e.DELETE("/api/users/:id", userHandler.Delete)
	e.GET("/api/users/:id/venues", userHandler.Venues)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, authGuard)

	// --- Venues ---
	e.POST("/api/venues", venueHandler.Create)
	e.GET("/api/venues", venueHandler.List)
	e.GET("/api/venues/search", venueHandler.Search)
	e.GET("/api/venues/owner/:ownerId", venueHandler.ByOwner)
	e.GET("/api/venues/:id", venueHandler.Get)
	e.PUT("/api/venues/:id", venueHandler.Update)
	e.DELETE("/api/venues/:id", venueHandler.Delete)
	e.GET("/api/venues/:id/stats", venueHandler.Stats)
	e.GET("/api/venues/:id/availability", bookingHandler.DateAvailability)

	// --- Bookings ---
	e.POST("/api/bookings", bookingHandler.Create)
	e.GET("/api/bookings", bookingHandler.List)
	e.GET("/api/bookings/organizer/:organizerId", bookingHandler.ByOrganizer)
	e.GET("/api/bookings/venue/:venueId", bookingHandler.ByVenue)
	e.GET("/api/bookings/venue/:venueId/availability", bookingHandler.WindowAvailability)
	e.GET("/api/bookings/:id", bookingHandler.Get)
	e.PUT("/api/bookings/:id", bookingHandler.Update)
	e.PATCH("/api/bookings/:id/status", bookingHandler.UpdateStatus)
	e.DELETE("/api/bookings/:id", bookingHandler.Delete)
	e.GET("/api/bookings/:id/stats", bookingHandler.Stats)

	// --- Uploaded venue photos ---
	e.Static("/uploads", photos.Dir())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
