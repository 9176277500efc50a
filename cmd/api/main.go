package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/efinder/venue-booking/internal/api"
	mongodb "github.com/efinder/venue-booking/internal/infrastructure/db/mongo"
	redisdb "github.com/efinder/venue-booking/internal/infrastructure/db/redis"
	"github.com/efinder/venue-booking/internal/infrastructure/storage"
	"github.com/efinder/venue-booking/internal/pkg/config"
	"github.com/efinder/venue-booking/pkg/logger"
)

// @title        Venue Booking API
// @version      1.0
// @description  REST API for venue and event booking management.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
	}

	// Redis backs the booking slot lock. The service stays up without it;
	// concurrent creates are then unguarded.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, booking slot lock disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	photos, err := storage.NewPhotoStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	e := api.NewRouter(db, rdb, photos, cfg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("venue booking api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}

// ensureIndexes creates the unique and query indexes for every collection.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewVenueRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewBookingRepository(db).EnsureIndexes(ctx)
}
