package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pickle-rental/pickle-api/internal/api"
	"github.com/pickle-rental/pickle-api/internal/config"
	"github.com/pickle-rental/pickle-api/internal/events"
	"github.com/pickle-rental/pickle-api/internal/platform/media"
	"github.com/pickle-rental/pickle-api/internal/platform/postgres"
	"github.com/pickle-rental/pickle-api/internal/service"
	"github.com/pickle-rental/pickle-api/internal/service/auth"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     api.Pinger

	jwtService         auth.JWTService
	storeService       service.StoreService
	dressService       service.DressService
	likeService        service.LikeService
	reservationService service.ReservationService
}

// newApplication wires stores, services and the event emitter on top of db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{config: cfg, logger: logger, db: db}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	urls, err := media.NewURLBuilder(cfg.Media.BaseURL, cfg.Media.Buckets)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media URLs: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	storeStore := postgres.NewPostgresStoreStore(db, logger)
	dressStore := postgres.NewPostgresDressStore(db, logger)
	optionStore := postgres.NewPostgresOptionStore(db, logger)
	reservationStore := postgres.NewPostgresReservationStore(db, logger)
	likeStore := postgres.NewPostgresLikeStore(db, logger)
	viewStore := postgres.NewPostgresRecentViewStore(db, logger)

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogHandler(logger))

	app.storeService, err = service.NewStoreService(storeStore, dressStore, urls, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create store service: %w", err)
	}

	views, err := service.NewRecentViewService(viewStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create recent view service: %w", err)
	}

	app.dressService, err = service.NewDressService(userStore, storeStore, dressStore, likeStore, views, urls, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dress service: %w", err)
	}

	app.likeService, err = service.NewLikeService(dressStore, likeStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create like service: %w", err)
	}

	app.reservationService, err = service.NewReservationService(service.ReservationServiceDeps{
		DB:           db,
		Users:        userStore,
		Stores:       storeStore,
		Dresses:      dressStore,
		Options:      optionStore,
		Reservations: reservationStore,
		URLs:         urls,
		Emitter:      emitter,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
