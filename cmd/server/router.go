package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pickle-rental/pickle-api/internal/api"
	apiMiddleware "github.com/pickle-rental/pickle-api/internal/api/middleware"
)

const requestTimeout = 30 * time.Second

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	storeHandler := api.NewStoreHandler(app.storeService, app.reservationService, app.logger)
	dressHandler := api.NewDressHandler(app.dressService, app.likeService, app.logger)
	reservationHandler := api.NewReservationHandler(app.reservationService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public store endpoints
		r.Get("/stores/near", storeHandler.GetNearStores)
		r.Get("/stores/{id}", storeHandler.FindStoreDetail)
		r.Get("/stores/{id}/reservation-form", storeHandler.GetReservationForm)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/dresses", dressHandler.SearchDress)
			r.Get("/dresses/likes", dressHandler.ListLikedDresses)
			r.Get("/dresses/{id}", dressHandler.FindDressDetail)
			r.Post("/dresses/{id}/like", dressHandler.ToggleLike)

			r.Post("/reservations", reservationHandler.CreateReservation)
			r.Get("/reservations", reservationHandler.GetOrderList)
			r.Get("/reservations/{id}", reservationHandler.GetOrderDetail)
			r.Patch("/reservations/{id}/cancel", reservationHandler.CancelReservation)
		})
	})

	r.Get("/health", api.HealthHandler(app.db))

	return r
}
