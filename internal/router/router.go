package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/boolen-kitchen/api/internal/config"
	"github.com/boolen-kitchen/api/internal/handler"
	mw "github.com/boolen-kitchen/api/internal/middleware"
	"github.com/boolen-kitchen/api/internal/service"
	"github.com/boolen-kitchen/api/internal/store"
	"github.com/boolen-kitchen/api/internal/ws"
)

// New creates a Chi router with all application routes wired up.
// Customer-facing routes are public; merchant routes require a token.
func New(cfg *config.Config, st store.Store, hub *ws.Hub) (chi.Router, error) {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth routes (public)
	authHandler, err := handler.NewAuthHandler(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	authHandler.RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	menuHandler := handler.NewMenuHandler(service.NewMenuService(st, cfg.CoerceInvalidPrices))
	orderHandler := handler.NewOrderHandler(service.NewOrderService(st), hub)
	hoursHandler := handler.NewHoursHandler(service.NewHoursService(st))
	financeHandler := handler.NewFinanceHandler(service.NewFinanceService(st))

	// Customer-facing routes
	menuHandler.RegisterPublicRoutes(r)
	hoursHandler.RegisterPublicRoutes(r)
	orderHandler.RegisterPublicRoutes(r)

	// Merchant routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		menuHandler.RegisterMerchantRoutes(r)
		orderHandler.RegisterMerchantRoutes(r)
		hoursHandler.RegisterMerchantRoutes(r)
		financeHandler.RegisterMerchantRoutes(r)
	})

	return r, nil
}
