// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the composition root: it opens the document store,
// builds services and handlers on top of it, and mounts them on the router.
//
//	config → repository.Store (firestore | sqlite | memory)
//	       → ReviewService / UserService
//	       → ReviewHandler / UserHandler / RestaurantHandler
//
// Handlers never see the store, and services never see HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/sakif/restaurant-reviews/internal/catalog"
	"github.com/sakif/restaurant-reviews/internal/config"
	"github.com/sakif/restaurant-reviews/internal/handler"
	"github.com/sakif/restaurant-reviews/internal/middleware"
	"github.com/sakif/restaurant-reviews/internal/repository"
	firestoreRepo "github.com/sakif/restaurant-reviews/internal/repository/firestore"
	"github.com/sakif/restaurant-reviews/internal/repository/memory"
	sqliteRepo "github.com/sakif/restaurant-reviews/internal/repository/sqlite"
	"github.com/sakif/restaurant-reviews/internal/service"
)

// Server owns the router and the document store. The store is closed when
// Start returns.
type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
	store  repository.Store
}

// New opens the configured document store and wires every route.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.DocStore, err)
	}
	return newWithStore(cfg, logger, store, catalog.Default()), nil
}

func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.DocStore {
	case config.StoreFirestore:
		return firestoreRepo.New(ctx, firestoreRepo.Config{
			ProjectID:       cfg.FirebaseProjectID,
			CredentialsFile: cfg.FirebaseCredentials,
		})

	case config.StoreSQLite:
		// Create the data directory if needed (like `mkdir -p`).
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
			}
		}
		return sqliteRepo.New(cfg.SQLitePath)

	case config.StoreMemory:
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unknown document store %q", cfg.DocStore)
	}
}

func newWithStore(cfg *config.Config, logger *slog.Logger, store repository.Store, restaurants *catalog.Catalog) *Server {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		store:  store,
	}
	s.setupRoutes(restaurants)
	return s
}

// setupRoutes configures middleware and routes.
//
// ROUTES:
// GET    /health                        → liveness
// GET    /api/restaurants               → full catalog
// GET    /api/restaurants/search        → catalog filtered by ?query=
// GET    /api/restaurants/{id}          → one restaurant
// GET    /api/reviews/{restaurantId}    → reviews for a restaurant
// POST   /api/reviews                   → create review
// PUT    /api/reviews/{id}              → update own review
// DELETE /api/reviews/{id}?userId=      → delete own review
// GET    /api/user-reviews/{userId}     → reviews by a user
// GET    /api/users/{userId}            → profile
// POST   /api/users                     → create or merge profile
//
// MIDDLEWARE ORDER:
// 1. RequestID → 2. RealIP → 3. Recoverer → 4. request logger → 5. CORS
// CORS sits last so preflight requests are still logged.
func (s *Server) setupRoutes(restaurants *catalog.Catalog) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(cors.New(cors.Options{
		AllowedOrigins: s.config.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler)

	reviewService := service.NewReviewService(s.store.Reviews(), s.logger)
	userService := service.NewUserService(s.store.Users(), s.logger)

	restaurantHandler := handler.NewRestaurantHandler(restaurants, s.logger)
	reviewHandler := handler.NewReviewHandler(reviewService, s.logger)
	userHandler := handler.NewUserHandler(userService, s.logger)

	s.router.Get("/health", handler.HandleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// "search" is a static segment, so chi matches it before {id}.
		r.Get("/restaurants", restaurantHandler.HandleList)
		r.Get("/restaurants/search", restaurantHandler.HandleSearch)
		r.Get("/restaurants/{id}", restaurantHandler.HandleGetByID)

		r.Get("/reviews/{restaurantId}", reviewHandler.HandleListByRestaurant)
		r.Post("/reviews", reviewHandler.HandleCreate)
		r.Put("/reviews/{id}", reviewHandler.HandleUpdate)
		r.Delete("/reviews/{id}", reviewHandler.HandleDelete)
		r.Get("/user-reviews/{userId}", reviewHandler.HandleListByUser)

		r.Get("/users/{userId}", userHandler.HandleGet)
		r.Post("/users", userHandler.HandleUpsert)
	})
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully:
//  1. stop accepting new connections
//  2. wait up to ShutdownTimeout for in-flight requests
//  3. close the document store
func (s *Server) Start() error {
	defer func() {
		if err := s.store.Close(); err != nil {
			s.logger.Error("closing document store", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("docStore", s.config.DocStore),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
