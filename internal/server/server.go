// Package server wires the application together: store, services, handlers,
// middleware, and routes all come to life here. main.go only reads config and
// calls New + Start.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wearecreatives/api/internal/handler"
	"github.com/wearecreatives/api/internal/middleware"
	"github.com/wearecreatives/api/internal/repository/memory"
	"github.com/wearecreatives/api/internal/service"
	"github.com/wearecreatives/api/internal/validation"
)

// Config holds server configuration.
type Config struct {
	Port int
}

// Server owns the router and the in-memory store. The store lives exactly as
// long as the process; there is nothing to flush or close on shutdown.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	store  *memory.Store
}

// New builds a fully wired server: a fresh seeded store, one service per
// domain area, and all routes registered.
func New(cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		store:  memory.New(),
	}

	s.store.Seed()
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	v := validation.New()

	creativeService := service.NewCreativeService(s.store, v, s.logger)
	portfolioService := service.NewPortfolioService(s.store, v, s.logger)
	collaborationService := service.NewCollaborationService(s.store, v, s.logger)
	reviewService := service.NewReviewService(s.store, s.store, v, s.logger)
	catalogService := service.NewCatalogService(s.store, s.logger)
	bookingService := service.NewBookingService(s.store, v, s.logger)
	contactService := service.NewContactService(s.store, v, s.logger)

	creatives := handler.NewCreativeHandler(creativeService, s.logger)
	portfolio := handler.NewPortfolioHandler(portfolioService, s.logger)
	collaborations := handler.NewCollaborationHandler(collaborationService, s.logger)
	reviews := handler.NewReviewHandler(reviewService, s.logger)
	catalog := handler.NewCatalogHandler(catalogService, s.logger)
	bookings := handler.NewBookingHandler(bookingService, s.logger)
	contact := handler.NewContactHandler(contactService, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/creatives", creatives.HandleList)
		r.Get("/creatives/{id}", creatives.HandleGet)
		r.Post("/creatives", creatives.HandleCreate)
		r.Patch("/creatives/{id}", creatives.HandleUpdate)

		// Fixed paths before the {id} wildcard; chi matches most-specific first
		// but keeping them grouped makes the precedence obvious.
		r.Get("/portfolio", portfolio.HandleList)
		r.Get("/portfolio/featured", portfolio.HandleListFeatured)
		r.Get("/portfolio/pending", portfolio.HandleListPending)
		r.Get("/portfolio/creative/{creativeId}", portfolio.HandleListByCreative)
		r.Get("/portfolio/{id}", portfolio.HandleGet)
		r.Post("/portfolio", portfolio.HandleCreate)
		r.Patch("/portfolio/{id}/approve", portfolio.HandleApprove)

		r.Get("/services", catalog.HandleList)
		r.Get("/services/{id}", catalog.HandleGet)

		r.Get("/bookings", bookings.HandleList)
		r.Get("/bookings/{id}", bookings.HandleGet)
		r.Post("/bookings", bookings.HandleCreate)

		r.Get("/contact", contact.HandleList)
		r.Get("/contact/{id}", contact.HandleGet)
		r.Post("/contact", contact.HandleCreate)

		r.Get("/collaborations", collaborations.HandleList)
		r.Get("/collaborations/{id}", collaborations.HandleGet)
		r.Get("/collaborations/creative/{creativeId}", collaborations.HandleListByCreative)
		r.Post("/collaborations", collaborations.HandleCreate)
		r.Patch("/collaborations/{id}/status", collaborations.HandleUpdateStatus)

		r.Get("/reviews/creative/{creativeId}", reviews.HandleListByCreative)
		r.Post("/reviews", reviews.HandleCreate)
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
