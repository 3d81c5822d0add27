package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ryanfaricy/wherearethey-sub001/internal/api/handlers/http/admin"
	"github.com/ryanfaricy/wherearethey-sub001/internal/api/handlers/http/live"
	"github.com/ryanfaricy/wherearethey-sub001/internal/api/handlers/http/public"
	"github.com/ryanfaricy/wherearethey-sub001/internal/api/handlers/http/system"
	"github.com/ryanfaricy/wherearethey-sub001/internal/config"
	"github.com/ryanfaricy/wherearethey-sub001/internal/events"
	liveproj "github.com/ryanfaricy/wherearethey-sub001/internal/live"
	"github.com/ryanfaricy/wherearethey-sub001/internal/middleware"
	"github.com/ryanfaricy/wherearethey-sub001/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, loader liveproj.Loader, bus *events.Bus) *Server {
	publicHandler := public.NewHandler(logger, svc.PublicService, svc.AlertService)
	adminHandler := admin.NewHandler(logger, svc.AdminService)
	systemHandler := system.NewHandler(logger)
	liveHandler := live.NewHandler(logger, loader, bus, cfg.AdminKey)

	r := InitRouter(cfg, publicHandler, adminHandler, systemHandler, liveHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, publicHandler *public.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, liveHandler *live.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKey(cfg.AdminKey))
			ar.Use(middleware.Limit(5, 10, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)
			ar.Get("/settings", adminHandler.AdminSettingsGet)
			ar.Put("/settings", adminHandler.AdminSettingsUpdate)

			ar.Route("/reports", func(rr chi.Router) {
				rr.Get("/", adminHandler.AdminReportList)
				rr.Delete("/{id}", adminHandler.AdminReportDelete)
			})
			ar.Route("/alerts", func(al chi.Router) {
				al.Get("/", adminHandler.AdminAlertList)
				al.Delete("/{id}", adminHandler.AdminAlertDelete)
			})
		})

		// PUBLIC
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			pr.Post("/reports", publicHandler.SubmitReport)
			pr.Get("/reports", publicHandler.ListReports)
			pr.Post("/feedback", publicHandler.SubmitFeedback)
			pr.Get("/identifier", publicHandler.NewIdentifier)
			pr.Post("/subscriptions", publicHandler.RegisterSubscription)

			pr.Route("/alerts", func(al chi.Router) {
				al.Post("/", publicHandler.CreateAlert)
				al.Post("/verify", publicHandler.VerifyAlert)
				al.Delete("/{id}", publicHandler.DeleteAlert)
			})
		})

		// LIVE
		api.Get("/live", liveHandler.Serve)

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
