package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"weather-app/internal/config"
	"weather-app/internal/weather"
	"weather-app/web"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	return newAppWithService(cfg, logger, weather.NewWeatherService(cfg, logger))
}

func newAppWithService(cfg *config.Config, logger *slog.Logger, weatherSvc weather.Service) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Create Gin router
	router := gin.New()
	router.SetHTMLTemplate(templates)

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weatherSvc,
		cfg:            cfg,
	}

	// Add middleware
	router.Use(app.requestLogger())
	router.Use(gin.CustomRecovery(app.handlePanic))

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized")

	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         app.cfg.GetServerAddr(),
		Handler:      app.router,
		ReadTimeout:  app.cfg.Server.ReadTimeout,
		WriteTimeout: app.cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server", "timeout", app.cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
