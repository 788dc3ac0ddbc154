// Package server exposes signal generation over HTTP: a JSON API for
// generating and previewing documents plus a viewer for rendered pages.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"signalpro/internal/app"
)

// Server wraps the echo engine and its application dependencies.
type Server struct {
	app    *app.App
	logger zerolog.Logger
	echo   *echo.Echo

	shutdownTimeout time.Duration
}

// New constructs the HTTP server and registers all routes.
func New(a *app.App) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		app:             a,
		logger:          a.Logger.With().Str("component", "server").Logger(),
		echo:            e,
		shutdownTimeout: a.Config.Server.ShutdownTimeout,
	}

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	api := e.Group("/api")
	api.POST("/generate", s.handleGenerate)
	api.POST("/preview", s.handlePreview)
	api.GET("/kinds", s.handleKinds)
	api.GET("/files", s.handleFiles)

	e.GET("/view/:filename", s.handleView)

	return s
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info().Str("addr", addr).Msg("http server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("shutting down http server")
	return s.echo.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			evt := s.logger.Info()
			if v.Error != nil {
				evt = s.logger.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	})
}
