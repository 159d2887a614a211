package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/dhansakhi/backend/internal/ai"
	"example.com/dhansakhi/backend/internal/assistant"
	"example.com/dhansakhi/backend/internal/config"
	"example.com/dhansakhi/backend/internal/content"
	"example.com/dhansakhi/backend/internal/handlers"
	"example.com/dhansakhi/backend/internal/notifications"
	"example.com/dhansakhi/backend/internal/session"
)

// New assembles the Echo HTTP server with routes and dependencies.
func New(cfg config.Config, logger *slog.Logger, catalog *content.Catalog, store *session.Store) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	aiClient := ai.NewGroqClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout)
	aiService := ai.NewService(aiClient)
	hub := notifications.NewHub()

	defaults := assistant.Options{
		Locale:         content.Locale(cfg.Assistant.DefaultLocale),
		StrictOrdering: cfg.Assistant.StrictOrdering,
		SpeechEnabled:  cfg.Assistant.SpeechEnabled,
	}

	sessionHandler := handlers.NewSessionHandler(store, catalog, aiService, hub, logger, defaults)
	budgetHandler := handlers.NewBudgetHandler(store)
	qaHandler := handlers.NewQAHandler(store)
	guideHandler := handlers.NewGuideHandler(store)
	audioHandler := handlers.NewAudioHandler(store)
	notificationHandler := handlers.NewNotificationHandler(store, hub)

	registerRoutes(
		e,
		sessionHandler,
		budgetHandler,
		qaHandler,
		guideHandler,
		audioHandler,
		notificationHandler,
		aiRateLimiter(cfg.AI),
	)

	return e
}

// NewHTTPServer creates a net/http server with the configured timeouts.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

func aiRateLimiter(cfg config.AIConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}
