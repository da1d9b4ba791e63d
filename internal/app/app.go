package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/config"
	"github.com/vistream/discovery/internal/database"
	"github.com/vistream/discovery/internal/handlers"
	"github.com/vistream/discovery/internal/middleware"
	"github.com/vistream/discovery/internal/services"
	"github.com/vistream/discovery/pkg/models"
)

type App struct {
	config   *config.Config
	logger   *logrus.Logger
	db       *database.Database
	services *services.Services
	handlers *handlers.Handlers
	router   *gin.Engine
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	registerValidators()

	db, err := database.New(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	services, err := services.New(cfg, app.logger, db, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	app.services = services

	app.handlers, err = handlers.New(app.logger, services)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	app.setupRouter()

	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.services.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing services")
	}

	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing database connections")
		return err
	}

	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// registerValidators adds the enum checks referenced by the binding tags
// on models.RecommendationContext.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		switch models.TimeOfDay(fl.Field().String()) {
		case models.TimeMorning, models.TimeAfternoon, models.TimeEvening, models.TimeNight:
			return true
		}
		return false
	})

	v.RegisterValidation("device", func(fl validator.FieldLevel) bool {
		switch models.DeviceType(fl.Field().String()) {
		case models.DeviceDesktop, models.DeviceMobile, models.DeviceTablet, models.DeviceTV:
			return true
		}
		return false
	})
}

func (a *App) setupRouter() {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))

	// Health and metrics endpoints stay outside auth
	router.GET("/health", a.handlers.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.Use(middleware.Auth(a.services.Auth, a.logger))

		search := api.Group("/search")
		{
			search.POST("", a.handlers.Search.Search)
			search.GET("/suggestions", a.handlers.Trending.Suggestions)
			search.GET("/trending", a.handlers.Trending.Trending)
			search.GET("/popular", a.handlers.Trending.Popular)
			search.DELETE("/history", a.handlers.Trending.ClearHistory)
		}

		api.POST("/recommendations", a.handlers.Recommendation.Get)
		api.POST("/feed", a.handlers.Recommendation.Feed)

		track := api.Group("/track")
		{
			track.POST("/recommendation", a.handlers.Telemetry.TrackRecommendation)
			track.POST("/search", a.handlers.Telemetry.TrackSearch)
		}
	}

	a.router = router
}
