package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/dharmasatrya/triptrio/internal/aggregator"
	"github.com/dharmasatrya/triptrio/internal/airports"
	"github.com/dharmasatrya/triptrio/internal/cache"
	"github.com/dharmasatrya/triptrio/internal/config"
	"github.com/dharmasatrya/triptrio/internal/favorites"
	"github.com/dharmasatrya/triptrio/internal/handler"
	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/providers"
	"github.com/dharmasatrya/triptrio/internal/ratelimit"
	"github.com/dharmasatrya/triptrio/internal/validate"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validate.New()
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.HTTPRequest(v.RequestID, v.Method, v.URI, v.Status, float64(v.Latency.Microseconds())/1000, v.RemoteIP)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimitRPS),
		Burst:     cfg.RateLimitBurst(),
		ExpiresIn: 3 * time.Minute,
	})))

	upstreams := ratelimit.NewWithDefaults()
	upstreams.SetLimit(ratelimit.UpstreamDuffel, 10, 20)
	upstreams.SetLimit(ratelimit.UpstreamAirports, 1, 2)

	referenceData := airports.NewReferenceCache(
		airports.NewHTTPSource(cfg.AirportsDataURL, upstreams),
		cfg.AirportsTTL,
		log,
	)

	var live aggregator.SuggestionSource
	if cfg.LiveSuggestions() {
		live = providers.NewDuffelProvider(providers.DuffelConfig{
			BaseURL: cfg.DuffelBaseURL,
			APIKey:  cfg.DuffelAPIKey,
			Version: cfg.DuffelVersion,
		}, upstreams)
		log.Info("live place suggestions enabled", "duffel_version", cfg.DuffelVersion)
	} else {
		log.Info("no Duffel key configured, place suggestions use the local seed")
	}
	places := aggregator.NewAggregator(live, providers.NewSeedProvider(), aggregator.Config{Timeout: 10 * time.Second}, log)

	var searchCache cache.Cache
	var favoriteStore favorites.Store
	if cfg.CacheEnabled {
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.RedisTTL,
		})
		if err != nil {
			log.Error("failed to connect to Redis", "error", err.Error())
			os.Exit(1)
		}
		searchCache = cache.NewRedisCache(client, cfg.RedisTTL)
		favoriteStore = favorites.NewRedisStore(client)
		log.Info("redis enabled", "addr", cfg.RedisHost+":"+cfg.RedisPort, "ttl", cfg.RedisTTL.String())
	} else {
		searchCache = cache.NewNoOpCache()
		favoriteStore = favorites.NewMemoryStore()
		log.Info("redis disabled, favorites are kept in memory")
	}
	defer searchCache.Close()

	airportsHandler := handler.NewAirportsHandler(referenceData, log)
	placesHandler := handler.NewPlacesHandler(places)
	searchHandler := handler.NewSearchHandler(searchCache, log)
	bookHandler := handler.NewBookHandler(cfg.BookingBaseURL, log)
	favoritesHandler := handler.NewFavoritesHandler(favoriteStore, log)
	exportHandler := handler.NewExportHandler(log)
	pingHandler := handler.NewPingHandler(cfg)

	api := e.Group("/api")
	api.GET("/airports", airportsHandler.Search)
	api.GET("/places", placesHandler.Search)
	api.POST("/search", searchHandler.Search)
	api.POST("/book", bookHandler.Create)
	api.GET("/book", bookHandler.FromQuery)
	api.GET("/favorites", favoritesHandler.List)
	api.POST("/favorites", favoritesHandler.Add)
	api.DELETE("/favorites/:id", favoritesHandler.Remove)
	api.POST("/export/pdf", exportHandler.PDF)
	api.GET("/ping", pingHandler.Ping)
	e.GET("/health", handler.HealthHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting triptrio server", "port", cfg.Port, "env", cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
	}
}
