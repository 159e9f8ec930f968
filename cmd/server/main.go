package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/city-weather-service/config"
	"ulascansenturk/city-weather-service/internal/api/v1/handlers"
	"ulascansenturk/city-weather-service/internal/db/lookuplog"
	"ulascansenturk/city-weather-service/internal/inmemorycache"
	"ulascansenturk/city-weather-service/internal/providers"
	"ulascansenturk/city-weather-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var lookupRepo lookuplog.Repository
	if conf.LookupLogEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		lookupRepo = lookuplog.NewRepository(db)
	} else {
		logger.Info().Msg("DATABASE_HOST not set, lookup log disabled")
	}

	var conditionsCache inmemorycache.Cache
	if conf.WeatherCacheTTL > 0 {
		conditionsCache = inmemorycache.NewInMemoryCacheProvider(ctx, conf.WeatherCacheTTL)
	}

	geocodingAPI := providers.NewGeocodingAPI(providers.ClientConfig{
		BaseURL:     conf.GeocodeBaseURL,
		APIKey:      conf.APIToken,
		Timeout:     conf.OutboundTimeout,
		MaxFailures: conf.BreakerMaxFailures,
		OpenTimeout: conf.BreakerOpenTimeout,
	})
	weatherAPI := providers.NewWeatherAPI(providers.ClientConfig{
		BaseURL:     conf.WeatherBaseURL,
		APIKey:      conf.APIToken,
		Timeout:     conf.OutboundTimeout,
		MaxFailures: conf.BreakerMaxFailures,
		OpenTimeout: conf.BreakerOpenTimeout,
	})

	cityService := service.NewCityService(
		geocodingAPI,
		service.NewWeatherEnricher(weatherAPI, conditionsCache, conf.WeatherCacheTTL),
		lookupRepo,
		conf.GeocodeLimit,
	)

	handler := handlers.NewCityHandler(cityService, conf.HTTPTimeoutDuration(), conf.CORSAllowedOrigins)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handlers.WithRequestLogging(logger, handler),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&lookuplog.CityLookup{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
