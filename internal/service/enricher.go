package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"ulascansenturk/city-weather-service/internal/inmemorycache"
	"ulascansenturk/city-weather-service/internal/providers"
)

type WeatherEnricher interface {
	Enrich(ctx context.Context, loc Location) (Location, error)
}

type weatherEnricher struct {
	weatherAPI providers.WeatherAPI
	cache      inmemorycache.Cache
	cacheTTL   time.Duration
}

// NewWeatherEnricher builds an enricher; a nil cache or a non-positive TTL
// sends every lookup to the weather API.
func NewWeatherEnricher(weatherAPI providers.WeatherAPI, cache inmemorycache.Cache, cacheTTL time.Duration) WeatherEnricher {
	return &weatherEnricher{
		weatherAPI: weatherAPI,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func (e *weatherEnricher) Enrich(ctx context.Context, loc Location) (Location, error) {
	logger := zerolog.Ctx(ctx)

	conditions, err := e.conditions(ctx, loc)
	if err != nil {
		logger.Error().Err(err).Str("city", loc.Name).Msg("failed to fetch weather conditions")
		return Location{}, &EnrichmentFailedError{City: loc.Name, Err: err}
	}

	loc.CurrentWeather = &CurrentWeather{
		Summary: strings.Join(conditions.Labels, ","),
		TempMin: KelvinToCelsius(conditions.TempMinK),
		TempMax: KelvinToCelsius(conditions.TempMaxK),
	}

	return loc, nil
}

func (e *weatherEnricher) conditions(ctx context.Context, loc Location) (providers.Conditions, error) {
	if e.cache == nil || e.cacheTTL <= 0 {
		return e.weatherAPI.FetchConditions(ctx, loc.Lat, loc.Lon)
	}

	logger := zerolog.Ctx(ctx)
	key := inmemorycache.CoordinatesKey(loc.Lat, loc.Lon)

	cached, found, err := e.cache.Get(key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to read conditions cache")
	} else if found {
		return providers.Conditions{
			TempMinK: cached.TempMinK,
			TempMaxK: cached.TempMaxK,
			Labels:   cached.Labels,
		}, nil
	}

	conditions, err := e.weatherAPI.FetchConditions(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return providers.Conditions{}, err
	}

	if err := e.cache.Set(key, &inmemorycache.ConditionsCacheData{
		TempMinK: conditions.TempMinK,
		TempMaxK: conditions.TempMaxK,
		Labels:   conditions.Labels,
	}, e.cacheTTL); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to write conditions cache")
	}

	return conditions, nil
}
