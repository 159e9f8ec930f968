package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"ulascansenturk/city-weather-service/internal/db/lookuplog"
	"ulascansenturk/city-weather-service/internal/providers"
)

const lookupLogTimeout = 2 * time.Second

type CityService interface {
	Lookup(ctx context.Context, cityName string) ([]Location, error)
}

type cityService struct {
	geocodingAPI providers.GeocodingAPI
	enricher     WeatherEnricher
	lookupRepo   lookuplog.Repository
	limit        int
}

// NewCityService wires the resolver. lookupRepo may be nil.
func NewCityService(
	geocodingAPI providers.GeocodingAPI,
	enricher WeatherEnricher,
	lookupRepo lookuplog.Repository,
	limit int,
) CityService {
	return &cityService{
		geocodingAPI: geocodingAPI,
		enricher:     enricher,
		lookupRepo:   lookupRepo,
		limit:        limit,
	}
}

func (s *cityService) Lookup(ctx context.Context, cityName string) ([]Location, error) {
	started := time.Now()

	locations, candidateCount, err := s.lookup(ctx, cityName)

	s.recordLookup(ctx, cityName, candidateCount, err, time.Since(started))

	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *cityService) lookup(ctx context.Context, cityName string) ([]Location, int, error) {
	if err := ValidateCityName(cityName); err != nil {
		return nil, 0, err
	}

	candidates, err := s.geocodingAPI.Resolve(ctx, cityName, s.limit)
	if err != nil {
		if errors.Is(err, providers.ErrNothingToGeocode) {
			return nil, 0, &GeocodeNotFoundError{City: cityName, Reason: ReasonInvalidName}
		}
		return nil, 0, &GeocodeProviderError{Err: err}
	}

	if len(candidates) == 0 {
		return nil, 0, &GeocodeNotFoundError{City: cityName, Reason: ReasonNoMatch}
	}
	if len(candidates) > s.limit {
		candidates = candidates[:s.limit]
	}

	locations := make([]Location, len(candidates))
	for i, candidate := range candidates {
		locations[i] = newLocation(candidate)
	}

	// Sequential on purpose: the first failure ends the request and the
	// remaining candidates are never queried.
	for i := range locations {
		enriched, err := s.enricher.Enrich(ctx, locations[i])
		if err != nil {
			return nil, len(candidates), err
		}
		locations[i] = enriched
	}

	return locations, len(candidates), nil
}

func (s *cityService) recordLookup(ctx context.Context, cityName string, candidateCount int, lookupErr error, elapsed time.Duration) {
	if s.lookupRepo == nil {
		return
	}

	lookup := &lookuplog.CityLookup{
		CityName:       cityName,
		Outcome:        outcomeOf(lookupErr),
		CandidateCount: candidateCount,
		DurationMs:     elapsed.Milliseconds(),
	}
	if id, ok := hlog.IDFromCtx(ctx); ok {
		lookup.RequestID = id.String()
	}

	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupLogTimeout)
	defer cancel()

	if err := s.lookupRepo.LogLookup(logCtx, lookup); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("city", cityName).Msg("failed to log city lookup")
	}
}

func outcomeOf(err error) string {
	var (
		validationErr *ValidationError
		notFoundErr   *GeocodeNotFoundError
		enrichErr     *EnrichmentFailedError
	)

	switch {
	case err == nil:
		return lookuplog.OutcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return lookuplog.OutcomeCanceled
	case errors.As(err, &validationErr):
		return lookuplog.OutcomeInvalidName
	case errors.As(err, &notFoundErr):
		if notFoundErr.Reason == ReasonInvalidName {
			return lookuplog.OutcomeInvalidName
		}
		return lookuplog.OutcomeNotFound
	case errors.As(err, &enrichErr):
		return lookuplog.OutcomeEnrichmentFailed
	default:
		return lookuplog.OutcomeProviderError
	}
}
