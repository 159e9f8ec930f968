package service

import "fmt"

// ValidationError reports a city name rejected before any outbound call.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

type GeocodeNotFoundReason int

const (
	// ReasonInvalidName means the geocoding API could not interpret the query.
	ReasonInvalidName GeocodeNotFoundReason = iota
	// ReasonNoMatch means the query was understood but matched nothing.
	ReasonNoMatch
)

type GeocodeNotFoundError struct {
	City   string
	Reason GeocodeNotFoundReason
}

func (e *GeocodeNotFoundError) Error() string {
	if e.Reason == ReasonInvalidName {
		return fmt.Sprintf("nothing to geocode for %q", e.City)
	}
	return fmt.Sprintf("no geocoding match for %q", e.City)
}

// GeocodeProviderError wraps a transport, status or decoding failure of the
// geocoding API.
type GeocodeProviderError struct {
	Err error
}

func (e *GeocodeProviderError) Error() string {
	return e.Err.Error()
}

func (e *GeocodeProviderError) Unwrap() error {
	return e.Err
}

// EnrichmentFailedError names the location whose weather lookup failed.
type EnrichmentFailedError struct {
	City string
	Err  error
}

func (e *EnrichmentFailedError) Error() string {
	return fmt.Sprintf("enrich %s: %v", e.City, e.Err)
}

func (e *EnrichmentFailedError) Unwrap() error {
	return e.Err
}
