package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"
)

// ErrNothingToGeocode is what the geocoding API answers for a query it
// cannot interpret at all.
var ErrNothingToGeocode = errors.New("nothing to geocode")

const nothingToGeocodeMessage = "Nothing to geocode"

type GeocodingAPI interface {
	Resolve(ctx context.Context, cityName string, limit int) ([]Candidate, error)
}

// Candidate is one match returned by the geocoding API.
type Candidate struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

type geocodingErrorResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

type geocodingAPI struct {
	baseURL string
	apiKey  string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewGeocodingAPI(cfg ClientConfig) GeocodingAPI {
	return &geocodingAPI{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		circuit: newBreaker("geocoding", cfg),
	}
}

func (g *geocodingAPI) Resolve(ctx context.Context, cityName string, limit int) ([]Candidate, error) {
	values := url.Values{}
	values.Set("q", cityName)
	values.Set("limit", strconv.Itoa(limit))
	values.Set("appid", g.apiKey)

	resp, err := doRequest(ctx, g.client, g.circuit, g.baseURL+"?"+values.Encode())
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}

	// The API reports unparseable queries as an object instead of a list,
	// with a 400 status.
	var apiErr geocodingErrorResponse
	if json.Unmarshal(resp.body, &apiErr) == nil && apiErr.Message != "" {
		if apiErr.Message == nothingToGeocodeMessage {
			return nil, ErrNothingToGeocode
		}
		return nil, fmt.Errorf("geocoding error: %s (status code %d)", apiErr.Message, resp.status)
	}

	if !isSuccess(resp.status) {
		return nil, fmt.Errorf("geocoding returned status code: %d", resp.status)
	}

	var candidates []Candidate
	if err := json.Unmarshal(resp.body, &candidates); err != nil {
		return nil, fmt.Errorf("geocoding returned malformed JSON: %w", err)
	}

	return candidates, nil
}
