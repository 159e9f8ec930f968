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

type WeatherAPI interface {
	FetchConditions(ctx context.Context, lat, lon float64) (Conditions, error)
}

// Conditions holds the raw current-weather readings, temperatures in Kelvin.
type Conditions struct {
	TempMinK float64
	TempMaxK float64
	Labels   []string
}

type currentWeatherResponse struct {
	Main *struct {
		TempMin *float64 `json:"temp_min"`
		TempMax *float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Message string `json:"message"`
}

type weatherAPI struct {
	baseURL string
	apiKey  string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPI(cfg ClientConfig) WeatherAPI {
	return &weatherAPI{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		circuit: newBreaker("weather", cfg),
	}
}

func (w *weatherAPI) FetchConditions(ctx context.Context, lat, lon float64) (Conditions, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("appid", w.apiKey)

	resp, err := doRequest(ctx, w.client, w.circuit, w.baseURL+"?"+values.Encode())
	if err != nil {
		return Conditions{}, fmt.Errorf("weather request failed: %w", err)
	}

	var apiResp currentWeatherResponse
	if err := json.Unmarshal(resp.body, &apiResp); err != nil {
		return Conditions{}, fmt.Errorf("weather returned malformed JSON: %w", err)
	}

	if !isSuccess(resp.status) {
		if apiResp.Message != "" {
			return Conditions{}, fmt.Errorf("weather error: %s (status code %d)", apiResp.Message, resp.status)
		}
		return Conditions{}, fmt.Errorf("weather returned status code: %d", resp.status)
	}

	if apiResp.Main == nil || apiResp.Main.TempMin == nil || apiResp.Main.TempMax == nil {
		return Conditions{}, errors.New("weather returned malformed JSON: missing main temperatures")
	}
	if apiResp.Weather == nil {
		return Conditions{}, errors.New("weather returned malformed JSON: missing weather list")
	}

	labels := make([]string, 0, len(apiResp.Weather))
	for _, item := range apiResp.Weather {
		labels = append(labels, item.Main)
	}

	return Conditions{
		TempMinK: *apiResp.Main.TempMin,
		TempMaxK: *apiResp.Main.TempMax,
		Labels:   labels,
	}, nil
}
