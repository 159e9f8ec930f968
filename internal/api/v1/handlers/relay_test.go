package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/city-weather-service/internal/api/v1/handlers"
	"ulascansenturk/city-weather-service/internal/providers"
	"ulascansenturk/city-weather-service/internal/service"
)

// RelayTestSuite drives the full request path against fake provider servers.
type RelayTestSuite struct {
	suite.Suite
	geocodeServer *httptest.Server
	weatherServer *httptest.Server
	geocodeCalls  atomic.Int32
	weatherCalls  atomic.Int32
	handler       http.Handler
}

func (s *RelayTestSuite) SetupTest() {
	s.geocodeCalls.Store(0)
	s.weatherCalls.Store(0)

	s.geocodeServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.geocodeCalls.Add(1)

		switch r.URL.Query().Get("q") {
		case "Berlin":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"name": "Berlin", "lat": 52.52, "lon": 13.40, "country": "DE", "state": ""},
			})
		case "Portland":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"name": "Portland", "lat": 45.52, "lon": -122.67, "country": "US", "state": "Oregon"},
				{"name": "South Portland", "lat": 43.64, "lon": -70.24, "country": "US", "state": "Maine"},
				{"name": "Portland", "lat": -38.34, "lon": 141.60, "country": "AU", "state": "Victoria"},
			})
		case "Qq":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{"cod": "400", "message": "Nothing to geocode"})
		case "Atlantis":
			w.Write([]byte("[]"))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"cod": 401, "message": "Invalid API key"})
		}
	}))

	s.weatherServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.weatherCalls.Add(1)

		if lat, _ := strconv.ParseFloat(r.URL.Query().Get("lat"), 64); lat == 43.64 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"main":    map[string]interface{}{"temp_max": 300.0, "temp_min": 295.0},
			"weather": []map[string]interface{}{{"main": "Clear"}},
		})
	}))

	geocodingAPI := providers.NewGeocodingAPI(providers.ClientConfig{
		BaseURL: s.geocodeServer.URL,
		APIKey:  "test_token",
		Timeout: 2 * time.Second,
	})
	weatherAPI := providers.NewWeatherAPI(providers.ClientConfig{
		BaseURL: s.weatherServer.URL,
		APIKey:  "test_token",
		Timeout: 2 * time.Second,
	})

	cityService := service.NewCityService(
		geocodingAPI,
		service.NewWeatherEnricher(weatherAPI, nil, 0),
		nil,
		10,
	)

	s.handler = handlers.NewCityHandler(cityService, 5*time.Second, []string{"http://localhost:3000"})
}

func (s *RelayTestSuite) TearDownTest() {
	s.geocodeServer.Close()
	s.weatherServer.Close()
}

func (s *RelayTestSuite) get(target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func (s *RelayTestSuite) TestBerlin() {
	recorder := s.get("/city/Berlin")

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`[{"name":"Berlin","lat":52.52,"lon":13.40,"country":"DE","state":"","weather":"Clear","temp_min":21.85,"temp_max":26.85}]`,
		recorder.Body.String())
	s.Equal(int32(1), s.geocodeCalls.Load())
	s.Equal(int32(1), s.weatherCalls.Load())
}

func (s *RelayTestSuite) TestSecondOfThreeEnrichmentsFails() {
	recorder := s.get("/city/Portland")

	s.Equal(http.StatusBadRequest, recorder.Code)

	var response handlers.ErrorResponse
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal("Get the weather info of (South Portland) failed", response.Error)
	s.Equal(int32(2), s.weatherCalls.Load())
}

func (s *RelayTestSuite) TestInvalidNamesNeverReachProviders() {
	for _, target := range []string{"/city/Berlin1", "/city/New%20York", "/city/Saint-Denis", "/city/Z%C3%BCrich"} {
		recorder := s.get(target)

		s.Equal(http.StatusBadRequest, recorder.Code, target)

		var response handlers.ErrorResponse
		s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&response))
		s.Equal("Invalid city name => city_name must only contain alphabetic characters", response.Error)
	}

	s.Equal(int32(0), s.geocodeCalls.Load())
	s.Equal(int32(0), s.weatherCalls.Load())
}

func (s *RelayTestSuite) TestNothingToGeocode() {
	recorder := s.get("/city/Qq")

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.JSONEq(`{"error":"Invalid city name (Qq)"}`, recorder.Body.String())
}

func (s *RelayTestSuite) TestNoCandidates() {
	recorder := s.get("/city/Atlantis")

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.JSONEq(`{"error":"Can not find the city name of (Atlantis)"}`, recorder.Body.String())
	s.Equal(int32(0), s.weatherCalls.Load())
}

func (s *RelayTestSuite) TestGeocodingProviderFailure() {
	recorder := s.get("/city/Paris")

	s.Equal(http.StatusInternalServerError, recorder.Code)

	var response handlers.ErrorResponse
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Contains(response.Error, "Failed to fetch data => ")
	s.Contains(response.Error, "Invalid API key")
}

func (s *RelayTestSuite) TestUnreachableProviderDoesNotLeakAPIKey() {
	const apiKey = "SUPERSECRETTOKEN"

	unreachable := httptest.NewServer(http.NotFoundHandler())
	unreachableURL := unreachable.URL
	unreachable.Close()

	cityService := service.NewCityService(
		providers.NewGeocodingAPI(providers.ClientConfig{BaseURL: unreachableURL, APIKey: apiKey, Timeout: time.Second}),
		service.NewWeatherEnricher(providers.NewWeatherAPI(providers.ClientConfig{BaseURL: unreachableURL, APIKey: apiKey, Timeout: time.Second}), nil, 0),
		nil,
		10,
	)
	handler := handlers.NewCityHandler(cityService, 5*time.Second, []string{"http://localhost:3000"})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/city/Berlin", nil))

	s.Equal(http.StatusInternalServerError, recorder.Code)

	var response handlers.ErrorResponse
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Contains(response.Error, "Failed to fetch data => ")
	s.NotContains(response.Error, apiKey)
	s.NotContains(response.Error, "appid")
}

func TestRelayTestSuite(t *testing.T) {
	suite.Run(t, new(RelayTestSuite))
}
