package providers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/city-weather-service/internal/providers"
)

type WeatherAPITestSuite struct {
	suite.Suite
	server *httptest.Server
	api    providers.WeatherAPI
}

func (s *WeatherAPITestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != "test_token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"cod": 401, "message": "Invalid API key"})
			return
		}

		switch r.URL.Query().Get("lat") {
		case "52.52":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"main": map[string]interface{}{"temp_max": 300.0, "temp_min": 295.0},
				"weather": []map[string]interface{}{
					{"main": "Clear"},
					{"main": "Mist"},
				},
			})
		case "1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"weather": []map[string]interface{}{{"main": "Clear"}},
			})
		case "2":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"main": map[string]interface{}{"temp_max": 280.0, "temp_min": 270.0},
			})
		case "3":
			w.Write([]byte("{malformed json"))
		case "4":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{"cod": "404", "message": "city not found"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	s.api = s.newAPI("test_token")
}

func (s *WeatherAPITestSuite) newAPI(token string) providers.WeatherAPI {
	return providers.NewWeatherAPI(providers.ClientConfig{
		BaseURL:     s.server.URL + "/data/2.5/weather",
		APIKey:      token,
		Timeout:     2 * time.Second,
		MaxFailures: 5,
		OpenTimeout: time.Minute,
	})
}

func (s *WeatherAPITestSuite) TearDownTest() {
	s.server.Close()
}

func (s *WeatherAPITestSuite) TestFetchConditionsSuccess() {
	conditions, err := s.api.FetchConditions(context.Background(), 52.52, 13.40)
	s.Require().NoError(err)

	s.Equal(295.0, conditions.TempMinK)
	s.Equal(300.0, conditions.TempMaxK)
	s.Equal([]string{"Clear", "Mist"}, conditions.Labels)
}

func (s *WeatherAPITestSuite) TestFetchConditionsMissingMain() {
	_, err := s.api.FetchConditions(context.Background(), 1, 0)
	s.Error(err)
	s.Contains(err.Error(), "missing main temperatures")
}

func (s *WeatherAPITestSuite) TestFetchConditionsMissingWeatherList() {
	_, err := s.api.FetchConditions(context.Background(), 2, 0)
	s.Error(err)
	s.Contains(err.Error(), "missing weather list")
}

func (s *WeatherAPITestSuite) TestFetchConditionsMalformedJSON() {
	_, err := s.api.FetchConditions(context.Background(), 3, 0)
	s.Error(err)
	s.Contains(err.Error(), "malformed JSON")
}

func (s *WeatherAPITestSuite) TestFetchConditionsNotFound() {
	_, err := s.api.FetchConditions(context.Background(), 4, 0)
	s.Error(err)
	s.Contains(err.Error(), "city not found")
}

func (s *WeatherAPITestSuite) TestFetchConditionsServerError() {
	_, err := s.api.FetchConditions(context.Background(), 5, 0)
	s.Error(err)
	s.Contains(err.Error(), "status code 500")
}

func (s *WeatherAPITestSuite) TestFetchConditionsBadCredential() {
	_, err := s.newAPI("wrong").FetchConditions(context.Background(), 52.52, 13.40)
	s.Error(err)
	s.Contains(err.Error(), "Invalid API key")
}

func (s *WeatherAPITestSuite) TestFetchConditionsTimeout() {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("{}"))
	}))
	defer slow.Close()

	api := providers.NewWeatherAPI(providers.ClientConfig{
		BaseURL: slow.URL,
		APIKey:  "test_token",
		Timeout: 50 * time.Millisecond,
	})

	_, err := api.FetchConditions(context.Background(), 52.52, 13.40)
	s.Error(err)
	s.Contains(err.Error(), "weather request failed")
}

func TestWeatherAPISuite(t *testing.T) {
	suite.Run(t, new(WeatherAPITestSuite))
}
