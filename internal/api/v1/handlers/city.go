package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/hlog"
	"ulascansenturk/city-weather-service/internal/service"
)

const greeting = "Guten Tag! Mein Name ist Lixun."

type CityHandler struct {
	cityService service.CityService
	timeout     time.Duration
	router      *mux.Router
}

func NewCityHandler(cityService service.CityService, timeout time.Duration, allowedOrigins []string) *CityHandler {
	h := &CityHandler{
		cityService: cityService,
		timeout:     timeout,
	}
	h.router = h.routes(allowedOrigins)

	return h
}

func (h *CityHandler) routes(allowedOrigins []string) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Greeting).Methods(http.MethodGet)

	city := r.PathPrefix("/city").Subrouter()
	city.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	}).Handler)
	city.HandleFunc("/{city_name}", h.GetCity).Methods(http.MethodGet)
	city.HandleFunc("/{city_name}", preflight).Methods(http.MethodOptions)
	city.NotFoundHandler = http.HandlerFunc(h.NotFound)
	city.MethodNotAllowedHandler = http.HandlerFunc(h.NotFound)

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.NotFound)

	return r
}

func (h *CityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *CityHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	respondWithText(w, http.StatusOK, greeting)
}

func (h *CityHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "404 Not Found")
}

func (h *CityHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	cityName := mux.Vars(r)["city_name"]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	locations, err := h.cityService.Lookup(ctx, cityName)
	if err != nil {
		code, message := errorResponseFor(cityName, err)
		hlog.FromRequest(r).Error().Err(err).
			Str("city", cityName).
			Int("status", code).
			Msg("failed to look up city")
		respondWithError(w, code, message)
		return
	}

	respondWithJSON(w, http.StatusOK, locations)
}

// preflight answers OPTIONS requests the CORS middleware let through.
func preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func errorResponseFor(cityName string, err error) (int, string) {
	var (
		validationErr *service.ValidationError
		notFoundErr   *service.GeocodeNotFoundError
		enrichErr     *service.EnrichmentFailedError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "Invalid city name => " + validationErr.Detail
	case errors.As(err, &notFoundErr):
		if notFoundErr.Reason == service.ReasonInvalidName {
			return http.StatusBadRequest, fmt.Sprintf("Invalid city name (%s)", cityName)
		}
		return http.StatusBadRequest, fmt.Sprintf("Can not find the city name of (%s)", cityName)
	case errors.As(err, &enrichErr):
		return http.StatusBadRequest, fmt.Sprintf("Get the weather info of (%s) failed", enrichErr.City)
	default:
		return http.StatusInternalServerError, "Failed to fetch data => " + err.Error()
	}
}
