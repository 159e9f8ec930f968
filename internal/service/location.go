package service

import "ulascansenturk/city-weather-service/internal/providers"

// Location is one geocoding candidate. CurrentWeather stays nil until the
// enricher has filled it, and its fields are then flattened into the JSON
// object next to the coordinates.
type Location struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	*CurrentWeather
}

type CurrentWeather struct {
	Summary string  `json:"weather"`
	TempMin float64 `json:"temp_min"`
	TempMax float64 `json:"temp_max"`
}

func newLocation(c providers.Candidate) Location {
	return Location{
		Name:    c.Name,
		Lat:     c.Lat,
		Lon:     c.Lon,
		Country: c.Country,
		State:   c.State,
	}
}

func (l Location) Enriched() bool {
	return l.CurrentWeather != nil
}
