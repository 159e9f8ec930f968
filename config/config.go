package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const maxGeocodeLimit = 10

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	APIToken        string
	GeocodeBaseURL  string
	WeatherBaseURL  string
	GeocodeLimit    int
	OutboundTimeout time.Duration

	CORSAllowedOrigins []string

	WeatherCacheTTL    time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "city-weather-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8787")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("GEOCODE_BASE_URL", "http://api.openweathermap.org/geo/1.0/direct")
	v.SetDefault("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("GEOCODE_LIMIT", maxGeocodeLimit)
	v.SetDefault("OUTBOUND_TIMEOUT", 5*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("WEATHER_CACHE_TTL", time.Duration(0))
	v.SetDefault("BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", 30*time.Second)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		APIToken:           v.GetString("API_TOKEN"),
		GeocodeBaseURL:     v.GetString("GEOCODE_BASE_URL"),
		WeatherBaseURL:     v.GetString("WEATHER_BASE_URL"),
		GeocodeLimit:       clampGeocodeLimit(v.GetInt("GEOCODE_LIMIT")),
		OutboundTimeout:    v.GetDuration("OUTBOUND_TIMEOUT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		WeatherCacheTTL:    v.GetDuration("WEATHER_CACHE_TTL"),
		BreakerMaxFailures: v.GetUint32("BREAKER_MAX_FAILURES"),
		BreakerOpenTimeout: v.GetDuration("BREAKER_OPEN_TIMEOUT"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return errors.New("API_TOKEN is required")
	}
	if c.OutboundTimeout <= 0 {
		return fmt.Errorf("OUTBOUND_TIMEOUT must be positive, got %s", c.OutboundTimeout)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", c.HTTPTimeout)
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// LookupLogEnabled is false when no database host is configured.
func (c *Config) LookupLogEnabled() bool {
	return c.DBHost != ""
}

func clampGeocodeLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxGeocodeLimit {
		return maxGeocodeLimit
	}
	return limit
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
