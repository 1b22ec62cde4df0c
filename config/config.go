package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"ulascansenturk/weather-lookup/internal/location"
	"ulascansenturk/weather-lookup/internal/providers"
)

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

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenWeatherTimeout time.Duration

	TimeZone string

	LocationEnabled           bool
	LocationPermissionGranted bool
	LocationLatitude          *float64
	LocationLongitude         *float64

	ScreenIdleTTL         time.Duration
	ScreenCleanupInterval time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-lookup")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 175)
	v.SetDefault("OPENWEATHER_BASE_URL", providers.DefaultOpenWeatherBaseURL)
	v.SetDefault("OPENWEATHER_TIMEOUT", time.Duration(0))
	v.SetDefault("LOCATION_ENABLED", true)
	v.SetDefault("LOCATION_PERMISSION_GRANTED", false)
	v.SetDefault("SCREEN_IDLE_TTL", 30*time.Minute)
	v.SetDefault("SCREEN_CLEANUP_INTERVAL", time.Minute)

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

	latitude, err := optionalFloat(v, "LOCATION_LATITUDE")
	if err != nil {
		return nil, err
	}
	longitude, err := optionalFloat(v, "LOCATION_LONGITUDE")
	if err != nil {
		return nil, err
	}

	config := &Config{
		ServiceName:               v.GetString("SERVICE_NAME"),
		ServerAddress:             v.GetString("SERVER_ADDRESS"),
		DBName:                    v.GetString("DATABASE_NAME"),
		DBPassword:                v.GetString("DATABASE_PASSWORD"),
		DBUser:                    v.GetString("DATABASE_USER"),
		DBPort:                    v.GetString("DATABASE_PORT"),
		DBHost:                    v.GetString("DATABASE_HOST"),
		Env:                       v.GetString("ENV"),
		LogLevel:                  v.GetString("LOG_LEVEL"),
		HTTPTimeout:               v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:         v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL:        v.GetString("OPENWEATHER_BASE_URL"),
		OpenWeatherTimeout:        v.GetDuration("OPENWEATHER_TIMEOUT"),
		TimeZone:                  v.GetString("TIME_ZONE"),
		LocationEnabled:           v.GetBool("LOCATION_ENABLED"),
		LocationPermissionGranted: v.GetBool("LOCATION_PERMISSION_GRANTED"),
		LocationLatitude:          latitude,
		LocationLongitude:         longitude,
		ScreenIdleTTL:             v.GetDuration("SCREEN_IDLE_TTL"),
		ScreenCleanupInterval:     v.GetDuration("SCREEN_CLEANUP_INTERVAL"),
	}

	return config, nil
}

// optionalFloat distinguishes an unset coordinate from an explicit 0.
func optionalFloat(v *viper.Viper, key string) (*float64, error) {
	if v.GetString(key) == "" {
		return nil, nil
	}

	value, err := cast.ToFloat64E(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &value, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// Location resolves TIME_ZONE, falling back to the host zone when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}

	zone, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE %q: %w", c.TimeZone, err)
	}
	return zone, nil
}

func (c *Config) LocationConfig() location.StaticConfig {
	return location.StaticConfig{
		PermissionGranted: c.LocationPermissionGranted,
		Enabled:           c.LocationEnabled,
		Latitude:          c.LocationLatitude,
		Longitude:         c.LocationLongitude,
	}
}

func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}
