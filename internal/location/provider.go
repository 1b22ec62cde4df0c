package location

import (
	"context"
	"errors"
	"fmt"

	"ulascansenturk/weather-lookup/internal/weather"
)

// Provider answers "where is the user right now". Implementations return
// weather.ErrPermissionDenied or weather.ErrLocationUnavailable (possibly wrapped)
// when no fix can be produced.
type Provider interface {
	CurrentLocation(ctx context.Context) (weather.Coordinates, error)
}

var errNoPositionFix = errors.New("no position fix")

type StaticConfig struct {
	PermissionGranted bool
	Enabled           bool
	Latitude          *float64
	Longitude         *float64
}

// StaticProvider serves a fixed, configured position. It stands in for the device
// location services a handset would offer.
type StaticProvider struct {
	config StaticConfig
}

func NewStaticProvider(config StaticConfig) *StaticProvider {
	return &StaticProvider{config: config}
}

func (p *StaticProvider) CurrentLocation(ctx context.Context) (weather.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %w", weather.ErrLocationUnavailable, err)
	}

	if !p.config.PermissionGranted {
		return weather.Coordinates{}, weather.ErrPermissionDenied
	}

	if !p.config.Enabled {
		return weather.Coordinates{}, fmt.Errorf("%w: %w", weather.ErrLocationUnavailable, weather.ErrLocationServicesOff)
	}

	if p.config.Latitude == nil || p.config.Longitude == nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %w", weather.ErrLocationUnavailable, errNoPositionFix)
	}

	return weather.Coordinates{
		Latitude:  *p.config.Latitude,
		Longitude: *p.config.Longitude,
	}, nil
}
