package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/db/weatherquery"
	"ulascansenturk/weather-lookup/internal/location"
	"ulascansenturk/weather-lookup/internal/providers"
	"ulascansenturk/weather-lookup/internal/weather"
)

type WeatherService interface {
	Fetch(ctx context.Context, screen string, query weather.LocationQuery) (weather.Report, error)
	FetchCurrentLocation(ctx context.Context, screen string) (weather.Report, error)
}

type weatherService struct {
	provider         providers.WeatherProvider
	locationProvider location.Provider
	weatherQueryRepo weatherquery.Repository
}

// NewWeatherService wires the query pipeline. weatherQueryRepo may be nil, in which
// case attempts are only logged.
func NewWeatherService(
	provider providers.WeatherProvider,
	locationProvider location.Provider,
	weatherQueryRepo weatherquery.Repository,
) WeatherService {
	return &weatherService{
		provider:         provider,
		locationProvider: locationProvider,
		weatherQueryRepo: weatherQueryRepo,
	}
}

func (s *weatherService) Fetch(ctx context.Context, screen string, query weather.LocationQuery) (weather.Report, error) {
	return s.attempt(ctx, uuid.NewString(), screen, query)
}

func (s *weatherService) FetchCurrentLocation(ctx context.Context, screen string) (weather.Report, error) {
	requestID := uuid.NewString()

	coords, err := s.locationProvider.CurrentLocation(ctx)
	if err != nil {
		kind := weather.KindLocationUnavailable
		if errors.Is(err, weather.ErrPermissionDenied) {
			kind = weather.KindPermissionDenied
		}

		locationErr := weather.NewLocationError(kind, err)
		s.record(ctx, requestID, screen, nil, weather.Report{}, locationErr)
		return weather.Report{}, locationErr
	}

	return s.attempt(ctx, requestID, screen, weather.ByCoordinates(coords.Latitude, coords.Longitude))
}

func (s *weatherService) attempt(ctx context.Context, requestID, screen string, query weather.LocationQuery) (weather.Report, error) {
	if city, ok := query.CityName(); ok {
		query = weather.ByCity(strings.TrimSpace(city))
	}

	report, err := s.fetch(ctx, query)
	s.record(ctx, requestID, screen, &query, report, err)

	return report, err
}

func (s *weatherService) fetch(ctx context.Context, query weather.LocationQuery) (weather.Report, error) {
	if coords, ok := query.Coordinates(); ok {
		report, err := s.provider.CurrentByCoordinates(ctx, coords)
		if err != nil {
			return weather.Report{}, weather.NewQueryError(weather.KindNetworkFailure, query, err)
		}
		return report, nil
	}

	city, _ := query.CityName()
	if city == "" {
		return weather.Report{}, weather.NewQueryError(weather.KindInvalidCityName, query, weather.ErrEmptyCityName)
	}

	report, err := s.provider.CurrentByCity(ctx, city)
	if err != nil {
		return weather.Report{}, weather.NewQueryError(classifyCityFailure(err), query, err)
	}
	return report, nil
}

// classifyCityFailure separates "the provider does not know this city" from every
// other way the request can fail.
func classifyCityFailure(err error) weather.ErrorKind {
	var statusErr *providers.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusNotFound, http.StatusBadRequest:
			return weather.KindInvalidCityName
		}
	}
	return weather.KindNetworkFailure
}

func (s *weatherService) record(
	ctx context.Context,
	requestID, screen string,
	query *weather.LocationQuery,
	report weather.Report,
	fetchErr error,
) {
	entry := &weatherquery.WeatherQuery{
		RequestID: requestID,
		Screen:    screen,
		QueryType: weatherquery.QueryTypeCurrentLocation,
		Outcome:   weatherquery.OutcomeSuccess,
	}

	queryField := weatherquery.QueryTypeCurrentLocation
	if query != nil {
		entry.QueryType = query.Type().String()
		queryField = query.String()
		if coords, ok := query.Coordinates(); ok {
			entry.Latitude = &coords.Latitude
			entry.Longitude = &coords.Longitude
		} else {
			entry.City, _ = query.CityName()
		}
	}

	if fetchErr != nil {
		kind, _ := weather.KindOf(fetchErr)
		entry.Outcome = kind.String()

		log.Warn().Err(fetchErr).
			Str("request_id", requestID).
			Str("screen", screen).
			Str("query", queryField).
			Str("kind", kind.String()).
			Msg("weather query failed")
	} else {
		entry.CityID = report.CityID
		entry.ConditionCode = report.ConditionCode
		entry.TemperatureKelvin = report.TemperatureKelvin

		log.Info().
			Str("request_id", requestID).
			Str("screen", screen).
			Str("query", queryField).
			Int("city_id", report.CityID).
			Int("condition_code", report.ConditionCode).
			Msg("weather query succeeded")
	}

	if s.weatherQueryRepo == nil {
		return
	}

	if err := s.weatherQueryRepo.LogWeatherQuery(context.WithoutCancel(ctx), entry); err != nil {
		log.Error().Err(err).Str("request_id", requestID).Msg("failed to log weather query")
	}
}
