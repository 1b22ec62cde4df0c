package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ulascansenturk/weather-lookup/internal/weather"
)

const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

var (
	ErrEmptyBody        = errors.New("empty response body")
	ErrMissingCondition = errors.New("response has no weather condition")
)

// StatusError is returned for any non-2xx answer from the provider.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider returned status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status code: %d (%s)", e.StatusCode, e.Message)
}

type WeatherProvider interface {
	CurrentByCoordinates(ctx context.Context, coords weather.Coordinates) (weather.Report, error)
	CurrentByCity(ctx context.Context, city string) (weather.Report, error)
	GetHTTPClient() *http.Client
}

type openWeatherService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewOpenWeatherService builds a client for the current-weather endpoint. A zero
// timeout leaves the transport defaults in charge.
func NewOpenWeatherService(baseURL, apiKey string, timeout time.Duration) WeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	return &openWeatherService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type CurrentWeatherResponse struct {
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure int     `json:"pressure"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64  `json:"speed"`
		Deg   int      `json:"deg"`
		Gust  *float64 `json:"gust,omitempty"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (r CurrentWeatherResponse) Report() (weather.Report, error) {
	if len(r.Weather) == 0 {
		return weather.Report{}, ErrMissingCondition
	}
	return weather.Report{
		CityID:                   r.ID,
		CityName:                 r.Name,
		TemperatureKelvin:        r.Main.Temp,
		HumidityPercent:          r.Main.Humidity,
		PressureHpa:              r.Main.Pressure,
		CloudsPercent:            r.Clouds.All,
		WindSpeedMetersPerSecond: r.Wind.Speed,
		WindDirectionDegrees:     r.Wind.Deg,
		WindGustMetersPerSecond:  r.Wind.Gust,
		ConditionCode:            r.Weather[0].ID,
		ConditionDescription:     r.Weather[0].Description,
		SunriseEpochSeconds:      r.Sys.Sunrise,
		SunsetEpochSeconds:       r.Sys.Sunset,
	}, nil
}

func (s *openWeatherService) CurrentByCoordinates(ctx context.Context, coords weather.Coordinates) (weather.Report, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	params.Set("appid", s.apiKey)

	return s.current(ctx, params)
}

func (s *openWeatherService) CurrentByCity(ctx context.Context, city string) (weather.Report, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", s.apiKey)

	return s.current(ctx, params)
}

func (s *openWeatherService) current(ctx context.Context, params url.Values) (weather.Report, error) {
	endpoint := s.baseURL + "/weather?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Report{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return weather.Report{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Report{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil {
			statusErr.Message = apiErr.Message
		}
		return weather.Report{}, statusErr
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return weather.Report{}, ErrEmptyBody
	}

	var apiResp CurrentWeatherResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return weather.Report{}, fmt.Errorf("provider returned malformed JSON: %w", err)
	}

	return apiResp.Report()
}

func (s *openWeatherService) GetHTTPClient() *http.Client {
	return s.client
}
