package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-lookup/internal/db/weatherquery"
	"ulascansenturk/weather-lookup/internal/location"
	"ulascansenturk/weather-lookup/internal/mocks"
	"ulascansenturk/weather-lookup/internal/providers"
	"ulascansenturk/weather-lookup/internal/service"
	"ulascansenturk/weather-lookup/internal/weather"
)

type WeatherServiceTestSuite struct {
	suite.Suite
	mockProvider *mocks.MockWeatherProvider
	mockLocation *mocks.MockProvider
	mockRepo     *mocks.MockRepository
	service      service.WeatherService
	ctx          context.Context
}

func (s *WeatherServiceTestSuite) SetupTest() {
	s.mockProvider = mocks.NewMockWeatherProvider(s.T())
	s.mockLocation = mocks.NewMockProvider(s.T())
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.service = service.NewWeatherService(s.mockProvider, s.mockLocation, s.mockRepo)
	s.ctx = context.Background()
}

func outcome(expected string) interface{} {
	return mock.MatchedBy(func(q *weatherquery.WeatherQuery) bool {
		return q.Outcome == expected && q.RequestID != ""
	})
}

func (s *WeatherServiceTestSuite) TestFetchByCitySuccess() {
	expected := weather.Report{CityID: 2643743, CityName: "London", ConditionCode: 800, TemperatureKelvin: 285.0}

	s.mockProvider.On("CurrentByCity", mock.Anything, "London").Return(expected, nil).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.MatchedBy(func(q *weatherquery.WeatherQuery) bool {
		return q.Outcome == weatherquery.OutcomeSuccess &&
			q.Screen == "main" &&
			q.QueryType == "city" &&
			q.City == "London" &&
			q.CityID == 2643743 &&
			q.ConditionCode == 800 &&
			q.Latitude == nil
	})).Return(nil).Once()

	report, err := s.service.Fetch(s.ctx, "main", weather.ByCity("London"))

	s.NoError(err)
	s.Equal(expected, report)
}

func (s *WeatherServiceTestSuite) TestFetchByCityTrimsWhitespace() {
	s.mockProvider.On("CurrentByCity", mock.Anything, "New York").Return(weather.Report{CityName: "New York"}, nil).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.MatchedBy(func(q *weatherquery.WeatherQuery) bool {
		return q.Outcome == weatherquery.OutcomeSuccess && q.City == "New York"
	})).Return(nil).Once()

	report, err := s.service.Fetch(s.ctx, "main", weather.ByCity("  New York \t"))

	s.NoError(err)
	s.Equal("New York", report.CityName)
}

func (s *WeatherServiceTestSuite) TestFetchWithEmptyCityNeverCallsProvider() {
	for _, name := range []string{"", "   ", "\t\n"} {
		s.mockRepo.On("LogWeatherQuery", mock.Anything, outcome("invalid_city_name")).Return(nil).Once()

		report, err := s.service.Fetch(s.ctx, "main", weather.ByCity(name))

		s.Error(err)
		s.ErrorIs(err, weather.ErrInvalidCityName)
		s.ErrorIs(err, weather.ErrEmptyCityName)
		s.Equal(weather.Report{}, report)
	}

	s.mockProvider.AssertNotCalled(s.T(), "CurrentByCity", mock.Anything, mock.Anything)
}

func (s *WeatherServiceTestSuite) TestFetchZeroValueQueryIsInvalid() {
	s.mockRepo.On("LogWeatherQuery", mock.Anything, outcome("invalid_city_name")).Return(nil).Once()

	_, err := s.service.Fetch(s.ctx, "main", weather.LocationQuery{})

	s.ErrorIs(err, weather.ErrInvalidCityName)
	s.mockProvider.AssertNotCalled(s.T(), "CurrentByCity", mock.Anything, mock.Anything)
}

func (s *WeatherServiceTestSuite) TestFetchByCityFailureClassification() {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", &providers.StatusError{StatusCode: http.StatusNotFound, Message: "city not found"}, weather.ErrInvalidCityName},
		{"bad request", &providers.StatusError{StatusCode: http.StatusBadRequest}, weather.ErrInvalidCityName},
		{"server error", &providers.StatusError{StatusCode: http.StatusInternalServerError}, weather.ErrNetworkFailure},
		{"unauthorized", &providers.StatusError{StatusCode: http.StatusUnauthorized}, weather.ErrNetworkFailure},
		{"empty body", providers.ErrEmptyBody, weather.ErrNetworkFailure},
		{"transport", errors.New("request failed: connection refused"), weather.ErrNetworkFailure},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			city := "City-" + tt.name
			s.mockProvider.On("CurrentByCity", mock.Anything, city).Return(weather.Report{}, tt.err).Once()
			s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.Anything).Return(nil).Once()

			_, err := s.service.Fetch(s.ctx, "main", weather.ByCity(city))

			s.Require().Error(err)
			s.ErrorIs(err, tt.want)
			s.ErrorIs(err, tt.err)
		})
	}
}

func (s *WeatherServiceTestSuite) TestCurrentLocationFetchFailureIsAuditedOnce() {
	coords := weather.Coordinates{Latitude: 52.2297, Longitude: 21.0122}
	s.mockLocation.On("CurrentLocation", mock.Anything).Return(coords, nil).Once()
	s.mockProvider.On("CurrentByCoordinates", mock.Anything, coords).Return(weather.Report{}, errors.New("timeout")).Once()

	var logged []*weatherquery.WeatherQuery
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			logged = append(logged, args.Get(1).(*weatherquery.WeatherQuery))
		}).
		Return(nil).Once()

	_, err := s.service.FetchCurrentLocation(s.ctx, "main")

	s.ErrorIs(err, weather.ErrNetworkFailure)
	s.Require().Len(logged, 1)
	s.Equal("coordinates", logged[0].QueryType)
	s.Equal("network_failure", logged[0].Outcome)
	s.NotEmpty(logged[0].RequestID)
}

func (s *WeatherServiceTestSuite) TestFetchByCoordinates() {
	coords := weather.Coordinates{Latitude: 51.5085, Longitude: -0.1257}
	s.mockProvider.On("CurrentByCoordinates", mock.Anything, coords).Return(weather.Report{CityName: "London"}, nil).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.MatchedBy(func(q *weatherquery.WeatherQuery) bool {
		return q.QueryType == "coordinates" &&
			q.Latitude != nil && *q.Latitude == coords.Latitude &&
			q.Longitude != nil && *q.Longitude == coords.Longitude &&
			q.City == ""
	})).Return(nil).Once()

	report, err := s.service.Fetch(s.ctx, "secondary", weather.ByCoordinates(coords.Latitude, coords.Longitude))

	s.NoError(err)
	s.Equal("London", report.CityName)
}

func (s *WeatherServiceTestSuite) TestFetchByCoordinatesFailureIsNetworkFailure() {
	coords := weather.Coordinates{Latitude: 999, Longitude: 999}
	s.mockProvider.On("CurrentByCoordinates", mock.Anything, coords).
		Return(weather.Report{}, &providers.StatusError{StatusCode: http.StatusBadRequest, Message: "wrong latitude"}).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, outcome("network_failure")).Return(nil).Once()

	_, err := s.service.Fetch(s.ctx, "main", weather.ByCoordinates(999, 999))

	s.ErrorIs(err, weather.ErrNetworkFailure)
	s.NotErrorIs(err, weather.ErrInvalidCityName)
}

func (s *WeatherServiceTestSuite) TestAuditFailureDoesNotFailFetch() {
	s.mockProvider.On("CurrentByCity", mock.Anything, "Rome").Return(weather.Report{CityName: "Rome"}, nil).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.Anything).Return(errors.New("database error")).Once()

	report, err := s.service.Fetch(s.ctx, "main", weather.ByCity("Rome"))

	s.NoError(err)
	s.Equal("Rome", report.CityName)
}

func (s *WeatherServiceTestSuite) TestFetchCurrentLocation() {
	coords := weather.Coordinates{Latitude: 52.2297, Longitude: 21.0122}
	s.mockLocation.On("CurrentLocation", mock.Anything).Return(coords, nil).Once()
	s.mockProvider.On("CurrentByCoordinates", mock.Anything, coords).Return(weather.Report{CityName: "Warsaw"}, nil).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, outcome(weatherquery.OutcomeSuccess)).Return(nil).Once()

	report, err := s.service.FetchCurrentLocation(s.ctx, "main")

	s.NoError(err)
	s.Equal("Warsaw", report.CityName)
}

func (s *WeatherServiceTestSuite) TestFetchCurrentLocationPermissionDenied() {
	s.mockLocation.On("CurrentLocation", mock.Anything).Return(weather.Coordinates{}, weather.ErrPermissionDenied).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.MatchedBy(func(q *weatherquery.WeatherQuery) bool {
		return q.Outcome == "permission_denied" &&
			q.RequestID != "" &&
			q.Screen == "main" &&
			q.QueryType == weatherquery.QueryTypeCurrentLocation &&
			q.City == "" &&
			q.Latitude == nil
	})).Return(nil).Once()

	_, err := s.service.FetchCurrentLocation(s.ctx, "main")

	s.ErrorIs(err, weather.ErrPermissionDenied)
	kind, ok := weather.KindOf(err)
	s.True(ok)
	s.Equal(weather.KindPermissionDenied, kind)
	s.mockProvider.AssertNotCalled(s.T(), "CurrentByCoordinates", mock.Anything, mock.Anything)
}

func (s *WeatherServiceTestSuite) TestFetchCurrentLocationUnavailable() {
	cause := errors.New("no position fix")
	s.mockLocation.On("CurrentLocation", mock.Anything).Return(weather.Coordinates{}, cause).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.MatchedBy(func(q *weatherquery.WeatherQuery) bool {
		return q.Outcome == "location_unavailable" && q.QueryType == weatherquery.QueryTypeCurrentLocation
	})).Return(nil).Once()

	_, err := s.service.FetchCurrentLocation(s.ctx, "secondary")

	s.ErrorIs(err, weather.ErrLocationUnavailable)
	s.ErrorIs(err, cause)
	s.NotContains(err.Error(), `q=`)
	s.mockProvider.AssertNotCalled(s.T(), "CurrentByCoordinates", mock.Anything, mock.Anything)
}

func TestWeatherServiceSuite(t *testing.T) {
	suite.Run(t, new(WeatherServiceTestSuite))
}

func TestFetchWithoutRepository(t *testing.T) {
	provider := mocks.NewMockWeatherProvider(t)
	provider.On("CurrentByCity", mock.Anything, "Oslo").Return(weather.Report{CityName: "Oslo"}, nil).Once()

	svc := service.NewWeatherService(provider, mocks.NewMockProvider(t), nil)
	report, err := svc.Fetch(context.Background(), "main", weather.ByCity("Oslo"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.CityName != "Oslo" {
		t.Fatalf("unexpected city %q", report.CityName)
	}
}

func TestEndToEndAgainstFakeProvider(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch r.URL.Query().Get("q") {
		case "London":
			w.Write([]byte(`{"weather":[{"id":800,"description":"clear sky"}],"main":{"temp":285.0,"pressure":1012,"humidity":81},"wind":{"speed":4.1,"deg":250},"clouds":{"all":0},"sys":{"sunrise":1717213401,"sunset":1717272551},"id":2643743,"name":"London"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		}
	}))
	defer server.Close()

	svc := service.NewWeatherService(
		providers.NewOpenWeatherService(server.URL, "key", 0),
		mocks.NewMockProvider(t),
		nil,
	)

	t.Run("London resolves to clear and 12.0", func(t *testing.T) {
		report, err := svc.Fetch(context.Background(), "main", weather.ByCity("London"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		category, ok := report.Category()
		if !ok || category != weather.CategoryClear {
			t.Fatalf("expected clear category, got %q (%v)", category, ok)
		}
		if got := report.TemperatureCelsius(); got != 12.0 {
			t.Fatalf("expected 12.0, got %v", got)
		}
	})

	t.Run("Zzzzz is not a valid city", func(t *testing.T) {
		report, err := svc.Fetch(context.Background(), "main", weather.ByCity("Zzzzz"))
		if !errors.Is(err, weather.ErrInvalidCityName) {
			t.Fatalf("expected invalid city name, got %v", err)
		}
		if report != (weather.Report{}) {
			t.Fatalf("expected no report, got %+v", report)
		}
	})

	t.Run("blank city sends nothing", func(t *testing.T) {
		before := requests.Load()
		_, err := svc.Fetch(context.Background(), "main", weather.ByCity(" "))
		if !errors.Is(err, weather.ErrEmptyCityName) {
			t.Fatalf("expected empty city error, got %v", err)
		}
		if requests.Load() != before {
			t.Fatalf("expected no upstream request")
		}
	})
}

type recordingRepository struct {
	entries []*weatherquery.WeatherQuery
}

func (r *recordingRepository) LogWeatherQuery(_ context.Context, query *weatherquery.WeatherQuery) error {
	r.entries = append(r.entries, query)
	return nil
}

func TestLocationFailuresAreAudited(t *testing.T) {
	tests := []struct {
		name    string
		config  location.StaticConfig
		outcome string
	}{
		{"permission not granted", location.StaticConfig{}, "permission_denied"},
		{"services turned off", location.StaticConfig{PermissionGranted: true}, "location_unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingRepository{}
			svc := service.NewWeatherService(mocks.NewMockWeatherProvider(t), location.NewStaticProvider(tt.config), repo)

			_, err := svc.FetchCurrentLocation(context.Background(), "main")
			if err == nil {
				t.Fatal("expected a location error")
			}

			if len(repo.entries) != 1 {
				t.Fatalf("expected one audit row, got %d", len(repo.entries))
			}
			entry := repo.entries[0]
			if entry.Outcome != tt.outcome {
				t.Fatalf("expected outcome %q, got %q", tt.outcome, entry.Outcome)
			}
			if entry.RequestID == "" {
				t.Fatal("expected a request id")
			}
		})
	}
}
