package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/presentation"
	"ulascansenturk/weather-lookup/internal/screenstate"
	"ulascansenturk/weather-lookup/internal/service"
	"ulascansenturk/weather-lookup/internal/weather"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	screens        screenstate.Store
	zone           *time.Location
	timeout        time.Duration
	now            func() time.Time
}

func NewWeatherHandler(
	weatherService service.WeatherService,
	screens screenstate.Store,
	zone *time.Location,
	timeout time.Duration,
) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		screens:        screens,
		zone:           zone,
		timeout:        timeout,
		now:            time.Now,
	}
}

// WithClock replaces the wall clock used for the rendered date line.
func (h *WeatherHandler) WithClock(now func() time.Time) *WeatherHandler {
	h.now = now
	return h
}

// GetWeather answers ?q={city} or ?lat={lat}&lon={lon}.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	screen, ok := screenParam(w, r)
	if !ok {
		return
	}

	query, ok := parseLocationQuery(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	report, err := h.weatherService.Fetch(ctx, screen, query)
	h.respond(w, screen, report, err)
}

func (h *WeatherHandler) GetCurrentLocationWeather(w http.ResponseWriter, r *http.Request) {
	screen, ok := screenParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	report, err := h.weatherService.FetchCurrentLocation(ctx, screen)
	h.respond(w, screen, report, err)
}

func (h *WeatherHandler) GetScreen(w http.ResponseWriter, r *http.Request) {
	screen := mux.Vars(r)["screen"]
	if !presentation.ValidScreen(screen) {
		respondWithError(w, http.StatusNotFound, "unknown screen")
		return
	}

	report, exists, err := h.screens.Current(screen)
	if err != nil {
		log.Error().Err(err).Str("screen", screen).Msg("failed to read screen state")
		respondWithError(w, http.StatusInternalServerError, "failed to read screen state")
		return
	}
	if !exists {
		respondWithError(w, http.StatusNotFound, "nothing displayed on screen "+screen)
		return
	}

	respondWithJSON(w, http.StatusOK, WeatherResponse{
		View: presentation.Render(screen, *report, h.zone, h.now()),
	})
}

func (h *WeatherHandler) CloseScreen(w http.ResponseWriter, r *http.Request) {
	screen := mux.Vars(r)["screen"]
	if !presentation.ValidScreen(screen) {
		respondWithError(w, http.StatusNotFound, "unknown screen")
		return
	}

	h.screens.Close(screen)
	w.WriteHeader(http.StatusNoContent)
}

func (h *WeatherHandler) respond(w http.ResponseWriter, screen string, report weather.Report, err error) {
	if err != nil {
		respondWithQueryError(w, err)
		return
	}

	if err := h.screens.Replace(screen, report); err != nil {
		log.Error().Err(err).Str("screen", screen).Msg("failed to update screen state")
	}

	respondWithJSON(w, http.StatusOK, WeatherResponse{
		View: presentation.Render(screen, report, h.zone, h.now()),
	})
}

// requestContext bounds the attempt by the handler timeout. A zero timeout
// leaves the request context as is.
func (h *WeatherHandler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

func screenParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	screen := r.URL.Query().Get("screen")
	if screen == "" {
		return presentation.ScreenMain, true
	}
	if !presentation.ValidScreen(screen) {
		respondWithError(w, http.StatusBadRequest, "unknown screen "+strconv.Quote(screen))
		return "", false
	}
	return screen, true
}

func parseLocationQuery(w http.ResponseWriter, r *http.Request) (weather.LocationQuery, bool) {
	values := r.URL.Query()
	_, hasCity := values["q"]
	latRaw, lonRaw := values.Get("lat"), values.Get("lon")
	hasCoords := latRaw != "" || lonRaw != ""

	switch {
	case hasCity && hasCoords:
		respondWithError(w, http.StatusBadRequest, "use either 'q' or 'lat'/'lon', not both")
		return weather.LocationQuery{}, false
	case hasCoords:
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(lonRaw), 64)
		if latErr != nil || lonErr != nil {
			respondWithError(w, http.StatusBadRequest, "'lat' and 'lon' must both be numbers")
			return weather.LocationQuery{}, false
		}
		return weather.ByCoordinates(lat, lon), true
	case hasCity:
		return weather.ByCity(values.Get("q")), true
	}

	respondWithError(w, http.StatusBadRequest, "location parameter 'q' or 'lat'/'lon' is required")
	return weather.LocationQuery{}, false
}
