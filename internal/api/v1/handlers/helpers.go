package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/presentation"
	"ulascansenturk/weather-lookup/internal/weather"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusForbidden:
		errorCode = "FORBIDDEN"
		title = "Forbidden"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	case http.StatusServiceUnavailable:
		errorCode = "SERVICE_UNAVAILABLE"
		title = "Service Unavailable"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// respondWithQueryError maps a failed attempt onto a status code. The detail is
// the user-facing notice, so unknown cities and network trouble read the same.
func respondWithQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, weather.ErrEmptyCityName):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrInvalidCityName):
		respondWithError(w, http.StatusNotFound, presentation.ErrorNotice(err))
	case errors.Is(err, weather.ErrPermissionDenied):
		respondWithError(w, http.StatusForbidden, presentation.ErrorNotice(err))
	case errors.Is(err, weather.ErrLocationUnavailable):
		respondWithError(w, http.StatusServiceUnavailable, presentation.ErrorNotice(err))
	case errors.Is(err, weather.ErrNetworkFailure):
		respondWithError(w, http.StatusBadGateway, presentation.ErrorNotice(err))
	default:
		respondWithError(w, http.StatusInternalServerError, "failed to get weather data: "+err.Error())
	}
}
