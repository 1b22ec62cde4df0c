package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *WeatherHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/weather", h.GetWeather).Methods(http.MethodGet)
	r.HandleFunc("/weather/current", h.GetCurrentLocationWeather).Methods(http.MethodGet)
	r.HandleFunc("/screens/{screen}", h.GetScreen).Methods(http.MethodGet)
	r.HandleFunc("/screens/{screen}", h.CloseScreen).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
