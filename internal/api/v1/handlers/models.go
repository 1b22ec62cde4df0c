package handlers

import "ulascansenturk/weather-lookup/internal/presentation"

type WeatherResponse struct {
	presentation.View
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
