package weather

// Report is the normalized current-weather snapshot for one location. It is built
// once per provider response and handed around by value.
type Report struct {
	CityID   int    `json:"city_id"`
	CityName string `json:"city_name"`

	TemperatureKelvin float64 `json:"temperature_kelvin"`
	HumidityPercent   int     `json:"humidity_percent"`
	PressureHpa       int     `json:"pressure_hpa"`
	CloudsPercent     int     `json:"clouds_percent"`

	WindSpeedMetersPerSecond float64  `json:"wind_speed_mps"`
	WindDirectionDegrees     int      `json:"wind_direction_degrees"`
	WindGustMetersPerSecond  *float64 `json:"wind_gust_mps,omitempty"`

	ConditionCode        int    `json:"condition_code"`
	ConditionDescription string `json:"condition_description"`

	SunriseEpochSeconds int64 `json:"sunrise_epoch_seconds"`
	SunsetEpochSeconds  int64 `json:"sunset_epoch_seconds"`
}

func (r Report) TemperatureCelsius() float64 {
	return KelvinToCelsius(r.TemperatureKelvin)
}

func (r Report) Category() (IconCategory, bool) {
	return Categorize(r.ConditionCode)
}
