package weatherquery

import (
	"time"
)

const (
	OutcomeSuccess = "success"

	// QueryTypeCurrentLocation marks an attempt that failed before the device
	// location resolved into coordinates.
	QueryTypeCurrentLocation = "current_location"
)

// WeatherQuery is one row of the query audit log: what was asked, by which screen,
// and how the attempt ended. It is never read back to answer a lookup.
type WeatherQuery struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	RequestID         string    `json:"request_id" gorm:"column:request_id;size:36;uniqueIndex"`
	Screen            string    `json:"screen" gorm:"index:idx_screen_created_at"`
	QueryType         string    `json:"query_type" gorm:"column:query_type"`
	City              string    `json:"city"`
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`
	Outcome           string    `json:"outcome" gorm:"index:idx_outcome"`
	CityID            int       `json:"city_id" gorm:"column:city_id"`
	ConditionCode     int       `json:"condition_code" gorm:"column:condition_code"`
	TemperatureKelvin float64   `json:"temperature_kelvin" gorm:"column:temperature_kelvin"`
	CreatedAt         time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_screen_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
