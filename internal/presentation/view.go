package presentation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"ulascansenturk/weather-lookup/internal/weather"
)

const (
	ScreenMain      = "main"
	ScreenSecondary = "secondary"

	dateAndTimeLayout = "02/01/2006 15:04"
)

func ValidScreen(screen string) bool {
	return screen == ScreenMain || screen == ScreenSecondary
}

// View carries the display strings of one screen, already formatted.
type View struct {
	Screen      string         `json:"screen"`
	DateAndTime string         `json:"date_and_time"`
	CityName    string         `json:"city_name"`
	Temperature string         `json:"temperature"`
	Description string         `json:"description"`
	Sunrise     string         `json:"sunrise"`
	Sunset      string         `json:"sunset"`
	Pressure    string         `json:"pressure"`
	Clouds      string         `json:"clouds"`
	Humidity    string         `json:"humidity"`
	WindSpeed   string         `json:"wind_speed"`
	Category    string         `json:"category,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Report      weather.Report `json:"report"`
}

func Render(screen string, report weather.Report, zone *time.Location, now time.Time) View {
	if zone == nil {
		zone = time.Local
	}

	view := View{
		Screen:      screen,
		DateAndTime: now.In(zone).Format(dateAndTimeLayout),
		CityName:    report.CityName,
		Temperature: decimalString(report.TemperatureCelsius()) + "°C",
		Description: report.ConditionDescription,
		Sunrise:     weather.ShortTime(weather.ToLocalTimeString(report.SunriseEpochSeconds, zone)),
		Sunset:      weather.ShortTime(weather.ToLocalTimeString(report.SunsetEpochSeconds, zone)),
		Pressure:    strconv.Itoa(report.PressureHpa) + " hPa",
		Clouds:      strconv.Itoa(report.CloudsPercent) + "%",
		Humidity:    strconv.Itoa(report.HumidityPercent) + "%",
		WindSpeed:   decimalString(report.WindSpeedMetersPerSecond) + " m/s",
		Report:      report,
	}

	// Unknown codes leave the icon untouched.
	if category, ok := report.Category(); ok {
		view.Category = string(category)
		view.Icon = category.Icon()
	}

	return view
}

// decimalString always shows at least one fractional digit: 4 -> "4.0", 4.12 -> "4.12".
func decimalString(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// ErrorNotice is the short message shown to the user when a query attempt fails.
// City lookups collapse unknown cities and network trouble into one message.
func ErrorNotice(err error) string {
	var qe *weather.QueryError
	if !errors.As(err, &qe) {
		return "ERROR"
	}

	switch qe.Kind {
	case weather.KindInvalidCityName:
		return "Not a valid city name"
	case weather.KindNetworkFailure:
		if qe.Query.Type() == weather.QueryByCity {
			return "Not a valid city name"
		}
		return "ERROR"
	case weather.KindLocationUnavailable:
		if errors.Is(qe.Err, weather.ErrLocationServicesOff) {
			return "Turn on location"
		}
		return "Unable to get location: " + locationCause(qe.Err)
	case weather.KindPermissionDenied:
		return "Denied"
	}
	return "ERROR"
}

// locationCause drops the LocationUnavailable prefix a provider puts in front of
// the actual reason.
func locationCause(err error) string {
	if err == nil {
		return weather.ErrLocationUnavailable.Error()
	}
	cause := strings.TrimPrefix(err.Error(), weather.ErrLocationUnavailable.Error()+": ")
	if cause == "" {
		return weather.ErrLocationUnavailable.Error()
	}
	return cause
}

func (v View) Lines() []string {
	lines := []string{
		v.DateAndTime,
		v.CityName,
		v.Temperature,
		v.Description,
		"Sunrise: " + v.Sunrise,
		"Sunset: " + v.Sunset,
		"Pressure: " + v.Pressure,
		"Clouds: " + v.Clouds,
		"Humidity: " + v.Humidity,
		"Wind: " + v.WindSpeed,
	}
	if v.Icon != "" {
		lines = append(lines, "Icon: "+v.Icon+" ("+v.Category+")")
	}
	return lines
}
