package weather

import (
	"fmt"
	"strconv"
)

type QueryType int

const (
	QueryByCity QueryType = iota
	QueryByCoordinates
)

func (t QueryType) String() string {
	switch t {
	case QueryByCoordinates:
		return "coordinates"
	default:
		return "city"
	}
}

type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// LocationQuery selects what to look up: a pair of coordinates or a city name,
// never both. The zero value is a city query with an empty name.
type LocationQuery struct {
	queryType   QueryType
	coordinates Coordinates
	cityName    string
}

func ByCoordinates(lat, lon float64) LocationQuery {
	return LocationQuery{
		queryType:   QueryByCoordinates,
		coordinates: Coordinates{Latitude: lat, Longitude: lon},
	}
}

func ByCity(name string) LocationQuery {
	return LocationQuery{queryType: QueryByCity, cityName: name}
}

func (q LocationQuery) Type() QueryType {
	return q.queryType
}

func (q LocationQuery) Coordinates() (Coordinates, bool) {
	if q.queryType != QueryByCoordinates {
		return Coordinates{}, false
	}
	return q.coordinates, true
}

func (q LocationQuery) CityName() (string, bool) {
	if q.queryType != QueryByCity {
		return "", false
	}
	return q.cityName, true
}

func (q LocationQuery) String() string {
	if q.queryType == QueryByCoordinates {
		return fmt.Sprintf("lat=%s lon=%s",
			strconv.FormatFloat(q.coordinates.Latitude, 'f', -1, 64),
			strconv.FormatFloat(q.coordinates.Longitude, 'f', -1, 64),
		)
	}
	return fmt.Sprintf("q=%q", q.cityName)
}
