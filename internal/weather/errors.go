package weather

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCityName     = errors.New("invalid city name")
	ErrNetworkFailure      = errors.New("network failure")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrPermissionDenied    = errors.New("location permission denied")

	// ErrLocationServicesOff is a LocationUnavailable cause the user can fix by
	// switching location services on.
	ErrLocationServicesOff = errors.New("location services are turned off")

	// ErrEmptyCityName is the cause of an InvalidCityName error raised before any
	// request was sent.
	ErrEmptyCityName = errors.New("city name cannot be empty")
)

type ErrorKind int

const (
	KindInvalidCityName ErrorKind = iota + 1
	KindNetworkFailure
	KindLocationUnavailable
	KindPermissionDenied
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCityName:
		return "invalid_city_name"
	case KindNetworkFailure:
		return "network_failure"
	case KindLocationUnavailable:
		return "location_unavailable"
	case KindPermissionDenied:
		return "permission_denied"
	}
	return "unknown"
}

func (k ErrorKind) isLocation() bool {
	return k == KindLocationUnavailable || k == KindPermissionDenied
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidCityName:
		return ErrInvalidCityName
	case KindNetworkFailure:
		return ErrNetworkFailure
	case KindLocationUnavailable:
		return ErrLocationUnavailable
	case KindPermissionDenied:
		return ErrPermissionDenied
	}
	return nil
}

// QueryError ends a single query attempt. errors.Is matches both the sentinel of
// its Kind and anything in the wrapped cause chain.
type QueryError struct {
	Kind  ErrorKind
	Query LocationQuery
	Err   error
}

func NewQueryError(kind ErrorKind, query LocationQuery, err error) *QueryError {
	return &QueryError{Kind: kind, Query: query, Err: err}
}

// NewLocationError reports a failure to resolve the device location. No weather
// query was built, so the error carries none.
func NewLocationError(kind ErrorKind, err error) *QueryError {
	return &QueryError{Kind: kind, Err: err}
}

func (e *QueryError) Error() string {
	var parts []string

	sentinel := e.Kind.sentinel()
	// A cause that already wraps the kind's sentinel spells it out itself.
	if sentinel != nil && (e.Err == nil || !errors.Is(e.Err, sentinel)) {
		parts = append(parts, sentinel.Error())
	}
	if !e.Kind.isLocation() {
		parts = append(parts, e.Query.String())
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "query failed"
	}

	return strings.Join(parts, ": ")
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf reports the kind of the first QueryError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind, true
	}
	return 0, false
}
