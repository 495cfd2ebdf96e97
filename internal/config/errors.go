package config

import (
	"errors"
)

var (
	ErrValueEmpty         = errors.New("value is empty")
	ErrNoIPVersionEnabled = errors.New("both IPv4 and IPv6 are disabled")
	ErrTimeoutTooLow      = errors.New("timeout is too low")
)

// ValidationError is returned when a configuration field is not valid.
type ValidationError struct {
	// Field is the path of the configuration field, for example
	// "records[1].zoneId".
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
