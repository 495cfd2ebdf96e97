package config

import (
	"strings"
	"time"

	"github.com/qdm12/gosettings/reader"
)

// fakeReader reads values from a map keyed by environment variable name.
type fakeReader map[string]string

func (f fakeReader) Get(key string, _ ...reader.Option) *string {
	value, ok := f[key]
	if !ok {
		return nil
	}
	return &value
}

func (f fakeReader) CSV(key string, _ ...reader.Option) []string {
	value, ok := f[key]
	if !ok {
		return nil
	}
	return strings.Split(value, ",")
}

func (f fakeReader) Duration(key string, _ ...reader.Option) (time.Duration, error) {
	value, ok := f[key]
	if !ok {
		return 0, nil
	}
	return time.ParseDuration(value)
}

func ptrTo[T any](value T) *T { return &value }
