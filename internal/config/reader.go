package config

import (
	"time"

	"github.com/qdm12/gosettings/reader"
)

// Reader reads settings from the environment.
// It is implemented by *reader.Reader.
type Reader interface {
	Get(key string, options ...reader.Option) (value *string)
	CSV(key string, options ...reader.Option) (values []string)
	Duration(key string, options ...reader.Option) (duration time.Duration, err error)
}
