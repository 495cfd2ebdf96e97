package http

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Debugger is the logger used to report why an address
// could not be resolved.
type Debugger interface {
	Debugf(format string, args ...any)
}

type settings struct {
	ipv4Endpoint string
	ipv6Endpoint string
	timeout      time.Duration
	logger       Debugger
}

func newDefaultSettings() settings {
	const defaultTimeout = 5 * time.Second
	return settings{
		ipv4Endpoint: "https://api.ipify.org",
		ipv6Endpoint: "https://api6.ipify.org",
		timeout:      defaultTimeout,
		logger:       &noopLogger{},
	}
}

type Option func(s *settings) error

// SetIPv4Endpoint sets the URL returning the public IPv4 address
// of the caller as plain text.
func SetIPv4Endpoint(endpoint string) Option {
	return func(s *settings) (err error) {
		err = ValidateEndpoint(endpoint)
		if err != nil {
			return fmt.Errorf("ipv4 endpoint: %w", err)
		}
		s.ipv4Endpoint = endpoint
		return nil
	}
}

// SetIPv6Endpoint sets the URL returning the public IPv6 address
// of the caller as plain text.
func SetIPv6Endpoint(endpoint string) Option {
	return func(s *settings) (err error) {
		err = ValidateEndpoint(endpoint)
		if err != nil {
			return fmt.Errorf("ipv6 endpoint: %w", err)
		}
		s.ipv6Endpoint = endpoint
		return nil
	}
}

func SetTimeout(timeout time.Duration) Option {
	return func(s *settings) (err error) {
		s.timeout = timeout
		return nil
	}
}

func SetLogger(logger Debugger) Option {
	return func(s *settings) (err error) {
		s.logger = logger
		return nil
	}
}

var (
	ErrEndpointMalformed = errors.New("endpoint URL is malformed")
	ErrEndpointScheme    = errors.New("endpoint URL scheme is not http or https")
	ErrEndpointHostEmpty = errors.New("endpoint URL host is empty")
)

// ValidateEndpoint returns an error if the endpoint is not
// an absolute http or https URL.
func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEndpointMalformed, err)
	}

	switch u.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("%w: %q", ErrEndpointScheme, endpoint)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: %q", ErrEndpointHostEmpty, endpoint)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
