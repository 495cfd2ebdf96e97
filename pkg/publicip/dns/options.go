package dns

import "time"

// Debugger is the logger used to report why an address
// could not be resolved.
type Debugger interface {
	Debugf(format string, args ...any)
}

type settings struct {
	provider Provider
	timeout  time.Duration
	client   Client
	logger   Debugger
}

func newDefaultSettings() settings {
	const defaultTimeout = 3 * time.Second
	return settings{
		provider: Cloudflare,
		timeout:  defaultTimeout,
		logger:   &noopLogger{},
	}
}

type Option func(s *settings) error

func SetProvider(provider Provider) Option {
	return func(s *settings) (err error) {
		err = ValidateProvider(provider)
		if err != nil {
			return err
		}
		s.provider = provider
		return nil
	}
}

// SetTimeout sets the timeout for each DNS query.
func SetTimeout(timeout time.Duration) Option {
	return func(s *settings) (err error) {
		s.timeout = timeout
		return nil
	}
}

// SetClient sets the DNS client to use, mostly for testing.
func SetClient(client Client) Option {
	return func(s *settings) (err error) {
		s.client = client
		return nil
	}
}

func SetLogger(logger Debugger) Option {
	return func(s *settings) (err error) {
		s.logger = logger
		return nil
	}
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
