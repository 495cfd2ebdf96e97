package http

import (
	"net/http"
	"time"
)

// Fetcher finds the public IP addresses of the host using
// HTTP endpoints echoing the caller address.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	ipv4Endpoint string
	ipv6Endpoint string
	logger       Debugger
}

func New(client *http.Client, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		client:       client,
		timeout:      settings.timeout,
		ipv4Endpoint: settings.ipv4Endpoint,
		ipv6Endpoint: settings.ipv6Endpoint,
		logger:       settings.logger,
	}, nil
}
