package dns

import (
	"time"

	"github.com/miekg/dns"
)

// Fetcher finds the public IP addresses of the host by querying
// TXT records echoing the client address from a DNS provider.
type Fetcher struct {
	client  Client
	timeout time.Duration
	data    providerData
	logger  Debugger
}

func New(options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		if err := option(&settings); err != nil {
			return nil, err
		}
	}

	data, err := settings.provider.data()
	if err != nil {
		return nil, err
	}

	client := settings.client
	if client == nil {
		client = &dns.Client{
			Net:     "udp",
			Timeout: settings.timeout,
		}
	}

	return &Fetcher{
		client:  client,
		timeout: settings.timeout,
		data:    data,
		logger:  settings.logger,
	}, nil
}
