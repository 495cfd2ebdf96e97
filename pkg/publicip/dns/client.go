package dns

import (
	"context"
	"time"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Client

// Client is the DNS client used to exchange messages with nameservers.
// It is satisfied by *dns.Client from github.com/miekg/dns.
type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, a string) (r *dns.Msg, rtt time.Duration, err error)
}
