package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/qdm12/cloudflare-ddns/pkg/publicip/dns"
	"github.com/qdm12/cloudflare-ddns/pkg/publicip/http"
)

type ipFetcher interface {
	IP4(ctx context.Context) (ipv4 netip.Addr)
	IP6(ctx context.Context) (ipv6 netip.Addr)
}

// Fetcher tries each of its fetchers in order and
// returns the first valid address found.
type Fetcher struct {
	fetchers []ipFetcher
}

var ErrNoFetcherSpecified = errors.New("at least one fetcher type must be specified")

func NewFetcher(settings Settings) (f *Fetcher, err error) {
	if len(settings.Order) == 0 {
		return nil, ErrNoFetcherSpecified
	}

	fetcher := &Fetcher{
		fetchers: make([]ipFetcher, 0, len(settings.Order)),
	}

	for _, fetcherType := range settings.Order {
		var subFetcher ipFetcher
		switch FetcherType(fetcherType) {
		case DNS:
			subFetcher, err = dns.New(settings.DNS.Options...)
		case HTTP:
			subFetcher, err = http.New(settings.HTTP.Client, settings.HTTP.Options...)
		default:
			return nil, fmt.Errorf("%w: %s", ErrFetcherUnknown, fetcherType)
		}
		if err != nil {
			return nil, fmt.Errorf("creating %s fetcher: %w", fetcherType, err)
		}
		fetcher.fetchers = append(fetcher.fetchers, subFetcher)
	}

	return fetcher, nil
}

// IP4 returns the first valid public IPv4 address found,
// or the zero address if no fetcher could find one.
func (f *Fetcher) IP4(ctx context.Context) (ipv4 netip.Addr) {
	for _, fetcher := range f.fetchers {
		ipv4 = fetcher.IP4(ctx)
		if ipv4.IsValid() {
			return ipv4
		}
	}
	return netip.Addr{}
}

// IP6 returns the first valid public IPv6 address found,
// or the zero address if no fetcher could find one.
func (f *Fetcher) IP6(ctx context.Context) (ipv6 netip.Addr) {
	for _, fetcher := range f.fetchers {
		ipv6 = fetcher.IP6(ctx)
		if ipv6.IsValid() {
			return ipv6
		}
	}
	return netip.Addr{}
}

// IPs returns the public addresses found for the enabled
// IP versions, IPv4 first.
func (f *Fetcher) IPs(ctx context.Context, ipv4, ipv6 bool) (ips []netip.Addr) {
	ips = make([]netip.Addr, 0, 2) //nolint:gomnd
	if ipv4 {
		ip := f.IP4(ctx)
		if ip.IsValid() {
			ips = append(ips, ip)
		}
	}
	if ipv6 {
		ip := f.IP6(ctx)
		if ip.IsValid() {
			ips = append(ips, ip)
		}
	}
	return ips
}
