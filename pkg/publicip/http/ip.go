package http

import (
	"context"
	"net/netip"

	"github.com/qdm12/cloudflare-ddns/pkg/publicip/ipversion"
)

// IP4 returns the public IPv4 address of the host, or the zero
// address if it cannot be found.
func (f *Fetcher) IP4(ctx context.Context) (publicIP netip.Addr) {
	return f.ip(ctx, f.ipv4Endpoint, ipversion.IP4)
}

// IP6 returns the public IPv6 address of the host, or the zero
// address if it cannot be found.
func (f *Fetcher) IP6(ctx context.Context) (publicIP netip.Addr) {
	return f.ip(ctx, f.ipv6Endpoint, ipversion.IP6)
}

func (f *Fetcher) ip(ctx context.Context, url string, version ipversion.IPVersion) (
	publicIP netip.Addr) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	publicIP, err := fetch(ctx, f.client, url)
	if err != nil {
		f.logger.Debugf("fetching %s address from %s: %s", version, url, err)
		return netip.Addr{}
	}

	if !version.Matches(publicIP) {
		f.logger.Debugf("fetching %s address from %s: received non %s address %s",
			version, url, version, publicIP)
		return netip.Addr{}
	}

	return publicIP
}
