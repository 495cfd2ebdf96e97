package dns

import (
	"context"
	"net/netip"

	"github.com/qdm12/cloudflare-ddns/pkg/publicip/ipversion"
)

// IP4 returns the public IPv4 address of the host, or the zero
// address if it cannot be found.
func (f *Fetcher) IP4(ctx context.Context) (publicIP netip.Addr) {
	return f.ip(ctx, ipversion.IP4, f.data.ipv4Nameservers)
}

// IP6 returns the public IPv6 address of the host, or the zero
// address if it cannot be found.
func (f *Fetcher) IP6(ctx context.Context) (publicIP netip.Addr) {
	return f.ip(ctx, ipversion.IP6, f.data.ipv6Nameservers)
}

func (f *Fetcher) ip(ctx context.Context, version ipversion.IPVersion,
	nameservers []netip.Addr) (publicIP netip.Addr) {
	publicIP, err := f.fetch(ctx, nameservers)
	if err != nil {
		f.logger.Debugf("fetching %s address over DNS: %s", version, err)
		return netip.Addr{}
	}

	if !version.Matches(publicIP) {
		f.logger.Debugf("fetching %s address over DNS: received %s address %s",
			version, ipVersionOf(publicIP), publicIP)
		return netip.Addr{}
	}

	return publicIP
}

func ipVersionOf(ip netip.Addr) ipversion.IPVersion {
	if ip.Is4() {
		return ipversion.IP4
	}
	return ipversion.IP6
}
