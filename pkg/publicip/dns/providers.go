package dns

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/miekg/dns"
)

type Provider string

const (
	Cloudflare Provider = "cloudflare"
	Google     Provider = "google"
)

func ListProviders() []Provider {
	return []Provider{
		Cloudflare,
		Google,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo DNS provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type providerData struct {
	fqdn  string
	class dns.Class
	qType dns.Type
	// ipv4Nameservers are queried in order to find the public IPv4 address.
	ipv4Nameservers []netip.Addr
	// ipv6Nameservers are queried in order to find the public IPv6 address.
	ipv6Nameservers []netip.Addr
}

func (p Provider) data() (data providerData, err error) {
	switch p {
	case Cloudflare:
		return providerData{
			fqdn:  "whoami.cloudflare.",
			class: dns.ClassCHAOS,
			qType: dns.Type(dns.TypeTXT),
			ipv4Nameservers: []netip.Addr{
				netip.AddrFrom4([4]byte{1, 1, 1, 1}),
				netip.AddrFrom4([4]byte{1, 0, 0, 1}),
			},
			ipv6Nameservers: []netip.Addr{
				netip.MustParseAddr("2606:4700:4700::1111"),
				netip.MustParseAddr("2606:4700:4700::1001"),
			},
		}, nil
	case Google:
		// Only the ns*.google.com authoritative nameservers echo the
		// client address, the public resolvers return their own egress IP.
		return providerData{
			fqdn:  "o-o.myaddr.l.google.com.",
			class: dns.ClassINET,
			qType: dns.Type(dns.TypeTXT),
			ipv4Nameservers: []netip.Addr{
				netip.AddrFrom4([4]byte{216, 239, 32, 10}),
				netip.AddrFrom4([4]byte{216, 239, 34, 10}),
				netip.AddrFrom4([4]byte{216, 239, 36, 10}),
				netip.AddrFrom4([4]byte{216, 239, 38, 10}),
			},
			ipv6Nameservers: []netip.Addr{
				netip.MustParseAddr("2001:4860:4802:32::a"),
				netip.MustParseAddr("2001:4860:4802:34::a"),
				netip.MustParseAddr("2001:4860:4802:36::a"),
				netip.MustParseAddr("2001:4860:4802:38::a"),
			},
		}, nil
	default:
		return providerData{}, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}
}
