package config

import (
	"fmt"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/qdm12/cloudflare-ddns/pkg/publicip"
	"github.com/qdm12/cloudflare-ddns/pkg/publicip/dns"
	"github.com/qdm12/cloudflare-ddns/pkg/publicip/http"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Resolvers struct {
	// Order is the order in which the public IP
	// fetcher types are tried, each being "dns" or "http".
	Order []string     `json:"order"`
	DNS   *string      `json:"dns"`
	HTTP  HTTPResolver `json:"http"`
	// DNSTimeout is the timeout for each DNS query.
	DNSTimeout time.Duration `json:"-"`
	// HTTPTimeout is the timeout for each HTTP request.
	HTTPTimeout time.Duration `json:"-"`
}

type HTTPResolver struct {
	IPv4Endpoint *string `json:"ipv4Endpoint"`
	IPv6Endpoint *string `json:"ipv6Endpoint"`
}

func (r *Resolvers) setDefaults() {
	r.Order = gosettings.DefaultSlice(r.Order, []string{
		string(publicip.DNS), string(publicip.HTTP),
	})
	r.DNS = gosettings.DefaultPointer(r.DNS, string(dns.Cloudflare))
	r.HTTP.IPv4Endpoint = gosettings.DefaultPointer(r.HTTP.IPv4Endpoint, "https://api.ipify.org")
	r.HTTP.IPv6Endpoint = gosettings.DefaultPointer(r.HTTP.IPv6Endpoint, "https://api6.ipify.org")
	const defaultDNSTimeout = 3 * time.Second
	r.DNSTimeout = gosettings.DefaultComparable(r.DNSTimeout, defaultDNSTimeout)
	const defaultHTTPTimeout = 5 * time.Second
	r.HTTPTimeout = gosettings.DefaultComparable(r.HTTPTimeout, defaultHTTPTimeout)
}

func (r Resolvers) validate() *ValidationError {
	if len(r.Order) == 0 {
		return &ValidationError{Field: "resolvers.order", Err: publicip.ErrNoFetcherSpecified}
	}

	fetcherTypes := publicip.ListFetcherTypes()
	fetcherTypeChoices := make([]string, len(fetcherTypes))
	for i, fetcherType := range fetcherTypes {
		fetcherTypeChoices[i] = string(fetcherType)
	}
	for i, fetcherType := range r.Order {
		err := validate.IsOneOf(fetcherType, fetcherTypeChoices...)
		if err != nil {
			return &ValidationError{Field: fmt.Sprintf("resolvers.order[%d]", i), Err: err}
		}
	}

	providers := dns.ListProviders()
	providerChoices := make([]string, len(providers))
	for i, provider := range providers {
		providerChoices[i] = string(provider)
	}
	err := validate.IsOneOf(*r.DNS, providerChoices...)
	if err != nil {
		return &ValidationError{Field: "resolvers.dns", Err: err}
	}

	err = http.ValidateEndpoint(*r.HTTP.IPv4Endpoint)
	if err != nil {
		return &ValidationError{Field: "resolvers.http.ipv4Endpoint", Err: err}
	}

	err = http.ValidateEndpoint(*r.HTTP.IPv6Endpoint)
	if err != nil {
		return &ValidationError{Field: "resolvers.http.ipv6Endpoint", Err: err}
	}

	err = validateTimeout(r.DNSTimeout)
	if err != nil {
		return &ValidationError{Field: "PUBLICIP_DNS_TIMEOUT", Err: err}
	}

	err = validateTimeout(r.HTTPTimeout)
	if err != nil {
		return &ValidationError{Field: "PUBLICIP_HTTP_TIMEOUT", Err: err}
	}

	return nil
}

func (r Resolvers) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP resolvers")
	node.Appendf("Order: %s", strings.Join(r.Order, ", "))
	dnsNode := node.Appendf("DNS")
	dnsNode.Appendf("Provider: %s", *r.DNS)
	dnsNode.Appendf("Timeout: %s", r.DNSTimeout)
	httpNode := node.Appendf("HTTP")
	httpNode.Appendf("IPv4 endpoint: %s", *r.HTTP.IPv4Endpoint)
	httpNode.Appendf("IPv6 endpoint: %s", *r.HTTP.IPv6Endpoint)
	httpNode.Appendf("Timeout: %s", r.HTTPTimeout)
	return node
}

func (r *Resolvers) read(reader Reader) (err error) {
	r.DNSTimeout, err = reader.Duration("PUBLICIP_DNS_TIMEOUT")
	if err != nil {
		return err
	}

	r.HTTPTimeout, err = reader.Duration("PUBLICIP_HTTP_TIMEOUT")
	return err
}

// Settings returns the public IP fetcher settings.
// The configuration must have been validated.
func (r Resolvers) Settings(client *nethttp.Client, logger Debugger) publicip.Settings {
	return publicip.Settings{
		Order: r.Order,
		DNS: publicip.DNSSettings{
			Options: []dns.Option{
				dns.SetProvider(dns.Provider(*r.DNS)),
				dns.SetTimeout(r.DNSTimeout),
				dns.SetLogger(logger),
			},
		},
		HTTP: publicip.HTTPSettings{
			Client: client,
			Options: []http.Option{
				http.SetIPv4Endpoint(*r.HTTP.IPv4Endpoint),
				http.SetIPv6Endpoint(*r.HTTP.IPv6Endpoint),
				http.SetTimeout(r.HTTPTimeout),
				http.SetLogger(logger),
			},
		},
	}
}

type Debugger interface {
	Debugf(format string, args ...any)
}
