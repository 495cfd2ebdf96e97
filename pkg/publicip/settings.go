package publicip

import (
	"net/http"

	"github.com/qdm12/cloudflare-ddns/pkg/publicip/dns"
	iphttp "github.com/qdm12/cloudflare-ddns/pkg/publicip/http"
)

type Settings struct {
	// Order is the ordered list of fetcher types to try,
	// each being one of "dns" or "http".
	Order []string
	DNS   DNSSettings
	HTTP  HTTPSettings
}

type DNSSettings struct {
	Options []dns.Option
}

type HTTPSettings struct {
	Client  *http.Client
	Options []iphttp.Option
}
