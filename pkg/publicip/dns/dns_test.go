package dns

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/miekg/dns"
	"github.com/qdm12/cloudflare-ddns/pkg/publicip/dns/mock_dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		fetcher, err := New()

		require.NoError(t, err)
		client, ok := fetcher.client.(*dns.Client)
		require.True(t, ok)
		assert.Equal(t, "udp", client.Net)
		assert.Equal(t, 3*time.Second, client.Timeout)
		assert.Equal(t, "whoami.cloudflare.", fetcher.data.fqdn)
	})

	t.Run("google provider", func(t *testing.T) {
		t.Parallel()

		fetcher, err := New(SetProvider(Google), SetTimeout(time.Second))

		require.NoError(t, err)
		assert.Equal(t, "o-o.myaddr.l.google.com.", fetcher.data.fqdn)
		assert.Equal(t, dns.Class(dns.ClassINET), fetcher.data.class)
		assert.Equal(t, time.Second, fetcher.timeout)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		// No call is expected on the client.
		client := mock_dns.NewMockClient(ctrl)

		fetcher, err := New(SetClient(client), SetProvider("opendns"))

		assert.Nil(t, fetcher)
		require.ErrorIs(t, err, ErrUnknownProvider)
		assert.EqualError(t, err, "unknown public IP echo DNS provider: opendns")
	})
}
