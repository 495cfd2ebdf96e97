package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ValidateEndpoint(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		endpoint string
		err      error
	}{
		"https": {
			endpoint: "https://api.ipify.org",
		},
		"http with path": {
			endpoint: "http://ip.example.com:8000/ip",
		},
		"malformed": {
			endpoint: "http://[::1",
			err:      errors.New(`endpoint URL is malformed: parse "http://[::1": missing ']' in host`),
		},
		"ftp scheme": {
			endpoint: "ftp://example.com",
			err:      errors.New(`endpoint URL scheme is not http or https: "ftp://example.com"`),
		},
		"no scheme": {
			endpoint: "api.ipify.org",
			err:      errors.New(`endpoint URL scheme is not http or https: "api.ipify.org"`),
		},
		"empty host": {
			endpoint: "https:///ip",
			err:      errors.New(`endpoint URL host is empty: "https:///ip"`),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := ValidateEndpoint(testCase.endpoint)

			if testCase.err != nil {
				require.Error(t, err)
				assert.Equal(t, testCase.err.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_New_invalidEndpoint(t *testing.T) {
	t.Parallel()

	fetcher, err := New(nil, SetIPv6Endpoint("udp://example.com"))

	assert.Nil(t, fetcher)
	assert.ErrorIs(t, err, ErrEndpointScheme)
	assert.EqualError(t, err, `ipv6 endpoint: endpoint URL scheme is not http or https: "udp://example.com"`)
}
