package cloudflare

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func ptrTo[T any](value T) *T { return &value }

// newTestServer starts a server checking the request against the method,
// the path with query and the body expected, and writing the response given.
func newTestServer(t *testing.T, method, pathAndQuery, requestBody string,
	status int, responseBody string) *httptest.Server {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, method, r.Method)
		assert.Equal(t, pathAndQuery, r.URL.RequestURI())
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		if requestBody != "" {
			b, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, requestBody, string(b))
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}
