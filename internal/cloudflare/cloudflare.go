package cloudflare

import "net/http"

const defaultBaseURL = "https://api.cloudflare.com/client/v4"

// Client is a client for the DNS endpoints of the Cloudflare v4 API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

type settings struct {
	baseURL string
	logger  DebugLogger
}

type Option func(s *settings)

// SetBaseURL sets the API base URL, without trailing slash.
func SetBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

// SetDebugLogger logs every request and response going
// through the client with the logger given.
func SetDebugLogger(logger DebugLogger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func New(httpClient *http.Client, token string, options ...Option) *Client {
	settings := settings{
		baseURL: defaultBaseURL,
	}
	for _, option := range options {
		option(&settings)
	}

	if settings.logger != nil {
		httpClient = makeLogClient(httpClient, settings.logger)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    settings.baseURL,
		token:      token,
	}
}

func (c *Client) setHeaders(request *http.Request) {
	request.Header.Set("User-Agent", "cloudflare-ddns github.com/qdm12/cloudflare-ddns")
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.token)
}
