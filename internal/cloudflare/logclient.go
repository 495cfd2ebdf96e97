package cloudflare

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

func makeLogClient(client *http.Client, logger DebugLogger) (newClient *http.Client) {
	newClient = &http.Client{
		Timeout: client.Timeout,
	}

	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	newClient.Transport = &loggingRoundTripper{
		proxied: originalTransport,
		logger:  logger,
	}

	return newClient
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Debug(requestToString(request))

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	lrt.logger.Debug(responseToString(response))

	return response, nil
}

func requestToString(request *http.Request) (s string) {
	s = request.Method + " " + request.URL.String()

	if len(request.Header) > 0 {
		s += " | headers: " + headerToString(request.Header)
	}

	if request.Body != nil && request.Body != http.NoBody {
		newBody, bodyString := readAndResetBody(request.Body)
		request.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if len(response.Header) > 0 {
		s += " | headers: " + headerToString(response.Header)
	}

	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

// headerToString returns the headers sorted by key,
// with the Authorization header value masked.
func headerToString(header http.Header) (s string) {
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := make([]string, len(keys))
	for i, key := range keys {
		value := strings.Join(header[key], ",")
		if http.CanonicalHeaderKey(key) == "Authorization" {
			value = maskAuthorization(value)
		}
		headers[i] = key + ": " + value
	}
	return strings.Join(headers, "; ")
}

func maskAuthorization(value string) string {
	scheme, _, found := strings.Cut(value, " ")
	if !found {
		return "[redacted]"
	}
	return scheme + " [redacted]"
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	_ = body.Close()
	newBody = io.NopCloser(bytes.NewReader(b))
	if err != nil {
		return newBody, fmt.Sprintf("error reading body: %s", err)
	}
	return newBody, toSingleLine(string(b))
}
