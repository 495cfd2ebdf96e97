package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
)

var (
	ErrBadHTTPStatus = errors.New("bad HTTP status received")
	ErrIPMalformed   = errors.New("IP address malformed")
)

func fetch(ctx context.Context, client *http.Client, url string) (
	publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return netip.Addr{}, err
	}

	response, err := client.Do(request)
	if err != nil {
		return netip.Addr{}, err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return netip.Addr{}, fmt.Errorf("%w: %d %s",
			ErrBadHTTPStatus, response.StatusCode, http.StatusText(response.StatusCode))
	}

	const maxBodySize = 1024
	b, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("reading response body: %w", err)
	}

	err = response.Body.Close()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("closing response body: %w", err)
	}

	s := strings.TrimSpace(string(b))
	publicIP, err = netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrIPMalformed, err)
	}

	return publicIP, nil
}
