package cloudflare

import (
	"context"
	"fmt"

	cloudflarego "github.com/cloudflare/cloudflare-go"
)

// VerifyToken checks the API token is known to Cloudflare and active.
func (c *Client) VerifyToken(ctx context.Context) (err error) {
	api, err := cloudflarego.NewWithAPIToken(c.token,
		cloudflarego.HTTPClient(c.httpClient))
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	result, err := api.VerifyAPIToken(ctx)
	if err != nil {
		return fmt.Errorf("verifying API token: %w", err)
	}

	const activeStatus = "active"
	if result.Status != activeStatus {
		return fmt.Errorf("%w: status is %q", ErrTokenNotActive, result.Status)
	}
	return nil
}
