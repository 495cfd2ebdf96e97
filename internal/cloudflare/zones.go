package cloudflare

import (
	"context"
	"net/http"
	"net/url"

	"github.com/qdm12/cloudflare-ddns/internal/models"
)

// GetZone returns the zone with the given identifier.
// See https://developers.cloudflare.com/api/operations/zones-0-get
func (c *Client) GetZone(ctx context.Context, zoneID string) (zone models.Zone, err error) {
	path := "/zones/" + url.PathEscape(zoneID)
	response, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return zone, err
	}
	return decodeResult[models.Zone](response)
}
