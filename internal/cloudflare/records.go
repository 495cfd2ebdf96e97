package cloudflare

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/qdm12/cloudflare-ddns/internal/models"
)

func recordsPath(zoneID string) string {
	return "/zones/" + url.PathEscape(zoneID) + "/dns_records"
}

// ListRecords lists the DNS records of a zone. The record type and name
// filters are ignored if left empty.
// See https://developers.cloudflare.com/api/operations/dns-records-for-a-zone-list-dns-records
func (c *Client) ListRecords(ctx context.Context, zoneID, recordType, name string,
	page, perPage int) (records []models.DNSRecord, pager *models.Pager, err error) {
	values := url.Values{}
	if recordType != "" {
		values.Set("type", recordType)
	}
	if name != "" {
		values.Set("name", name)
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(perPage))
	path := recordsPath(zoneID) + "?" + values.Encode()

	response, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, nil, err
	}

	records, err = decodeResult[[]models.DNSRecord](response)
	if err != nil {
		return nil, nil, err
	}
	if records == nil {
		records = []models.DNSRecord{}
	}
	return records, response.ResultInfo, nil
}

// CreateRecord creates a DNS record in a zone.
// See https://developers.cloudflare.com/api/operations/dns-records-for-a-zone-create-dns-record
func (c *Client) CreateRecord(ctx context.Context, zoneID string,
	params models.RecordParams) (record models.DNSRecord, err error) {
	response, err := c.do(ctx, http.MethodPost, recordsPath(zoneID), params, false)
	if err != nil {
		return record, err
	}
	return decodeResult[models.DNSRecord](response)
}

// UpdateRecord overwrites the DNS record identified by recordID.
// See https://developers.cloudflare.com/api/operations/dns-records-for-a-zone-update-dns-record
func (c *Client) UpdateRecord(ctx context.Context, zoneID, recordID string,
	params models.RecordParams) (record models.DNSRecord, err error) {
	path := recordsPath(zoneID) + "/" + url.PathEscape(recordID)
	response, err := c.do(ctx, http.MethodPut, path, params, false)
	if err != nil {
		return record, err
	}
	return decodeResult[models.DNSRecord](response)
}
