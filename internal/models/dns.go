package models

import "time"

// DNSRecord is a DNS record as returned by the Cloudflare API.
type DNSRecord struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Name       string     `json:"name"`
	Content    string     `json:"content"`
	Proxiable  *bool      `json:"proxiable,omitempty"`
	Proxied    *bool      `json:"proxied,omitempty"`
	TTL        *uint32    `json:"ttl,omitempty"`
	Locked     bool       `json:"locked"`
	ZoneID     string     `json:"zone_id"`
	ZoneName   string     `json:"zone_name"`
	CreatedOn  *time.Time `json:"created_on,omitempty"`
	ModifiedOn *time.Time `json:"modified_on,omitempty"`
}

type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Pager is the pagination information of a list response.
type Pager struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// RecordParams are the fields sent to create or update a DNS record.
// Nil pointer fields are left out of the request body.
type RecordParams struct {
	Type    string  `json:"type"`
	Name    string  `json:"name"`
	Content string  `json:"content"`
	TTL     *uint32 `json:"ttl,omitempty"`
	Proxied *bool   `json:"proxied,omitempty"`
}
