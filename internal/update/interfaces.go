package update

import (
	"context"

	"github.com/qdm12/cloudflare-ddns/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Store,Logger,Notifier

// Store is the DNS records provider API.
type Store interface {
	GetZone(ctx context.Context, zoneID string) (zone models.Zone, err error)
	ListRecords(ctx context.Context, zoneID, recordType, name string,
		page, perPage int) (records []models.DNSRecord, pager *models.Pager, err error)
	CreateRecord(ctx context.Context, zoneID string,
		params models.RecordParams) (record models.DNSRecord, err error)
	UpdateRecord(ctx context.Context, zoneID, recordID string,
		params models.RecordParams) (record models.DNSRecord, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Error(s string)
}

type Notifier interface {
	Notify(message string)
}
