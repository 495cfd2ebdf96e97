package update

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/qdm12/cloudflare-ddns/internal/models"
)

const (
	// automaticTTL is the Cloudflare value for an automatic TTL.
	automaticTTL uint32 = 1
	listPerPage         = 100
)

// UpsertRecords creates or updates the A and AAAA records of the domain
// subdomain.zone so they point to the addresses given. Records not created
// by this program are left untouched.
func (u *Updater) UpsertRecords(ctx context.Context, zoneID, subdomain string,
	proxied bool, ips []netip.Addr) (err error) {
	recordTypes := make([]string, len(ips))
	for i, ip := range ips {
		recordTypes[i], err = recordTypeOf(ip)
		if err != nil {
			return err
		}
	}

	zone, err := u.store.GetZone(ctx, zoneID)
	if err != nil {
		return fmt.Errorf("getting zone %s: %w", zoneID, err)
	}
	fullName := subdomain + "." + zone.Name

	records, _, err := u.store.ListRecords(ctx, zoneID, "", fullName, 1, listPerPage)
	if err != nil {
		return fmt.Errorf("listing records for %s: %w", fullName, err)
	}

	var txts []models.DNSRecord
	hasCNAME := false
	for _, record := range records {
		if !strings.EqualFold(record.Name, fullName) {
			continue
		}
		switch record.Type {
		case recordTypeTXT:
			txts = append(txts, record)
		case recordTypeCNAME:
			hasCNAME = true
		}
	}

	if hasCNAME && len(ips) > 0 {
		u.logger.Error("a CNAME record already exists for " + fullName +
			", please remove it if you intend to have it managed by cloudflare-ddns")
		return nil
	}

	var errs []error
	for i, ip := range ips {
		recordType := recordTypes[i]
		current, found := findRecord(records, recordType, fullName)
		switch {
		case !found:
			err = u.create(ctx, zoneID, fullName, recordType, proxied, ip)
		case !HasValidTXTRecord(current, txts):
			u.logger.Info("an " + recordType + " record for " + fullName +
				" already exists and is not managed by cloudflare-ddns")
		case current.Content == ip.String():
			u.logger.Info(recordType + " record for " + fullName + " is already up to date")
		default:
			err = u.update(ctx, zoneID, fullName, recordType, proxied, current, ip)
		}
		if err != nil {
			errs = append(errs, err)
			err = nil
		}
	}
	return errors.Join(errs...)
}

func findRecord(records []models.DNSRecord, recordType, name string) (
	record models.DNSRecord, found bool) {
	for _, record := range records {
		if record.Type == recordType && strings.EqualFold(record.Name, name) {
			return record, true
		}
	}
	return record, false
}

func (u *Updater) create(ctx context.Context, zoneID, fullName, recordType string,
	proxied bool, ip netip.Addr) (err error) {
	u.logger.Debug("creating " + recordType + " record for " + fullName +
		" with address " + ip.String())
	ttl := automaticTTL
	record, err := u.store.CreateRecord(ctx, zoneID, models.RecordParams{
		Type:    recordType,
		Name:    fullName,
		Content: ip.String(),
		TTL:     &ttl,
		Proxied: &proxied,
	})
	if err != nil {
		return fmt.Errorf("creating %s record for %s: %w", recordType, fullName, err)
	}

	_, err = u.store.CreateRecord(ctx, zoneID, models.RecordParams{
		Type:    recordTypeTXT,
		Name:    fullName,
		Content: OwnershipCheck(record.ID),
		TTL:     &ttl,
	})
	if err != nil {
		return fmt.Errorf("creating ownership TXT record for %s record %s: %w",
			recordType, record.ID, err)
	}

	message := "created " + recordType + " record for " + fullName + " with address " + ip.String()
	u.logger.Info(message)
	u.notifier.Notify(message)
	return nil
}

func (u *Updater) update(ctx context.Context, zoneID, fullName, recordType string,
	proxied bool, current models.DNSRecord, ip netip.Addr) (err error) {
	ttl := automaticTTL
	_, err = u.store.UpdateRecord(ctx, zoneID, current.ID, models.RecordParams{
		Type:    recordType,
		Name:    fullName,
		Content: ip.String(),
		TTL:     &ttl,
		Proxied: &proxied,
	})
	if err != nil {
		return fmt.Errorf("updating %s record for %s: %w", recordType, fullName, err)
	}

	message := "updated " + recordType + " record for " + fullName +
		" from " + current.Content + " to " + ip.String()
	u.logger.Info(message)
	u.notifier.Notify(message)
	return nil
}
