package update

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/cloudflare-ddns/internal/cloudflare"
	"github.com/qdm12/cloudflare-ddns/internal/models"
	"github.com/qdm12/cloudflare-ddns/internal/update/mock_update"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func Test_Updater_UpsertRecords(t *testing.T) {
	t.Parallel()

	const (
		zoneID    = "123"
		fullName  = "domain.example.com"
		aID       = "989c23e6-5481-4858-bed1-584bb922579a"
		aaaaID    = "8257dd15-2039-4434-887a-aff5d93af2a1"
		aCheck    = "managed-by: cloudflare-ddns, check: OTg5YzIzZTYtNTQ4MS00ODU4LWJlZDEtNTg0YmI5MjI1Nzlh"
		aaaaCheck = "managed-by: cloudflare-ddns, check: ODI1N2RkMTUtMjAzOS00NDM0LTg4N2EtYWZmNWQ5M2FmMmEx"
	)
	ipv4 := netip.AddrFrom4([4]byte{10, 0, 0, 1})
	ipv6 := netip.MustParseAddr("2606:4700:4700::1111")
	zone := models.Zone{ID: zoneID, Name: "example.com"}
	ttl := ptrTo(uint32(1))
	errDummy := errors.New("dummy")

	type mocks struct {
		store    *mock_update.MockStore
		logger   *mock_update.MockLogger
		notifier *mock_update.MockNotifier
	}

	ctx := context.Background()

	expectZoneAndList := func(m mocks, records []models.DNSRecord) {
		gomock.InOrder(
			m.store.EXPECT().GetZone(ctx, zoneID).Return(zone, nil),
			m.store.EXPECT().ListRecords(ctx, zoneID, "", fullName, 1, 100).
				Return(records, &models.Pager{}, nil),
		)
	}

	testCases := map[string]struct {
		proxied    bool
		ips        []netip.Addr
		setup      func(m mocks)
		errWrapped error
		errMessage string
		check      func(t *testing.T, err error)
	}{
		"create A and AAAA records with ownership TXT records": {
			proxied: true,
			ips:     []netip.Addr{ipv4, ipv6},
			setup: func(m mocks) {
				expectZoneAndList(m, []models.DNSRecord{})
				gomock.InOrder(
					m.logger.EXPECT().Debug("creating A record for domain.example.com with address 10.0.0.1"),
					m.store.EXPECT().CreateRecord(ctx, zoneID, models.RecordParams{
						Type: "A", Name: fullName, Content: "10.0.0.1", TTL: ttl, Proxied: ptrTo(true),
					}).Return(models.DNSRecord{ID: aID}, nil),
					m.store.EXPECT().CreateRecord(ctx, zoneID, models.RecordParams{
						Type: "TXT", Name: fullName, Content: aCheck, TTL: ttl,
					}).Return(models.DNSRecord{ID: "txt-a"}, nil),
					m.logger.EXPECT().Info("created A record for domain.example.com with address 10.0.0.1"),
					m.notifier.EXPECT().Notify("created A record for domain.example.com with address 10.0.0.1"),
					m.logger.EXPECT().Debug("creating AAAA record for domain.example.com with address 2606:4700:4700::1111"),
					m.store.EXPECT().CreateRecord(ctx, zoneID, models.RecordParams{
						Type: "AAAA", Name: fullName, Content: "2606:4700:4700::1111", TTL: ttl, Proxied: ptrTo(true),
					}).Return(models.DNSRecord{ID: aaaaID}, nil),
					m.store.EXPECT().CreateRecord(ctx, zoneID, models.RecordParams{
						Type: "TXT", Name: fullName, Content: aaaaCheck, TTL: ttl,
					}).Return(models.DNSRecord{ID: "txt-aaaa"}, nil),
					m.logger.EXPECT().Info("created AAAA record for domain.example.com with address 2606:4700:4700::1111"),
					m.notifier.EXPECT().Notify("created AAAA record for domain.example.com with address 2606:4700:4700::1111"),
				)
			},
		},
		"update stale managed record": {
			ips: []netip.Addr{ipv4},
			setup: func(m mocks) {
				expectZoneAndList(m, []models.DNSRecord{
					{ID: aID, Type: "A", Name: fullName, Content: "10.0.0.2"},
					{ID: "txt", Type: "TXT", Name: fullName, Content: aCheck},
				})
				gomock.InOrder(
					m.store.EXPECT().UpdateRecord(ctx, zoneID, aID, models.RecordParams{
						Type: "A", Name: fullName, Content: "10.0.0.1", TTL: ttl, Proxied: ptrTo(false),
					}).Return(models.DNSRecord{ID: aID}, nil),
					m.logger.EXPECT().Info("updated A record for domain.example.com from 10.0.0.2 to 10.0.0.1"),
					m.notifier.EXPECT().Notify("updated A record for domain.example.com from 10.0.0.2 to 10.0.0.1"),
				)
			},
		},
		"managed record already up to date": {
			ips: []netip.Addr{ipv4},
			setup: func(m mocks) {
				expectZoneAndList(m, []models.DNSRecord{
					{ID: aID, Type: "A", Name: fullName, Content: "10.0.0.1"},
					{ID: "txt", Type: "TXT", Name: fullName, Content: aCheck},
				})
				m.logger.EXPECT().Info("A record for domain.example.com is already up to date")
			},
		},
		"record not managed": {
			ips: []netip.Addr{ipv4},
			setup: func(m mocks) {
				expectZoneAndList(m, []models.DNSRecord{
					{ID: aID, Type: "A", Name: fullName, Content: "10.0.0.2"},
					{ID: "txt", Type: "TXT", Name: fullName, Content: OwnershipCheck("other")},
				})
				m.logger.EXPECT().Info("an A record for domain.example.com already exists " +
					"and is not managed by cloudflare-ddns")
			},
		},
		"record name matched case insensitively": {
			ips: []netip.Addr{ipv4},
			setup: func(m mocks) {
				expectZoneAndList(m, []models.DNSRecord{
					{ID: aID, Type: "A", Name: "Domain.Example.com", Content: "10.0.0.1"},
					{ID: "txt", Type: "TXT", Name: "DOMAIN.example.com", Content: aCheck},
				})
				m.logger.EXPECT().Info("A record for domain.example.com is already up to date")
			},
		},
		"CNAME record aborts all families": {
			ips: []netip.Addr{ipv4, ipv6},
			setup: func(m mocks) {
				expectZoneAndList(m, []models.DNSRecord{
					{ID: "cname", Type: "CNAME", Name: fullName, Content: "other.example.com"},
				})
				m.logger.EXPECT().Error("a CNAME record already exists for domain.example.com, " +
					"please remove it if you intend to have it managed by cloudflare-ddns")
			},
		},
		"CNAME record without address": {
			setup: func(m mocks) {
				expectZoneAndList(m, []models.DNSRecord{
					{ID: "cname", Type: "CNAME", Name: fullName, Content: "other.example.com"},
				})
			},
		},
		"invalid address fails before any call": {
			ips:        []netip.Addr{ipv4, {}},
			setup:      func(m mocks) {},
			errWrapped: ErrIPVersionUnknown,
			errMessage: `IP address version is unknown: "invalid IP"`,
		},
		"zone error": {
			ips: []netip.Addr{ipv4},
			setup: func(m mocks) {
				m.store.EXPECT().GetZone(ctx, zoneID).Return(models.Zone{}, errDummy)
			},
			errWrapped: errDummy,
			errMessage: "getting zone 123: dummy",
		},
		"list error": {
			ips: []netip.Addr{ipv4},
			setup: func(m mocks) {
				m.store.EXPECT().GetZone(ctx, zoneID).Return(zone, nil)
				m.store.EXPECT().ListRecords(ctx, zoneID, "", fullName, 1, 100).
					Return(nil, nil, errDummy)
			},
			errWrapped: errDummy,
			errMessage: "listing records for domain.example.com: dummy",
		},
		"failed address does not stop the next one": {
			ips: []netip.Addr{ipv4, ipv6},
			setup: func(m mocks) {
				expectZoneAndList(m, []models.DNSRecord{
					{ID: aaaaID, Type: "AAAA", Name: fullName, Content: "2001:db8::1"},
					{ID: "txt", Type: "TXT", Name: fullName, Content: aaaaCheck},
				})
				apiErr := &cloudflare.APIError{Code: 81057, Message: "Record already exists.", StatusCode: 400}
				gomock.InOrder(
					m.logger.EXPECT().Debug("creating A record for domain.example.com with address 10.0.0.1"),
					m.store.EXPECT().CreateRecord(ctx, zoneID, gomock.Any()).
						Return(models.DNSRecord{}, apiErr),
					m.store.EXPECT().UpdateRecord(ctx, zoneID, aaaaID, gomock.Any()).
						Return(models.DNSRecord{}, nil),
					m.logger.EXPECT().Info("updated AAAA record for domain.example.com " +
						"from 2001:db8::1 to 2606:4700:4700::1111"),
					m.notifier.EXPECT().Notify(gomock.Any()),
				)
			},
			errMessage: "creating A record for domain.example.com: " +
				"cloudflare API error 81057: Record already exists. (HTTP status 400)",
			check: func(t *testing.T, err error) {
				var apiErr *cloudflare.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, 81057, apiErr.Code)
			},
		},
		"ownership TXT creation failure": {
			ips: []netip.Addr{ipv4},
			setup: func(m mocks) {
				expectZoneAndList(m, nil)
				gomock.InOrder(
					m.logger.EXPECT().Debug(gomock.Any()),
					m.store.EXPECT().CreateRecord(ctx, zoneID, gomock.Any()).
						Return(models.DNSRecord{ID: aID}, nil),
					m.store.EXPECT().CreateRecord(ctx, zoneID, gomock.Any()).
						Return(models.DNSRecord{}, errDummy),
				)
			},
			errWrapped: errDummy,
			errMessage: "creating ownership TXT record for A record " + aID + ": dummy",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			m := mocks{
				store:    mock_update.NewMockStore(ctrl),
				logger:   mock_update.NewMockLogger(ctrl),
				notifier: mock_update.NewMockNotifier(ctrl),
			}
			testCase.setup(m)

			updater := New(m.store, m.logger, m.notifier)

			err := updater.UpsertRecords(ctx, zoneID, "domain",
				testCase.proxied, testCase.ips)

			if testCase.errMessage != "" {
				require.Error(t, err)
				assert.EqualError(t, err, testCase.errMessage)
				if testCase.errWrapped != nil {
					assert.ErrorIs(t, err, testCase.errWrapped)
				}
			} else {
				assert.NoError(t, err)
			}
			if testCase.check != nil {
				testCase.check(t, err)
			}
		})
	}
}

func Test_Updater_UpsertRecords_idempotent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	ctx := context.Background()
	ipv4 := netip.AddrFrom4([4]byte{10, 0, 0, 1})
	zone := models.Zone{ID: "123", Name: "example.com"}

	// In memory store reflecting the records created.
	var records []models.DNSRecord
	store := mock_update.NewMockStore(ctrl)
	store.EXPECT().GetZone(ctx, "123").Return(zone, nil).Times(2)
	store.EXPECT().ListRecords(ctx, "123", "", "home.example.com", 1, 100).
		DoAndReturn(func(context.Context, string, string, string, int, int) (
			[]models.DNSRecord, *models.Pager, error) {
			return records, &models.Pager{}, nil
		}).Times(2)
	store.EXPECT().CreateRecord(ctx, "123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params models.RecordParams) (
			models.DNSRecord, error) {
			record := models.DNSRecord{
				ID:      params.Type + "-id",
				Type:    params.Type,
				Name:    params.Name,
				Content: params.Content,
			}
			records = append(records, record)
			return record, nil
		}).Times(2)

	logger := mock_update.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any())
	logger.EXPECT().Info("created A record for home.example.com with address 10.0.0.1")
	logger.EXPECT().Info("A record for home.example.com is already up to date")
	notifier := mock_update.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any())

	updater := New(store, logger, notifier)

	for i := 0; i < 2; i++ {
		err := updater.UpsertRecords(ctx, "123", "home", false, []netip.Addr{ipv4})
		require.NoError(t, err)
	}
}
