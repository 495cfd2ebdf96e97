package update

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/qdm12/cloudflare-ddns/internal/models"
)

const ownershipTemplate = "managed-by: cloudflare-ddns, check: %s"

// OwnershipCheck returns the content of the TXT record marking
// the record with the given identifier as created by this program.
func OwnershipCheck(recordID string) string {
	check := base64.StdEncoding.EncodeToString([]byte(recordID))
	return fmt.Sprintf(ownershipTemplate, check)
}

// HasValidTXTRecord returns true if one of the TXT records
// contains the ownership check of the record given.
func HasValidTXTRecord(record models.DNSRecord, txts []models.DNSRecord) bool {
	check := OwnershipCheck(record.ID)
	for _, txt := range txts {
		// TXT content may be returned wrapped in double quotes.
		content := strings.TrimSuffix(strings.TrimPrefix(txt.Content, `"`), `"`)
		if content == check {
			return true
		}
	}
	return false
}
