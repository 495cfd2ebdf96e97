package update

import (
	"errors"
	"fmt"
	"net/netip"
)

const (
	recordTypeA     = "A"
	recordTypeAAAA  = "AAAA"
	recordTypeTXT   = "TXT"
	recordTypeCNAME = "CNAME"
)

var ErrIPVersionUnknown = errors.New("IP address version is unknown")

func recordTypeOf(ip netip.Addr) (recordType string, err error) {
	switch {
	case ip.Is4():
		return recordTypeA, nil
	case ip.Is6():
		return recordTypeAAAA, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrIPVersionUnknown, ip)
	}
}
