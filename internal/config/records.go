package config

import (
	"fmt"

	"github.com/qdm12/gotree"
)

// Record is a DNS record to keep up to date,
// with the name <subdomain>.<zone name>.
type Record struct {
	ZoneID    string `json:"zoneId"`
	Subdomain string `json:"subdomain"`
	Proxied   bool   `json:"proxied"`
}

func (r Record) validate(index int) *ValidationError {
	switch {
	case r.ZoneID == "":
		return &ValidationError{Field: fmt.Sprintf("records[%d].zoneId", index), Err: ErrValueEmpty}
	case r.Subdomain == "":
		return &ValidationError{Field: fmt.Sprintf("records[%d].subdomain", index), Err: ErrValueEmpty}
	}
	return nil
}

func (r Record) toLinesNode() *gotree.Node {
	node := gotree.New("Subdomain %s", r.Subdomain)
	node.Appendf("Zone ID: %s", r.ZoneID)
	proxied := "no"
	if r.Proxied {
		proxied = "yes"
	}
	node.Appendf("Proxied: %s", proxied)
	return node
}
