package config

import (
	"fmt"
	"net/url"

	"github.com/containrrr/shoutrrr"
	"github.com/qdm12/gotree"
)

func validateNotifications(addresses []string) (err error) {
	_, err = shoutrrr.CreateSender(addresses...)
	if err != nil {
		return fmt.Errorf("shoutrrr addresses: %w", err)
	}
	return nil
}

func notificationsToLinesNode(addresses []string) *gotree.Node {
	if len(addresses) == 0 {
		return nil // no address means notifications are disabled
	}

	node := gotree.New("Notifications")
	for _, address := range addresses {
		node.Appendf("%s", redactAddress(address))
	}
	return node
}

// redactAddress masks the user information of the address,
// which usually holds credentials.
func redactAddress(address string) string {
	u, err := url.Parse(address)
	if err != nil || u.User == nil {
		return address
	}
	u.User = url.User("redacted")
	return u.String()
}
