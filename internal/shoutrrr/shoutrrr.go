package shoutrrr

import (
	"fmt"
	"net/url"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

// Client sends notifications to every shoutrrr service configured.
// With no service configured, Notify does nothing.
type Client struct {
	serviceRouter *router.ServiceRouter
	// schemes holds the service scheme of each address,
	// in the same order as the router services.
	schemes []string
	logger  Erroer
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	addresses := make([]string, len(settings.Addresses))
	schemes := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		addresses[i] = addDefaultTitle(address, settings.DefaultTitle)
		schemes[i] = mustParse(address).Scheme
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	return &Client{
		serviceRouter: serviceRouter,
		schemes:       schemes,
		logger:        settings.Logger,
	}, nil
}

// Notify sends the message to all services, logging
// each failed delivery.
func (c *Client) Notify(message string) {
	if len(c.schemes) == 0 {
		return
	}
	for i, err := range c.serviceRouter.Send(message, nil) {
		if err != nil {
			c.logger.Error(fmt.Sprintf("sending notification with %s: %s", c.schemes[i], err))
		}
	}
}

func addDefaultTitle(address, defaultTitle string) (updatedAddress string) {
	u := mustParse(address)
	query := u.Query()
	if query.Has("title") {
		return address
	}
	query.Set("title", defaultTitle)
	u.RawQuery = query.Encode()
	return u.String()
}

// mustParse parses an address already validated by shoutrrr.
func mustParse(address string) *url.URL {
	u, err := url.Parse(address)
	if err != nil {
		panic(fmt.Sprintf("parsing address as url: %s", err))
	}
	return u
}
