package config

import (
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	APIToken      *string   `json:"apiToken"`
	IPv4          *bool     `json:"ipv4"`
	IPv6          *bool     `json:"ipv6"`
	Resolvers     Resolvers `json:"resolvers"`
	Records       []Record  `json:"records"`
	Notifications []string  `json:"notifications"`
	Client        Client    `json:"-"`
}

func (c *Config) SetDefaults() {
	c.APIToken = gosettings.DefaultPointer(c.APIToken, "")
	c.IPv4 = gosettings.DefaultPointer(c.IPv4, true)
	c.IPv6 = gosettings.DefaultPointer(c.IPv6, true)
	c.Resolvers.setDefaults()
	c.Records = gosettings.DefaultSlice(c.Records, []Record{})
	c.Notifications = gosettings.DefaultSlice(c.Notifications, []string{})
	c.Client.setDefaults()
}

// Validate returns a *ValidationError if any field is not valid.
func (c Config) Validate() (err error) {
	if *c.APIToken == "" {
		return &ValidationError{Field: "apiToken", Err: ErrValueEmpty}
	}

	if !*c.IPv4 && !*c.IPv6 {
		return &ValidationError{Field: "ipv4", Err: ErrNoIPVersionEnabled}
	}

	validationErr := c.Resolvers.validate()
	if validationErr != nil {
		return validationErr
	}

	for i, record := range c.Records {
		validationErr = record.validate(i)
		if validationErr != nil {
			return validationErr
		}
	}

	err = validateNotifications(c.Notifications)
	if err != nil {
		return &ValidationError{Field: "notifications", Err: err}
	}

	err = c.Client.validate()
	if err != nil {
		return &ValidationError{Field: "HTTP_TIMEOUT", Err: err}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.Appendf("API token: %s", maskToken(*c.APIToken))
	node.Appendf("IPv4: %s", gosettings.BoolToYesNo(c.IPv4))
	node.Appendf("IPv6: %s", gosettings.BoolToYesNo(c.IPv6))
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Resolvers.toLinesNode())

	recordsNode := node.Appendf("Records")
	if len(c.Records) == 0 {
		recordsNode.Appendf("none")
	}
	for _, record := range c.Records {
		recordsNode.AppendNode(record.toLinesNode())
	}

	if notificationsNode := notificationsToLinesNode(c.Notifications); notificationsNode != nil {
		node.AppendNode(notificationsNode)
	}
	return node
}

// Read reads the settings from the environment, overriding
// or extending the settings read from the configuration file.
func (c *Config) Read(r Reader) (err error) {
	apiToken := r.Get("CLOUDFLARE_API_TOKEN", reader.ForceLowercase(false))
	if apiToken != nil {
		c.APIToken = apiToken
	}

	err = c.Client.read(r)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Resolvers.read(r)
	if err != nil {
		return fmt.Errorf("reading resolvers settings: %w", err)
	}

	c.Notifications = append(c.Notifications,
		r.CSV("SHOUTRRR_ADDRESSES", reader.ForceLowercase(false))...)

	return nil
}

func maskToken(token string) string {
	const minLength = 8
	switch {
	case token == "":
		return "[not set]"
	case len(token) < minLength:
		return "[set]"
	}
	return token[:2] + "..." + token[len(token)-2:]
}
