package config

import (
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

// Client contains the settings of the HTTP client
// used for the Cloudflare API and HTTP IP echo endpoints.
type Client struct {
	Timeout time.Duration
}

func (c *Client) setDefaults() {
	const defaultTimeout = 10 * time.Second
	c.Timeout = gosettings.DefaultComparable(c.Timeout, defaultTimeout)
}

func (c Client) validate() (err error) {
	return validateTimeout(c.Timeout)
}

func (c Client) toLinesNode() *gotree.Node {
	node := gotree.New("HTTP client")
	node.Appendf("Timeout: %s", c.Timeout)
	return node
}

func (c *Client) read(r Reader) (err error) {
	c.Timeout, err = r.Duration("HTTP_TIMEOUT")
	return err
}

func validateTimeout(timeout time.Duration) (err error) {
	const minTimeout = 10 * time.Millisecond
	if timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, timeout, minTimeout)
	}
	return nil
}
