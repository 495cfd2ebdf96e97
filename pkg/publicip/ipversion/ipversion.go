package ipversion

import "net/netip"

type IPVersion uint8

const (
	IP4 IPVersion = iota + 1
	IP6
)

func (v IPVersion) String() string {
	switch v {
	case IP4:
		return "ipv4"
	case IP6:
		return "ipv6"
	default:
		return "ip?"
	}
}

// Matches returns true if the address is of the IP version.
// Note IPv4-mapped IPv6 addresses match IP6 only.
func (v IPVersion) Matches(ip netip.Addr) bool {
	switch v {
	case IP4:
		return ip.Is4()
	case IP6:
		return ip.Is6()
	default:
		return false
	}
}
