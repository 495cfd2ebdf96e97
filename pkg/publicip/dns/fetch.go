package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/miekg/dns"
)

var (
	ErrNoNameserver       = errors.New("no nameserver to query")
	ErrAnswerNotReceived  = errors.New("answer not received")
	ErrAnswerTypeMismatch = errors.New("answer type is not expected")
	ErrRecordEmpty        = errors.New("record is empty")
	ErrIPMalformed        = errors.New("IP address malformed")
)

func (f *Fetcher) fetch(ctx context.Context, nameservers []netip.Addr) (
	publicIP netip.Addr, err error) {
	message := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode: dns.OpcodeQuery,
		},
		Question: []dns.Question{
			{
				Name:   f.data.fqdn,
				Qtype:  uint16(f.data.qType),
				Qclass: uint16(f.data.class),
			},
		},
	}

	response, err := f.exchange(ctx, message, nameservers)
	if err != nil {
		return netip.Addr{}, err
	}

	publicIP, err = parseTXTAnswer(response.Answer)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("handling TXT answer: %w", err)
	}
	return publicIP, nil
}

// exchange tries each nameserver in order and returns the first
// response received without a transport error.
func (f *Fetcher) exchange(ctx context.Context, message *dns.Msg,
	nameservers []netip.Addr) (response *dns.Msg, err error) {
	if len(nameservers) == 0 {
		return nil, ErrNoNameserver
	}

	for _, nameserver := range nameservers {
		address := net.JoinHostPort(nameserver.String(), "53")
		response, err = f.exchangeWithTimeout(ctx, message, address)
		if err == nil {
			return response, nil
		}
		f.logger.Debugf("exchanging with %s: %s", address, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("all %d nameservers failed, last error: %w",
		len(nameservers), err)
}

func (f *Fetcher) exchangeWithTimeout(ctx context.Context, message *dns.Msg,
	address string) (response *dns.Msg, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	response, _, err = f.client.ExchangeContext(ctx, message, address)
	return response, err
}

func parseTXTAnswer(answer []dns.RR) (publicIP netip.Addr, err error) {
	if len(answer) == 0 {
		return netip.Addr{}, ErrAnswerNotReceived
	}

	txt, ok := answer[0].(*dns.TXT)
	if !ok {
		return netip.Addr{}, fmt.Errorf("%w: %T instead of %T",
			ErrAnswerTypeMismatch, answer[0], txt)
	}

	if len(txt.Txt) == 0 {
		return netip.Addr{}, ErrRecordEmpty
	}

	publicIP, err = netip.ParseAddr(txt.Txt[0])
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrIPMalformed, err)
	}
	return publicIP, nil
}
