package netutil

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
	"github.com/virtbuild/guestprep/internal/log"
)

const (
	defaultDNSPort = "53"

	// Shorter than the usual context timeout to avoid races.
	dnsClientTimeout = 3 * time.Second
)

// Resolver resolves guest hostnames against a specific DNS server,
// typically the dnsmasq instance of the virtualization host, which knows
// the names of freshly booted guests before the system resolver does.
type Resolver struct {
	server string
	client *dns.Client
}

// NewResolver creates a resolver querying the given server. The port
// defaults to 53 when omitted.
func NewResolver(server string) (*Resolver, error) {
	host := server
	if _, _, err := net.SplitHostPort(host); err != nil {
		host = net.JoinHostPort(host, defaultDNSPort)
	}

	if _, _, err := net.SplitHostPort(host); err != nil {
		return nil, fmt.Errorf("invalid DNS server address: %w", err)
	}

	return &Resolver{
		server: host,
		client: &dns.Client{
			Net:     "udp",
			Timeout: dnsClientTimeout,
		},
	}, nil
}

// GuestAddr resolves the IPv4 address of a guest hostname.
func (r *Resolver) GuestAddr(ctx context.Context, hostname string) (net.IP, error) {
	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(hostname), dns.TypeA)

	log.Debugf("[%04x] Resolving %s via %s", req.Id, hostname, r.server)

	resp, _, err := r.client.ExchangeContext(ctx, req, r.server)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.server, err)
	}

	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("DNS query for %s failed: %s", hostname, dns.RcodeToString[resp.Rcode])
	}

	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			return a.A, nil
		}
	}

	return nil, fmt.Errorf("no A record for %s", hostname)
}
