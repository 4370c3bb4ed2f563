// Package sysprobe: reverse-DNS hostname resolution.
package sysprobe

import (
	"context"
	"net"

	"github.com/miekg/dns"
)

// ResolveHostname performs a PTR query for ip against the system
// resolver with the probe timeout. Empty text on any failure. The root
// dot is left on the name; the caller trims it.
func (p *Prober) ResolveHostname(ctx context.Context, ip string) string {
	arpa, err := dns.ReverseAddr(ip)
	if err != nil {
		return ""
	}

	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(conf.Servers) == 0 {
		return p.resolveHostnameFallback(ctx, ip)
	}

	m := new(dns.Msg)
	m.SetQuestion(arpa, dns.TypePTR)

	c := &dns.Client{Timeout: p.Timeout}
	r, _, err := c.ExchangeContext(ctx, m, net.JoinHostPort(conf.Servers[0], conf.Port))
	if err != nil || r == nil {
		return ""
	}
	for _, ans := range r.Answer {
		if ptr, ok := ans.(*dns.PTR); ok {
			return ptr.Ptr
		}
	}
	return ""
}

// resolveHostnameFallback uses the stdlib resolver when no resolv.conf
// is readable (containers, unusual platforms).
func (p *Prober) resolveHostnameFallback(ctx context.Context, ip string) string {
	cctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()
	names, err := new(net.Resolver).LookupAddr(cctx, ip)
	if err != nil || len(names) == 0 {
		return ""
	}
	return names[0]
}
