// Package sysprobe: liveness sweep ahead of an address-cache read.
package sysprobe

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/j-keck/arping"
)

const sweepProbeTimeout = 500 * time.Millisecond

// SweepAndReadCache fires liveness probes at every host suffix of the
// prefix, waits until the pool drains or the settle interval elapses,
// then dumps the address cache. Individual probe results are discarded;
// the probes exist only to populate the cache. The stage blocks for a
// bounded time regardless of how many hosts answer.
//
// Privileged processes probe with raw ARP requests. Without raw-socket
// privileges those fail with EPERM, so the unprivileged path sends a
// UDP datagram per host instead; any on-link packet forces the kernel
// to resolve the neighbor, which is all the cache needs.
func (p *Prober) SweepAndReadCache(ctx context.Context, prefix string) string {
	if prefix != "" {
		p.sweep(ctx, prefix)
	}
	return p.ReadAddressCache(ctx)
}

func (p *Prober) sweep(ctx context.Context, prefix string) {
	hosts := hostsForPrefix(prefix)

	probe := p.dialProbe
	if p.HasPrivilege() {
		arping.SetTimeout(sweepProbeTimeout)
		probe = arpProbe
	}

	jobs := make(chan string, len(hosts))
	var wg sync.WaitGroup

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for host := range jobs {
				if ctx.Err() != nil {
					continue
				}
				probe(ctx, host)
			}
		}()
	}
	for _, h := range hosts {
		jobs <- h
	}
	close(jobs)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	settle := p.Settle
	if settle <= 0 {
		settle = defaultSettle
	}
	select {
	case <-done:
	case <-time.After(settle):
	case <-ctx.Done():
	}
}

// arpProbe sends one raw ARP request. Result and error both irrelevant;
// a reply seeds the OS cache either way.
func arpProbe(_ context.Context, host string) {
	ip := net.ParseIP(host)
	if ip == nil {
		return
	}
	_, _, _ = arping.Ping(ip)
}

// dialProbe sends one UDP datagram to the discard port. The send needs
// no privileges and no listener on the far side; it exists only to
// trigger neighbor resolution for the host.
func (p *Prober) dialProbe(ctx context.Context, host string) {
	d := net.Dialer{Timeout: sweepProbeTimeout}
	conn, err := d.DialContext(ctx, "udp4", net.JoinHostPort(host, "9"))
	if err != nil {
		return
	}
	_, _ = conn.Write([]byte{0})
	conn.Close()
}
