// Package sysprobe: TCP reachability probes.
package sysprobe

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"
	"sync"
	"time"
)

const dialTimeout = 400 * time.Millisecond

// PortReachabilityProbe dials every host in the prefix on each of the
// given ports and returns one "ip:port" line per successful connect,
// followed by an address-cache dump trailer. The dials also seed the OS
// address cache, which is why the trailer is worth reading.
func (p *Prober) PortReachabilityProbe(ctx context.Context, prefix string, ports []int) string {
	var b strings.Builder
	if prefix != "" && len(ports) > 0 {
		for _, line := range p.portSweep(ctx, prefix, ports) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	b.WriteString(p.ReadAddressCache(ctx))
	return b.String()
}

func (p *Prober) portSweep(ctx context.Context, prefix string, ports []int) []string {
	type target struct {
		ip   string
		port int
	}
	hosts := hostsForPrefix(prefix)
	targets := make([]target, 0, len(hosts)*len(ports))
	for _, h := range hosts {
		for _, port := range ports {
			targets = append(targets, target{ip: h, port: port})
		}
	}

	var (
		mu    sync.Mutex
		lines []string
		wg    sync.WaitGroup
	)
	jobs := make(chan target, len(targets))

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				if ctx.Err() != nil {
					continue
				}
				if p.TCPConnect(ctx, t.ip, t.port) {
					mu.Lock()
					lines = append(lines, fmt.Sprintf("%s:%d", t.ip, t.port))
					mu.Unlock()
				}
			}
		}()
	}
	for _, t := range targets {
		jobs <- t
	}
	close(jobs)
	wg.Wait()

	sort.Strings(lines)
	return lines
}

// TCPConnect reports whether ip:port accepts a TCP connection within the
// dial timeout.
func (p *Prober) TCPConnect(ctx context.Context, ip string, port int) bool {
	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, "tcp", fmt.Sprintf("%s:%d", ip, port))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
