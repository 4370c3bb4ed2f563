// Package sysprobe: mDNS name-service browse.
package sysprobe

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/grandcat/zeroconf"
)

// mdnsServiceTypes are the service types browsed during the name-service
// stage. The mix targets the device classes that actually announce
// themselves on home and office networks.
var mdnsServiceTypes = []string{
	"_workstation._tcp",
	"_http._tcp",
	"_smb._tcp",
	"_ipp._tcp",
	"_printer._tcp",
	"_googlecast._tcp",
	"_airplay._tcp",
	"_spotify-connect._tcp",
	"_hap._tcp",
}

// NameServiceBrowse browses common mDNS service types and renders each
// discovered instance as an "instance (ip)" line, followed by an
// address-cache dump trailer. Empty text when the resolver cannot start.
func (p *Prober) NameServiceBrowse(ctx context.Context) string {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return ""
	}

	cctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	var (
		mu sync.Mutex
		b  strings.Builder
		wg sync.WaitGroup
	)
	for _, service := range mdnsServiceTypes {
		wg.Add(1)
		go func(srv string) {
			defer wg.Done()
			entries := make(chan *zeroconf.ServiceEntry)
			drained := make(chan struct{})
			go func() {
				defer close(drained)
				drainServiceEntries(cctx, entries, &mu, &b)
			}()
			// Browse failures are per-service and non-fatal; the
			// context guard in the drain keeps a failed browse from
			// stranding it on a never-closed channel.
			_ = resolver.Browse(cctx, srv, "local.", entries)
			<-drained
		}(service)
	}
	wg.Wait()

	mu.Lock()
	out := b.String()
	mu.Unlock()
	return out + p.ReadAddressCache(ctx)
}

// drainServiceEntries renders discovered instances until the entries
// channel closes or the context ends, whichever comes first.
func drainServiceEntries(ctx context.Context, entries <-chan *zeroconf.ServiceEntry, mu *sync.Mutex, b *strings.Builder) {
	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return
			}
			if entry == nil || len(entry.AddrIPv4) == 0 {
				continue
			}
			mu.Lock()
			fmt.Fprintf(b, "%s (%s)\n", entry.Instance, entry.AddrIPv4[0])
			mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}
