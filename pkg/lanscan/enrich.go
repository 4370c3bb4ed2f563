// Package lanscan: the optional deep-scan enrichment pass. Attaches a
// reverse-DNS hostname and an open-port summary to every device in the
// frozen aggregate set. This is O(devices x ports) external calls and
// dominates total scan latency.
package lanscan

import (
	"context"
	"strings"
	"sync"
)

// deepScanPorts is the fixed, ordered port probe list. OpenPorts
// preserves this order.
var deepScanPorts = []struct {
	Port  int
	Label string
}{
	{22, "SSH"},
	{80, "HTTP"},
	{443, "HTTPS"},
	{445, "SMB"},
	{548, "AFP"},
	{3389, "RDP"},
	{5000, "UPnP"},
	{8080, "HTTP-Alt"},
	{9100, "Print"},
	{62078, "iPhone"},
}

const enrichWorkers = 8

// enrichDevices runs the deep-scan pass. Devices are enriched
// concurrently; this is safe because the aggregate set is frozen and no
// further IP-level merging occurs past this point.
func enrichDevices(ctx context.Context, p Prober, devices []*Device) {
	if len(devices) == 0 {
		return
	}
	debugLog(StageDeep, "deep scanning %d device(s)", len(devices))

	jobs := make(chan int, len(devices))
	var wg sync.WaitGroup

	workers := enrichWorkers
	if workers > len(devices) {
		workers = len(devices)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				enrichOne(ctx, p, devices[idx])
			}
		}()
	}
	for i := range devices {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func enrichOne(ctx context.Context, p Prober, dev *Device) {
	if name := hostnameFor(ctx, p, dev.IP); name != "" {
		dev.Hostname = name
	}

	var open []string
	for _, ps := range deepScanPorts {
		if p.TCPConnect(ctx, dev.IP, ps.Port) {
			open = append(open, ps.Label)
		}
	}
	dev.OpenPorts = strings.Join(open, ", ")
	debugLogVerbose(StageDeep, "%s: hostname=%s ports=%q", dev.IP, dev.Hostname, dev.OpenPorts)
}

// hostnameFor resolves the reverse-DNS name of ip, trimming trailing
// whitespace and the root dot. Empty on failure.
func hostnameFor(ctx context.Context, p Prober, ip string) string {
	name := strings.TrimSpace(p.ResolveHostname(ctx, ip))
	return strings.TrimSuffix(name, ".")
}
