// Package lanscan: the discovery orchestrator. Selects and sequences
// probing strategies based on privilege and tool availability, feeds each
// probe's output to the matching parser and folds the results into the
// aggregate device set.
package lanscan

import (
	"context"
	"strings"
)

// Options configures a single discovery run.
type Options struct {
	// Privileged indicates the caller holds elevated scan privileges.
	Privileged bool
	// FullScanTool indicates the external full-scan tool is installed.
	FullScanTool bool
	// Deep enables the hostname and open-port enrichment pass.
	Deep bool
	// Interface is handed to the full-scan tool when it runs.
	Interface string
	// LivenessPorts are probed during the unprivileged port
	// reachability stage. Defaults to DefaultLivenessPorts.
	LivenessPorts []int
	// Vendors resolves manufacturers. Nil uses the static prefix table.
	Vendors *VendorResolver
	// Prober supplies the external probing collaborators. Required.
	Prober Prober
}

// Scan runs device discovery over the given subnet and returns the
// ordered device set. The subnet is a dotted string whose prefix up to
// the last '.' names the network; an empty or prefix-less subnet skips
// sweeping and reads the address cache directly.
//
// Scan never fails: under total environmental failure it degrades to an
// empty result, which the caller reports as "no devices found".
func Scan(ctx context.Context, subnet string, opts Options) []Device {
	if opts.Prober == nil {
		return nil
	}
	if len(opts.LivenessPorts) == 0 {
		opts.LivenessPorts = DefaultLivenessPorts
	}

	inv := NewInventory(opts.Vendors)
	prefix := subnetPrefix(subnet)

	switch {
	case opts.Privileged && opts.FullScanTool:
		runFullScanStage(ctx, opts, inv)
		if inv.Len() > 0 {
			break
		}
		// Tool produced nothing; fall back to the sweep.
		runSweepStage(ctx, opts.Prober, prefix, inv)
	case opts.Privileged:
		runSweepStage(ctx, opts.Prober, prefix, inv)
	default:
		runMultiMethod(ctx, opts, prefix, inv)
	}

	devices := inv.Devices()
	if opts.Deep {
		enrichDevices(ctx, opts.Prober, devices)
	}

	out := make([]Device, len(devices))
	for i, d := range devices {
		out[i] = *d
	}
	debugLog(StageSweep, "scan complete: %d device(s)", len(out))
	return out
}

func runFullScanStage(ctx context.Context, opts Options, inv *Inventory) {
	debugLog(StageFullScan, "running full scan on %q", opts.Interface)
	text := opts.Prober.RunFullScan(ctx, opts.Interface)
	cands := ParseScanRecords(text)
	debugLog(StageFullScan, "full scan yielded %d candidate(s)", len(cands))
	inv.AddAll(cands)
}

func runSweepStage(ctx context.Context, p Prober, prefix string, inv *Inventory) {
	var text string
	if prefix == "" {
		debugLog(StageSweep, "subnet unknown, reading address cache directly")
		text = p.ReadAddressCache(ctx)
	} else {
		debugLog(StageSweep, "sweeping %s1-254", prefix)
		text = p.SweepAndReadCache(ctx, prefix)
	}
	cands := ParseAddressCache(text)
	debugLog(StageSweep, "cache yielded %d candidate(s)", len(cands))
	inv.AddAll(cands)
}

// runMultiMethod runs the unprivileged strategy: a fixed ordered sequence
// of stages, each stage's output merged before the next starts.
func runMultiMethod(ctx context.Context, opts Options, prefix string, inv *Inventory) {
	p := opts.Prober

	runSweepStage(ctx, p, prefix, inv)

	text := p.NameServiceBrowse(ctx)
	for _, c := range ParseNameServiceBrowse(text) {
		if c.MAC == "" {
			c.MAC = lookupCachedMAC(ctx, p, c.IP)
		}
		inv.Add(c)
	}
	debugLog(StageMDNS, "name-service stage merged, %d device(s) so far", inv.Len())

	text = p.ServiceLocationQuery(ctx)
	for _, c := range ParseServiceLocations(text) {
		c.MAC = lookupCachedMAC(ctx, p, c.IP)
		inv.Add(c)
	}
	inv.AddAll(ParseAddressCache(text))
	debugLog(StageSSDP, "service-location stage merged, %d device(s) so far", inv.Len())

	text = p.NameQuery(ctx, prefix)
	for _, c := range ParseNameQuery(text) {
		c.MAC = lookupCachedMAC(ctx, p, c.IP)
		inv.Add(c)
	}
	inv.AddAll(ParseAddressCache(text))
	debugLog(StageNBNS, "name-query stage merged, %d device(s) so far", inv.Len())

	text = p.PortReachabilityProbe(ctx, prefix, opts.LivenessPorts)
	for _, c := range ParsePortLiveness(text) {
		c.MAC = lookupCachedMAC(ctx, p, c.IP)
		inv.Add(c)
	}
	inv.AddAll(ParseAddressCache(text))
	debugLog(StagePorts, "port stage merged, %d device(s) so far", inv.Len())
}

// lookupCachedMAC issues a targeted address-cache read for one IP and
// returns its canonical hardware address, or "" when the cache has no
// usable entry. Legitimate failure; the caller keeps the sentinel.
func lookupCachedMAC(ctx context.Context, p Prober, ip string) string {
	text := p.ReadAddressCache(ctx)
	needle := "(" + ip + ")"
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, needle)
		if idx < 0 {
			continue
		}
		// A stale or incomplete entry may precede a usable one for
		// the same IP; keep looking.
		mac, ok := cacheLineMAC(line[idx+len(needle):])
		if !ok {
			continue
		}
		if isBroadcastMAC(mac) || isMulticastMAC(mac) {
			continue
		}
		return mac
	}
	return ""
}
