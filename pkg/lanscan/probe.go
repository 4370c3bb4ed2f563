// Package lanscan: external probing collaborator contracts.
package lanscan

import "context"

// Prober abstracts the external probing mechanisms the orchestrator
// drives. Every text-returning method is best effort: a probe that fails
// to start, times out, or exits unsuccessfully returns empty text, which
// every parser treats as zero candidates. No method returns an error.
//
// Implementations back these with real system tools and protocol
// libraries (see the sysprobe package); tests substitute a deterministic
// fake.
type Prober interface {
	// RunFullScan emits scan-record formatted lines for all responding
	// hosts on the given interface. Requires privileges and an installed
	// scanner tool; empty text when either is missing or the scan fails.
	RunFullScan(ctx context.Context, iface string) string

	// SweepAndReadCache issues best-effort liveness probes across host
	// suffixes 1-254 of the given subnet prefix, waits a bounded settle
	// interval, then returns an address-cache dump. Always returns some
	// text (possibly just the cache) even on partial failure.
	SweepAndReadCache(ctx context.Context, prefix string) string

	// ReadAddressCache returns an address-cache dump without sweeping.
	ReadAddressCache(ctx context.Context) string

	// NameServiceBrowse returns an mDNS-class browse result with a cache
	// dump appended as trailer. Empty when the underlying mechanism is
	// unavailable.
	NameServiceBrowse(ctx context.Context) string

	// ServiceLocationQuery returns an SSDP-class multicast query result
	// containing LOCATION: headers, with a cache dump trailer.
	ServiceLocationQuery(ctx context.Context) string

	// NameQuery returns a NetBIOS-class name-query broadcast result with
	// a cache dump trailer. May be a no-op producing empty text.
	NameQuery(ctx context.Context, prefix string) string

	// PortReachabilityProbe returns per-host "ip:port" liveness lines for
	// the given ports across the subnet prefix, with a cache dump trailer.
	PortReachabilityProbe(ctx context.Context, prefix string, ports []int) string

	// ResolveHostname returns the reverse-DNS name for ip, or empty text.
	ResolveHostname(ctx context.Context, ip string) string

	// TCPConnect reports whether a short-timeout TCP connection to
	// ip:port succeeds.
	TCPConnect(ctx context.Context, ip string, port int) bool
}
