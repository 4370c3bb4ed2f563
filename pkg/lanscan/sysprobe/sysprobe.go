// Package sysprobe implements lanscan.Prober against the real system:
// the arp-scan tool, the OS address cache, mDNS and SSDP multicast
// queries, NetBIOS name queries, and plain TCP dials. Every probe is
// best effort and returns empty text on failure; callers never see an
// error from this package.
package sysprobe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

const (
	defaultTimeout = 2 * time.Second
	defaultSettle  = 3 * time.Second
	defaultWorkers = 64
)

// Prober drives the system probing tools. The zero value is not usable;
// construct with New.
type Prober struct {
	// Timeout bounds a single external operation (one dial, one query,
	// one process run).
	Timeout time.Duration
	// Settle bounds how long the liveness sweep may run before the
	// address cache is read back.
	Settle time.Duration
	// Workers limits sweep and probe concurrency.
	Workers int

	scanPath string // resolved arp-scan binary, "" when absent
}

// New returns a Prober with defaults and resolves the optional full-scan
// tool once.
func New() *Prober {
	p := &Prober{
		Timeout: defaultTimeout,
		Settle:  defaultSettle,
		Workers: defaultWorkers,
	}
	if path, err := exec.LookPath("arp-scan"); err == nil {
		p.scanPath = path
	}
	return p
}

// FullScanAvailable reports whether the arp-scan tool was found on PATH.
func (p *Prober) FullScanAvailable() bool {
	return p.scanPath != ""
}

// HasPrivilege reports whether the process holds the privileges the full
// scan and ARP sweep need.
func (p *Prober) HasPrivilege() bool {
	return os.Geteuid() == 0
}

// RunFullScan runs the arp-scan tool against the given interface and
// returns its raw record output, or empty text on any failure.
func (p *Prober) RunFullScan(ctx context.Context, iface string) string {
	if p.scanPath == "" {
		return ""
	}
	args := []string{"--localnet", "--quiet", "--ignoredups"}
	if iface != "" {
		args = append(args, "--interface="+iface)
	}
	return p.run(ctx, p.scanPath, args...)
}

// ReadAddressCache dumps the OS address cache via "arp -a".
func (p *Prober) ReadAddressCache(ctx context.Context) string {
	return p.run(ctx, "arp", "-a")
}

// run executes one external tool with the probe timeout. Any failure,
// including a missing binary or non-zero exit, yields whatever output
// was captured; a hard failure yields empty text.
func (p *Prober) run(ctx context.Context, name string, args ...string) string {
	cctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()
	out, err := exec.CommandContext(cctx, name, args...).CombinedOutput()
	if err != nil && len(out) == 0 {
		return ""
	}
	return string(out)
}

// hostsForPrefix enumerates the dotted addresses prefix+1 .. prefix+254.
func hostsForPrefix(prefix string) []string {
	hosts := make([]string, 0, 254)
	for i := 1; i <= 254; i++ {
		hosts = append(hosts, fmt.Sprintf("%s%d", prefix, i))
	}
	return hosts
}
