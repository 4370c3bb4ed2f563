// Package lanscan discovers devices on a local IPv4 network and reports,
// per device, IP address, hardware (MAC) address, manufacturer, and
// optionally hostname and open service ports.
//
// Discovery runs several privilege-dependent strategies over external
// probing collaborators (see Prober) and folds their heterogeneous textual
// output into a single deduplicated, stably ordered device set:
//   - full ARP scan (requires privileges and an installed scanner tool)
//   - liveness sweep followed by an address-cache read
//   - mDNS-class name-service browse
//   - SSDP-class service-location query
//   - NetBIOS-class name query
//   - TCP port reachability probes
//
// The package itself never fails: a probe that cannot run contributes zero
// candidates and the caller receives whatever the remaining stages found.
package lanscan

import "time"

// Stage identifies one discovery technique within a scan run.
type Stage string

const (
	StageFullScan Stage = "fullscan" // ARP scanner tool, privileged
	StageSweep    Stage = "sweep"    // liveness sweep + address cache
	StageMDNS     Stage = "mdns"     // name-service browse
	StageSSDP     Stage = "ssdp"     // service-location query
	StageNBNS     Stage = "nbns"     // name query
	StagePorts    Stage = "ports"    // port reachability
	StageDeep     Stage = "deep"     // hostname/port enrichment
)

// Sentinel values used when a probe located a device but could not
// resolve the corresponding attribute.
const (
	UnknownMAC         = "Unknown"
	UnknownVendor      = "Unknown"
	UnresolvedHostname = "Unresolved"
)

// Device is a single discovered network device. IP is the unique key
// within one scan run.
type Device struct {
	IP        string
	MAC       string // canonical XX:XX:XX:XX:XX:XX form, or UnknownMAC
	Vendor    string // manufacturer resolved from the MAC prefix, or UnknownVendor
	Hostname  string // reverse-DNS name, UnresolvedHostname until deep-scanned
	OpenPorts string // comma-joined service labels, empty unless deep-scanned
}

// Candidate is a raw (ip, mac?) pair emitted by a probe output parser
// before aggregation. MAC and Vendor are empty when the probe did not
// supply them.
type Candidate struct {
	IP     string
	MAC    string
	Vendor string
}

// Defaults shared by the orchestrator and the system prober.
const (
	// DefaultTimeout bounds a single external probe operation.
	DefaultTimeout = 2 * time.Second
	// DefaultSettle is how long the liveness sweep is allowed to run
	// before the address cache is read back.
	DefaultSettle = 3 * time.Second
)

// DefaultLivenessPorts are probed during the unprivileged port
// reachability stage.
var DefaultLivenessPorts = []int{22, 80, 443}
