// Package lanscan: device aggregation, deduplication and ordering.
package lanscan

import "sort"

// Inventory accumulates candidates from discovery stages into a
// deduplicated device set. It is mutated strictly in stage order by the
// orchestrator and is not safe for concurrent use.
type Inventory struct {
	devices map[string]*Device
	vendors *VendorResolver
}

// NewInventory returns an empty inventory. A nil resolver falls back to
// the static prefix table.
func NewInventory(vendors *VendorResolver) *Inventory {
	return &Inventory{
		devices: make(map[string]*Device),
		vendors: vendors,
	}
}

// Add merges one candidate into the set. The first stage to produce an
// IP determines its hardware address; a later candidate may only upgrade
// a sentinel address to a concrete one, never replace or downgrade an
// existing one. Broadcast and multicast addresses are never materialized.
func (v *Inventory) Add(c Candidate) {
	if !ValidIPv4(c.IP) {
		return
	}
	if isBroadcastIPv4(c.IP) || isMulticastIPv4(c.IP) {
		return
	}
	mac := c.MAC
	if mac == "" {
		mac = UnknownMAC
	}
	if isBroadcastMAC(mac) || isMulticastMAC(mac) {
		return
	}

	dev, exists := v.devices[c.IP]
	if !exists {
		v.devices[c.IP] = &Device{
			IP:       c.IP,
			MAC:      mac,
			Vendor:   v.vendorFor(c, mac),
			Hostname: UnresolvedHostname,
		}
		return
	}
	if dev.MAC == UnknownMAC && mac != UnknownMAC {
		dev.MAC = mac
		dev.Vendor = v.vendorFor(c, mac)
	}
}

// AddAll merges candidates in order.
func (v *Inventory) AddAll(cs []Candidate) {
	for _, c := range cs {
		v.Add(c)
	}
}

func (v *Inventory) vendorFor(c Candidate, mac string) string {
	if c.Vendor != "" {
		return c.Vendor
	}
	if mac == UnknownMAC {
		return UnknownVendor
	}
	return v.vendors.Resolve(mac)
}

// Len returns the number of devices accumulated so far.
func (v *Inventory) Len() int {
	return len(v.devices)
}

// Devices returns the accumulated set ordered ascending by the 32-bit
// value of the IP. Ties cannot occur; IP is the dedup key.
func (v *Inventory) Devices() []*Device {
	out := make([]*Device, 0, len(v.devices))
	for _, dev := range v.devices {
		out = append(out, dev)
	}
	sort.Slice(out, func(i, j int) bool {
		return ipSortKey(out[i].IP) < ipSortKey(out[j].IP)
	})
	return out
}
