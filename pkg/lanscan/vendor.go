// Package lanscan: manufacturer resolution from hardware address prefixes.
package lanscan

import (
	"strings"

	"github.com/klauspost/oui"
)

// ouiVendors maps the first six hex digits of a hardware address to a
// manufacturer label. Entries cover the vendors most commonly seen on
// home and office networks; everything else resolves to UnknownVendor.
var ouiVendors = map[string]string{
	// Apple
	"4C20B8": "Apple", "F01898": "Apple", "A483E7": "Apple", "BCD1D3": "Apple",
	"F09E63": "Apple", "000393": "Apple", "3C22FB": "Apple", "D0817A": "Apple",
	"AC87A3": "Apple", "28CFE9": "Apple",
	// Samsung
	"8C7712": "Samsung", "E8508B": "Samsung", "5C497D": "Samsung", "34145F": "Samsung",
	"F877B8": "Samsung", "0C715D": "Samsung",
	// Huawei
	"E8EA4D": "Huawei", "00E0FC": "Huawei", "48DB50": "Huawei", "ACE215": "Huawei",
	"286ED4": "Huawei",
	// Xiaomi
	"640980": "Xiaomi", "286C07": "Xiaomi", "7802F8": "Xiaomi", "F8A45F": "Xiaomi",
	// Google
	"F4F5D8": "Google", "F88FCA": "Google", "1A11D0": "Google", "54605F": "Google",
	// Amazon
	"F0D2F1": "Amazon", "44650D": "Amazon", "FCA667": "Amazon", "74C246": "Amazon",
	"0C47C9": "Amazon",
	// Microsoft, including the Hyper-V range
	"00155D": "Microsoft", "281878": "Microsoft", "985FD3": "Microsoft",
	// Intel
	"001B21": "Intel", "A0369F": "Intel", "3CF011": "Intel", "8086F2": "Intel",
	// Realtek
	"00E04C": "Realtek", "52544C": "Realtek",
	// Dell
	"001422": "Dell", "F8BC12": "Dell", "18A99B": "Dell", "B8CA3A": "Dell",
	// HP
	"3CD92B": "HP", "9457A5": "HP", "ECB1D7": "HP", "001F29": "HP",
	// Lenovo
	"54E1AD": "Lenovo", "C82158": "Lenovo", "005907": "Lenovo",
	// TP-Link
	"50C7BF": "TP-Link", "F4F26D": "TP-Link", "C46E1F": "TP-Link", "98DAC4": "TP-Link",
	"EC086B": "TP-Link",
	// Netgear
	"A040A0": "Netgear", "20E52A": "Netgear", "9C3DCF": "Netgear", "4494FC": "Netgear",
	// Cisco
	"001A2B": "Cisco", "004096": "Cisco", "58971E": "Cisco", "00562B": "Cisco",
	// ASUS
	"04D9F5": "ASUS", "2CFDA1": "ASUS", "AC9E17": "ASUS", "001FC6": "ASUS",
	// Ubiquiti
	"24A43C": "Ubiquiti", "F09FC2": "Ubiquiti", "74ACB9": "Ubiquiti", "788A20": "Ubiquiti",
	"68D79A": "Ubiquiti",
	// Espressif
	"248D76": "Espressif", "84F3EB": "Espressif", "240AC4": "Espressif", "30AEA4": "Espressif",
	"A4CF12": "Espressif", "BCDDC2": "Espressif",
	// Raspberry Pi
	"B827EB": "Raspberry Pi", "DCA632": "Raspberry Pi", "D83ADD": "Raspberry Pi",
	"E45F01": "Raspberry Pi", "28CDC1": "Raspberry Pi",
	// Sony
	"FCF152": "Sony", "3052CB": "Sony", "0013A9": "Sony", "78C881": "Sony",
	// Nintendo
	"0009BF": "Nintendo", "98B6E9": "Nintendo", "7CBB8A": "Nintendo", "E00C7F": "Nintendo",
	// Roku
	"B0A737": "Roku", "D83134": "Roku", "AC3A7A": "Roku", "CC6DA0": "Roku",
	// Sonos
	"000E58": "Sonos", "5CAAFD": "Sonos", "949F3E": "Sonos", "B8E937": "Sonos",
	// Nest
	"18B430": "Nest", "641666": "Nest",
	// Ring
	"54E019": "Ring", "9C7613": "Ring",
	// VMware
	"005056": "VMware", "000C29": "VMware", "000569": "VMware",
	// MikroTik
	"4C5E0C": "MikroTik", "64D154": "MikroTik", "E48D8C": "MikroTik", "D4CA6D": "MikroTik",
	"6C3B6B": "MikroTik", "B869F4": "MikroTik",
	// Others seen regularly on LANs
	"001132": "Synology", "525400": "QEMU/KVM", "080027": "VirtualBox",
	"AC293A": "Canon", "001788": "Philips Hue", "50E549": "Gigabyte",
}

// ResolveVendor maps a hardware address to its manufacturer label using
// the static prefix table. The match is on the first six significant hex
// digits, case-insensitive, separators ignored. Anything shorter, or any
// unmatched prefix, resolves to UnknownVendor.
func ResolveVendor(mac string) string {
	prefix := ouiPrefix(mac)
	if prefix == "" {
		return UnknownVendor
	}
	if name, ok := ouiVendors[prefix]; ok {
		return name
	}
	return UnknownVendor
}

// ouiPrefix extracts the first six hex digits of mac, uppercased, with
// separators skipped. Returns "" when fewer than six hex digits exist.
func ouiPrefix(mac string) string {
	var b strings.Builder
	b.Grow(6)
	for i := 0; i < len(mac) && b.Len() < 6; i++ {
		c := mac[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'a' && c <= 'f':
			b.WriteByte(c - 'a' + 'A')
		case c >= 'A' && c <= 'F':
			b.WriteByte(c)
		case c == ':' || c == '-' || c == '.':
			// separator, skip
		default:
			return ""
		}
	}
	if b.Len() < 6 {
		return ""
	}
	return b.String()
}

// VendorResolver resolves manufacturers with the static table, optionally
// falling back to the full IEEE registry shipped with the oui library for
// prefixes the table does not carry. The fallback is opt-in: the static
// table alone keeps results deterministic and dependency-free at runtime.
type VendorResolver struct {
	// UseDatabase enables the IEEE registry fallback on a table miss.
	UseDatabase bool

	db oui.OuiDB
}

// NewVendorResolver returns a resolver using only the static table.
func NewVendorResolver() *VendorResolver {
	return &VendorResolver{}
}

// Resolve returns the manufacturer label for mac.
func (r *VendorResolver) Resolve(mac string) string {
	if r == nil {
		return ResolveVendor(mac)
	}
	if name := ResolveVendor(mac); name != UnknownVendor {
		return name
	}
	if !r.UseDatabase || mac == UnknownMAC {
		return UnknownVendor
	}
	if r.db == nil {
		db, err := oui.OpenStaticFile("")
		if err != nil {
			debugLog(StageFullScan, "IEEE OUI database unavailable: %v", err)
			r.UseDatabase = false
			return UnknownVendor
		}
		r.db = db
	}
	entry, err := r.db.Query(strings.ToLower(mac))
	if err != nil || entry == nil || entry.Manufacturer == "" {
		return UnknownVendor
	}
	return entry.Manufacturer
}
