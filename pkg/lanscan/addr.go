// Package lanscan: IPv4 and hardware address validation and normalization.
package lanscan

import (
	"strings"
)

// ValidIPv4 reports whether s looks like a dotted-quad IPv4 address:
// exactly three '.' separators with every other character a decimal
// digit. Octet ranges are deliberately not checked; downstream consumers
// tolerate loose input the same way the probing tools do.
func ValidIPv4(s string) bool {
	if s == "" {
		return false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			dots++
		case s[i] < '0' || s[i] > '9':
			return false
		}
	}
	return dots == 3
}

// NormalizeMAC canonicalizes a hardware address into uppercase,
// zero-padded, colon-separated form. It accepts colon or hyphen
// separated input in any case, including forms where octets are not
// zero padded ("b0:41:6f:d:78:17"). Input that is not a clean six-group
// field is scanned as free text via FindMAC.
func NormalizeMAC(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	groups := strings.Split(strings.ReplaceAll(s, "-", ":"), ":")
	if len(groups) == 6 {
		out, ok := joinMACGroups(groups)
		if ok {
			return out, true
		}
	}
	return FindMAC(s)
}

// FindMAC locates the first hardware address embedded in free text: a
// run of colon-delimited hex groups, each one or two hex digits, that
// totals exactly six groups by the time the run terminates. Runs of any
// other length are skipped. The match is greedy-first; six
// colon-separated numbers that are not a hardware address will match,
// which downstream vendor resolution depends on.
func FindMAC(text string) (string, bool) {
	groups := make([]string, 0, 6)
	i := 0
	for i < len(text) {
		start := i
		for i < len(text) && isHexDigit(text[i]) {
			i++
		}
		glen := i - start
		inRun := len(groups) > 0 || glen > 0
		if glen >= 1 && glen <= 2 {
			groups = append(groups, text[start:i])
			if i < len(text) && text[i] == ':' && len(groups) < 6 {
				i++
				continue
			}
			// Run terminated: end of text or a non-colon byte. A run
			// continuing past six groups is not an address.
			if len(groups) == 6 && (i >= len(text) || text[i] != ':') {
				if out, ok := joinMACGroups(groups); ok {
					return out, true
				}
			}
		}
		groups = groups[:0]
		if inRun {
			// Consume the remainder of the invalid run so its tail
			// cannot masquerade as a fresh address.
			for i < len(text) && (isHexDigit(text[i]) || text[i] == ':') {
				i++
			}
		}
		if i == start {
			i++
		}
	}
	return "", false
}

func joinMACGroups(groups []string) (string, bool) {
	var b strings.Builder
	b.Grow(17)
	for n, g := range groups {
		if len(g) < 1 || len(g) > 2 {
			return "", false
		}
		for i := 0; i < len(g); i++ {
			if !isHexDigit(g[i]) {
				return "", false
			}
		}
		if n > 0 {
			b.WriteByte(':')
		}
		if len(g) == 1 {
			b.WriteByte('0')
		}
		b.WriteString(strings.ToUpper(g))
	}
	return b.String(), true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ipSortKey maps a dotted-quad string to its 32-bit big-endian value for
// ordering. Non-digit characters inside an octet are ignored rather than
// rejected, matching the lenient validator.
func ipSortKey(ip string) uint32 {
	var key uint32
	for _, part := range strings.Split(ip, ".") {
		var v uint32
		for i := 0; i < len(part); i++ {
			if part[i] >= '0' && part[i] <= '9' {
				v = v*10 + uint32(part[i]-'0')
			}
		}
		key = key<<8 | (v & 0xFF)
	}
	return key
}

// isMulticastIPv4 reports whether ip falls in 224.0.0.0..239.255.255.255.
func isMulticastIPv4(ip string) bool {
	dot := strings.IndexByte(ip, '.')
	if dot <= 0 {
		return false
	}
	var v int
	for i := 0; i < dot; i++ {
		if ip[i] < '0' || ip[i] > '9' {
			return false
		}
		v = v*10 + int(ip[i]-'0')
	}
	return v >= 224 && v <= 239
}

// isBroadcastIPv4 reports whether ip is a x.x.x.255 broadcast form.
func isBroadcastIPv4(ip string) bool {
	return strings.HasSuffix(ip, ".255")
}

// isBroadcastMAC reports whether mac (canonical form) is the all-ones
// broadcast address.
func isBroadcastMAC(mac string) bool {
	return mac == "FF:FF:FF:FF:FF:FF"
}

// isMulticastMAC reports whether mac (canonical form) is an IPv4
// multicast hardware address.
func isMulticastMAC(mac string) bool {
	return strings.HasPrefix(mac, "01:")
}

// subnetPrefix returns the network prefix of a dotted subnet string up
// to and including the last '.', or "" when no prefix can be derived.
func subnetPrefix(subnet string) string {
	idx := strings.LastIndexByte(subnet, '.')
	if idx < 0 {
		return ""
	}
	return subnet[:idx+1]
}
