// Package lanscan: parsers for the textual output of each probing
// technique. Each parser consumes raw multi-line text and yields zero or
// more candidates; lines that do not match the expected shape, or that
// fail IP/MAC validation, are skipped silently and never abort the parse.
package lanscan

import (
	"strings"
)

// scanRecordBanners are prefixes of header lines emitted by the full
// scanner tool around its record output.
var scanRecordBanners = []string{
	"Interface:",
	"Starting ",
	"Ending ",
	"WARNING:",
}

// scanRecordFooterMarks are substrings of progress and packet-count
// footer lines.
var scanRecordFooterMarks = []string{
	"packets received",
	"packets dropped",
	"hosts scanned",
	"responded",
}

// ParseScanRecords parses tab-delimited scan records of the form
// "ip\tmac\tvendor". Banner and footer lines are skipped. A vendor field
// wrapped as "(Unknown...)" normalizes to UnknownVendor and a trailing
// "(DUP: n)" marker is stripped.
func ParseScanRecords(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isScanBanner(trimmed) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		ip := strings.TrimSpace(fields[0])
		if !ValidIPv4(ip) {
			debugLogVerbose(StageFullScan, "skipping line, bad IP: %q", trimmed)
			continue
		}
		mac, ok := NormalizeMAC(fields[1])
		if !ok {
			debugLogVerbose(StageFullScan, "skipping line, bad MAC: %q", trimmed)
			continue
		}
		vendor := ""
		if len(fields) >= 3 {
			vendor = cleanScanVendor(fields[2])
		}
		out = append(out, Candidate{IP: ip, MAC: mac, Vendor: vendor})
	}
	return out
}

func isScanBanner(line string) bool {
	for _, p := range scanRecordBanners {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	for _, m := range scanRecordFooterMarks {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// cleanScanVendor normalizes the free-text vendor field of a scan record.
func cleanScanVendor(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "(Unknown") {
		return UnknownVendor
	}
	if idx := strings.Index(v, "(DUP:"); idx >= 0 {
		v = strings.TrimRight(v[:idx], " ")
	}
	return v
}

// ParseAddressCache parses address-cache dump lines of the form
// "name (ip) at mac on iface". The hardware address is taken from a
// standalone 17-character canonical token when present, otherwise
// located by the free-text scan. Lines whose resolved address is the
// all-ones broadcast or an IPv4 multicast address are skipped, as are
// lines without a resolvable address (incomplete cache entries).
func ParseAddressCache(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		open := strings.IndexByte(line, '(')
		if open < 0 {
			continue
		}
		end := strings.IndexByte(line[open:], ')')
		if end < 0 {
			continue
		}
		ip := line[open+1 : open+end]
		if !ValidIPv4(ip) {
			continue
		}
		mac, ok := cacheLineMAC(line[open+end+1:])
		if !ok {
			debugLogVerbose(StageSweep, "no address on cache line: %q", strings.TrimSpace(line))
			continue
		}
		if isBroadcastMAC(mac) || isMulticastMAC(mac) {
			continue
		}
		out = append(out, Candidate{IP: ip, MAC: mac})
	}
	return out
}

// cacheLineMAC extracts the hardware address from the remainder of a
// cache line, preferring an exact canonical token.
func cacheLineMAC(rest string) (string, bool) {
	for _, tok := range strings.Fields(rest) {
		if len(tok) == 17 {
			if mac, ok := NormalizeMAC(tok); ok {
				return mac, true
			}
		}
	}
	return FindMAC(rest)
}

// ParseNameServiceBrowse parses name-service browse output: lines of the
// form "instance (ip)", plus cache-dump trailer lines which carry a
// hardware address after the parenthesized IP. A line without a
// resolvable address still counts as liveness evidence, since browse
// answers arrive over multicast and never seed the address cache; the
// orchestrator fills the address with a targeted cache lookup.
func ParseNameServiceBrowse(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		open := strings.IndexByte(line, '(')
		if open < 0 {
			continue
		}
		end := strings.IndexByte(line[open:], ')')
		if end < 0 {
			continue
		}
		ip := line[open+1 : open+end]
		if !ValidIPv4(ip) {
			continue
		}
		mac, ok := cacheLineMAC(line[open+end+1:])
		if ok && (isBroadcastMAC(mac) || isMulticastMAC(mac)) {
			continue
		}
		if !ok {
			mac = ""
		}
		out = append(out, Candidate{IP: ip, MAC: mac})
	}
	return out
}

// ParseServiceLocations parses service-location query output, extracting
// the host component of each "LOCATION:" header URL. Candidates carry no
// hardware address; the orchestrator resolves one via a targeted cache
// lookup.
func ParseServiceLocations(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		idx := strings.Index(lower, "location:")
		if idx < 0 {
			continue
		}
		url := strings.TrimSpace(line[idx+len("location:"):])
		host := urlHost(url)
		if !ValidIPv4(host) {
			continue
		}
		out = append(out, Candidate{IP: host})
	}
	return out
}

// urlHost returns the host component of url: scheme stripped, bounded by
// ':', '/', space, or end of string.
func urlHost(url string) string {
	if idx := strings.Index(url, "://"); idx >= 0 {
		url = url[idx+3:]
	}
	end := len(url)
	for i := 0; i < len(url); i++ {
		if url[i] == ':' || url[i] == '/' || url[i] == ' ' {
			end = i
			break
		}
	}
	return url[:end]
}

// ParsePortLiveness parses bare "ip:port" reachability lines. The port
// only proves liveness and is discarded.
func ParsePortLiveness(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			continue
		}
		if !ValidIPv4(parts[0]) {
			continue
		}
		out = append(out, Candidate{IP: parts[0]})
	}
	return out
}

// ParseNameQuery parses name-query output: any line that is itself a
// bare valid IP after trimming is liveness evidence.
func ParseNameQuery(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !ValidIPv4(line) {
			continue
		}
		out = append(out, Candidate{IP: line})
	}
	return out
}
