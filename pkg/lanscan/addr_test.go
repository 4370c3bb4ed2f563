// Package lanscan tests for address validation and normalization.
package lanscan

import (
	"testing"
)

func TestValidIPv4(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"192.168.1.1", true},
		{"10.0.0.254", true},
		{"0.0.0.0", true},
		{"192.168.1", false},      // too few separators
		{"192.168.1.1.1", false},  // too many separators
		{"abc.def.1.1", false},    // letters
		{"192.168.1.1 ", false},   // trailing space
		{"", false},
		{"...", true}, // syntactically loose by design
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidIPv4(tt.input); got != tt.want {
				t.Errorf("ValidIPv4(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeMAC(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"b0:41:6f:0d:78:17", "B0:41:6F:0D:78:17", true},
		{"b0:41:6f:d:78:17", "B0:41:6F:0D:78:17", true}, // non-zero-padded octet
		{"B0-41-6F-0D-78-17", "B0:41:6F:0D:78:17", true},
		{"Aa:Bb:Cc:Dd:Ee:Ff", "AA:BB:CC:DD:EE:FF", true},
		{"0:1:2:3:4:5", "00:01:02:03:04:05", true},
		{"b0:41:6f:0d:78", "", false},       // five groups
		{"b0:41:6f:0d:78:17:aa", "", false}, // seven groups
		{"b0:41:6f:0dd:78:17", "", false},   // three-digit group
		{"not a mac", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeMAC(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("NormalizeMAC(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalizeMAC_Idempotent(t *testing.T) {
	inputs := []string{
		"b0:41:6f:0d:78:17",
		"b0:41:6f:d:78:17",
		"4C:20:B8:DB:D5:E8",
		"ff:ff:ff:ff:ff:fe",
	}
	for _, in := range inputs {
		once, ok := NormalizeMAC(in)
		if !ok {
			t.Fatalf("NormalizeMAC(%q) failed", in)
		}
		twice, ok := NormalizeMAC(once)
		if !ok || twice != once {
			t.Errorf("NormalizeMAC not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestFindMAC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"embedded", "? (192.168.1.7) at 0:1f:5b:3a:b2:c1 on en0 ifscope", "00:1F:5B:3A:B2:C1", true},
		{"at end of text", "gateway at b0:41:6f:d:78:17", "B0:41:6F:0D:78:17", true},
		{"standalone", "aa:bb:cc:dd:ee:ff", "AA:BB:CC:DD:EE:FF", true},
		{"five groups only", "link aa:bb:cc:dd:ee end", "", false},
		{"seven group run", "x 1:2:3:4:5:6:7 y", "", false},
		{"first of two", "a1:a2:a3:a4:a5:a6 then b1:b2:b3:b4:b5:b6", "A1:A2:A3:A4:A5:A6", true},
		{"no address", "? (192.168.1.77) at (incomplete) on en0", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMAC(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FindMAC(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIPSortKey_Ordering(t *testing.T) {
	// 10.0.0.3 < 10.0.0.20 < 10.0.1.1 numerically, though not lexically.
	a := ipSortKey("10.0.0.3")
	b := ipSortKey("10.0.0.20")
	c := ipSortKey("10.0.1.1")
	if !(a < b && b < c) {
		t.Errorf("expected 10.0.0.3 < 10.0.0.20 < 10.0.1.1, got %d, %d, %d", a, b, c)
	}
}

func TestIPSortKey_Lenient(t *testing.T) {
	// Non-digit characters are ignored rather than rejected.
	if ipSortKey("10.0.0.3") != ipSortKey("10.0.0.3x") {
		t.Error("expected non-digit characters to be ignored")
	}
}

func TestAddressClassifiers(t *testing.T) {
	if !isMulticastIPv4("224.0.0.1") || !isMulticastIPv4("239.255.255.250") {
		t.Error("expected 224.0.0.0-239.255.255.255 to classify as multicast")
	}
	if isMulticastIPv4("192.168.1.1") || isMulticastIPv4("240.0.0.1") {
		t.Error("unexpected multicast classification")
	}
	if !isBroadcastIPv4("192.168.1.255") {
		t.Error("expected .255 suffix to classify as broadcast")
	}
	if isBroadcastIPv4("192.168.1.25") {
		t.Error("unexpected broadcast classification")
	}
	if !isBroadcastMAC("FF:FF:FF:FF:FF:FF") {
		t.Error("expected all-ones hardware address to classify as broadcast")
	}
	if !isMulticastMAC("01:00:5E:00:00:01") {
		t.Error("expected 01: prefix to classify as multicast")
	}
}

func TestSubnetPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"192.168.1.0", "192.168.1."},
		{"10.0.0.14", "10.0.0."},
		{"192.168.1.", "192.168.1."},
		{"nodots", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := subnetPrefix(tt.input); got != tt.want {
			t.Errorf("subnetPrefix(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func BenchmarkFindMAC(b *testing.B) {
	line := "? (192.168.1.7) at 0:1f:5b:3a:b2:c1 on en0 ifscope [ethernet]"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FindMAC(line)
	}
}
