// Package lanscan tests for manufacturer resolution.
package lanscan

import (
	"testing"
)

func TestResolveVendor(t *testing.T) {
	tests := []struct {
		mac  string
		want string
	}{
		{"4C:20:B8:DB:D5:E8", "Apple"},
		{"4c:20:b8:db:d5:e8", "Apple"}, // case-insensitive
		{"E8:EA:4D:1D:3A:45", "Huawei"},
		{"B8:27:EB:00:00:01", "Raspberry Pi"},
		{"00:50:56:AA:BB:CC", "VMware"},
		{"50-C7-BF-11-22-33", "TP-Link"}, // hyphen separators
		{"00:00:00:00:00:00", UnknownVendor},
		{"DE:AD:BE:EF:00:00", UnknownVendor},
		{"4C:20", UnknownVendor}, // fewer than six hex digits
		{UnknownMAC, UnknownVendor},
		{"", UnknownVendor},
	}

	for _, tt := range tests {
		t.Run(tt.mac, func(t *testing.T) {
			if got := ResolveVendor(tt.mac); got != tt.want {
				t.Errorf("ResolveVendor(%q) = %q, want %q", tt.mac, got, tt.want)
			}
		})
	}
}

func TestOUIPrefix(t *testing.T) {
	tests := []struct {
		mac  string
		want string
	}{
		{"4C:20:B8:DB:D5:E8", "4C20B8"},
		{"4c-20-b8-db-d5-e8", "4C20B8"},
		{"4c20b8dbd5e8", "4C20B8"},
		{"4C:20", ""},           // too short
		{"Unknown", ""},         // sentinel
		{"zz:zz:zz:00:00:00", ""}, // not hex
	}
	for _, tt := range tests {
		if got := ouiPrefix(tt.mac); got != tt.want {
			t.Errorf("ouiPrefix(%q) = %q, want %q", tt.mac, got, tt.want)
		}
	}
}

func TestVendorResolver_Static(t *testing.T) {
	r := NewVendorResolver()
	if got := r.Resolve("E8:EA:4D:00:00:01"); got != "Huawei" {
		t.Errorf("Resolve = %q, want Huawei", got)
	}
	if got := r.Resolve("DE:AD:BE:EF:00:00"); got != UnknownVendor {
		t.Errorf("Resolve = %q, want %q", got, UnknownVendor)
	}
}

func TestVendorResolver_NilReceiver(t *testing.T) {
	var r *VendorResolver
	if got := r.Resolve("4C:20:B8:00:00:01"); got != "Apple" {
		t.Errorf("nil resolver Resolve = %q, want Apple", got)
	}
}

func BenchmarkResolveVendor(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ResolveVendor("4C:20:B8:DB:D5:E8")
	}
}
