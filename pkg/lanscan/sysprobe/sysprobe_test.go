package sysprobe

import (
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestHostsForPrefix(t *testing.T) {
	hosts := hostsForPrefix("192.168.1.")
	if len(hosts) != 254 {
		t.Fatalf("expected 254 hosts, got %d", len(hosts))
	}
	if hosts[0] != "192.168.1.1" {
		t.Errorf("first host = %s", hosts[0])
	}
	if hosts[253] != "192.168.1.254" {
		t.Errorf("last host = %s", hosts[253])
	}
}

func TestBuildNodeStatusRequest(t *testing.T) {
	req := buildNodeStatusRequest()

	// Header (12) + length octet + encoded name (32) + terminator +
	// type and class (4).
	if len(req) != 50 {
		t.Fatalf("request length = %d, want 50", len(req))
	}
	if req[0] != 0x4C || req[1] != 0x53 {
		t.Errorf("transaction ID = %02X%02X", req[0], req[1])
	}
	if req[4] != 0 || req[5] != 1 {
		t.Errorf("QDCOUNT = %02X%02X, want 0001", req[4], req[5])
	}
	if req[12] != 32 {
		t.Errorf("encoded name length octet = %d, want 32", req[12])
	}
	// '*' is 0x2A: high nibble 2 -> 'C', low nibble A -> 'K'.
	if req[13] != 'C' || req[14] != 'K' {
		t.Errorf("wildcard encoding = %c%c, want CK", req[13], req[14])
	}
	// Remaining 15 name bytes are zero, each encoding to "AA".
	for i := 15; i < 45; i++ {
		if req[i] != 'A' {
			t.Fatalf("padding byte %d = %c, want A", i, req[i])
		}
	}
	if req[45] != 0 {
		t.Errorf("name terminator = %d", req[45])
	}
	if req[46] != 0x00 || req[47] != 0x21 {
		t.Errorf("question type = %02X%02X, want 0021", req[46], req[47])
	}
	if req[48] != 0x00 || req[49] != 0x01 {
		t.Errorf("question class = %02X%02X, want 0001", req[48], req[49])
	}
}

func TestDialProbe(t *testing.T) {
	// The unprivileged sweep path sends a plain UDP datagram; it must
	// need no listener, no privileges, and return promptly.
	p := New()
	done := make(chan struct{})
	go func() {
		p.dialProbe(context.Background(), "127.0.0.1")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * sweepProbeTimeout):
		t.Fatal("dial probe did not return within its timeout")
	}
}

func TestDrainServiceEntries(t *testing.T) {
	entries := make(chan *zeroconf.ServiceEntry)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu sync.Mutex
		b  strings.Builder
	)
	done := make(chan struct{})
	go func() {
		drainServiceEntries(ctx, entries, &mu, &b)
		close(done)
	}()

	entry := zeroconf.NewServiceEntry("Speaker", "_airplay._tcp", "local.")
	entry.AddrIPv4 = []net.IP{net.IPv4(192, 168, 1, 30)}
	entries <- entry

	// The channel is never closed, as when a browse fails; cancellation
	// alone must release the drain.
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("drain did not stop on context cancellation")
	}

	mu.Lock()
	out := b.String()
	mu.Unlock()
	if !strings.Contains(out, "Speaker (192.168.1.30)") {
		t.Errorf("rendered browse output = %q", out)
	}
}

func TestNewDefaults(t *testing.T) {
	p := New()
	if p.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v", p.Timeout)
	}
	if p.Settle != defaultSettle {
		t.Errorf("Settle = %v", p.Settle)
	}
	if p.Workers != defaultWorkers {
		t.Errorf("Workers = %v", p.Workers)
	}
}
