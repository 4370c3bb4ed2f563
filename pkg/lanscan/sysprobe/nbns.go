// Package sysprobe: NetBIOS name-query sweep. Sends a wildcard Node
// Status query (UDP/137, RFC 1001/1002) to every host in the prefix, the
// same query nmblookup -A issues. Works without elevated privileges.
package sysprobe

import (
	"bytes"
	"context"
	"encoding/binary"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	nbnsPort         = 137
	nbnsProbeTimeout = 600 * time.Millisecond
)

// NameQuery sweeps the prefix with NetBIOS node-status queries and
// returns one bare IP line per responding host, followed by an
// address-cache dump trailer. Hosts without a NetBIOS service simply
// never answer; socket-level failure yields empty text.
func (p *Prober) NameQuery(ctx context.Context, prefix string) string {
	var b strings.Builder
	if prefix != "" {
		for _, ip := range p.nbnsSweep(ctx, prefix) {
			b.WriteString(ip)
			b.WriteByte('\n')
		}
	}
	b.WriteString(p.ReadAddressCache(ctx))
	return b.String()
}

func (p *Prober) nbnsSweep(ctx context.Context, prefix string) []string {
	hosts := hostsForPrefix(prefix)
	req := buildNodeStatusRequest()

	var (
		mu         sync.Mutex
		responders []string
		wg         sync.WaitGroup
	)
	jobs := make(chan string, len(hosts))

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for host := range jobs {
				if ctx.Err() != nil {
					continue
				}
				if nbnsProbe(host, req) {
					mu.Lock()
					responders = append(responders, host)
					mu.Unlock()
				}
			}
		}()
	}
	for _, h := range hosts {
		jobs <- h
	}
	close(jobs)
	wg.Wait()

	return responders
}

// nbnsProbe sends one node-status query and reports whether any response
// arrived before the per-probe timeout.
func nbnsProbe(host string, req []byte) bool {
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	conn, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		return false
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(nbnsProbeTimeout))
	if _, err := conn.WriteTo(req, &net.UDPAddr{IP: ip, Port: nbnsPort}); err != nil {
		return false
	}

	buf := make([]byte, 1024)
	n, _, err := conn.ReadFrom(buf)
	return err == nil && n > 0
}

// buildNodeStatusRequest constructs an NBSTAT request for the wildcard
// name "*" (RFC 1001/1002 first-level encoding).
func buildNodeStatusRequest() []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, uint16(0x4C53)) // transaction ID
	_ = binary.Write(&buf, binary.BigEndian, uint16(0x0000)) // flags
	_ = binary.Write(&buf, binary.BigEndian, uint16(1))      // QDCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))      // ANCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))      // NSCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))      // ARCOUNT

	buf.WriteByte(32) // encoded name length
	name := make([]byte, 16)
	name[0] = '*'
	for _, c := range name {
		buf.WriteByte('A' + (c>>4)&0x0F)
		buf.WriteByte('A' + c&0x0F)
	}
	buf.WriteByte(0) // terminator

	_ = binary.Write(&buf, binary.BigEndian, uint16(0x0021)) // type NBSTAT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0x0001)) // class IN
	return buf.Bytes()
}
