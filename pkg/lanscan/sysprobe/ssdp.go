// Package sysprobe: SSDP service-location query.
package sysprobe

import (
	"context"
	"strings"

	"github.com/koron/go-ssdp"
)

// ServiceLocationQuery issues an SSDP M-SEARCH for all devices and
// renders each response as a "LOCATION:" header line, followed by an
// address-cache dump trailer.
func (p *Prober) ServiceLocationQuery(ctx context.Context) string {
	waitSec := int(p.Timeout.Seconds())
	if waitSec < 1 {
		waitSec = 1
	}

	type searchResult struct {
		services []ssdp.Service
		err      error
	}
	resultCh := make(chan searchResult, 1)
	go func() {
		services, err := ssdp.Search(ssdp.All, waitSec, "")
		resultCh <- searchResult{services: services, err: err}
	}()

	var b strings.Builder
	select {
	case <-ctx.Done():
	case res := <-resultCh:
		if res.err == nil {
			for _, svc := range res.services {
				if svc.Location == "" {
					continue
				}
				b.WriteString("LOCATION: ")
				b.WriteString(svc.Location)
				b.WriteString("\r\n")
			}
		}
	}

	b.WriteString(p.ReadAddressCache(ctx))
	return b.String()
}
