// Package render formats scan results for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ruggeri/lanscout/pkg/lanscan"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	unknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#43BF6D"))
)

// DeviceTable renders the discovered device set as an aligned table.
// Deep controls whether the hostname and port columns appear.
func DeviceTable(devices []lanscan.Device, deep bool) string {
	if len(devices) == 0 {
		return "No devices found.\n"
	}

	headers := []string{"IP", "MAC", "VENDOR"}
	if deep {
		headers = append(headers, "HOSTNAME", "OPEN PORTS")
	}

	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		row := []string{d.IP, d.MAC, d.Vendor}
		if deep {
			row = append(row, d.Hostname, d.OpenPorts)
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')

	for _, row := range rows {
		for i, cell := range row {
			text := pad(cell, widths[i])
			if cell == lanscan.UnknownMAC || cell == lanscan.UnknownVendor || cell == lanscan.UnresolvedHostname {
				text = unknownStyle.Render(text)
			}
			b.WriteString(text)
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(countStyle.Render(fmt.Sprintf("%d device(s) found", len(devices))))
	b.WriteByte('\n')
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
