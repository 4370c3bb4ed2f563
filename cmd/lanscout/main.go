// Lanscout discovers devices on the local IPv4 network and prints, per
// device, IP address, hardware address, manufacturer, and optionally
// hostname and open service ports.
//
// Usage:
//
//	lanscout [flags]
//
// Without flags it auto-detects the local subnet and runs whichever
// discovery strategy the current privileges allow. See 'lanscout --help'.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ruggeri/lanscout/internal/config"
	"github.com/ruggeri/lanscout/internal/render"
	"github.com/ruggeri/lanscout/pkg/lanscan"
	"github.com/ruggeri/lanscout/pkg/lanscan/sysprobe"
)

var (
	flagSubnet    string
	flagInterface string
	flagDeep      bool
	flagTimeout   time.Duration
	flagConfig    string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanscout",
	Short: "Local network device discovery",
	Long: `Lanscout discovers devices on the local IPv4 network.

It combines whichever probing techniques the current environment
supports: a full ARP scan when privileged and arp-scan is installed,
otherwise a liveness sweep plus mDNS, SSDP, NetBIOS and TCP probes, all
merged into one deduplicated device table.`,
	SilenceUsage: true,
	RunE:         runScan,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().StringVarP(&flagSubnet, "subnet", "s", "", "subnet to scan (e.g. 192.168.1.0), auto-detected when empty")
	rootCmd.Flags().StringVarP(&flagInterface, "interface", "i", "", "network interface for the full scan")
	rootCmd.Flags().BoolVarP(&flagDeep, "deep", "d", false, "resolve hostnames and probe service ports")
	rootCmd.Flags().DurationVarP(&flagTimeout, "timeout", "t", 0, "per-probe timeout (default 2s)")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "config file (default ~/.config/lanscout/config.yaml)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()
	wireDebugLogging(logger)

	subnet := firstNonEmpty(flagSubnet, cfg.Subnet)
	if subnet == "" {
		subnet = detectSubnet()
	}
	iface := firstNonEmpty(flagInterface, cfg.Interface)
	timeout := time.Duration(cfg.Timeout)
	if flagTimeout > 0 {
		timeout = flagTimeout
	}
	deep := flagDeep || cfg.Deep

	prober := sysprobe.New()
	prober.Timeout = timeout

	vendors := lanscan.NewVendorResolver()
	vendors.UseDatabase = cfg.VendorDB

	opts := lanscan.Options{
		Privileged:    prober.HasPrivilege(),
		FullScanTool:  prober.FullScanAvailable(),
		Deep:          deep,
		Interface:     iface,
		LivenessPorts: cfg.Ports,
		Vendors:       vendors,
		Prober:        prober,
	}

	logger.Sugar().Debugw("starting scan",
		"subnet", subnet,
		"privileged", opts.Privileged,
		"full_scan_tool", opts.FullScanTool,
		"deep", opts.Deep,
	)

	devices := lanscan.Scan(context.Background(), subnet, opts)
	fmt.Print(render.DeviceTable(devices, deep))
	return nil
}

// buildLogger constructs the zap logger. Silent unless a level is
// configured or --verbose is passed.
func buildLogger(level string) (*zap.Logger, error) {
	if flagVerbose {
		level = "debug"
	}
	if level == "" {
		return zap.NewNop(), nil
	}
	zl := zap.NewAtomicLevel()
	if err := zl.UnmarshalText([]byte(level)); err != nil {
		zl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zl
	return cfg.Build()
}

// wireDebugLogging bridges the library's debug callback into zap.
func wireDebugLogging(logger *zap.Logger) {
	sugar := logger.Sugar()
	lanscan.SetDebugLogger(func(stage lanscan.Stage, format string, args ...interface{}) {
		sugar.Debugf("[%s] "+format, append([]interface{}{string(stage)}, args...)...)
	})
	if flagVerbose {
		lanscan.SetDebugLevel(lanscan.DebugVerbose)
	} else {
		lanscan.SetDebugLevel(lanscan.DebugBasic)
	}
}

// detectSubnet returns the first non-loopback IPv4 interface address,
// which the orchestrator reduces to its network prefix.
func detectSubnet() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
