package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
subnet: 192.168.1.0
deep: true
ports: [22, 445]
timeout: 5s
vendor_database: true
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Subnet != "192.168.1.0" {
		t.Errorf("Subnet = %q", cfg.Subnet)
	}
	if !cfg.Deep || !cfg.VendorDB {
		t.Errorf("Deep = %v, VendorDB = %v", cfg.Deep, cfg.VendorDB)
	}
	if len(cfg.Ports) != 2 || cfg.Ports[0] != 22 || cfg.Ports[1] != 445 {
		t.Errorf("Ports = %v", cfg.Ports)
	}
	if time.Duration(cfg.Timeout) != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if time.Duration(cfg.Timeout) != 2*time.Second || len(cfg.Ports) != 3 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if time.Duration(cfg.Timeout) != 2*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "subnet: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "deep: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Deep {
		t.Error("Deep not set")
	}
	if len(cfg.Ports) != 3 || time.Duration(cfg.Timeout) != 2*time.Second {
		t.Errorf("defaults lost on partial file: %+v", cfg)
	}
}
