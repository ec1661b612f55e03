package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adsb2aprs.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
latitude: 47.5
longitude: -122.3
callsign: N0CALL
passcode: "12345"
feed: "10.0.0.5:30003"
position_ttl: 5
circles: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Latitude != 47.5 || cfg.Longitude != -122.3 {
		t.Errorf("coordinates = %v, %v", cfg.Latitude, cfg.Longitude)
	}
	if cfg.Callsign != "N0CALL" || cfg.Passcode != "12345" {
		t.Errorf("identity = %q/%q", cfg.Callsign, cfg.Passcode)
	}
	if cfg.Feed != "10.0.0.5:30003" {
		t.Errorf("Feed = %q", cfg.Feed)
	}
	// Unset fields keep their defaults.
	if cfg.Delivery != "rotate.aprs2.net:14580" {
		t.Errorf("Delivery = %q, want default", cfg.Delivery)
	}
	if cfg.AltitudeFt != DefaultOperatorAltitudeFt {
		t.Errorf("AltitudeFt = %d, want default", cfg.AltitudeFt)
	}
	if cfg.PositionTTLSeconds != 5 {
		t.Errorf("PositionTTLSeconds = %d, want 5", cfg.PositionTTLSeconds)
	}
	if !cfg.Circles {
		t.Error("Circles = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "latitude: [not, a, number]\n")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestValidate(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Callsign = "" },
		func(c *Config) { c.Latitude = 91 },
		func(c *Config) { c.Longitude = -200 },
		func(c *Config) { c.Feed = "" },
		func(c *Config) { c.PositionTTLSeconds = 0 },
	}
	for i, mutate := range bad {
		cfg := Default()
		cfg.Callsign = "N0CALL"
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: Validate accepted bad config", i)
		}
	}
}
