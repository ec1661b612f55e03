// Package config loads the operator configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOperatorAltitudeFt is assumed when the config gives no antenna
// altitude.
const DefaultOperatorAltitudeFt = 300

// Config is the full configuration surface. CLI flags may override any
// field after loading.
type Config struct {
	// Operator station location.
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	AltitudeFt int     `yaml:"altitude_ft"`

	// Endpoints.
	Feed     string `yaml:"feed"`     // BaseStation feed, host:port
	Delivery string `yaml:"delivery"` // APRS-IS server, host:port

	// Delivery identity.
	Callsign string `yaml:"callsign"`
	Passcode string `yaml:"passcode"`

	// Behavior.
	PositionTTLSeconds int  `yaml:"position_ttl"` // freshness window for live reports
	EvictAfterSeconds  int  `yaml:"evict_after"`  // silence before an aircraft is dropped
	Circles            bool `yaml:"circles"`      // circle overlay for position-less aircraft

	// Timeouts.
	ReadTimeoutSeconds  int `yaml:"read_timeout"`
	WriteTimeoutSeconds int `yaml:"write_timeout"`
}

// Default returns the configuration used when no file and no flags say
// otherwise.
func Default() Config {
	return Config{
		AltitudeFt:          DefaultOperatorAltitudeFt,
		Feed:                "localhost:30003",
		Delivery:            "rotate.aprs2.net:14580",
		PositionTTLSeconds:  1,
		EvictAfterSeconds:   3600,
		ReadTimeoutSeconds:  300,
		WriteTimeoutSeconds: 30,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields that have no workable zero value.
func (c *Config) Validate() error {
	if c.Callsign == "" {
		return fmt.Errorf("no callsign configured")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("operator latitude %v out of range", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("operator longitude %v out of range", c.Longitude)
	}
	if c.Feed == "" || c.Delivery == "" {
		return fmt.Errorf("feed and delivery endpoints are required")
	}
	if c.PositionTTLSeconds <= 0 {
		return fmt.Errorf("position TTL must be positive, got %d", c.PositionTTLSeconds)
	}
	return nil
}
