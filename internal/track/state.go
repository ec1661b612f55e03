// Package track owns the per-aircraft state store and the update engine that
// fuses parsed surveillance records into it.
package track

import (
	"time"
)

// State is the fused state of one aircraft, keyed by its 24-bit address.
// Telemetry fields are pointers (or empty strings) so that "never reported"
// is distinct from a reported zero. Position is stored pre-formatted in
// degrees + decimal minutes because change detection and report emission both
// operate on the formatted value.
type State struct {
	Address  uint32
	Hex      string // upper-case 6-digit form of Address
	Registry string // country/authority label, refreshed on every record

	Altitude     *int // feet
	GroundSpeed  *int // knots
	Track        *int // degrees
	Latitude     string
	Longitude    string
	PositionTime time.Time
	Squawk       string
	Identity     string // callsign or tail, stripped to alphanumerics

	// TacticalLabel is assigned exactly once, on whichever comes first of
	// the first position fix and the first identity fix, and is never
	// reassigned afterward. See the engine for the ordering consequences.
	TacticalLabel string

	// DirtyCount is the number of fields changed by records since the last
	// emitted report.
	DirtyCount int

	FirstSeen time.Time
	LastSeen  time.Time
	Beacons   int // reports emitted for this aircraft
}

// HasPosition reports whether a position fix has ever been recorded.
func (s *State) HasPosition() bool {
	return s.Latitude != "" && s.Longitude != ""
}

// HasAltitude reports whether an altitude has ever been recorded.
func (s *State) HasAltitude() bool {
	return s.Altitude != nil
}

// PositionAge returns the age of the last position fix.
func (s *State) PositionAge(now time.Time) time.Duration {
	return now.Sub(s.PositionTime)
}

// DisplayName returns the identity if known, otherwise the hex address.
func (s *State) DisplayName() string {
	if s.Identity != "" {
		return s.Identity
	}
	return s.Hex
}
