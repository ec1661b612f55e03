package beacon

import (
	"fmt"
	"strings"
	"time"

	"adsb2aprs/internal/track"
)

// Display symbols, primary APRS symbol table.
const (
	SymbolSmallAircraft = '\''
	SymbolLargeAircraft = '^'
	SymbolHelicopter    = 'X'
)

// Symbol-selection thresholds. Speeds are knots, altitudes feet.
const (
	helicopterMaxSpeed   = 57
	largeAircraftSpeed   = 126
	largeAircraftAlt     = 20000
	helicopterCeilingAlt = 10000
)

// defaultCircleRadiusMi is used for the circle overlay when the aircraft has
// no known altitude.
const defaultCircleRadiusMi = 10

// Operator is the receiving station's fixed location.
type Operator struct {
	Latitude   float64
	Longitude  float64
	AltitudeFt int
}

// Composer renders beacon reports for dirty aircraft. Callsign is the
// delivery identity every packet is sourced from; PositionTTL is the maximum
// age of a position fix that may still be reported live.
type Composer struct {
	Callsign    string
	Operator    Operator
	PositionTTL time.Duration
	Circles     bool
}

// Tactical renders the one-time tactical-label report for an aircraft.
func (c *Composer) Tactical(st track.State) string {
	return fmt.Sprintf("%s>BEACON::TACTICAL :%s=%s", c.Callsign, st.Hex, st.TacticalLabel)
}

// Compose renders the outbound reports for a dirty aircraft: one full
// position report when the fix is fresh, otherwise a status report, plus the
// optional circle overlay when no fix exists at all. emergency and onGround
// are the per-record conditions from the update engine.
func (c *Composer) Compose(st track.State, emergency string, onGround bool, now time.Time) []string {
	switch {
	case !st.HasPosition():
		reports := []string{c.statusReport(st, emergency, onGround, -1)}
		if c.Circles {
			reports = append(reports, c.circleReport(st))
		}
		return reports

	case st.PositionAge(now) > c.PositionTTL:
		age := int(st.PositionAge(now).Seconds())
		return []string{c.statusReport(st, emergency, onGround, age)}

	default:
		return []string{c.positionReport(st, emergency, onGround)}
	}
}

// Coverage is the position-to-altitude coverage diagnostic, in percent.
func (c *Composer) Coverage(stats track.Stats) float64 {
	if stats.WithAltitude == 0 {
		return 0
	}
	return float64(stats.WithPosition) / float64(stats.WithAltitude) * 100
}

func (c *Composer) positionReport(st track.State, emergency string, onGround bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s>BEACON:)%s!%s/%s%c%s/%s",
		c.Callsign, st.Hex, st.Latitude, st.Longitude,
		c.Symbol(st), displayTrack(st), displaySpeed(st))
	if st.Altitude != nil {
		fmt.Fprintf(&b, " /A=%06d", *st.Altitude)
	}
	writeAnnotations(&b, st, emergency, onGround)
	fmt.Fprintf(&b, " (%s)", st.Registry)
	return b.String()
}

func (c *Composer) statusReport(st track.State, emergency string, onGround bool, ageSeconds int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s>BEACON:>%s", c.Callsign, st.Hex)
	writeAnnotations(&b, st, emergency, onGround)
	if ageSeconds >= 0 {
		fmt.Fprintf(&b, " age=%ds", ageSeconds)
	}
	fmt.Fprintf(&b, " (%s)", st.Registry)
	return b.String()
}

// circleReport is the synthetic overlay emitted for aircraft heard without a
// position fix: a report at the operator's own coordinates whose radius
// scales with how high above the operator the aircraft is flying.
func (c *Composer) circleReport(st track.State) string {
	radius := defaultCircleRadiusMi
	if st.Altitude != nil {
		radius = (*st.Altitude - c.Operator.AltitudeFt) / 1000 * 2
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s>BEACON:)%s!%s/%s%c%s/%s",
		c.Callsign, st.Hex,
		track.FormatLatitude(c.Operator.Latitude),
		track.FormatLongitude(c.Operator.Longitude),
		c.Symbol(st), displayTrack(st), displaySpeed(st))
	fmt.Fprintf(&b, " CIRCLE=%dmi (%s)", radius, st.Registry)
	return b.String()
}

func writeAnnotations(b *strings.Builder, st track.State, emergency string, onGround bool) {
	if st.Identity != "" {
		fmt.Fprintf(b, " %s", st.Identity)
	}
	if emergency != "" {
		fmt.Fprintf(b, " EMERGENCY=%s", emergency)
	}
	if st.Squawk != "" {
		fmt.Fprintf(b, " SQUAWK=%s", st.Squawk)
	}
	if onGround {
		b.WriteString(" On_Ground")
	}
}

// Symbol picks the display symbol from speed and altitude. The decision
// order matters: speed picks a candidate, then altitude can promote it to
// the large-aircraft symbol or demote a helicopter flying implausibly high.
func (c *Composer) Symbol(st track.State) byte {
	symbol := byte(SymbolSmallAircraft)
	if st.GroundSpeed != nil {
		speed := *st.GroundSpeed
		if speed > 0 && speed < helicopterMaxSpeed {
			symbol = SymbolHelicopter
		}
		if speed > largeAircraftSpeed {
			symbol = SymbolLargeAircraft
		}
	}

	if st.Altitude != nil {
		alt := *st.Altitude
		switch {
		case alt > largeAircraftAlt:
			symbol = SymbolLargeAircraft
		case symbol == SymbolLargeAircraft:
			// keep
		case symbol == SymbolHelicopter && alt > helicopterCeilingAlt:
			symbol = SymbolSmallAircraft
		}
	}
	return symbol
}

// displayTrack renders the course field: 360 substitutes for an unknown or
// zero track so the field is never "000" (which some displays drop).
func displayTrack(st track.State) string {
	if st.Track == nil || *st.Track == 0 {
		return "360"
	}
	return fmt.Sprintf("%03d", *st.Track)
}

func displaySpeed(st track.State) string {
	if st.GroundSpeed == nil {
		return "000"
	}
	return fmt.Sprintf("%03d", *st.GroundSpeed)
}
