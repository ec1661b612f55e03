package track

import (
	"strings"
	"time"

	"adsb2aprs/internal/registry"
	"adsb2aprs/internal/sbs"
)

// Emergency kinds derived from the reserved squawk codes.
const (
	EmergencyHijacking    = "Hijacking"
	EmergencyCommsFailure = "Comms-Failure"
	EmergencyGeneral      = "General"
)

const (
	squawkHijack       = "7500"
	squawkRadioFailure = "7600"
)

// Result describes what applying one record did. State is a post-apply value
// copy so report composition never races with later updates. Emergency and
// OnGround are per-record conditions: they count toward the dirty total but
// are not persisted, so they ride along here for the emitter.
type Result struct {
	State            State
	Dirty            bool
	TacticalAssigned bool
	Emergency        string // one of the Emergency* kinds, or empty
	OnGround         bool
}

// Engine applies parsed records to the store: field-by-field change
// detection, dirty counting, and the one-shot tactical label. It is the only
// component that mutates telemetry fields, and it must be driven from a
// single goroutine to preserve per-aircraft field-update ordering.
type Engine struct {
	store    *Store
	classify func(string) string
}

func NewEngine(store *Store) *Engine {
	return &Engine{store: store, classify: registry.ClassifyHex}
}

// Apply fuses one record into the addressed aircraft's state. The returned
// error only ever means the address itself was unusable; every other oddity
// in the record is a silent non-update of the affected field.
func (e *Engine) Apply(rec *sbs.Record, now time.Time) (Result, error) {
	addr, err := registry.ParseAddress(rec.Address)
	if err != nil {
		return Result{}, err
	}

	// Recomputed per record rather than cached: the classifier is pure and
	// cheap, and this keeps the stored label current if the table changes.
	label := e.classify(rec.Address)

	var res Result
	e.store.WithState(addr, strings.ToUpper(rec.Address), now, func(st *State) {
		st.Registry = label

		e.applyAltitude(st, rec)
		e.applyVelocity(st, rec)
		e.applyPosition(st, rec, now, &res)
		e.applyIdentity(st, rec, &res)
		e.applySquawk(st, rec)

		if rec.EmergencyDeclared() {
			st.DirtyCount++
			res.Emergency = emergencyKind(st.Squawk)
		}
		if rec.OnGround {
			st.DirtyCount++
			res.OnGround = true
		}

		res.State = *st
		res.Dirty = st.DirtyCount > 0
	})
	return res, nil
}

func subtypeIn(subtype int, set ...int) bool {
	for _, s := range set {
		if subtype == s {
			return true
		}
	}
	return false
}

// Altitude arrives on the airborne position and surveillance subtypes. A
// reported zero is treated as no data (pressure altitude of exactly 0 ft is
// indistinguishable from a decoder placeholder on this feed).
func (e *Engine) applyAltitude(st *State, rec *sbs.Record) {
	if !subtypeIn(rec.Subtype, 2, 3, 5, 6, 7) {
		return
	}
	if rec.Altitude == nil || *rec.Altitude == 0 {
		return
	}
	if st.Altitude == nil || *st.Altitude != *rec.Altitude {
		v := *rec.Altitude
		st.Altitude = &v
		st.DirtyCount++
	}
}

// Ground speed and track arrive on subtypes 2 and 4 and are change-detected
// independently of each other.
func (e *Engine) applyVelocity(st *State, rec *sbs.Record) {
	if !subtypeIn(rec.Subtype, 2, 4) {
		return
	}
	if rec.GroundSpeed != nil && (st.GroundSpeed == nil || *st.GroundSpeed != *rec.GroundSpeed) {
		v := *rec.GroundSpeed
		st.GroundSpeed = &v
		st.DirtyCount++
	}
	if rec.Track != nil && (st.Track == nil || *st.Track != *rec.Track) {
		v := *rec.Track
		st.Track = &v
		st.DirtyCount++
	}
}

func (e *Engine) applyPosition(st *State, rec *sbs.Record, now time.Time, res *Result) {
	if !subtypeIn(rec.Subtype, 2, 3) {
		return
	}
	if rec.Latitude == nil || rec.Longitude == nil {
		return
	}

	lat := FormatLatitude(*rec.Latitude)
	lon := FormatLongitude(*rec.Longitude)
	if lat == st.Latitude && lon == st.Longitude {
		// Unchanged fix: neither dirty nor a freshness bump.
		return
	}

	first := !st.HasPosition()
	st.Latitude = lat
	st.Longitude = lon
	st.PositionTime = now
	st.DirtyCount++

	if first && st.TacticalLabel == "" {
		st.TacticalLabel = collapseSpace(st.Hex + " (" + st.Registry + ")")
		res.TacticalAssigned = true
	}
}

func (e *Engine) applyIdentity(st *State, rec *sbs.Record, res *Result) {
	if rec.Kind != sbs.KindIdentity && !(rec.Kind == sbs.KindTransmission && rec.Subtype == 1) {
		return
	}
	if rec.Callsign == "" || rec.Callsign == strings.Repeat("?", len(rec.Callsign)) {
		return
	}

	ident := stripToAlnum(rec.Callsign)
	if ident == "" || ident == st.Identity {
		return
	}

	st.Identity = ident
	st.DirtyCount++

	if st.TacticalLabel == "" {
		// Assigned here even when the registry is still the unknown
		// sentinel; the label never changes afterward, so an identity that
		// beats the first position fix pins whatever label it builds now.
		label := ident
		if st.Registry != registry.Unknown && st.Registry != "" {
			label = ident + " (" + st.Registry + ")"
		}
		st.TacticalLabel = collapseSpace(label)
		res.TacticalAssigned = true
	}
}

// Squawk is applied whenever present, regardless of kind or subtype.
func (e *Engine) applySquawk(st *State, rec *sbs.Record) {
	if rec.Squawk == "" {
		return
	}
	if rec.Squawk != st.Squawk {
		st.Squawk = rec.Squawk
		st.DirtyCount++
	}
}

func emergencyKind(squawk string) string {
	switch squawk {
	case squawkHijack:
		return EmergencyHijacking
	case squawkRadioFailure:
		return EmergencyCommsFailure
	default:
		return EmergencyGeneral
	}
}

func stripToAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
