// Package sbs reads and parses BaseStation ("SBS-1") format surveillance
// records: one comma-delimited record per line, as emitted on a dump1090
// port-30003 feed.
package sbs

import (
	"fmt"
	"strconv"
	"strings"
)

// Well-known message kinds. Transmission messages (MSG) carry telemetry;
// the ID sentence carries only the callsign.
const (
	KindTransmission = "MSG"
	KindIdentity     = "ID"
)

// Field positions within a record. Trailing fields may be entirely absent on
// short records, so every access past the address must be length-guarded.
const (
	fieldKind = iota
	fieldSubtype
	fieldSession
	fieldAircraftID
	fieldAddress
	fieldFlightID
	fieldDateGenerated
	fieldTimeGenerated
	fieldDateLogged
	fieldTimeLogged
	fieldCallsign
	fieldAltitude
	fieldGroundSpeed
	fieldTrack
	fieldLatitude
	fieldLongitude
	fieldVerticalRate
	fieldSquawk
	fieldAlert
	fieldEmergency
	fieldIdent
	fieldOnGround
)

// minFields is the minimum viable record shape: kind, subtype, and the
// address must all be present.
const minFields = fieldAddress + 1

// EmergencyActive is the value of the emergency field when the transponder
// is declaring an emergency.
const EmergencyActive = "-1"

// Record is one parsed surveillance record. Telemetry fields are pointers so
// that "absent" is distinct from a present zero value.
type Record struct {
	Kind    string
	Subtype int // -1 when absent
	Address string

	Callsign     string // empty when absent
	Altitude     *int
	GroundSpeed  *int
	Track        *int
	Latitude     *float64
	Longitude    *float64
	VerticalRate *int
	Squawk       string // empty when absent
	Emergency    string // raw field value; see EmergencyActive
	OnGround     bool

	// Fields is the raw positional vector, for fields whose meaning depends
	// on the subtype.
	Fields []string
}

// EmergencyDeclared reports whether the record carries an active emergency.
func (r *Record) EmergencyDeclared() bool {
	return r.Emergency == EmergencyActive
}

// Parse splits one feed line into a Record. It returns an error for lines
// that lack the minimum viable shape; callers are expected to skip those
// without touching any state.
func Parse(line string) (*Record, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, fmt.Errorf("empty record")
	}

	// No TrimSpace on the split results beyond what individual fields need:
	// empty trailing fields are significant for positional indexing.
	fields := strings.Split(line, ",")
	if len(fields) < minFields {
		return nil, fmt.Errorf("short record: %d fields", len(fields))
	}

	rec := &Record{
		Kind:    fields[fieldKind],
		Subtype: -1,
		Address: strings.TrimSpace(fields[fieldAddress]),
		Fields:  fields,
	}
	if rec.Kind == "" {
		return nil, fmt.Errorf("missing message kind")
	}
	if rec.Address == "" {
		return nil, fmt.Errorf("missing aircraft address")
	}
	if s := strings.TrimSpace(fields[fieldSubtype]); s != "" {
		if st, err := strconv.Atoi(s); err == nil {
			rec.Subtype = st
		}
	}

	rec.Callsign = stringField(fields, fieldCallsign)
	rec.Altitude = intField(fields, fieldAltitude)
	rec.GroundSpeed = intField(fields, fieldGroundSpeed)
	rec.Track = intField(fields, fieldTrack)
	rec.Latitude = floatField(fields, fieldLatitude)
	rec.Longitude = floatField(fields, fieldLongitude)
	rec.VerticalRate = intField(fields, fieldVerticalRate)
	rec.Squawk = stringField(fields, fieldSquawk)
	rec.Emergency = stringField(fields, fieldEmergency)
	rec.OnGround = stringField(fields, fieldOnGround) == "1"

	return rec, nil
}

func stringField(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func intField(fields []string, i int) *int {
	s := stringField(fields, i)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Some feeds emit fractional speeds; accept them by truncation.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil
		}
		v = int(f)
	}
	return &v
}

func floatField(fields []string, i int) *float64 {
	s := stringField(fields, i)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
