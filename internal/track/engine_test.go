package track

import (
	"testing"
	"time"

	"adsb2aprs/internal/sbs"
)

func mustParse(t *testing.T, line string) *sbs.Record {
	t.Helper()
	rec, err := sbs.Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	return rec
}

func TestApplyPositionAndAltitude(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	line := "MSG,3,,,A0CF8D,,,,,,,28000,,,47.87670,-122.27269,,,0,0,0,0"
	res, err := engine.Apply(mustParse(t, line), now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	st := res.State
	if st.Registry != "U.S." {
		t.Errorf("Registry = %q, want U.S.", st.Registry)
	}
	if st.Altitude == nil || *st.Altitude != 28000 {
		t.Errorf("Altitude = %v, want 28000", st.Altitude)
	}
	if st.Latitude != "4752.60N" || st.Longitude != "12216.36W" {
		t.Errorf("position = %q %q", st.Latitude, st.Longitude)
	}
	if st.DirtyCount != 2 {
		t.Errorf("DirtyCount = %d, want 2 (altitude + position)", st.DirtyCount)
	}
	if !res.TacticalAssigned {
		t.Error("first position fix should assign the tactical label")
	}
	if st.TacticalLabel != "A0CF8D (U.S.)" {
		t.Errorf("TacticalLabel = %q", st.TacticalLabel)
	}
	if !st.PositionTime.Equal(now) {
		t.Errorf("PositionTime = %v, want %v", st.PositionTime, now)
	}
}

func TestApplyIdenticalRecordStaysClean(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)
	now := time.Now()
	line := "MSG,3,,,A0CF8D,,,,,,,28000,,,47.87670,-122.27269,,,0,0,0,0"

	res, err := engine.Apply(mustParse(t, line), now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	store.MarkReported(res.State.Address)

	res, err = engine.Apply(mustParse(t, line), now.Add(100*time.Millisecond))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Dirty {
		t.Errorf("identical record set DirtyCount = %d, want 0", res.State.DirtyCount)
	}
	if res.TacticalAssigned {
		t.Error("tactical label reassigned on identical record")
	}
	if !res.State.PositionTime.Equal(now) {
		t.Error("unchanged fix must not refresh PositionTime")
	}
}

func TestApplyVelocityOnly(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)

	line := "MSG,4,,,A0F4F6,,,,,,,,175,152,,,-1152,,0,0,0,0"
	res, err := engine.Apply(mustParse(t, line), time.Now())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	st := res.State
	if st.GroundSpeed == nil || *st.GroundSpeed != 175 {
		t.Errorf("GroundSpeed = %v, want 175", st.GroundSpeed)
	}
	if st.Track == nil || *st.Track != 152 {
		t.Errorf("Track = %v, want 152", st.Track)
	}
	if st.HasPosition() {
		t.Error("velocity record must not create a position")
	}
	if st.DirtyCount != 2 {
		t.Errorf("DirtyCount = %d, want 2 (speed + track)", st.DirtyCount)
	}
}

func TestAltitudeSubtypeGating(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)

	// Subtype 4 never applies altitude, even when the field is present.
	line := "MSG,4,,,ABC123,,,,,,,31000,400,90,,,,,0,0,0,0"
	res, err := engine.Apply(mustParse(t, line), time.Now())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.State.Altitude != nil {
		t.Errorf("Altitude = %v applied on subtype 4", res.State.Altitude)
	}

	// Zero altitude on a valid subtype is treated as no data.
	line = "MSG,5,,,ABC123,,,,,,,0,,,,,,,0,0,0,0"
	res, err = engine.Apply(mustParse(t, line), time.Now())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.State.Altitude != nil {
		t.Errorf("Altitude = %v applied from zero value", res.State.Altitude)
	}
}

func TestIdentityAssignsTacticalOnce(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)
	now := time.Now()

	res, err := engine.Apply(mustParse(t, "MSG,1,,,A0CF8D,,,,,,SWA1234 ,,,,,,,,0,0,0,0"), now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.State.Identity != "SWA1234" {
		t.Errorf("Identity = %q, want SWA1234", res.State.Identity)
	}
	if !res.TacticalAssigned {
		t.Error("first identity should assign the tactical label")
	}
	if res.State.TacticalLabel != "SWA1234 (U.S.)" {
		t.Errorf("TacticalLabel = %q", res.State.TacticalLabel)
	}

	// A later, different identity changes the field but never the label.
	res, err = engine.Apply(mustParse(t, "MSG,1,,,A0CF8D,,,,,,SWA999,,,,,,,,0,0,0,0"), now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.TacticalAssigned {
		t.Error("tactical label reassigned")
	}
	if res.State.Identity != "SWA999" {
		t.Errorf("Identity = %q, want SWA999", res.State.Identity)
	}
	if res.State.TacticalLabel != "SWA1234 (U.S.)" {
		t.Errorf("TacticalLabel changed to %q", res.State.TacticalLabel)
	}
	if res.State.DirtyCount == 0 {
		t.Error("changed identity should dirty the aircraft")
	}
}

func TestIdentityBeforePositionUsesBareLabelForUnknownRegistry(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)

	// 0xD12345 sits in a block ICAO never placed.
	res, err := engine.Apply(mustParse(t, "ID,,,,D12345,,,,,,TEST99"), time.Now())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.State.TacticalLabel != "TEST99" {
		t.Errorf("TacticalLabel = %q, want bare identity for unknown registry", res.State.TacticalLabel)
	}
}

func TestIdentityPlaceholderIgnored(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)

	res, err := engine.Apply(mustParse(t, "MSG,1,,,A0CF8D,,,,,,????????,,,,,,,,0,0,0,0"), time.Now())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.State.Identity != "" || res.Dirty {
		t.Errorf("placeholder callsign applied: identity %q dirty %v", res.State.Identity, res.Dirty)
	}
}

func TestSquawkAndEmergency(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)
	now := time.Now()

	res, err := engine.Apply(mustParse(t, "MSG,6,,,A0F4F6,,,,,,,,,,,,,7700,,-1,0,0"), now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.State.Squawk != "7700" {
		t.Errorf("Squawk = %q, want 7700", res.State.Squawk)
	}
	if res.Emergency != EmergencyGeneral {
		t.Errorf("Emergency = %q, want %q", res.Emergency, EmergencyGeneral)
	}
	// squawk change + emergency condition
	if res.State.DirtyCount != 2 {
		t.Errorf("DirtyCount = %d, want 2", res.State.DirtyCount)
	}

	res, err = engine.Apply(mustParse(t, "MSG,6,,,A0F4F6,,,,,,,,,,,,,7500,,-1,0,0"), now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Emergency != EmergencyHijacking {
		t.Errorf("Emergency = %q, want %q", res.Emergency, EmergencyHijacking)
	}

	res, err = engine.Apply(mustParse(t, "MSG,6,,,A0F4F6,,,,,,,,,,,,,7600,,-1,0,0"), now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Emergency != EmergencyCommsFailure {
		t.Errorf("Emergency = %q, want %q", res.Emergency, EmergencyCommsFailure)
	}
}

func TestOnGroundDirtiesWithoutPersisting(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)

	res, err := engine.Apply(mustParse(t, "MSG,2,,,ABC124,,,,,,,,,,,,,,0,0,0,1"), time.Now())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !res.OnGround {
		t.Error("OnGround not surfaced")
	}
	if res.State.DirtyCount != 1 {
		t.Errorf("DirtyCount = %d, want 1", res.State.DirtyCount)
	}
}

func TestApplyBadAddress(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)

	if _, err := engine.Apply(mustParse(t, "MSG,3,,,NOTHEX,,,,,,,1000,,,,,,,0,0,0,0"), time.Now()); err == nil {
		t.Error("Apply accepted an unparseable address")
	}
	if store.Count() != 0 {
		t.Error("bad address created state")
	}
}

func TestSweepEvictsSilentAircraft(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store)
	start := time.Now()

	if _, err := engine.Apply(mustParse(t, "MSG,4,,,A00001,,,,,,,,100,90,,,,,0,0,0,0"), start); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := engine.Apply(mustParse(t, "MSG,4,,,A00002,,,,,,,,100,90,,,,,0,0,0,0"), start.Add(30*time.Minute)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	removed := store.Sweep(start.Add(61*time.Minute), time.Hour)
	if removed != 1 || store.Count() != 1 {
		t.Errorf("Sweep removed %d, %d left; want 1 and 1", removed, store.Count())
	}
}

func TestFormatDegrees(t *testing.T) {
	tests := []struct {
		lat  bool
		deg  float64
		want string
	}{
		{true, 47.87670, "4752.60N"},
		{false, -122.27269, "12216.36W"},
		{true, -33.946111, "3356.77S"},
		{false, 151.177222, "15110.63E"},
		{true, 0, "0000.00N"},
		{false, 0, "00000.00E"},
	}
	for _, tc := range tests {
		var got string
		if tc.lat {
			got = FormatLatitude(tc.deg)
		} else {
			got = FormatLongitude(tc.deg)
		}
		if got != tc.want {
			t.Errorf("format(%v) = %q, want %q", tc.deg, got, tc.want)
		}
	}
}
