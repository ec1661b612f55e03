// Package monitor is an optional full-screen console view of the aircraft
// the gateway is currently tracking and uplinking. It reads store snapshots
// only; nothing in the pipeline depends on it.
package monitor

import (
	"context"
	"fmt"
	"time"

	"adsb2aprs/internal/track"

	"github.com/gdamore/tcell/v2"
)

// View renders the tracked-aircraft table and drives its own event loop.
type View struct {
	screen       tcell.Screen
	store        *track.Store
	scrollOffset int
	stop         func()
}

// New initializes the terminal. stop is invoked when the operator quits the
// view; it should shut the whole pipeline down.
func New(store *track.Store, stop func()) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	return &View{screen: screen, store: store, stop: stop}, nil
}

// Run draws until the context is cancelled or the operator quits.
func (v *View) Run(ctx context.Context) {
	defer v.screen.Fini()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			v.draw()

		default:
			if v.screen.HasPendingEvent() {
				if !v.handleEvent(v.screen.PollEvent()) {
					v.stop()
					return
				}
			} else {
				time.Sleep(10 * time.Millisecond)
			}
		}
	}
}

func (v *View) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			if v.scrollOffset > 0 {
				v.scrollOffset--
			}
		case tcell.KeyDown:
			v.scrollOffset++
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return false
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *View) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	now := time.Now()

	aircraft := v.store.Snapshot()
	stats := v.store.Stats()

	header := fmt.Sprintf("adsb2aprs  tracked:%d  pos:%d  alt:%d  (q to quit)",
		stats.Tracked, stats.WithPosition, stats.WithAltitude)
	v.drawLine(0, 0, width, header, tcell.StyleDefault.Reverse(true))

	columns := fmt.Sprintf("%-7s %-9s %-6s %-6s %-4s %-6s %-5s %-5s %s",
		"HEX", "IDENT", "ALT", "SPD", "TRK", "SQUAWK", "AGE", "BCNS", "REGISTRY")
	v.drawLine(0, 1, width, columns, tcell.StyleDefault.Bold(true))

	maxRows := height - 2
	if maxRows < 1 {
		return
	}
	if v.scrollOffset > len(aircraft)-maxRows {
		v.scrollOffset = len(aircraft) - maxRows
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}

	for i := 0; i < maxRows && v.scrollOffset+i < len(aircraft); i++ {
		st := aircraft[v.scrollOffset+i]
		v.drawLine(0, i+2, width, rowText(st, now), tcell.StyleDefault)
	}

	v.screen.Show()
}

func rowText(st track.State, now time.Time) string {
	alt, spd, trk := "-", "-", "-"
	if st.Altitude != nil {
		alt = fmt.Sprintf("%d", *st.Altitude)
	}
	if st.GroundSpeed != nil {
		spd = fmt.Sprintf("%d", *st.GroundSpeed)
	}
	if st.Track != nil {
		trk = fmt.Sprintf("%d", *st.Track)
	}
	squawk := st.Squawk
	if squawk == "" {
		squawk = "-"
	}
	age := int(now.Sub(st.LastSeen).Seconds())

	return fmt.Sprintf("%-7s %-9s %-6s %-6s %-4s %-6s %-5d %-5d %s",
		st.Hex, st.Identity, alt, spd, trk, squawk, age, st.Beacons, st.Registry)
}

func (v *View) drawLine(x, y, width int, text string, style tcell.Style) {
	for i := 0; i < width; i++ {
		ch := ' '
		if i < len(text) {
			ch = rune(text[i])
		}
		v.screen.SetContent(x+i, y, ch, nil, style)
	}
}
