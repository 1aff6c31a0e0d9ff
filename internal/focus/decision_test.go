package focus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"launch-focus/internal/wm"
)

func windowsFor(app string, ids ...int64) []wm.Window {
	out := make([]wm.Window, 0, len(ids))
	for _, id := range ids {
		out = append(out, wm.Window{ID: id, App: app})
	}
	return out
}

func TestDecideCycleNoOpForSingleOrNoWindow(t *testing.T) {
	focused := wm.Window{ID: 5, App: "Terminal"}

	for _, windows := range [][]wm.Window{nil, windowsFor("Terminal", 5), windowsFor("Terminal", 8)} {
		d := Decide("Terminal", focused, true, windows)
		assert.Equal(t, ActionNone, d.Action, "windows=%v", windows)
		assert.Zero(t, d.WindowID)
	}
}

func TestDecideCycleAdvancesWithWrapAround(t *testing.T) {
	for n := 2; n <= 5; n++ {
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(100 + i)
		}
		windows := windowsFor("Code", ids...)

		for i := 0; i < n; i++ {
			t.Run(fmt.Sprintf("n=%d/i=%d", n, i), func(t *testing.T) {
				d := Decide("Code", windows[i], true, windows)
				assert.Equal(t, ActionCycle, d.Action)
				assert.Equal(t, windows[(i+1)%n].ID, d.WindowID)
			})
		}
	}

	// Explicit wrap from the last window back to the first
	windows := windowsFor("Terminal", 5, 9, 12)
	d := Decide("Terminal", windows[2], true, windows)
	assert.Equal(t, ActionCycle, d.Action)
	assert.Equal(t, int64(5), d.WindowID)
}

func TestDecideStaleFocusedWindowIsNoOp(t *testing.T) {
	focused := wm.Window{ID: 42, App: "Terminal"}
	d := Decide("Terminal", focused, true, windowsFor("Terminal", 5, 9))

	assert.Equal(t, ActionNone, d.Action)
	assert.Zero(t, d.WindowID)
}

func TestDecideDirectFocusPicksFirstWindow(t *testing.T) {
	tests := []struct {
		name       string
		focused    wm.Window
		hasFocused bool
	}{
		{name: "other app focused", focused: wm.Window{ID: 1, App: "Finder"}, hasFocused: true},
		{name: "nothing focused", hasFocused: false},
		{name: "case differs", focused: wm.Window{ID: 3, App: "safari"}, hasFocused: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide("Safari", tt.focused, tt.hasFocused, windowsFor("Safari", 30, 20, 10))
			assert.Equal(t, ActionDirectFocus, d.Action)
			assert.Equal(t, int64(30), d.WindowID)
		})
	}
}

func TestDecideAbsentFocusNeverCycles(t *testing.T) {
	// A zero Window with App == target must not be mistaken for focus
	d := Decide("", wm.Window{}, false, nil)
	assert.Equal(t, ActionActivate, d.Action)
}

func TestDecideActivateWhenNoWindows(t *testing.T) {
	d := Decide("Safari", wm.Window{ID: 1, App: "Finder"}, true, nil)
	assert.Equal(t, ActionActivate, d.Action)
	assert.Equal(t, "Safari", d.App)

	d = Decide("Safari", wm.Window{}, false, []wm.Window{})
	assert.Equal(t, ActionActivate, d.Action)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "direct-focus", ActionDirectFocus.String())
	assert.Equal(t, "activate-only", ActionActivateOnly.String())
	assert.Equal(t, "Action(99)", Action(99).String())

	text, err := ActionLaunch.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "launch", string(text))
}
