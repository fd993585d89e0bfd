// Package pattern implements time-driven glyph animations that paint into a
// core.Screen. Patterns contain pure simulation state with no external
// dependencies; the platform layer owns the clock and feeds them deltas.
package pattern

import (
	"time"

	"github.com/vovakirdan/tui-ambient/internal/core"
)

// Pattern is the contract every animated pattern implements.
//
// Update advances the simulation by exactly delta; patterns never read the
// wall clock themselves, so a driver can feed synthetic deltas in tests.
// Render paints the current state into the area of dst. It must not mutate
// pattern state, may be called any number of times between updates, and
// leaves cells it does not paint untouched.
type Pattern interface {
	Update(delta time.Duration)
	Render(area core.Rect, dst *core.Screen)
}
