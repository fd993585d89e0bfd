package pattern

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-ambient/internal/core"
)

// fallRate scales vertical drop speed relative to the pattern speed, so a
// drop crosses the whole area in roughly a tenth of the pattern time unit.
const fallRate = 10.0

// Glyph roles inside the rain character set.
const (
	rainGlyphLanding = iota // head on the bottommost row
	rainGlyphFalling        // head mid-fall
	rainGlyphTrail          // one row above the head
)

// RainConfig holds the tunables for a Rain pattern.
type RainConfig struct {
	// Speed multiplies both time accumulation and fall speed.
	Speed float64
	// Chars holds the three glyphs: landing head, falling head, trail.
	// Sets with fewer than three glyphs fall back to the defaults.
	Chars []rune
	// DropChance is the per-update probability of spawning a drop,
	// clamped to [0, 1] at construction.
	DropChance float64
	// Seed feeds this instance's random source. Zero means seed from the
	// current time. Every Rain owns its own generator so two instances
	// animate independently and seeded runs reproduce exactly.
	Seed int64
}

// DefaultRainConfig returns the standard rain tuning.
func DefaultRainConfig() RainConfig {
	return RainConfig{
		Speed:      1.0,
		Chars:      []rune{'│', '╵', '·'},
		DropChance: 0.3,
	}
}

// drop is one falling particle. Coordinates are normalized fractions of the
// render area (x in [0,1), y alive while < 1), which keeps the simulation
// independent of the area size.
type drop struct {
	x, y float64
}

// Rain is a stochastic particle pattern: drops spawn at the top edge at
// random columns and fall until they cross the bottom.
type Rain struct {
	elapsed    float64
	speed      float64
	drops      []drop
	chars      []rune
	dropChance float64
	rng        *rand.Rand
}

// NewRain creates a rain pattern. Zero Speed, short Chars and zero Seed fall
// back to the defaults. DropChance is taken as given and clamped to [0, 1];
// zero is a legal value meaning drops never spawn on their own.
func NewRain(cfg RainConfig) *Rain {
	def := DefaultRainConfig()
	if cfg.Speed == 0 {
		cfg.Speed = def.Speed
	}
	if len(cfg.Chars) < 3 {
		cfg.Chars = def.Chars
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Rain{
		speed:      cfg.Speed,
		drops:      make([]drop, 0, 16),
		chars:      cfg.Chars,
		dropChance: core.ClampF(cfg.DropChance, 0.0, 1.0),
		rng:        rand.New(rand.NewSource(cfg.Seed)),
	}
}

// AddDrop places a drop directly at normalized coordinates, bypassing the
// spawn roll. Used by tests and to pre-warm a freshly created pattern.
func (r *Rain) AddDrop(x, y float64) {
	r.drops = append(r.drops, drop{x: x, y: y})
}

// DropCount returns the number of live drops.
func (r *Rain) DropCount() int {
	return len(r.drops)
}

// Update advances time, rolls one spawn trial and moves every drop, removing
// those that fall past the bottom in the same pass.
func (r *Rain) Update(delta time.Duration) {
	ds := delta.Seconds()
	r.elapsed += ds * r.speed

	if r.rng.Float64() < r.dropChance {
		r.drops = append(r.drops, drop{x: r.rng.Float64()})
	}

	live := r.drops[:0]
	for _, d := range r.drops {
		d.y += ds * r.speed * fallRate
		if d.y < 1.0 {
			live = append(live, d)
		}
	}
	r.drops = live
}

// Render paints every live drop into area. A drop on the bottommost row gets
// the landing glyph, otherwise the falling glyph, plus a trail glyph one row
// above when the head is not on the topmost row. Overlapping drops simply
// overwrite each other in iteration order.
func (r *Rain) Render(area core.Rect, dst *core.Screen) {
	if area.Empty() {
		return
	}

	for _, d := range r.drops {
		x := mapToCell(d.x, area.X, area.W)
		y := mapToCell(d.y, area.Y, area.H)

		glyph := r.chars[rainGlyphFalling]
		if y == area.Bottom()-1 {
			glyph = r.chars[rainGlyphLanding]
		}
		dst.Set(x, y, glyph)

		if y > area.Y {
			dst.Set(x, y-1, r.chars[rainGlyphTrail])
		}
	}
}

// mapToCell scales a normalized coordinate by (size-1) into a cell inside
// [origin, origin+size), clamping to valid bounds. Non-finite results
// collapse to the origin instead of escaping the area.
func mapToCell(v float64, origin, size int) int {
	pos := core.ClampF(v*float64(size-1), 0.0, float64(size-1))
	if math.IsNaN(pos) {
		return origin
	}
	return origin + int(math.Floor(pos))
}
