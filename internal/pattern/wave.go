package pattern

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-ambient/internal/core"
)

// Field tuning constants. The exact values only shape the visual character;
// correctness needs the field to be continuous in x, y and time.
const (
	waveFreqX    = 0.2
	waveFreqY    = 0.1
	waveFreqDiag = 0.1
	waveAmpX     = 5.0
	waveAmpY     = 3.0
	waveAmpDiag  = 2.0
)

// WaveConfig holds the tunables for a Wave pattern.
type WaveConfig struct {
	// Speed multiplies the simulated time accumulation.
	Speed float64
	// Chars is the glyph ramp from calm to crest. Must not be empty;
	// empty input falls back to the default ramp.
	Chars []rune
}

// DefaultWaveConfig returns the standard wave tuning.
func DefaultWaveConfig() WaveConfig {
	return WaveConfig{
		Speed: 2.0,
		Chars: []rune{'░', '▒', '▓', '█'},
	}
}

// Wave is a deterministic scalar-field pattern: every cell gets a glyph from
// the ramp based on the sum of three offset sine waves over (x, y, time).
// Identical (area, time, speed, ramp) always renders identical output.
type Wave struct {
	elapsed float64
	speed   float64
	chars   []rune
}

// NewWave creates a wave pattern. Zero-valued config fields fall back to the
// defaults, so NewWave(WaveConfig{}) behaves like NewWave(DefaultWaveConfig()).
func NewWave(cfg WaveConfig) *Wave {
	def := DefaultWaveConfig()
	if cfg.Speed == 0 {
		cfg.Speed = def.Speed
	}
	if len(cfg.Chars) == 0 {
		cfg.Chars = def.Chars
	}
	return &Wave{
		speed: cfg.Speed,
		chars: cfg.Chars,
	}
}

// Update accumulates simulated time. The accumulator only grows; a wave never
// rewinds itself.
func (w *Wave) Update(delta time.Duration) {
	w.elapsed += delta.Seconds() * w.speed
}

// Render paints every cell of area with a glyph from the ramp.
func (w *Wave) Render(area core.Rect, dst *core.Screen) {
	if area.Empty() {
		return
	}

	ramp := float64(len(w.chars)) / 20.0
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			fx := float64(x)
			fy := float64(y)
			field := math.Sin(fx*waveFreqX-w.elapsed*2.0)*waveAmpX +
				math.Cos(fy*waveFreqY+w.elapsed)*waveAmpY +
				math.Sin((fx+fy)*waveFreqDiag-w.elapsed*1.5)*waveAmpDiag

			// Normalize the field into [0, len) and floor to an index.
			// NaN from degenerate inputs falls back to index 0.
			normalized := (field + 10.0) * ramp
			idx := 0
			if f := math.Floor(math.Abs(normalized)); !math.IsNaN(f) {
				idx = int(f) % len(w.chars)
			}
			dst.Set(x, y, w.chars[idx])
		}
	}
}
