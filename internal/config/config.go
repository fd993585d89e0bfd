// Package config provides YAML-based configuration loading for the ambient
// patterns and the gallery grid.
package config

// AmbientConfig is the root configuration for the toolkit's demo app.
type AmbientConfig struct {
	Wave WaveConfig `yaml:"wave"`
	Rain RainConfig `yaml:"rain"`
	Grid GridConfig `yaml:"grid"`

	// Seed feeds stochastic patterns. Set by the caller (CLI flag or SSH
	// session), never from YAML; zero means time-based.
	Seed int64 `yaml:"-"`
}

// WaveConfig tunes the wave pattern.
type WaveConfig struct {
	Speed float64 `yaml:"speed"`
	Chars string  `yaml:"chars"`
}

// RainConfig tunes the rain pattern.
type RainConfig struct {
	Speed      float64 `yaml:"speed"`
	Chars      string  `yaml:"chars"`
	DropChance float64 `yaml:"drop_chance"`
}

// GridConfig tunes the responsive gallery grid.
type GridConfig struct {
	MinColumnWidth int `yaml:"min_column_width"`
	MaxColumns     int `yaml:"max_columns"`
}

// Normalize clamps out-of-range values in place so downstream code never
// sees them. Zero values are left alone; they mean "use the pattern default".
func (c *AmbientConfig) Normalize() {
	if c.Rain.DropChance < 0 {
		c.Rain.DropChance = 0
	}
	if c.Rain.DropChance > 1 {
		c.Rain.DropChance = 1
	}
	if c.Wave.Speed < 0 {
		c.Wave.Speed = 0
	}
	if c.Rain.Speed < 0 {
		c.Rain.Speed = 0
	}
	if c.Grid.MinColumnWidth < 1 {
		c.Grid.MinColumnWidth = Default().Grid.MinColumnWidth
	}
	if c.Grid.MaxColumns < 1 {
		c.Grid.MaxColumns = Default().Grid.MaxColumns
	}
}
