package main

import (
	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/pattern"
	"github.com/vovakirdan/tui-ambient/internal/registry"
)

// The built-in patterns are registered here rather than in the pattern
// package, which stays free of registry and config concerns.
func init() {
	registry.Register("wave", "Ambient Waves", func(cfg config.AmbientConfig) pattern.Pattern {
		return pattern.NewWave(pattern.WaveConfig{
			Speed: cfg.Wave.Speed,
			Chars: []rune(cfg.Wave.Chars),
		})
	})

	registry.Register("rain", "Falling Rain", func(cfg config.AmbientConfig) pattern.Pattern {
		return pattern.NewRain(pattern.RainConfig{
			Speed:      cfg.Rain.Speed,
			Chars:      []rune(cfg.Rain.Chars),
			DropChance: cfg.Rain.DropChance,
			Seed:       cfg.Seed,
		})
	})
}
