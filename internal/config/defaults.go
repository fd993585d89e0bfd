package config

import (
	_ "embed"
)

//go:embed defaults/ambient.yaml
var defaultAmbientYAML []byte

// Default returns the hardcoded fallback configuration, used when even the
// embedded YAML cannot be parsed.
func Default() AmbientConfig {
	return AmbientConfig{
		Wave: WaveConfig{
			Speed: 2.0,
			Chars: "░▒▓█",
		},
		Rain: RainConfig{
			Speed:      1.0,
			Chars:      "│╵·",
			DropChance: 0.3,
		},
		Grid: GridConfig{
			MinColumnWidth: 30,
			MaxColumns:     4,
		},
	}
}
