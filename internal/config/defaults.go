package config

import (
	_ "embed"

	"github.com/vovakirdan/terrain-synth/internal/heightfield"
)

//go:embed defaults/terrain.yaml
var defaultYAML []byte

// Default returns the default configuration.
// It mirrors defaults/terrain.yaml.
func Default() Config {
	bounds := heightfield.DefaultBounds()
	grid := heightfield.DefaultGrid()

	return Config{
		Terrain: TerrainConfig{
			Width:          100,
			Length:         100,
			Density:        0,
			ElevationScale: 10,
			RandomWeight:   true,
			WeightValue:    5,
		},
		Layers:      10,
		Bounds:      BoundsConfig{Min: bounds.Min, Max: bounds.Max},
		PostProcess: "raw",
		Explicit:    []LayerConfig{},
		Noise: NoiseConfig{
			Algorithm: "simplex",
			Seed:      0,
		},
		Grid: GridConfig{
			Width:     grid.Width,
			Length:    grid.Length,
			SegmentsX: grid.SegmentsX,
			SegmentsY: grid.SegmentsY,
			Workers:   0,
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Telemetry: TelemetryConfig{Enabled: false, SampleRatio: 1},
		Storage:   StorageConfig{DBPath: "~/.terrain/presets.db"},
		Server:    ServerConfig{Address: ":8080"},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
