// Package config provides YAML-based configuration for terrain synthesis:
// the terrain shape used for baking, explicit layers, elevation bounds, the
// noise algorithm and the ambient settings of the command-line tools.
package config

// Config contains all terrain-synth settings.
type Config struct {
	Terrain     TerrainConfig   `yaml:"terrain"`
	Layers      int             `yaml:"layers"`       // Target layer count for baking
	Bounds      BoundsConfig    `yaml:"bounds"`       // Per-layer elevation clamp
	PostProcess string          `yaml:"post_process"` // "raw" or "recenter"
	Explicit    []LayerConfig   `yaml:"explicit_layers"`
	Noise       NoiseConfig     `yaml:"noise"`
	Grid        GridConfig      `yaml:"grid"`
	Logging     LoggingConfig   `yaml:"logging"`
	Telemetry   TelemetryConfig `yaml:"telemetry"`
	Storage     StorageConfig   `yaml:"storage"`
	Server      ServerConfig    `yaml:"server"`
}

// TerrainConfig describes the terrain synthetic layers are derived from.
type TerrainConfig struct {
	Width          float64 `yaml:"width"`
	Length         float64 `yaml:"length"`
	Density        float64 `yaml:"density"` // 0 = draw from [50, 150) at bake time
	ElevationScale float64 `yaml:"elevation_scale"`
	RandomWeight   bool    `yaml:"random_weight"`
	WeightValue    float64 `yaml:"weight_value"` // 0 = unset (behaves as 1)
}

// BoundsConfig is the elevation range.
type BoundsConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LayerConfig is one explicitly configured noise layer.
type LayerConfig struct {
	Offset [2]float64 `yaml:"offset"` // x, y
	Scale  [3]float64 `yaml:"scale"`  // horizontal x, horizontal y, vertical
	Weight *float64   `yaml:"weight"` // Defaults to 1 when omitted
}

// NoiseConfig selects the noise algorithm.
type NoiseConfig struct {
	Algorithm string `yaml:"algorithm"` // Registry name, e.g. "simplex"
	Seed      int64  `yaml:"seed"`      // 0 = random based on time
}

// GridConfig describes the plane sampled by grid commands.
type GridConfig struct {
	Width     float64 `yaml:"width"`
	Length    float64 `yaml:"length"`
	SegmentsX int     `yaml:"segments_x"`
	SegmentsY int     `yaml:"segments_y"`
	Workers   int     `yaml:"workers"` // 0 = GOMAXPROCS
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // Empty disables file output
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// TelemetryConfig toggles OpenTelemetry export.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRatio float64 `yaml:"sample_ratio"` // Fraction of root traces kept, in [0, 1]
}

// StorageConfig holds the preset database location.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig holds websocket sampler settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}
