package heightfield

import (
	"fmt"

	"github.com/vovakirdan/terrain-synth/internal/core"
)

// Shape describes the terrain a set of synthetic layers is derived from.
// It is only consulted while baking.
type Shape struct {
	Width          float64 // Extent along x; bounds the x offset draw
	Length         float64 // Extent along y; bounds the y offset draw
	Density        float64 // Vertex density; higher density lowers frequency
	ElevationScale float64 // Upper bound of each layer's vertical scale
	RandomWeight   bool    // Draw weights from [0, WeightValue) instead of 1
	WeightValue    float64 // 0 means unset and behaves as 1
}

// Density range used when a terrain leaves density unset.
const (
	MinDensity = 50.0
	MaxDensity = 150.0
)

// DrawDensity draws a vertex density from [MinDensity, MaxDensity).
func DrawDensity(rng RandomSource) float64 {
	return rng.Uniform(MinDensity, MaxDensity)
}

// Validate checks that every dimension is positive and finite.
func (s Shape) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"width", s.Width},
		{"length", s.Length},
		{"density", s.Density},
		{"elevation scale", s.ElevationScale},
	}
	for _, f := range fields {
		if !core.IsFinite(f.value) || f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidShape, f.name, f.value)
		}
	}
	if !core.IsFinite(s.WeightValue) || s.WeightValue < 0 {
		return fmt.Errorf("%w: weight value must be non-negative, got %v", ErrInvalidShape, s.WeightValue)
	}
	return nil
}

// weightValue returns WeightValue, treating 0 as 1.
func (s Shape) weightValue() float64 {
	if s.WeightValue == 0 {
		return 1
	}
	return s.WeightValue
}

// synthesizeLayer draws one random layer. Draw order is fixed so a
// fixed-sequence RandomSource yields predictable layers:
// scale factor, x offset, y offset, vertical scale, then weight (if random).
func (s Shape) synthesizeLayer(rng RandomSource) Layer {
	wv := s.weightValue()
	factor := rng.Uniform(0, 0.5)
	damping := s.ElevationScale / wv

	offsetX := rng.Uniform(0, s.Width)
	offsetY := rng.Uniform(0, s.Length)
	vertical := rng.Uniform(0, s.ElevationScale)

	weight := 1.0
	if s.RandomWeight {
		weight = rng.Uniform(0, wv)
	}

	return Layer{
		Offset: core.V2(offsetX, offsetY),
		Scale: core.V3(
			factor*(s.Width/s.Density)/damping,
			factor*(s.Length/s.Density)/damping,
			vertical,
		),
		Weight: weight,
	}
}
