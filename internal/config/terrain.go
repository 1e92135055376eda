package config

import (
	"fmt"

	"github.com/vovakirdan/terrain-synth/internal/core"
	"github.com/vovakirdan/terrain-synth/internal/heightfield"
	"github.com/vovakirdan/terrain-synth/internal/noise"
)

// Validate checks every section that feeds the synthesizer.
// It does not require the noise algorithm to be registered; see NoiseSource.
func (c Config) Validate() error {
	if _, err := c.BoundsValue(); err != nil {
		return err
	}
	if _, err := c.ExplicitLayers(); err != nil {
		return err
	}
	if _, err := c.PostProcessMode(); err != nil {
		return err
	}
	if c.Layers > len(c.Explicit) {
		// Density 0 is resolved at bake time, so check with a stand-in.
		shape := c.Shape(constantDraw(heightfield.MinDensity))
		if err := shape.Validate(); err != nil {
			return err
		}
	}
	if err := c.GridValue().Validate(); err != nil {
		return err
	}
	if r := c.Telemetry.SampleRatio; !core.IsFinite(r) || r < 0 || r > 1 {
		return fmt.Errorf("config: telemetry sample_ratio must be in [0, 1], got %v", r)
	}
	return nil
}

// BoundsValue converts the configured elevation range.
func (c Config) BoundsValue() (heightfield.Bounds, error) {
	return heightfield.NewBounds(c.Bounds.Min, c.Bounds.Max)
}

// Shape converts the terrain section. A zero density is drawn with
// heightfield.DrawDensity.
func (c Config) Shape(rng heightfield.RandomSource) heightfield.Shape {
	density := c.Terrain.Density
	if density == 0 {
		density = heightfield.DrawDensity(rng)
	}
	return heightfield.Shape{
		Width:          c.Terrain.Width,
		Length:         c.Terrain.Length,
		Density:        density,
		ElevationScale: c.Terrain.ElevationScale,
		RandomWeight:   c.Terrain.RandomWeight,
		WeightValue:    c.Terrain.WeightValue,
	}
}

// ExplicitLayers converts the explicit layers, rejecting negative weights.
func (c Config) ExplicitLayers() ([]heightfield.Layer, error) {
	layers := make([]heightfield.Layer, 0, len(c.Explicit))
	for i, lc := range c.Explicit {
		weight := 1.0
		if lc.Weight != nil {
			weight = *lc.Weight
		}
		l, err := heightfield.NewLayer(
			core.V2(lc.Offset[0], lc.Offset[1]),
			core.V3(lc.Scale[0], lc.Scale[1], lc.Scale[2]),
			weight,
		)
		if err != nil {
			return nil, fmt.Errorf("explicit_layers[%d]: %w", i, err)
		}
		layers = append(layers, l)
	}
	return layers, nil
}

// PostProcessMode parses post_process.
func (c Config) PostProcessMode() (heightfield.PostProcess, error) {
	return heightfield.ParsePostProcess(c.PostProcess)
}

// GridValue converts the grid section.
func (c Config) GridValue() heightfield.Grid {
	return heightfield.Grid{
		Width:     c.Grid.Width,
		Length:    c.Grid.Length,
		SegmentsX: c.Grid.SegmentsX,
		SegmentsY: c.Grid.SegmentsY,
	}
}

// NoiseSource creates the configured noise algorithm with the given seed.
func (c Config) NoiseSource(seed int64) (noise.Source, error) {
	return noise.Create(c.Noise.Algorithm, seed)
}

// constantDraw is a RandomSource that always returns v clamped into range.
type constantDraw float64

func (d constantDraw) Uniform(min, max float64) float64 {
	return core.ClampF(float64(d), min, max)
}
