// Package heightfield implements the layered height-field synthesizer.
//
// A Synthesizer owns an ordered set of noise layers and an elevation range.
// Layers are materialized by Bake, which keeps any explicit layers and fills
// the remaining slots with randomly synthesized ones. Sample blends every
// layer's noise contribution, weighted by its share of the total weight and
// clamped into the elevation range, into a single elevation.
package heightfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/terrain-synth/internal/core"
)

var (
	// ErrInvalidBounds is returned when an elevation range has min > max.
	ErrInvalidBounds = errors.New("heightfield: min elevation exceeds max elevation")

	// ErrNegativeWeight is returned when a layer weight is negative or NaN.
	ErrNegativeWeight = errors.New("heightfield: layer weight must be non-negative")

	// ErrNonFinite is returned when a layer has an infinite or NaN component.
	ErrNonFinite = errors.New("heightfield: layer values must be finite")

	// ErrInvalidShape is returned when a terrain-shape descriptor cannot drive baking.
	ErrInvalidShape = errors.New("heightfield: invalid terrain shape")

	// ErrInvalidGrid is returned when a sampling grid has no vertices.
	ErrInvalidGrid = errors.New("heightfield: invalid grid")
)

// Layer is one noise contribution to the height field.
type Layer struct {
	Offset core.Vec2 // Shifts sampled coordinates before the noise lookup
	Scale  core.Vec3 // X/Y: horizontal frequency, Z: vertical amplitude
	Weight float64   // Relative influence; normalized across all layers
}

// NewLayer creates a layer, rejecting negative weights.
func NewLayer(offset core.Vec2, scale core.Vec3, weight float64) (Layer, error) {
	l := Layer{Offset: offset, Scale: scale, Weight: weight}
	if err := l.Validate(); err != nil {
		return Layer{}, err
	}
	return l, nil
}

// Validate reports whether the layer can take part in blending.
func (l Layer) Validate() error {
	if l.Weight < 0 || math.IsNaN(l.Weight) {
		return fmt.Errorf("%w: got %v", ErrNegativeWeight, l.Weight)
	}
	for _, v := range []float64{l.Weight, l.Offset.X, l.Offset.Y, l.Scale.X, l.Scale.Y, l.Scale.Z} {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: offset %v, scale %v, weight %v", ErrNonFinite, l.Offset, l.Scale, l.Weight)
		}
	}
	return nil
}

// Bounds is the elevation range every per-layer contribution is clamped into.
type Bounds struct {
	Min float64
	Max float64
}

// NewBounds creates an elevation range. min must not exceed max.
func NewBounds(min, max float64) (Bounds, error) {
	b := Bounds{Min: min, Max: max}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// DefaultBounds returns the (0, 10) range used when nothing is configured.
func DefaultBounds() Bounds {
	return Bounds{Min: 0, Max: 10}
}

// Validate checks min <= max.
func (b Bounds) Validate() error {
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || b.Min > b.Max {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidBounds, b.Min, b.Max)
	}
	return nil
}

// Clamp restricts v to [Min, Max].
func (b Bounds) Clamp(v float64) float64 {
	return core.ClampF(v, b.Min, b.Max)
}
