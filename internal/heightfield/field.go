package heightfield

import (
	"math"

	"github.com/vovakirdan/terrain-synth/internal/noise"
)

// Field is an immutable snapshot of a synthesizer's configuration.
// Sampling a Field takes no locks, so one snapshot can be shared by any
// number of goroutines.
type Field struct {
	layers         []Layer
	bounds         Bounds
	post           PostProcess
	elevationScale float64
	totalWeight    float64 // Raw sum, for reporting only

	// Weights are divided by maxWeight before summing so large weights
	// cannot overflow; share = (w/maxWeight) / scaledTotal.
	maxWeight   float64
	scaledTotal float64
}

func newField(layers []Layer, bounds Bounds, post PostProcess, elevationScale float64) Field {
	var total, maxWeight float64
	for _, l := range layers {
		total += l.Weight
		maxWeight = math.Max(maxWeight, l.Weight)
	}

	var scaled float64
	if maxWeight > 0 {
		for _, l := range layers {
			scaled += l.Weight / maxWeight
		}
	}

	return Field{
		layers:         layers,
		bounds:         bounds,
		post:           post,
		elevationScale: elevationScale,
		totalWeight:    total,
		maxWeight:      maxWeight,
		scaledTotal:    scaled,
	}
}

// Sample returns the elevation at (x, y).
// An empty layer set or a zero total weight yields flat ground (0).
func (f Field) Sample(src noise.Source, x, y float64) float64 {
	if f.scaledTotal <= 0 {
		return 0
	}

	var sum float64
	for _, l := range f.layers {
		sum += f.contribution(src, l, x, y)
	}
	return f.post.apply(sum, f.elevationScale)
}

// Contributions returns each layer's clamped contribution at (x, y), in layer
// order, before summation and post-processing. Nil when the total weight is 0.
func (f Field) Contributions(src noise.Source, x, y float64) []float64 {
	if f.scaledTotal <= 0 {
		return nil
	}

	out := make([]float64, len(f.layers))
	for i, l := range f.layers {
		out[i] = f.contribution(src, l, x, y)
	}
	return out
}

func (f Field) contribution(src noise.Source, l Layer, x, y float64) float64 {
	level := src.Noise((x+l.Offset.X)*l.Scale.X, (y+l.Offset.Y)*l.Scale.Y)
	level *= l.Scale.Z * (l.Weight / f.maxWeight / f.scaledTotal)
	return f.bounds.Clamp(level)
}

// Layers returns a copy of the snapshot's layers.
func (f Field) Layers() []Layer {
	return append([]Layer(nil), f.layers...)
}

// Len returns the number of layers.
func (f Field) Len() int {
	return len(f.layers)
}

// Bounds returns the elevation range.
func (f Field) Bounds() Bounds {
	return f.bounds
}

// TotalWeight returns the sum of all layer weights.
func (f Field) TotalWeight() float64 {
	return f.totalWeight
}

// PostProcess returns the final-step mode.
func (f Field) PostProcess() PostProcess {
	return f.post
}

// ElevationScale returns the global scale used by PostProcessRecenter.
func (f Field) ElevationScale() float64 {
	return f.elevationScale
}
