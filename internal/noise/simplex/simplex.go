// Package simplex registers an OpenSimplex noise algorithm.
package simplex

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/vovakirdan/terrain-synth/internal/noise"
)

// Name is the registry key for this algorithm.
const Name = "simplex"

// Source wraps an OpenSimplex generator. Output is in [-1, 1].
type Source struct {
	gen opensimplex.Noise
}

// New creates a simplex source with the given seed.
func New(seed int64) *Source {
	return &Source{gen: opensimplex.New(seed)}
}

// Noise returns the 2D noise value at (x, y).
func (s *Source) Noise(x, y float64) float64 {
	return s.gen.Eval2(x, y)
}

func init() {
	noise.Register(Name, "OpenSimplex gradient noise, range [-1, 1]", func(seed int64) noise.Source {
		return New(seed)
	})
}
