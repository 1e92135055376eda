// Package perlin registers a classic Perlin noise algorithm.
package perlin

import (
	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/terrain-synth/internal/noise"
)

// Name is the registry key for this algorithm.
const Name = "perlin"

// Default generator parameters. These give smooth terrain-like noise.
const (
	Alpha   = 2.0 // weight of each successive octave
	Beta    = 2.0 // frequency multiplier between octaves
	Octaves = 3
)

// Source wraps a Perlin generator.
type Source struct {
	gen *perlin.Perlin
}

// New creates a Perlin source with the default parameters.
func New(seed int64) *Source {
	return &Source{gen: perlin.NewPerlin(Alpha, Beta, Octaves, seed)}
}

// Noise returns the 2D noise value at (x, y).
func (s *Source) Noise(x, y float64) float64 {
	return s.gen.Noise2D(x, y)
}

func init() {
	noise.Register(Name, "Perlin noise, 3 octaves (alpha 2, beta 2)", func(seed int64) noise.Source {
		return New(seed)
	})
}
