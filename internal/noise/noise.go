// Package noise defines the coherent-noise contract consumed by the height-field
// synthesizer, along with a registry of named noise algorithms.
//
// Algorithms live in subpackages and register themselves in init() functions,
// so callers pick one by name without importing it directly.
package noise

// Source evaluates 2D coherent noise.
// Implementations must be deterministic for a given instance and free of side
// effects; values are conventionally in [-1, 1].
type Source interface {
	Noise(x, y float64) float64
}

// Func adapts an ordinary function to the Source interface.
type Func func(x, y float64) float64

// Noise calls f(x, y).
func (f Func) Noise(x, y float64) float64 {
	return f(x, y)
}

// Constant returns a Source that yields v for every coordinate.
func Constant(v float64) Source {
	return Func(func(_, _ float64) float64 { return v })
}
