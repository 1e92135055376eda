package heightfield

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource draws uniform reals. Bake takes all of its randomness from one,
// so tests can inject a fixed sequence and assert exact layers.
type RandomSource interface {
	// Uniform returns a value in [min, max).
	Uniform(min, max float64) float64
}

// RandSource is a RandomSource backed by math/rand. Safe for concurrent use.
type RandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource creates a seeded source. A zero seed uses the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [min, max).
func (r *RandSource) Uniform(min, max float64) float64 {
	r.mu.Lock()
	f := r.rng.Float64()
	r.mu.Unlock()
	return min + f*(max-min)
}
