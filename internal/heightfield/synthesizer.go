package heightfield

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vovakirdan/terrain-synth/internal/noise"
	"github.com/vovakirdan/terrain-synth/internal/telemetry"
)

// Synthesizer owns a layer configuration and blends it into elevations.
//
// Bake needs exclusive access; Sample, Snapshot and the accessors only read.
// A Synthesizer is safe for concurrent use: readers share a lock, bakes take it
// exclusively.
type Synthesizer struct {
	mu     sync.RWMutex
	field  Field
	shape  *Shape
	rng    RandomSource
	logger *log.Logger
}

// Option configures a Synthesizer at construction.
type Option func(*Synthesizer)

// WithLayers sets the initial layer set. Layers with negative weight are
// rejected by New.
func WithLayers(layers ...Layer) Option {
	return func(s *Synthesizer) {
		s.field.layers = append([]Layer(nil), layers...)
	}
}

// WithPostProcess selects the final step applied to blended elevations.
func WithPostProcess(p PostProcess) Option {
	return func(s *Synthesizer) {
		s.field.post = p
	}
}

// WithRandom sets the source of randomness used by Bake.
func WithRandom(rng RandomSource) Option {
	return func(s *Synthesizer) {
		s.rng = rng
	}
}

// WithLogger sets the logger used for bake diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Synthesizer) {
		s.logger = logger
	}
}

// New creates a synthesizer with the given elevation range.
// Fails fast on an inverted range or a negative layer weight.
func New(bounds Bounds, opts ...Option) (*Synthesizer, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	s := &Synthesizer{
		field: Field{bounds: bounds, post: PostProcessRaw},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = NewRandSource(0)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	for i, l := range s.field.layers {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	s.field = newField(s.field.layers, bounds, s.field.post, 1)
	return s, nil
}

// Bake replaces the active layer set with the explicit layers followed by
// randomly synthesized ones, until there are target layers in total.
// Explicit layers are never dropped: if there are at least target of them,
// nothing is synthesized. Any previously baked layers are discarded.
//
// The shape is only validated when at least one layer must be synthesized.
// After a bake its ElevationScale (or 1 when unset) becomes the global scale
// used by PostProcessRecenter.
func (s *Synthesizer) Bake(ctx context.Context, shape Shape, target int, explicit ...Layer) error {
	_, span := telemetry.Tracer("heightfield").Start(ctx, "heightfield.bake")
	defer span.End()

	start := time.Now()

	for i, l := range explicit {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("explicit layer %d: %w", i, err)
		}
	}

	missing := target - len(explicit)
	if missing > 0 {
		if err := shape.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	layers := make([]Layer, 0, max(target, len(explicit)))
	layers = append(layers, explicit...)
	for i := 0; i < missing; i++ {
		layers = append(layers, shape.synthesizeLayer(s.rng))
	}

	scale := shape.ElevationScale
	if scale <= 0 {
		scale = 1
	}
	baked := shape
	s.shape = &baked
	s.field = newField(layers, s.field.bounds, s.field.post, scale)

	span.SetAttributes(
		attribute.Int("heightfield.target_layers", target),
		attribute.Int("heightfield.explicit_layers", len(explicit)),
		attribute.Int("heightfield.layers", len(layers)),
		attribute.Float64("heightfield.total_weight", s.field.totalWeight),
	)
	s.logger.Debug("baked layers",
		"layers", len(layers),
		"explicit", len(explicit),
		"synthesized", len(layers)-len(explicit),
		"total_weight", s.field.totalWeight,
		"took", time.Since(start),
	)

	return nil
}

// Reseed replaces the source of randomness for subsequent bakes.
func (s *Synthesizer) Reseed(rng RandomSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rng
}

// Sample returns the elevation at (x, y) using src for noise lookups.
// Panics raised by src propagate to the caller.
func (s *Synthesizer) Sample(src noise.Source, x, y float64) float64 {
	return s.Snapshot().Sample(src, x, y)
}

// Snapshot returns the current configuration as an immutable Field.
// Later bakes do not affect a snapshot already taken.
func (s *Synthesizer) Snapshot() Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.field
}

// Layers returns a copy of the active layers.
func (s *Synthesizer) Layers() []Layer {
	return s.Snapshot().Layers()
}

// Bounds returns the elevation range.
func (s *Synthesizer) Bounds() Bounds {
	return s.Snapshot().bounds
}

// PostProcess returns the final-step mode.
func (s *Synthesizer) PostProcess() PostProcess {
	return s.Snapshot().post
}

// Shape returns the shape of the last bake, if any.
func (s *Synthesizer) Shape() (Shape, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.shape == nil {
		return Shape{}, false
	}
	return *s.shape, true
}
