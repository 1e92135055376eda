package heightfield

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/terrain-synth/internal/core"
	"github.com/vovakirdan/terrain-synth/internal/noise"
	"github.com/vovakirdan/terrain-synth/internal/telemetry"
)

// Grid describes a regular plane of vertices centred on the origin.
// Vertices run row by row from +Length/2 down to -Length/2, and within a row
// from -Width/2 to +Width/2.
type Grid struct {
	Width     float64
	Length    float64
	SegmentsX int
	SegmentsY int
}

// DefaultGrid returns an 8x8 plane with 150 segments per side.
func DefaultGrid() Grid {
	return Grid{Width: 8, Length: 8, SegmentsX: 150, SegmentsY: 150}
}

// Validate checks that the grid has positive extent and at least one segment per axis.
func (g Grid) Validate() error {
	if g.SegmentsX < 1 || g.SegmentsY < 1 {
		return fmt.Errorf("%w: segments must be at least 1, got %dx%d", ErrInvalidGrid, g.SegmentsX, g.SegmentsY)
	}
	if !core.IsFinite(g.Width) || !core.IsFinite(g.Length) || g.Width <= 0 || g.Length <= 0 {
		return fmt.Errorf("%w: size must be positive, got %vx%v", ErrInvalidGrid, g.Width, g.Length)
	}
	return nil
}

// Cols returns the number of vertices per row.
func (g Grid) Cols() int { return g.SegmentsX + 1 }

// Rows returns the number of vertex rows.
func (g Grid) Rows() int { return g.SegmentsY + 1 }

// Point returns the planar coordinates of the vertex at (col, row).
func (g Grid) Point(col, row int) core.Vec2 {
	return core.V2(
		-g.Width/2+float64(col)*g.Width/float64(g.SegmentsX),
		g.Length/2-float64(row)*g.Length/float64(g.SegmentsY),
	)
}

// HeightGrid holds one elevation per grid vertex, row-major.
type HeightGrid struct {
	Cols    int
	Rows    int
	Heights []float64
}

// At returns the elevation at (col, row).
func (h *HeightGrid) At(col, row int) float64 {
	return h.Heights[row*h.Cols+col]
}

// MinMax returns the lowest and highest elevation. Both are 0 for an empty grid.
func (h *HeightGrid) MinMax() (float64, float64) {
	if len(h.Heights) == 0 {
		return 0, 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range h.Heights {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// SampleGrid evaluates field once per vertex of g. Rows are spread over at
// most workers goroutines (GOMAXPROCS when workers <= 0), so src must be safe
// for concurrent use. Cancelling ctx stops scheduling further rows.
func SampleGrid(ctx context.Context, field Field, src noise.Source, g Grid, workers int) (*HeightGrid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, span := telemetry.Tracer("heightfield").Start(ctx, "heightfield.sample_grid")
	defer span.End()
	span.SetAttributes(
		attribute.Int("grid.cols", g.Cols()),
		attribute.Int("grid.rows", g.Rows()),
		attribute.Int("grid.layers", field.Len()),
		attribute.Int("grid.workers", workers),
	)

	out := &HeightGrid{
		Cols:    g.Cols(),
		Rows:    g.Rows(),
		Heights: make([]float64, g.Cols()*g.Rows()),
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for row := 0; row < out.Rows; row++ {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			base := row * out.Cols
			for col := 0; col < out.Cols; col++ {
				p := g.Point(col, row)
				out.Heights[base+col] = field.Sample(src, p.X, p.Y)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// Rows skipped after cancellation leave no error in the group.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
