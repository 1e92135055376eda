package heightfield

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/terrain-synth/internal/core"
	"github.com/vovakirdan/terrain-synth/internal/noise"
	"github.com/vovakirdan/terrain-synth/internal/noise/simplex"
)

func TestGridValidate(t *testing.T) {
	tests := []struct {
		name  string
		grid  Grid
		valid bool
	}{
		{"default", DefaultGrid(), true},
		{"single segment", Grid{Width: 1, Length: 1, SegmentsX: 1, SegmentsY: 1}, true},
		{"zero segments", Grid{Width: 1, Length: 1, SegmentsX: 0, SegmentsY: 4}, false},
		{"zero width", Grid{Width: 0, Length: 1, SegmentsX: 2, SegmentsY: 2}, false},
		{"negative length", Grid{Width: 1, Length: -1, SegmentsX: 2, SegmentsY: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.grid.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("Validate() = %v, expected ErrInvalidGrid", err)
			}
		})
	}
}

func TestGridPoints(t *testing.T) {
	g := Grid{Width: 8, Length: 4, SegmentsX: 4, SegmentsY: 2}

	if g.Cols() != 5 || g.Rows() != 3 {
		t.Fatalf("Cols/Rows = %d/%d, expected 5/3", g.Cols(), g.Rows())
	}

	tests := []struct {
		col, row int
		expected core.Vec2
	}{
		{0, 0, core.V2(-4, 2)},
		{4, 0, core.V2(4, 2)},
		{0, 2, core.V2(-4, -2)},
		{4, 2, core.V2(4, -2)},
		{2, 1, core.V2(0, 0)},
	}
	for _, tc := range tests {
		if got := g.Point(tc.col, tc.row); got != tc.expected {
			t.Errorf("Point(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.expected)
		}
	}
}

func TestSampleGridConstant(t *testing.T) {
	s := mustNew(t, Bounds{Min: 0, Max: 10}, WithLayers(mustLayer(t, 0, 0, 1, 1, 5, 1)))
	g := Grid{Width: 2, Length: 2, SegmentsX: 10, SegmentsY: 6}

	hg, err := SampleGrid(context.Background(), s.Snapshot(), noise.Constant(0.5), g, 3)
	if err != nil {
		t.Fatalf("SampleGrid failed: %v", err)
	}
	if hg.Cols != 11 || hg.Rows != 7 || len(hg.Heights) != 77 {
		t.Fatalf("unexpected grid dimensions %dx%d (%d heights)", hg.Cols, hg.Rows, len(hg.Heights))
	}
	for i, h := range hg.Heights {
		if h != 2.5 {
			t.Fatalf("height %d = %v, expected 2.5", i, h)
		}
	}

	lo, hi := hg.MinMax()
	if lo != 2.5 || hi != 2.5 {
		t.Errorf("MinMax() = %v, %v; expected 2.5, 2.5", lo, hi)
	}
}

func TestSampleGridMatchesSequential(t *testing.T) {
	s := mustNew(t, Bounds{Min: -2, Max: 2}, WithRandom(NewRandSource(77)))
	if err := s.Bake(context.Background(), testShape(), 8); err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	field := s.Snapshot()
	src := simplex.New(21)
	g := Grid{Width: 8, Length: 8, SegmentsX: 40, SegmentsY: 30}

	hg, err := SampleGrid(context.Background(), field, src, g, 0)
	if err != nil {
		t.Fatalf("SampleGrid failed: %v", err)
	}

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			p := g.Point(col, row)
			if want := field.Sample(src, p.X, p.Y); hg.At(col, row) != want {
				t.Fatalf("At(%d, %d) = %v, expected %v", col, row, hg.At(col, row), want)
			}
		}
	}
}

func TestSampleGridCancelled(t *testing.T) {
	s := mustNew(t, DefaultBounds(), WithLayers(mustLayer(t, 0, 0, 1, 1, 1, 1)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SampleGrid(ctx, s.Snapshot(), noise.Constant(1), DefaultGrid(), 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSampleGridInvalid(t *testing.T) {
	s := mustNew(t, DefaultBounds())
	_, err := SampleGrid(context.Background(), s.Snapshot(), noise.Constant(1), Grid{}, 1)
	if !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestHeightGridMinMaxEmpty(t *testing.T) {
	var hg HeightGrid
	lo, hi := hg.MinMax()
	if lo != 0 || hi != 0 {
		t.Errorf("MinMax() on empty grid = %v, %v; expected 0, 0", lo, hi)
	}
}
