package heightfield

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/terrain-synth/internal/core"
)

func TestNewBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		valid    bool
	}{
		{"ordered", 0, 10, true},
		{"equal", 3, 3, true},
		{"negative range", -5, -1, true},
		{"inverted", 10, 0, false},
		{"nan", math.NaN(), 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBounds(tc.min, tc.max)
			if tc.valid && err != nil {
				t.Errorf("NewBounds(%v, %v) = %v, expected nil", tc.min, tc.max, err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidBounds) {
				t.Errorf("NewBounds(%v, %v) = %v, expected ErrInvalidBounds", tc.min, tc.max, err)
			}
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := DefaultBounds()
	if b.Clamp(-1) != 0 || b.Clamp(11) != 10 || b.Clamp(4.5) != 4.5 {
		t.Errorf("Clamp misbehaves for %+v", b)
	}
}

func TestNewLayer(t *testing.T) {
	if _, err := NewLayer(core.V2(0, 0), core.V3(1, 1, 1), 0); err != nil {
		t.Errorf("zero weight should be allowed: %v", err)
	}
	if _, err := NewLayer(core.V2(0, 0), core.V3(1, 1, 1), -0.1); !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("expected ErrNegativeWeight, got %v", err)
	}
	if _, err := NewLayer(core.V2(0, 0), core.V3(1, 1, 1), math.NaN()); !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("expected ErrNegativeWeight for NaN, got %v", err)
	}
	if _, err := NewLayer(core.V2(0, 0), core.V3(1, 1, 5), math.Inf(1)); !errors.Is(err, ErrNonFinite) {
		t.Errorf("expected ErrNonFinite for +Inf weight, got %v", err)
	}
}

func TestShapeValidate(t *testing.T) {
	valid := testShape()

	tests := []struct {
		name   string
		mutate func(*Shape)
		valid  bool
	}{
		{"valid", func(*Shape) {}, true},
		{"no weight value", func(s *Shape) { s.WeightValue = 0 }, true},
		{"zero width", func(s *Shape) { s.Width = 0 }, false},
		{"negative length", func(s *Shape) { s.Length = -3 }, false},
		{"zero density", func(s *Shape) { s.Density = 0 }, false},
		{"zero elevation scale", func(s *Shape) { s.ElevationScale = 0 }, false},
		{"infinite width", func(s *Shape) { s.Width = math.Inf(1) }, false},
		{"negative weight value", func(s *Shape) { s.WeightValue = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)
			err := s.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidShape) {
				t.Errorf("Validate() = %v, expected ErrInvalidShape", err)
			}
		})
	}
}

func TestDrawDensity(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d := DrawDensity(NewRandSource(seed))
		if d < MinDensity || d >= MaxDensity {
			t.Errorf("seed %d: density %v outside [%v, %v)", seed, d, MinDensity, MaxDensity)
		}
	}

	if d := DrawDensity(&sequenceSource{values: []float64{0.5}}); d != 100 {
		t.Errorf("DrawDensity(0.5) = %v, expected 100", d)
	}
}

func TestRandSource(t *testing.T) {
	a := NewRandSource(123)
	b := NewRandSource(123)

	for i := 0; i < 100; i++ {
		va := a.Uniform(-2, 3)
		vb := b.Uniform(-2, 3)
		if va != vb {
			t.Fatalf("draw %d differs for the same seed: %v vs %v", i, va, vb)
		}
		if va < -2 || va >= 3 {
			t.Fatalf("draw %d = %v outside [-2, 3)", i, va)
		}
	}
}

func TestParsePostProcess(t *testing.T) {
	tests := []struct {
		in       string
		expected PostProcess
		wantErr  bool
	}{
		{"", PostProcessRaw, false},
		{"raw", PostProcessRaw, false},
		{"RECENTER", PostProcessRecenter, false},
		{" recenter ", PostProcessRecenter, false},
		{"halve", PostProcessRaw, true},
	}

	for _, tc := range tests {
		got, err := ParsePostProcess(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePostProcess(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePostProcess(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if PostProcessRecenter.String() != "recenter" || PostProcessRaw.String() != "raw" {
		t.Error("String() should round-trip config names")
	}
}
