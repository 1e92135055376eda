package core

import (
	"math"
	"testing"
)

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},   // within range
		{-5.5, 0.0, 10.0, 0.0},  // below min
		{15.5, 0.0, 10.0, 10.0}, // above max
		{0.0, 0.0, 10.0, 0.0},   // at min
		{10.0, 0.0, 10.0, 10.0}, // at max
		{3.0, 3.0, 3.0, 3.0},    // degenerate range
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("IsFinite(1.5) should be true")
	}
	if IsFinite(math.NaN()) {
		t.Error("IsFinite(NaN) should be false")
	}
	if IsFinite(math.Inf(-1)) {
		t.Error("IsFinite(-Inf) should be false")
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := RuntimeConfig{Seed: 42}
	if cfg.ResolveSeed() != 42 {
		t.Errorf("ResolveSeed() = %d, expected 42", cfg.ResolveSeed())
	}

	if (RuntimeConfig{}).ResolveSeed() == 0 {
		t.Error("ResolveSeed() should derive a non-zero seed when unset")
	}
}
