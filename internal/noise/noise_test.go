package noise

import (
	"strings"
	"testing"
)

func TestConstant(t *testing.T) {
	src := Constant(0.5)

	for _, p := range [][2]float64{{0, 0}, {-10, 3.5}, {1e6, -1e6}} {
		if v := src.Noise(p[0], p[1]); v != 0.5 {
			t.Errorf("Noise(%v, %v) = %v, expected 0.5", p[0], p[1], v)
		}
	}
}

func TestFunc(t *testing.T) {
	src := Func(func(x, y float64) float64 { return x - y })

	if v := src.Noise(3, 1); v != 2 {
		t.Errorf("Noise(3, 1) = %v, expected 2", v)
	}
}

func TestRegistryFlat(t *testing.T) {
	if !Exists("flat") {
		t.Fatal("flat algorithm should be registered by default")
	}

	src, err := Create("flat", 99)
	if err != nil {
		t.Fatalf("Create(flat) failed: %v", err)
	}
	if v := src.Noise(12, 34); v != 0 {
		t.Errorf("flat noise = %v, expected 0", v)
	}
}

func TestRegistryUnknown(t *testing.T) {
	_, err := Create("does-not-exist", 1)
	if err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
	if !strings.Contains(err.Error(), "does-not-exist") {
		t.Errorf("error should name the algorithm, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("flat", "again", func(_ int64) Source { return Constant(1) })
}

func TestListSorted(t *testing.T) {
	for _, name := range []string{"zz-test", "aa-test"} {
		if !Exists(name) {
			Register(name, "test only", func(_ int64) Source { return Constant(1) })
		}
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}
