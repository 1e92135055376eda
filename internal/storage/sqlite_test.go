package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/terrain-synth/internal/core"
	"github.com/vovakirdan/terrain-synth/internal/heightfield"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testPreset(name string) Preset {
	return Preset{
		Name:           name,
		NoiseAlgorithm: "simplex",
		NoiseSeed:      42,
		Bounds:         heightfield.Bounds{Min: -2, Max: 8},
		PostProcess:    heightfield.PostProcessRecenter,
		Shape: heightfield.Shape{
			Width:          100,
			Length:         80,
			Density:        75,
			ElevationScale: 10,
			RandomWeight:   true,
			WeightValue:    5,
		},
		HasShape: true,
		Layers: []heightfield.Layer{
			{Offset: core.V2(1, 2), Scale: core.V3(0.5, 0.25, 3), Weight: 1.5},
			{Offset: core.V2(-4, 8), Scale: core.V3(0.125, 0.75, 1), Weight: 0},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsPresets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SavePreset(testPreset("hills")); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	p, err := store.LoadPreset("hills")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil {
		t.Fatal("preset lost after reopen")
	}
}

func TestSaveAndLoadPreset(t *testing.T) {
	store := openTestStore(t)
	want := testPreset("hills")

	id, err := store.SavePreset(want)
	if err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive ID, got %d", id)
	}

	got, err := store.LoadPreset("hills")
	if err != nil {
		t.Fatalf("LoadPreset() failed: %v", err)
	}
	if got == nil {
		t.Fatal("LoadPreset() returned nil")
	}

	if got.ID != id {
		t.Errorf("ID = %d, expected %d", got.ID, id)
	}
	if got.NoiseAlgorithm != "simplex" || got.NoiseSeed != 42 {
		t.Errorf("noise = %s/%d, expected simplex/42", got.NoiseAlgorithm, got.NoiseSeed)
	}
	if got.Bounds != want.Bounds {
		t.Errorf("Bounds = %+v, expected %+v", got.Bounds, want.Bounds)
	}
	if got.PostProcess != heightfield.PostProcessRecenter {
		t.Errorf("PostProcess = %v, expected recenter", got.PostProcess)
	}
	if !got.HasShape || got.Shape != want.Shape {
		t.Errorf("Shape = %+v (has %v), expected %+v", got.Shape, got.HasShape, want.Shape)
	}
	if !reflect.DeepEqual(got.Layers, want.Layers) {
		t.Errorf("Layers = %+v, expected %+v", got.Layers, want.Layers)
	}
}

func TestSavePresetReplaces(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SavePreset(testPreset("hills")); err != nil {
		t.Fatal(err)
	}

	replacement := testPreset("hills")
	replacement.NoiseSeed = 7
	replacement.Layers = replacement.Layers[:1]
	if _, err := store.SavePreset(replacement); err != nil {
		t.Fatalf("second SavePreset() failed: %v", err)
	}

	got, err := store.LoadPreset("hills")
	if err != nil {
		t.Fatal(err)
	}
	if got.NoiseSeed != 7 {
		t.Errorf("NoiseSeed = %d, expected 7", got.NoiseSeed)
	}
	if len(got.Layers) != 1 {
		t.Errorf("expected 1 layer after replace, got %d", len(got.Layers))
	}

	infos, err := store.ListPresets()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 {
		t.Errorf("expected 1 preset after replace, got %d", len(infos))
	}
}

func TestSavePresetEmptyName(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SavePreset(testPreset("   "))
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestSavePresetWithoutLayers(t *testing.T) {
	store := openTestStore(t)

	p := testPreset("flat")
	p.Layers = nil
	p.HasShape = false
	if _, err := store.SavePreset(p); err != nil {
		t.Fatal(err)
	}

	got, err := store.LoadPreset("flat")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Layers) != 0 {
		t.Errorf("expected no layers, got %d", len(got.Layers))
	}
	if got.HasShape {
		t.Error("HasShape should be false")
	}
}

func TestLoadPresetMissing(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadPreset("nope")
	if err != nil {
		t.Fatalf("LoadPreset() failed: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for missing preset, got %+v", p)
	}
}

func TestListPresets(t *testing.T) {
	store := openTestStore(t)

	infos, err := store.ListPresets()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 0 {
		t.Errorf("expected empty list, got %d", len(infos))
	}

	empty := testPreset("b-flat")
	empty.Layers = nil
	for _, p := range []Preset{testPreset("c-hills"), testPreset("a-dunes"), empty} {
		if _, err := store.SavePreset(p); err != nil {
			t.Fatal(err)
		}
	}

	infos, err = store.ListPresets()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		layers int
	}{
		{"a-dunes", 2},
		{"b-flat", 0},
		{"c-hills", 2},
	}
	if len(infos) != len(tests) {
		t.Fatalf("expected %d presets, got %d", len(tests), len(infos))
	}
	for i, tt := range tests {
		if infos[i].Name != tt.name {
			t.Errorf("infos[%d].Name = %q, expected %q", i, infos[i].Name, tt.name)
		}
		if infos[i].LayerCount != tt.layers {
			t.Errorf("infos[%d].LayerCount = %d, expected %d", i, infos[i].LayerCount, tt.layers)
		}
	}
}

func TestDeletePreset(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SavePreset(testPreset("hills")); err != nil {
		t.Fatal(err)
	}

	deleted, err := store.DeletePreset("hills")
	if err != nil {
		t.Fatalf("DeletePreset() failed: %v", err)
	}
	if !deleted {
		t.Error("expected preset to be deleted")
	}

	p, err := store.LoadPreset("hills")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Error("preset still present after delete")
	}

	deleted, err = store.DeletePreset("hills")
	if err != nil {
		t.Fatal(err)
	}
	if deleted {
		t.Error("second delete should report false")
	}

	// Layers of the deleted preset must not leak into a new one
	if _, err := store.SavePreset(Preset{Name: "fresh", NoiseAlgorithm: "flat", Bounds: heightfield.DefaultBounds()}); err != nil {
		t.Fatal(err)
	}
	fresh, err := store.LoadPreset("fresh")
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh.Layers) != 0 {
		t.Errorf("expected no layers, got %d", len(fresh.Layers))
	}
}
