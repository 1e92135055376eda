package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/terrain-synth/internal/storage"
)

var (
	flagBakeLayers int
	flagBakeSave   string
)

var bakeCmd = &cobra.Command{
	Use:   "bake",
	Short: "Bake a layer set from config",
	Long: `Bake the configured explicit layers plus synthetic layers derived from
the terrain shape, and print the resulting layer table.

With --save the baked layers are stored as a named preset so the same
terrain can be sampled later without re-rolling randomness.

Examples:
  terrain bake
  terrain bake --layers 20 --seed 42
  terrain bake --save hills`,
	Run: runBake,
}

func init() {
	bakeCmd.Flags().IntVar(&flagBakeLayers, "layers", -1, "Target layer count (-1 = config value)")
	bakeCmd.Flags().StringVar(&flagBakeSave, "save", "", "Save the baked layers as a named preset")
}

func runBake(_ *cobra.Command, _ []string) {
	ctx := context.Background()

	e, err := loadEnv(ctx)
	if err != nil {
		fatal("%v", err)
	}
	defer e.Close()

	synth, _, err := e.bake(ctx, flagBakeLayers)
	if err != nil {
		e.Close()
		fatal("baking terrain: %v", err)
	}

	layers := synth.Layers()
	fmt.Println(titleStyle.Render(fmt.Sprintf("Baked %d layers", len(layers))))
	fmt.Println(dimStyle.Render(fmt.Sprintf("noise %s, seed %d, post-process %s",
		e.cfg.Noise.Algorithm, e.runtime.Seed, synth.PostProcess())))
	fmt.Println()
	if len(layers) == 0 {
		fmt.Println("No layers: every sample is 0.")
	} else {
		fmt.Println(layerTable(layers))
	}

	if flagBakeSave == "" {
		return
	}

	store, err := e.openStore()
	if err != nil {
		e.Close()
		fatal("opening preset database: %v", err)
	}
	defer store.Close()

	shape, hasShape := synth.Shape()
	_, err = store.SavePreset(storage.Preset{
		Name:           flagBakeSave,
		NoiseAlgorithm: e.cfg.Noise.Algorithm,
		NoiseSeed:      e.runtime.Seed,
		Bounds:         synth.Bounds(),
		PostProcess:    synth.PostProcess(),
		Shape:          shape,
		HasShape:       hasShape,
		Layers:         layers,
	})
	if err != nil {
		store.Close()
		e.Close()
		fatal("saving preset: %v", err)
	}

	fmt.Println()
	fmt.Printf("Saved as preset %q. Run 'terrain sample --preset %s' to use it.\n", flagBakeSave, flagBakeSave)
}
