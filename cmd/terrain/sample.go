package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/terrain-synth/internal/heightfield"
)

var (
	flagSampleGrid   bool
	flagSamplePreset string
)

var sampleCmd = &cobra.Command{
	Use:   "sample [x y]",
	Short: "Sample elevations",
	Long: `Sample the elevation at one planar point, or at every vertex of the
configured grid with --grid.

Without --preset a fresh layer set is baked from config first; pass --seed
to make it reproducible.

Examples:
  terrain sample 1.5 -2 --seed 42
  terrain sample 0 0 --preset hills
  terrain sample --grid --workers 4`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagSampleGrid {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	Run: runSample,
}

func init() {
	sampleCmd.Flags().BoolVar(&flagSampleGrid, "grid", false, "Sample the configured grid instead of one point")
	sampleCmd.Flags().StringVar(&flagSamplePreset, "preset", "", "Use a saved preset instead of baking")
}

func runSample(_ *cobra.Command, args []string) {
	var x, y float64
	if !flagSampleGrid {
		var err error
		if x, err = strconv.ParseFloat(args[0], 64); err != nil {
			fatal("invalid x %q", args[0])
		}
		if y, err = strconv.ParseFloat(args[1], 64); err != nil {
			fatal("invalid y %q", args[1])
		}
	}

	ctx := context.Background()

	e, err := loadEnv(ctx)
	if err != nil {
		fatal("%v", err)
	}
	defer e.Close()

	synth, src, err := e.synthesizer(ctx, flagSamplePreset)
	if err != nil {
		e.Close()
		fatal("%v", err)
	}

	if !flagSampleGrid {
		fmt.Println(synth.Sample(src, x, y))
		return
	}

	g := e.cfg.GridValue()
	hg, err := heightfield.SampleGrid(ctx, synth.Snapshot(), src, g, e.runtime.Workers)
	if err != nil {
		e.Close()
		fatal("sampling grid: %v", err)
	}

	lo, hi := hg.MinMax()
	fmt.Println(titleStyle.Render(fmt.Sprintf("Grid %gx%g, %dx%d vertices", g.Width, g.Length, hg.Cols, hg.Rows)))
	fmt.Printf("min %.4f  max %.4f\n", lo, hi)

	width := terminalWidth()
	if stride := gridStride(hg.Cols, width); stride > 1 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("showing every %d-th vertex", stride)))
	}
	fmt.Println()
	fmt.Print(renderGrid(hg, width))
}
