package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/terrain-synth/internal/storage"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved layer presets",
	Long: `List, show or delete presets saved with 'terrain bake --save'.

Examples:
  terrain presets
  terrain presets show hills
  terrain presets delete hills`,
	Run: runPresetsList,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	Run:   runPresetsList,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the layers of a preset",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsShow,
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsDelete,
}

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)
}

// openPresetStore opens the database without the rest of the command env.
func openPresetStore() *storage.Store {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatal("opening preset database: %v", err)
	}
	return store
}

func runPresetsList(_ *cobra.Command, _ []string) {
	store := openPresetStore()
	defer store.Close()

	infos, err := store.ListPresets()
	if err != nil {
		store.Close()
		fatal("listing presets: %v", err)
	}

	if len(infos) == 0 {
		fmt.Println("No presets saved yet.")
		fmt.Println()
		fmt.Println("Run 'terrain bake --save <name>' to save one.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range infos {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-8s  %-20s  %-6s  %s\n", maxNameLen, "Name", "Noise", "Seed", "Layers", "Saved")
	fmt.Printf("  %-*s  %-8s  %-20s  %-6s  %s\n", maxNameLen, "----", "-----", "----", "------", "-----")
	for _, p := range infos {
		fmt.Printf("  %-*s  %-8s  %-20d  %-6d  %s\n",
			maxNameLen, p.Name, p.NoiseAlgorithm, p.NoiseSeed, p.LayerCount, p.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runPresetsShow(_ *cobra.Command, args []string) {
	store := openPresetStore()
	defer store.Close()

	p, err := store.LoadPreset(args[0])
	if err != nil {
		store.Close()
		fatal("loading preset: %v", err)
	}
	if p == nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'terrain presets' to see saved presets.")
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Preset %s", p.Name)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("noise %s, seed %d, bounds [%g, %g], post-process %s",
		p.NoiseAlgorithm, p.NoiseSeed, p.Bounds.Min, p.Bounds.Max, p.PostProcess)))
	if p.HasShape {
		fmt.Println(dimStyle.Render(fmt.Sprintf("shape %gx%g, density %.2f, elevation scale %g",
			p.Shape.Width, p.Shape.Length, p.Shape.Density, p.Shape.ElevationScale)))
	}
	fmt.Println()
	if len(p.Layers) == 0 {
		fmt.Println("No layers.")
		return
	}
	fmt.Println(layerTable(p.Layers))
}

func runPresetsDelete(_ *cobra.Command, args []string) {
	store := openPresetStore()
	defer store.Close()

	deleted, err := store.DeletePreset(args[0])
	if err != nil {
		store.Close()
		fatal("deleting preset: %v", err)
	}
	if !deleted {
		store.Close()
		fatal("unknown preset %q", args[0])
	}
	fmt.Printf("Deleted preset %q.\n", args[0])
}
