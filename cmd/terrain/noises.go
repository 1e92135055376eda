package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/terrain-synth/internal/noise"
)

var noisesCmd = &cobra.Command{
	Use:   "noises",
	Short: "List available noise algorithms",
	Long:  `Shows the noise algorithms that can be selected with --noise or noise.algorithm.`,
	Run:   runNoises,
}

func runNoises(_ *cobra.Command, _ []string) {
	algorithms := noise.List()

	fmt.Println("Available noise algorithms:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, a := range algorithms {
		if len(a.Name) > maxNameLen {
			maxNameLen = len(a.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, a := range algorithms {
		fmt.Printf("  %-*s  %s\n", maxNameLen, a.Name, a.Description)
	}
}
