package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/vovakirdan/terrain-synth/internal/heightfield"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// gridCellWidth is the printed width of one grid height.
const gridCellWidth = 7

// layerTable renders layers as a bordered table.
func layerTable(layers []heightfield.Layer) string {
	rows := make([][]string, len(layers))
	for i, l := range layers {
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.3f", l.Offset.X),
			fmt.Sprintf("%.3f", l.Offset.Y),
			fmt.Sprintf("%.5f", l.Scale.X),
			fmt.Sprintf("%.5f", l.Scale.Y),
			fmt.Sprintf("%.3f", l.Scale.Z),
			fmt.Sprintf("%.3f", l.Weight),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "Offset X", "Offset Y", "Scale X", "Scale Y", "Vertical", "Weight").
		Rows(rows...)

	return t.String()
}

// terminalWidth returns the stdout width, or 80 when it is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// gridStride returns the step between printed columns (and rows) so that a
// grid of cols vertices fits in width characters.
func gridStride(cols, width int) int {
	fit := width / gridCellWidth
	if fit < 1 {
		fit = 1
	}
	return (cols + fit - 1) / fit
}

// renderGrid prints every stride-th row and column of hg.
func renderGrid(hg *heightfield.HeightGrid, width int) string {
	stride := gridStride(hg.Cols, width)

	var b strings.Builder
	for row := 0; row < hg.Rows; row += stride {
		for col := 0; col < hg.Cols; col += stride {
			fmt.Fprintf(&b, "%*.2f", gridCellWidth, hg.At(col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
