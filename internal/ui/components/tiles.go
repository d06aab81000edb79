package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simpletype/internal/ui/theme"
)

// Tiles renders multiple choice options side by side, each with its label.
func Tiles(labels []string, choices []int) string {
	cells := make([]string, 0, len(choices))
	for i, c := range choices {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		cells = append(cells, theme.Tile.Render(theme.TileLabel.Render(label)+" "+fmt.Sprint(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
