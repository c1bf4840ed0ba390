package game

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const textCellWidth = 5

// Text renders the board as plain text, one row per line with a blank line
// between rows. Empty cells show as "-". With color set, tiles are wrapped
// in ANSI color codes.
func Text(cells Cells, color bool) string {
	var sb strings.Builder
	for _, row := range cells {
		for _, v := range row {
			sb.WriteString(textCell(v, color))
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func textCell(v Tile, color bool) string {
	label := "-"
	if v != Empty {
		label = strconv.Itoa(int(v))
	}

	padLeft := max((textCellWidth-len(label))/2, 0)
	padRight := max(textCellWidth-len(label)-padLeft, 1)
	cell := strings.Repeat(" ", padLeft) + label + strings.Repeat(" ", padRight)

	if !color || v == Empty {
		return cell
	}
	code := TileColor(v).ANSI()
	if code == "" {
		return cell
	}
	return code + cell + core.ANSIReset
}
