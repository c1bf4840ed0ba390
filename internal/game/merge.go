package game

import (
	"errors"
	"fmt"
)

// Tile is a cell value: Empty or a power of two starting at 2.
type Tile int

// Empty marks a cell with no tile.
const Empty Tile = 0

// LineLen is the number of cells in one row or column.
const LineLen = 4

// Line is one row or column ordered nearest-to-target-edge first.
type Line [LineLen]Tile

// LineStats reports what a collapse did to a line.
type LineStats struct {
	Merges int // Number of pairs combined
	Points int // Sum of the values the merges produced
}

var (
	// ErrLineTooLong is returned when more than LineLen values are passed to ProcessSlice.
	ErrLineTooLong = errors.New("game: line longer than 4 tiles")

	// ErrInvalidTile is returned for a value that is neither empty nor a power of two >= 2.
	ErrInvalidTile = errors.New("game: invalid tile value")
)

// Valid reports whether t is Empty or a power of two >= 2.
func (t Tile) Valid() bool {
	if t == Empty {
		return true
	}
	return t >= 2 && t&(t-1) == 0
}

// Collapse compacts the line toward index 0 and merges equal neighbours.
// A tile produced by a merge never merges again in the same call, so
// (2,2,4) becomes (4,4) and (2,2,2,2) becomes (4,4).
func Collapse(line Line) (Line, LineStats) {
	var (
		result     Line
		stats      LineStats
		writePos   int
		lastMerged bool
	)

	for _, v := range line {
		if v == Empty {
			continue
		}

		if writePos > 0 && !lastMerged && result[writePos-1] == v {
			result[writePos-1] = v * 2
			stats.Merges++
			stats.Points += int(result[writePos-1])
			lastMerged = true
			continue
		}

		result[writePos] = v
		writePos++
		lastMerged = false
	}

	return result, stats
}

// Process returns the collapsed line, empties padded at the far end.
func Process(line Line) Line {
	result, _ := Collapse(line)
	return result
}

// ProcessSlice collapses a line given as a slice of at most LineLen values
// (empties allowed) and returns only the resulting tiles, without padding.
func ProcessSlice(values []Tile) ([]Tile, error) {
	if len(values) > LineLen {
		return nil, fmt.Errorf("%w: got %d", ErrLineTooLong, len(values))
	}

	var line Line
	for i, v := range values {
		if !v.Valid() {
			return nil, fmt.Errorf("%w: %d at index %d", ErrInvalidTile, v, i)
		}
		line[i] = v
	}

	result := Process(line)
	out := make([]Tile, 0, LineLen)
	for _, v := range result {
		if v == Empty {
			break
		}
		out = append(out, v)
	}
	return out, nil
}
