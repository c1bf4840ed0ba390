package game

import (
	"errors"
	"slices"
	"testing"
)

func TestCollapse(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
		merges   int
		points   int
	}{
		{
			name:     "simple merge",
			input:    Line{2, 2, 0, 0},
			expected: Line{4, 0, 0, 0},
			merges:   1,
			points:   4,
		},
		{
			name:     "merge with trailing tile",
			input:    Line{2, 2, 2, 0},
			expected: Line{4, 2, 0, 0},
			merges:   1,
			points:   4,
		},
		{
			name:     "four equal tiles merge pairwise",
			input:    Line{2, 2, 2, 2},
			expected: Line{4, 4, 0, 0},
			merges:   2,
			points:   8,
		},
		{
			name:     "merged tile does not merge again",
			input:    Line{2, 2, 4, 0},
			expected: Line{4, 4, 0, 0},
			merges:   1,
			points:   4,
		},
		{
			name:     "pair behind an unequal tile",
			input:    Line{4, 2, 2, 0},
			expected: Line{4, 4, 0, 0},
			merges:   1,
			points:   4,
		},
		{
			name:     "two different pairs",
			input:    Line{2, 2, 4, 4},
			expected: Line{4, 8, 0, 0},
			merges:   2,
			points:   12,
		},
		{
			name:     "unequal neighbours compact only",
			input:    Line{0, 2, 0, 4},
			expected: Line{2, 4, 0, 0},
		},
		{
			name:     "no merge possible",
			input:    Line{2, 4, 8, 16},
			expected: Line{2, 4, 8, 16},
		},
		{
			name:     "gaps between equal tiles",
			input:    Line{2, 0, 0, 2},
			expected: Line{4, 0, 0, 0},
			merges:   1,
			points:   4,
		},
		{
			name:     "empty line",
			input:    Line{},
			expected: Line{},
		},
		{
			name:     "single tile slides",
			input:    Line{0, 0, 0, 8},
			expected: Line{8, 0, 0, 0},
		},
		{
			name:     "values above 2048",
			input:    Line{4096, 4096, 1 << 40, 1 << 40},
			expected: Line{8192, 1 << 41, 0, 0},
			merges:   2,
			points:   8192 + 1<<41,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, stats := Collapse(tt.input)
			if result != tt.expected {
				t.Errorf("Collapse(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if stats.Merges != tt.merges {
				t.Errorf("Collapse(%v) merges = %d, want %d", tt.input, stats.Merges, tt.merges)
			}
			if stats.Points != tt.points {
				t.Errorf("Collapse(%v) points = %d, want %d", tt.input, stats.Points, tt.points)
			}
			if got := Process(tt.input); got != tt.expected {
				t.Errorf("Process(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCollapseIsFixedPointAfterCompaction(t *testing.T) {
	// A line with no equal neighbours is already its own result.
	line := Line{2, 4, 2, 4}
	if got := Process(line); got != line {
		t.Errorf("Process(%v) = %v, want unchanged", line, got)
	}
}

func TestProcessSlice(t *testing.T) {
	tests := []struct {
		input    []Tile
		expected []Tile
	}{
		{[]Tile{2, 2, 2, 2}, []Tile{4, 4}},
		{[]Tile{2, 2, 4}, []Tile{4, 4}},
		{[]Tile{4, 2, 2}, []Tile{4, 4}},
		{[]Tile{2, 4}, []Tile{2, 4}},
		{[]Tile{Empty, 2, Empty, 2}, []Tile{4}},
		{[]Tile{}, []Tile{}},
		{nil, []Tile{}},
	}

	for _, tt := range tests {
		got, err := ProcessSlice(tt.input)
		if err != nil {
			t.Fatalf("ProcessSlice(%v) failed: %v", tt.input, err)
		}
		if !slices.Equal(got, tt.expected) {
			t.Errorf("ProcessSlice(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestProcessSliceRejectsBadInput(t *testing.T) {
	if _, err := ProcessSlice([]Tile{2, 2, 2, 2, 2}); !errors.Is(err, ErrLineTooLong) {
		t.Errorf("five values: err = %v, want ErrLineTooLong", err)
	}

	for _, bad := range []Tile{1, 3, 6, -2} {
		if _, err := ProcessSlice([]Tile{2, bad}); !errors.Is(err, ErrInvalidTile) {
			t.Errorf("value %d: err = %v, want ErrInvalidTile", bad, err)
		}
	}
}

func TestTileValid(t *testing.T) {
	for _, v := range []Tile{Empty, 2, 4, 1024, 2048, 1 << 50} {
		if !v.Valid() {
			t.Errorf("%d should be valid", v)
		}
	}
	for _, v := range []Tile{1, 3, 12, -4} {
		if v.Valid() {
			t.Errorf("%d should be invalid", v)
		}
	}
}
