package core

import (
	"strings"
	"testing"
)

// rows returns the screen as a slice of row strings.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, want blanks", y, row)
		}
	}

	if neg := NewScreen(-4, -1); neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 2, 'X')

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 2, 'X'},
		{0, 0, ' '},
		{-1, 0, ' '},
		{4, 0, ' '},
		{0, -1, ' '},
		{0, 4, ' '},
	}
	for _, tt := range tests {
		if got := s.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("Get(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}

	// Writes outside the buffer are dropped.
	s.Set(-1, 0, 'A')
	s.Set(0, 99, 'A')
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out-of-bounds Set should be ignored")
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(3, 2)

	s.Fill('#')
	if s.String() != "###\n###" {
		t.Errorf("after Fill: %q", s.String())
	}

	s.SetColored(0, 0, '2', ColorRed)
	s.Clear()
	if s.String() != "   \n   " {
		t.Errorf("after Clear: %q", s.String())
	}
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 3)
	s.DrawText(1, 0, "Score")
	s.DrawText(6, 1, "Turn") // Clipped to "Tu"
	s.DrawTextCentered(2, "2048")

	want := []string{
		" Score  ",
		"      Tu",
		"  2048  ",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
}

func TestScreenDrawTextUnicode(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(0, 0, "─┼─")
	s.DrawTextCentered(0, "┼")

	if s.Row(0) != "─┼┼  " {
		t.Errorf("multi-byte runes should take one cell each, row = %q", s.Row(0))
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "2048", ColorBrightYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != '2' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1) = %+v, want '2' in bright yellow", cell)
	}
	if s.GetCell(0, 1).Color != ColorDefault {
		t.Error("cells outside drawn text should keep the default color")
	}

	out := s.GetCell(-1, -1)
	if out.Rune != ' ' || out.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell should be a blank cell, got %+v", out)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(0, 0, 6, 4), '.')
	s.DrawBox(NewRect(0, 0, 5, 3))

	want := []string{
		"┌───┐.",
		"│...│.",
		"└───┘.",
		"......",
	}
	for y := range want {
		if got := s.Row(y); got != want[y] {
			t.Errorf("row %d = %q, want %q", y, got, want[y])
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if s.Row(0) != "Hell" {
		t.Errorf("row 0 = %q, want %q", s.Row(0), "Hell")
	}

	s.Resize(12, 6)
	if !strings.HasPrefix(s.Row(0), "Hell ") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Error("rows cut by shrinking should come back blank")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, want blanks", got)
	}
	if got := s.Row(1); got != "   " {
		t.Errorf("Row(1) = %q, want blanks", got)
	}
}
