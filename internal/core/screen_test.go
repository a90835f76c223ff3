package core

import (
	"strings"
	"testing"
)

// rows splits the plain-text rendering for row-wise assertions.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for i, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, expected blanks", i, row)
		}
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		draw     func(s *Screen)
		expected []string
	}{
		{
			name: "set ignores out of bounds",
			w:    3,
			h:    2,
			draw: func(s *Screen) {
				s.Set(1, 1, 'o')
				s.Set(-1, 0, 'x')
				s.Set(3, 0, 'x')
				s.Set(0, 2, 'x')
			},
			expected: []string{"   ", " o "},
		},
		{
			name:     "text clipped at the right edge",
			w:        5,
			h:        1,
			draw:     func(s *Screen) { s.DrawText(3, 0, "Score") },
			expected: []string{"   Sc"},
		},
		{
			name:     "centered text",
			w:        9,
			h:        1,
			draw:     func(s *Screen) { s.DrawTextCentered(0, "TILT", ColorRed) },
			expected: []string{"  TILT   "},
		},
		{
			name:     "multibyte glyphs take one cell",
			w:        4,
			h:        1,
			draw:     func(s *Screen) { s.DrawText(0, 0, "●◉▒") },
			expected: []string{"●◉▒ "},
		},
		{
			name:     "rect fill",
			w:        4,
			h:        3,
			draw:     func(s *Screen) { s.DrawRect(NewRect(1, 1, 2, 2), '#') },
			expected: []string{"    ", " ## ", " ## "},
		},
		{
			name: "box outline",
			w:    5,
			h:    4,
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 5, 4), ColorDefault) },
			expected: []string{
				"┌───┐",
				"│   │",
				"│   │",
				"└───┘",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.w, tt.h)
			tt.draw(s)
			got := rows(s)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d rows, expected %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("row %d = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ball", ColorBrightWhite)

	s.Clear()

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("cell (%d, %d) = %+v after Clear, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextColored(0, 0, "◉", ColorMagenta)
	s.SetColored(2, 0, '█', ColorYellow)

	tests := []struct {
		x     int
		rune  rune
		color Color
	}{
		{0, '◉', ColorMagenta},
		{1, ' ', ColorDefault},
		{2, '█', ColorYellow},
		{9, ' ', ColorDefault}, // out of bounds reads blank
	}
	for _, tt := range tests {
		c := s.GetCell(tt.x, 0)
		if c.Rune != tt.rune || c.Color != tt.color {
			t.Errorf("GetCell(%d, 0) = {%q %d}, expected {%q %d}", tt.x, c.Rune, c.Color, tt.rune, tt.color)
		}
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)

	expected := []string{"ab", "ef", "  "}
	got := rows(s)
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("row %d = %q, expected %q", i, got[i], expected[i])
		}
	}

	// Same size is a no-op.
	s.Resize(2, 3)
	if rows(s)[0] != "ab" {
		t.Error("Resize to the same size should keep content")
	}
}
