package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{14, 14, true},
		{12, 12, true},
		{15, 10, false},
		{10, 15, false},
		{9, 10, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
	if r.Right() != 15 || r.Bottom() != 15 {
		t.Errorf("Right/Bottom = %d/%d, expected 15/15", r.Right(), r.Bottom())
	}
}

func TestViewport(t *testing.T) {
	// 70x70 world into 80x40 cells: height-bound, 35 rows cover 70 units.
	v := NewViewport(NewRect(0, 0, 80, 35), -35, 0, 35, 70)

	if v.Scale != 1 {
		t.Fatalf("Scale = %f, expected 1", v.Scale)
	}

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"top left", -35, 70, 5, 0},
		{"centre", 0, 35, 40, 17},
		{"bottom right inside", 34.9, 0.1, 74, 34},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.ToCell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("ToCell(%g, %g) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}

	x, y := v.ToWorld(40, 17)
	if x != 0.5 || y != 35 {
		t.Errorf("ToWorld(40, 17) = (%g, %g), expected (0.5, 35)", x, y)
	}

	w, h := v.CellSize()
	if w != 1 || h != 2 {
		t.Errorf("CellSize() = %f, %f, expected 1, 2", w, h)
	}
}

func TestViewportWidthBound(t *testing.T) {
	v := NewViewport(NewRect(0, 0, 35, 100), -35, 0, 35, 70)
	if v.Scale != 0.5 {
		t.Fatalf("Scale = %f, expected 0.5", v.Scale)
	}
	// 70 world units tall -> 17.5 rows, centred vertically in 100.
	_, top := v.ToCell(0, 70)
	if top < 40 || top > 42 {
		t.Errorf("top row = %d, expected the picture centred", top)
	}
}

func TestColorBright(t *testing.T) {
	tests := []struct {
		in, out Color
	}{
		{ColorRed, ColorBrightRed},
		{ColorMagenta, ColorBrightMagenta},
		{ColorWhite, ColorBrightWhite},
		{ColorOrange, ColorBrightYellow},
		{ColorGray, ColorGray},
		{ColorBrightCyan, ColorBrightCyan},
	}
	for _, tc := range tests {
		if got := tc.in.Bright(); got != tc.out {
			t.Errorf("%d.Bright() = %d, expected %d", tc.in, got, tc.out)
		}
	}
}
