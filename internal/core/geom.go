// Package core provides the platform-neutral types shared by the game and the
// front ends: the colored screen buffer, the world-to-screen viewport, input
// actions and runtime configuration. It does not import Bubble Tea.
package core

import "math"

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2.0

// Viewport maps a y-up world rectangle onto a cell rectangle, preserving the
// world's aspect ratio with CellAspect taken into account and centering the
// result.
type Viewport struct {
	Area  Rect    // target cells
	Scale float64 // cells per world unit, horizontally
	MinX  float64 // world x at the left edge
	MaxY  float64 // world y at the top edge
	offX  int
	offY  int
}

// NewViewport fits the world rectangle [minX,maxX]x[minY,maxY] into area.
func NewViewport(area Rect, minX, minY, maxX, maxY float64) Viewport {
	worldW := maxX - minX
	worldH := maxY - minY

	scale := float64(area.W) / worldW
	if h := float64(area.H) * CellAspect / worldH; h < scale {
		scale = h
	}

	usedW := int(math.Round(worldW * scale))
	usedH := int(math.Round(worldH * scale / CellAspect))

	return Viewport{
		Area:  area,
		Scale: scale,
		MinX:  minX,
		MaxY:  maxY,
		offX:  area.X + (area.W-usedW)/2,
		offY:  area.Y + (area.H-usedH)/2,
	}
}

// ToCell converts a world point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := int(math.Floor((x - v.MinX) * v.Scale))
	cy := int(math.Floor((v.MaxY - y) * v.Scale / CellAspect))
	return v.offX + cx, v.offY + cy
}

// ToWorld returns the world position of the centre of cell (cx, cy).
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	x := v.MinX + (float64(cx-v.offX)+0.5)/v.Scale
	y := v.MaxY - (float64(cy-v.offY)+0.5)*CellAspect/v.Scale
	return x, y
}

// CellSize returns the world size of one cell, horizontally and vertically.
func (v Viewport) CellSize() (float64, float64) {
	return 1 / v.Scale, CellAspect / v.Scale
}
