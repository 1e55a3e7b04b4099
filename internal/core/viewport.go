package core

import "math"

// Viewport maps world pixel coordinates onto a rectangular area of the screen.
// Objects are never drawn smaller than one cell, so thin bullets stay visible.
type Viewport struct {
	WorldW, WorldH float64
	Area           CellRect
}

// NewViewport creates a viewport that fits a world of worldW x worldH pixels
// into the given screen area.
func NewViewport(worldW, worldH float64, area CellRect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

// CellX converts a world x-coordinate to a screen column.
func (v Viewport) CellX(wx float64) int {
	return v.Area.X + int(math.Floor(wx*float64(v.Area.W)/v.WorldW))
}

// CellY converts a world y-coordinate to a screen row.
func (v Viewport) CellY(wy float64) int {
	return v.Area.Y + int(math.Floor(wy*float64(v.Area.H)/v.WorldH))
}

// Project converts a world rectangle to screen cells, clipped to the viewport
// area. ok is false when nothing of r is visible.
func (v Viewport) Project(r Rect) (CellRect, bool) {
	if v.WorldW <= 0 || v.WorldH <= 0 || v.Area.W <= 0 || v.Area.H <= 0 {
		return CellRect{}, false
	}

	x0 := v.CellX(r.X)
	y0 := v.CellY(r.Y)
	x1 := v.Area.X + int(math.Ceil(r.Right()*float64(v.Area.W)/v.WorldW))
	y1 := v.Area.Y + int(math.Ceil(r.Bottom()*float64(v.Area.H)/v.WorldH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = max(x0, v.Area.X)
	y0 = max(y0, v.Area.Y)
	x1 = min(x1, v.Area.Right())
	y1 = min(y1, v.Area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return CellRect{}, false
	}
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// FillWorld draws a world rectangle through the viewport.
func (s *Screen) FillWorld(v Viewport, r Rect, fill rune, c Color) {
	if cr, ok := v.Project(r); ok {
		s.FillRect(cr, fill, c)
	}
}
