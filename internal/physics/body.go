// Package physics implements the discrete-step rigid rectangle kinematics shared
// by all games: gravity integration, platform collision resolution and
// projectile hit detection.
//
// All constants are per tick. Callers must step at a fixed rate (60 Hz for the
// shipped configs); scaling by real elapsed time changes every trajectory.
//
// Every operation takes and returns values. Obstacle lists are passed in
// explicitly and their order is significant: the first overlapping obstacle in
// list order wins.
package physics

import "github.com/vovakirdan/flapfight/internal/core"

// Body is a mutable axis-aligned entity affected by gravity.
type Body struct {
	X, Y      float64 // Top-left corner
	W, H      float64 // Size
	VelocityY float64 // Vertical speed per tick, positive = downward
	Grounded  bool    // Resting on an obstacle top or the screen floor
}

// NewBody creates a body at rest.
func NewBody(x, y, w, h float64) Body {
	return Body{X: x, Y: y, W: w, H: h}
}

// Rect returns the body's collision rectangle.
func (b Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Bottom returns the y-coordinate of the body's bottom edge.
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the body.
func (b Body) Center() (float64, float64) {
	return b.Rect().Center()
}

// IntegrateGravity advances the body by one tick of semi-implicit Euler:
// velocity first, then position. Velocity is not clamped.
func IntegrateGravity(b Body, gravity float64) Body {
	b.VelocityY += gravity
	b.Y += b.VelocityY
	return b
}
