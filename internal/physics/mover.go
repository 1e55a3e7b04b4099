package physics

import "github.com/vovakirdan/flapfight/internal/core"

// Obstacles yields, in list order, the static obstacles that may overlap a
// probe rectangle. Returning extra obstacles is fine; omitting one that does
// overlap is not.
type Obstacles interface {
	Near(r core.Rect) []core.Rect
}

// List is the trivial Obstacles: every query returns the whole list.
type List []core.Rect

// Near returns the whole list.
func (l List) Near(core.Rect) []core.Rect {
	return l
}

// Bounds is the play area. The floor is at Height.
type Bounds struct {
	Width  float64
	Height float64
}

// Mover holds the per-tick movement constants of a walking body.
type Mover struct {
	Speed        float64 // Horizontal pixels per tick
	Gravity      float64 // Added to VelocityY each tick
	JumpImpulse  float64 // VelocityY set on jump (negative = up)
	MaxFallSpeed float64 // Terminal velocity; 0 disables the clamp
}

// Fall applies one tick of gravity, honoring MaxFallSpeed.
func (m Mover) Fall(b Body) Body {
	if m.MaxFallSpeed <= 0 {
		return IntegrateGravity(b, m.Gravity)
	}
	b.VelocityY += m.Gravity
	if b.VelocityY > m.MaxFallSpeed {
		b.VelocityY = m.MaxFallSpeed
	}
	b.Y += b.VelocityY
	return b
}

// Step runs the body phases of one tick, in this fixed order:
//
//  1. horizontal intent: left and right sum into one step, resolved once
//     against obstacles and clamped once to the screen
//  2. jump intent, only while grounded
//  3. gravity integration
//  4. vertical resolution against obstacles and the floor
//
// Projectile updates and win checks belong to the caller and must run after
// every body has stepped.
func (m Mover) Step(b Body, in core.Intent, obstacles Obstacles, bounds Bounds) Body {
	var dx float64
	if in.Left {
		dx -= m.Speed
	}
	if in.Right {
		dx += m.Speed
	}
	if in.Left || in.Right {
		b = m.moveX(b, dx, obstacles, bounds)
	}

	if in.Jump && b.Grounded {
		b.VelocityY = m.JumpImpulse
		b.Grounded = false
	}

	b = m.Fall(b)
	b, _ = ResolveVertical(b, obstacles.Near(b.Rect()), bounds.Height)
	return b
}

func (m Mover) moveX(b Body, dx float64, obstacles Obstacles, bounds Bounds) Body {
	probe := b.Rect().Union(b.Rect().Translate(dx, 0))
	return ResolveHorizontal(b, dx, obstacles.Near(probe), bounds.Width)
}
