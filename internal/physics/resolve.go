package physics

import "github.com/vovakirdan/flapfight/internal/core"

// ResolveVertical corrects a body after gravity integration.
//
// Obstacles are scanned in order and the first one overlapping the body
// decides the outcome:
//   - falling (VelocityY > 0): bottom snaps to the obstacle top, velocity is
//     zeroed and the body becomes grounded
//   - rising (VelocityY < 0): top snaps to the obstacle bottom and velocity is
//     zeroed; Grounded is left alone
//   - VelocityY == 0: the obstacle is skipped
//
// Without a match the screen floor applies: a body whose bottom reaches
// screenBottom is snapped onto it and grounded. An airborne body with
// VelocityY >= 0 loses its grounded flag.
//
// landed reports whether the body became grounded during this call.
//
// There is no swept test, so a body falling faster than a platform is thick
// can pass through it.
func ResolveVertical(b Body, obstacles []core.Rect, screenBottom float64) (Body, bool) {
	r := b.Rect()
	for _, o := range obstacles {
		if !r.Overlaps(o) {
			continue
		}
		switch {
		case b.VelocityY > 0:
			b.Y = o.Y - b.H
			b.VelocityY = 0
			b.Grounded = true
			return b, true
		case b.VelocityY < 0:
			b.Y = o.Bottom()
			b.VelocityY = 0
			return b, false
		}
	}

	if b.Bottom() >= screenBottom {
		b.Y = screenBottom - b.H
		b.VelocityY = 0
		b.Grounded = true
		return b, true
	}

	if b.VelocityY >= 0 {
		b.Grounded = false
	}
	return b, false
}

// ResolveHorizontal moves the body by dx unless the moved rectangle overlaps
// an obstacle, in which case the whole step is rejected and X is left at its
// previous value. The result is then clamped to [0, screenWidth].
func ResolveHorizontal(b Body, dx float64, obstacles []core.Rect, screenWidth float64) Body {
	oldX := b.X
	b.X += dx
	if FirstOverlap(b.Rect(), obstacles) >= 0 {
		b.X = oldX
	}

	if b.X < 0 {
		b.X = 0
	}
	if b.X+b.W > screenWidth {
		b.X = screenWidth - b.W
	}
	return b
}

// FirstOverlap returns the index of the first obstacle overlapping r, or -1.
func FirstOverlap(r core.Rect, obstacles []core.Rect) int {
	for i, o := range obstacles {
		if r.Overlaps(o) {
			return i
		}
	}
	return -1
}
