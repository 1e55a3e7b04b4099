package physics

import "github.com/vovakirdan/flapfight/internal/core"

// Projectile is an axis-locked bullet moving at constant speed.
type Projectile struct {
	X, Y      float64
	W, H      float64
	Direction int     // -1 = left, +1 = right
	Speed     float64 // Pixels per tick
	Damage    int
	TTL       int // Remaining ticks; 0 = unlimited
	Heavy     bool
}

// Rect returns the projectile's collision rectangle.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// DamageEvent reports that a projectile hit a target this tick.
// The caller applies it to whatever health counter the target has.
type DamageEvent struct {
	Target     int // Index into the targets slice
	Projectile int // Index into the input projectile slice
	Damage     int
}

// AdvanceProjectiles moves every projectile one tick and resolves hits.
//
// Per projectile, in order:
//  1. projectiles already outside [0, screenWidth] are dropped
//  2. X += Speed * Direction
//  3. the first overlapping target (in targets order) takes the damage and
//     the projectile is dropped; at most one target per projectile per tick
//  4. otherwise an overlapping obstacle drops it
//  5. otherwise leaving [0, screenWidth] drops it
//  6. otherwise a positive TTL counts down and drops it at zero
//
// Survivors keep their relative order. The input slice is not modified.
func AdvanceProjectiles(ps []Projectile, targets []Body, obstacles []core.Rect, screenWidth float64) ([]Projectile, []DamageEvent) {
	var survivors []Projectile
	var events []DamageEvent

	for i, p := range ps {
		if !inBounds(p.X, screenWidth) {
			continue
		}

		p.X += p.Speed * float64(p.Direction)
		r := p.Rect()

		hit := -1
		for t, target := range targets {
			if r.Overlaps(target.Rect()) {
				hit = t
				break
			}
		}
		if hit >= 0 {
			events = append(events, DamageEvent{Target: hit, Projectile: i, Damage: p.Damage})
			continue
		}

		if FirstOverlap(r, obstacles) >= 0 {
			continue
		}
		if !inBounds(p.X, screenWidth) {
			continue
		}

		if p.TTL > 0 {
			p.TTL--
			if p.TTL == 0 {
				continue
			}
		}

		survivors = append(survivors, p)
	}

	return survivors, events
}

func inBounds(x, screenWidth float64) bool {
	return x >= 0 && x <= screenWidth
}
