package fight

import (
	"github.com/vovakirdan/flapfight/internal/config"
	"github.com/vovakirdan/flapfight/internal/physics"
)

// Weapon is one of the two guns every fighter carries.
type Weapon int

const (
	WeaponNormal Weapon = iota
	WeaponHeavy
)

// Fighter is one player: a walking body plus health and gun state.
type Fighter struct {
	physics.Body
	Health   int
	Facing   int    // Shot direction: +1 right, -1 left
	lastShot [2]int // Tick of the last shot per weapon
}

func newFighter(cfg config.FightPlayers, spawn config.PointConfig, facing int) Fighter {
	return Fighter{
		Body:   physics.NewBody(spawn.X, spawn.Y, cfg.Width, cfg.Height),
		Health: cfg.Health,
		Facing: facing,
	}
}

// Alive reports whether the fighter still has health.
func (f Fighter) Alive() bool {
	return f.Health > 0
}

// CanFire reports whether more than cooldown ticks have passed since the
// last shot of w.
func (f Fighter) CanFire(w Weapon, tick, cooldown int) bool {
	return tick-f.lastShot[w] > cooldown
}

// Cooldown returns how many ticks remain before w can fire again.
func (f Fighter) Cooldown(w Weapon, tick, cooldown int) int {
	return max(0, cooldown-(tick-f.lastShot[w])+1)
}

// fire spawns a projectile with its top-left corner at the fighter's center.
func (f *Fighter) fire(w Weapon, b config.BulletConfig, tick int) physics.Projectile {
	f.lastShot[w] = tick
	cx, cy := f.Center()
	return physics.Projectile{
		X:         cx,
		Y:         cy,
		W:         b.Width,
		H:         b.Height,
		Direction: f.Facing,
		Speed:     b.Speed,
		Damage:    b.Damage,
		TTL:       b.TTL,
		Heavy:     w == WeaponHeavy,
	}
}
