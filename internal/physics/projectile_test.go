package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flapfight/internal/core"
)

func bullet(x, y float64, dir int) Projectile {
	return Projectile{X: x, Y: y, W: 10, H: 5, Direction: dir, Speed: 10, Damage: 10}
}

func TestAdvanceProjectilesMoves(t *testing.T) {
	ps := []Projectile{bullet(100, 50, 1), bullet(500, 50, -1)}

	out, events := AdvanceProjectiles(ps, nil, nil, 1000)

	require.Len(t, out, 2)
	assert.Empty(t, events)
	assert.Equal(t, 110.0, out[0].X)
	assert.Equal(t, 490.0, out[1].X)
	assert.Equal(t, 100.0, ps[0].X, "input must not be modified")
}

func TestAdvanceProjectilesCullsOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		p    Projectile
	}{
		{name: "left of screen heading right", p: bullet(-1, 50, 1)},
		{name: "right of screen heading left", p: bullet(1001, 50, -1)},
		{name: "leaves left edge", p: bullet(5, 50, -1)},
		{name: "leaves right edge", p: bullet(995, 50, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, events := AdvanceProjectiles([]Projectile{tt.p}, nil, nil, 1000)
			assert.Empty(t, out)
			assert.Empty(t, events)
		})
	}
}

func TestAdvanceProjectilesCullIgnoresTargetsAndObstacles(t *testing.T) {
	target := NewBody(0, 30, 40, 60)
	wall := []core.Rect{core.NewRect(0, 0, 20, 100)}

	out, events := AdvanceProjectiles([]Projectile{bullet(-1, 50, 1)}, []Body{target}, wall, 1000)

	assert.Empty(t, out)
	assert.Empty(t, events, "a culled bullet must not deal damage")
}

func TestAdvanceProjectilesEdgeInclusive(t *testing.T) {
	out, _ := AdvanceProjectiles([]Projectile{bullet(990, 50, 1), bullet(10, 50, -1)}, nil, nil, 1000)
	require.Len(t, out, 2)
	assert.Equal(t, 1000.0, out[0].X)
	assert.Equal(t, 0.0, out[1].X)
}

func TestAdvanceProjectilesSingleHit(t *testing.T) {
	target := NewBody(120, 30, 40, 60)

	out, events := AdvanceProjectiles([]Projectile{bullet(105, 50, 1)}, []Body{target}, nil, 1000)

	assert.Empty(t, out)
	require.Len(t, events, 1)
	assert.Equal(t, DamageEvent{Target: 0, Projectile: 0, Damage: 10}, events[0])
}

func TestAdvanceProjectilesOneTargetPerProjectile(t *testing.T) {
	a := NewBody(110, 30, 40, 60)
	b := NewBody(115, 30, 40, 60)

	_, events := AdvanceProjectiles([]Projectile{bullet(105, 50, 1)}, []Body{a, b}, nil, 1000)

	require.Len(t, events, 1)
	assert.Equal(t, 0, events[0].Target)
}

func TestAdvanceProjectilesTwoHitsSameTick(t *testing.T) {
	target := NewBody(120, 30, 40, 60)
	ps := []Projectile{bullet(105, 40, 1), bullet(105, 60, 1)}

	out, events := AdvanceProjectiles(ps, []Body{target}, nil, 1000)

	assert.Empty(t, out)
	require.Len(t, events, 2)
	assert.Equal(t, 0, events[0].Projectile)
	assert.Equal(t, 1, events[1].Projectile)
}

func TestAdvanceProjectilesObstacle(t *testing.T) {
	wall := core.NewRect(150, 0, 20, 100)
	ps := []Projectile{bullet(135, 50, 1), bullet(135, 200, 1)}

	out, events := AdvanceProjectiles(ps, nil, []core.Rect{wall}, 1000)

	assert.Empty(t, events)
	require.Len(t, out, 1)
	assert.Equal(t, 200.0, out[0].Y)
}

func TestAdvanceProjectilesTargetBeforeObstacle(t *testing.T) {
	wall := core.NewRect(150, 0, 20, 100)
	target := NewBody(140, 30, 40, 60)

	out, events := AdvanceProjectiles([]Projectile{bullet(135, 50, 1)}, []Body{target}, []core.Rect{wall}, 1000)

	assert.Empty(t, out)
	assert.Len(t, events, 1)
}

func TestAdvanceProjectilesKeepsOrder(t *testing.T) {
	ps := []Projectile{bullet(100, 1, 1), bullet(995, 2, 1), bullet(300, 3, -1), bullet(400, 4, 1)}

	out, _ := AdvanceProjectiles(ps, nil, nil, 1000)

	require.Len(t, out, 3)
	assert.Equal(t, []float64{1, 3, 4}, []float64{out[0].Y, out[1].Y, out[2].Y})
}

func TestAdvanceProjectilesTTL(t *testing.T) {
	p := bullet(100, 50, 1)
	p.TTL = 2

	out, _ := AdvanceProjectiles([]Projectile{p}, nil, nil, 1000)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].TTL)

	out, _ = AdvanceProjectiles(out, nil, nil, 1000)
	assert.Empty(t, out)

	forever := bullet(100, 50, 1)
	for range 50 {
		out, _ = AdvanceProjectiles([]Projectile{forever}, nil, nil, 1000)
		require.Len(t, out, 1)
		forever = out[0]
		if forever.X > 900 {
			forever.X = 100
		}
	}
	assert.Equal(t, 0, forever.TTL)
}
