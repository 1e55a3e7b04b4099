package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flapfight/internal/core"
)

func TestResolveVertical(t *testing.T) {
	platform := core.NewRect(150, 580, 150, 20)

	tests := []struct {
		name       string
		body       Body
		obstacles  []core.Rect
		wantY      float64
		wantVY     float64
		wantGround bool
		wantLanded bool
	}{
		{
			name:       "falling onto platform",
			body:       Body{X: 200, Y: 525, W: 40, H: 60, VelocityY: 5},
			obstacles:  []core.Rect{platform},
			wantY:      520,
			wantGround: true,
			wantLanded: true,
		},
		{
			name:      "rising into platform",
			body:      Body{X: 200, Y: 590, W: 40, H: 60, VelocityY: -8},
			obstacles: []core.Rect{platform},
			wantY:     600,
		},
		{
			name:       "rising keeps existing grounded flag",
			body:       Body{X: 200, Y: 590, W: 40, H: 60, VelocityY: -8, Grounded: true},
			obstacles:  []core.Rect{platform},
			wantY:      600,
			wantGround: true,
		},
		{
			name:      "zero velocity skips overlap",
			body:      Body{X: 200, Y: 560, W: 40, H: 60},
			obstacles: []core.Rect{platform},
			wantY:     560,
		},
		{
			name:       "floor snap without obstacles",
			body:       Body{X: 0, Y: 650, W: 40, H: 60, VelocityY: 12},
			wantY:      640,
			wantGround: true,
			wantLanded: true,
		},
		{
			name:   "airborne loses grounded",
			body:   Body{X: 0, Y: 100, W: 40, H: 60, VelocityY: 1, Grounded: true},
			wantY:  100,
			wantVY: 1,
		},
		{
			name:      "touching edge is not a hit",
			body:      Body{X: 300, Y: 525, W: 40, H: 60, VelocityY: 5},
			obstacles: []core.Rect{platform},
			wantY:     525,
			wantVY:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, landed := ResolveVertical(tt.body, tt.obstacles, 700)
			assert.Equal(t, tt.wantY, got.Y)
			assert.Equal(t, tt.wantVY, got.VelocityY)
			assert.Equal(t, tt.wantGround, got.Grounded)
			assert.Equal(t, tt.wantLanded, landed)
			assert.Equal(t, tt.body.X, got.X)
		})
	}
}

func TestResolveVerticalFirstObstacleWins(t *testing.T) {
	a := core.NewRect(0, 100, 100, 20)
	b := core.NewRect(0, 110, 100, 20)
	body := Body{X: 10, Y: 60, W: 40, H: 60, VelocityY: 5}

	got, _ := ResolveVertical(body, []core.Rect{a, b}, 700)
	assert.Equal(t, 40.0, got.Y, "first obstacle in list decides")

	got, _ = ResolveVertical(body, []core.Rect{b, a}, 700)
	assert.Equal(t, 50.0, got.Y, "swapping the list swaps the winner")
}

func TestResolveVerticalLandingIdempotent(t *testing.T) {
	obstacles := []core.Rect{core.NewRect(0, 300, 400, 20)}
	body := Body{X: 50, Y: 245, W: 30, H: 60, VelocityY: 4}

	once, landed := ResolveVertical(body, obstacles, 700)
	require.True(t, landed)

	twice, _ := ResolveVertical(once, obstacles, 700)
	assert.Equal(t, once.Y, twice.Y)
	assert.Equal(t, once.VelocityY, twice.VelocityY)
}

func TestResolveHorizontal(t *testing.T) {
	wall := core.NewRect(145, 500, 10, 200)

	tests := []struct {
		name  string
		x     float64
		dx    float64
		obs   []core.Rect
		wantX float64
	}{
		{name: "free move", x: 100, dx: 5, wantX: 105},
		{name: "blocked step rejected whole", x: 100, dx: 5, obs: []core.Rect{core.NewRect(141, 600, 10, 10)}, wantX: 100},
		{name: "step ending at contact allowed", x: 100, dx: 5, obs: []core.Rect{wall}, wantX: 105},
		{name: "clamp left", x: 2, dx: -5, wantX: 0},
		{name: "clamp right", x: 958, dx: 5, wantX: 960},
		{name: "blocked then clamped stays", x: 0, dx: -5, obs: []core.Rect{core.NewRect(-20, 600, 20, 10)}, wantX: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{X: tt.x, Y: 600, W: 40, H: 60}
			got := ResolveHorizontal(b, tt.dx, tt.obs, 1000)
			assert.Equal(t, tt.wantX, got.X)
			assert.Equal(t, 600.0, got.Y)
		})
	}
}

func TestResolveHorizontalRejectsToExactX(t *testing.T) {
	b := Body{X: 100, Y: 0, W: 10, H: 10}
	obstacle := core.NewRect(112, 0, 10, 10)

	got := ResolveHorizontal(b, 5, []core.Rect{obstacle}, 1000)
	assert.Equal(t, 100.0, got.X)
}

func TestFirstOverlap(t *testing.T) {
	r := core.NewRect(10, 10, 10, 10)
	obs := []core.Rect{
		core.NewRect(100, 100, 5, 5),
		core.NewRect(15, 15, 10, 10),
		core.NewRect(5, 5, 10, 10),
	}
	assert.Equal(t, 1, FirstOverlap(r, obs))
	assert.Equal(t, -1, FirstOverlap(r, obs[:1]))
	assert.Equal(t, -1, FirstOverlap(r, nil))
}
