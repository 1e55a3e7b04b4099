// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/flapfight/internal/config"
	"github.com/vovakirdan/flapfight/internal/core"
	"github.com/vovakirdan/flapfight/internal/physics"
	"github.com/vovakirdan/flapfight/internal/registry"
)

// Visual characters for rendering
const (
	BirdChar   = '●'
	PipeChar   = '█'
	GroundChar = '═'
)

// Game implements the Flappy Bird game logic.
type Game struct {
	bird       physics.Body
	mover      physics.Mover
	pipes      *PipeManager
	score      int
	gameOver   bool
	paused     bool
	runtime    core.RuntimeConfig
	cfg        config.FlappyConfig
	pinned     bool // cfg was supplied by the caller; skip loading
	difficulty *config.DifficultyManager
	tickCount  int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// New creates a new Flappy Bird game instance that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			cfg = config.DefaultFlappyConfig()
		}
		if difficultyPreset != "" {
			config.ApplyFlappyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.mover = physics.Mover{
		Gravity:      g.cfg.Physics.Gravity,
		JumpImpulse:  g.cfg.Physics.FlapImpulse,
		MaxFallSpeed: g.cfg.Physics.MaxFallSpeed,
	}

	b := g.cfg.Bird
	g.bird = physics.NewBody(b.X, b.StartY, b.Width, b.Height)
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.pipes == nil {
		g.pipes = NewPipeManager(runtime.Seed, g.cfg.Pipes, g.cfg.World, g.difficulty)
	} else {
		g.pipes.cfg = g.cfg.Pipes
		g.pipes.world = g.cfg.World
		g.pipes.difficulty = g.difficulty
		g.pipes.Reset(runtime.Seed)
	}
}

// Step advances the game by one tick. Phases run in this order:
// pipe spawn, flap, gravity, pipe movement, pipe collision, scoring,
// off-screen pipe removal, screen bounds.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.pipes.Spawn(g.score, g.tickCount)

	if in.Player1().Has(core.ActionJump) {
		g.bird.VelocityY = g.mover.JumpImpulse
	}
	g.bird = g.mover.Fall(g.bird)

	g.pipes.Advance(g.score, g.tickCount)

	if g.pipes.Collides(g.bird.Rect()) {
		g.gameOver = true
	}
	g.score += g.pipes.Pass(0, g.bird.X)
	g.pipes.Cull()

	if g.bird.Y > g.cfg.World.Height-g.bird.H || g.bird.Y < 0 {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// Bird returns the bird's body.
func (g *Game) Bird() physics.Body {
	return g.bird
}

// Pipes returns the live pipes.
func (g *Game) Pipes() []Pipe {
	return g.pipes.Pipes()
}

// viewport maps the world below the HUD row.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	area := core.CellRect{X: 0, Y: 1, W: dst.Width(), H: dst.Height() - 2}
	return core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, area)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.viewport(dst)

	// Draw ground
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar)

	for _, p := range g.pipes.Pipes() {
		dst.FillWorld(v, p.TopRect(), PipeChar, core.ColorPipe)
		dst.FillWorld(v, p.BottomRect(g.cfg.World.Height), PipeChar, core.ColorPipe)
	}

	dst.FillWorld(v, g.bird.Rect(), BirdChar, core.ColorPlayer1)

	// Draw HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorHUD)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}

	if g.gameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
