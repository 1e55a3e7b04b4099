// Package flappy2 implements local two-player Flappy Bird.
// Both birds fly through the same pipe stream and the higher score wins
// once both have crashed. Best scores are kept in a records store.
package flappy2

import (
	"fmt"

	"github.com/vovakirdan/flapfight/internal/config"
	"github.com/vovakirdan/flapfight/internal/core"
	"github.com/vovakirdan/flapfight/internal/games/flappy"
	"github.com/vovakirdan/flapfight/internal/physics"
	"github.com/vovakirdan/flapfight/internal/records"
	"github.com/vovakirdan/flapfight/internal/registry"
)

// Visual characters for rendering
const (
	BirdChar   = '●'
	PipeChar   = '█'
	GroundChar = '═'
)

// Bird is one player's bird.
type Bird struct {
	physics.Body
	Alive bool
	Score int
}

// Game implements the two-player flappy logic.
type Game struct {
	birds      [2]Bird
	mover      physics.Mover
	pipes      *flappy.PipeManager
	gameOver   bool
	paused     bool
	runtime    core.RuntimeConfig
	cfg        config.Flappy2Config
	pinned     bool
	difficulty *config.DifficultyManager
	tickCount  int

	store      records.Store
	best       records.Records // As loaded at Reset
	recordsErr error
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	recordsStore     records.Store
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetRecordsStore sets the store used by games created with New.
func SetRecordsStore(s records.Store) {
	recordsStore = s
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg and store. A nil store disables records.
func NewWithConfig(cfg config.Flappy2Config, store records.Store) *Game {
	return &Game{cfg: cfg, pinned: true, store: store}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy2"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird: Two Players"
}

// Reset initializes or restarts the game and reloads the records.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := config.LoadFlappy2(configPath)
		if err != nil {
			cfg = config.DefaultFlappy2Config()
		}
		if difficultyPreset != "" {
			config.ApplyFlappy2Preset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.store = recordsStore
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.mover = physics.Mover{
		Gravity:      g.cfg.Physics.Gravity,
		JumpImpulse:  g.cfg.Physics.FlapImpulse,
		MaxFallSpeed: g.cfg.Physics.MaxFallSpeed,
	}

	for i, b := range g.cfg.Birds {
		g.birds[i] = Bird{Body: physics.NewBody(b.X, b.StartY, b.Width, b.Height), Alive: true}
	}
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.pipes = flappy.NewPipeManager(runtime.Seed, g.cfg.Pipes, g.cfg.World, g.difficulty)

	g.best, g.recordsErr = records.Records{}, nil
	if g.store != nil {
		// Fail soft: a bad store still yields zero records
		g.best, g.recordsErr = g.store.Load()
	}
}

// Step advances the game by one tick. Phases run in this order:
// pipe spawn, per-bird flap and gravity with the ceiling clamp, pipe
// movement, per-bird pipe collision then scoring, off-screen pipe removal,
// floor check, end of match.
//
// A dead bird is frozen. It neither moves, scores nor collides.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	lead := g.leadScore()
	g.pipes.Spawn(lead, g.tickCount)

	players := [2]core.PlayerID{core.Player1, core.Player2}
	for i := range g.birds {
		b := &g.birds[i]
		if !b.Alive {
			continue
		}
		if in.Player(players[i]).Has(core.ActionJump) {
			b.VelocityY = g.mover.JumpImpulse
		}
		b.Body = g.mover.Fall(b.Body)
		if b.Y < 0 {
			b.Y = 0
			b.VelocityY = 0
		}
	}

	g.pipes.Advance(lead, g.tickCount)

	for i := range g.birds {
		b := &g.birds[i]
		if !b.Alive {
			continue
		}
		if g.pipes.Collides(b.Rect()) {
			b.Alive = false
			continue
		}
		b.Score += g.pipes.Pass(i, b.X)
	}

	g.pipes.Cull()

	for i := range g.birds {
		b := &g.birds[i]
		if b.Alive && b.Y > g.cfg.World.Height-b.H {
			b.Alive = false
		}
	}

	if !g.birds[0].Alive && !g.birds[1].Alive {
		g.gameOver = true
		g.saveRecords()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) leadScore() int {
	return max(g.birds[0].Score, g.birds[1].Score)
}

func (g *Game) saveRecords() {
	if g.store == nil {
		return
	}
	merged := g.best.Merge(g.birds[0].Score, g.birds[1].Score)
	if err := g.store.Save(merged); err != nil {
		g.recordsErr = err
	}
}

// Birds returns both birds.
func (g *Game) Birds() [2]Bird {
	return g.birds
}

// Records returns the best scores including the current match once it is over.
func (g *Game) Records() records.Records {
	if g.gameOver {
		return g.best.Merge(g.birds[0].Score, g.birds[1].Score)
	}
	return g.best
}

// Err returns the last records error. Loading errors are informational;
// the game runs on zero records.
func (g *Game) Err() error {
	return g.recordsErr
}

// Outcome reports scores and the winner. A tie is a draw.
func (g *Game) Outcome() core.MatchOutcome {
	o := core.MatchOutcome{
		Score1: g.birds[0].Score,
		Score2: g.birds[1].Score,
		Ticks:  g.tickCount,
	}
	switch {
	case o.Score1 > o.Score2:
		o.Winner = core.Player1
	case o.Score2 > o.Score1:
		o.Winner = core.Player2
	}
	return o
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	area := core.CellRect{X: 0, Y: 1, W: dst.Width(), H: dst.Height() - 2}
	v := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, area)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar)

	for _, p := range g.pipes.Pipes() {
		dst.FillWorld(v, p.TopRect(), PipeChar, core.ColorPipe)
		dst.FillWorld(v, p.BottomRect(g.cfg.World.Height), PipeChar, core.ColorPipe)
	}

	colors := [2]core.Color{core.ColorPlayer1, core.ColorPlayer2}
	for i, b := range g.birds {
		if b.Alive {
			dst.FillWorld(v, b.Rect(), BirdChar, colors[i])
		}
	}

	// HUD
	p1 := fmt.Sprintf(" P1: %d ", g.birds[0].Score)
	p2 := fmt.Sprintf(" P2: %d ", g.birds[1].Score)
	dst.DrawTextColored(1, 0, p1, colors[0])
	dst.DrawTextColored(2+len(p1), 0, p2, colors[1])
	best := g.Records()
	dst.DrawTextColored(3+len(p1)+len(p2), 0, fmt.Sprintf(" Best: %d / %d ", best.P1, best.P2), core.ColorHUD)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}

	if g.gameOver {
		dst.DrawMessage("GAME OVER", winnerText(g.Outcome())+"  |  Press R to restart")
	}
}

func winnerText(o core.MatchOutcome) string {
	if o.Draw() {
		return "Draw!"
	}
	return fmt.Sprintf("Player %d wins!", int(o.Winner))
}

// State returns the current game state. Score is the leading score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.leadScore(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy2", func() registry.Game {
		return New()
	})
}
