// Package fight implements a two-player side-view shooter on a static
// platform scenario. Each fighter walks, jumps and fires two kinds of
// bullets; the round ends when either runs out of health.
package fight

import (
	"github.com/vovakirdan/flapfight/internal/config"
	"github.com/vovakirdan/flapfight/internal/core"
	"github.com/vovakirdan/flapfight/internal/physics"
	"github.com/vovakirdan/flapfight/internal/registry"
)

// Game implements the fight logic.
type Game struct {
	players   [2]Fighter
	bullets   [2][]physics.Projectile // Owned by the shooter
	arena     *Arena
	mover     physics.Mover
	gameOver  bool
	paused    bool
	runtime   core.RuntimeConfig
	cfg       config.FightConfig
	pinned    bool
	tickCount int
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

// New creates a fight that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a fight bound to cfg.
func NewWithConfig(cfg config.FightConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fight"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platform Fight"
}

// Reset initializes or restarts the round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := config.LoadFight(configPath)
		if err != nil {
			cfg = config.DefaultFightConfig()
		}
		if difficultyPreset != "" {
			config.ApplyFightPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.arena = NewArena(g.cfg)
	g.mover = physics.Mover{
		Speed:        g.cfg.Physics.MoveSpeed,
		Gravity:      g.cfg.Physics.Gravity,
		JumpImpulse:  g.cfg.Physics.JumpImpulse,
		MaxFallSpeed: g.cfg.Physics.MaxFallSpeed,
	}
	g.players[0] = newFighter(g.cfg.Players, g.cfg.Players.Spawn1, 1)
	g.players[1] = newFighter(g.cfg.Players, g.cfg.Players.Spawn2, -1)
	g.bullets[0] = nil
	g.bullets[1] = nil
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
}

// Step advances the round by one tick. Phases run in this fixed order:
//
//  1. fire intents, P1 then P2, gated by each weapon's cooldown
//  2. P1 body: horizontal move, jump, gravity, vertical resolution
//  3. P2 body, same phases
//  4. P1 bullets against P2, then P2 bullets against P1
//  5. win check
//
// Bullets fired in phase 1 already move in phase 4 of the same tick.
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

	intents := [2]core.Intent{in.Player1().Intent(), in.Player2().Intent()}

	for i := range g.players {
		g.fire(i, intents[i])
	}

	for i := range g.players {
		p := &g.players[i]
		p.Body = g.mover.Step(p.Body, intents[i], g.arena.Obstacles(), g.arena.Bounds())
	}

	for i := range g.players {
		g.advanceBullets(i, 1-i)
	}

	if !g.players[0].Alive() || !g.players[1].Alive() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) fire(i int, in core.Intent) {
	p := &g.players[i]
	if in.Fire && p.CanFire(WeaponNormal, g.tickCount, g.cfg.Bullets.Normal.Cooldown) {
		g.bullets[i] = append(g.bullets[i], p.fire(WeaponNormal, g.cfg.Bullets.Normal, g.tickCount))
	}
	if in.FireHeavy && p.CanFire(WeaponHeavy, g.tickCount, g.cfg.Bullets.Heavy.Cooldown) {
		g.bullets[i] = append(g.bullets[i], p.fire(WeaponHeavy, g.cfg.Bullets.Heavy, g.tickCount))
	}
}

func (g *Game) advanceBullets(shooter, target int) {
	targets := []physics.Body{g.players[target].Body}
	survivors, events := physics.AdvanceProjectiles(g.bullets[shooter], targets, g.arena.Rects(), g.arena.Bounds().Width)
	g.bullets[shooter] = survivors
	for _, e := range events {
		g.players[target].Health -= e.Damage
	}
}

// Players returns both fighters.
func (g *Game) Players() [2]Fighter {
	return g.players
}

// Bullets returns the live bullets fired by player i (0 or 1).
func (g *Game) Bullets(i int) []physics.Projectile {
	return g.bullets[i]
}

// Arena returns the round's scenario.
func (g *Game) Arena() *Arena {
	return g.arena
}

// Outcome reports remaining health as scores. Both down is a draw.
func (g *Game) Outcome() core.MatchOutcome {
	o := core.MatchOutcome{
		Score1: max(0, g.players[0].Health),
		Score2: max(0, g.players[1].Health),
		Ticks:  g.tickCount,
	}
	a1, a2 := g.players[0].Alive(), g.players[1].Alive()
	switch {
	case a1 && !a2:
		o.Winner = core.Player1
	case a2 && !a1:
		o.Winner = core.Player2
	}
	return o
}

// State returns the current game state. Fight has no running score.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("fight", func() registry.Game {
		return New()
	})
}
