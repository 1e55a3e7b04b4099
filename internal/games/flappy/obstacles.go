package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flapfight/internal/config"
	"github.com/vovakirdan/flapfight/internal/core"
)

// Pipe is a pair of vertical obstacles with a gap for the birds to pass through.
type Pipe struct {
	X         float64 // Left edge
	TopHeight float64 // Height of the upper pipe; the gap starts here
	Gap       float64 // Height of the passable gap
	Width     float64
	passed    uint8 // Bit i set once bird i has scored this pipe
}

// TopRect returns the collision rectangle for the upper pipe.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.Width, p.TopHeight)
}

// BottomRect returns the collision rectangle for the lower pipe.
func (p Pipe) BottomRect(worldH float64) core.Rect {
	y := p.TopHeight + p.Gap
	return core.NewRect(p.X, y, p.Width, worldH-y)
}

// Hits reports whether r overlaps either half of the pipe.
func (p Pipe) Hits(r core.Rect, worldH float64) bool {
	return r.Overlaps(p.TopRect()) || r.Overlaps(p.BottomRect(worldH))
}

// PassedBy reports whether bird has already scored this pipe.
func (p Pipe) PassedBy(bird int) bool {
	return p.passed&(1<<bird) != 0
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
// Both flappy games share it; birds are identified by a small index.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	cfg        config.PipeConfig
	world      config.WorldConfig
	difficulty *config.DifficultyManager
	sinceSpawn int
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg config.PipeConfig, world config.WorldConfig, diff *config.DifficultyManager) *PipeManager {
	if diff == nil {
		diff = config.NewDifficultyManager(config.DifficultyConfig{})
	}
	pm := &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		cfg:        cfg,
		world:      world,
		difficulty: diff,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
	pm.sinceSpawn = 0
}

// Spawn counts one tick and adds a pipe at the right edge once the spawn
// interval has elapsed. The first pipe appears after one full interval.
// It reports whether a pipe was added.
func (pm *PipeManager) Spawn(score, ticks int) bool {
	pm.sinceSpawn++
	if pm.sinceSpawn < pm.difficulty.SpawnInterval(pm.cfg.SpawnInterval, score, ticks) {
		return false
	}
	pm.sinceSpawn = 0

	gap := pm.difficulty.GapSize(pm.cfg.Gap, score, ticks)
	lo := int(pm.cfg.Margin)
	hi := int(pm.world.Height - gap - pm.cfg.Margin)
	top := lo
	if hi > lo {
		top = lo + pm.rng.Intn(hi-lo+1)
	}

	pm.pipes = append(pm.pipes, Pipe{
		X:         pm.world.Width,
		TopHeight: float64(top),
		Gap:       gap,
		Width:     pm.cfg.Width,
	})
	return true
}

// Add appends a pipe as if it had just spawned.
func (pm *PipeManager) Add(p Pipe) {
	p.passed = 0
	pm.pipes = append(pm.pipes, p)
}

// Advance moves every pipe left by the current pipe speed.
func (pm *PipeManager) Advance(score, ticks int) {
	speed := pm.difficulty.Speed(pm.cfg.Speed, score, ticks)
	for i := range pm.pipes {
		pm.pipes[i].X -= speed
	}
}

// Collides reports whether r overlaps any pipe.
func (pm *PipeManager) Collides(r core.Rect) bool {
	for _, p := range pm.pipes {
		if p.Hits(r, pm.world.Height) {
			return true
		}
	}
	return false
}

// Pass marks every pipe whose right edge is strictly left of birdX as passed
// by bird and returns how many were newly passed.
func (pm *PipeManager) Pass(bird int, birdX float64) int {
	n := 0
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if !p.PassedBy(bird) && p.X+p.Width < birdX {
			p.passed |= 1 << bird
			n++
		}
	}
	return n
}

// Cull removes pipes that have fully left the screen.
func (pm *PipeManager) Cull() {
	valid := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+p.Width > 0 {
			valid = append(valid, p)
		}
	}
	pm.pipes = valid
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
