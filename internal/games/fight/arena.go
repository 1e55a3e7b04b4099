package fight

import (
	"github.com/vovakirdan/flapfight/internal/config"
	"github.com/vovakirdan/flapfight/internal/core"
	"github.com/vovakirdan/flapfight/internal/physics"
)

// BlockKind only affects rendering.
type BlockKind int

const (
	BlockPlatform BlockKind = iota
	BlockFloor
)

// Block is a static scenario obstacle.
type Block struct {
	core.Rect
	Kind BlockKind
}

// Arena is the immutable scenario of a round: the blocks in list order and
// a broad-phase index over them.
type Arena struct {
	blocks []Block
	rects  []core.Rect
	grid   *physics.Grid
	bounds physics.Bounds
}

// NewArena builds the scenario described by cfg.
func NewArena(cfg config.FightConfig) *Arena {
	a := &Arena{
		bounds: physics.Bounds{Width: cfg.World.Width, Height: cfg.World.Height},
	}
	for _, b := range cfg.Blocks {
		kind := BlockPlatform
		if b.Kind == "floor" {
			kind = BlockFloor
		}
		r := core.NewRect(b.X, b.Y, b.W, b.H)
		a.blocks = append(a.blocks, Block{Rect: r, Kind: kind})
		a.rects = append(a.rects, r)
	}
	a.grid = physics.NewGrid(a.rects, cfg.World.Width, cfg.World.Height, cfg.Grid.CellSize)
	return a
}

// Blocks returns the blocks in scenario order.
func (a *Arena) Blocks() []Block {
	return a.blocks
}

// Rects returns the block rectangles in scenario order.
func (a *Arena) Rects() []core.Rect {
	return a.rects
}

// Obstacles returns the broad-phase view used for body resolution.
func (a *Arena) Obstacles() physics.Obstacles {
	return a.grid
}

// Bounds returns the play area.
func (a *Arena) Bounds() physics.Bounds {
	return a.bounds
}
