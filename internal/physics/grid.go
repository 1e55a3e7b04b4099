package physics

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/flapfight/internal/core"
)

const solidTag = "solid"

// Grid is a broad-phase index over a static obstacle list, backed by a
// resolv.Space. Near answers in original list order, so resolving against
// its result is equivalent to resolving against the full list.
//
// Every rectangle is inflated by one pixel before it is bucketed, because
// resolv maps an object's far edge with a -1 offset that would otherwise
// miss sub-pixel overlaps across a cell boundary.
type Grid struct {
	space     *resolv.Space
	obstacles []core.Rect
	overflow  []int // Obstacles that do not fit in the space
	margin    float64
	spaceW    float64
	spaceH    float64
}

// NewGrid indexes obstacles for a world of width x height pixels.
// The space is padded by one cell on every side so bodies clamped to the
// screen edge still hit the fast path.
func NewGrid(obstacles []core.Rect, width, height float64, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 32
	}
	margin := float64(cellSize)
	cols := int(math.Ceil((width+2*margin)/float64(cellSize))) + 1
	rows := int(math.Ceil((height+2*margin)/float64(cellSize))) + 1

	g := &Grid{
		space:     resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		obstacles: append([]core.Rect(nil), obstacles...),
		margin:    margin,
		spaceW:    float64(cols * cellSize),
		spaceH:    float64(rows * cellSize),
	}

	for i, o := range g.obstacles {
		x, y, w, h := g.toSpace(o)
		if !g.fits(x, y, w, h) {
			g.overflow = append(g.overflow, i)
			continue
		}
		obj := resolv.NewObject(x, y, w, h, solidTag)
		obj.Data = i
		g.space.Add(obj)
	}
	return g
}

// Obstacles returns the indexed obstacle list.
func (g *Grid) Obstacles() []core.Rect {
	return g.obstacles
}

// Candidates returns the sorted indices of obstacles that may overlap r.
func (g *Grid) Candidates(r core.Rect) []int {
	x, y, w, h := g.toSpace(r)
	if !g.fits(x, y, w, h) {
		all := make([]int, len(g.obstacles))
		for i := range all {
			all[i] = i
		}
		return all
	}

	idx := append([]int(nil), g.overflow...)

	probe := resolv.NewObject(x, y, w, h)
	probe.Space = g.space
	if col := probe.Check(0, 0, solidTag); col != nil {
		for _, o := range col.Objects {
			if i, ok := o.Data.(int); ok {
				idx = append(idx, i)
			}
		}
	}

	sort.Ints(idx)
	return idx
}

// Near returns, in list order, the obstacles that may overlap r.
func (g *Grid) Near(r core.Rect) []core.Rect {
	idx := g.Candidates(r)
	if len(idx) == len(g.obstacles) {
		return g.obstacles
	}
	out := make([]core.Rect, len(idx))
	for n, i := range idx {
		out[n] = g.obstacles[i]
	}
	return out
}

// toSpace converts a world rect to inflated space coordinates.
func (g *Grid) toSpace(r core.Rect) (x, y, w, h float64) {
	return r.X - 1 + g.margin, r.Y - 1 + g.margin, r.W + 2, r.H + 2
}

func (g *Grid) fits(x, y, w, h float64) bool {
	return x >= 0 && y >= 0 && x+w <= g.spaceW && y+h <= g.spaceH
}
