package fight

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/flapfight/internal/core"
)

// Visual characters for rendering
const (
	FighterChar = '█'
	BlockChar   = '▓'
	FloorChar   = '▀'
	BulletChar  = '-'
	HeavyChar   = '='
	barFull     = '■'
	barEmpty    = '·'
	healthBarW  = 10
)

// viewport maps the world below the HUD row.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	area := core.CellRect{X: 0, Y: 1, W: dst.Width(), H: dst.Height() - 1}
	return core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, area)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.viewport(dst)

	// Scenario first, fighters and bullets on top
	for _, b := range g.arena.Blocks() {
		if b.Kind == BlockFloor {
			dst.FillWorld(v, b.Rect, FloorChar, core.ColorFloor)
		} else {
			dst.FillWorld(v, b.Rect, BlockChar, core.ColorBlock)
		}
	}

	colors := [2]core.Color{core.ColorPlayer1, core.ColorPlayer2}
	for i, p := range g.players {
		dst.FillWorld(v, p.Rect(), FighterChar, colors[i])
	}
	for i := range g.bullets {
		for _, b := range g.bullets[i] {
			if b.Heavy {
				dst.FillWorld(v, b.Rect(), HeavyChar, core.ColorHeavy)
			} else {
				dst.FillWorld(v, b.Rect(), BulletChar, core.ColorBullet)
			}
		}
	}

	g.drawHUD(dst, colors)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.DrawMessage("GAME OVER", resultText(g.Outcome())+"  |  Press R to restart")
	}
}

func (g *Game) drawHUD(dst *core.Screen, colors [2]core.Color) {
	left := g.hudText(0)
	right := g.hudText(1)
	dst.DrawTextColored(1, 0, left, colors[0])
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, colors[1])
}

// hudText renders "P1 ■■■■■■■■■■ 100  N:ok   H:1.4s".
func (g *Game) hudText(i int) string {
	p := g.players[i]
	return fmt.Sprintf("P%d %s %3d  N:%s H:%s",
		i+1,
		bar(p.Health, g.cfg.Players.Health, healthBarW),
		max(0, p.Health),
		g.cooldownText(p, WeaponNormal, g.cfg.Bullets.Normal.Cooldown),
		g.cooldownText(p, WeaponHeavy, g.cfg.Bullets.Heavy.Cooldown),
	)
}

func (g *Game) cooldownText(p Fighter, w Weapon, cooldown int) string {
	left := p.Cooldown(w, g.tickCount, cooldown)
	if left == 0 {
		return "ok  "
	}
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return fmt.Sprintf("%.1fs", float64(left)/float64(rate))
}

// bar draws value/total as a fixed-width gauge.
func bar(value, total, width int) string {
	if total <= 0 {
		return strings.Repeat(string(barEmpty), width)
	}
	filled := value * width / total
	filled = core.Clamp(filled, 0, width)
	if value > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat(string(barFull), filled) + strings.Repeat(string(barEmpty), width-filled)
}

func resultText(o core.MatchOutcome) string {
	if o.Draw() {
		return "Draw!"
	}
	return fmt.Sprintf("Player %d wins!", int(o.Winner))
}
