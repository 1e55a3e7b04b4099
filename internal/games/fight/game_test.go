package fight

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flapfight/internal/config"
	"github.com/vovakirdan/flapfight/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultFightConfig())
	g.Reset(testRuntime())
	return g
}

// input builds a two-player frame from per-player action lists.
func input(p1, p2 []core.Action) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	f1, f2 := core.NewInputFrame(), core.NewInputFrame()
	for _, a := range p1 {
		f1.Set(a)
	}
	for _, a := range p2 {
		f2.Set(a)
	}
	m.SetPlayer(core.Player1, f1)
	m.SetPlayer(core.Player2, f2)
	return m
}

func idle() core.MultiInputFrame {
	return input(nil, nil)
}

func TestSpawn(t *testing.T) {
	g := newTestGame(t)
	p := g.Players()

	if p[0].X != 50 || p[0].Y != 600 || p[1].X != 910 || p[1].Y != 600 {
		t.Errorf("spawn = (%v,%v) (%v,%v)", p[0].X, p[0].Y, p[1].X, p[1].Y)
	}
	if p[0].Facing != 1 || p[1].Facing != -1 {
		t.Errorf("facing = %d, %d; want 1, -1", p[0].Facing, p[1].Facing)
	}
	if p[0].Health != 100 || p[1].Health != 100 {
		t.Errorf("health = %d, %d", p[0].Health, p[1].Health)
	}
	if len(g.Arena().Blocks()) != 7 {
		t.Errorf("blocks = %d, want 7", len(g.Arena().Blocks()))
	}
}

func TestRestingOnFloor(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 30; i++ {
		g.Step(idle())
	}
	p := g.Players()
	for i := range p {
		if p[i].Y != 600 || !p[i].Grounded || p[i].VelocityY != 0 {
			t.Errorf("P%d y=%v grounded=%v vy=%v", i+1, p[i].Y, p[i].Grounded, p[i].VelocityY)
		}
	}
}

func TestFirstShotCooldown(t *testing.T) {
	g := newTestGame(t)
	fire := input([]core.Action{core.ActionFire}, nil)

	for i := 1; i <= 12; i++ {
		g.Step(fire)
		if n := len(g.Bullets(0)); n != 0 {
			t.Fatalf("tick %d: %d bullets before cooldown elapsed", i, n)
		}
	}

	g.Step(fire)
	b := g.Bullets(0)
	if len(b) != 1 {
		t.Fatalf("tick 13: %d bullets, want 1", len(b))
	}
	// Spawned at the center (70, 630), then moved once this tick
	if b[0].X != 80 || b[0].Y != 630 || b[0].Direction != 1 || b[0].Heavy {
		t.Errorf("bullet = %+v", b[0])
	}

	// Held fire does not shoot again until the cooldown passes
	for i := 14; i <= 25; i++ {
		g.Step(fire)
	}
	if n := len(g.Bullets(0)); n != 1 {
		t.Errorf("tick 25: %d bullets, want 1", n)
	}
	g.Step(fire)
	if n := len(g.Bullets(0)); n != 2 {
		t.Errorf("tick 26: %d bullets, want 2", n)
	}
}

func TestHeavyCooldown(t *testing.T) {
	g := newTestGame(t)
	heavy := input([]core.Action{core.ActionFireHeavy}, nil)

	for i := 1; i <= 90; i++ {
		g.Step(heavy)
	}
	if n := len(g.Bullets(0)); n != 0 {
		t.Fatalf("heavy fired before tick 91: %d bullets", n)
	}
	g.Step(heavy)
	b := g.Bullets(0)
	if len(b) != 1 || !b[0].Heavy || b[0].Damage != 45 {
		t.Fatalf("heavy bullets = %+v", b)
	}
}

func TestBothWeaponsSameTick(t *testing.T) {
	g := newTestGame(t)
	both := input([]core.Action{core.ActionFire, core.ActionFireHeavy}, nil)

	for i := 1; i <= 91; i++ {
		g.Step(both)
	}
	// Normal shots at 13, 26, ..., 91; the heavy at 91
	heavy := 0
	for _, b := range g.Bullets(0) {
		if b.Heavy {
			heavy++
		}
	}
	if heavy != 1 {
		t.Errorf("heavy bullets = %d, want 1", heavy)
	}
}

func TestBulletDamage(t *testing.T) {
	g := newTestGame(t)
	g.players[1].X = 75
	fire := input([]core.Action{core.ActionFire}, nil)

	for i := 0; i < 13; i++ {
		g.Step(fire)
	}
	if h := g.Players()[1].Health; h != 90 {
		t.Errorf("P2 health = %d, want 90", h)
	}
	if n := len(g.Bullets(0)); n != 0 {
		t.Errorf("hitting bullet should be consumed, %d left", n)
	}
}

func TestPlatformBlocksBullet(t *testing.T) {
	g := newTestGame(t)
	// Stand on the first platform, facing right into the air
	g.players[0].X = 160
	g.players[0].Y = 520
	g.players[1].X = 900
	g.players[1].Y = 600

	shooter := g.players[0]
	proj := shooter.fire(WeaponNormal, g.cfg.Bullets.Normal, 0)
	proj.Y = 585 // inside the platform band 580..600
	g.bullets[0] = append(g.bullets[0], proj)

	g.Step(idle())
	if n := len(g.Bullets(0)); n != 0 {
		t.Errorf("bullet inside a platform should be removed, %d left", n)
	}
	if g.Players()[1].Health != 100 {
		t.Error("blocked bullet must not deal damage")
	}
}

func TestKillEndsRound(t *testing.T) {
	g := newTestGame(t)
	g.players[1].X = 75
	g.players[1].Health = 10
	fire := input([]core.Action{core.ActionFire}, nil)

	var res core.StepResult
	for i := 0; i < 13; i++ {
		res = g.Step(fire)
	}
	if !res.State.GameOver {
		t.Fatal("round should end when P2 reaches zero health")
	}

	o := g.Outcome()
	if o.Winner != core.Player1 || o.Score1 != 100 || o.Score2 != 0 || o.Ticks != 13 {
		t.Errorf("outcome = %+v", o)
	}

	before := g.Players()
	g.Step(input([]core.Action{core.ActionRight}, nil))
	if g.Players() != before {
		t.Error("finished round must not change")
	}
}

func TestSimultaneousKillIsDraw(t *testing.T) {
	g := newTestGame(t)
	g.players[1].X = 75
	g.players[0].Health = 10
	g.players[1].Health = 10
	fire := []core.Action{core.ActionFire}

	for i := 0; i < 13; i++ {
		g.Step(input(fire, fire))
	}
	if !g.State().GameOver {
		t.Fatal("both fighters should be down")
	}
	if !g.Outcome().Draw() {
		t.Errorf("outcome = %+v, want draw", g.Outcome())
	}
}

func TestOverkillClampsScore(t *testing.T) {
	g := newTestGame(t)
	g.players[1].Health = -35
	if s := g.Outcome().Score2; s != 0 {
		t.Errorf("Score2 = %d, want 0", s)
	}
}

func TestMovement(t *testing.T) {
	g := newTestGame(t)
	g.Step(input([]core.Action{core.ActionRight}, []core.Action{core.ActionLeft}))
	p := g.Players()
	if p[0].X != 55 || p[1].X != 905 {
		t.Errorf("x = %v, %v; want 55, 905", p[0].X, p[1].X)
	}

	g.Step(input([]core.Action{core.ActionJump}, nil))
	p = g.Players()
	if p[0].VelocityY != -9.5 || p[0].Grounded {
		t.Errorf("P1 after jump vy=%v grounded=%v", p[0].VelocityY, p[0].Grounded)
	}
	if !p[1].Grounded {
		t.Error("P2 did not jump")
	}
}

func TestScreenEdgeClamp(t *testing.T) {
	g := newTestGame(t)
	left := input([]core.Action{core.ActionLeft}, []core.Action{core.ActionRight})
	for i := 0; i < 20; i++ {
		g.Step(left)
	}
	p := g.Players()
	if p[0].X != 0 || p[1].X != 960 {
		t.Errorf("x = %v, %v; want 0, 960", p[0].X, p[1].X)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t)
	g.Step(input([]core.Action{core.ActionPause}, nil))
	if !g.State().Paused {
		t.Fatal("should be paused")
	}
	before := g.Players()
	g.Step(input([]core.Action{core.ActionRight, core.ActionFire}, nil))
	if g.Players() != before || g.tickCount != 0 {
		t.Error("paused round must not advance")
	}

	// Either player can toggle pause
	g.Step(input(nil, []core.Action{core.ActionPause}))
	if g.State().Paused {
		t.Error("P2 should be able to resume")
	}
}

func TestResetRestoresSpawn(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 40; i++ {
		g.Step(input([]core.Action{core.ActionRight, core.ActionFire}, []core.Action{core.ActionJump}))
	}
	g.Reset(testRuntime())

	fresh := newTestGame(t)
	if g.Players() != fresh.Players() {
		t.Error("reset should restore the spawn state")
	}
	if len(g.Bullets(0))+len(g.Bullets(1)) != 0 {
		t.Error("reset should clear bullets")
	}
}

func TestDeterminism(t *testing.T) {
	script := func(tick int) core.MultiInputFrame {
		var p1, p2 []core.Action
		if tick%7 < 4 {
			p1 = append(p1, core.ActionRight)
		}
		if tick%31 == 0 {
			p1 = append(p1, core.ActionJump)
		}
		if tick%3 == 0 {
			p2 = append(p2, core.ActionFire, core.ActionLeft)
		}
		if tick%45 == 5 {
			p2 = append(p2, core.ActionJump, core.ActionFireHeavy)
		}
		p1 = append(p1, core.ActionFire)
		return input(p1, p2)
	}

	run := func() ([2]Fighter, int, int) {
		g := newTestGame(t)
		for i := 0; i < 600 && !g.State().GameOver; i++ {
			g.Step(script(i))
		}
		return g.Players(), len(g.Bullets(0)), len(g.Bullets(1))
	}

	p1, a1, b1 := run()
	p2, a2, b2 := run()
	if p1 != p2 || a1 != a2 || b1 != b2 {
		t.Errorf("runs differ:\n%+v %d %d\n%+v %d %d", p1, a1, b1, p2, a2, b2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "P1") || !strings.Contains(hud, "P2") {
		t.Errorf("HUD = %q", hud)
	}

	// (50, 600) maps to column 4, row 1 + 19
	if c := screen.GetCell(4, 20); c.Rune != FighterChar || c.Color != core.ColorPlayer1 {
		t.Errorf("P1 cell = %+v", c)
	}
	if c := screen.GetCell(0, 22); c.Rune != FloorChar || c.Color != core.ColorFloor {
		t.Errorf("floor cell = %+v", c)
	}

	g.players[1].Health = 0
	g.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "Player 1 wins!") {
		t.Error("winner message missing")
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		value, total int
		want         string
	}{
		{100, 100, "■■■■■■■■■■"},
		{50, 100, "■■■■■·····"},
		{1, 100, "■·········"},
		{0, 100, "··········"},
		{-20, 100, "··········"},
	}
	for _, tt := range tests {
		if got := bar(tt.value, tt.total, 10); got != tt.want {
			t.Errorf("bar(%d, %d) = %q, want %q", tt.value, tt.total, got, tt.want)
		}
	}
}

func TestCooldownText(t *testing.T) {
	g := newTestGame(t)
	p := g.Players()[0]
	g.tickCount = 13
	if got := g.cooldownText(p, WeaponNormal, 12); got != "ok  " {
		t.Errorf("ready = %q", got)
	}
	p.lastShot[WeaponHeavy] = 13
	if got := g.cooldownText(p, WeaponHeavy, 90); got != "1.5s" {
		t.Errorf("heavy = %q, want 1.5s", got)
	}
}
