package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapfight/internal/core"
)

// DefaultHold is how many ticks a move key stays down after a press.
const DefaultHold = 8

// SeatKeys are the bindings of one local player.
type SeatKeys struct {
	Left  key.Binding
	Right key.Binding
	Jump  key.Binding
	Fire  key.Binding
	Heavy key.Binding
}

// GameKeyMap defines the in-game key bindings for both seats.
type GameKeyMap struct {
	P1      SeatKeys
	P2      SeatKeys
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range []key.Binding{k.P1.Jump, k.P1.Fire, k.P1.Heavy, k.P2.Jump, k.P2.Fire, k.P2.Heavy} {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return append(out, k.Pause, k.Restart, k.Quit)
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1.Left, k.P1.Right, k.P1.Jump, k.P1.Fire, k.P1.Heavy},
		{k.P2.Left, k.P2.Right, k.P2.Jump, k.P2.Fire, k.P2.Heavy},
		{k.Pause, k.Restart, k.Quit},
	}
}

func binding(help string, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func disabled() key.Binding {
	return key.NewBinding(key.WithDisabled())
}

func systemKeys() GameKeyMap {
	return GameKeyMap{
		Pause:   binding("p/esc", "pause", "p", "esc"),
		Restart: binding("r", "restart", "r"),
		Quit:    binding("q", "quit", "q", "ctrl+c"),
	}
}

// KeyMapFor returns the bindings used by the given game.
func KeyMapFor(gameID string) GameKeyMap {
	k := systemKeys()
	switch gameID {
	case "fight":
		k.P1 = SeatKeys{
			Left:  binding("a", "P1 left", "a"),
			Right: binding("d", "P1 right", "d"),
			Jump:  binding("w", "P1 jump", "w"),
			Fire:  binding("s", "P1 shot", "s"),
			Heavy: binding("e", "P1 heavy", "e"),
		}
		k.P2 = SeatKeys{
			Left:  binding("←", "P2 left", "left"),
			Right: binding("→", "P2 right", "right"),
			Jump:  binding("↑", "P2 jump", "up"),
			Fire:  binding("↓", "P2 shot", "down"),
			Heavy: binding("/", "P2 heavy", "/"),
		}
	case "flappy2":
		k.P1 = SeatKeys{Left: disabled(), Right: disabled(), Jump: binding("space", "P1 flap", " "), Fire: disabled(), Heavy: disabled()}
		k.P2 = SeatKeys{Left: disabled(), Right: disabled(), Jump: binding("w", "P2 flap", "w"), Fire: disabled(), Heavy: disabled()}
	default:
		k.P1 = SeatKeys{Left: disabled(), Right: disabled(), Jump: binding("space/w", "flap", " ", "w", "up"), Fire: disabled(), Heavy: disabled()}
		k.P2 = SeatKeys{Left: disabled(), Right: disabled(), Jump: disabled(), Fire: disabled(), Heavy: disabled()}
	}
	return k
}

// InputLatch turns key presses into per-tick frames.
//
// Terminals report presses but never releases, so Left and Right stay down
// for hold ticks after each press; pressing one cancels the other. Every
// other action lasts for the next tick only.
type InputLatch struct {
	hold    int
	moves   map[core.PlayerID]map[core.Action]int // Remaining ticks per held action
	pending core.MultiInputFrame
}

// NewInputLatch creates a latch. hold <= 0 uses DefaultHold.
func NewInputLatch(hold int) *InputLatch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &InputLatch{
		hold:    hold,
		moves:   map[core.PlayerID]map[core.Action]int{core.Player1: {}, core.Player2: {}},
		pending: core.NewMultiInputFrame(),
	}
}

// Press records an action for a player.
func (l *InputLatch) Press(id core.PlayerID, a core.Action) {
	switch a {
	case core.ActionLeft, core.ActionRight:
		held := l.moves[id]
		if held == nil {
			held = map[core.Action]int{}
			l.moves[id] = held
		}
		delete(held, opposite(a))
		held[a] = l.hold
	default:
		f := l.pending.Player(id)
		f.Set(a)
		l.pending.SetPlayer(id, f)
	}
}

// Frame returns the input for the coming tick without consuming it.
func (l *InputLatch) Frame() core.MultiInputFrame {
	out := l.pending.Clone()
	for id, held := range l.moves {
		f := out.Player(id)
		for a, left := range held {
			if left > 0 {
				f.Set(a)
			}
		}
		out.SetPlayer(id, f)
	}
	return out
}

// Advance ends a tick: one-shot actions are dropped and held moves count down.
func (l *InputLatch) Advance() {
	l.pending = core.NewMultiInputFrame()
	for _, held := range l.moves {
		for a := range held {
			held[a]--
			if held[a] <= 0 {
				delete(held, a)
			}
		}
	}
}

// Reset drops all pending and held input.
func (l *InputLatch) Reset() {
	l.pending = core.NewMultiInputFrame()
	for id := range l.moves {
		l.moves[id] = map[core.Action]int{}
	}
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// MapKey feeds a key message into the latch.
// Returns true if the key was a quit request.
func (k GameKeyMap) MapKey(msg tea.KeyMsg, l *InputLatch) bool {
	switch {
	case key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Pause):
		l.Press(core.Player1, core.ActionPause)
		return false
	case key.Matches(msg, k.Restart):
		l.Press(core.Player1, core.ActionRestart)
		return false
	}

	for _, seat := range []struct {
		id   core.PlayerID
		keys SeatKeys
	}{{core.Player1, k.P1}, {core.Player2, k.P2}} {
		for _, b := range []struct {
			binding key.Binding
			action  core.Action
		}{
			{seat.keys.Left, core.ActionLeft},
			{seat.keys.Right, core.ActionRight},
			{seat.keys.Jump, core.ActionJump},
			{seat.keys.Fire, core.ActionFire},
			{seat.keys.Heavy, core.ActionFireHeavy},
		} {
			if key.Matches(msg, b.binding) {
				l.Press(seat.id, b.action)
			}
		}
	}
	return false
}

// MenuKeyMap defines the bindings of the game picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         binding("↑/k", "up", "up", "w", "k"),
		Down:       binding("↓/j", "down", "down", "s", "j"),
		Select:     binding("enter", "play", "enter", " "),
		Scoreboard: binding("tab", "scores", "tab"),
		Quit:       binding("q", "quit", "q", "ctrl+c", "esc"),
	}
}
