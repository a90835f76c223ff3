package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pinball/internal/core"
)

// TableKeyMap holds the in-game bindings. It implements help.KeyMap.
type TableKeyMap struct {
	Quit      key.Binding
	FlipLeft  key.Binding
	FlipRight key.Binding
	Plunger   key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Pause     key.Binding
	Restart   key.Binding
}

// DefaultTableKeyMap returns the stock in-game bindings. Both hands get a
// flipper: z/a and / or m, plus the arrow keys.
func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		FlipLeft: key.NewBinding(
			key.WithKeys("z", "a", "left", "shift+left"),
			key.WithHelp("z/←", "left flipper"),
		),
		FlipRight: key.NewBinding(
			key.WithKeys("/", "m", "d", "right", "shift+right"),
			key.WithHelp("//→", "right flipper"),
		),
		Plunger: key.NewBinding(
			key.WithKeys(" ", "down", "s"),
			key.WithHelp("space", "plunger"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
	}
}

// ShortHelp returns the bindings shown in the compact help line.
func (k TableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FlipLeft, k.FlipRight, k.Plunger, k.Pause, k.Quit}
}

// FullHelp returns all help-visible bindings grouped in columns.
func (k TableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FlipLeft, k.FlipRight, k.Plunger},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// MenuKeyMap holds the table picker bindings. It implements help.KeyMap.
type MenuKeyMap struct {
	Quit       key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Back       key.Binding
}

// DefaultMenuKeyMap returns the stock menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left", "h"),
			key.WithHelp("←/→", "difficulty"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right", "l"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
		),
	}
}

// ShortHelp returns the bindings shown under the menu.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns all help-visible menu bindings.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// KeyMapper translates Bubble Tea key messages to table and menu actions.
type KeyMapper struct {
	Table TableKeyMap
	Menu  MenuKeyMap

	table []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		Table: DefaultTableKeyMap(),
		Menu:  DefaultMenuKeyMap(),
	}
	km.table = []actionBinding{
		{km.Table.FlipLeft, core.ActionFlipLeft},
		{km.Table.FlipRight, core.ActionFlipRight},
		{km.Table.Plunger, core.ActionPlunger},
		{km.Table.Confirm, core.ActionConfirm},
		{km.Table.Back, core.ActionBack},
		{km.Table.Pause, core.ActionPause},
		{km.Table.Restart, core.ActionRestart},
	}
	return km
}

// MapKey translates a key message to a table action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.Table.Quit) {
		return core.ActionQuit, true
	}
	for _, ab := range km.table {
		if key.Matches(msg, ab.binding) {
			return ab.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	m := km.Menu
	switch {
	case key.Matches(msg, m.Quit):
		return MenuActionQuit
	case key.Matches(msg, m.Up):
		return MenuActionUp
	case key.Matches(msg, m.Down):
		return MenuActionDown
	case key.Matches(msg, m.Left):
		return MenuActionLeft
	case key.Matches(msg, m.Right):
		return MenuActionRight
	case key.Matches(msg, m.Select):
		return MenuActionSelect
	case key.Matches(msg, m.Scoreboard):
		return MenuActionScoreboard
	case key.Matches(msg, m.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
