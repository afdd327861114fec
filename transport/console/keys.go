package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/wricardo/slidepuzzle/game/engine"
)

// Command is what a single key press asks the game to do
type Command int

const (
	CommandUp Command = iota
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
)

var commandNames = [...]string{"up", "down", "left", "right", "quit"}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Direction returns the board direction for a movement command.
// Quit carries no direction.
func (c Command) Direction() (engine.Direction, bool) {
	switch c {
	case CommandUp:
		return engine.Up, true
	case CommandDown:
		return engine.Down, true
	case CommandLeft:
		return engine.Left, true
	case CommandRight:
		return engine.Right, true
	}
	return engine.Up, false
}

// KeyMap binds keys to commands
type KeyMap struct {
	Up    key.Binding
	Left  key.Binding
	Down  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// Keys is the fixed w/a/s/d/q layout
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "up"),
	),
	Left: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "left"),
	),
	Down: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "down"),
	),
	Right: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// keyPress adapts a rune to the fmt.Stringer that key.Matches expects
type keyPress rune

func (k keyPress) String() string { return string(k) }

// Parse maps a key to its command. Unbound keys report false.
func (m KeyMap) Parse(r rune) (Command, bool) {
	k := keyPress(r)
	switch {
	case key.Matches(k, m.Up):
		return CommandUp, true
	case key.Matches(k, m.Left):
		return CommandLeft, true
	case key.Matches(k, m.Down):
		return CommandDown, true
	case key.Matches(k, m.Right):
		return CommandRight, true
	case key.Matches(k, m.Quit):
		return CommandQuit, true
	}
	return CommandQuit, false
}

// Help renders the bindings as a single line
func (m KeyMap) Help() string {
	bindings := []key.Binding{m.Up, m.Left, m.Down, m.Right, m.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// ParseKey maps a key with the default layout
func ParseKey(r rune) (Command, bool) {
	return Keys.Parse(r)
}
