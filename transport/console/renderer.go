package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wricardo/slidepuzzle/game/engine"
)

// DefaultClearLines is how many blank lines push the previous frame off screen
const DefaultClearLines = 25

// Renderer draws game states to a writer
type Renderer struct {
	out        io.Writer
	clearLines int
	newline    string
	help       string

	title  lipgloss.Style
	frame  lipgloss.Style
	tile   lipgloss.Style
	empty  lipgloss.Style
	status lipgloss.Style
	solved lipgloss.Style
}

// RendererOption configures a Renderer
type RendererOption func(*Renderer)

// WithClearLines sets the number of blank lines written before each frame
func WithClearLines(n int) RendererOption {
	return func(r *Renderer) {
		r.clearLines = max(n, 0)
	}
}

// WithRawTerminal writes CRLF line endings for terminals in raw mode
func WithRawTerminal(raw bool) RendererOption {
	return func(r *Renderer) {
		if raw {
			r.newline = "\r\n"
		}
	}
}

// WithHelp sets the key help shown under the board
func WithHelp(help string) RendererOption {
	return func(r *Renderer) {
		r.help = help
	}
}

// NewRenderer creates a renderer writing to out. Colors are only used when
// out is a terminal.
func NewRenderer(out io.Writer, opts ...RendererOption) *Renderer {
	lg := lipgloss.NewRenderer(out)
	r := &Renderer{
		out:        out,
		clearLines: DefaultClearLines,
		newline:    "\n",
		help:       Keys.Help(),

		title: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8C00")),
		frame: lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F87AF")).
			Padding(0, 1),
		tile:   lg.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
		empty:  lg.NewStyle().Background(lipgloss.Color("#303030")),
		status: lg.NewStyle().Foreground(lipgloss.Color("#A8A8A8")),
		solved: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render clears the screen and draws state
func (r *Renderer) Render(state *engine.GameState) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", r.clearLines))

	if state.ConfigName != "" {
		b.WriteString(r.title.Render(state.ConfigName))
		b.WriteString("\n")
	}
	b.WriteString(r.frame.Render(r.board(state)))
	b.WriteString("\n")
	b.WriteString(r.status.Render(fmt.Sprintf("Moves: %d", state.Moves)))
	b.WriteString("\n")

	if state.Message != "" {
		if state.Solved {
			b.WriteString(r.solved.Render(state.Message))
		} else {
			b.WriteString(state.Message)
		}
		b.WriteString("\n")
	}
	if r.help != "" {
		b.WriteString(r.status.Render(r.help))
		b.WriteString("\n")
	}

	return r.write(b.String())
}

// Println writes a single line of text
func (r *Renderer) Println(text string) error {
	return r.write(text + "\n")
}

// board renders the grid rows, one line per row
func (r *Renderer) board(state *engine.GameState) string {
	lines := make([]string, 0, len(state.Tiles))
	for _, row := range state.Tiles {
		var line strings.Builder
		for _, n := range row {
			t := engine.NewTile(n)
			if t.IsEmpty() {
				line.WriteString(r.empty.Render(t.Render()))
			} else {
				line.WriteString(r.tile.Render(t.Render()))
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) write(s string) error {
	if r.newline != "\n" {
		s = strings.ReplaceAll(s, "\n", r.newline)
	}
	_, err := io.WriteString(r.out, s)
	return err
}
