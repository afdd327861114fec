package engine

import "fmt"

// MoveOutcome reports whether a move changed the board
type MoveOutcome int

const (
	Rejected MoveOutcome = iota
	Moved
)

// String returns "moved" or "rejected"
func (o MoveOutcome) String() string {
	if o == Moved {
		return "moved"
	}
	return "rejected"
}

const (
	// Validation constants
	MinBoardSize    = 2
	MaxBoardSize    = 9
	MaxShuffleMoves = 10000
	MaxBulkMoves    = 50

	// TileWidth is the rendered width of every tile
	TileWidth = 4
)

// Position represents column (X) and row (Y) coordinates
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

var steps = [...]Position{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Stepped returns the position one unit away in direction d.
// Bounds are not checked here; that is the board's job.
func (p Position) Stepped(d Direction) Position {
	s := steps[d]
	return Position{X: p.X + s.X, Y: p.Y + s.Y}
}

// String formats the position as (x,y)
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is a numbered cell. Number 0 is the empty tile.
type Tile struct {
	number int
}

// NewTile creates a tile with the given number
func NewTile(number int) Tile {
	return Tile{number: number}
}

// Number returns the tile number
func (t Tile) Number() int {
	return t.number
}

// IsEmpty reports whether this is the empty tile
func (t Tile) IsEmpty() bool {
	return t.number == 0
}

// Render returns the tile as a TileWidth-wide string. Two-digit numbers get
// one space on each side, single digits an extra leading space, and the
// empty tile is all blanks.
func (t Tile) Render() string {
	switch {
	case t.number > 9:
		return fmt.Sprintf(" %d ", t.number)
	case t.number > 0:
		return fmt.Sprintf("  %d ", t.number)
	default:
		return "    "
	}
}

// String implements fmt.Stringer
func (t Tile) String() string {
	return t.Render()
}

// GameState is a snapshot of a game, safe to hand to renderers and callers
type GameState struct {
	Size       int      `json:"size"`
	Tiles      [][]int  `json:"tiles"`
	Rows       []string `json:"rows"`
	EmptyPos   Position `json:"empty_pos"`
	Solved     bool     `json:"solved"`
	Moves      int      `json:"moves"`
	Message    string   `json:"message"`
	ConfigName string   `json:"config_name"`
	Misplaced  int      `json:"misplaced"`
	Distance   int      `json:"distance"`

	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`

	// CurrentMoves tracks only the moves since the last reset. MoveHistory
	// stays cumulative across resets.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`
}

// MoveHistoryEntry is a single attempted move. From and To are the
// positions of the empty cell before and after.
type MoveHistoryEntry struct {
	Action     string   `json:"action"`
	FromPos    Position `json:"from_position"`
	ToPos      Position `json:"to_position"`
	Timestamp  int64    `json:"timestamp"`
	Success    bool     `json:"success"`
	MoveNumber int      `json:"move_number"`
}
