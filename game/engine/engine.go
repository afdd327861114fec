package engine

import (
	"fmt"
	"strings"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	Reset() *GameState
	IsSolved() bool
	GetBoard() *Board

	// Movement operations
	Move(direction Direction) MoveOutcome
	CanMove(direction Direction) bool
	GetPossibleMoves() []Direction
	BulkMove(moves []Direction) []MoveOutcome

	// Configuration
	GetConfig() *GameConfig

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface on top of a Board
type GameEngine struct {
	board    *Board
	config   *GameConfig
	random   RandomSource
	message  string
	finished bool

	moveHistory  []MoveHistoryEntry
	totalMoves   int
	currentMoves []MoveHistoryEntry
}

// NewEngine creates a game engine and shuffles its board. A nil random
// source falls back to one seeded from config.Seed.
func NewEngine(config *GameConfig, random RandomSource) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if random == nil {
		random = NewRandomSource(config.Seed)
	}

	e := &GameEngine{
		config:       config,
		random:       random,
		moveHistory:  []MoveHistoryEntry{},
		currentMoves: []MoveHistoryEntry{},
	}
	e.newBoard()
	return e, nil
}

// NewEngineWithDefaults creates a game engine with the classic configuration
func NewEngineWithDefaults(random RandomSource) *GameEngine {
	e, err := NewEngine(DefaultGameConfig(), random)
	if err != nil {
		panic(fmt.Sprintf("engine: default config invalid: %v", err))
	}
	return e
}

func (e *GameEngine) newBoard() {
	e.board = NewBoard(e.config.Size)
	e.board.Shuffle(e.config.ShuffleMoves, e.random)
	e.message = e.config.Messages.Welcome
	e.finished = false
}

// GetBoard returns the live board
func (e *GameEngine) GetBoard() *Board {
	return e.board
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetState returns a snapshot of the game
func (e *GameEngine) GetState() *GameState {
	lines := make([]string, 0, e.board.Size())
	for _, row := range e.board.Render() {
		lines = append(lines, strings.Join(row, ""))
	}

	return &GameState{
		Size:              e.board.Size(),
		Tiles:             e.board.Numbers(),
		Rows:              lines,
		EmptyPos:          e.board.FindEmptyPosition(),
		Solved:            e.board.IsSolved(),
		Moves:             e.CurrentMoveCount(),
		Message:           e.message,
		ConfigName:        e.config.Name,
		Misplaced:         CountMisplaced(e.board),
		Distance:          TotalManhattanDistance(e.board),
		MoveHistory:       append([]MoveHistoryEntry(nil), e.moveHistory...),
		TotalMoves:        e.totalMoves,
		CurrentMoves:      append([]MoveHistoryEntry(nil), e.currentMoves...),
		CurrentMovesCount: len(e.currentMoves),
	}
}

// Reset reshuffles the board. Cumulative history survives; the current segment is cleared.
func (e *GameEngine) Reset() *GameState {
	e.newBoard()
	e.currentMoves = []MoveHistoryEntry{}
	return e.GetState()
}

// IsSolved reports whether the board is in the solved arrangement
func (e *GameEngine) IsSolved() bool {
	return e.board.IsSolved()
}

// Move attempts a move and records it in the history. Once solved, a game
// configured with StopOnSolve rejects further moves without recording them.
func (e *GameEngine) Move(direction Direction) MoveOutcome {
	if e.stopped() {
		return Rejected
	}

	from := e.board.FindEmptyPosition()
	outcome := e.board.AttemptMove(direction)
	to := e.board.FindEmptyPosition()

	e.addMoveToHistory(direction.String(), from, to, outcome == Moved)

	switch {
	case outcome == Rejected:
		e.message = e.config.Messages.Rejected
	case e.board.IsSolved():
		e.finished = true
		e.message = fmt.Sprintf(e.config.Messages.Solved, e.CurrentMoveCount())
	case e.config.Messages.Moved != "":
		e.message = fmt.Sprintf(e.config.Messages.Moved, direction)
	default:
		e.message = ""
	}

	return outcome
}

// CanMove checks whether a move in direction would be accepted
func (e *GameEngine) CanMove(direction Direction) bool {
	if e.stopped() {
		return false
	}
	return e.board.CanMove(direction)
}

// GetPossibleMoves returns all directions that would currently be accepted
func (e *GameEngine) GetPossibleMoves() []Direction {
	var possible []Direction
	for _, d := range Directions() {
		if e.CanMove(d) {
			possible = append(possible, d)
		}
	}
	return possible
}

// BulkMove executes moves in sequence and stops early once the puzzle is solved
func (e *GameEngine) BulkMove(moves []Direction) []MoveOutcome {
	results := make([]MoveOutcome, 0, len(moves))
	for _, d := range moves {
		if e.stopped() {
			break
		}
		results = append(results, e.Move(d))
	}
	return results
}

// GetMoveHistory returns the cumulative move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.moveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.moveHistory) == 0 {
		return nil
	}
	return &e.moveHistory[len(e.moveHistory)-1]
}

// CurrentMoveCount returns the number of accepted moves since the last reset
func (e *GameEngine) CurrentMoveCount() int {
	count := 0
	for _, m := range e.currentMoves {
		if m.Success {
			count++
		}
	}
	return count
}

// stopped is true once the player solved the board and the config ends the game there
func (e *GameEngine) stopped() bool {
	return e.config.StopOnSolve && e.finished
}

func (e *GameEngine) addMoveToHistory(action string, from, to Position, success bool) {
	entry := MoveHistoryEntry{
		Action:     action,
		FromPos:    from,
		ToPos:      to,
		Timestamp:  time.Now().Unix(),
		Success:    success,
		MoveNumber: e.totalMoves + 1,
	}
	e.moveHistory = append(e.moveHistory, entry)
	e.totalMoves++
	e.currentMoves = append(e.currentMoves, entry)
}
