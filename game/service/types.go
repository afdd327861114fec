package service

import (
	"time"

	"github.com/wricardo/slidepuzzle/game/engine"
)

// CreateOptions overrides parts of a preset when a session is created.
// The board size is fixed for the lifetime of the session.
type CreateOptions struct {
	Size         int                 // 0 keeps the preset size
	ShuffleMoves *int                // nil keeps the preset shuffle count
	Seed         int64               // 0 keeps the preset seed
	Random       engine.RandomSource // optional; overrides Seed
}

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success       bool              `json:"success"`
	Outcome       string            `json:"outcome"`
	GameState     *engine.GameState `json:"game_state"`
	Message       string            `json:"message"`
	Events        []GameEvent       `json:"events,omitempty"`
	Step          *StepInfo         `json:"step,omitempty"`
	PossibleMoves []string          `json:"possible_moves,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // rejected|solved
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	StartEmpty Position `json:"start_empty"`
	EndEmpty   Position `json:"end_empty"`

	Steps []StepInfo `json:"steps,omitempty"`

	Solved        bool     `json:"solved"`
	Message       string   `json:"message,omitempty"`
	PossibleMoves []string `json:"possible_moves,omitempty"`
}

// Position aliases the engine position for result payloads
type Position = engine.Position

// StepInfo is a compact record of one accepted move
type StepInfo struct {
	Idx     int      `json:"idx"`
	Dir     string   `json:"dir"`
	From    Position `json:"from"` // empty cell before the move
	To      Position `json:"to"`   // empty cell after the move
	Tile    int      `json:"tile"` // number of the tile that slid
	Success bool     `json:"success"`
	Solved  bool     `json:"solved,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "move", "rejected", "solved", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Position  Position  `json:"position,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename     string `json:"filename"`
	ConfigID     string `json:"config_id"` // The identifier to use for session creation
	Name         string `json:"name"`      // Display name
	Description  string `json:"description"`
	Size         int    `json:"size"`
	ShuffleMoves int    `json:"shuffle_moves"`
}
