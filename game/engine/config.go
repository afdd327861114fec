package engine

import (
	"fmt"
	"strings"
)

// Messages holds the player-facing texts of a game configuration
type Messages struct {
	Welcome  string `json:"welcome" yaml:"welcome"`
	Moved    string `json:"moved" yaml:"moved"`
	Rejected string `json:"rejected" yaml:"rejected"`
	Solved   string `json:"solved" yaml:"solved"`
	Quit     string `json:"quit" yaml:"quit"`
}

// GameConfig represents a puzzle preset
type GameConfig struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Size         int      `json:"size" yaml:"size"`
	ShuffleMoves int      `json:"shuffle_moves" yaml:"shuffle_moves"`
	Seed         int64    `json:"seed,omitempty" yaml:"seed,omitempty"`
	StopOnSolve  bool     `json:"stop_on_solve" yaml:"stop_on_solve"`
	Messages     Messages `json:"messages" yaml:"messages"`
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.Size < MinBoardSize || config.Size > MaxBoardSize {
		return fmt.Errorf("config validation: size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, config.Size)
	}

	if config.ShuffleMoves < 0 || config.ShuffleMoves > MaxShuffleMoves {
		return fmt.Errorf("config validation: shuffle_moves must be between 0 and %d, got %d", MaxShuffleMoves, config.ShuffleMoves)
	}

	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Solved == "" {
		return fmt.Errorf("config validation: messages.solved is required")
	}
	if !strings.Contains(config.Messages.Solved, "%d") {
		return fmt.Errorf("config validation: messages.solved must contain %%d for the move count")
	}
	if config.Messages.Moved != "" && !strings.Contains(config.Messages.Moved, "%s") {
		return fmt.Errorf("config validation: messages.moved must contain %%s for the direction")
	}

	return nil
}

// DefaultGameConfig returns the classic 4×4 preset
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:         "classic",
		Description:  "The classic 15-puzzle on a 4x4 board",
		Size:         4,
		ShuffleMoves: 200,
		StopOnSolve:  true,
		Messages: Messages{
			Welcome:  "Slide the tiles back into order. w/a/s/d to move, q to quit.",
			Moved:    "Moved %s",
			Rejected: "Can't move that way!",
			Solved:   "Solved in %d moves!",
			Quit:     "Bye!",
		},
	}
}

// WithOverrides returns a copy of the config. Size applies when positive,
// shuffleMoves when non-negative and seed when non-zero.
func (c *GameConfig) WithOverrides(size, shuffleMoves int, seed int64) *GameConfig {
	out := *c
	if size > 0 {
		out.Size = size
	}
	if shuffleMoves >= 0 {
		out.ShuffleMoves = shuffleMoves
	}
	if seed != 0 {
		out.Seed = seed
	}
	return &out
}
