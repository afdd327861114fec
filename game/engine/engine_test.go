package engine

import (
	"strings"
	"testing"
)

func createTestConfig() *GameConfig {
	return &GameConfig{
		Name:         "Engine Test Config",
		Description:  "Configuration for engine integration tests",
		Size:         4,
		ShuffleMoves: 0,
		StopOnSolve:  true,
		Messages: Messages{
			Welcome:  "Welcome to engine test!",
			Moved:    "Moved %s",
			Rejected: "Can't move there!",
			Solved:   "Solved in %d moves!",
			Quit:     "Bye!",
		},
	}
}

func TestNewEngine(t *testing.T) {
	config := createTestConfig()
	engine, err := NewEngine(config, NewRandomSource(1))
	if err != nil {
		t.Fatalf("Failed to create new engine: %v", err)
	}

	if engine == nil {
		t.Fatal("Expected engine to be non-nil")
	}

	state := engine.GetState()
	if state.Size != 4 {
		t.Errorf("Expected size 4, got %d", state.Size)
	}
	if state.Message != config.Messages.Welcome {
		t.Errorf("Expected welcome message, got %q", state.Message)
	}
	if !engine.IsSolved() {
		t.Error("Zero shuffle moves should leave the board solved")
	}
	if state.TotalMoves != 0 {
		t.Errorf("Expected no moves, got %d", state.TotalMoves)
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	config := createTestConfig()
	config.Name = ""

	if _, err := NewEngine(config, nil); err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestNewEngine_ShufflesBoard(t *testing.T) {
	config := createTestConfig()
	config.ShuffleMoves = 50

	engine, err := NewEngine(config, NewRandomSource(8))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	if !IsSolvable(engine.GetBoard()) {
		t.Error("Shuffled board must be solvable")
	}
}

func TestNewEngine_SeedFromConfig(t *testing.T) {
	config := createTestConfig()
	config.ShuffleMoves = 40
	config.Seed = 1234

	a, err := NewEngine(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewEngine(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !a.GetBoard().Equal(b.GetBoard()) {
		t.Error("Engines built from the same seed should shuffle identically")
	}
}

func TestNewEngineWithDefaults(t *testing.T) {
	engine := NewEngineWithDefaults(NewRandomSource(2))
	if engine == nil {
		t.Fatal("Expected engine to be non-nil")
	}
	if engine.GetConfig().Size != 4 {
		t.Errorf("Expected 4x4 default, got %d", engine.GetConfig().Size)
	}
	if engine.IsSolved() {
		t.Error("Default engine should start shuffled")
	}
}

func TestEngine_BasicMovement(t *testing.T) {
	engine, err := NewEngine(createTestConfig(), nil)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	if outcome := engine.Move(Right); outcome != Moved {
		t.Fatalf("Expected Moved, got %s", outcome)
	}

	state := engine.GetState()
	if state.EmptyPos != (Position{X: 2, Y: 3}) {
		t.Errorf("Expected empty at (2,3), got %v", state.EmptyPos)
	}
	if state.Message != "Moved right" {
		t.Errorf("Expected move message, got %q", state.Message)
	}

	history := engine.GetMoveHistory()
	if len(history) != 1 {
		t.Fatalf("Expected 1 move in history, got %d", len(history))
	}

	lastMove := engine.GetLastMove()
	if lastMove == nil {
		t.Fatal("Expected last move to be non-nil")
	}
	if lastMove.Action != "right" || !lastMove.Success {
		t.Errorf("Unexpected last move %+v", lastMove)
	}
	if lastMove.FromPos != (Position{X: 3, Y: 3}) || lastMove.ToPos != (Position{X: 2, Y: 3}) {
		t.Errorf("Unexpected positions in history %+v", lastMove)
	}
}

func TestEngine_RejectedMove(t *testing.T) {
	engine, _ := NewEngine(createTestConfig(), nil)
	before := engine.GetBoard().Clone()

	if outcome := engine.Move(Up); outcome != Rejected {
		t.Fatalf("Expected Rejected, got %s", outcome)
	}
	if !engine.GetBoard().Equal(before) {
		t.Error("Rejected move changed the board")
	}

	state := engine.GetState()
	if state.Message != "Can't move there!" {
		t.Errorf("Expected rejection message, got %q", state.Message)
	}
	if state.TotalMoves != 1 || state.Moves != 0 {
		t.Errorf("Rejected attempt should be recorded but not counted: total=%d moves=%d", state.TotalMoves, state.Moves)
	}
	if engine.GetLastMove().Success {
		t.Error("History should mark the rejected move unsuccessful")
	}
}

func TestEngine_CanMove(t *testing.T) {
	engine, _ := NewEngine(createTestConfig(), nil)

	tests := []struct {
		dir      Direction
		expected bool
	}{
		{Up, false},
		{Left, false},
		{Down, true},
		{Right, true},
	}
	for _, test := range tests {
		if got := engine.CanMove(test.dir); got != test.expected {
			t.Errorf("CanMove(%s): expected %v, got %v", test.dir, test.expected, got)
		}
	}
}

func TestEngine_GetPossibleMoves(t *testing.T) {
	engine, _ := NewEngine(createTestConfig(), nil)
	moves := engine.GetPossibleMoves()
	if len(moves) != 2 {
		t.Fatalf("Expected 2 possible moves, got %v", moves)
	}
	if moves[0] != Down || moves[1] != Right {
		t.Errorf("Expected [down right], got %v", moves)
	}
}

func TestEngine_Reset(t *testing.T) {
	config := createTestConfig()
	config.ShuffleMoves = 20
	engine, _ := NewEngine(config, NewRandomSource(4))

	for _, d := range engine.GetPossibleMoves() {
		engine.Move(d)
	}
	movesBefore := engine.GetState().TotalMoves

	state := engine.Reset()
	if state.TotalMoves != movesBefore {
		t.Errorf("Reset should keep cumulative history: expected %d, got %d", movesBefore, state.TotalMoves)
	}
	if state.CurrentMovesCount != 0 || len(state.CurrentMoves) != 0 {
		t.Errorf("Reset should clear the current segment, got %d", state.CurrentMovesCount)
	}
	if state.Message != config.Messages.Welcome {
		t.Errorf("Expected welcome message after reset, got %q", state.Message)
	}
	if state.Size != 4 {
		t.Errorf("Board size must not change on reset, got %d", state.Size)
	}
}

func TestEngine_SolvedMessageAndStop(t *testing.T) {
	engine, _ := NewEngine(createTestConfig(), nil)

	engine.Move(Right)
	if outcome := engine.Move(Left); outcome != Moved {
		t.Fatalf("Expected Moved, got %s", outcome)
	}
	if !engine.IsSolved() {
		t.Fatal("Board should be solved")
	}

	state := engine.GetState()
	if !state.Solved {
		t.Error("State should report solved")
	}
	if !strings.Contains(state.Message, "Solved in 2 moves") {
		t.Errorf("Expected solved message, got %q", state.Message)
	}

	if outcome := engine.Move(Down); outcome != Rejected {
		t.Errorf("Moves after solving should be rejected, got %s", outcome)
	}
	if engine.CanMove(Down) {
		t.Error("CanMove should be false after solving")
	}
	if len(engine.GetMoveHistory()) != 2 {
		t.Errorf("Moves after solving should not be recorded, got %d", len(engine.GetMoveHistory()))
	}
}

func TestEngine_KeepsPlayingWithoutStopOnSolve(t *testing.T) {
	config := createTestConfig()
	config.StopOnSolve = false
	engine, _ := NewEngine(config, nil)

	engine.Move(Right)
	engine.Move(Left)
	if outcome := engine.Move(Down); outcome != Moved {
		t.Errorf("Expected play to continue after solving, got %s", outcome)
	}
}

func TestEngine_StateIsSnapshot(t *testing.T) {
	engine, _ := NewEngine(createTestConfig(), nil)
	state := engine.GetState()
	state.Tiles[0][0] = 99

	if engine.GetState().Tiles[0][0] != 1 {
		t.Error("Mutating a state snapshot must not affect the engine")
	}
}
