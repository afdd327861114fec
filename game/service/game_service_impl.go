package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wricardo/slidepuzzle/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	log      logrus.FieldLogger
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance. A nil logger uses the logrus standard logger.
func NewGameService(sessions SessionManager, configs ConfigManager, log logrus.FieldLogger) GameService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		log:      log.WithField("component", "service"),
	}
}

// getConfigID returns the config_id for a given config name, used for consistent responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string, opts CreateOptions) (*SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var base *engine.GameConfig
	if configName != "" {
		loaded, err := s.configs.LoadConfig(configName)
		if err != nil {
			availableConfigs, listErr := s.configs.ListConfigs()
			if listErr == nil && len(availableConfigs) > 0 {
				var configIDs []string
				for _, cfg := range availableConfigs {
					configIDs = append(configIDs, cfg.ConfigID)
				}
				return nil, fmt.Errorf("failed to load config %q (available: %v): %w", configName, configIDs, err)
			}
			return nil, fmt.Errorf("failed to load config %q: %w", configName, err)
		}
		base = loaded
	} else {
		base = s.configs.GetDefault()
	}

	shuffle := -1
	if opts.ShuffleMoves != nil {
		shuffle = *opts.ShuffleMoves
	}
	config := base.WithOverrides(opts.Size, shuffle, opts.Seed)
	if err := engine.ValidateGameConfig(config); err != nil {
		return nil, fmt.Errorf("invalid game options: %w", err)
	}

	// Let the session manager generate the ID
	session, err := s.sessions.Create("", config, opts.Random)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	s.log.WithFields(logrus.Fields{
		"session": session.ID,
		"config":  configID,
		"size":    config.Size,
		"shuffle": config.ShuffleMoves,
	}).Info("session created")

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return err
	}
	s.log.WithField("session", sessionID).Info("session deleted")
	return nil
}

// Move executes a single move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	events := []GameEvent{}
	if reset {
		sess.Engine.Reset()
		events = append(events, resetEvent())
	}

	from := sess.Engine.GetBoard().FindEmptyPosition()
	outcome := sess.Engine.Move(d)
	state := sess.Engine.GetState()

	result := &MoveResult{
		Success:       outcome == engine.Moved,
		Outcome:       outcome.String(),
		GameState:     state,
		Message:       state.Message,
		Events:        append(events, moveEvents(d, outcome, from, state)...),
		PossibleMoves: directionNames(sess.Engine.GetPossibleMoves()),
	}
	if outcome == engine.Moved {
		step := newStep(1, d, from, state)
		result.Step = &step
	}

	s.log.WithFields(logrus.Fields{
		"session":   sessionID,
		"direction": d.String(),
		"outcome":   outcome.String(),
		"solved":    state.Solved,
	}).Debug("move")

	return result, nil
}

// BulkMove executes multiple moves in sequence. It stops at the first
// rejected move or once the puzzle is solved.
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error) {
	directions := make([]engine.Direction, 0, len(moves))
	for i, m := range moves {
		d, err := engine.ParseDirection(m)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		directions = append(directions, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	result := &BulkMoveResult{
		RequestedMoves: len(directions),
		Events:         make([]GameEvent, 0),
		Success:        true,
	}

	if reset {
		sess.Engine.Reset()
		result.Events = append(result.Events, resetEvent())
	}
	result.StartEmpty = sess.Engine.GetBoard().FindEmptyPosition()

	// Limit moves to prevent abuse
	if len(directions) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		directions = directions[:engine.MaxBulkMoves]
	}

	for i, d := range directions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		from := sess.Engine.GetBoard().FindEmptyPosition()
		outcome := sess.Engine.Move(d)
		state := sess.Engine.GetState()
		result.Events = append(result.Events, moveEvents(d, outcome, from, state)...)

		if outcome == engine.Rejected {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d rejected: %s", i+1, d)
			result.StopReasonCode = "rejected"
			result.StoppedOnMove = i + 1
			break
		}

		result.MovesExecuted++
		result.Steps = append(result.Steps, newStep(i+1, d, from, state))

		if state.Solved && sess.Config.StopOnSolve {
			result.StoppedReason = fmt.Sprintf("puzzle solved on move %d", i+1)
			result.StopReasonCode = "solved"
			result.StoppedOnMove = i + 1
			break
		}
	}

	endState := sess.Engine.GetState()
	result.GameState = endState
	result.EndEmpty = endState.EmptyPos
	result.Solved = endState.Solved
	result.Message = endState.Message
	result.PossibleMoves = directionNames(sess.Engine.GetPossibleMoves())

	s.log.WithFields(logrus.Fields{
		"session":   sessionID,
		"requested": result.RequestedMoves,
		"executed":  result.MovesExecuted,
		"stop":      result.StopReasonCode,
	}).Debug("bulk move")

	return result, nil
}

// Reset reshuffles a game session
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	state := sess.Engine.Reset()
	s.log.WithField("session", sessionID).Info("session reset")
	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := min(start+opts.Limit, total)

	moves := []engine.MoveHistoryEntry{}
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else if start < total {
		moves = append(moves, history[start:end]...)
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// getSession looks up a session and touches its access time. Callers hold
// s.mu for writing since the access time is written in place.
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", sessionID, err)
	}
	if err := s.sessions.UpdateLastAccessed(sessionID); err != nil {
		s.log.WithError(err).WithField("session", sessionID).Warn("failed to update last access time")
	}
	return sess, nil
}

func resetEvent() GameEvent {
	return GameEvent{
		Type:      "reset",
		Message:   "Board reshuffled",
		Timestamp: time.Now(),
	}
}

// moveEvents describes one move attempt. from is the empty cell before the move.
func moveEvents(d engine.Direction, outcome engine.MoveOutcome, from engine.Position, state *engine.GameState) []GameEvent {
	now := time.Now()
	if outcome == engine.Rejected {
		return []GameEvent{{
			Type:      "rejected",
			Message:   fmt.Sprintf("Cannot move %s from %s", d, from),
			Timestamp: now,
			Position:  from,
		}}
	}

	events := []GameEvent{{
		Type:      "move",
		Message:   fmt.Sprintf("Tile %d slid %s", state.Tiles[from.Y][from.X], d),
		Timestamp: now,
		Position:  state.EmptyPos,
	}}
	if state.Solved {
		events = append(events, GameEvent{
			Type:      "solved",
			Message:   state.Message,
			Timestamp: now,
			Position:  state.EmptyPos,
		})
	}
	return events
}

func newStep(idx int, d engine.Direction, from engine.Position, state *engine.GameState) StepInfo {
	return StepInfo{
		Idx:     idx,
		Dir:     d.String(),
		From:    from,
		To:      state.EmptyPos,
		Tile:    state.Tiles[from.Y][from.X],
		Success: true,
		Solved:  state.Solved,
	}
}

func directionNames(dirs []engine.Direction) []string {
	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.String())
	}
	return names
}
