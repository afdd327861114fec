package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/wricardo/slidepuzzle/game/service"
)

// PlayResult summarizes a finished console game
type PlayResult struct {
	Solved bool
	Quit   bool
	Moves  int
}

type keyEvent struct {
	r   rune
	err error
}

// Player drives one session from key presses until it is solved or the user quits
type Player struct {
	svc      service.GameService
	keys     KeySource
	renderer *Renderer
	keyMap   KeyMap
	log      logrus.FieldLogger
}

// NewPlayer creates a console driver. A nil logger uses the logrus standard logger.
func NewPlayer(svc service.GameService, keys KeySource, renderer *Renderer, log logrus.FieldLogger) *Player {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Player{
		svc:      svc,
		keys:     keys,
		renderer: renderer,
		keyMap:   Keys,
		log:      log.WithField("component", "console"),
	}
}

// Play runs the game loop for sessionID
func Play(ctx context.Context, svc service.GameService, sessionID string, keys KeySource, renderer *Renderer) (*PlayResult, error) {
	return NewPlayer(svc, keys, renderer, nil).Play(ctx, sessionID)
}

// Play renders the board, then reads keys and applies moves. Unbound keys
// are ignored. End of input counts as quitting. A rejected move never ends
// the game, even on a board that starts solved.
//
// When ctx ends while a read is pending, the key source is closed if it
// implements io.Closer so the reading goroutine can return. Sources that
// cannot be closed keep it parked until their next key.
func (p *Player) Play(ctx context.Context, sessionID string) (*PlayResult, error) {
	info, err := p.svc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := &PlayResult{Moves: info.GameState.Moves}
	if err := p.renderer.Render(info.GameState); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := p.readKeys(ctx)

	for {
		var ev keyEvent
		select {
		case <-ctx.Done():
			p.closeKeys()
			return result, ctx.Err()
		case ev = <-events:
		}

		if ev.err != nil {
			if errors.Is(ev.err, io.EOF) {
				result.Quit = true
				return result, p.farewell(info)
			}
			return result, fmt.Errorf("read key: %w", ev.err)
		}

		cmd, ok := p.keyMap.Parse(ev.r)
		if !ok {
			p.log.WithField("key", string(ev.r)).Debug("ignoring key")
			continue
		}
		if cmd == CommandQuit {
			result.Quit = true
			return result, p.farewell(info)
		}

		d, _ := cmd.Direction()
		move, err := p.svc.Move(ctx, sessionID, d.String(), false)
		if err != nil {
			return result, err
		}

		state := move.GameState
		result.Moves = state.Moves
		result.Solved = state.Solved
		if err := p.renderer.Render(state); err != nil {
			return result, fmt.Errorf("render: %w", err)
		}

		if move.Success && state.Solved && info.GameConfig.StopOnSolve {
			p.log.WithFields(logrus.Fields{
				"session": sessionID,
				"moves":   state.Moves,
			}).Info("puzzle solved")
			return result, nil
		}
	}
}

func (p *Player) farewell(info *service.SessionInfo) error {
	if msg := info.GameConfig.Messages.Quit; msg != "" {
		return p.renderer.Println(msg)
	}
	return nil
}

func (p *Player) closeKeys() {
	c, ok := p.keys.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		p.log.WithError(err).Warn("failed to close key source")
	}
}

// readKeys pumps key presses into a channel until an error or ctx is done
func (p *Player) readKeys(ctx context.Context) <-chan keyEvent {
	events := make(chan keyEvent)
	go func() {
		for {
			r, err := p.keys.ReadKey()
			select {
			case events <- keyEvent{r: r, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return events
}
