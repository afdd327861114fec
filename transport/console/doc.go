// Package console plays a sliding puzzle session in a text terminal.
//
// The pieces are small and independent:
//   - Keys maps w/a/s/d/q to up/left/down/right/quit using bubbles key bindings
//   - KeyReader reads single key presses, switching a terminal to raw mode
//   - Renderer draws a game state inside a lipgloss frame
//   - Player ties them to a service.GameService session
//
// Usage:
//
//	keys, err := console.NewKeyReader(os.Stdin)
//	if err != nil {
//		return err
//	}
//	defer keys.Close()
//
//	renderer := console.NewRenderer(os.Stdout, console.WithRawTerminal(keys.Raw()))
//	result, err := console.NewPlayer(svc, keys, renderer, log).Play(ctx, sessionID)
package console
