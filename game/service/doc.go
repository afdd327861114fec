// Package service provides the business logic layer for the sliding puzzle.
//
// GameService is the main interface. It owns session lifecycle, applies
// preset overrides, turns direction names into engine moves and reports
// each move as a result with events and step records.
//
// SessionManager and ConfigManager are the storage seams: the service never
// touches the filesystem or the session map directly.
//
// Usage:
//
//	sessions := session.NewManager()
//	configs, _ := config.NewManager("configs")
//	svc := service.NewGameService(sessions, configs, log)
//
//	info, err := svc.CreateSession(ctx, "classic", service.CreateOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := svc.Move(ctx, info.ID, "right", false)
//
// Bulk moves stop at the first rejected move, or when the puzzle is solved
// and the preset ends the game there. At most engine.MaxBulkMoves are
// executed per call.
package service
