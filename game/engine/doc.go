// Package engine provides the core logic of the sliding puzzle.
//
// The engine package implements:
//   - Directions, positions and numbered tiles
//   - The N×N board with empty-cell tracking and move legality
//   - Shuffling by random legal moves, which keeps every board solvable
//   - Win detection against the canonical solved arrangement
//   - Game configuration validation and a move-history keeping GameEngine
//
// Core Types:
//
// Board owns the grid and is the only place tiles move. A move names the
// direction a tile slides: the neighbour on the inverse side of the empty
// cell is swapped into it, so on a solved board "down" and "right" are legal
// while "up" and "left" are rejected. GameEngine wraps a Board with a
// GameConfig, a message and the move history.
//
// Usage:
//
//	eng, err := engine.NewEngine(engine.DefaultGameConfig(), engine.NewRandomSource(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if eng.Move(engine.Right) == engine.Moved {
//		fmt.Println(eng.GetBoard())
//	}
//
// Randomness:
//
// Shuffling consumes a RandomSource passed in by the caller so tests can
// replay exact sequences. *rand.Rand from math/rand/v2 satisfies it.
package engine
