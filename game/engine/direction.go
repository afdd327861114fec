package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// ErrInvalidDirection is returned when a direction name cannot be parsed
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is one of the four compass directions a move can take
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

var inverses = [...]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

// Directions returns the four directions in declaration order
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Inverse returns the opposite direction
func (d Direction) Inverse() Direction {
	return inverses[d]
}

// String returns the lowercase display name of the direction
func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts a name such as "up" or "Left" into a Direction
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Up, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
	}
}

// RandomSource is the random capability consumed by shuffling.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source. A zero seed seeds from the clock.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// RandomDirection draws one of the four directions uniformly from r
func RandomDirection(r RandomSource) Direction {
	return Direction(r.IntN(len(directionNames)))
}
