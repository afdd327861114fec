package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayout is returned when a tile layout is not a permutation of 0..N²-1
var ErrInvalidLayout = errors.New("invalid board layout")

// Board is an N×N grid of tiles stored row-major in a flat slice
type Board struct {
	size  int
	tiles []Tile
}

// NewBoard creates a solved board: 1..N²-1 in row-major order, empty tile last
func NewBoard(size int) *Board {
	tiles := make([]Tile, size*size)
	for i := 0; i < len(tiles)-1; i++ {
		tiles[i] = NewTile(i + 1)
	}
	tiles[len(tiles)-1] = NewTile(0)
	return &Board{size: size, tiles: tiles}
}

// NewBoardFromNumbers builds a board from rows of tile numbers
func NewBoardFromNumbers(rows [][]int) (*Board, error) {
	size := len(rows)
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: need at least %d rows, got %d", ErrInvalidLayout, MinBoardSize, size)
	}

	seen := make([]bool, size*size)
	tiles := make([]Tile, 0, size*size)
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidLayout, y, len(row), size)
		}
		for x, n := range row {
			if n < 0 || n >= size*size {
				return nil, fmt.Errorf("%w: tile %d at (%d,%d) out of range", ErrInvalidLayout, n, x, y)
			}
			if seen[n] {
				return nil, fmt.Errorf("%w: tile %d appears twice", ErrInvalidLayout, n)
			}
			seen[n] = true
			tiles = append(tiles, NewTile(n))
		}
	}

	return &Board{size: size, tiles: tiles}, nil
}

// Size returns the board dimension N
func (b *Board) Size() int {
	return b.size
}

// IsInBounds reports whether p lies on the board
func (b *Board) IsInBounds(p Position) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// TileAt returns the tile at p, or false when p is off the board
func (b *Board) TileAt(p Position) (Tile, bool) {
	if !b.IsInBounds(p) {
		return Tile{}, false
	}
	return b.tiles[b.index(p)], true
}

// FindEmptyPosition returns the position of the empty tile. A board without
// an empty tile is corrupt, so this panics instead of returning an error.
func (b *Board) FindEmptyPosition() Position {
	for i, t := range b.tiles {
		if t.IsEmpty() {
			return Position{X: i % b.size, Y: i / b.size}
		}
	}
	panic("engine: board has no empty tile")
}

// IsSolved compares every cell against a freshly built solved board
func (b *Board) IsSolved() bool {
	return b.Equal(NewBoard(b.size))
}

// Equal reports whether both boards hold the same numbers in the same cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.tiles {
		if b.tiles[i].Number() != other.tiles[i].Number() {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return &Board{size: b.size, tiles: tiles}
}

// Numbers returns the tile numbers as rows
func (b *Board) Numbers() [][]int {
	rows := make([][]int, b.size)
	for y := range rows {
		rows[y] = make([]int, b.size)
		for x := range rows[y] {
			rows[y][x] = b.tiles[y*b.size+x].Number()
		}
	}
	return rows
}

// Render returns the grid as rows of fixed-width cell strings
func (b *Board) Render() [][]string {
	rows := make([][]string, b.size)
	for y := range rows {
		rows[y] = make([]string, b.size)
		for x := range rows[y] {
			rows[y][x] = b.tiles[y*b.size+x].Render()
		}
	}
	return rows
}

// String joins the rendered rows with newlines
func (b *Board) String() string {
	lines := make([]string, 0, b.size)
	for _, row := range b.Render() {
		lines = append(lines, strings.Join(row, ""))
	}
	return strings.Join(lines, "\n")
}

func (b *Board) index(p Position) int {
	return p.Y*b.size + p.X
}

func (b *Board) swap(p, q Position) {
	i, j := b.index(p), b.index(q)
	b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
}
