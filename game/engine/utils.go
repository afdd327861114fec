package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

// SolvedPosition returns where tile number n sits on a solved board of the given size
func SolvedPosition(n, size int) Position {
	if n == 0 {
		return Position{X: size - 1, Y: size - 1}
	}
	return Position{X: (n - 1) % size, Y: (n - 1) / size}
}

// CountMisplaced counts non-empty tiles that are not in their solved cell
func CountMisplaced(b *Board) int {
	count := 0
	for i, t := range b.tiles {
		if !t.IsEmpty() && t.Number() != i+1 {
			count++
		}
	}
	return count
}

// TotalManhattanDistance sums how far every non-empty tile is from its solved cell
func TotalManhattanDistance(b *Board) int {
	total := 0
	for i, t := range b.tiles {
		if t.IsEmpty() {
			continue
		}
		at := Position{X: i % b.size, Y: i / b.size}
		total += ManhattanDistance(at, SolvedPosition(t.Number(), b.size))
	}
	return total
}

// IsSolvable reports whether the board can reach the solved arrangement,
// using the inversion-parity rule.
func IsSolvable(b *Board) bool {
	inversions := 0
	for i := 0; i < len(b.tiles); i++ {
		if b.tiles[i].IsEmpty() {
			continue
		}
		for j := i + 1; j < len(b.tiles); j++ {
			if !b.tiles[j].IsEmpty() && b.tiles[i].Number() > b.tiles[j].Number() {
				inversions++
			}
		}
	}

	if b.size%2 == 1 {
		return inversions%2 == 0
	}

	// Even widths: the blank's row counted from the bottom (1-based) joins the parity.
	rowFromBottom := b.size - b.FindEmptyPosition().Y
	return (inversions+rowFromBottom)%2 == 1
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
