package engine

// moveSource returns the neighbour of the empty cell that would slide into
// it for direction d: the one on the inverse side.
func (b *Board) moveSource(d Direction) (empty, source Position) {
	empty = b.FindEmptyPosition()
	return empty, empty.Stepped(d.Inverse())
}

// CanMove reports whether AttemptMove(d) would be accepted
func (b *Board) CanMove(d Direction) bool {
	_, source := b.moveSource(d)
	return b.IsInBounds(source)
}

// AttemptMove slides the neighbour on the inverse side of the empty cell
// into it. Out of bounds neighbours reject the move and leave the grid untouched.
func (b *Board) AttemptMove(d Direction) MoveOutcome {
	empty, source := b.moveSource(d)
	if !b.IsInBounds(source) {
		return Rejected
	}
	b.swap(empty, source)
	return Moved
}

// LegalMoves returns every direction AttemptMove would currently accept
func (b *Board) LegalMoves() []Direction {
	var legal []Direction
	for _, d := range Directions() {
		if b.CanMove(d) {
			legal = append(legal, d)
		}
	}
	return legal
}

// Shuffle applies exactly moveCount accepted random moves. Rejected draws
// at the edges do not count and are retried. Only reachable positions are
// produced, so the result is always solvable.
func (b *Board) Shuffle(moveCount int, r RandomSource) {
	for accepted := 0; accepted < moveCount; {
		if b.AttemptMove(RandomDirection(r)) == Moved {
			accepted++
		}
	}
}
