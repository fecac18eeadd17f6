package rules

// Move is a fully interpreted move: geometrically legal on the board it was
// interpreted against, but not yet confirmed king-safe. Only InterpretMove
// constructs Moves.
type Move struct {
	Departure   Position
	Destination Position
	// Piece is the moving piece as it stood on the departure square.
	Piece Piece
	// Captured is the piece displaced at the destination, or NoPiece.
	// Kept so Undo can restore it.
	Captured Piece
	// Promotion is the replacement piece for a promoting pawn, or NoPiece.
	Promotion Piece
}

// Apply writes the move onto the board. The caller must have validated the
// move against this exact board state.
func (m Move) Apply(b *Board) {
	b.Set(m.Departure, NoPiece)
	if m.Promotion != NoPiece {
		b.Set(m.Destination, m.Promotion)
	} else {
		b.Set(m.Destination, m.Piece)
	}
}

// Undo reverses Apply. It is only valid as the very next board operation
// after the matching Apply.
func (m Move) Undo(b *Board) {
	b.Set(m.Destination, m.Captured)
	b.Set(m.Departure, m.Piece)
}

// String renders the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.Departure.Coordinate() + m.Destination.Coordinate()
	if m.Promotion != NoPiece {
		switch m.Promotion.Type {
		case Queen:
			s += "q"
		case Rook:
			s += "r"
		case Bishop:
			s += "b"
		case Knight:
			s += "n"
		}
	}
	return s
}
