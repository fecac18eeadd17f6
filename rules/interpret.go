package rules

// MoveError is a move-rejection reason. The message text is a stable,
// user-facing contract: callers may show it verbatim but must not parse it.
type MoveError string

func (e MoveError) Error() string { return string(e) }

// Rejection reasons produced by InterpretMove, in the order they are checked.
const (
	ErrSameSquare         MoveError = "destination is the same as departure"
	ErrEmptyDeparture     MoveError = "departure have no piece"
	ErrEnemyPiece         MoveError = "can't move enemy piece"
	ErrBadPromotionTarget MoveError = "invalid promotion target"
	ErrKingMove           MoveError = "invalid king move"
	ErrRookMove           MoveError = "invalid rook move"
	ErrRookLeap           MoveError = "rook can't leap over intervening pieces"
	ErrBishopMove         MoveError = "invalid bishop move"
	ErrBishopLeap         MoveError = "bishop can't leap over intervening pieces"
	ErrKnightMove         MoveError = "invalid knight move"
	ErrQueenMove          MoveError = "invalid queen move"
	ErrQueenLeap          MoveError = "queen can't leap over intervening pieces"
	ErrPawnMove           MoveError = "invalid pawn move"
	ErrPawnDiagonal       MoveError = "pawn can move diagonally only when capturing"
	ErrPawnLeap           MoveError = "pawn can't leap over intervening piece"
	ErrPawnForwardCapture MoveError = "pawn can't capture on forward move"
	ErrCaptureAllied      MoveError = "it's not alowed to capture allied piece"
	ErrMustPromote        MoveError = "pawn has to be promoted to something"
	ErrCannotPromoteHere  MoveError = "pawn can't be promoted here"
	ErrOnlyPawnPromotes   MoveError = "only pawn can be promoted"
)

// pawnForward returns the rank-index step a pawn of the color advances by.
func pawnForward(c Color) int {
	if c == Black {
		return 1
	}
	return -1
}

// pawnHomeRank returns the rank index pawns of the color start on.
func pawnHomeRank(c Color) int {
	if c == Black {
		return 1
	}
	return 6
}

// promotionRank returns the rank index on which pawns of the color promote.
func promotionRank(c Color) int {
	if c == Black {
		return 7
	}
	return 0
}

// InterpretMove validates a candidate move for the moving color against the
// piece movement rules: geometry, obstruction, capture legality and pawn
// promotion. It performs no mutation and no king-safety check; the returned
// Move is geometrically legal but not yet confirmed king-safe.
//
// promoteTo must be NoPieceType except for a pawn reaching its promotion
// rank, where a Queen, Rook, Bishop or Knight target is mandatory.
// Rejections are MoveError values with stable messages.
func InterpretMove(b BoardView, mover Color, departure, destination Position, promoteTo PieceType) (Move, error) {
	if departure == destination {
		return Move{}, ErrSameSquare
	}

	moving := b.At(departure)
	if moving == NoPiece {
		return Move{}, ErrEmptyDeparture
	}
	if moving.Color != mover {
		return Move{}, ErrEnemyPiece
	}
	if promoteTo != NoPieceType && !promoteTo.IsPromotionTarget() {
		return Move{}, ErrBadPromotionTarget
	}

	captured := b.At(destination)
	dx := destination.x - departure.x
	dy := destination.y - departure.y

	switch moving.Type {
	case King:
		if abs(dx) > 1 || abs(dy) > 1 {
			return Move{}, ErrKingMove
		}
	case Rook:
		if dx != 0 && dy != 0 {
			return Move{}, ErrRookMove
		}
		if !isPathClear(b, departure, destination) {
			return Move{}, ErrRookLeap
		}
	case Bishop:
		if abs(dx) != abs(dy) {
			return Move{}, ErrBishopMove
		}
		if !isPathClear(b, departure, destination) {
			return Move{}, ErrBishopLeap
		}
	case Knight:
		if !(abs(dx) == 1 && abs(dy) == 2 || abs(dx) == 2 && abs(dy) == 1) {
			return Move{}, ErrKnightMove
		}
	case Queen:
		if abs(dx) != abs(dy) && dx != 0 && dy != 0 {
			return Move{}, ErrQueenMove
		}
		if !isPathClear(b, departure, destination) {
			return Move{}, ErrQueenLeap
		}
	case Pawn:
		forward := pawnForward(mover)
		switch {
		case abs(dx) == 1 && dy == forward:
			if captured == NoPiece {
				return Move{}, ErrPawnDiagonal
			}
		case dx == 0:
			doubleMove := departure.y == pawnHomeRank(mover) && dy == 2*forward
			if dy != forward && !doubleMove {
				return Move{}, ErrPawnMove
			}
			if doubleMove && !isPathClear(b, departure, destination) {
				return Move{}, ErrPawnLeap
			}
			if captured != NoPiece {
				return Move{}, ErrPawnForwardCapture
			}
		default:
			return Move{}, ErrPawnMove
		}
	}

	if captured != NoPiece && captured.Color == mover {
		return Move{}, ErrCaptureAllied
	}

	if moving.Type == Pawn && destination.y == promotionRank(mover) {
		if promoteTo == NoPieceType {
			return Move{}, ErrMustPromote
		}
		return Move{
			Departure:   departure,
			Destination: destination,
			Piece:       moving,
			Captured:    captured,
			Promotion:   Piece{promoteTo, mover},
		}, nil
	}
	if promoteTo != NoPieceType {
		if moving.Type == Pawn {
			return Move{}, ErrCannotPromoteHere
		}
		return Move{}, ErrOnlyPawnPromotes
	}

	return Move{
		Departure:   departure,
		Destination: destination,
		Piece:       moving,
		Captured:    captured,
	}, nil
}

// isPathClear reports whether every square strictly between departure and
// destination is empty. The caller has already validated that the two squares
// lie on a straight or diagonal line, so DirectionTo cannot fail here and the
// walk cannot leave the grid before reaching the destination.
func isPathClear(b BoardView, departure, destination Position) bool {
	dx, dy, err := departure.DirectionTo(destination)
	if err != nil {
		return false
	}
	intermediate, _ := departure.Shift(dx, dy)
	for intermediate != destination {
		if b.At(intermediate) != NoPiece {
			return false
		}
		intermediate, _ = intermediate.Shift(dx, dy)
	}
	return true
}
