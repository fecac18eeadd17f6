package rules

// KingState classifies the situation of a side's king. It is derived on
// demand, never stored in the board.
type KingState uint8

const (
	Safe KingState = iota
	Check
	Checkmate
)

func (s KingState) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	default:
		return "safe"
	}
}

// attackProbeTarget returns the promotion target to supply when probing
// whether a piece can move to a square. A pawn landing on its promotion rank
// must name a target or the interpreter rejects the move outright, which
// would hide every back-rank pawn threat and promotion escape. The target
// type has no effect on the immediate legality of the move itself, so Queen
// stands in for all four.
func attackProbeTarget(piece Piece, destination Position) PieceType {
	if piece.Type == Pawn && destination.y == promotionRank(piece.Color) {
		return Queen
	}
	return NoPieceType
}

// IsSquareAttacked reports whether any piece of byColor has a legal move
// landing on the square, whether or not the square is occupied.
func IsSquareAttacked(b BoardView, square Position, byColor Color) bool {
	for pos, piece := range b.ToMapping() {
		if piece.Color != byColor {
			continue
		}
		if _, err := InterpretMove(b, byColor, pos, square, attackProbeTarget(piece, square)); err == nil {
			return true
		}
	}
	return false
}

// IsKingInCheck reports whether the king of the given color is under attack.
// Boards without that king (test fixtures) report false.
func IsKingInCheck(b BoardView, color Color) bool {
	target := Piece{King, color}
	for pos, piece := range b.ToMapping() {
		if piece == target {
			return IsSquareAttacked(b, pos, color.Opposite())
		}
	}
	return false
}

// DeduceKingState classifies the position for the side to move: Safe when its
// king is not attacked, otherwise Check if at least one legal move escapes
// the attack, and Checkmate if none does.
//
// Escape search is brute force: every own piece is tried against every one of
// the 64 squares, each candidate applied tentatively and undone again. The
// search stops at the first escaping move; it proves existence, not quality.
func DeduceKingState(b *Board, colorToMove Color) KingState {
	if !IsKingInCheck(b, colorToMove) {
		return Safe
	}

	for pos, piece := range b.ToMapping() {
		if piece.Color != colorToMove {
			continue
		}
		for y := 0; y < BoardSideLen; y++ {
			for x := 0; x < BoardSideLen; x++ {
				destination := Position{x, y}
				move, err := InterpretMove(b, colorToMove, pos, destination, attackProbeTarget(piece, destination))
				if err != nil {
					continue
				}
				move.Apply(b)
				escaped := !IsKingInCheck(b, colorToMove)
				move.Undo(b)
				if escaped {
					return Check
				}
			}
		}
	}

	return Checkmate
}
