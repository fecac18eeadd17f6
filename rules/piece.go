package rules

import "fmt"

// PieceType is a colorless chess piece kind. The zero value means "no piece"
// so that the zero Piece marks an empty square.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// PieceTypeFromChar maps a single letter (k, q, r, b, n, p; case-insensitive)
// to a PieceType.
func PieceTypeFromChar(ch byte) (PieceType, error) {
	switch ch {
	case 'k', 'K':
		return King, nil
	case 'q', 'Q':
		return Queen, nil
	case 'r', 'R':
		return Rook, nil
	case 'b', 'B':
		return Bishop, nil
	case 'n', 'N':
		return Knight, nil
	case 'p', 'P':
		return Pawn, nil
	default:
		return NoPieceType, fmt.Errorf("unknown piece letter %q", ch)
	}
}

// IsPromotionTarget reports whether a pawn may promote to this type.
func (t PieceType) IsPromotionTarget() bool {
	switch t {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

func (t PieceType) String() string {
	switch t {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is a (type, color) pair compared by value. The zero value NoPiece
// denotes an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the empty-square marker.
var NoPiece = Piece{}
