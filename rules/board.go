package rules

// BoardView is the read-only board surface consumed by the move interpreter,
// the king-safety oracle and display code.
type BoardView interface {
	At(pos Position) Piece
	ToMapping() map[Position]Piece
	Unicode() string
	UnicodeWithCoordinates(rotated bool) string
}

// Board is a mutable 8x8 grid of pieces. A Board is a pure snapshot: it keeps
// no history, and undo is performed by the caller re-applying inverse writes.
//
// Layout:
//
//	x = 0..7         file = a..h
//	y = 0..7         rank = 8..1
//
//	          x
//	  .------->      rank ^
//	  |   B               |   B
//	  |                   |
//	  |Q     K            |Q     K
//	  |                   |
//	  |   W               |   W
//	y v                   .------->
//	                           file
type Board struct {
	// grid[y][x]; NoPiece marks an empty square.
	grid [BoardSideLen][BoardSideLen]Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board { return &Board{} }

// At returns the piece on the square, or NoPiece.
func (b *Board) At(pos Position) Piece { return b.grid[pos.y][pos.x] }

// Set places a piece on the square; NoPiece clears it.
func (b *Board) Set(pos Position, piece Piece) { b.grid[pos.y][pos.x] = piece }

// ToMapping returns the occupied squares as a sparse map.
func (b *Board) ToMapping() map[Position]Piece {
	mapping := make(map[Position]Piece)
	for y := 0; y < BoardSideLen; y++ {
		for x := 0; x < BoardSideLen; x++ {
			if piece := b.grid[y][x]; piece != NoPiece {
				mapping[Position{x, y}] = piece
			}
		}
	}
	return mapping
}

// FromMapping builds a board holding exactly the pieces of the mapping.
func FromMapping(mapping map[Position]Piece) *Board {
	board := NewBoard()
	for pos, piece := range mapping {
		board.Set(pos, piece)
	}
	return board
}

// backRankTypes lists the non-pawn rank from file a to file h.
var backRankTypes = [BoardSideLen]PieceType{
	Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook,
}

// StartingBoard returns the standard initial position.
func StartingBoard() *Board {
	board := NewBoard()
	for x, typ := range backRankTypes {
		board.grid[0][x] = Piece{typ, Black}
		board.grid[7][x] = Piece{typ, White}
	}
	for x := 0; x < BoardSideLen; x++ {
		board.grid[1][x] = Piece{Pawn, Black}
		board.grid[6][x] = Piece{Pawn, White}
	}
	return board
}

// Equal reports whether both boards hold equal pieces on all 64 squares.
func (b *Board) Equal(other *Board) bool {
	return b.grid == other.grid
}

var _ BoardView = (*Board)(nil)
