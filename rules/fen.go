package rules

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromFENChar converts a FEN letter to the corresponding piece.
func pieceFromFENChar(ch rune) Piece {
	switch ch {
	case 'P':
		return Piece{Pawn, White}
	case 'N':
		return Piece{Knight, White}
	case 'B':
		return Piece{Bishop, White}
	case 'R':
		return Piece{Rook, White}
	case 'Q':
		return Piece{Queen, White}
	case 'K':
		return Piece{King, White}
	case 'p':
		return Piece{Pawn, Black}
	case 'n':
		return Piece{Knight, Black}
	case 'b':
		return Piece{Bishop, Black}
	case 'r':
		return Piece{Rook, Black}
	case 'q':
		return Piece{Queen, Black}
	case 'k':
		return Piece{King, Black}
	default:
		return NoPiece
	}
}

// fenCharFromPiece converts a piece to its FEN letter.
func fenCharFromPiece(p Piece) byte {
	var ch byte
	switch p.Type {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	default:
		return '?'
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// ParseFEN parses the placement and side-to-move fields of a FEN string.
// Castling, en-passant and clock fields are tolerated and ignored: those
// rules are outside this engine's scope. The side to move defaults to White
// when the field is absent.
func ParseFEN(fen string) (*Board, Color, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, White, errors.New("invalid FEN: empty string")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != BoardSideLen {
		return nil, White, errors.New("invalid FEN: incorrect number of ranks")
	}

	board := NewBoard()
	for y, rankStr := range ranks {
		x := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			piece := pieceFromFENChar(ch)
			if piece == NoPiece {
				return nil, White, errors.New("invalid FEN: unexpected character " + strconv.QuoteRune(ch))
			}
			if x >= BoardSideLen {
				return nil, White, errors.New("invalid FEN: rank overflow")
			}
			board.grid[y][x] = piece
			x++
		}
		if x != BoardSideLen {
			return nil, White, errors.New("invalid FEN: rank does not describe 8 squares")
		}
	}

	sideToMove := White
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			sideToMove = White
		case "b":
			sideToMove = Black
		default:
			return nil, White, errors.New("invalid FEN: bad side to move " + strconv.Quote(fields[1]))
		}
	}

	return board, sideToMove, nil
}

// FEN renders the board and side to move as a FEN string. Castling and
// en-passant fields are emitted as "-" since the engine does not track them.
func (b *Board) FEN(sideToMove Color) string {
	var sb strings.Builder
	for y := 0; y < BoardSideLen; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < BoardSideLen; x++ {
			piece := b.grid[y][x]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(fenCharFromPiece(piece))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
	}
	if sideToMove == White {
		sb.WriteString(" w - - 0 1")
	} else {
		sb.WriteString(" b - - 0 1")
	}
	return sb.String()
}
