package rules

import (
	"fmt"
	"strings"
)

// Glyph tables for the textual board notation: "⋅" for an empty square plus
// the twelve piece glyphs. Process-wide constant lookup data.
var unicodeToPiece = map[string]Piece{
	"⋅": NoPiece,
	"♔": {King, White},
	"♕": {Queen, White},
	"♖": {Rook, White},
	"♗": {Bishop, White},
	"♘": {Knight, White},
	"♙": {Pawn, White},
	"♚": {King, Black},
	"♛": {Queen, Black},
	"♜": {Rook, Black},
	"♝": {Bishop, Black},
	"♞": {Knight, Black},
	"♟": {Pawn, Black},
}

var pieceToUnicode = make(map[Piece]string, len(unicodeToPiece))

func init() {
	for glyph, piece := range unicodeToPiece {
		pieceToUnicode[piece] = glyph
	}
}

// ParseUnicode builds a board from 64 whitespace-delimited glyphs, row-major
// from Black's back rank. Inverse of Unicode.
func ParseUnicode(notation string) (*Board, error) {
	glyphs := strings.Fields(notation)
	if len(glyphs) != BoardSideLen*BoardSideLen {
		return nil, fmt.Errorf("board notation has %d squares, want %d", len(glyphs), BoardSideLen*BoardSideLen)
	}
	board := NewBoard()
	for i, glyph := range glyphs {
		piece, ok := unicodeToPiece[glyph]
		if !ok {
			return nil, fmt.Errorf("unknown board glyph %q", glyph)
		}
		board.grid[i/BoardSideLen][i%BoardSideLen] = piece
	}
	return board, nil
}

// Unicode renders the board as eight space-separated glyph rows, Black's back
// rank first, with a trailing newline.
func (b *Board) Unicode() string {
	var sb strings.Builder
	for y := 0; y < BoardSideLen; y++ {
		for x := 0; x < BoardSideLen; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(pieceToUnicode[b.grid[y][x]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// UnicodeWithCoordinates renders the board with file letters and rank digits
// on the borders. With rotated set the image is point-reflected, showing the
// position from Black's side.
func (b *Board) UnicodeWithCoordinates(rotated bool) string {
	header := make([]string, 0, BoardSideLen+2)
	header = append(header, " ")
	for x := 0; x < BoardSideLen; x++ {
		header = append(header, string(fileLabels[x]))
	}
	header = append(header, " ")

	rows := make([][]string, 0, BoardSideLen+2)
	rows = append(rows, header)
	for y := 0; y < BoardSideLen; y++ {
		rank := string(rankLabels[y])
		row := make([]string, 0, BoardSideLen+2)
		row = append(row, rank)
		for x := 0; x < BoardSideLen; x++ {
			row = append(row, pieceToUnicode[b.grid[y][x]])
		}
		row = append(row, rank)
		rows = append(rows, row)
	}
	rows = append(rows, header)

	if rotated {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
		for _, row := range rows {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
