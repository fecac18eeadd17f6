package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kingdom-chess/rules"
)

func TestIsSquareAttacked(t *testing.T) {
	board := mustBoard(t, `
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ♜ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
	`)

	// The rook on f7 sweeps its file and rank.
	assert.True(t, rules.IsSquareAttacked(board, rules.MustPosition(5, 6), rules.Black))
	assert.True(t, rules.IsSquareAttacked(board, rules.MustPosition(0, 1), rules.Black))
	assert.False(t, rules.IsSquareAttacked(board, rules.MustPosition(4, 2), rules.Black))
	assert.False(t, rules.IsSquareAttacked(board, rules.MustPosition(5, 6), rules.White))
}

func TestIsSquareAttacked_BlockedPath(t *testing.T) {
	board := mustBoard(t, `
		⋅ ⋅ ⋅ ⋅ ⋅ ♜ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ♙ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
	`)
	// The white pawn on f6 shields the rest of the file.
	assert.True(t, rules.IsSquareAttacked(board, rules.MustPosition(5, 2), rules.Black))
	assert.False(t, rules.IsSquareAttacked(board, rules.MustPosition(5, 4), rules.Black))
}

func TestIsSquareAttacked_PawnOnPromotionRank(t *testing.T) {
	// A black pawn one step from White's back rank still threatens the
	// diagonal back-rank squares even though such a capture must promote.
	board := rules.NewBoard()
	board.Set(rules.MustPosition(4, 6), piece(rules.Pawn, rules.Black))
	board.Set(rules.MustPosition(5, 7), piece(rules.King, rules.White))

	assert.True(t, rules.IsSquareAttacked(board, rules.MustPosition(5, 7), rules.Black))
	assert.True(t, rules.IsKingInCheck(board, rules.White))
}

func TestIsKingInCheck(t *testing.T) {
	board := mustBoard(t, `
		⋅ ⋅ ⋅ ⋅ ♚ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ♖ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ♔ ⋅ ⋅
	`)
	assert.True(t, rules.IsKingInCheck(board, rules.Black))
	assert.False(t, rules.IsKingInCheck(board, rules.White))
}

func TestIsKingInCheck_NoKing(t *testing.T) {
	// Fixture boards without a king report false instead of erroring.
	assert.False(t, rules.IsKingInCheck(rules.NewBoard(), rules.White))
}

func TestDeduceKingState_Safe(t *testing.T) {
	assert.Equal(t, rules.Safe, rules.DeduceKingState(rules.StartingBoard(), rules.White))
	assert.Equal(t, rules.Safe, rules.DeduceKingState(rules.StartingBoard(), rules.Black))
}

func TestDeduceKingState_BackRankMate(t *testing.T) {
	// Black king a8, White king a6, White rook b6, White queen c6: the queen
	// checks along the long diagonal and every flight square is covered.
	board := mustBoard(t, `
		♚ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		♔ ♖ ♕ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
	`)
	assert.Equal(t, rules.Checkmate, rules.DeduceKingState(board, rules.Black))

	// A bishop able to capture the checking queen downgrades the verdict.
	board.Set(rules.MustPosition(4, 0), piece(rules.Bishop, rules.Black))
	assert.Equal(t, rules.Check, rules.DeduceKingState(board, rules.Black))
}

func TestDeduceKingState_LeavesBoardUntouched(t *testing.T) {
	board := mustBoard(t, `
		♚ ⋅ ⋅ ⋅ ♝ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		♔ ♖ ♕ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
	`)
	snapshot := rules.FromMapping(board.ToMapping())
	rules.DeduceKingState(board, rules.Black)
	assert.True(t, board.Equal(snapshot), "speculative moves must be rolled back")
}

func TestDeduceKingState_PromotionEscape(t *testing.T) {
	// White king a8 is checked by the rook h8 while the queen b6 covers
	// every flight square. The only defenses are the g7 pawn's promotion
	// moves: blocking on g8 or capturing on h8. Both demand a promotion
	// target, so an enumeration that never supplies one would call this
	// checkmate.
	board := mustBoard(t, `
		♔ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ♜
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ♙ ⋅
		⋅ ♛ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
		⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅ ⋅
	`)
	assert.Equal(t, rules.Check, rules.DeduceKingState(board, rules.White))

	// Without the pawn the position really is mate.
	board.Set(rules.MustPosition(6, 1), rules.NoPiece)
	assert.Equal(t, rules.Checkmate, rules.DeduceKingState(board, rules.White))
}

func TestKingState_String(t *testing.T) {
	assert.Equal(t, "safe", rules.Safe.String())
	assert.Equal(t, "check", rules.Check.String())
	assert.Equal(t, "checkmate", rules.Checkmate.String())
}
