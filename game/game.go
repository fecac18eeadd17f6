// Package game layers turn order and the king-protection rule on top of the
// rules package. A Game owns its board exclusively; all mutation goes through
// MakeMove.
package game

import "kingdom-chess/rules"

// ErrSelfCheck rejects a move that would leave the mover's own king attacked.
const ErrSelfCheck = rules.MoveError("move leaves king under immediate attack")

// Game is the two-player session state machine: it alternates between
// "awaiting White" and "awaiting Black". Checkmate is not a separate state;
// it is signaled through KingState and the caller stops issuing moves.
type Game struct {
	board       *rules.Board
	movingColor rules.Color
	enemyColor  rules.Color
	kingState   rules.KingState
}

// New starts a fresh game: standard layout, White to move.
func New() *Game {
	return NewFromBoard(rules.StartingBoard(), rules.White)
}

// NewFromBoard starts a game from an arbitrary position. The Game takes
// exclusive ownership of the board.
func NewFromBoard(board *rules.Board, movingColor rules.Color) *Game {
	g := &Game{
		board:       board,
		movingColor: movingColor,
		enemyColor:  movingColor.Opposite(),
	}
	g.kingState = rules.DeduceKingState(board, movingColor)
	return g
}

// Board exposes a read-only view of the position.
func (g *Game) Board() rules.BoardView { return g.board }

// MovingColor is the player to move next.
func (g *Game) MovingColor() rules.Color { return g.movingColor }

// EnemyColor is the player who is waiting.
func (g *Game) EnemyColor() rules.Color { return g.enemyColor }

// KingState is the classification of the moving player's king: Safe, Check,
// or Checkmate. It is recomputed after every committed move, so right after a
// mating move it reports Checkmate for the side left to move.
func (g *Game) KingState() rules.KingState { return g.kingState }

// MakeMove validates and commits a move for the player to move. On success
// the opponent's king state is recomputed and the turn passes to the
// opponent. On rejection the game state is unchanged and the returned error
// carries the reason; a move that would expose the mover's own king is
// undone and rejected with ErrSelfCheck.
func (g *Game) MakeMove(departure, destination rules.Position, promoteTo rules.PieceType) (rules.Move, error) {
	move, err := rules.InterpretMove(g.board, g.movingColor, departure, destination, promoteTo)
	if err != nil {
		return rules.Move{}, err
	}

	move.Apply(g.board)
	if rules.IsKingInCheck(g.board, g.movingColor) {
		move.Undo(g.board)
		return rules.Move{}, ErrSelfCheck
	}

	// Classify the opponent's king before the turn passes to them.
	g.kingState = rules.DeduceKingState(g.board, g.enemyColor)
	g.movingColor, g.enemyColor = g.enemyColor, g.movingColor

	return move, nil
}
