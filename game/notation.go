package game

import (
	"regexp"
	"strings"

	"golang.org/x/exp/slices"

	"kingdom-chess/rules"
)

// Rejection reasons for move notation resolution.
const (
	ErrBadNotation = rules.MoveError("invalid move notation")
	ErrNoLegalMove = rules.MoveError("invalid move")
	ErrAmbiguous   = rules.MoveError("ambiguous move notation")
)

// Notation grammar: optional piece letter (pawn when omitted), optional
// departure file and/or rank, destination square, optional promotion letter
// after a slash. Case-insensitive. Examples: "e4", "nf3", "rd1", "e7e8/q".
var notationPattern = regexp.MustCompile(
	`^([kqrbnp]?)([a-h]?)([1-8]?)([a-h][1-8])(?:/([qrbn]))?$`,
)

// ParseMove resolves a move-notation string against the current position for
// the player to move. The optional piece letter and departure filters must
// select exactly one piece with a legal move to the destination: zero
// matches yield ErrNoLegalMove, several yield ErrAmbiguous. The resolved
// Move is returned without being applied; pass its squares to MakeMove.
func (g *Game) ParseMove(notation string) (rules.Move, error) {
	groups := notationPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if groups == nil {
		return rules.Move{}, ErrBadNotation
	}

	pieceType := rules.Pawn
	if groups[1] != "" {
		pieceType, _ = rules.PieceTypeFromChar(groups[1][0])
	}
	departureX := -1
	if groups[2] != "" {
		departureX = int(groups[2][0] - 'a')
	}
	departureY := -1
	if groups[3] != "" {
		departureY = int('8' - groups[3][0])
	}
	destination, err := rules.ParseCoordinate(groups[4])
	if err != nil {
		return rules.Move{}, ErrBadNotation
	}
	promoteTo := rules.NoPieceType
	if groups[5] != "" {
		promoteTo, _ = rules.PieceTypeFromChar(groups[5][0])
	}

	movingPiece := rules.Piece{Type: pieceType, Color: g.movingColor}
	var candidates []rules.Position
	for pos, piece := range g.board.ToMapping() {
		if piece != movingPiece {
			continue
		}
		if departureX >= 0 && pos.X() != departureX {
			continue
		}
		if departureY >= 0 && pos.Y() != departureY {
			continue
		}
		candidates = append(candidates, pos)
	}
	// Map iteration order is random; keep resolution deterministic.
	slices.SortFunc(candidates, func(a, b rules.Position) int {
		if a.Y() != b.Y() {
			return a.Y() - b.Y()
		}
		return a.X() - b.X()
	})

	var resolved []rules.Move
	for _, pos := range candidates {
		if move, err := rules.InterpretMove(g.board, g.movingColor, pos, destination, promoteTo); err == nil {
			resolved = append(resolved, move)
		}
	}

	switch len(resolved) {
	case 1:
		return resolved[0], nil
	case 0:
		return rules.Move{}, ErrNoLegalMove
	default:
		return rules.Move{}, ErrAmbiguous
	}
}
