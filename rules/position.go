// Package rules implements the chess rules core: board state, move
// interpretation and king-safety classification. The package is pure and
// single-threaded; a Board is owned by exactly one caller at a time.
package rules

import "errors"

// BoardSideLen is the width and height of the board.
const BoardSideLen = 8

// File and rank label tables, indexed by x and y grid coordinates.
// y grows from Black's back rank (rank 8) toward White's (rank 1).
const (
	fileLabels = "abcdefgh"
	rankLabels = "87654321"
)

var (
	// ErrOutOfBounds reports a coordinate outside [0,8).
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrInvalidCoordinate reports a malformed coordinate label.
	ErrInvalidCoordinate = errors.New("invalid coordinate label")
	// ErrNotStraight reports a direction query along a path that is neither
	// straight nor diagonal.
	ErrNotStraight = errors.New("path is not straight or diagonal")
)

// Position is a valid square on the board. The zero value is the a8 corner
// (0,0); invalid positions cannot be constructed outside the package.
type Position struct {
	x, y int
}

// NewPosition builds a Position from grid coordinates, each in [0,8).
func NewPosition(x, y int) (Position, error) {
	if x < 0 || x >= BoardSideLen || y < 0 || y >= BoardSideLen {
		return Position{}, ErrOutOfBounds
	}
	return Position{x, y}, nil
}

// MustPosition is like NewPosition but panics on out-of-range coordinates.
// Intended for fixtures and compile-time-known squares.
func MustPosition(x, y int) Position {
	pos, err := NewPosition(x, y)
	if err != nil {
		panic(err)
	}
	return pos
}

// ParseCoordinate converts a two-character label such as "e4" into a Position.
func ParseCoordinate(coord string) (Position, error) {
	if len(coord) != 2 {
		return Position{}, ErrInvalidCoordinate
	}
	x := indexOf(fileLabels, coord[0])
	y := indexOf(rankLabels, coord[1])
	if x < 0 || y < 0 {
		return Position{}, ErrInvalidCoordinate
	}
	return Position{x, y}, nil
}

func indexOf(table string, ch byte) int {
	for i := 0; i < len(table); i++ {
		if table[i] == ch {
			return i
		}
	}
	return -1
}

// X returns the file index (0 = file a).
func (p Position) X() int { return p.x }

// Y returns the rank index (0 = rank 8, Black's back rank).
func (p Position) Y() int { return p.y }

// Coordinate returns the "{file}{rank}" label of the square, e.g. "e4".
func (p Position) Coordinate() string {
	return string([]byte{fileLabels[p.x], rankLabels[p.y]})
}

// String implements fmt.Stringer using the coordinate label.
func (p Position) String() string { return p.Coordinate() }

// DirectionTo returns the unit step (-1, 0 or 1 per axis) from p toward dest.
// The vector between the squares must be horizontal, vertical or diagonal;
// anything else (a knight jump) returns ErrNotStraight.
func (p Position) DirectionTo(dest Position) (dx, dy int, err error) {
	vx, vy := dest.x-p.x, dest.y-p.y
	if vx != 0 && vy != 0 && abs(vx) != abs(vy) {
		return 0, 0, ErrNotStraight
	}
	return step(p.x, dest.x), step(p.y, dest.y), nil
}

// Shift returns the position offset by (dx, dy), or ErrOutOfBounds if the
// result leaves the grid.
func (p Position) Shift(dx, dy int) (Position, error) {
	return NewPosition(p.x+dx, p.y+dy)
}

// step returns the unit direction from one coordinate toward another.
func step(from, to int) int {
	switch {
	case from == to:
		return 0
	case from < to:
		return 1
	default:
		return -1
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
