package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Square identifies a board square as an index 0-63 with a1=0, h1=7, a8=56.
type Square int8

// NoSquare is the off-board sentinel. Coordinate arithmetic that leaves the
// board yields NoSquare rather than a clamped square.
const NoSquare Square = -1

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Named squares used by castling and tests.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// NewSquare returns the square at file and rank (both 0-7),
// or NoSquare when either is out of range.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare parses algebraic square text such as "e3".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	file := int(text[0]) - FileBase
	rank := int(text[1]) - RankBase
	sq := NewSquare(file, rank)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed text.
// It is intended for constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// File returns the file index (0=a .. 7=h).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index (0=1st rank .. 7=8th rank).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Offset returns the square df files and dr ranks away,
// or NoSquare if that falls off the board.
func (s Square) Offset(df, dr int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}
