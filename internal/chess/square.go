package chess

import (
	"fmt"

	"github.com/mwaldron/chessrules/internal/errors"
)

// Square identifies one of the 64 board squares by file and rank.
// The zero value is not a valid square; construct through NewSquare or
// ParseSquare so that every Square in circulation is bounds-checked.
type Square struct {
	Col  Col
	Rank Rank
}

// NewSquare builds a square from file and rank characters.
func NewSquare(col Col, rank Rank) (Square, error) {
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return Square{}, fmt.Errorf("square %c%c: %w", col, rank, errors.ErrInvalidSquare)
	}
	return Square{Col: col, Rank: rank}, nil
}

// ParseSquare parses canonical square text such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return NewSquare(Col(s[0]), Rank(s[1]))
}

// MustSquare is ParseSquare for compile-time-known coordinates; it panics on
// invalid input and is intended for literals in tests and tables.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol && s.Rank >= FirstRank && s.Rank <= LastRank
}

// String returns the canonical text form, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Offset returns the square displaced by the given file and rank deltas,
// and whether the result is still on the board.
func (s Square) Offset(dc, dr int) (Square, bool) {
	sq := Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
	return sq, sq.Valid()
}
