package testutil

import (
	"strings"
	"testing"

	"github.com/mwaldron/chessrules/internal/chess"
	"github.com/mwaldron/chessrules/internal/engine"
	"github.com/mwaldron/chessrules/internal/game"
)

// MustBoardFromFEN builds a board from a FEN string, aborting the test on
// parse failure. Use this in test setup.
func MustBoardFromFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return board
}

// MustGameFromFEN builds a game session from a FEN string, aborting the
// test on parse failure.
func MustGameFromFEN(t *testing.T, fen string) *game.Game {
	t.Helper()
	g, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return g
}

// MustPlay executes a space-separated sequence of coordinate moves such as
// "e2e4 e7e5 g1f3", aborting the test if any of them is rejected.
func MustPlay(t *testing.T, g *game.Game, moves string) {
	t.Helper()
	for _, text := range strings.Fields(moves) {
		MustMove(t, g, text)
	}
}

// MustMove executes one coordinate move ("e2e4", "e7e8q"), aborting the
// test on rejection.
func MustMove(t *testing.T, g *game.Game, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("malformed move text %q", text)
	}
	from, err := chess.ParseSquare(text[:2])
	if err != nil {
		t.Fatalf("malformed move text %q: %v", text, err)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		t.Fatalf("malformed move text %q: %v", text, err)
	}

	var m chess.Move
	if len(text) == 5 {
		m, _, err = g.AttemptPromotion(from, to, PromotionKind(text[4]))
	} else {
		m, _, err = g.AttemptMove(from, to)
	}
	if err != nil {
		t.Fatalf("move %q rejected: %v", text, err)
	}
	return m
}

// PromotionKind maps a promotion suffix letter to a piece kind.
func PromotionKind(c byte) chess.Piece {
	switch c {
	case 'q':
		return chess.Queen
	case 'r':
		return chess.Rook
	case 'b':
		return chess.Bishop
	case 'n':
		return chess.Knight
	default:
		return chess.Empty
	}
}
