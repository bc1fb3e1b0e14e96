package engine_test

import (
	"testing"

	"github.com/mwaldron/chessrules/internal/chess"
	"github.com/mwaldron/chessrules/internal/engine"
	"github.com/mwaldron/chessrules/internal/testutil"
)

func TestPinnedPieceCannotMove(t *testing.T) {
	// The bishop on e2 shields the king from the rook on e7; any bishop
	// move leaves the e-file open.
	board := testutil.MustBoardFromFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	moves := engine.LegalMovesFrom(board, chess.MustSquare("e2"))
	testutil.AssertEqual(t, len(moves), 0, "pinned bishop")
}

func TestPinnedRookSlidesAlongPin(t *testing.T) {
	// A rook pinned along a file may still move on that file.
	board := testutil.MustBoardFromFEN(t, "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")
	moves := engine.LegalMovesFrom(board, chess.MustSquare("e2"))

	for _, m := range moves {
		testutil.AssertEqual(t, m.To.Col, chess.Col('e'), "move %v must stay on the pin file", m)
	}
	testutil.AssertEqual(t, len(moves), 5, "e3 to e6 plus the capture on e7")
}

func TestKingCannotStepIntoAttack(t *testing.T) {
	// Black rook on a2 covers the entire second rank.
	board := testutil.MustBoardFromFEN(t, "4k3/8/8/8/8/8/r7/4K3 w - - 0 1")
	moves := engine.LegalMovesFrom(board, chess.MustSquare("e1"))
	for _, m := range moves {
		testutil.AssertEqual(t, m.To.Rank, chess.Rank('1'), "king must not enter rank 2, got %v", m)
	}
	testutil.AssertEqual(t, len(moves), 2, "d1 and f1")
}

func TestCheckEvasionsOnly(t *testing.T) {
	// White is checked by the rook on e8; only blocks, captures of the
	// checker, and king steps off the file survive the filter.
	board := testutil.MustBoardFromFEN(t, "4r1k1/8/8/8/8/8/3Q4/4K3 w - - 0 1")
	moves := engine.AllLegalMoves(board)

	for _, m := range moves {
		scratch := board.Copy()
		engine.ApplyMove(scratch, m)
		testutil.AssertFalse(t, engine.IsInCheck(scratch, chess.White),
			"move %v leaves white in check", m)
	}
	testutil.AssertTrue(t, len(moves) > 0, "white has evasions")
}

func TestLiveBoardUntouchedByFiltering(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")
	before := board.SaveState()
	engine.AllLegalMoves(board)
	testutil.AssertEqual(t, board.SaveState(), before, "legality tests must not mutate the position")
}

func TestHasLegalMovesShortCircuit(t *testing.T) {
	board := engine.NewInitialBoard()
	testutil.AssertTrue(t, engine.HasLegalMoves(board, chess.White))
	testutil.AssertTrue(t, engine.HasLegalMoves(board, chess.Black))

	// A stalemated king has none.
	stale := testutil.MustBoardFromFEN(t, "k7/8/1Q6/8/8/8/8/4K3 b - - 0 1")
	testutil.AssertFalse(t, engine.HasLegalMoves(stale, chess.Black))
}
