package engine_test

import (
	"testing"

	"github.com/mwaldron/chessrules/internal/chess"
	"github.com/mwaldron/chessrules/internal/engine"
	"github.com/mwaldron/chessrules/internal/testutil"
)

// play finds the legal move with the given endpoints and applies it.
func play(t *testing.T, board *chess.Board, from, to string) chess.Move {
	t.Helper()
	for _, m := range engine.LegalMovesFrom(board, chess.MustSquare(from)) {
		if m.To == chess.MustSquare(to) {
			engine.ApplyMove(board, m)
			return m
		}
	}
	t.Fatalf("no legal move %s%s", from, to)
	return chess.Move{}
}

func TestApplyQuietMove(t *testing.T) {
	board := engine.NewInitialBoard()
	play(t, board, "g1", "f3")

	testutil.AssertEqual(t, board.Get('g', '1'), chess.Empty)
	testutil.AssertEqual(t, board.Get('f', '3'), chess.W(chess.Knight))
	testutil.AssertEqual(t, board.ToMove, chess.Black)
	testutil.AssertEqual(t, board.HalfmoveClock, uint(1))
	testutil.AssertEqual(t, board.MoveNumber, uint(1), "increments only after black")

	play(t, board, "b8", "c6")
	testutil.AssertEqual(t, board.MoveNumber, uint(2))
	testutil.AssertEqual(t, board.HalfmoveClock, uint(2))
}

func TestApplyPawnMoveSetsAndClearsEnPassant(t *testing.T) {
	board := engine.NewInitialBoard()

	play(t, board, "e2", "e4")
	testutil.AssertTrue(t, board.EnPassant)
	testutil.AssertEqual(t, board.EPTarget, chess.MustSquare("e3"))
	testutil.AssertEqual(t, board.HalfmoveClock, uint(0), "pawn move resets the clock")

	play(t, board, "g8", "f6")
	testutil.AssertFalse(t, board.EnPassant, "target lives for exactly one move")
}

func TestApplyEnPassantCapture(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	m := play(t, board, "e5", "d6")

	testutil.AssertTrue(t, m.IsEnPassant)
	testutil.AssertEqual(t, board.Get('d', '6'), chess.W(chess.Pawn), "capturer lands on the target")
	testutil.AssertEqual(t, board.Get('d', '5'), chess.Empty, "victim is removed from its own square")
	testutil.AssertEqual(t, board.Get('e', '5'), chess.Empty)
	testutil.AssertFalse(t, board.EnPassant)
	testutil.AssertEqual(t, board.HalfmoveClock, uint(0))
}

func TestApplyKingsideCastle(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, board, "e1", "g1")

	testutil.AssertEqual(t, board.Get('g', '1'), chess.W(chess.King))
	testutil.AssertEqual(t, board.Get('f', '1'), chess.W(chess.Rook))
	testutil.AssertEqual(t, board.Get('e', '1'), chess.Empty)
	testutil.AssertEqual(t, board.Get('h', '1'), chess.Empty)
	testutil.AssertEqual(t, board.KingSquare(chess.White), chess.MustSquare("g1"))
	testutil.AssertEqual(t, board.WKingCastle, chess.Col(0), "both rights cleared")
	testutil.AssertEqual(t, board.WQueenCastle, chess.Col(0))
	testutil.AssertEqual(t, board.BKingCastle, chess.Col('h'), "black rights untouched")
}

func TestApplyQueensideCastle(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	play(t, board, "e8", "c8")

	testutil.AssertEqual(t, board.Get('c', '8'), chess.B(chess.King))
	testutil.AssertEqual(t, board.Get('d', '8'), chess.B(chess.Rook))
	testutil.AssertEqual(t, board.Get('a', '8'), chess.Empty)
	testutil.AssertEqual(t, board.KingSquare(chess.Black), chess.MustSquare("c8"))
	testutil.AssertEqual(t, board.BQueenCastle, chess.Col(0))
	testutil.AssertEqual(t, board.MoveNumber, uint(2), "black move advances the number")
}

func TestKingMoveClearsBothRights(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, board, "e1", "e2")

	testutil.AssertEqual(t, board.WKingCastle, chess.Col(0))
	testutil.AssertEqual(t, board.WQueenCastle, chess.Col(0))
	testutil.AssertEqual(t, board.KingSquare(chess.White), chess.MustSquare("e2"))
}

func TestRookMoveClearsOneRight(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, board, "h1", "h4")

	testutil.AssertEqual(t, board.WKingCastle, chess.Col(0))
	testutil.AssertEqual(t, board.WQueenCastle, chess.Col('a'), "queenside stays")
}

func TestRookCaptureClearsVictimRight(t *testing.T) {
	// White rook takes the h8 rook along the open h-file.
	board := testutil.MustBoardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, board, "h1", "h8")

	testutil.AssertEqual(t, board.BKingCastle, chess.Col(0), "victim's right cleared")
	testutil.AssertEqual(t, board.BQueenCastle, chess.Col('a'))
	testutil.AssertEqual(t, board.WKingCastle, chess.Col(0), "mover's right cleared too")
	testutil.AssertEqual(t, board.HalfmoveClock, uint(0), "capture resets the clock")
}

func TestApplyPromotion(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	moves := engine.LegalMovesFrom(board, chess.MustSquare("a7"))
	var knightPromo chess.Move
	for _, m := range moves {
		if m.Promotion == chess.Knight {
			knightPromo = m
		}
	}
	engine.ApplyMove(board, knightPromo)

	testutil.AssertEqual(t, board.Get('a', '8'), chess.W(chess.Knight))
	testutil.AssertEqual(t, board.Get('a', '7'), chess.Empty)
}
