package chess_test

import (
	"testing"

	"github.com/mwaldron/chessrules/internal/chess"
	"github.com/mwaldron/chessrules/internal/testutil"
)

func TestSetupInitialPosition(t *testing.T) {
	b := chess.NewBoard()
	b.SetupInitialPosition()

	testutil.AssertEqual(t, b.Get('e', '1'), chess.W(chess.King))
	testutil.AssertEqual(t, b.Get('d', '8'), chess.B(chess.Queen))
	testutil.AssertEqual(t, b.Get('a', '2'), chess.W(chess.Pawn))
	testutil.AssertEqual(t, b.Get('h', '7'), chess.B(chess.Pawn))
	testutil.AssertEqual(t, b.Get('e', '4'), chess.Empty)

	testutil.AssertEqual(t, b.KingSquare(chess.White), chess.MustSquare("e1"))
	testutil.AssertEqual(t, b.KingSquare(chess.Black), chess.MustSquare("e8"))

	testutil.AssertEqual(t, b.ToMove, chess.White)
	testutil.AssertEqual(t, b.MoveNumber, uint(1))
	testutil.AssertEqual(t, b.HalfmoveClock, uint(0))
	testutil.AssertFalse(t, b.EnPassant)

	testutil.AssertEqual(t, b.WKingCastle, chess.Col('h'))
	testutil.AssertEqual(t, b.WQueenCastle, chess.Col('a'))
	testutil.AssertEqual(t, b.BKingCastle, chess.Col('h'))
	testutil.AssertEqual(t, b.BQueenCastle, chess.Col('a'))
}

func TestBoardGetOffBoard(t *testing.T) {
	b := chess.NewBoard()
	testutil.AssertEqual(t, b.Get('i', '1'), chess.Off)
	testutil.AssertEqual(t, b.Get('a', '9'), chess.Off)
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := chess.NewBoard()
	b.SetupInitialPosition()

	c := b.Copy()
	c.Set('e', '2', chess.Empty)
	c.Set('e', '4', chess.W(chess.Pawn))
	c.ToMove = chess.Black

	testutil.AssertEqual(t, b.Get('e', '2'), chess.W(chess.Pawn), "original must be untouched")
	testutil.AssertEqual(t, b.Get('e', '4'), chess.Empty)
	testutil.AssertEqual(t, b.ToMove, chess.White)
}

func TestSaveRestoreState(t *testing.T) {
	b := chess.NewBoard()
	b.SetupInitialPosition()
	saved := b.SaveState()

	b.Set('e', '2', chess.Empty)
	b.Set('e', '4', chess.W(chess.Pawn))
	b.ToMove = chess.Black
	b.EnPassant = true
	b.EPTarget = chess.MustSquare("e3")
	b.HalfmoveClock = 7
	b.WKingCastle = 0

	b.RestoreState(saved)
	testutil.AssertEqual(t, b.SaveState(), saved, "restore must be exact")
}
