package game

import (
	"github.com/mwaldron/chessrules/internal/chess"
	"github.com/mwaldron/chessrules/internal/engine"
	"github.com/mwaldron/chessrules/internal/errors"
)

// HistoryEntry records one executed move together with the pre-move state
// needed to reverse it exactly. Entries are owned by the Game and used only
// for undo and display.
type HistoryEntry struct {
	Move     chess.Move
	Notation string

	// The captured coloured piece, Empty for quiet moves. For en passant
	// this is the pawn removed from beside the destination.
	Captured chess.Piece

	// Pre-move castling rights, en-passant state and half-move clock.
	WKingCastle   chess.Col
	WQueenCastle  chess.Col
	BKingCastle   chess.Col
	BQueenCastle  chess.Col
	EnPassant     bool
	EPTarget      chess.Square
	HalfmoveClock uint
}

// Undo reverses the most recent move. It is rejected with ErrNothingToUndo
// on an empty history and with ErrGameOver once the game is terminal.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.ErrNothingToUndo
	}
	if g.status.Terminal() {
		return errors.Wrap(errors.ErrGameOver, "undo")
	}

	entry := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	m := entry.Move
	mover := g.board.ToMove.Opposite()

	// Walk the moved piece back; a promoted piece reverts to a pawn.
	piece := g.board.At(m.To)
	if m.IsPromotion() {
		piece = chess.MakeColouredPiece(mover, chess.Pawn)
	}
	g.board.Put(m.To, chess.Empty)
	g.board.Put(m.From, piece)

	if m.IsCapture {
		victimSq := m.To
		if m.IsEnPassant {
			victimSq = chess.Square{Col: m.To.Col, Rank: m.From.Rank}
		}
		g.board.Put(victimSq, entry.Captured)

		owner := chess.ExtractColour(entry.Captured)
		g.captured[owner] = removeLast(g.captured[owner], chess.ExtractPiece(entry.Captured))
	}

	if m.IsCastle() {
		rank := chess.HomeRank(mover)
		if m.Castle == chess.Kingside {
			rook := g.board.Get('f', rank)
			g.board.Set('f', rank, chess.Empty)
			g.board.Set('h', rank, rook)
		} else {
			rook := g.board.Get('d', rank)
			g.board.Set('d', rank, chess.Empty)
			g.board.Set('a', rank, rook)
		}
	}

	if m.Kind == chess.King {
		g.board.SetKingSquare(mover, m.From)
	}

	g.board.WKingCastle = entry.WKingCastle
	g.board.WQueenCastle = entry.WQueenCastle
	g.board.BKingCastle = entry.BKingCastle
	g.board.BQueenCastle = entry.BQueenCastle
	g.board.EnPassant = entry.EnPassant
	g.board.EPTarget = entry.EPTarget
	g.board.HalfmoveClock = entry.HalfmoveClock

	g.board.ToMove = mover
	if mover == chess.Black {
		// The full-move number was incremented after this Black move.
		g.board.MoveNumber--
	}

	g.status = engine.Evaluate(g.board)
	return nil
}

// removeLast removes the last occurrence of kind from the list.
func removeLast(list []chess.Piece, kind chess.Piece) []chess.Piece {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] == kind {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
