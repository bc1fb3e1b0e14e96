// Package game holds one interactive chess session: a position, its move
// history with undo, captured-piece lists and the derived game status. All
// operations are synchronous and run to completion; a Game is not safe for
// concurrent use, host one Game per table and serialize calls to it.
package game

import (
	"github.com/mwaldron/chessrules/internal/chess"
	"github.com/mwaldron/chessrules/internal/engine"
	"github.com/mwaldron/chessrules/internal/errors"
)

// Game is a single chess game instance. The zero value is not usable;
// construct with New or NewFromFEN.
type Game struct {
	board    *chess.Board
	history  []HistoryEntry
	status   engine.Status
	captured [2][]chess.Piece // piece kinds lost by each colour
}

// New creates a game with the standard starting arrangement.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// NewFromFEN creates a game from an arbitrary starting position.
func NewFromFEN(fen string) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{
		board:  board,
		status: engine.Evaluate(board),
	}, nil
}

// Reset restores the standard arrangement, clears the history and the
// captured lists, and sets the status to Active.
func (g *Game) Reset() {
	g.board = engine.NewInitialBoard()
	g.history = nil
	g.status = engine.StatusActive
	g.captured[chess.White] = nil
	g.captured[chess.Black] = nil
}

// ValidMoves returns the legal moves from a square in generation order.
// The set is empty, not an error, when the square is empty, holds an
// opponent piece, it is not that side's turn, or the game is finished.
func (g *Game) ValidMoves(sq chess.Square) []chess.Move {
	if g.status.Terminal() {
		return nil
	}
	return engine.LegalMovesFrom(g.board, sq)
}

// AttemptMove matches a legal move by its endpoint pair and executes it.
// When several legal moves share both endpoints (promotion variants) the
// first-generated one wins, which resolves to a queen; use AttemptPromotion
// for an explicit choice. On rejection the position is unchanged.
func (g *Game) AttemptMove(from, to chess.Square) (chess.Move, engine.Status, error) {
	return g.attempt(from, to, chess.Empty)
}

// AttemptPromotion is AttemptMove with an explicit promotion kind, which
// must be one of queen, rook, bishop or knight.
func (g *Game) AttemptPromotion(from, to chess.Square, kind chess.Piece) (chess.Move, engine.Status, error) {
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return g.attempt(from, to, kind)
	default:
		return chess.Move{}, g.status, g.reject(from, to, errors.ErrIllegalMove)
	}
}

func (g *Game) attempt(from, to chess.Square, promotion chess.Piece) (chess.Move, engine.Status, error) {
	if g.status.Terminal() {
		return chess.Move{}, g.status, g.reject(from, to, errors.ErrGameOver)
	}
	for _, m := range engine.LegalMovesFrom(g.board, from) {
		if m.To != to {
			continue
		}
		if promotion != chess.Empty && m.Promotion != promotion {
			continue
		}
		g.execute(m)
		return m, g.status, nil
	}
	return chess.Move{}, g.status, g.reject(from, to, errors.ErrIllegalMove)
}

// execute applies a legal move, records history and recomputes the status.
func (g *Game) execute(m chess.Move) {
	entry := HistoryEntry{
		Move:          m,
		Notation:      engine.EncodeNotation(m),
		WKingCastle:   g.board.WKingCastle,
		WQueenCastle:  g.board.WQueenCastle,
		BKingCastle:   g.board.BKingCastle,
		BQueenCastle:  g.board.BQueenCastle,
		EnPassant:     g.board.EnPassant,
		EPTarget:      g.board.EPTarget,
		HalfmoveClock: g.board.HalfmoveClock,
	}

	if m.IsCapture {
		victimSq := m.To
		if m.IsEnPassant {
			victimSq = chess.Square{Col: m.To.Col, Rank: m.From.Rank}
		}
		entry.Captured = g.board.At(victimSq)
		owner := chess.ExtractColour(entry.Captured)
		g.captured[owner] = append(g.captured[owner], chess.ExtractPiece(entry.Captured))
	}

	engine.ApplyMove(g.board, m)
	g.history = append(g.history, entry)
	g.status = engine.Evaluate(g.board)
}

func (g *Game) reject(from, to chess.Square, sentinel error) error {
	return &errors.MoveError{
		Err:  sentinel,
		From: from.String(),
		To:   to.String(),
		Ply:  len(g.history) + 1,
	}
}

// Board returns a snapshot copy of the position for rendering.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.board.ToMove
}

// Status returns the current game status.
func (g *Game) Status() engine.Status {
	return g.status
}

// Captured returns the piece kinds the given colour has lost, in capture
// order.
func (g *Game) Captured(colour chess.Colour) []chess.Piece {
	out := make([]chess.Piece, len(g.captured[colour]))
	copy(out, g.captured[colour])
	return out
}

// History returns the ordered move history with notations.
func (g *Game) History() []HistoryEntry {
	out := make([]HistoryEntry, len(g.history))
	copy(out, g.history)
	return out
}

// CheckSquare returns the side-to-move's king square while the status is
// Check, for highlighting. The second return is false otherwise.
func (g *Game) CheckSquare() (chess.Square, bool) {
	if g.status != engine.StatusCheck {
		return chess.Square{}, false
	}
	return g.board.KingSquare(g.board.ToMove), true
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}
