package engine

import "github.com/mwaldron/chessrules/internal/chess"

// ApplyMove executes an already-legal move for the side to move: special-move
// side effects, king cache, castling rights, en-passant target, clocks, and
// the turn toggle. History recording is the game layer's concern.
func ApplyMove(board *chess.Board, m chess.Move) {
	colour := board.ToMove

	// En passant removes the enemy pawn beside the destination, on the
	// mover's origin rank.
	if m.IsEnPassant {
		board.Put(chess.Square{Col: m.To.Col, Rank: m.From.Rank}, chess.Empty)
	}

	if m.IsCastle() {
		applyCastle(board, colour, m.Castle)
	} else {
		piece := board.At(m.From)
		if m.IsPromotion() {
			piece = chess.MakeColouredPiece(colour, m.Promotion)
		}
		board.Put(m.From, chess.Empty)
		board.Put(m.To, piece)

		if m.Kind == chess.King {
			board.SetKingSquare(colour, m.To)
			clearCastleRights(board, colour)
		}
	}

	// Any move touching a rook home square, as origin or destination,
	// clears that right. This covers rook moves and rook captures.
	clearRookRight(board, m.From)
	clearRookRight(board, m.To)

	// The en-passant target lives for exactly one move after a two-square
	// pawn advance.
	board.EnPassant = false
	board.EPTarget = chess.Square{}
	if m.Kind == chess.Pawn {
		if dr := int(m.To.Rank) - int(m.From.Rank); dr == 2 || dr == -2 {
			board.EnPassant = true
			board.EPTarget = chess.Square{Col: m.From.Col, Rank: chess.Rank(int(m.From.Rank) + dr/2)}
		}
	}

	if m.IsCapture || m.Kind == chess.Pawn {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// applyCastle relocates king and rook to their fixed destination squares.
func applyCastle(board *chess.Board, colour chess.Colour, side chess.CastleSide) {
	rank := chess.HomeRank(colour)

	var kingToCol, rookFromCol, rookToCol chess.Col
	if side == chess.Kingside {
		kingToCol, rookFromCol, rookToCol = 'g', 'h', 'f'
	} else {
		kingToCol, rookFromCol, rookToCol = 'c', 'a', 'd'
	}

	king := board.Get('e', rank)
	board.Set('e', rank, chess.Empty)
	board.Set(kingToCol, rank, king)

	rook := board.Get(rookFromCol, rank)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(rookToCol, rank, rook)

	board.SetKingSquare(colour, chess.Square{Col: kingToCol, Rank: rank})
	clearCastleRights(board, colour)
}
