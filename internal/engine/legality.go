package engine

import "github.com/mwaldron/chessrules/internal/chess"

// moveIsLegal applies the move to a scratch copy of the board and rejects it
// if the mover's king is then in check. The live board is never touched.
func moveIsLegal(board *chess.Board, m chess.Move) bool {
	colour := board.ToMove
	scratch := board.Copy()
	ApplyMove(scratch, m)
	return !IsInCheck(scratch, colour)
}

// LegalMovesFrom returns the legal moves for the piece on from, in
// generation order. Returns nil if the square is empty or holds a piece of
// the side not to move.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.At(from)
	if piece == chess.Empty || piece == chess.Off {
		return nil
	}
	if chess.ExtractColour(piece) != board.ToMove {
		return nil
	}

	var legal []chess.Move
	for _, m := range PseudoLegalMovesFrom(board, from) {
		if moveIsLegal(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move for the side to move.
func AllLegalMoves(board *chess.Board) []chess.Move {
	var legal []chess.Move
	forEachOwnSquare(board, board.ToMove, func(sq chess.Square) bool {
		legal = append(legal, LegalMovesFrom(board, sq)...)
		return false
	})
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal
// move, short-circuiting on the first hit.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	if colour != board.ToMove {
		// The filter tests the mover's king, so generation must run from
		// a board where colour is to move.
		scratch := board.Copy()
		scratch.ToMove = colour
		return HasLegalMoves(scratch, colour)
	}

	found := false
	forEachOwnSquare(board, colour, func(sq chess.Square) bool {
		for _, m := range PseudoLegalMovesFrom(board, sq) {
			if moveIsLegal(board, m) {
				found = true
				return true
			}
		}
		return false
	})
	return found
}

// forEachOwnSquare visits every square holding a piece of the colour, in
// file-major order, stopping early when fn returns true.
func forEachOwnSquare(board *chess.Board, colour chess.Colour, fn func(chess.Square) bool) {
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			if chess.ExtractColour(piece) != colour {
				continue
			}
			if fn(chess.Square{Col: col, Rank: rank}) {
				return
			}
		}
	}
}
