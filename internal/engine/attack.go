// Package engine implements the chess rules: attack detection, move
// generation, legality filtering, move execution, status evaluation,
// notation and FEN.
package engine

import "github.com/mwaldron/chessrules/internal/chess"

// knightOffsets are the eight fixed knight displacements.
var knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// kingOffsets are the eight adjacent king displacements.
var kingOffsets = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

var diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq := board.KingSquare(colour)
	if !kingSq.Valid() {
		kingSq = findKing(board, colour)
		if !kingSq.Valid() {
			return false // No king found
		}
	}
	return SquareAttackedBy(board, kingSq, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) == king {
				return chess.Square{Col: col, Rank: rank}
			}
		}
	}
	return chess.Square{}
}

// SquareAttackedBy returns true if the square is attacked by any piece of
// the given colour. Pawns attack only their two diagonal squares, never
// straight ahead; sliders respect blocking.
func SquareAttackedBy(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	col, rank := sq.Col, sq.Rank

	// Pawn attacks. A white attacker sits one rank below the target.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	pawnRank := chess.Rank(int(rank) + pawnDir)
	if pawnRank >= '1' && pawnRank <= '8' {
		if col > 'a' && board.Get(col-1, pawnRank) == pawn {
			return true
		}
		if col < 'h' && board.Get(col+1, pawnRank) == pawn {
			return true
		}
	}

	// Knight attacks.
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		c := chess.Col(int(col) + off[0])
		r := chess.Rank(int(rank) + off[1])
		if board.Get(c, r) == knight {
			return true
		}
	}

	// King attacks.
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		c := chess.Col(int(col) + off[0])
		r := chess.Rank(int(rank) + off[1])
		if board.Get(c, r) == king {
			return true
		}
	}

	// Sliding pieces along diagonals.
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	for _, dir := range diagonalDirs {
		c := chess.Col(int(col) + dir[0])
		r := chess.Rank(int(rank) + dir[1])
		for c >= 'a' && c <= 'h' && r >= '1' && r <= '8' {
			piece := board.Get(c, r)
			if piece != chess.Empty {
				if piece == bishop || piece == queen {
					return true
				}
				break // Blocked
			}
			c = chess.Col(int(c) + dir[0])
			r = chess.Rank(int(r) + dir[1])
		}
	}

	// Sliding pieces along straight lines.
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		c := chess.Col(int(col) + dir[0])
		r := chess.Rank(int(rank) + dir[1])
		for c >= 'a' && c <= 'h' && r >= '1' && r <= '8' {
			piece := board.Get(c, r)
			if piece != chess.Empty {
				if piece == rook || piece == queen {
					return true
				}
				break // Blocked
			}
			c = chess.Col(int(c) + dir[0])
			r = chess.Rank(int(r) + dir[1])
		}
	}

	return false
}
