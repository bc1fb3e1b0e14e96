package engine

import "github.com/mwaldron/chessrules/internal/chess"

// castleMoves generates the up to two castling moves for a colour. A wing
// is generated only if the right is still set, the rook sits on its home
// square, every square between king and rook is empty, the king is not in
// check, and neither the king's square nor any square it crosses or lands
// on is attacked by the opponent.
func castleMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	if IsInCheck(board, colour) {
		return nil
	}

	rank := chess.HomeRank(colour)
	kingFrom := board.KingSquare(colour)
	if kingFrom.Col != 'e' || kingFrom.Rank != rank {
		return nil
	}

	if m, ok := castleMove(board, colour, chess.Kingside); ok {
		moves = append(moves, m)
	}
	if m, ok := castleMove(board, colour, chess.Queenside); ok {
		moves = append(moves, m)
	}
	return moves
}

// castleMove validates one castling wing and builds its move.
func castleMove(board *chess.Board, colour chess.Colour, side chess.CastleSide) (chess.Move, bool) {
	rank := chess.HomeRank(colour)

	var rookCol chess.Col
	var kingToCol chess.Col
	if side == chess.Kingside {
		rookCol = castleRight(board, colour, side)
		kingToCol = 'g'
	} else {
		rookCol = castleRight(board, colour, side)
		kingToCol = 'c'
	}
	if rookCol == 0 {
		return chess.Move{}, false
	}
	if board.Get(rookCol, rank) != chess.MakeColouredPiece(colour, chess.Rook) {
		return chess.Move{}, false
	}

	// Every square between king and rook must be empty.
	step := 1
	if rookCol < 'e' {
		step = -1
	}
	for col := chess.Col(int('e') + step); col != rookCol; col = chess.Col(int(col) + step) {
		if board.Get(col, rank) != chess.Empty {
			return chess.Move{}, false
		}
	}

	// No square the king crosses or lands on may be attacked.
	kingStep := 1
	if kingToCol < 'e' {
		kingStep = -1
	}
	opponent := colour.Opposite()
	for col := chess.Col(int('e') + kingStep); ; col = chess.Col(int(col) + kingStep) {
		if SquareAttackedBy(board, chess.Square{Col: col, Rank: rank}, opponent) {
			return chess.Move{}, false
		}
		if col == kingToCol {
			break
		}
	}

	return chess.Move{
		From:   chess.Square{Col: 'e', Rank: rank},
		To:     chess.Square{Col: kingToCol, Rank: rank},
		Kind:   chess.King,
		Castle: side,
	}, true
}

// castleRight returns the rook home column for a colour and wing, or 0 if
// the right has been lost.
func castleRight(board *chess.Board, colour chess.Colour, side chess.CastleSide) chess.Col {
	if colour == chess.White {
		if side == chess.Kingside {
			return board.WKingCastle
		}
		return board.WQueenCastle
	}
	if side == chess.Kingside {
		return board.BKingCastle
	}
	return board.BQueenCastle
}

// clearCastleRights removes both castling rights for a colour.
func clearCastleRights(board *chess.Board, colour chess.Colour) {
	if colour == chess.White {
		board.WKingCastle = 0
		board.WQueenCastle = 0
	} else {
		board.BKingCastle = 0
		board.BQueenCastle = 0
	}
}

// clearRookRight removes the castling right tied to a rook home square
// whenever a move touches it as origin or destination. This covers both
// rook moves and rook captures.
func clearRookRight(board *chess.Board, sq chess.Square) {
	switch sq.Rank {
	case '1':
		if sq.Col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if sq.Col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	case '8':
		if sq.Col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if sq.Col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}
