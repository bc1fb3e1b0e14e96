package engine

import "github.com/mwaldron/chessrules/internal/chess"

// promotionKinds is the generation order for promotion variants. The first
// entry is the default when an endpoint match does not name a kind.
var promotionKinds = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PseudoLegalMovesFrom generates the pseudo-legal moves for the piece on
// from, obeying movement and occupancy patterns but deferring own-king
// legality to the filter. Returns nil for an empty square.
func PseudoLegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.At(from)
	if piece == chess.Empty || piece == chess.Off {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(board, from, colour)
	case chess.Knight:
		return offsetMoves(board, from, colour, chess.Knight, knightOffsets)
	case chess.Bishop:
		return slidingMoves(board, from, colour, chess.Bishop, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, from, colour, chess.Rook, straightDirs)
	case chess.Queen:
		moves := slidingMoves(board, from, colour, chess.Queen, diagonalDirs)
		return append(moves, slidingMoves(board, from, colour, chess.Queen, straightDirs)...)
	case chess.King:
		moves := offsetMoves(board, from, colour, chess.King, kingOffsets)
		return append(moves, castleMoves(board, colour)...)
	}
	return nil
}

// pawnMoves generates pushes, captures, en passant and promotion variants.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := chess.ColourOffset(colour)

	// Single push onto an empty square.
	if to, ok := from.Offset(0, dir); ok && board.At(to) == chess.Empty {
		moves = appendPawnMove(moves, chess.Move{From: from, To: to, Kind: chess.Pawn}, colour)

		// Double push from the starting rank through two empty squares.
		if from.Rank == chess.PawnRank(colour) {
			if to2, ok := from.Offset(0, 2*dir); ok && board.At(to2) == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: to2, Kind: chess.Pawn})
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, dc := range []int{-1, 1} {
		to, ok := from.Offset(dc, dir)
		if !ok {
			continue
		}
		target := board.At(to)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			m := chess.Move{
				From: from, To: to, Kind: chess.Pawn,
				IsCapture: true, CapturedKind: chess.ExtractPiece(target),
			}
			moves = appendPawnMove(moves, m, colour)
			continue
		}
		if board.EnPassant && to == board.EPTarget && target == chess.Empty {
			moves = append(moves, chess.Move{
				From: from, To: to, Kind: chess.Pawn,
				IsCapture: true, CapturedKind: chess.Pawn, IsEnPassant: true,
			})
		}
	}

	return moves
}

// appendPawnMove appends m, expanded into the four promotion variants when
// it reaches the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move, colour chess.Colour) []chess.Move {
	if m.To.Rank != chess.PromotionRank(colour) {
		return append(moves, m)
	}
	for _, kind := range promotionKinds {
		promo := m
		promo.Promotion = kind
		moves = append(moves, promo)
	}
	return moves
}

// offsetMoves generates fixed-offset moves for knights and kings.
func offsetMoves(board *chess.Board, from chess.Square, colour chess.Colour, kind chess.Piece, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target := board.At(to)
		if target == chess.Empty {
			moves = append(moves, chess.Move{From: from, To: to, Kind: kind})
		} else if chess.ExtractColour(target) != colour {
			moves = append(moves, chess.Move{
				From: from, To: to, Kind: kind,
				IsCapture: true, CapturedKind: chess.ExtractPiece(target),
			})
		}
	}
	return moves
}

// slidingMoves walks each ray one square at a time; empty squares are quiet
// moves, the first occupied square stops the ray and yields a capture only
// if enemy-occupied.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, kind chess.Piece, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.At(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{
						From: from, To: to, Kind: kind,
						IsCapture: true, CapturedKind: chess.ExtractPiece(target),
					})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to, Kind: kind})
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
