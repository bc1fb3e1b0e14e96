package engine

import "github.com/mwaldron/chessrules/internal/chess"

// Status classifies a position for the side to move. It is derived, never
// stored on the board, and recomputed after every move.
type Status int

const (
	StatusActive Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	StatusDraw
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Active", "Check", "Checkmate", "Stalemate", "Draw"}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Terminal returns true if the status ends the game.
func (s Status) Terminal() bool {
	switch s {
	case StatusCheckmate, StatusStalemate, StatusDraw:
		return true
	default:
		return false
	}
}

// Evaluate classifies the position for the side to move: checkmate,
// stalemate, fifty-move draw, insufficient-material draw, check, or active,
// tested in that order.
func Evaluate(board *chess.Board) Status {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)

	if !HasLegalMoves(board, colour) {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if board.HalfmoveClock >= 100 {
		return StatusDraw
	}
	if HasInsufficientMaterial(board) {
		return StatusDraw
	}
	if inCheck {
		return StatusCheck
	}
	return StatusActive
}

// HasInsufficientMaterial reports the simplified insufficient-material rule:
// both sides reduced to a lone king, or one side a lone king against king
// plus exactly one minor piece. Opposite-colour-bishop and two-knight
// balances are deliberately not flagged.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2]int
	var others [2]int

	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				continue
			}
			colour := chess.ExtractColour(piece)
			switch chess.ExtractPiece(piece) {
			case chess.King:
			case chess.Bishop, chess.Knight:
				minors[colour]++
			default:
				others[colour]++
			}
		}
	}

	if others[chess.White] > 0 || others[chess.Black] > 0 {
		return false
	}
	if minors[chess.White] == 0 && minors[chess.Black] == 0 {
		return true
	}
	if minors[chess.White] == 1 && minors[chess.Black] == 0 {
		return true
	}
	if minors[chess.White] == 0 && minors[chess.Black] == 1 {
		return true
	}
	return false
}
