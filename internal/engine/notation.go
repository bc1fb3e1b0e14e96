package engine

import (
	"strings"

	"github.com/mwaldron/chessrules/internal/chess"
)

// EncodeNotation returns the short human-readable form of a move: "O-O" or
// "O-O-O" for castling, else piece letter (omitted for pawns), "x" for
// captures with the origin file prefixed for pawn captures, the destination
// square, "=<letter>" for promotions and a trailing " e.p." for en passant.
// Two same-kind pieces reaching the same square are not disambiguated.
func EncodeNotation(m chess.Move) string {
	switch m.Castle {
	case chess.Kingside:
		return "O-O"
	case chess.Queenside:
		return "O-O-O"
	}

	var sb strings.Builder
	if m.Kind != chess.Pawn {
		sb.WriteByte(SANPieceLetter(m.Kind))
	}
	if m.IsCapture {
		if m.Kind == chess.Pawn {
			sb.WriteByte(byte(m.From.Col))
		}
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(SANPieceLetter(m.Promotion))
	}
	if m.IsEnPassant {
		sb.WriteString(" e.p.")
	}
	return sb.String()
}
