package chess

// CastleSide identifies which wing a castling move belongs to.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// Move is the pure value produced by move generation and consumed by move
// execution. It carries everything execution needs so that no board lookup
// is required to interpret it.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The kind of the moving piece (bare kind, not coloured).
	Kind Piece

	// Capture information. CapturedKind is Empty for quiet moves.
	IsCapture    bool
	CapturedKind Piece

	// The kind promoted to, Empty if not a promotion.
	Promotion Piece

	// True for en passant captures; the victim square differs from To.
	IsEnPassant bool

	// Castling wing, NoCastle for ordinary moves.
	Castle CastleSide
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion >= Pawn
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// String returns the endpoint pair in coordinate form, e.g. "e2e4" or
// "e7e8q" for promotions. Human-readable notation is the engine's concern.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}
