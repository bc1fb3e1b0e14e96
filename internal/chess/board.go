package chess

// Board represents a chess position with all state needed by the rules.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// Squares[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// The current full-move number, starting at 1 and incremented after
	// each Black move.
	MoveNumber uint

	// Rook home columns for the four castling rights. A zero column means
	// the right has been lost; it comes back only through undo.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square

	// Is en passant capture possible? If so EPTarget holds the square the
	// capturing pawn lands on. Valid only for the move immediately after a
	// two-square pawn advance.
	EnPassant bool
	EPTarget  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col+Hedge][Hedge] = W(backRank[col])
		b.Squares[col+Hedge][Hedge+1] = W(Pawn)
		b.Squares[col+Hedge][Hedge+6] = B(Pawn)
		b.Squares[col+Hedge][Hedge+7] = B(backRank[col])
	}

	b.WKing = Square{Col: 'e', Rank: '1'}
	b.BKing = Square{Col: 'e', Rank: '8'}

	b.WKingCastle = 'h'
	b.WQueenCastle = 'a'
	b.BKingCastle = 'h'
	b.BQueenCastle = 'a'

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPTarget = Square{}
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates.
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on a square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on a square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// KingSquare returns the cached king location for a colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WKing
	}
	return b.BKing
}

// SetKingSquare updates the cached king location for a colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKing = sq
	} else {
		b.BKing = sq
	}
}

// Copy creates a deep copy of the board. Used by the legality filter for
// trial moves; the live board is never touched during legality tests.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// State captures every mutable position field for exact comparison in tests
// and round-trip verification. Board has no reference fields, so the
// dereferenced value is already a full snapshot.
type State struct {
	Squares       [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece
	ToMove        Colour
	MoveNumber    uint
	WKingCastle   Col
	WQueenCastle  Col
	BKingCastle   Col
	BQueenCastle  Col
	WKing         Square
	BKing         Square
	EnPassant     bool
	EPTarget      Square
	HalfmoveClock uint
}

// SaveState captures the current board state.
func (b *Board) SaveState() State {
	return State{
		Squares:       b.Squares,
		ToMove:        b.ToMove,
		MoveNumber:    b.MoveNumber,
		WKingCastle:   b.WKingCastle,
		WQueenCastle:  b.WQueenCastle,
		BKingCastle:   b.BKingCastle,
		BQueenCastle:  b.BQueenCastle,
		WKing:         b.WKing,
		BKing:         b.BKing,
		EnPassant:     b.EnPassant,
		EPTarget:      b.EPTarget,
		HalfmoveClock: b.HalfmoveClock,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s State) {
	b.Squares = s.Squares
	b.ToMove = s.ToMove
	b.MoveNumber = s.MoveNumber
	b.WKingCastle = s.WKingCastle
	b.WQueenCastle = s.WQueenCastle
	b.BKingCastle = s.BKingCastle
	b.BQueenCastle = s.BQueenCastle
	b.WKing = s.WKing
	b.BKing = s.BKing
	b.EnPassant = s.EnPassant
	b.EPTarget = s.EPTarget
	b.HalfmoveClock = s.HalfmoveClock
}
