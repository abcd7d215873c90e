package chess

// CastlingRights records which castling options remain available.
// Rights are only ever cleared once lost.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights is the rights set of the initial position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether colour may still castle on the given wing.
func (c CastlingRights) Has(colour Colour, kingSide bool) bool {
	switch {
	case colour == White && kingSide:
		return c.WhiteKingSide
	case colour == White:
		return c.WhiteQueenSide
	case kingSide:
		return c.BlackKingSide
	default:
		return c.BlackQueenSide
	}
}

// Without returns a copy with colour's right on the given wing cleared.
func (c CastlingRights) Without(colour Colour, kingSide bool) CastlingRights {
	switch {
	case colour == White && kingSide:
		c.WhiteKingSide = false
	case colour == White:
		c.WhiteQueenSide = false
	case kingSide:
		c.BlackKingSide = false
	default:
		c.BlackQueenSide = false
	}
	return c
}

// WithoutColour returns a copy with both of colour's rights cleared.
func (c CastlingRights) WithoutColour(colour Colour) CastlingRights {
	return c.Without(colour, true).Without(colour, false)
}

// None reports whether no castling right remains.
func (c CastlingRights) None() bool {
	return c == CastlingRights{}
}

// RookHome returns the home square of the rook used for castling.
func RookHome(colour Colour, kingSide bool) Square {
	file := 0
	if kingSide {
		file = 7
	}
	return NewSquare(file, colour.HomeRank())
}

// KingHome returns the home square of the colour's king.
func KingHome(colour Colour) Square {
	return NewSquare(4, colour.HomeRank())
}

// Position is the complete game state needed to resume play or judge a move.
//
// Position holds no references: assigning it copies the whole state and
// two Positions can be compared with ==. Functions in this module never
// modify a Position they are given; applying a move returns a new one.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// The square skipped by the last double pawn push, or NoSquare.
	EnPassant Square

	// Half-moves since the last pawn move or capture.
	HalfmoveClock uint

	// Starts at 1 and is incremented after each Black move.
	FullmoveNumber uint
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	return Position{
		Board:          NewInitialBoard(),
		ToMove:         White,
		Castling:       AllCastlingRights,
		EnPassant:      NoSquare,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}
