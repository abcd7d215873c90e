package chess

// MoveClass categorizes moves whose application needs special handling.
type MoveClass int

const (
	Normal MoveClass = iota
	DoublePawnPush
	EnPassantCapture
	CastleKingSide
	CastleQueenSide
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case Normal:
		return "Normal"
	case DoublePawnPush:
		return "DoublePawnPush"
	case EnPassantCapture:
		return "EnPassantCapture"
	case CastleKingSide:
		return "CastleKingSide"
	case CastleQueenSide:
		return "CastleQueenSide"
	default:
		return "Unknown"
	}
}

// Move is a single move from one square to another.
type Move struct {
	From Square
	To   Square

	// Promotion is the kind a pawn becomes on the last rank, NoKind otherwise.
	Promotion Kind

	Class MoveClass
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case CastleKingSide, CastleQueenSide:
		return true
	default:
		return false
	}
}

// String renders the move in long algebraic (UCI) form, e.g. "e7e8q".
// Castling is written as the king's two-square step.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
