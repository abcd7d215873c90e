package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// FiftyMoveLimit is the half-move clock value at which the fifty-move
// draw applies (50 full moves by each side).
const FiftyMoveLimit = 100

// StatusKind classifies a position for the side to move.
type StatusKind int

const (
	InProgress StatusKind = iota
	Checkmate
	Stalemate
	DrawByFiftyMove
	DrawByInsufficientMaterial
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "InProgress"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case DrawByFiftyMove:
		return "DrawByFiftyMove"
	case DrawByInsufficientMaterial:
		return "DrawByInsufficientMaterial"
	default:
		return "Unknown"
	}
}

// Status is the outcome of GameStatus.
type Status struct {
	Kind StatusKind

	// Mated is the checkmated side; only meaningful when Kind is Checkmate.
	Mated chess.Colour
}

// IsOver reports whether no further moves should be played.
func (s Status) IsOver() bool {
	return s.Kind != InProgress
}

// IsDraw reports whether the status is a drawn result.
func (s Status) IsDraw() bool {
	switch s.Kind {
	case Stalemate, DrawByFiftyMove, DrawByInsufficientMaterial:
		return true
	default:
		return false
	}
}

// Winner returns the winning side of a checkmate. ok is false otherwise.
func (s Status) Winner() (winner chess.Colour, ok bool) {
	if s.Kind != Checkmate {
		return chess.White, false
	}
	return s.Mated.Opposite(), true
}

// String returns e.g. "Checkmate(White)" or "Stalemate".
func (s Status) String() string {
	if s.Kind == Checkmate {
		return fmt.Sprintf("%v(%v)", s.Kind, s.Mated)
	}
	return s.Kind.String()
}

// Result returns the PGN result token for the status: "1-0", "0-1",
// "1/2-1/2" or "*".
func (s Status) Result() string {
	if winner, ok := s.Winner(); ok {
		if winner == chess.White {
			return "1-0"
		}
		return "0-1"
	}
	if s.IsDraw() {
		return "1/2-1/2"
	}
	return "*"
}

// GameStatus judges the position for the side to move.
//
// Checkmate and stalemate take precedence over the fifty-move rule, which in
// turn takes precedence over insufficient material. A position without
// exactly one king per side fails with *errors.InvariantViolation.
func GameStatus(pos chess.Position) (Status, error) {
	if err := ValidateKings(pos); err != nil {
		return Status{}, err
	}

	if !HasLegalMoves(pos) {
		if IsInCheck(&pos.Board, pos.ToMove) {
			return Status{Kind: Checkmate, Mated: pos.ToMove}, nil
		}
		return Status{Kind: Stalemate}, nil
	}

	if pos.HalfmoveClock >= FiftyMoveLimit {
		return Status{Kind: DrawByFiftyMove}, nil
	}

	if HasInsufficientMaterial(&pos.Board) {
		return Status{Kind: DrawByInsufficientMaterial}, nil
	}

	return Status{Kind: InProgress}, nil
}

// ValidateKings checks that each side has exactly one king and that the side
// not to move is not in check, which no legal sequence can produce.
func ValidateKings(pos chess.Position) error {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if n := len(pos.Board.KingSquares(colour)); n != 1 {
			return &errors.InvariantViolation{
				Reason: fmt.Sprintf("%v has %d kings", colour, n),
				FEN:    EncodeFEN(pos),
			}
		}
	}
	if IsInCheck(&pos.Board, pos.ToMove.Opposite()) {
		return &errors.InvariantViolation{
			Reason: fmt.Sprintf("%v is in check but it is %v's turn", pos.ToMove.Opposite(), pos.ToMove),
			FEN:    EncodeFEN(pos),
		}
	}
	return nil
}

// HasInsufficientMaterial returns true if neither side can possibly mate.
// It is deliberately conservative: it only recognises
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B(s) vs K+B(s) with every bishop on the same square colour
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors []chess.Kind
	var lightBishops, darkBishops int

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		if piece == chess.NoPiece {
			continue
		}

		switch piece.Kind() {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			// Any pawn, rook, or queen means sufficient material
			return false
		case chess.Bishop:
			if sq.IsLight() {
				lightBishops++
			} else {
				darkBishops++
			}
		}
		minors = append(minors, piece.Kind())
	}

	// K vs K, K+B vs K, K+N vs K
	if len(minors) <= 1 {
		return true
	}

	// Only bishops, all on one square colour
	for _, kind := range minors {
		if kind != chess.Bishop {
			return false
		}
	}
	return lightBishops == 0 || darkBishops == 0
}
