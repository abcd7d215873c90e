package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// ApplyMove returns the position reached by playing move in pos.
// The move must be a member of LegalMoves(pos); anything else fails with an
// *errors.IllegalMoveError. pos itself is never modified.
func ApplyMove(pos chess.Position, move chess.Move) (chess.Position, error) {
	if !IsLegal(pos, move) {
		return chess.Position{}, &errors.IllegalMoveError{
			Move:   move.String(),
			FEN:    EncodeFEN(pos),
			Reason: illegalReason(pos, move),
		}
	}
	return makeMove(pos, move), nil
}

// illegalReason gives a short explanation for a rejected move.
func illegalReason(pos chess.Position, move chess.Move) string {
	piece := pos.Board.Get(move.From)
	switch {
	case !move.From.Valid() || !move.To.Valid():
		return "square off the board"
	case piece == chess.NoPiece:
		return "no piece on " + move.From.String()
	case piece.Colour() != pos.ToMove:
		return "piece on " + move.From.String() + " belongs to " + piece.Colour().String()
	}
	for _, m := range PseudoLegalMoves(pos) {
		if m == move {
			return "leaves own king in check"
		}
	}
	return "not a legal move for " + piece.String()
}

// makeMove applies m to a copy of pos without checking legality.
// Callers must only pass moves produced by PseudoLegalMoves(pos).
func makeMove(pos chess.Position, m chess.Move) chess.Position {
	next := pos
	colour := pos.ToMove
	piece := next.Board.Get(m.From)
	captured := next.Board.Get(m.To)

	next.Board.Set(m.From, chess.NoPiece)

	switch m.Class {
	case chess.EnPassantCapture:
		// The captured pawn sits beside the mover, not on the destination.
		victim := m.To.Offset(0, -colour.PawnDirection())
		captured = next.Board.Get(victim)
		next.Board.Set(victim, chess.NoPiece)
		next.Board.Set(m.To, piece)

	case chess.CastleKingSide, chess.CastleQueenSide:
		kingSide := m.Class == chess.CastleKingSide
		rookFrom := chess.RookHome(colour, kingSide)
		rookTo := m.From.Offset(-1, 0)
		if kingSide {
			rookTo = m.From.Offset(1, 0)
		}
		rook := next.Board.Get(rookFrom)
		next.Board.Set(rookFrom, chess.NoPiece)
		next.Board.Set(m.To, piece)
		next.Board.Set(rookTo, rook)

	default:
		placed := piece
		if m.IsPromotion() {
			placed = chess.MakePiece(colour, m.Promotion)
		}
		next.Board.Set(m.To, placed)
	}

	next.Castling = updateCastlingRights(pos.Castling, piece, m, captured)

	next.EnPassant = chess.NoSquare
	if m.Class == chess.DoublePawnPush {
		next.EnPassant = m.From.Offset(0, colour.PawnDirection())
	}

	if captured != chess.NoPiece || piece.Kind() == chess.Pawn {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = pos.HalfmoveClock + 1
	}

	if colour == chess.Black {
		next.FullmoveNumber = pos.FullmoveNumber + 1
	}
	next.ToMove = colour.Opposite()

	return next
}

// updateCastlingRights clears rights when a king moves, when a rook leaves
// its home square, or when a rook is captured on its home square.
func updateCastlingRights(rights chess.CastlingRights, moved chess.Piece, m chess.Move, captured chess.Piece) chess.CastlingRights {
	colour := moved.Colour()

	if moved.Kind() == chess.King {
		rights = rights.WithoutColour(colour)
	}
	if moved.Kind() == chess.Rook {
		rights = clearRookRight(rights, colour, m.From)
	}
	if captured.Kind() == chess.Rook {
		rights = clearRookRight(rights, captured.Colour(), m.To)
	}
	return rights
}

// clearRookRight removes the right tied to a rook home square, if sq is one.
func clearRookRight(rights chess.CastlingRights, colour chess.Colour, sq chess.Square) chess.CastlingRights {
	for _, kingSide := range [2]bool{true, false} {
		if sq == chess.RookHome(colour, kingSide) {
			rights = rights.Without(colour, kingSide)
		}
	}
	return rights
}
