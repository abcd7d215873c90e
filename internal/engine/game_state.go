package engine

import "github.com/lgbarn/chesscore/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos chess.Position) bool {
	return IsInCheck(&pos.Board, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos chess.Position) bool {
	return !IsInCheck(&pos.Board, pos.ToMove) && !HasLegalMoves(pos)
}
