package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Direction tables shared by move generation and attack detection.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A board without a king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	for _, sq := range board.KingSquares(colour) {
		if IsSquareAttacked(board, sq, colour.Opposite()) {
			return true
		}
	}
	return false
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// Any occupied square, whatever its piece, blocks a sliding attack.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}

	// Pawns attack diagonally forward, so look one rank behind the target
	// from the attacker's point of view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnRank := -byColour.PawnDirection()
	if board.Get(sq.Offset(-1, pawnRank)) == pawn || board.Get(sq.Offset(1, pawnRank)) == pawn {
		return true
	}

	knight := chess.MakePiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.MakePiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	bishop := chess.MakePiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		if p := firstPieceOnRay(board, sq, dir); p == bishop || p == queen {
			return true
		}
	}

	rook := chess.MakePiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if p := firstPieceOnRay(board, sq, dir); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstPieceOnRay returns the first piece met walking from sq in dir,
// or NoPiece if the ray leaves the board first.
func firstPieceOnRay(board *chess.Board, sq chess.Square, dir [2]int) chess.Piece {
	for to := sq.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
		if p := board.Get(to); p != chess.NoPiece {
			return p
		}
	}
	return chess.NoPiece
}
