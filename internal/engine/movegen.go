package engine

import "github.com/lgbarn/chesscore/internal/chess"

// PseudoLegalMoves returns every move the side to move can make by piece
// movement rules alone, without checking whether the mover's own king is
// left attacked. Castling is the exception: it is only generated when the
// king does not start on, pass through or land on an attacked square.
func PseudoLegalMoves(pos chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	colour := pos.ToMove

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board.Get(sq)
		if piece == chess.NoPiece || piece.Colour() != colour {
			continue
		}

		switch piece.Kind() {
		case chess.Pawn:
			moves = appendPawnMoves(moves, &pos, sq)
		case chess.Knight:
			moves = appendStepMoves(moves, &pos.Board, sq, colour, knightOffsets[:])
		case chess.King:
			moves = appendStepMoves(moves, &pos.Board, sq, colour, kingOffsets[:])
		case chess.Bishop:
			moves = appendSlidingMoves(moves, &pos.Board, sq, colour, diagonalDirs[:])
		case chess.Rook:
			moves = appendSlidingMoves(moves, &pos.Board, sq, colour, straightDirs[:])
		case chess.Queen:
			moves = appendSlidingMoves(moves, &pos.Board, sq, colour, diagonalDirs[:])
			moves = appendSlidingMoves(moves, &pos.Board, sq, colour, straightDirs[:])
		}
	}

	return appendCastlingMoves(moves, &pos)
}

// LegalMoves filters the pseudo-legal moves to those that do not leave the
// mover's own king attacked.
func LegalMoves(pos chess.Position) []chess.Move {
	pseudo := PseudoLegalMoves(pos)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if leavesKingSafe(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos chess.Position) bool {
	for _, m := range PseudoLegalMoves(pos) {
		if leavesKingSafe(pos, m) {
			return true
		}
	}
	return false
}

// IsLegal reports whether move is a member of LegalMoves(pos).
func IsLegal(pos chess.Position, move chess.Move) bool {
	for _, m := range PseudoLegalMoves(pos) {
		if m == move {
			return leavesKingSafe(pos, m)
		}
	}
	return false
}

// leavesKingSafe plays the move on a copy of pos and checks that the
// mover's king is not attacked afterwards.
func leavesKingSafe(pos chess.Position, m chess.Move) bool {
	next := makeMove(pos, m)
	return !IsInCheck(&next.Board, pos.ToMove)
}

// appendStepMoves adds knight or king moves from fixed offsets.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if to == chess.NoSquare {
			continue
		}
		target := board.Get(to)
		if target == chess.NoPiece || target.Colour() != colour {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// appendSlidingMoves adds bishop, rook or queen moves along the given rays.
// Each ray stops at the first occupied square, which is included as a
// capture when it holds an opponent piece.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
			target := board.Get(to)
			if target == chess.NoPiece {
				moves = append(moves, chess.Move{From: from, To: to})
				continue
			}
			if target.Colour() != colour {
				moves = append(moves, chess.Move{From: from, To: to})
			}
			break // Blocked
		}
	}
	return moves
}

// appendPawnMoves adds pushes, double pushes, captures, en passant captures
// and promotions for the pawn on from.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square) []chess.Move {
	colour := pos.ToMove
	dir := colour.PawnDirection()
	startRank := 1
	if colour == chess.Black {
		startRank = 6
	}

	// Forward moves
	one := from.Offset(0, dir)
	if one != chess.NoSquare && pos.Board.IsEmpty(one) {
		moves = appendPawnStep(moves, from, one, colour)
		if from.Rank() == startRank {
			two := one.Offset(0, dir)
			if two != chess.NoSquare && pos.Board.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two, Class: chess.DoublePawnPush})
			}
		}
	}

	// Captures
	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if to == chess.NoSquare {
			continue
		}
		target := pos.Board.Get(to)
		if target != chess.NoPiece {
			if target.Colour() != colour {
				moves = appendPawnStep(moves, from, to, colour)
			}
			continue
		}
		if to == pos.EnPassant && isEnPassantVictim(&pos.Board, to, colour) {
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.EnPassantCapture})
		}
	}
	return moves
}

// appendPawnStep adds a single pawn move, fanning out into one move per
// promotion kind when the pawn reaches the last rank.
func appendPawnStep(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Rank() != colour.Opposite().HomeRank() {
		return append(moves, chess.Move{From: from, To: to})
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind})
	}
	return moves
}

// isEnPassantVictim reports whether an opponent pawn stands directly behind
// the en passant target from the capturer's point of view.
func isEnPassantVictim(board *chess.Board, target chess.Square, colour chess.Colour) bool {
	victim := target.Offset(0, -colour.PawnDirection())
	return board.Get(victim) == chess.MakePiece(colour.Opposite(), chess.Pawn)
}

// castlePath describes the squares involved in one castling option.
type castlePath struct {
	class    chess.MoveClass
	kingSide bool
	kingTo   int   // destination file of the king
	empty    []int // files that must be empty
	safe     []int // files the king crosses or lands on
}

var castlePaths = [2]castlePath{
	{class: chess.CastleKingSide, kingSide: true, kingTo: 6, empty: []int{5, 6}, safe: []int{5, 6}},
	{class: chess.CastleQueenSide, kingSide: false, kingTo: 2, empty: []int{1, 2, 3}, safe: []int{3, 2}},
}

// appendCastlingMoves adds castling moves whose right is held, whose path
// is empty, and whose king squares are not attacked.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position) []chess.Move {
	colour := pos.ToMove
	rank := colour.HomeRank()
	kingFrom := chess.KingHome(colour)
	if pos.Board.Get(kingFrom) != chess.MakePiece(colour, chess.King) {
		return moves
	}
	enemy := colour.Opposite()

	for _, path := range castlePaths {
		if !pos.Castling.Has(colour, path.kingSide) {
			continue
		}
		if pos.Board.Get(chess.RookHome(colour, path.kingSide)) != chess.MakePiece(colour, chess.Rook) {
			continue
		}
		if !filesEmpty(&pos.Board, rank, path.empty) {
			continue
		}
		if IsSquareAttacked(&pos.Board, kingFrom, enemy) {
			continue
		}
		if anyFileAttacked(&pos.Board, rank, path.safe, enemy) {
			continue
		}
		moves = append(moves, chess.Move{
			From:  kingFrom,
			To:    chess.NewSquare(path.kingTo, rank),
			Class: path.class,
		})
	}
	return moves
}

func filesEmpty(board *chess.Board, rank int, files []int) bool {
	for _, f := range files {
		if !board.IsEmpty(chess.NewSquare(f, rank)) {
			return false
		}
	}
	return true
}

func anyFileAttacked(board *chess.Board, rank int, files []int, by chess.Colour) bool {
	for _, f := range files {
		if IsSquareAttacked(board, chess.NewSquare(f, rank), by) {
			return true
		}
	}
	return false
}
