package chess

// Board is the 8x8 grid of optional pieces, indexed by Square.
// It is a plain array, so assigning a Board copies every square.
type Board [NumSquares]Piece

// backRank is the piece order on each side's home rank.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard returns the standard chess starting arrangement.
func NewInitialBoard() Board {
	var b Board
	for file := 0; file < BoardSize; file++ {
		b[NewSquare(file, 0)] = W(backRank[file])
		b[NewSquare(file, 1)] = W(Pawn)
		b[NewSquare(file, 6)] = B(Pawn)
		b[NewSquare(file, 7)] = B(backRank[file])
	}
	return b
}

// Get returns the piece on sq. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b[sq]
}

// Set places a piece on sq. Writes to off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b[sq] = piece
	}
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == NoPiece
}

// KingSquares returns every square holding a king of the given colour.
// During legal play the result has exactly one element.
func (b *Board) KingSquares(colour Colour) []Square {
	var squares []Square
	king := MakePiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq] == king {
			squares = append(squares, sq)
		}
	}
	return squares
}

// KingSquare returns the square of the colour's king, or NoSquare if there
// is not exactly one.
func (b *Board) KingSquare(colour Colour) Square {
	found := NoSquare
	king := MakePiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq] != king {
			continue
		}
		if found != NoSquare {
			return NoSquare
		}
		found = sq
	}
	return found
}

// Count returns the number of pieces equal to piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for _, p := range b {
		if p == piece {
			n++
		}
	}
	return n
}
