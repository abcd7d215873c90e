package hashing_test

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/hashing"
)

func mustDecode(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, err := engine.DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN(%q): %v", fen, err)
	}
	return pos
}

func TestZobristConsistency(t *testing.T) {
	t.Parallel()

	pos1 := chess.NewInitialPosition()
	pos2 := mustDecode(t, engine.InitialFEN)

	if hashing.Zobrist(pos1) != hashing.Zobrist(pos2) {
		t.Errorf("identical positions produced different hashes: %x != %x",
			hashing.Zobrist(pos1), hashing.Zobrist(pos2))
	}
}

func TestZobristDistinguishesPositions(t *testing.T) {
	t.Parallel()

	base := chess.NewInitialPosition()

	movedPawn := base
	movedPawn.Board.Set(chess.MustParseSquare("e2"), chess.NoPiece)
	movedPawn.Board.Set(chess.MustParseSquare("e4"), chess.W(chess.Pawn))

	blackToMove := base
	blackToMove.ToMove = chess.Black

	noCastling := base
	noCastling.Castling = chess.CastlingRights{}

	onlyWhiteShort := base
	onlyWhiteShort.Castling = chess.CastlingRights{WhiteKingSide: true}

	withEnPassant := base
	withEnPassant.EnPassant = chess.MustParseSquare("e3")

	otherEnPassant := base
	otherEnPassant.EnPassant = chess.MustParseSquare("d3")

	tests := []struct {
		name string
		pos  chess.Position
	}{
		{"moved pawn", movedPawn},
		{"side to move", blackToMove},
		{"no castling", noCastling},
		{"partial castling", onlyWhiteShort},
		{"en passant e3", withEnPassant},
		{"en passant d3", otherEnPassant},
	}

	seen := map[uint64]string{hashing.Zobrist(base): "initial"}
	for _, tt := range tests {
		h := hashing.Zobrist(tt.pos)
		if prev, ok := seen[h]; ok {
			t.Errorf("%s hashes equal to %s (%x)", tt.name, prev, h)
		}
		seen[h] = tt.name
	}
}

func TestZobristIgnoresClocks(t *testing.T) {
	t.Parallel()

	a := mustDecode(t, "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1")
	b := mustDecode(t, "8/5k2/8/8/8/8/5K2/4R3 w - - 37 60")

	if hashing.Zobrist(a) != hashing.Zobrist(b) {
		t.Error("positions differing only in clocks should hash equal")
	}
}

func TestZobristTransposition(t *testing.T) {
	t.Parallel()

	// 1.Nf3 Nf6 2.Nc3 and 1.Nc3 Nf6 2.Nf3 reach the same position.
	play := func(ucis ...string) chess.Position {
		pos := chess.NewInitialPosition()
		for _, u := range ucis {
			m, err := engine.ParseUCIMove(pos, u)
			if err != nil {
				t.Fatalf("ParseUCIMove(%q): %v", u, err)
			}
			pos, err = engine.ApplyMove(pos, m)
			if err != nil {
				t.Fatalf("ApplyMove(%q): %v", u, err)
			}
		}
		return pos
	}

	a := play("g1f3", "g8f6", "b1c3")
	b := play("b1c3", "g8f6", "g1f3")
	if hashing.Zobrist(a) != hashing.Zobrist(b) {
		t.Error("transposed move orders should reach the same hash")
	}
}

func TestPositionCounter(t *testing.T) {
	t.Parallel()

	counter := hashing.NewPositionCounter()
	initial := chess.NewInitialPosition()
	other := mustDecode(t, "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1")

	if got := counter.Add(initial); got != 1 {
		t.Errorf("first Add = %d, want 1", got)
	}
	if got := counter.Add(initial); got != 2 {
		t.Errorf("second Add = %d, want 2", got)
	}
	counter.Add(other)

	if got := counter.Count(initial); got != 2 {
		t.Errorf("Count(initial) = %d, want 2", got)
	}
	if got := counter.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d, want 2", got)
	}

	counter.Remove(initial)
	if got := counter.Count(initial); got != 1 {
		t.Errorf("Count after Remove = %d, want 1", got)
	}
	counter.Remove(other)
	if got := counter.UniqueCount(); got != 1 {
		t.Errorf("UniqueCount after removing last occurrence = %d, want 1", got)
	}

	counter.Reset()
	if got := counter.Count(initial); got != 0 {
		t.Errorf("Count after Reset = %d, want 0", got)
	}
}
