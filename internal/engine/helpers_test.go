package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Well-known perft positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	position6FEN = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"

	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	castlingFEN  = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
)

func mustDecode(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, err := DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN(%q): %v", fen, err)
	}
	return pos
}

// playUCI applies each UCI move in turn, failing the test on any error.
func playUCI(t testing.TB, pos chess.Position, moves ...string) chess.Position {
	t.Helper()
	for _, text := range moves {
		m, err := ParseUCIMove(pos, text)
		if err != nil {
			t.Fatalf("ParseUCIMove(%q) in %q: %v", text, EncodeFEN(pos), err)
		}
		pos, err = ApplyMove(pos, m)
		if err != nil {
			t.Fatalf("ApplyMove(%q): %v", text, err)
		}
	}
	return pos
}

func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}
