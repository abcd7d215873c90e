package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	chesserrors "github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestDecodeFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p chess.Position) bool {
				return p.Board.Get(sq("e1")) == chess.W(chess.King) &&
					p.Board.Get(sq("e8")) == chess.B(chess.King) &&
					p.Board.Get(sq("e2")) == chess.W(chess.Pawn) &&
					p.Board.Get(sq("e7")) == chess.B(chess.Pawn) &&
					p.ToMove == chess.White &&
					p.Castling == chess.AllCastlingRights &&
					p.EnPassant == chess.NoSquare &&
					p.HalfmoveClock == 0 &&
					p.FullmoveNumber == 1
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p chess.Position) bool {
				return p.Board.Get(sq("e4")) == chess.W(chess.Pawn) &&
					p.Board.IsEmpty(sq("e2")) &&
					p.ToMove == chess.Black &&
					p.EnPassant == sq("e3")
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p chess.Position) bool {
				return p.Castling.None()
			},
		},
		{
			name: "castling letters in any order",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w qkQK - 0 1",
			checkFn: func(p chess.Position) bool {
				return p.Castling == chess.AllCastlingRights
			},
		},
		{
			name: "adjacent digits",
			fen:  "44/8/8/8/8/8/8/4K2k w - - 0 1",
			checkFn: func(p chess.Position) bool {
				return p.Board.Get(sq("e1")) == chess.W(chess.King) &&
					p.Board.Get(sq("h1")) == chess.B(chess.King)
			},
		},
		{
			name: "large clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 99 250",
			checkFn: func(p chess.Position) bool {
				return p.HalfmoveClock == 99 && p.FullmoveNumber == 250
			},
		},
		{
			name: "zero fullmove number",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 0",
			checkFn: func(p chess.Position) bool {
				return p.FullmoveNumber == 0
			},
		},
		{
			name: "missing kings are not a decode error",
			fen:  "8/8/8/8/8/8/8/8 w - - 0 1",
			checkFn: func(p chess.Position) bool {
				return len(p.Board.KingSquares(chess.White)) == 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, err := DecodeFEN(tt.fen)
			if err != nil {
				t.Fatalf("DecodeFEN(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("DecodeFEN(%q) produced unexpected position %q", tt.fen, EncodeFEN(pos))
			}
		})
	}
}

func TestDecodeFEN_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty string", "", "fen"},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", "fen"},
		{"seven fields", InitialFEN + " extra", "fen"},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1", FieldPlacement},
		{"nine ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1", FieldPlacement},
		{"short rank", "7/8/8/8/8/8/8/8 w - - 0 1", FieldPlacement},
		{"long rank", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1", FieldPlacement},
		{"digit overflow", "4k4/8/8/8/8/8/8/4K3 w - - 0 1", FieldPlacement},
		{"digit nine", "9/8/8/8/8/8/8/8 w - - 0 1", FieldPlacement},
		{"digit zero", "08/8/8/8/8/8/8/8 w - - 0 1", FieldPlacement},
		{"invalid piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", FieldPlacement},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", FieldSide},
		{"uppercase side", "4k3/8/8/8/8/8/8/4K3 W - - 0 1", FieldSide},
		{"castling repeat", "r3k2r/8/8/8/8/8/8/R3K2R w KKq - 0 1", FieldCastling},
		{"castling bad letter", "r3k2r/8/8/8/8/8/8/R3K2R w KX - 0 1", FieldCastling},
		{"castling dash mixed", "r3k2r/8/8/8/8/8/8/R3K2R w K- - 0 1", FieldCastling},
		{"en passant not a square", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1", FieldEnPassant},
		{"en passant wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e4 0 1", FieldEnPassant},
		{"negative halfmove", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", FieldHalfmove},
		{"non-numeric halfmove", "4k3/8/8/8/8/8/8/4K3 w - - x 1", FieldHalfmove},
		{"signed fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 +1", FieldFullmove},
		{"non-numeric fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 one", FieldFullmove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, err := DecodeFEN(tt.fen)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)

			var decodeErr *chesserrors.DecodeError
			if !chesserrors.As(err, &decodeErr) {
				t.Fatalf("error %v is not a *DecodeError", err)
			}
			if decodeErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", decodeErr.Field, tt.wantField)
			}
			testutil.AssertEqual(t, pos, chess.Position{}, "no partial position on error")
		})
	}
}

func TestEncodeFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
		position6FEN,
		foolsMateFEN,
		stalemateFEN,
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b Kq - 42 77",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			pos := mustDecode(t, fen)
			testutil.AssertEqual(t, EncodeFEN(pos), fen)

			again := mustDecode(t, EncodeFEN(pos))
			if again != pos {
				t.Errorf("decode(encode(p)) != p for %q", fen)
			}
		})
	}
}

func TestEncodeFEN_CanonicalForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"castling reordered", "r3k2r/8/8/8/8/8/8/R3K2R w qkQK - 0 1", castlingFEN},
		{"digit runs merged", "44/8/8/8/8/8/8/4K2k w - - 0 1", "8/8/8/8/8/8/8/4K2k w - - 0 1"},
		{"extra whitespace", "4k3/8/8/8/8/8/8/4K3  w  -  -  0  1", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, EncodeFEN(mustDecode(t, tt.in)), tt.want)
		})
	}
}

func TestEncodeFEN_InitialPosition(t *testing.T) {
	testutil.AssertEqual(t, EncodeFEN(NewInitialPosition()), InitialFEN)
	testutil.AssertEqual(t, mustDecode(t, InitialFEN), NewInitialPosition())
}

func TestFEN_RoundTripAfterPlay(t *testing.T) {
	pos := playUCI(t, NewInitialPosition(), "e2e4", "e7e5", "g1f3", "b8c6", "f1b5")

	want := "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"
	testutil.AssertEqual(t, EncodeFEN(pos), want)
	testutil.AssertEqual(t, mustDecode(t, EncodeFEN(pos)), pos)
}

// TestFEN_RoundTripReachable decodes the encoding of every position reachable
// from the initial position and expects the same position back.
func TestFEN_RoundTripReachable(t *testing.T) {
	depth := 4
	if testing.Short() {
		depth = 3
	}

	var checked int
	var walk func(pos chess.Position, depth int)
	walk = func(pos chess.Position, depth int) {
		checked++
		fen := EncodeFEN(pos)
		got, err := DecodeFEN(fen)
		if err != nil {
			t.Fatalf("DecodeFEN(%q): %v", fen, err)
		}
		if got != pos {
			t.Fatalf("round trip of %q changed the position", fen)
		}
		if depth == 0 {
			return
		}
		for _, m := range LegalMoves(pos) {
			next, err := ApplyMove(pos, m)
			if err != nil {
				t.Fatalf("ApplyMove(%q, %v): %v", fen, m, err)
			}
			walk(next, depth-1)
		}
	}
	walk(NewInitialPosition(), depth)

	// 1 + 20 + 400 + 8902 (+ 197281 at depth 4)
	want := 9323
	if depth == 4 {
		want += 197281
	}
	testutil.AssertEqual(t, checked, want)
}

func TestMustDecodeFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustDecodeFEN should panic on bad input")
		}
	}()
	MustDecodeFEN("not a fen")
}
