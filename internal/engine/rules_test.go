package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	chesserrors "github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestGameStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Status
	}{
		{"initial", InitialFEN, Status{Kind: InProgress}},
		{"fool's mate", foolsMateFEN, Status{Kind: Checkmate, Mated: chess.White}},
		{"back rank mate of black", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Status{Kind: Checkmate, Mated: chess.Black}},
		{"stalemate", stalemateFEN, Status{Kind: Stalemate}},
		{"fifty-move draw", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", Status{Kind: DrawByFiftyMove}},
		{"clock 99 still playing", "4k3/8/8/8/8/8/8/R3K3 w - - 99 80", Status{Kind: InProgress}},
		{"checkmate beats fifty-move", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 100 3", Status{Kind: Checkmate, Mated: chess.White}},
		{"stalemate beats fifty-move", "7k/5Q2/6K1/8/8/8/8/8 b - - 120 90", Status{Kind: Stalemate}},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", Status{Kind: DrawByInsufficientMaterial}},
		{"fifty-move beats insufficient material", "4k3/8/8/8/8/8/8/4K3 w - - 100 1", Status{Kind: DrawByFiftyMove}},
		{"in check but can escape", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", Status{Kind: InProgress}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := GameStatus(mustDecode(t, tt.fen))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestGameStatus_FoolsMateByPlay(t *testing.T) {
	pos := playUCI(t, NewInitialPosition(), "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertEqual(t, EncodeFEN(pos), foolsMateFEN)

	status, err := GameStatus(pos)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status.String(), "Checkmate(White)")
	testutil.AssertTrue(t, IsCheckmate(pos))
	testutil.AssertFalse(t, IsStalemate(pos))
}

func TestGameStatus_InvariantViolations(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"no kings", "8/8/8/8/8/8/8/8 w - - 0 1"},
		{"no black king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := GameStatus(mustDecode(t, tt.fen))
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvariantViolation)

			var violation *chesserrors.InvariantViolation
			if !chesserrors.As(err, &violation) {
				t.Fatalf("error %v is not an *InvariantViolation", err)
			}
			testutil.AssertEqual(t, violation.FEN, tt.fen)
		})
	}
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same colour", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite colour", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"K+B vs K+N", "4k1n1/8/8/8/8/8/8/4KB2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustDecode(t, tt.fen)
			if got := HasInsufficientMaterial(&pos.Board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus_Helpers(t *testing.T) {
	tests := []struct {
		status     Status
		wantString string
		wantResult string
		wantOver   bool
		wantDraw   bool
	}{
		{Status{Kind: InProgress}, "InProgress", "*", false, false},
		{Status{Kind: Checkmate, Mated: chess.White}, "Checkmate(White)", "0-1", true, false},
		{Status{Kind: Checkmate, Mated: chess.Black}, "Checkmate(Black)", "1-0", true, false},
		{Status{Kind: Stalemate}, "Stalemate", "1/2-1/2", true, true},
		{Status{Kind: DrawByFiftyMove}, "DrawByFiftyMove", "1/2-1/2", true, true},
		{Status{Kind: DrawByInsufficientMaterial}, "DrawByInsufficientMaterial", "1/2-1/2", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.wantString, func(t *testing.T) {
			testutil.AssertEqual(t, tt.status.String(), tt.wantString)
			testutil.AssertEqual(t, tt.status.Result(), tt.wantResult)
			testutil.AssertEqual(t, tt.status.IsOver(), tt.wantOver)
			testutil.AssertEqual(t, tt.status.IsDraw(), tt.wantDraw)
		})
	}

	winner, ok := Status{Kind: Checkmate, Mated: chess.Black}.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner, chess.White)

	_, ok = Status{Kind: Stalemate}.Winner()
	testutil.AssertFalse(t, ok)
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"fool's mate white", foolsMateFEN, chess.White, true},
		{"knight check", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"pawn check", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"blocked rook", "4k3/8/8/4p3/8/8/8/4R1K1 b - - 0 1", chess.Black, false},
		{"no king", "8/8/8/8/8/8/8/R7 w - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.fen)
			if got := IsInCheck(&pos.Board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}
