package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func mustReport(t *testing.T, fen string) *PositionReport {
	t.Helper()
	pos, err := engine.DecodeFEN(fen)
	testutil.AssertNoError(t, err)
	r, err := NewPositionReport(pos)
	testutil.AssertNoError(t, err)
	return r
}

func TestTextWriter_WritePosition(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowMoves = true
	tw := NewTextWriter(&buf, cfg)

	testutil.AssertNoError(t, tw.WritePosition(mustReport(t, engine.InitialFEN)))
	testutil.AssertNoError(t, tw.Close())

	out := buf.String()
	testutil.AssertContains(t, out, "FEN: "+engine.InitialFEN+"\n")
	testutil.AssertContains(t, out, "Side to move: white\n")
	testutil.AssertContains(t, out, "Status: InProgress\n")
	testutil.AssertContains(t, out, "Legal moves (20): ")
	testutil.AssertContains(t, out, " Nf3 ")
	testutil.AssertNotContains(t, out, "g1f3")
}

func TestTextWriter_UCINotationAndCheck(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowMoves = true
	cfg.Notation = config.UCI
	tw := NewTextWriter(&buf, cfg)

	testutil.AssertNoError(t, tw.WritePosition(mustReport(t, "4k3/8/8/8/8/8/8/4RK2 b - - 0 1")))

	out := buf.String()
	testutil.AssertContains(t, out, "Status: InProgress (in check)\n")
	testutil.AssertContains(t, out, "e8d8")
}

func TestTextWriter_Board(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowBoard = true
	cfg.ShowStatus = false

	r := mustReport(t, engine.InitialFEN)
	r.Diagram = Diagram(engine.NewInitialPosition(), DiagramOptions{})
	testutil.AssertNoError(t, NewTextWriter(&buf, cfg).WritePosition(r))

	testutil.AssertContains(t, buf.String(), "8 r n b q k b n r\n")
	testutil.AssertNotContains(t, buf.String(), "Status:")
}

func TestTextWriter_WritePerft(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf, config.NewOutputConfig())

	err := tw.WritePerft(&PerftReport{
		FEN:    engine.InitialFEN,
		Depth:  1,
		Nodes:  3,
		Divide: NewDivideLines(map[string]uint64{"g1f3": 1, "a2a3": 1, "e2e4": 1}),
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, buf.String(), "a2a3: 1\ne2e4: 1\ng1f3: 1\n\nNodes searched (depth 1): 3\n")
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONWriter(&buf)

	testutil.AssertNoError(t, jw.WritePosition(mustReport(t, engine.InitialFEN)))
	testutil.AssertNoError(t, jw.WritePerft(&PerftReport{FEN: engine.InitialFEN, Depth: 2, Nodes: 400}))
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Close")
	testutil.AssertNoError(t, jw.Close())

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(got.Positions), 1)
	testutil.AssertEqual(t, got.Positions[0].FEN, engine.InitialFEN)
	testutil.AssertEqual(t, len(got.Positions[0].LegalMoves), 20)
	testutil.AssertEqual(t, len(got.Perft), 1)
	testutil.AssertEqual(t, got.Perft[0].Nodes, uint64(400))
}

func TestNewReportWriter(t *testing.T) {
	cfg := config.NewConfig()
	if _, ok := NewReportWriter(&bytes.Buffer{}, cfg).(*TextWriter); !ok {
		t.Error("default format should give a TextWriter")
	}
	cfg.Output.Format = config.JSON
	if _, ok := NewReportWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("JSON format should give a JSONWriter")
	}
}

func TestJSONWriter_FieldNames(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONWriter(&buf)
	testutil.AssertNoError(t, jw.WritePosition(mustReport(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")))
	testutil.AssertNoError(t, jw.Close())

	out := buf.String()
	for _, field := range []string{`"fen"`, `"sideToMove": "black"`, `"castling": "KQkq"`, `"enPassant": "e3"`, `"legalMoves"`, `"san"`, `"uci"`} {
		if !strings.Contains(out, field) {
			t.Errorf("JSON output missing %s", field)
		}
	}
}

func TestTextWriter_PlayedAndNotes(t *testing.T) {
	var buf bytes.Buffer
	r := mustReport(t, engine.InitialFEN)
	r.Played = []string{"Nf3", "Nf6", "Ng1", "Ng8"}
	r.Notes = []string{"threefold repetition", "underpromotion"}

	testutil.AssertNoError(t, NewTextWriter(&buf, config.NewOutputConfig()).WritePosition(r))

	out := buf.String()
	testutil.AssertContains(t, out, "Played: Nf3 Nf6 Ng1 Ng8\n")
	testutil.AssertContains(t, out, "Notes: threefold repetition, underpromotion\n")
}
