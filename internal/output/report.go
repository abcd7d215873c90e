package output

import (
	"sort"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// PositionReport is a flat description of a position for hosts that cannot
// share engine values directly.
type PositionReport struct {
	FEN            string       `json:"fen"`
	SideToMove     string       `json:"sideToMove"` // "white" or "black"
	Castling       string       `json:"castling"`
	EnPassant      string       `json:"enPassant,omitempty"`
	HalfmoveClock  uint         `json:"halfmoveClock"`
	FullmoveNumber uint         `json:"fullmoveNumber"`
	InCheck        bool         `json:"inCheck"`
	Status         string       `json:"status"`
	Result         string       `json:"result"`
	LegalMoves     []ReportMove `json:"legalMoves"`
	Diagram        string       `json:"diagram,omitempty"`

	// Filled in by callers that reached the position by playing moves.
	Played []string `json:"played,omitempty"` // SAN
	Notes  []string `json:"notes,omitempty"`
}

// ReportMove is one legal move in both notations.
type ReportMove struct {
	UCI string `json:"uci"`
	SAN string `json:"san"`
}

// NewPositionReport describes pos. It fails only when the position cannot
// be judged, e.g. a side has no king.
func NewPositionReport(pos chess.Position) (*PositionReport, error) {
	status, err := engine.GameStatus(pos)
	if err != nil {
		return nil, err
	}

	fen := engine.EncodeFEN(pos)
	fields := strings.Fields(fen)

	r := &PositionReport{
		FEN:            fen,
		SideToMove:     strings.ToLower(pos.ToMove.String()),
		Castling:       fields[2],
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
		InCheck:        engine.IsInCheck(&pos.Board, pos.ToMove),
		Status:         status.String(),
		Result:         status.Result(),
		LegalMoves:     []ReportMove{},
	}
	if pos.EnPassant != chess.NoSquare {
		r.EnPassant = pos.EnPassant.String()
	}

	for _, m := range engine.LegalMoves(pos) {
		san, err := engine.SAN(pos, m)
		if err != nil {
			return nil, err
		}
		r.LegalMoves = append(r.LegalMoves, ReportMove{UCI: m.String(), SAN: san})
	}
	sort.Slice(r.LegalMoves, func(i, j int) bool {
		return r.LegalMoves[i].UCI < r.LegalMoves[j].UCI
	})
	return r, nil
}

// PerftReport describes a perft run.
type PerftReport struct {
	FEN       string       `json:"fen"`
	Depth     int          `json:"depth"`
	Nodes     uint64       `json:"nodes"`
	Divide    []DivideLine `json:"divide,omitempty"`
	Workers   int          `json:"workers,omitempty"`
	CacheHits uint64       `json:"cacheHits,omitempty"`
}

// DivideLine is the node count below one root move.
type DivideLine struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// NewDivideLines converts a PerftDivide map into lines sorted by move.
func NewDivideLines(divide map[string]uint64) []DivideLine {
	lines := make([]DivideLine, 0, len(divide))
	for move, nodes := range divide {
		lines = append(lines, DivideLine{Move: move, Nodes: nodes})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Move < lines[j].Move })
	return lines
}
