// Package processing replays move lists and analyses the resulting line.
package processing

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/parser"
)

// LineAnalysis holds features found while walking a line.
type LineAnalysis struct {
	Plies              int
	Captures           int
	Checks             int
	HasFiftyMoveRule   bool // Half-move clock reached 100
	Has75MoveRule      bool // Half-move clock reached 150
	HasRepetition      bool // Some position occurred three times
	Has5FoldRepetition bool
	HasUnderpromotion  bool
	MaxRepetition      int

	// HasInsufficientMaterial describes the final position only.
	HasInsufficientMaterial bool
}

// Notes returns short labels for the draw and promotion features found,
// in a fixed order.
func (a *LineAnalysis) Notes() []string {
	var notes []string
	add := func(cond bool, note string) {
		if cond {
			notes = append(notes, note)
		}
	}
	add(a.HasRepetition, "threefold repetition")
	add(a.Has5FoldRepetition, "fivefold repetition")
	add(a.HasFiftyMoveRule, "fifty-move rule")
	add(a.Has75MoveRule, "seventy-five-move rule")
	add(a.HasInsufficientMaterial, "insufficient material")
	add(a.HasUnderpromotion, "underpromotion")
	return notes
}

// ValidationResult holds the result of move list validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int // 1-based ply of the first bad move
	ErrorMsg string
}

// Replay plays moves from start, reading each with parser.ResolveMove.
// Errors name the 1-based ply of the move that failed.
func Replay(start chess.Position, moves []string) (*engine.Line, error) {
	line := engine.NewLine(start)
	for i, text := range moves {
		move, err := parser.ResolveMove(line.Current(), text)
		if err != nil {
			return nil, errors.Wrapf(err, "ply %d (%s)", i+1, text)
		}
		if err := line.Play(move); err != nil {
			return nil, errors.Wrapf(err, "ply %d (%s)", i+1, text)
		}
	}
	return line, nil
}

// ValidateMoves reports whether every move of the list is legal in turn.
func ValidateMoves(start chess.Position, moves []string) *ValidationResult {
	result := &ValidationResult{Valid: true}
	pos := start
	for i, text := range moves {
		move, err := parser.ResolveMove(pos, text)
		if err == nil {
			pos, err = engine.ApplyMove(pos, move)
		}
		if err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = err.Error()
			return result
		}
	}
	return result
}

// AnalyzeLine walks line from its start to its cursor.
func AnalyzeLine(line *engine.Line) *LineAnalysis {
	analysis := &LineAnalysis{Plies: line.Ply()}
	counter := hashing.NewPositionCounter()
	analysis.MaxRepetition = counter.Add(line.PositionAt(0))

	for ply, move := range line.Moves() {
		before := line.PositionAt(ply)
		after := line.PositionAt(ply + 1)

		if move.Class == chess.EnPassantCapture || !before.Board.IsEmpty(move.To) {
			analysis.Captures++
		}
		if engine.IsInCheck(&after.Board, after.ToMove) {
			analysis.Checks++
		}
		if move.IsPromotion() && move.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}

		// 50-move rule (100 half-moves)
		if after.HalfmoveClock >= 100 {
			analysis.HasFiftyMoveRule = true
		}

		// 75-move rule (150 half-moves - automatic draw)
		if after.HalfmoveClock >= 150 {
			analysis.Has75MoveRule = true
		}

		if n := counter.Add(after); n > analysis.MaxRepetition {
			analysis.MaxRepetition = n
		}
	}

	analysis.HasRepetition = analysis.MaxRepetition >= 3
	analysis.Has5FoldRepetition = analysis.MaxRepetition >= 5

	final := line.Current()
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(&final.Board)
	return analysis
}

// SANMoves renders the moves of line, up to its cursor, in SAN.
func SANMoves(line *engine.Line) ([]string, error) {
	moves := line.Moves()
	out := make([]string, len(moves))
	for i, m := range moves {
		san, err := engine.SAN(line.PositionAt(i), m)
		if err != nil {
			return nil, err
		}
		out[i] = san
	}
	return out, nil
}
