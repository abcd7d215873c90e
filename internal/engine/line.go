package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// Line is a sequence of positions reached by playing legal moves from a
// start position, with undo and redo. Positions are values, so undo is just
// stepping back to an earlier snapshot.
//
// A Line is not safe for concurrent use.
type Line struct {
	positions []chess.Position // positions[0] is the start
	moves     []chess.Move     // moves[i] leads from positions[i] to positions[i+1]
	cursor    int              // index of the current position
	seen      *hashing.PositionCounter
}

// NewLine starts a line at pos.
func NewLine(start chess.Position) *Line {
	l := &Line{
		positions: []chess.Position{start},
		seen:      hashing.NewPositionCounter(),
	}
	l.seen.Add(start)
	return l
}

// Current returns the position at the cursor.
func (l *Line) Current() chess.Position {
	return l.positions[l.cursor]
}

// Ply returns the number of moves played up to the cursor.
func (l *Line) Ply() int {
	return l.cursor
}

// PositionAt returns the position after ply moves. It panics unless
// 0 <= ply <= Ply(); undone positions are not reachable through it.
func (l *Line) PositionAt(ply int) chess.Position {
	if ply < 0 || ply > l.cursor {
		panic(fmt.Sprintf("engine: PositionAt(%d) outside line of %d plies", ply, l.cursor))
	}
	return l.positions[ply]
}

// Moves returns the moves played up to the cursor.
func (l *Line) Moves() []chess.Move {
	out := make([]chess.Move, l.cursor)
	copy(out, l.moves[:l.cursor])
	return out
}

// Play applies move to the current position. Any undone moves beyond the
// cursor are discarded. On error the line is unchanged.
func (l *Line) Play(move chess.Move) error {
	next, err := ApplyMove(l.Current(), move)
	if err != nil {
		return err
	}
	l.positions = append(l.positions[:l.cursor+1], next)
	l.moves = append(l.moves[:l.cursor], move)
	l.cursor++
	l.seen.Add(next)
	return nil
}

// PlayUCI parses text with ParseUCIMove and plays it.
func (l *Line) PlayUCI(text string) error {
	move, err := ParseUCIMove(l.Current(), text)
	if err != nil {
		return err
	}
	return l.Play(move)
}

// Undo steps back one move. It returns false at the start of the line.
func (l *Line) Undo() bool {
	if l.cursor == 0 {
		return false
	}
	l.seen.Remove(l.positions[l.cursor])
	l.cursor--
	return true
}

// Redo replays the most recently undone move. It returns false when there
// is nothing to redo.
func (l *Line) Redo() bool {
	if l.cursor+1 >= len(l.positions) {
		return false
	}
	l.cursor++
	l.seen.Add(l.positions[l.cursor])
	return true
}

// RepetitionCount returns how many times the current position has occurred
// along the line up to the cursor, counting the current occurrence.
// Clocks are ignored when comparing positions.
func (l *Line) RepetitionCount() int {
	return l.seen.Count(l.Current())
}

// Status judges the current position with GameStatus.
func (l *Line) Status() (Status, error) {
	return GameStatus(l.Current())
}
