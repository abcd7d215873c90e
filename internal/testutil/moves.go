package testutil

import (
	"sort"

	"github.com/lgbarn/chesscore/internal/chess"
)

// UCIList renders moves as sorted UCI strings so move sets can be compared
// with AssertEqual regardless of generation order.
func UCIList(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// SortedUCI sorts a copy of UCI strings gathered from another source.
func SortedUCI(ucis []string) []string {
	out := append([]string(nil), ucis...)
	sort.Strings(out)
	return out
}

// Squares parses algebraic square names, panicking on bad input.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, len(names))
	for i, n := range names {
		out[i] = chess.MustParseSquare(n)
	}
	return out
}
