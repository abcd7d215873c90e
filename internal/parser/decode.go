package parser

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// ResolveMove turns move text into a legal move of pos. Text shaped like a
// UCI move ("g1f3", "e7e8q") is read as UCI; anything else as SAN ("Nf3",
// "exd6", "O-O").
func ResolveMove(pos chess.Position, text string) (chess.Move, error) {
	if looksLikeUCI(text) {
		return engine.ParseUCIMove(pos, text)
	}
	return engine.ParseSAN(pos, text)
}

// looksLikeUCI reports whether text is two squares optionally followed by a
// promotion letter. No SAN move has this shape.
func looksLikeUCI(text string) bool {
	if len(text) != 4 && len(text) != 5 {
		return false
	}
	if !isSquareText(text[0:2]) || !isSquareText(text[2:4]) {
		return false
	}
	return len(text) == 4 || chess.KindFromLetter(text[4]) != chess.NoKind
}

func isSquareText(s string) bool {
	return s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}
