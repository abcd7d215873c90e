package engine

import (
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// ParseUCIMove resolves long algebraic text such as "e2e4" or "e7e8q"
// against the legal moves of pos. Castling is written as the king's move,
// e.g. "e1g1".
func ParseUCIMove(pos chess.Position, text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, illegalText(pos, text, "expected 4 or 5 characters")
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, illegalText(pos, text, err.Error())
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, illegalText(pos, text, err.Error())
	}
	promotion := chess.NoKind
	if len(text) == 5 {
		promotion = chess.KindFromLetter(text[4])
		if !isPromotionKind(promotion) {
			return chess.Move{}, illegalText(pos, text, "bad promotion piece")
		}
	}

	for _, m := range LegalMoves(pos) {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return chess.Move{}, illegalText(pos, text, "not a legal move")
}

func isPromotionKind(k chess.Kind) bool {
	for _, p := range chess.PromotionKinds {
		if k == p {
			return true
		}
	}
	return false
}

func illegalText(pos chess.Position, text, reason string) error {
	return &errors.IllegalMoveError{Move: text, FEN: EncodeFEN(pos), Reason: reason}
}

// SAN renders a legal move in standard algebraic notation, including
// disambiguation and a trailing "+" or "#".
func SAN(pos chess.Position, move chess.Move) (string, error) {
	legal := LegalMoves(pos)
	if !containsMove(legal, move) {
		return "", &errors.IllegalMoveError{
			Move:   move.String(),
			FEN:    EncodeFEN(pos),
			Reason: illegalReason(pos, move),
		}
	}
	return sanBody(pos, move, legal) + checkSuffix(pos, move), nil
}

// ParseSAN resolves standard algebraic text such as "Nf3", "exd6",
// "e8=Q+" or "O-O" against the legal moves of pos. Check marks and
// annotation glyphs are ignored; "0-0" is accepted for castling and the
// "=" before a promotion piece may be omitted.
func ParseSAN(pos chess.Position, text string) (chess.Move, error) {
	want := normaliseSAN(text)
	if want == "" {
		return chess.Move{}, illegalText(pos, text, "empty move text")
	}

	legal := LegalMoves(pos)
	for _, m := range legal {
		body := sanBody(pos, m, legal)
		if body == want || (m.IsPromotion() && strings.Replace(body, "=", "", 1) == want) {
			return m, nil
		}
	}
	if m, ok := matchOverqualified(pos, want, legal); ok {
		return m, nil
	}
	return chess.Move{}, illegalText(pos, text, "no legal move matches")
}

// matchOverqualified accepts piece moves that name more of the origin
// square than needed, e.g. "Ngf3" or "Ng1f3" when only one knight can
// reach f3. The origin hints must still pick out exactly one legal move.
func matchOverqualified(pos chess.Position, want string, legal []chess.Move) (chess.Move, bool) {
	if len(want) < 4 || strings.IndexByte("KQRBN", want[0]) < 0 {
		return chess.Move{}, false
	}
	kind := chess.KindFromLetter(want[0])
	rest := want[1:]
	capture := strings.Contains(rest, "x")
	rest = strings.Replace(rest, "x", "", 1)
	if len(rest) < 3 || len(rest) > 4 {
		return chess.Move{}, false
	}
	to, err := chess.ParseSquare(rest[len(rest)-2:])
	if err != nil {
		return chess.Move{}, false
	}
	file, rank := -1, -1
	for _, c := range []byte(rest[:len(rest)-2]) {
		switch {
		case c >= 'a' && c <= 'h' && file < 0:
			file = int(c - 'a')
		case c >= '1' && c <= '8' && rank < 0:
			rank = int(c - '1')
		default:
			return chess.Move{}, false
		}
	}

	var found chess.Move
	matches := 0
	for _, m := range legal {
		if m.To != to || pos.Board.Get(m.From).Kind() != kind {
			continue
		}
		if (file >= 0 && m.From.File() != file) || (rank >= 0 && m.From.Rank() != rank) {
			continue
		}
		if capture != !pos.Board.IsEmpty(m.To) {
			continue
		}
		found = m
		matches++
	}
	return found, matches == 1
}

func normaliseSAN(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimRight(s, "+#!?")
	switch s {
	case "0-0", "o-o":
		return "O-O"
	case "0-0-0", "o-o-o":
		return "O-O-O"
	}
	return s
}

func containsMove(moves []chess.Move, move chess.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}

// sanBody renders a move without its check suffix. legal must be the legal
// moves of pos; it is used for disambiguation.
func sanBody(pos chess.Position, m chess.Move, legal []chess.Move) string {
	switch m.Class {
	case chess.CastleKingSide:
		return "O-O"
	case chess.CastleQueenSide:
		return "O-O-O"
	}

	piece := pos.Board.Get(m.From)
	capture := m.Class == chess.EnPassantCapture || !pos.Board.IsEmpty(m.To)

	var sb strings.Builder
	if piece.Kind() == chess.Pawn {
		if capture {
			sb.WriteByte(m.From.String()[0])
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
		return sb.String()
	}

	sb.WriteByte(piece.Kind().Letter())
	sb.WriteString(disambiguation(pos, m, legal))
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// disambiguation returns the file, rank, or full square of m.From needed to
// tell m apart from other moves of the same piece kind to the same square.
func disambiguation(pos chess.Position, m chess.Move, legal []chess.Move) string {
	kind := pos.Board.Get(m.From).Kind()
	ambiguous, sameFile, sameRank := false, false, false

	for _, other := range legal {
		if other.To != m.To || other.From == m.From || pos.Board.Get(other.From).Kind() != kind {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	from := m.From.String()
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return from[:1]
	case !sameRank:
		return from[1:]
	default:
		return from
	}
}

func checkSuffix(pos chess.Position, m chess.Move) string {
	next := makeMove(pos, m)
	if !IsInCheck(&next.Board, next.ToMove) {
		return ""
	}
	if HasLegalMoves(next) {
		return "+"
	}
	return "#"
}
