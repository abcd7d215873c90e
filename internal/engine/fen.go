// Package engine provides chess move generation, move application and
// game-status rules over immutable positions.
package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names used in DecodeError.Field.
const (
	FieldPlacement = "placement"
	FieldSide      = "side"
	FieldCastling  = "castling"
	FieldEnPassant = "enpassant"
	FieldHalfmove  = "halfmove"
	FieldFullmove  = "fullmove"
)

// numFENFields is the number of space-separated fields in a FEN string.
const numFENFields = 6

// DecodeFEN parses a FEN string into a position.
// Any malformed field yields a *errors.DecodeError and a zero Position.
func DecodeFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != numFENFields {
		return chess.Position{}, &errors.DecodeError{
			Field:  "fen",
			Value:  fen,
			Reason: "expected " + strconv.Itoa(numFENFields) + " fields, got " + strconv.Itoa(len(parts)),
		}
	}

	var pos chess.Position
	var err error

	if pos.Board, err = parsePlacement(parts[0]); err != nil {
		return chess.Position{}, err
	}
	if pos.ToMove, err = parseSideToMove(parts[1]); err != nil {
		return chess.Position{}, err
	}
	if pos.Castling, err = parseCastlingRights(parts[2]); err != nil {
		return chess.Position{}, err
	}
	if pos.EnPassant, err = parseEnPassant(parts[3]); err != nil {
		return chess.Position{}, err
	}
	if pos.HalfmoveClock, err = parseCounter(FieldHalfmove, parts[4]); err != nil {
		return chess.Position{}, err
	}
	if pos.FullmoveNumber, err = parseCounter(FieldFullmove, parts[5]); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustDecodeFEN is like DecodeFEN but panics on error.
// It is intended for compile-time constants and tests.
func MustDecodeFEN(fen string) chess.Position {
	pos, err := DecodeFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() chess.Position {
	return chess.NewInitialPosition()
}

// parsePlacement parses the piece placement field of a FEN string.
func parsePlacement(placement string) (chess.Board, error) {
	var board chess.Board

	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return board, &errors.DecodeError{
			Field:  FieldPlacement,
			Value:  placement,
			Reason: "expected 8 ranks, got " + strconv.Itoa(len(ranks)),
		}
	}

	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					return board, placementError(placement, "invalid piece character "+strconv.QuoteRune(rune(c)))
				}
				if file >= chess.BoardSize {
					return board, placementError(placement, "rank "+strconv.Itoa(rank+1)+" has more than 8 files")
				}
				board.Set(chess.NewSquare(file, rank), piece)
				file++
			}
			if file > chess.BoardSize {
				return board, placementError(placement, "rank "+strconv.Itoa(rank+1)+" has more than 8 files")
			}
		}
		if file != chess.BoardSize {
			return board, placementError(placement, "rank "+strconv.Itoa(rank+1)+" has "+strconv.Itoa(file)+" files")
		}
	}
	return board, nil
}

func placementError(value, reason string) error {
	return &errors.DecodeError{Field: FieldPlacement, Value: value, Reason: reason}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(side string) (chess.Colour, error) {
	switch side {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, &errors.DecodeError{Field: FieldSide, Value: side, Reason: "must be w or b"}
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if field == "-" {
		return rights, nil
	}

	seen := make(map[rune]bool, 4)
	for _, c := range field {
		if seen[c] {
			return rights, &errors.DecodeError{Field: FieldCastling, Value: field, Reason: "repeated " + strconv.QuoteRune(c)}
		}
		seen[c] = true
		switch c {
		case 'K':
			rights.WhiteKingSide = true
		case 'Q':
			rights.WhiteQueenSide = true
		case 'k':
			rights.BlackKingSide = true
		case 'q':
			rights.BlackQueenSide = true
		default:
			return rights, &errors.DecodeError{Field: FieldCastling, Value: field, Reason: "unexpected character " + strconv.QuoteRune(c)}
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(field string) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.NoSquare, &errors.DecodeError{Field: FieldEnPassant, Value: field, Reason: "not a square"}
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return chess.NoSquare, &errors.DecodeError{Field: FieldEnPassant, Value: field, Reason: "must be on rank 3 or 6"}
	}
	return sq, nil
}

// parseCounter parses a non-negative decimal clock field.
func parseCounter(field, value string) (uint, error) {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, &errors.DecodeError{Field: field, Value: value, Reason: "not a non-negative integer"}
		}
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, &errors.DecodeError{Field: field, Value: value, Reason: "out of range"}
	}
	return uint(n), nil
}

// EncodeFEN converts a position to a FEN string.
func EncodeFEN(pos chess.Position) string {
	var sb strings.Builder

	writePlacement(&sb, &pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos.ToMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos.Castling)
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(pos.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(pos.FullmoveNumber), 10))

	return sb.String()
}

// writePlacement writes the piece placement to the builder.
func writePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if rights.None() {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingSide {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if rights.BlackKingSide {
		sb.WriteByte('k')
	}
	if rights.BlackQueenSide {
		sb.WriteByte('q')
	}
}
