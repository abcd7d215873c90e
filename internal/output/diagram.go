package output

import (
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore/internal/chess"
)

// DiagramOptions controls Diagram rendering.
type DiagramOptions struct {
	// Colour paints squares and pieces with ANSI colours.
	Colour bool

	// Flipped draws the board from Black's side.
	Flipped bool
}

// Square and piece attributes for coloured diagrams.
var (
	lightSquare = color.BgHiWhite
	darkSquare  = color.BgGreen
	whitePiece  = color.FgHiBlue
	blackPiece  = color.FgBlack
)

// Diagram renders the board as text, rank 8 at the top unless flipped,
// with rank numbers on the left and file letters underneath.
func Diagram(pos chess.Position, opts DiagramOptions) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		if opts.Flipped {
			rank = row
		}
		sb.WriteByte(byte(chess.RankBase + rank))
		sb.WriteByte(' ')
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if opts.Flipped {
				file = chess.BoardSize - 1 - col
			}
			sq := chess.NewSquare(file, rank)
			if opts.Colour {
				sb.WriteString(colouredSquare(sq, pos.Board.Get(sq)))
				continue
			}
			sb.WriteByte(pos.Board.Get(sq).Letter())
			if col < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		file := col
		if opts.Flipped {
			file = chess.BoardSize - 1 - col
		}
		if opts.Colour {
			sb.WriteByte(' ')
			sb.WriteByte(byte(chess.FileBase + file))
			sb.WriteByte(' ')
			continue
		}
		sb.WriteByte(byte(chess.FileBase + file))
		if col < chess.BoardSize-1 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// colouredSquare renders one three-character square with ANSI colours
// regardless of whether stdout is a terminal.
func colouredSquare(sq chess.Square, p chess.Piece) string {
	attrs := []color.Attribute{darkSquare}
	if sq.IsLight() {
		attrs[0] = lightSquare
	}
	text := "   "
	if p != chess.NoPiece {
		text = " " + string(p.Kind().Letter()) + " "
		if p.Colour() == chess.White {
			attrs = append(attrs, whitePiece, color.Bold)
		} else {
			attrs = append(attrs, blackPiece, color.Bold)
		}
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}
