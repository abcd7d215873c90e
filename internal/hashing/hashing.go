// Package hashing provides Zobrist position keys and position tables built
// on them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Zobrist tables for pieces, castling, en passant and side to move.
var (
	zobristPiece     [16][chess.NumSquares]uint64 // indexed by packed chess.Piece
	zobristCastle    [16]uint64                   // indexed by castlingIndex
	zobristEnPassant [chess.BoardSize]uint64      // indexed by file
	zobristSide      uint64                       // XORed in when Black is to move
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so keys are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// castlingIndex packs castling rights into 0-15.
func castlingIndex(c chess.CastlingRights) int {
	idx := 0
	if c.WhiteKingSide {
		idx |= 1
	}
	if c.WhiteQueenSide {
		idx |= 2
	}
	if c.BlackKingSide {
		idx |= 4
	}
	if c.BlackQueenSide {
		idx |= 8
	}
	return idx
}

// Zobrist calculates the Zobrist key of a position.
// The clocks are not part of the key: positions differing only in
// half-move or full-move counters hash equal.
func Zobrist(pos chess.Position) uint64 {
	var key uint64

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p := pos.Board.Get(sq); p != chess.NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if pos.ToMove == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[castlingIndex(pos.Castling)]
	if pos.EnPassant != chess.NoSquare {
		key ^= zobristEnPassant[pos.EnPassant.File()]
	}

	return key
}

// PositionCounter counts how often each position has been seen, keyed by
// Zobrist hash. It is used for repetition detection along a line of play.
// It is not safe for concurrent use.
type PositionCounter struct {
	counts map[uint64]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records one occurrence of pos and returns its new count.
func (c *PositionCounter) Add(pos chess.Position) int {
	key := Zobrist(pos)
	c.counts[key]++
	return c.counts[key]
}

// Remove forgets one occurrence of pos, as when a move is taken back.
func (c *PositionCounter) Remove(pos chess.Position) {
	key := Zobrist(pos)
	if c.counts[key] <= 1 {
		delete(c.counts, key)
		return
	}
	c.counts[key]--
}

// Count returns how often pos has been recorded.
func (c *PositionCounter) Count(pos chess.Position) int {
	return c.counts[Zobrist(pos)]
}

// UniqueCount returns the number of distinct positions recorded.
func (c *PositionCounter) UniqueCount() int {
	return len(c.counts)
}

// Reset clears the counter.
func (c *PositionCounter) Reset() {
	c.counts = make(map[uint64]int)
}
