package engine

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of pos to the given
// depth. Depth 0 counts the position itself.
func Perft(pos chess.Position, depth int) uint64 {
	return perft(pos, depth, nil)
}

func perft(pos chess.Position, depth int, cache *hashing.PerftCache) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	if cache != nil {
		if nodes, ok := cache.Lookup(pos, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range moves {
		nodes += perft(makeMove(pos, m), depth-1, cache)
	}

	if cache != nil {
		cache.Store(pos, depth, nodes)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move's UCI text. The values sum to Perft(pos, depth).
func PerftDivide(pos chess.Position, depth int) map[string]uint64 {
	divide := make(map[string]uint64)
	if depth <= 0 {
		return divide
	}
	for _, m := range LegalMoves(pos) {
		divide[m.String()] = Perft(makeMove(pos, m), depth-1)
	}
	return divide
}

// PerftOptions configures ParallelPerft.
type PerftOptions struct {
	// Workers is the number of goroutines; 0 means runtime.NumCPU().
	Workers int

	// Cache memoises subtree counts across workers. May be nil.
	Cache *hashing.PerftCache
}

// MoveCount is the node count below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// PerftResult is the outcome of ParallelPerft.
type PerftResult struct {
	Nodes   uint64
	Moves   []MoveCount // In LegalMoves order
	Workers int         // Goroutines actually used
}

// Divide returns the per-move counts keyed by UCI text, matching
// PerftDivide.
func (r PerftResult) Divide() map[string]uint64 {
	divide := make(map[string]uint64, len(r.Moves))
	for _, mc := range r.Moves {
		divide[mc.Move.String()] = mc.Nodes
	}
	return divide
}

// ParallelPerft computes the same count as Perft, searching each root move
// on its own worker.
func ParallelPerft(pos chess.Position, depth int, opts PerftOptions) (PerftResult, error) {
	if depth <= 0 {
		return PerftResult{Nodes: 1}, nil
	}

	roots := LegalMoves(pos)
	items := make([]worker.WorkItem, len(roots))
	for i, m := range roots {
		items[i] = worker.WorkItem{
			Position: makeMove(pos, m),
			Move:     m,
			Depth:    depth - 1,
			Index:    i,
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool := worker.NewPool(perftProcessFunc(opts.Cache),
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(items)+1))

	result := PerftResult{Workers: pool.NumWorkers()}
	for _, r := range pool.Run(items) {
		if r.Error != nil {
			return PerftResult{}, r.Error
		}
		result.Nodes += r.Nodes
		result.Moves = append(result.Moves, MoveCount{Move: r.Move, Nodes: r.Nodes})
	}
	return result, nil
}

func perftProcessFunc(cache *hashing.PerftCache) worker.ProcessFunc {
	return func(item worker.WorkItem) (result worker.ProcessResult) {
		result = worker.ProcessResult{Index: item.Index, Move: item.Move}
		defer func() {
			if r := recover(); r != nil {
				result.Error = fmt.Errorf("perft below %v: %v", item.Move, r)
			}
		}()
		result.Nodes = perft(item.Position, item.Depth, cache)
		return result
	}
}
