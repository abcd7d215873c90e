package config

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate; 0 disables perft
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Workers is the number of goroutines; 0 means one per CPU
	Workers int

	// UseCache memoises subtree counts by Zobrist key
	UseCache bool

	// CacheCapacity bounds the number of cached entries; 0 is unlimited
	CacheCapacity int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		UseCache:      true,
		CacheCapacity: 1 << 20,
	}
}
