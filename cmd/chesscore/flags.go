// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chesscore/internal/config"
)

var (
	// Position options
	fenText  = flag.String("fen", config.InitialFEN, "Position to start from, in FEN")
	playText = flag.String("play", "", "Moves to play before reporting, UCI or SAN (e.g. '1. e4 e7e5 2. Nf3')")
	playFile = flag.String("playfile", "", "File containing movetext to play after -play")

	// Report options
	showMoves  = flag.Bool("moves", false, "List the legal moves")
	showStatus = flag.Bool("status", true, "Print side to move and game status")
	showBoard  = flag.Bool("board", false, "Print a diagram of the position")
	flipBoard  = flag.Bool("flip", false, "Draw the diagram from Black's side")
	colour     = flag.Bool("color", false, "Use ANSI colours in the diagram")
	uciMoves   = flag.Bool("uci", false, "List moves in UCI notation instead of SAN")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")

	// Perft options
	perftDepth    = flag.Int("perft", 0, "Count move paths to this depth (0 = off)")
	divide        = flag.Bool("divide", false, "Report the perft count below each root move")
	workers       = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	noCache       = flag.Bool("nocache", false, "Disable the perft transposition cache")
	cacheCapacity = flag.Int("cache-capacity", 1<<20, "Maximum perft cache entries (0 = unlimited)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file (default: stderr)")
	verbose    = flag.Bool("v", false, "Verbose diagnostics")
	quiet      = flag.Bool("s", false, "Silent mode (errors only)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.FEN = *fenText
	cfg.Play = strings.Fields(*playText)

	applyReportFlags(cfg)
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}

// applyReportFlags configures which sections are reported and how.
func applyReportFlags(cfg *config.Config) {
	cfg.Output.ShowMoves = *showMoves
	cfg.Output.ShowStatus = *showStatus
	cfg.Output.ShowBoard = *showBoard || *flipBoard
	cfg.Output.Colour = *colour
	cfg.Output.Flipped = *flipBoard

	if *uciMoves {
		cfg.Output.Notation = config.UCI
	} else {
		cfg.Output.Notation = config.SAN
	}
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.UseCache = !*noCache
	cfg.Perft.CacheCapacity = *cacheCapacity
}
