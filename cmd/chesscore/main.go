// chesscore reports on chess positions: legal moves, game status and perft
// counts for a FEN, optionally after playing a sequence of moves.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/parser"
	"github.com/lgbarn/chesscore/internal/processing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	loadPlayFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run decodes the configured position, plays the configured moves and
// writes the requested reports.
func run(cfg *config.Config) error {
	start, err := engine.DecodeFEN(cfg.FEN)
	if err != nil {
		return err
	}

	line, mt, err := playMoves(cfg, start)
	if err != nil {
		return err
	}
	pos := line.Current()

	w := output.NewReportWriter(cfg.OutputFile, cfg)

	report, err := output.NewPositionReport(pos)
	if err != nil {
		return err
	}
	if err := describeLine(cfg, report, line, mt); err != nil {
		return err
	}
	if cfg.Output.ShowBoard {
		report.Diagram = output.Diagram(pos, output.DiagramOptions{
			Colour:  cfg.Output.Colour && cfg.Output.Format == config.Text,
			Flipped: cfg.Output.Flipped,
		})
	}
	if err := w.WritePosition(report); err != nil {
		return err
	}

	if cfg.Perft.Depth > 0 {
		perft, err := runPerft(cfg, pos)
		if err != nil {
			return err
		}
		if err := w.WritePerft(perft); err != nil {
			return err
		}
	}

	return w.Close()
}

// playMoves reads cfg.Play as movetext and replays it from start. Each move
// may be UCI or SAN; move numbers, comments and variations are allowed.
func playMoves(cfg *config.Config, start chess.Position) (*engine.Line, *parser.Movetext, error) {
	mt, err := parser.ParseMovetext(strings.Join(cfg.Play, " "))
	if err != nil {
		return nil, nil, err
	}
	line, err := processing.Replay(start, mt.Moves)
	if err != nil {
		return nil, nil, err
	}
	for i, m := range line.Moves() {
		cfg.Logf(config.Verbose, "%d. %s -> %s", i+1, m, engine.EncodeFEN(line.PositionAt(i+1)))
	}
	return line, mt, nil
}

// describeLine adds the played moves and line analysis to report, and logs
// a movetext result that disagrees with the final position.
func describeLine(cfg *config.Config, report *output.PositionReport, line *engine.Line, mt *parser.Movetext) error {
	if line.Ply() == 0 {
		return nil
	}
	played, err := processing.SANMoves(line)
	if err != nil {
		return err
	}
	report.Played = played
	report.Notes = processing.AnalyzeLine(line).Notes()

	if mt.Result != "" && mt.Result != "*" && report.Result != "*" && mt.Result != report.Result {
		cfg.Logf(config.Normal, "movetext result %s disagrees with final position (%s)", mt.Result, report.Status)
	}
	return nil
}

// runPerft counts move paths from pos in parallel.
func runPerft(cfg *config.Config, pos chess.Position) (*output.PerftReport, error) {
	var cache *hashing.PerftCache
	if cfg.Perft.UseCache {
		cache = hashing.NewPerftCache(cfg.Perft.CacheCapacity)
	}

	began := time.Now()
	result, err := engine.ParallelPerft(pos, cfg.Perft.Depth, engine.PerftOptions{
		Workers: cfg.Perft.Workers,
		Cache:   cache,
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(began)

	report := &output.PerftReport{
		FEN:     engine.EncodeFEN(pos),
		Depth:   cfg.Perft.Depth,
		Nodes:   result.Nodes,
		Workers: result.Workers,
	}
	if cfg.Perft.Divide {
		report.Divide = output.NewDivideLines(result.Divide())
	}
	if cache != nil {
		report.CacheHits = cache.Hits()
		cfg.Logf(config.Verbose, "perft cache: %d entries, %d hits", cache.Len(), cache.Hits())
	}
	cfg.Logf(config.Normal, "perft(%d) = %d in %v", cfg.Perft.Depth, result.Nodes, elapsed.Round(time.Millisecond))
	return report, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// loadPlayFile appends the movetext of the -playfile flag to cfg.Play.
func loadPlayFile(cfg *config.Config) {
	if *playFile == "" {
		return
	}
	data, err := os.ReadFile(*playFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading move file %s: %v\n", *playFile, err)
		os.Exit(1)
	}
	cfg.Play = append(cfg.Play, string(data))
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Reports legal moves, game status and perft counts for a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chesscore -moves -board\n")
	fmt.Fprintf(os.Stderr, "  chesscore -play 'e4 e5 Nf3' -moves -uci\n")
	fmt.Fprintf(os.Stderr, "  chesscore -playfile game.txt -board\n")
	fmt.Fprintf(os.Stderr, "  chesscore -fen '<fen>' -perft 5 -divide\n")
}
