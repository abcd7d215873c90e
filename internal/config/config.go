// Package config provides configuration for the chesscore command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // summary lines
	Verbose = 2 // running commentary
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 10

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=running commentary

	// FEN is the position to start from.
	FEN string

	// Play lists UCI or SAN moves applied to FEN before reporting.
	Play []string

	Output *OutputConfig
	Perft  *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		FEN:        InitialFEN,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// InitialFEN is the standard starting position. It is duplicated here so
// config does not depend on the engine.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Validate reports the first invalid setting as an error wrapping
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.FEN == "" {
		return invalid("FEN must not be empty")
	}
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return invalid("verbosity %d out of range %d-%d", c.Verbosity, Quiet, Verbose)
	}
	if c.Perft.Depth < 0 || c.Perft.Depth > MaxPerftDepth {
		return invalid("perft depth %d out of range 0-%d", c.Perft.Depth, MaxPerftDepth)
	}
	if c.Perft.Workers < 0 {
		return invalid("workers must not be negative, got %d", c.Perft.Workers)
	}
	if c.Perft.CacheCapacity < 0 {
		return invalid("cache capacity must not be negative, got %d", c.Perft.CacheCapacity)
	}
	if c.Perft.Divide && c.Perft.Depth == 0 {
		return invalid("divide requires a perft depth")
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return invalid("output and log writers must be set")
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrap(errors.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
