package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithPlay sets the moves applied before reporting.
func (b *ConfigBuilder) WithPlay(moves ...string) *ConfigBuilder {
	b.cfg.Play = moves
	return b
}

// WithPerft sets the perft depth and whether to divide by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithCache controls the perft subtree cache.
func (b *ConfigBuilder) WithCache(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Perft.UseCache = enabled
	b.cfg.Perft.CacheCapacity = capacity
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithNotation sets the move notation for text output.
func (b *ConfigBuilder) WithNotation(n MoveNotation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// WithReports selects which sections are written.
func (b *ConfigBuilder) WithReports(board, moves, status bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = board
	b.cfg.Output.ShowMoves = moves
	b.cfg.Output.ShowStatus = status
	return b
}

// WithColour enables coloured diagrams.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
