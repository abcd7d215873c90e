package config

// OutputFormat selects how reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable lines and diagrams
	JSON                     // One JSON document per report
)

// MoveNotation selects how moves are written in reports.
type MoveNotation int

const (
	SAN MoveNotation = iota // Standard Algebraic Notation (Nf3)
	UCI                     // Long algebraic as used by UCI (g1f3)
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON output
	Format OutputFormat

	// Notation specifies how legal moves are listed in text output
	Notation MoveNotation

	// ShowBoard prints a diagram of the position
	ShowBoard bool

	// ShowMoves lists the legal moves
	ShowMoves bool

	// ShowStatus prints the game status
	ShowStatus bool

	// Colour enables ANSI colours in diagrams
	Colour bool

	// Flipped draws diagrams from Black's side
	Flipped bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     Text,
		Notation:   SAN,
		ShowStatus: true,
	}
}
