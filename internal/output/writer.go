// Package output writes position and perft reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WritePosition writes a position report.
	WritePosition(r *PositionReport) error

	// WritePerft writes a perft report.
	WritePerft(r *PerftReport) error

	// Close writes any pending output.
	Close() error
}

// NewReportWriter returns the writer selected by cfg.Output.Format.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output)
}

// TextWriter writes reports as human-readable lines.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes the sections enabled in the output config.
func (tw *TextWriter) WritePosition(r *PositionReport) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "FEN: %s\n", r.FEN)
	if tw.cfg.ShowBoard && r.Diagram != "" {
		sb.WriteString(r.Diagram)
	}
	if len(r.Played) > 0 {
		fmt.Fprintf(&sb, "Played: %s\n", strings.Join(r.Played, " "))
	}
	if tw.cfg.ShowStatus {
		fmt.Fprintf(&sb, "Side to move: %s\n", r.SideToMove)
		check := ""
		if r.InCheck {
			check = " (in check)"
		}
		fmt.Fprintf(&sb, "Status: %s%s\n", r.Status, check)
		if len(r.Notes) > 0 {
			fmt.Fprintf(&sb, "Notes: %s\n", strings.Join(r.Notes, ", "))
		}
	}
	if tw.cfg.ShowMoves {
		moves := make([]string, len(r.LegalMoves))
		for i, m := range r.LegalMoves {
			if tw.cfg.Notation == config.UCI {
				moves[i] = m.UCI
			} else {
				moves[i] = m.SAN
			}
		}
		fmt.Fprintf(&sb, "Legal moves (%d): %s\n", len(moves), strings.Join(moves, " "))
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WritePerft writes divide lines, if any, followed by the node total.
func (tw *TextWriter) WritePerft(r *PerftReport) error {
	var sb strings.Builder
	for _, line := range r.Divide {
		fmt.Fprintf(&sb, "%s: %d\n", line.Move, line.Nodes)
	}
	if len(r.Divide) > 0 {
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Nodes searched (depth %d): %d\n", r.Depth, r.Nodes)

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers reports and writes them as one JSON document on Close.
type JSONWriter struct {
	w      io.Writer
	output JSONOutput
}

// JSONOutput is the document written by JSONWriter.
type JSONOutput struct {
	Positions []*PositionReport `json:"positions,omitempty"`
	Perft     []*PerftReport    `json:"perft,omitempty"`
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WritePosition buffers a position report.
func (jw *JSONWriter) WritePosition(r *PositionReport) error {
	jw.output.Positions = append(jw.output.Positions, r)
	return nil
}

// WritePerft buffers a perft report.
func (jw *JSONWriter) WritePerft(r *PerftReport) error {
	jw.output.Perft = append(jw.output.Perft, r)
	return nil
}

// Close writes all buffered reports.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&jw.output)
	jw.output = JSONOutput{}
	return err
}
