package parser

import (
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Movetext is the main line of a parsed move list. Variations are checked
// for balance and then skipped.
type Movetext struct {
	Moves    []string // Move text in playing order, check marks included
	Comments []string // Main-line comments in order of appearance
	Result   string   // "1-0", "0-1", "1/2-1/2", "*" or "" when absent
}

// Parser reads movetext from a token stream.
type Parser struct {
	lexer    *Lexer
	ravLevel int
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// ParseMovetext parses text as movetext.
func ParseMovetext(text string) (*Movetext, error) {
	return NewParser(strings.NewReader(text)).Parse()
}

// Parse reads all input. Errors wrap errors.ErrInvalidMovetext and name the
// line and column of the offending token.
func (p *Parser) Parse() (*Movetext, error) {
	mt := &Movetext{}

	for {
		tok := p.lexer.NextToken()
		switch tok.Type {
		case EOFToken:
			if p.ravLevel > 0 {
				return nil, syntaxError(tok, "unclosed variation")
			}
			return mt, nil

		case MoveToken:
			if mt.Result != "" {
				return nil, syntaxError(tok, "move after result")
			}
			if p.ravLevel == 0 {
				mt.Moves = append(mt.Moves, tok.Text)
			}

		case CommentToken:
			if p.ravLevel == 0 && tok.Text != "" {
				mt.Comments = append(mt.Comments, tok.Text)
			}

		case MoveNumber, NAGToken:
			// Ignored

		case RAVStart:
			if p.ravLevel == 0 && len(mt.Moves) == 0 {
				return nil, syntaxError(tok, "variation before first move")
			}
			p.ravLevel++

		case RAVEnd:
			if p.ravLevel == 0 {
				return nil, syntaxError(tok, "unmatched ')'")
			}
			p.ravLevel--

		case TerminatingResult:
			if p.ravLevel > 0 {
				// Results inside variations are tolerated.
				continue
			}
			if mt.Result != "" {
				return nil, syntaxError(tok, "second result")
			}
			mt.Result = tok.Text

		default:
			if tok.Text == "{" {
				return nil, syntaxError(tok, "unterminated comment")
			}
			return nil, syntaxError(tok, "unexpected "+strconv.Quote(tok.Text))
		}
	}
}

func syntaxError(tok *Token, reason string) error {
	return errors.Wrapf(errors.ErrInvalidMovetext, "line %d column %d: %s", tok.Line, tok.Column, reason)
}
