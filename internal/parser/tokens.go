// Package parser reads movetext: the move list of a game, as written in PGN
// with move numbers, comments, annotations and variations.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	MoveNumber
	MoveToken
	CommentToken
	NAGToken
	RAVStart
	RAVEnd
	TerminatingResult
	ErrorToken

	// Internal character classes used by the lexer
	Whitespace
	CommentStart
	LineComment
	Digit
	Alpha
	Star
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	MoveNumber:        "MOVE_NUMBER",
	MoveToken:         "MOVE",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR_TOKEN",
	Whitespace:        "WHITESPACE",
	CommentStart:      "COMMENT_START",
	LineComment:       "LINE_COMMENT",
	Digit:             "DIGIT",
	Alpha:             "ALPHA",
	Star:              "STAR",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is a lexical token with its position in the input.
type Token struct {
	Type TokenType

	// Text is the raw move, NAG, result or comment text
	Text string

	// MoveNum holds the number of a MoveNumber token
	MoveNum uint

	// Line and column for error reporting
	Line   uint
	Column uint
}

// Result tokens that end a movetext.
var results = []string{"1-0", "0-1", "1/2-1/2"}
