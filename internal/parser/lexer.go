package parser

import (
	"bufio"
	"io"
	"strings"
)

// Lexer tokenizes movetext.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum uint
	eof     bool
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	// Initialize all to error
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	// Whitespace
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	chTab['{'] = CommentStart
	chTab[';'] = LineComment
	chTab['$'] = NAGToken
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['*'] = Star

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}

	initMoveChars()
}

// initMoveChars initializes the move character classification table.
func initMoveChars() {
	// Files (a-h) and ranks (1-8)
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}

	// Piece letters, upper case for SAN and lower case for UCI promotions
	for _, c := range []byte("KQRBNqrbn") {
		moveChars[c] = true
	}

	// Captures, promotion and castling
	for _, c := range []byte("x=Oo0-") {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input. A line starting with '%' is an
// escaped line and is skipped entirely.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	text, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if text == "" {
			return false
		}
	}
	l.lineNum++
	l.line = text
	l.pos = 0
	if strings.HasPrefix(l.line, "%") {
		l.line = ""
	}
	return true
}

// NextToken returns the next token. At the end of input it returns an
// EOFToken, repeatedly.
func (l *Lexer) NextToken() *Token {
	for {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				return &Token{Type: EOFToken, Line: l.lineNum, Column: uint(l.pos) + 1}
			}
			continue
		}

		c := l.line[l.pos]
		switch chTab[c] {
		case Whitespace:
			l.pos++
		case CommentStart:
			return l.readComment()
		case LineComment:
			tok := l.token(CommentToken)
			tok.Text = strings.TrimSpace(l.line[l.pos+1:])
			l.pos = len(l.line)
			return tok
		case NAGToken:
			return l.readNAG()
		case RAVStart, RAVEnd:
			tok := l.token(chTab[c])
			tok.Text = string(c)
			l.pos++
			return tok
		case Star:
			tok := l.token(TerminatingResult)
			tok.Text = "*"
			l.pos++
			return tok
		case Digit:
			return l.readNumber()
		case Alpha:
			return l.readMove()
		default:
			tok := l.token(ErrorToken)
			tok.Text = string(c)
			l.pos++
			return tok
		}
	}
}

func (l *Lexer) token(t TokenType) *Token {
	return &Token{Type: t, Line: l.lineNum, Column: uint(l.pos) + 1}
}

// readComment reads a brace comment, which may span lines. An unterminated
// comment yields an ErrorToken.
func (l *Lexer) readComment() *Token {
	tok := l.token(CommentToken)
	l.pos++ // Skip '{'

	var parts []string
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			parts = append(parts, strings.TrimSpace(l.line[l.pos:l.pos+end]))
			l.pos += end + 1
			break
		}
		parts = append(parts, strings.TrimSpace(l.line[l.pos:]))
		if !l.readLine() {
			tok.Type = ErrorToken
			tok.Text = "{"
			return tok
		}
	}
	tok.Text = strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	return tok
}

// readNAG reads a numeric annotation glyph such as "$1".
func (l *Lexer) readNAG() *Token {
	tok := l.token(NAGToken)
	start := l.pos
	l.pos++ // Skip '$'
	for l.pos < len(l.line) && chTab[l.line[l.pos]] == Digit {
		l.pos++
	}
	tok.Text = l.line[start:l.pos]
	if len(tok.Text) == 1 {
		tok.Type = ErrorToken
	}
	return tok
}

// readNumber reads a result, a move number with its dots, or castling
// written with zeros.
func (l *Lexer) readNumber() *Token {
	rest := l.line[l.pos:]
	for _, r := range results {
		if strings.HasPrefix(rest, r) && !l.continuesMove(len(r)) {
			tok := l.token(TerminatingResult)
			tok.Text = r
			l.pos += len(r)
			return tok
		}
	}
	if strings.HasPrefix(rest, "0-0") {
		return l.readMove()
	}

	tok := l.token(MoveNumber)
	start := l.pos
	for l.pos < len(l.line) && chTab[l.line[l.pos]] == Digit {
		tok.MoveNum = tok.MoveNum*10 + uint(l.line[l.pos]-'0')
		l.pos++
	}
	for l.pos < len(l.line) && l.line[l.pos] == '.' {
		l.pos++
	}
	tok.Text = l.line[start:l.pos]
	return tok
}

// continuesMove reports whether the character n bytes ahead extends a move.
func (l *Lexer) continuesMove(n int) bool {
	i := l.pos + n
	return i < len(l.line) && moveChars[l.line[i]]
}

// readMove reads a SAN or UCI move together with any trailing check marks
// and annotation glyphs.
func (l *Lexer) readMove() *Token {
	tok := l.token(MoveToken)
	start := l.pos
	for l.pos < len(l.line) && moveChars[l.line[l.pos]] {
		l.pos++
	}
	if l.pos == start {
		// A letter that cannot start a move; consume the whole word.
		for l.pos < len(l.line) && chTab[l.line[l.pos]] == Alpha {
			l.pos++
		}
		tok.Type = ErrorToken
		tok.Text = l.line[start:l.pos]
		return tok
	}
	for l.pos < len(l.line) && strings.IndexByte("+#!?", l.line[l.pos]) >= 0 {
		l.pos++
	}
	tok.Text = l.line[start:l.pos]
	return tok
}
