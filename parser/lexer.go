package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Ensure EOF is defined
const eof = 0

// Lexer turns Ampell source text into tokens. It is pull-based: the parser
// calls Lex repeatedly, and semantic payloads travel in the SymType the
// caller passes in. The only lexing state beyond positions is whether we are
// inside push brackets, where bare names become VAR_REF instead of
// IDENTIFIER and numeric/text literals are legal.
type Lexer struct {
	lookaheadRunes  []rune
	lookaheadWidths []int
	reader          *bufio.Reader
	buf             bytes.Buffer // Temporary buffer for scanned text
	pos             int          // Current byte offset from the beginning of the input
	lastError       error

	// Position tracking for the current token
	tokenStartPos  int    // Byte offset where the current token started
	tokenStartLine int    // Line number (1-based) where the current token started
	tokenStartCol  int    // Column number (rune-based, 1-based) where the current token started
	tokenText      string // Raw text of the current token

	// Current line and column (rune-based) in the input
	line int
	col  int

	afterPush bool // the token just emitted was PUSH
	inPush    bool // between the '[' and ']' of a push form
}

// NewLexer creates a new lexer instance
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		pos:    0,
		line:   1,
		col:    1,
	}
}

// Error is called by the parser on a structural error. The failure is
// recorded against the most recently lexed token's position. The first
// recorded error wins, so a lex failure is never masked by the parse error
// it cascades into.
func (l *Lexer) Error(s string) {
	if l.lastError == nil {
		l.lastError = &ParseError{Line: l.tokenStartLine, Col: l.tokenStartCol, Msg: s}
	}
}

// errorf records a character-level lexing failure at the current position.
func (l *Lexer) errorf(format string, args ...any) {
	if l.lastError == nil {
		l.lastError = &LexError{Line: l.line, Col: l.col, Msg: fmt.Sprintf(format, args...)}
	}
}

// LastError returns the first error the lexer (or the parser, via Error)
// recorded, if any.
func (l *Lexer) LastError() error {
	return l.lastError
}

// Pos returns the start byte offset of the most recently lexed token.
func (l *Lexer) Pos() int {
	return l.tokenStartPos
}

// End returns the end byte offset (current position) after lexing the most recent token.
func (l *Lexer) End() int {
	return l.pos
}

// Text returns the raw text of the most recently lexed token.
func (l *Lexer) Text() string {
	return l.tokenText
}

// Position returns the line and column where the most recent token started.
func (l *Lexer) Position() (line, col int) {
	return l.tokenStartLine, l.tokenStartCol
}

// --- Rune Reading Helpers (with line/col tracking) ---

func (l *Lexer) read() (r rune, width int) {
	if l.peek() == eof {
		return eof, 0
	}
	r, width = l.lookaheadRunes[0], l.lookaheadWidths[0]
	l.lookaheadRunes, l.lookaheadWidths = l.lookaheadRunes[1:], l.lookaheadWidths[1:]
	l.updatePosition(r, width)
	return r, width
}

func (l *Lexer) updatePosition(r rune, width int) {
	l.pos += width
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) peek() rune {
	if len(l.lookaheadRunes) == 0 {
		r, width, err := l.reader.ReadRune()
		if err != nil {
			return eof
		}
		l.lookaheadRunes = []rune{r}
		l.lookaheadWidths = []int{width}
	}
	return l.lookaheadRunes[0]
}

func (l *Lexer) peekN(nthchar int) rune {
	l.ensureLookAhead(nthchar + 1)
	if nthchar >= len(l.lookaheadRunes) {
		return eof
	}
	return l.lookaheadRunes[nthchar]
}

func (l *Lexer) ensureLookAhead(numchars int) int {
	for len(l.lookaheadRunes) < numchars {
		r, width, err := l.reader.ReadRune()
		if err != nil {
			break
		}
		l.lookaheadRunes = append(l.lookaheadRunes, r)
		l.lookaheadWidths = append(l.lookaheadWidths, width)
	}
	return len(l.lookaheadRunes)
}

// --- Scanning Functions ---

func (l *Lexer) skipWhitespace() bool {
	for {
		r := l.peek()
		if r == eof {
			return true
		}
		if unicode.IsSpace(r) {
			l.read()
		} else if r == '#' {
			// Comment to end of line
			for {
				r := l.peek()
				if r == eof {
					return true
				}
				if r == '\n' {
					break
				}
				l.read()
			}
		} else {
			return false
		}
	}
}

// scanIdentifier scans a name: a leading letter or underscore followed by
// letters, digits and underscores. Returns "" when the next rune cannot
// start a name, so the bound-name forms (`>>`, `@`, `~`) reject names a
// push could never reference.
func (l *Lexer) scanIdentifier() string {
	if r := l.peek(); r == eof || !(unicode.IsLetter(r) || r == '_') {
		return ""
	}
	l.buf.Reset()
	for r := l.peek(); r != eof && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'); r = l.peek() {
		l.read()
		l.buf.WriteRune(r)
	}
	return l.buf.String()
}

// scanNumber scans an optionally signed numeric literal. The leading sign or
// digit has already been peeked, not consumed.
func (l *Lexer) scanNumber() (value float64, ok bool) {
	l.buf.Reset()
	if r := l.peek(); r == '+' || r == '-' {
		l.read()
		l.buf.WriteRune(r)
	}
	hasDigits := false
	hasDecimal := false
	for r := l.peek(); r != eof; r = l.peek() {
		if unicode.IsDigit(r) {
			l.read()
			l.buf.WriteRune(r)
			hasDigits = true
		} else if r == '.' && !hasDecimal {
			l.read()
			l.buf.WriteRune(r)
			hasDecimal = true
		} else {
			break
		}
	}
	text := l.buf.String()
	// Trailing identifier characters make the whole literal invalid rather
	// than splitting into a number followed by a name.
	if next := l.peek(); next != eof && (unicode.IsLetter(next) || next == '_' || next == '.') {
		l.errorf("invalid numeric literal starting with %q", text)
		return 0, false
	}
	if !hasDigits {
		l.errorf("invalid numeric literal %q", text)
		return 0, false
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		l.errorf("invalid numeric literal %q", text)
		return 0, false
	}
	return value, true
}

// scanString scans a quoted text literal. The opening quote has not been
// consumed yet. Returns ok=false on an unterminated literal.
func (l *Lexer) scanString() (content string, ok bool) {
	l.buf.Reset()
	l.read() // Consume opening '"'
	for {
		r, _ := l.read()
		if r == eof {
			l.errorf("unterminated text literal")
			return "", false
		}
		if r == '"' {
			return l.buf.String(), true
		}
		l.buf.WriteRune(r)
	}
}

// Lex is the main lexing function called by the parser. It returns the next
// token code and fills lval with the token's payload and position.
func (l *Lexer) Lex(lval *SymType) int {
	if l.skipWhitespace() {
		return eof
	}

	l.tokenStartPos = l.pos
	l.tokenStartLine = l.line
	l.tokenStartCol = l.col
	l.tokenText = ""

	r := l.peek()
	if r == eof {
		return eof
	}

	lval.pos = l.tokenStartPos
	lval.line = l.tokenStartLine
	lval.col = l.tokenStartCol

	wasAfterPush := l.afterPush
	l.afterPush = false

	emit := func(tok int, text string) int {
		l.tokenText = text
		lval.end = l.pos
		return tok
	}

	// Push content: a literal or a variable reference
	if l.inPush {
		if unicode.IsDigit(r) || ((r == '+' || r == '-') && unicode.IsDigit(l.peekN(1))) {
			value, ok := l.scanNumber()
			if !ok {
				return eof
			}
			lval.num = value
			return emit(NUMBER_LITERAL, l.buf.String())
		}
		if r == '"' {
			content, ok := l.scanString()
			if !ok {
				return eof
			}
			lval.sval = content
			return emit(TEXT_LITERAL, `"`+content+`"`)
		}
		if unicode.IsLetter(r) || r == '_' {
			name := l.scanIdentifier()
			lval.sval = name
			return emit(VAR_REF, name)
		}
		if r == ']' {
			l.read()
			l.inPush = false
			return emit(RBRACKET, "]")
		}
		l.errorf("invalid push content starting with %q", r)
		return eof
	}

	// Identifiers (function names in call position)
	if unicode.IsLetter(r) || r == '_' {
		name := l.scanIdentifier()
		lval.sval = name
		return emit(IDENTIFIER, name)
	}

	switch r {
	case '&':
		l.read()
		l.afterPush = true
		return emit(PUSH, "&")

	case '[':
		l.read()
		if wasAfterPush {
			l.inPush = true
		}
		return emit(LBRACKET, "[")

	case ']':
		l.read()
		return emit(RBRACKET, "]")

	case ':':
		l.read()
		return emit(COLON, ":")

	case '%':
		l.read()
		return emit(POP, "%")

	case '$':
		l.read()
		return emit(PRINT, "$")

	case '^':
		return l.lexAsk(lval)

	case '>':
		l.read()
		if l.peek() == '>' {
			l.read()
			name := l.scanIdentifier()
			if name == "" {
				l.errorf("expected variable name after '>>'")
				return eof
			}
			lval.name = name
			return emit(STORE, ">>"+name)
		}
		return emit(GT, ">")

	case '@':
		l.read()
		name := l.scanIdentifier()
		if name == "" {
			l.errorf("expected function name after '@'")
			return eof
		}
		lval.name = name
		return emit(FUNC_DEF, "@"+name)

	case '\\':
		return l.lexStackSwitch(lval)

	case '+':
		l.read()
		return emit(PLUS, "+")
	case '-', '−':
		l.read()
		return emit(MINUS, string(r))
	case '*', '×':
		l.read()
		return emit(MUL, string(r))
	case '/', '÷':
		l.read()
		return emit(DIV, string(r))

	case '=':
		l.read()
		return emit(EQ, "=")
	case '!':
		l.read()
		return emit(NEQ, "!")
	case '<':
		l.read()
		return emit(LT, "<")

	case '"':
		content, ok := l.scanString()
		if !ok {
			return eof
		}
		lval.sval = content
		return emit(TEXT_LITERAL, `"`+content+`"`)
	}

	l.errorf("unexpected character %q", r)
	return eof
}

// lexAsk scans the whole `^"prompt"~name` form as one token.
func (l *Lexer) lexAsk(lval *SymType) int {
	l.read() // consume '^'
	if l.peek() != '"' {
		l.errorf("expected quoted prompt after '^'")
		return eof
	}
	prompt, ok := l.scanString()
	if !ok {
		return eof
	}
	if l.peek() != '~' {
		l.errorf("expected '~' and a variable name after the prompt")
		return eof
	}
	l.read() // consume '~'
	name := l.scanIdentifier()
	if name == "" {
		l.errorf("expected variable name after '~'")
		return eof
	}
	lval.prompt = prompt
	lval.name = name
	l.tokenText = fmt.Sprintf("^%q~%s", prompt, name)
	lval.end = l.pos
	return ASK
}

// lexStackSwitch scans the whole `\[name]` form as one token. The bracketed
// name is trimmed; an empty name selects the default stack at evaluation.
func (l *Lexer) lexStackSwitch(lval *SymType) int {
	l.read() // consume '\'
	if l.peek() != '[' {
		l.errorf("expected '[' after '\\'")
		return eof
	}
	l.read()
	l.buf.Reset()
	for {
		r, _ := l.read()
		if r == eof {
			l.errorf("unterminated stack switch")
			return eof
		}
		if r == ']' {
			break
		}
		l.buf.WriteRune(r)
	}
	name := strings.TrimSpace(l.buf.String())
	lval.name = name
	l.tokenText = "\\[" + name + "]"
	lval.end = l.pos
	return STACK_SWITCH
}
