package parser

import "fmt"

// LexError reports a character-level failure: an unrecognized character,
// an invalid numeric literal, or an unterminated text literal.
type LexError struct {
	Line, Col int
	Msg       string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

// ParseError reports a structural failure: an unmatched block, a malformed
// statement header, or invalid push content.
type ParseError struct {
	Line, Col int
	Msg       string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, col %d: %s", e.Line, e.Col, e.Msg)
}
