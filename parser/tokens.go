package parser

import "fmt"

// EOF marks end of input, for callers driving the lexer directly.
const EOF = 0

// Token codes returned by the lexer.
const (
	PUSH = iota + 1 // '&' push marker
	LBRACKET
	RBRACKET
	NUMBER_LITERAL
	TEXT_LITERAL
	VAR_REF // bare name inside push brackets
	IDENTIFIER
	COLON
	POP   // '%'
	PRINT // '$'
	STORE // '>>' plus bound name
	ASK   // '^"prompt"~name'
	PLUS
	MINUS
	MUL
	DIV
	EQ
	NEQ
	LT
	GT
	FUNC_DEF     // '@' plus name
	STACK_SWITCH // '\[name]'
)

var tokenNames = map[int]string{
	eof:            "EOF",
	PUSH:           "PUSH",
	LBRACKET:       "LBRACKET",
	RBRACKET:       "RBRACKET",
	NUMBER_LITERAL: "NUMBER_LITERAL",
	TEXT_LITERAL:   "TEXT_LITERAL",
	VAR_REF:        "VAR_REF",
	IDENTIFIER:     "IDENTIFIER",
	COLON:          "COLON",
	POP:            "POP",
	PRINT:          "PRINT",
	STORE:          "STORE",
	ASK:            "ASK",
	PLUS:           "PLUS",
	MINUS:          "MINUS",
	MUL:            "MUL",
	DIV:            "DIV",
	EQ:             "EQ",
	NEQ:            "NEQ",
	LT:             "LT",
	GT:             "GT",
	FUNC_DEF:       "FUNC_DEF",
	STACK_SWITCH:   "STACK_SWITCH",
}

// TokenString returns a readable name for a token code, for diagnostics.
func TokenString(tok int) string {
	if name, ok := tokenNames[tok]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", tok)
}

// SymType carries the semantic payload of the most recently lexed token.
type SymType struct {
	num    float64 // NUMBER_LITERAL value
	sval   string  // TEXT_LITERAL content, VAR_REF/IDENTIFIER text
	name   string  // bound name for STORE, ASK, FUNC_DEF, STACK_SWITCH
	prompt string  // ASK prompt text

	pos  int // start byte offset
	end  int // end byte offset
	line int // 1-based start line
	col  int // 1-based start column
}
