package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper struct for expected token properties
type expectedToken struct {
	tok       int     // Token type (e.g., PUSH, NUMBER_LITERAL, STORE)
	text      string  // Raw token text as scanned by lexer
	num       float64 // For NUMBER_LITERAL: the parsed value
	sval      string  // For TEXT_LITERAL/VAR_REF/IDENTIFIER: the content
	name      string  // For STORE/ASK/FUNC_DEF/STACK_SWITCH: the bound name
	prompt    string  // For ASK: the prompt text
	startLine int     // Expected start line (0 => don't check)
	startCol  int     // Expected start column
}

// Helper function to run lexer tests
func runLexerTest(t *testing.T, input string, expectedTokens []expectedToken) *Lexer {
	t.Helper()
	lexer := NewLexer(strings.NewReader(input))

	for i, exp := range expectedTokens {
		lval := &SymType{}
		tok := lexer.Lex(lval)

		expTokStr := TokenString(exp.tok)
		assert.Equal(t, exp.tok, tok, "Test %d: Token type mismatch. Expected %s, got %s ('%s')", i, expTokStr, TokenString(tok), lexer.Text())
		assert.Equal(t, exp.text, lexer.Text(), "Test %d: Token text mismatch for %s.", i, expTokStr)

		switch exp.tok {
		case NUMBER_LITERAL:
			assert.Equal(t, exp.num, lval.num, "Test %d: Number value mismatch.", i)
		case TEXT_LITERAL, VAR_REF, IDENTIFIER:
			assert.Equal(t, exp.sval, lval.sval, "Test %d: Token content mismatch for %s.", i, expTokStr)
		case STORE, FUNC_DEF, STACK_SWITCH:
			assert.Equal(t, exp.name, lval.name, "Test %d: Bound name mismatch for %s.", i, expTokStr)
		case ASK:
			assert.Equal(t, exp.name, lval.name, "Test %d: Bound name mismatch for ASK.", i)
			assert.Equal(t, exp.prompt, lval.prompt, "Test %d: Prompt mismatch for ASK.", i)
		}

		if exp.startLine != 0 {
			line, col := lexer.Position()
			assert.Equal(t, exp.startLine, line, "Test %d: Token startLine mismatch for %s.", i, expTokStr)
			assert.Equal(t, exp.startCol, col, "Test %d: Token startCol mismatch for %s.", i, expTokStr)
		}
	}

	// After all expected tokens, Lex should return EOF
	lval := &SymType{}
	finalTok := lexer.Lex(lval)
	assert.Equal(t, eof, finalTok, "Expected EOF after all tokens, got %s ('%s')", TokenString(finalTok), lexer.Text())
	return lexer
}

func TestLexerPushForms(t *testing.T) {
	lexer := runLexerTest(t, `&[15] &[-3.5] &["hello"] &[count]`, []expectedToken{
		{tok: PUSH, text: "&", startLine: 1, startCol: 1},
		{tok: LBRACKET, text: "["},
		{tok: NUMBER_LITERAL, text: "15", num: 15},
		{tok: RBRACKET, text: "]"},
		{tok: PUSH, text: "&"},
		{tok: LBRACKET, text: "["},
		{tok: NUMBER_LITERAL, text: "-3.5", num: -3.5},
		{tok: RBRACKET, text: "]"},
		{tok: PUSH, text: "&"},
		{tok: LBRACKET, text: "["},
		{tok: TEXT_LITERAL, text: `"hello"`, sval: "hello"},
		{tok: RBRACKET, text: "]"},
		{tok: PUSH, text: "&"},
		{tok: LBRACKET, text: "["},
		{tok: VAR_REF, text: "count", sval: "count"},
		{tok: RBRACKET, text: "]"},
	})
	assert.NoError(t, lexer.LastError())
}

func TestLexerOperatorsAndMarkers(t *testing.T) {
	lexer := runLexerTest(t, "% $ + - × ÷ * / − >>total", []expectedToken{
		{tok: POP, text: "%"},
		{tok: PRINT, text: "$"},
		{tok: PLUS, text: "+"},
		{tok: MINUS, text: "-"},
		{tok: MUL, text: "×"},
		{tok: DIV, text: "÷"},
		{tok: MUL, text: "*"},
		{tok: DIV, text: "/"},
		{tok: MINUS, text: "−"},
		{tok: STORE, text: ">>total", name: "total"},
	})
	assert.NoError(t, lexer.LastError())
}

func TestLexerBlocksAndComparisons(t *testing.T) {
	lexer := runLexerTest(t, "=[ % ] ![ $ ] <[ ] >[ ]", []expectedToken{
		{tok: EQ, text: "="},
		{tok: LBRACKET, text: "["},
		{tok: POP, text: "%"},
		{tok: RBRACKET, text: "]"},
		{tok: NEQ, text: "!"},
		{tok: LBRACKET, text: "["},
		{tok: PRINT, text: "$"},
		{tok: RBRACKET, text: "]"},
		{tok: LT, text: "<"},
		{tok: LBRACKET, text: "["},
		{tok: RBRACKET, text: "]"},
		{tok: GT, text: ">"},
		{tok: LBRACKET, text: "["},
		{tok: RBRACKET, text: "]"},
	})
	assert.NoError(t, lexer.LastError())
}

func TestLexerFunctionsAndStacks(t *testing.T) {
	lexer := runLexerTest(t, "@double[ + ] double: \\[scratch] \\[ ]", []expectedToken{
		{tok: FUNC_DEF, text: "@double", name: "double"},
		{tok: LBRACKET, text: "["},
		{tok: PLUS, text: "+"},
		{tok: RBRACKET, text: "]"},
		{tok: IDENTIFIER, text: "double", sval: "double"},
		{tok: COLON, text: ":"},
		{tok: STACK_SWITCH, text: "\\[scratch]", name: "scratch"},
		{tok: STACK_SWITCH, text: "\\[]", name: ""},
	})
	assert.NoError(t, lexer.LastError())
}

func TestLexerAsk(t *testing.T) {
	lexer := runLexerTest(t, `^"Your age?"~age`, []expectedToken{
		{tok: ASK, text: `^"Your age?"~age`, prompt: "Your age?", name: "age"},
	})
	assert.NoError(t, lexer.LastError())
}

func TestLexerCommentsAndPositions(t *testing.T) {
	input := "# a comment line\n&[1] # trailing comment\n$\n"
	lexer := runLexerTest(t, input, []expectedToken{
		{tok: PUSH, text: "&", startLine: 2, startCol: 1},
		{tok: LBRACKET, text: "["},
		{tok: NUMBER_LITERAL, text: "1", num: 1},
		{tok: RBRACKET, text: "]"},
		{tok: PRINT, text: "$", startLine: 3, startCol: 1},
	})
	assert.NoError(t, lexer.LastError())
}

func TestLexerErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unrecognized character", "&[1] ?"},
		{"unterminated text literal", `&["oops`},
		{"invalid number", "&[12ab]"},
		{"bad ask prompt", "^age~name"},
		{"ask missing binding", `^"prompt" %`},
		{"unterminated stack switch", `\[scratch`},
		{"store missing name", ">> %"},
		{"store name starts with digit", ">>1st"},
		{"func def missing name", "@[ % ]"},
		{"func def name starts with digit", "@2x[ % ]"},
		{"ask name starts with digit", `^"prompt"~9lives`},
		{"bare digit outside push", "12"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lexer := NewLexer(strings.NewReader(tc.input))
			lval := &SymType{}
			for lexer.Lex(lval) != eof {
			}
			err := lexer.LastError()
			require.Error(t, err)
			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Greater(t, lexErr.Line, 0)
		})
	}
}
