package parser

import (
	"fmt"
	"strings"

	"github.com/ampell-lang/ampell/decl"
	gfn "github.com/panyam/goutils/fn"
)

// LLParser consumes the token stream with one token of lookahead and builds
// the statement AST. All nesting logic lives here: the lexer emits '[' and
// ']' as standalone structural tokens, and parseBlock pairs them by
// recursion so a block-open inside a body is only closed by its own
// block-close.
type LLParser struct {
	lexer            *Lexer
	peekedTokenValue *SymType
	peekedToken      int
}

func NewLLParser(lexer *Lexer) *LLParser {
	return &LLParser{lexer: lexer, peekedToken: -1}
}

// Parse tokenizes and parses a complete source string.
func Parse(source string) (*decl.Program, error) {
	return NewLLParser(NewLexer(strings.NewReader(source))).Parse()
}

// Parse consumes the whole token stream and returns the Program.
func (p *LLParser) Parse() (*decl.Program, error) {
	prog := &decl.Program{}
	for {
		tok := p.PeekToken()
		if tok == eof {
			if err := p.lexer.LastError(); err != nil {
				return nil, err
			}
			prog.StopPos = p.lexer.End()
			return prog, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
}

func (p *LLParser) Errorf(format string, args ...any) error {
	p.lexer.Error(fmt.Sprintf(format, args...))
	return p.lexer.lastError
}

func (p *LLParser) Advance() int {
	p.PeekToken()
	last := p.peekedToken
	p.peekedTokenValue = nil
	p.peekedToken = -1
	return last
}

func (p *LLParser) PeekToken() int {
	if p.peekedTokenValue == nil {
		p.peekedTokenValue = &SymType{}
		p.peekedToken = p.lexer.Lex(p.peekedTokenValue)
	}
	return p.peekedToken
}

// Expect checks if the current peeked token is one of the expected tokens.
// It does NOT advance.
func (p *LLParser) Expect(tokensIn ...int) (foundToken int, err error) {
	peekedToken := p.PeekToken()
	for _, tok := range tokensIn {
		if tok == peekedToken {
			return tok, nil
		}
	}
	if peekedToken == eof {
		if lexErr := p.lexer.LastError(); lexErr != nil {
			return -1, lexErr
		}
	}
	var errMsg string
	if len(tokensIn) == 1 {
		errMsg = fmt.Sprintf("expected %s, found: %s", TokenString(tokensIn[0]), TokenString(peekedToken))
	} else {
		expectedStrings := gfn.Map(tokensIn, func(t int) string { return TokenString(t) })
		errMsg = fmt.Sprintf("expected one of: [%s], found: %s", strings.Join(expectedStrings, ", "), TokenString(peekedToken))
	}
	if p.lexer.Text() != "" {
		errMsg = fmt.Sprintf("%s (%s)", errMsg, p.lexer.Text())
	}
	return -1, p.Errorf("%s", errMsg)
}

// AdvanceIf expects one of the given tokens and advances if found.
// Returns the matched token type and its semantic value.
func (p *LLParser) AdvanceIf(tokensIn ...int) (foundToken int, tokenValue *SymType, err error) {
	if _, err = p.Expect(tokensIn...); err != nil {
		return -1, nil, err
	}
	foundToken = p.peekedToken
	tokenValue = p.peekedTokenValue
	p.Advance()
	return
}

func (p *LLParser) parseStatement() (decl.Stmt, error) {
	tok := p.PeekToken()
	tv := p.peekedTokenValue

	switch tok {
	case PUSH:
		p.Advance()
		return p.parsePushContent(tv)

	case ASK:
		p.Advance()
		return &decl.AskStmt{
			NodeInfo: decl.NewNodeInfo(tv.pos, tv.end),
			Prompt:   tv.prompt,
			VarName:  tv.name,
		}, nil

	case POP:
		p.Advance()
		return &decl.PopStmt{NodeInfo: decl.NewNodeInfo(tv.pos, tv.end)}, nil

	case PRINT:
		p.Advance()
		return &decl.PrintStmt{NodeInfo: decl.NewNodeInfo(tv.pos, tv.end)}, nil

	case STORE:
		p.Advance()
		return &decl.StoreStmt{
			NodeInfo: decl.NewNodeInfo(tv.pos, tv.end),
			VarName:  tv.name,
		}, nil

	case PLUS, MINUS, MUL, DIV:
		p.Advance()
		op := map[int]decl.ArithOp{PLUS: decl.OpAdd, MINUS: decl.OpSub, MUL: decl.OpMul, DIV: decl.OpDiv}[tok]
		return &decl.ArithStmt{NodeInfo: decl.NewNodeInfo(tv.pos, tv.end), Op: op}, nil

	case EQ, NEQ, LT, GT:
		p.Advance()
		op := map[int]decl.CmpOp{EQ: decl.CmpEq, NEQ: decl.CmpNeq, LT: decl.CmpLt, GT: decl.CmpGt}[tok]
		body, err := p.parseBlock(fmt.Sprintf("'%s' conditional", op))
		if err != nil {
			return nil, err
		}
		return &decl.CondStmt{
			NodeInfo: decl.NewNodeInfo(tv.pos, body.End()),
			Op:       op,
			Body:     body,
		}, nil

	case FUNC_DEF:
		p.Advance()
		name := tv.name
		body, err := p.parseBlock(fmt.Sprintf("function '%s'", name))
		if err != nil {
			return nil, err
		}
		return &decl.FuncDefStmt{
			NodeInfo: decl.NewNodeInfo(tv.pos, body.End()),
			Name:     name,
			Body:     body,
		}, nil

	case IDENTIFIER:
		p.Advance()
		name := tv.sval
		_, ctv, err := p.AdvanceIf(COLON)
		if err != nil {
			return nil, err
		}
		return &decl.CallStmt{
			NodeInfo: decl.NewNodeInfo(tv.pos, ctv.end),
			Name:     name,
		}, nil

	case STACK_SWITCH:
		p.Advance()
		return &decl.SwitchStackStmt{
			NodeInfo: decl.NewNodeInfo(tv.pos, tv.end),
			Name:     tv.name,
		}, nil

	case COLON:
		return nil, p.Errorf("call ':' without a preceding function name")

	case RBRACKET:
		return nil, p.Errorf("unexpected ']': no block is open here")

	case LBRACKET:
		return nil, p.Errorf("unexpected '[': blocks only follow a comparison or a function definition")
	}

	return nil, p.Errorf("unexpected token %s (%s)", TokenString(tok), p.lexer.Text())
}

// parsePushContent parses the bracketed content of a push form: exactly one
// literal or variable reference between '[' and ']'. pushTv is the PUSH
// token's value, kept for the statement's start position.
func (p *LLParser) parsePushContent(pushTv *SymType) (decl.Stmt, error) {
	if _, _, err := p.AdvanceIf(LBRACKET); err != nil {
		return nil, err
	}
	tok, tv, err := p.AdvanceIf(NUMBER_LITERAL, TEXT_LITERAL, VAR_REF)
	if err != nil {
		return nil, err
	}
	_, rtv, err := p.AdvanceIf(RBRACKET)
	if err != nil {
		return nil, err
	}

	info := decl.NewNodeInfo(pushTv.pos, rtv.end)
	switch tok {
	case NUMBER_LITERAL:
		return &decl.PushLiteralStmt{NodeInfo: info, Value: decl.NumberValue(tv.num)}, nil
	case TEXT_LITERAL:
		return &decl.PushLiteralStmt{NodeInfo: info, Value: decl.TextValue(tv.sval)}, nil
	default:
		return &decl.PushVarStmt{NodeInfo: info, Name: tv.sval}, nil
	}
}

// parseBlock parses a '[' ... ']' body, recursing through parseStatement for
// nested conditionals and function definitions so brackets pair up at the
// right depth. owner names the construct for the unclosed-block diagnostic.
func (p *LLParser) parseBlock(owner string) (*decl.BlockStmt, error) {
	_, ltv, err := p.AdvanceIf(LBRACKET)
	if err != nil {
		return nil, err
	}
	block := &decl.BlockStmt{NodeInfo: decl.NewNodeInfo(ltv.pos, ltv.end)}
	for {
		tok := p.PeekToken()
		if tok == eof {
			if lexErr := p.lexer.LastError(); lexErr != nil {
				return nil, lexErr
			}
			return nil, p.Errorf("unexpected end of input: the body of %s is never closed", owner)
		}
		if tok == RBRACKET {
			block.StopPos = p.peekedTokenValue.end
			p.Advance()
			return block, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
}
