package decl

import (
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// --- Interfaces ---

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	Pos() int       // Starting byte offset (for error reporting)
	End() int       // Ending byte offset
	String() string // String representation for debugging/printing
}

// Stmt represents a statement node. Every Ampell construct is a statement;
// the language has no expressions outside of push-literal contents.
type Stmt interface {
	Node
	PrettyPrint(cp CodePrinter)
	stmtNode() // Marker method for statements
}

// --- Base Struct ---

// NodeInfo embeddable struct for position tracking.
type NodeInfo struct{ StartPos, StopPos int }

func (n *NodeInfo) Pos() int { return n.StartPos }
func (n *NodeInfo) End() int { return n.StopPos }

func NewNodeInfo(start, end int) NodeInfo {
	return NodeInfo{StartPos: start, StopPos: end}
}

// --- Operators ---

// ArithOp identifies one of the four destructive arithmetic operations.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op ArithOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// CmpOp identifies one of the four peek-comparison operations.
type CmpOp int

const (
	CmpEq CmpOp = iota
	CmpNeq
	CmpLt
	CmpGt
)

func (op CmpOp) String() string {
	switch op {
	case CmpEq:
		return "="
	case CmpNeq:
		return "!"
	case CmpLt:
		return "<"
	case CmpGt:
		return ">"
	default:
		return "?"
	}
}

// --- Top level ---

// Program is the top-level node of a parsed Ampell source: an ordered
// sequence of statements, handed read-only to the evaluator.
type Program struct {
	NodeInfo
	Statements []Stmt
}

func (p *Program) String() string {
	return strings.Join(gfn.Map(p.Statements, func(s Stmt) string { return s.String() }), " ")
}

func (p *Program) PrettyPrint(cp CodePrinter) {
	for _, stmt := range p.Statements {
		stmt.PrettyPrint(cp)
		cp.Println("")
	}
}

// BlockStmt represents a bracket-delimited nested statement sequence
// attached to a conditional or function definition.
type BlockStmt struct {
	NodeInfo
	Statements []Stmt
}

func (b *BlockStmt) stmtNode() {}
func (b *BlockStmt) String() string {
	return "[" + strings.Join(gfn.Map(b.Statements, func(s Stmt) string { return s.String() }), " ") + "]"
}

func (b *BlockStmt) PrettyPrint(cp CodePrinter) {
	cp.Println("[")
	WithIndent(1, cp, func(cp CodePrinter) {
		for _, stmt := range b.Statements {
			stmt.PrettyPrint(cp)
			cp.Println("")
		}
	})
	cp.Print("]")
}

// --- Statements ---

// PushLiteralStmt pushes a constant onto the active stack: `&[15]`, `&["hi"]`
type PushLiteralStmt struct {
	NodeInfo
	Value Value
}

func (s *PushLiteralStmt) stmtNode() {}
func (s *PushLiteralStmt) String() string {
	return fmt.Sprintf("&[%s]", s.Value.Quoted())
}
func (s *PushLiteralStmt) PrettyPrint(cp CodePrinter) { cp.Print(s.String()) }

// PushVarStmt pushes the current value of a variable: `&[count]`
type PushVarStmt struct {
	NodeInfo
	Name string
}

func (s *PushVarStmt) stmtNode() {}
func (s *PushVarStmt) String() string {
	return fmt.Sprintf("&[%s]", s.Name)
}
func (s *PushVarStmt) PrettyPrint(cp CodePrinter) { cp.Print(s.String()) }

// AskStmt prompts the console and binds one line of input: `^"prompt"~name`
type AskStmt struct {
	NodeInfo
	Prompt  string
	VarName string
}

func (s *AskStmt) stmtNode() {}
func (s *AskStmt) String() string {
	return fmt.Sprintf("^%q~%s", s.Prompt, s.VarName)
}
func (s *AskStmt) PrettyPrint(cp CodePrinter) { cp.Print(s.String()) }

// PopStmt discards the top of the active stack: `%`
type PopStmt struct {
	NodeInfo
}

func (s *PopStmt) stmtNode() {}
func (s *PopStmt) String() string             { return "%" }
func (s *PopStmt) PrettyPrint(cp CodePrinter) { cp.Print(s.String()) }

// PrintStmt writes the top of the active stack without removing it: `$`
type PrintStmt struct {
	NodeInfo
}

func (s *PrintStmt) stmtNode() {}
func (s *PrintStmt) String() string             { return "$" }
func (s *PrintStmt) PrettyPrint(cp CodePrinter) { cp.Print(s.String()) }

// StoreStmt binds the top of the active stack to a variable without
// removing it: `>>name`
type StoreStmt struct {
	NodeInfo
	VarName string
}

func (s *StoreStmt) stmtNode() {}
func (s *StoreStmt) String() string {
	return ">>" + s.VarName
}
func (s *StoreStmt) PrettyPrint(cp CodePrinter) { cp.Print(s.String()) }

// ArithStmt pops the top two values (b = top, a = second) and pushes
// `a op b`: `+ - × ÷`
type ArithStmt struct {
	NodeInfo
	Op ArithOp
}

func (s *ArithStmt) stmtNode() {}
func (s *ArithStmt) String() string             { return s.Op.String() }
func (s *ArithStmt) PrettyPrint(cp CodePrinter) { cp.Print(s.String()) }

// CondStmt peeks the top two values and runs Body if the comparison holds:
// `=[...]`, `![...]`, `<[...]`, `>[...]`
type CondStmt struct {
	NodeInfo
	Op   CmpOp
	Body *BlockStmt
}

func (s *CondStmt) stmtNode() {}
func (s *CondStmt) String() string {
	return s.Op.String() + s.Body.String()
}

func (s *CondStmt) PrettyPrint(cp CodePrinter) {
	cp.Print(s.Op.String())
	s.Body.PrettyPrint(cp)
}

// FuncDefStmt binds a name to a body without executing it: `@name[...]`
type FuncDefStmt struct {
	NodeInfo
	Name string
	Body *BlockStmt
}

func (s *FuncDefStmt) stmtNode() {}
func (s *FuncDefStmt) String() string {
	return "@" + s.Name + s.Body.String()
}

func (s *FuncDefStmt) PrettyPrint(cp CodePrinter) {
	cp.Print("@" + s.Name)
	s.Body.PrettyPrint(cp)
}

// CallStmt invokes a previously defined function: `name:`
type CallStmt struct {
	NodeInfo
	Name string
}

func (s *CallStmt) stmtNode() {}
func (s *CallStmt) String() string             { return s.Name + ":" }
func (s *CallStmt) PrettyPrint(cp CodePrinter) { cp.Print(s.String()) }

// SwitchStackStmt makes the named stack active, creating it if absent:
// `\[name]`
type SwitchStackStmt struct {
	NodeInfo
	Name string
}

func (s *SwitchStackStmt) stmtNode() {}
func (s *SwitchStackStmt) String() string {
	return fmt.Sprintf("\\[%s]", s.Name)
}
func (s *SwitchStackStmt) PrettyPrint(cp CodePrinter) { cp.Print(s.String()) }
