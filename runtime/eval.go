package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ampell-lang/ampell/decl"
)

// Evaluator walks the AST against one Environment, strictly sequentially.
// The only blocking operation is AskInput, through the injected Console.
type Evaluator struct {
	env     *Environment
	console Console

	// MaxCallDepth bounds the call frame stack. Defaults to
	// DefaultMaxCallDepth.
	MaxCallDepth int
}

func NewEvaluator(env *Environment, console Console) *Evaluator {
	return &Evaluator{
		env:          env,
		console:      console,
		MaxCallDepth: DefaultMaxCallDepth,
	}
}

func (ev *Evaluator) Env() *Environment { return ev.env }

// Run evaluates the program's top-level statements in order. The first
// failure aborts the whole run; pending call frames have already unwound by
// the time Run returns.
func (ev *Evaluator) Run(prog *decl.Program) error {
	for _, stmt := range prog.Statements {
		if err := ev.Eval(stmt); err != nil {
			Error("run aborted: %v", err)
			return err
		}
	}
	return nil
}

// Eval dispatches on the statement's node kind.
func (ev *Evaluator) Eval(node decl.Stmt) error {
	switch n := node.(type) {
	case *decl.BlockStmt:
		return ev.evalBlock(n)
	case *decl.PushLiteralStmt:
		ev.env.Active().Push(n.Value)
		return nil
	case *decl.PushVarStmt:
		return ev.evalPushVar(n)
	case *decl.AskStmt:
		return ev.evalAsk(n)
	case *decl.PopStmt:
		return ev.evalPop(n)
	case *decl.PrintStmt:
		return ev.evalPrint(n)
	case *decl.StoreStmt:
		return ev.evalStore(n)
	case *decl.ArithStmt:
		return ev.evalArith(n)
	case *decl.CondStmt:
		return ev.evalCond(n)
	case *decl.FuncDefStmt:
		ev.env.Funcs.Set(n.Name, n.Body)
		Debug("defined function '%s'", n.Name)
		return nil
	case *decl.CallStmt:
		return ev.evalCall(n)
	case *decl.SwitchStackStmt:
		stack := ev.env.SwitchTo(n.Name)
		Debug("active stack is now '%s'", stack.Name())
		return nil
	default:
		return fmt.Errorf("eval not implemented for node type %T", node)
	}
}

func (ev *Evaluator) evalBlock(block *decl.BlockStmt) error {
	for _, stmt := range block.Statements {
		if err := ev.Eval(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) evalPushVar(n *decl.PushVarStmt) error {
	value, found := ev.env.Vars.Get(n.Name)
	if !found {
		return errf(ErrUndefinedVariable, n, "'%s'", n.Name)
	}
	ev.env.Active().Push(value)
	return nil
}

func (ev *Evaluator) evalAsk(n *decl.AskStmt) error {
	if err := ev.console.WriteLine(n.Prompt); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	response, err := ev.console.ReadLine()
	if err != nil {
		return fmt.Errorf("reading input for '%s': %w", n.VarName, err)
	}
	// One numeric parse attempt, the only implicit coercion anywhere.
	if num, perr := strconv.ParseFloat(strings.TrimSpace(response), 64); perr == nil {
		ev.env.Vars.Set(n.VarName, decl.NumberValue(num))
	} else {
		ev.env.Vars.Set(n.VarName, decl.TextValue(response))
	}
	return nil
}

func (ev *Evaluator) evalPop(n *decl.PopStmt) error {
	if _, ok := ev.env.Active().Pop(); !ok {
		return errf(ErrStackUnderflow, n, "cannot pop from empty stack '%s'", ev.env.ActiveName())
	}
	return nil
}

func (ev *Evaluator) evalPrint(n *decl.PrintStmt) error {
	top, ok := ev.env.Active().Top()
	if !ok {
		return errf(ErrStackUnderflow, n, "cannot print from empty stack '%s'", ev.env.ActiveName())
	}
	return ev.console.WriteLine(top.String())
}

func (ev *Evaluator) evalStore(n *decl.StoreStmt) error {
	top, ok := ev.env.Active().Top()
	if !ok {
		return errf(ErrStackUnderflow, n, "cannot store from empty stack '%s'", ev.env.ActiveName())
	}
	ev.env.Vars.Set(n.VarName, top)
	return nil
}

func (ev *Evaluator) evalArith(n *decl.ArithStmt) error {
	stack := ev.env.Active()
	if stack.Len() < 2 {
		return errf(ErrStackUnderflow, n, "'%s' needs two values on stack '%s', have %d",
			n.Op, ev.env.ActiveName(), stack.Len())
	}
	// Both operands come off unconditionally: b first (top), then a.
	b, _ := stack.Pop()
	a, _ := stack.Pop()
	if !a.IsNumber() || !b.IsNumber() {
		return errf(ErrTypeMismatch, n, "'%s' needs two numbers, have %s and %s", n.Op, a.Kind, b.Kind)
	}

	var result float64
	switch n.Op {
	case decl.OpAdd:
		result = a.Num + b.Num
	case decl.OpSub:
		result = a.Num - b.Num
	case decl.OpMul:
		result = a.Num * b.Num
	case decl.OpDiv:
		if b.Num == 0 {
			return errf(ErrDivisionByZero, n, "'%s' ÷ 0", a)
		}
		result = a.Num / b.Num
	}
	stack.Push(decl.NumberValue(result))
	return nil
}

func (ev *Evaluator) evalCond(n *decl.CondStmt) error {
	a, b, ok := ev.env.Active().TopTwo()
	if !ok {
		return errf(ErrStackUnderflow, n, "'%s' conditional needs two values on stack '%s'",
			n.Op, ev.env.ActiveName())
	}

	holds := false
	switch n.Op {
	case decl.CmpEq:
		holds = a.Equals(b)
	case decl.CmpNeq:
		holds = !a.Equals(b)
	case decl.CmpLt, decl.CmpGt:
		// Ordering is only defined within one kind.
		if a.Kind != b.Kind {
			return errf(ErrTypeMismatch, n, "cannot order %s against %s", a.Kind, b.Kind)
		}
		if a.IsNumber() {
			if n.Op == decl.CmpLt {
				holds = a.Num < b.Num
			} else {
				holds = a.Num > b.Num
			}
		} else {
			if n.Op == decl.CmpLt {
				holds = a.Text < b.Text
			} else {
				holds = a.Text > b.Text
			}
		}
	}

	if !holds {
		return nil
	}
	return ev.evalBlock(n.Body)
}

func (ev *Evaluator) evalCall(n *decl.CallStmt) error {
	body, found := ev.env.Funcs.Get(n.Name)
	if !found {
		return errf(ErrUndefinedFunction, n, "'%s'", n.Name)
	}
	if ev.env.CallDepth() >= ev.MaxCallDepth {
		return errf(ErrRecursionLimit, n, "'%s' would exceed %d frames", n.Name, ev.MaxCallDepth)
	}
	ev.env.PushFrame(Frame{FuncName: n.Name, CallPos: n.Pos()})
	defer ev.env.PopFrame()
	Debug("calling '%s' (depth %d)", n.Name, ev.env.CallDepth())
	return ev.evalBlock(body)
}
