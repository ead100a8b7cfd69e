package runtime

import (
	"strings"

	"github.com/ampell-lang/ampell/decl"
	gfn "github.com/panyam/goutils/fn"
)

// Stack is one named LIFO sequence of values. All stack-affecting statements
// implicitly target the environment's active stack.
type Stack struct {
	name   string
	values []decl.Value
}

func NewStack(name string) *Stack {
	return &Stack{name: name}
}

func (s *Stack) Name() string { return s.name }

func (s *Stack) Len() int { return len(s.values) }

// Push appends a copy of v as the new top.
func (s *Stack) Push(v decl.Value) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value. ok is false on an empty stack.
func (s *Stack) Pop() (v decl.Value, ok bool) {
	if len(s.values) == 0 {
		return decl.Value{}, false
	}
	v = s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, true
}

// Top returns the top value without removing it. ok is false on an empty
// stack.
func (s *Stack) Top() (v decl.Value, ok bool) {
	if len(s.values) == 0 {
		return decl.Value{}, false
	}
	return s.values[len(s.values)-1], true
}

// TopTwo returns the top value (b) and the second-from-top value (a)
// without removing either. ok is false when fewer than two values are
// present.
func (s *Stack) TopTwo() (a, b decl.Value, ok bool) {
	if len(s.values) < 2 {
		return decl.Value{}, decl.Value{}, false
	}
	return s.values[len(s.values)-2], s.values[len(s.values)-1], true
}

// Values returns a bottom-to-top copy of the stack contents.
func (s *Stack) Values() []decl.Value {
	out := make([]decl.Value, len(s.values))
	copy(out, s.values)
	return out
}

func (s *Stack) String() string {
	rendered := gfn.Map(s.values, func(v decl.Value) string { return v.Quoted() })
	return s.name + ": [" + strings.Join(rendered, ", ") + "]"
}
