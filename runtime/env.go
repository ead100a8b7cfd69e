package runtime

import (
	"sort"

	"github.com/ampell-lang/ampell/decl"
)

// DefaultStackName is the stack that is active when a run starts and the
// one an empty `\[ ]` switch selects.
const DefaultStackName = "main"

// Environment is the whole mutable state of one run: every named stack with
// one active at a time, the flat variable and function tables, and the call
// frame stack. It is exclusively owned by one Run invocation; nothing
// observes or mutates it concurrently.
type Environment struct {
	stacks map[string]*Stack
	active string

	Vars  *decl.Env[decl.Value]
	Funcs *decl.Env[*decl.BlockStmt]

	frames []Frame
}

func NewEnvironment() *Environment {
	env := &Environment{
		stacks: make(map[string]*Stack),
		Vars:   decl.NewEnv[decl.Value](nil),
		Funcs:  decl.NewEnv[*decl.BlockStmt](nil),
	}
	env.active = DefaultStackName
	env.stacks[DefaultStackName] = NewStack(DefaultStackName)
	return env
}

// Active returns the currently active stack. The active key always names a
// stack that exists.
func (e *Environment) Active() *Stack {
	return e.stacks[e.active]
}

// ActiveName returns the name of the currently active stack.
func (e *Environment) ActiveName() string {
	return e.active
}

// SwitchTo makes the named stack active, creating an empty one if none
// exists yet. An empty name selects the default stack. Never fails.
func (e *Environment) SwitchTo(name string) *Stack {
	if name == "" {
		name = DefaultStackName
	}
	s, ok := e.stacks[name]
	if !ok {
		s = NewStack(name)
		e.stacks[name] = s
	}
	e.active = name
	return s
}

// Stack returns the named stack, or nil if it was never referenced.
func (e *Environment) Stack(name string) *Stack {
	return e.stacks[name]
}

// StackNames returns the sorted names of every stack referenced so far.
func (e *Environment) StackNames() []string {
	names := make([]string, 0, len(e.stacks))
	for name := range e.stacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Call frame accounting ---

// PushFrame records one function invocation.
func (e *Environment) PushFrame(f Frame) {
	e.frames = append(e.frames, f)
}

// PopFrame discards the most recent frame. It is a no-op on an empty frame
// stack so unwinding on error never double-faults.
func (e *Environment) PopFrame() {
	if len(e.frames) > 0 {
		e.frames = e.frames[:len(e.frames)-1]
	}
}

// CallDepth returns the number of in-progress function invocations.
func (e *Environment) CallDepth() int {
	return len(e.frames)
}
