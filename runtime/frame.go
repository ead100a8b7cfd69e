package runtime

// DefaultMaxCallDepth bounds recursion. The language has no loop construct,
// so recursive functions guarded by conditionals are its only repetition
// mechanism and this bound is the only protection against a runaway call
// chain.
const DefaultMaxCallDepth = 10000

// Frame records one in-progress function invocation. Frames exist purely
// for recursion-depth accounting: the language has no per-call scope.
type Frame struct {
	FuncName string
	CallPos  int // byte offset of the call statement
}
