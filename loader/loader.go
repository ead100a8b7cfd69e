package loader

import (
	"fmt"
	"os"

	"github.com/ampell-lang/ampell/decl"
	"github.com/ampell-lang/ampell/parser"
)

// FileStatus is the result of loading one source file: the parsed program
// when loading succeeded, the collected errors otherwise.
type FileStatus struct {
	ErrorCollector

	Path    string
	Program *decl.Program
}

// Loader reads Ampell source files and runs them through the
// tokenize/parse pipeline. Reading the program text is the loader's job;
// the lexer only ever sees one complete string.
type Loader struct {
	MaxErrors int
}

func NewLoader() *Loader {
	return &Loader{MaxErrors: 10}
}

// LoadFile reads and parses the file at path. Errors end up on the returned
// status, never partially applied: Program is nil whenever HasErrors.
func (l *Loader) LoadFile(path string) *FileStatus {
	status := &FileStatus{Path: path}
	status.MaxErrors = l.MaxErrors

	data, err := os.ReadFile(path)
	if err != nil {
		status.AddErrors(fmt.Errorf("reading %s: %w", path, err))
		return status
	}
	prog, err := parser.Parse(string(data))
	if err != nil {
		status.AddErrors(err)
		return status
	}
	status.Program = prog
	return status
}

// LoadSource parses source text directly, for embedding hosts that already
// hold the program text.
func (l *Loader) LoadSource(source string) (*decl.Program, error) {
	return parser.Parse(source)
}
