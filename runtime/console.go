package runtime

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console is the injected read-line/write-line capability. ReadLine blocks
// until one line of input is available; it is the evaluator's only
// suspension point.
type Console interface {
	WriteLine(s string) error
	ReadLine() (string, error)
}

// StdConsole is a Console over arbitrary reader/writer pairs, normally
// stdin/stdout.
type StdConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdConsole(in io.Reader, out io.Writer) *StdConsole {
	return &StdConsole{in: bufio.NewReader(in), out: out}
}

func (c *StdConsole) WriteLine(s string) error {
	_, err := fmt.Fprintln(c.out, s)
	return err
}

func (c *StdConsole) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ScriptedConsole is a Console with canned input lines and captured output,
// for tests and non-interactive embedding.
type ScriptedConsole struct {
	Inputs []string
	Output []string
	next   int
}

func NewScriptedConsole(inputs ...string) *ScriptedConsole {
	return &ScriptedConsole{Inputs: inputs}
}

func (c *ScriptedConsole) WriteLine(s string) error {
	c.Output = append(c.Output, s)
	return nil
}

func (c *ScriptedConsole) ReadLine() (string, error) {
	if c.next >= len(c.Inputs) {
		return "", io.EOF
	}
	line := c.Inputs[c.next]
	c.next++
	return line, nil
}
