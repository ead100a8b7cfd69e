package decl

import (
	"fmt"
	"strings"
)

// CodePrinter renders AST nodes back into indented source form.
type CodePrinter interface {
	Indent(n int)
	Unindent(n int)
	Print(str string)
	Printf(fmt string, args ...any)
	Println(str string)
	String() string
}

func WithIndent(n int, cp CodePrinter, block func(cp CodePrinter)) {
	cp.Indent(n)
	defer cp.Unindent(n)
	block(cp)
}

type codePrinter struct {
	indent  int
	col     int
	builder strings.Builder
}

func (c *codePrinter) Indent(n int) {
	c.indent += n
}

func (c *codePrinter) Unindent(n int) {
	c.indent -= n
	if c.indent < 0 {
		c.indent = 0
	}
}

func (c *codePrinter) Print(str string) {
	lines := strings.Split(str, "\n")
	for idx, l := range lines {
		if idx > 0 {
			c.builder.WriteRune('\n')
			c.col = 0
		}
		if l == "" {
			continue
		}
		if c.col == 0 {
			// new line has started so add the indent string
			c.builder.WriteString(c.indentString())
			c.col = c.indent * 2
		}
		c.builder.WriteString(l)
		c.col += len(l)
	}
}

func (c *codePrinter) Println(str string) {
	c.Print(str + "\n")
}

func (c *codePrinter) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

func (c *codePrinter) indentString() string {
	return strings.Repeat("  ", c.indent)
}

func (c *codePrinter) String() string {
	return c.builder.String()
}

func NewCodePrinter() CodePrinter {
	return &codePrinter{}
}

// PrettyPrintable is satisfied by Program and every Stmt.
type PrettyPrintable interface {
	PrettyPrint(cp CodePrinter)
}

// PPrintString renders a node into indented source form.
func PPrintString(node PrettyPrintable) string {
	cp := NewCodePrinter()
	node.PrettyPrint(cp)
	return cp.String()
}
