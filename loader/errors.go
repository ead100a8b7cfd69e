package loader

import (
	"fmt"
	"os"
)

// ErrorCollector gathers the static failures (read, lex, parse) found while
// loading one source file.
type ErrorCollector struct {
	// Errors for this file
	Errors []error

	// Max errors to retain. 0 => no limit
	MaxErrors int
}

func (c *ErrorCollector) HasErrors() bool {
	return len(c.Errors) > 0
}

func (c *ErrorCollector) PrintErrors() {
	for _, err := range c.Errors {
		fmt.Fprintln(os.Stderr, err)
	}
}

func (c *ErrorCollector) AddErrors(errs ...error) {
	for _, err := range errs {
		if c.MaxErrors > 0 && len(c.Errors) >= c.MaxErrors {
			return
		}
		c.Errors = append(c.Errors, err)
	}
}
