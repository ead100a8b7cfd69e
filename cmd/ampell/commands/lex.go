package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ampell-lang/ampell/parser"
)

var lexCmd = &cobra.Command{
	Use:   "lex [source file]",
	Short: "Prints the token stream of a program",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := sourceFilePath
		if path == "" && len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			errColor.Fprintln(os.Stderr, "Error: source file must be given with -f/--file or as an argument")
			os.Exit(1)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			errColor.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			os.Exit(1)
		}

		lexer := parser.NewLexer(strings.NewReader(string(data)))
		for {
			lval := &parser.SymType{}
			tok := lexer.Lex(lval)
			if tok == parser.EOF {
				if lexErr := lexer.LastError(); lexErr != nil {
					errColor.Fprintln(os.Stderr, lexErr)
					os.Exit(1)
				}
				return
			}
			line, col := lexer.Position()
			fmt.Printf("%4d:%-3d %-14s %s\n", line, col, parser.TokenString(tok), lexer.Text())
		}
	},
}

func init() {
	AddCommand(lexCmd)
}
