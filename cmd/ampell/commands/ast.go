package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ampell-lang/ampell/decl"
	"github.com/ampell-lang/ampell/loader"
)

var astCmd = &cobra.Command{
	Use:   "ast [source file]",
	Short: "Parses a program and prints its syntax tree as indented source",
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

		status := loader.NewLoader().LoadFile(path)
		if status.HasErrors() {
			errColor.Fprintf(os.Stderr, "Error: '%s' did not load:\n", path)
			status.PrintErrors()
			os.Exit(1)
		}
		fmt.Print(decl.PPrintString(status.Program))
	},
}

func init() {
	AddCommand(astCmd)
}
