package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ampell-lang/ampell/loader"
	"github.com/ampell-lang/ampell/runtime"
)

var errColor = color.New(color.FgRed)
var headerColor = color.New(color.FgCyan)

var runCmd = &cobra.Command{
	Use:   "run [source file]",
	Short: "Runs an Ampell program",
	Long: `Parses and executes an Ampell source file. The file is taken from the
-f/--file flag or the first argument; with neither, the command asks for a
filename interactively.

Any lex or parse error aborts before execution starts. Any runtime failure
(stack underflow, undefined variable or function, type mismatch, division by
zero, exceeded recursion limit) aborts the run at the failing statement.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dump, _ := cmd.Flags().GetBool("dump")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		console := runtime.NewStdConsole(os.Stdin, os.Stdout)

		path := sourceFilePath
		if path == "" && len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			if err := console.WriteLine("Enter a file with valid Ampell code: "); err != nil {
				errColor.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			line, err := console.ReadLine()
			if err != nil || line == "" {
				errColor.Fprintln(os.Stderr, "Error: no source file given")
				os.Exit(1)
			}
			path = line
		}

		status := loader.NewLoader().LoadFile(path)
		if status.HasErrors() {
			errColor.Fprintf(os.Stderr, "Error: '%s' did not load:\n", path)
			status.PrintErrors()
			os.Exit(1)
		}

		env := runtime.NewEnvironment()
		ev := runtime.NewEvaluator(env, console)
		if maxDepth > 0 {
			ev.MaxCallDepth = maxDepth
		} else if envDepth := os.Getenv("AMPELL_RECURSION_LIMIT"); envDepth != "" {
			if depth, err := strconv.Atoi(envDepth); err == nil && depth > 0 {
				ev.MaxCallDepth = depth
			}
		}

		if err := ev.Run(status.Program); err != nil {
			errColor.Fprintf(os.Stderr, "Runtime error: %v\n", err)
			os.Exit(1)
		}

		if dump {
			dumpEnvironment(env)
		}
	},
}

// dumpEnvironment prints the final stacks and variables, the way an
// interactive session wants to inspect what a program left behind.
func dumpEnvironment(env *runtime.Environment) {
	headerColor.Printf("Current stack: %s\n", env.ActiveName())
	for _, name := range env.StackNames() {
		stack := env.Stack(name)
		if stack.Len() > 0 {
			fmt.Println(stack.String())
		}
	}
	if env.Vars.Len() > 0 {
		headerColor.Println("Variables:")
		for _, name := range env.Vars.Keys() {
			value, _ := env.Vars.Get(name)
			fmt.Printf("  %s = %s\n", name, value.Quoted())
		}
	}
}

func init() {
	runCmd.Flags().Bool("dump", false, "Print the final stacks and variables after the run")
	runCmd.Flags().Int("max-depth", 0, "Recursion limit in call frames (default: AMPELL_RECURSION_LIMIT env var or 10000)")
	AddCommand(runCmd)
}
