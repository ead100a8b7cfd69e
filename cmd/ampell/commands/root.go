package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sourceFilePath string

var rootCmd = &cobra.Command{
	Use:   "ampell",
	Short: "Ampell is an interpreter for a small stack-based scripting language",
	Long: `Ampell runs programs written in a stack-based scripting language with
named value stacks, global variables, user-defined functions and console I/O.
Programs are tokenized, parsed into an AST and evaluated by a tree walker.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sourceFilePath, "file", "f", "", "Path to the source file (most commands also accept it as an argument)")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
