// Package cmd implements the djs CLI, following CWBudde-go-dws's
// cmd/dwscript/cmd layout: a package-level rootCmd with persistent flags,
// each subcommand registered from its own file's init().
package cmd

import (
	"fmt"
	"os"

	"djs/pkg/djserr"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; unset builds report "0.1.0-dev".
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "djs",
	Short: "A tagged-value / prototype-object runtime kernel",
	Long: `djs is a small ECMAScript-style object-model kernel: tagged values,
completions, and the eight meta-object operations over a prototype-linked
object graph. It has no parser, no bytecode VM, and no JIT — it is the
kernel a language implementation builds its evaluator on top of.`,
	Version: Version,
}

// Execute runs the root command, returning the error cobra reports (if
// any) so main can choose the process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("djs version %s (%s)\n", Version, GitCommit))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(ctx string, msg string, args ...any) {
	err := djserr.NewUsageError(ctx, fmt.Sprintf(msg, args...))
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
