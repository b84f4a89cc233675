// Command hsproject rewrites, inspects and draws Hopscotch project documents.
//
// Usage:
//
//	hsproject rewrite level.hopscotch -o level.out.hopscotch
//	hsproject inspect level.hopscotch --json
//	hsproject graph level.hopscotch -f svg -o level.svg
//
// Interrupting a run exits with status 130, a malformed document or rule file
// with status 2, and any other failure with status 1.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hsproject/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := run(ctx)
	code := cli.ExitCode(err)
	if code != 0 && code != cli.ExitInterrupted {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
	}
	os.Exit(code)
}

// run builds the command tree and executes it. Output goes to stdout; logs and
// status lines go to stderr so that documents can be piped.
func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level is only known once flags are parsed, so it is applied ahead of
	// the root command's own pre-run hook.
	rootPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if rootPreRun != nil {
			return rootPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
