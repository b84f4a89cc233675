// Package cli implements the hsproject command-line interface.
//
// # Commands
//
//   - rewrite: parse a project, apply rewrite rules and write a fresh document
//   - inspect: print counts and absorbed reference gaps
//   - graph: draw the project tree as DOT, SVG, PDF or PNG
//   - cache: manage the output cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and also receives pipeline and cache hook
// events.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hsproject/pkg/buildinfo"
	"github.com/matzehuels/hsproject/pkg/cache"
	"github.com/matzehuels/hsproject/pkg/errors"
	"github.com/matzehuels/hsproject/pkg/observability"
	"github.com/matzehuels/hsproject/pkg/pipeline"
	"github.com/matzehuels/hsproject/pkg/rewrite"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "hsproject"

	// rulesFileName is looked up in the config directory when --rules is not given.
	rulesFileName = "rules.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// out receives command results; status lines and logs go to the logger's
	// writer.
	out io.Writer
	ui  *printer
}

// New creates a CLI writing results to out and logs to errw.
func New(out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		out:    out,
		ui:     newPrinter(errw),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "hsproject rewrites Hopscotch project documents",
		Long:          `hsproject loads Hopscotch project JSON into a tree, rewrites block types with configurable rules, and saves a fresh document with newly minted identifiers.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetPipelineHooks(logHooks{c.Logger})
			observability.SetCacheHooks(logHooks{c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)

	root.AddCommand(c.rewriteCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// FormatError renders err for the terminal.
func FormatError(err error) string {
	msg := errors.UserMessage(err)
	if code := errors.GetCode(err); code != "" {
		msg += StyleDim.Render(" [" + string(code) + "]")
	}
	return styleIconError.Render(iconError) + " " + msg
}

// Process exit codes.
const (
	ExitError       = 1
	ExitBadInput    = 2
	ExitInterrupted = 130 // shell convention for SIGINT
)

// ExitCode maps err to a process exit code. Problems with the files the user
// passed in exit with [ExitBadInput] so that scripts can tell them apart from
// internal failures.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupted
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDocument, errors.ErrCodeInvalidRule,
		errors.ErrCodeInvalidFormat, errors.ErrCodeFileNotFound, errors.ErrCodeUnsupported:
		return ExitBadInput
	}
	return ExitError
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	// entries written by another build are never read back
	keyer := cache.NewScopedKeyer(nil, appName+":"+buildinfo.Version+":")
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// loadRewriter returns the rule set from path, from the default rules file
// if path is empty and that file exists, or the built-in rules otherwise.
func loadRewriter(ctx context.Context, path string) (*rewrite.Rewriter, error) {
	logger := loggerFromContext(ctx)
	if path == "" {
		def, err := defaultRulesPath()
		if err != nil {
			return rewrite.MustDefault(), nil
		}
		if _, err := os.Stat(def); err != nil {
			logger.Debug("using built-in rules")
			return rewrite.MustDefault(), nil
		}
		path = def
	}
	logger.Debug("loading rules", "path", path)
	return rewrite.Load(path)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/hsproject/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/hsproject/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

func defaultRulesPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, rulesFileName), nil
}

// =============================================================================
// Input Helpers
// =============================================================================

// readInput reads the document named by path, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, nil
	}
	if err := errors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

// writeOutput writes data to path, or to the command's output when path is
// empty.
func (c *CLI) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := c.out.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
