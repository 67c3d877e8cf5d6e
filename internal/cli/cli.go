// Package cli implements the nxgraph command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nxgraph/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for the root command and display.
const appName = "nxgraph"

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI's logger is attached to the command context so subcommands can
// retrieve it with loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "nxgraph explores graphs with classical algorithms",
		Long:         `nxgraph is a CLI tool for exploring graphs stored in TOML files: shortest paths, topological generations, and Graphviz exports.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.completionCommand())

	return root
}
