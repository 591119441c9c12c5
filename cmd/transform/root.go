package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudoguy/kibitzr/internal/logging"
	provider "github.com/sudoguy/kibitzr/internal/providers/transform"
	"github.com/sudoguy/kibitzr/internal/transform/engine"
)

// Exit codes
const (
	exitOK          = 0
	exitSoftFailure = 1
	exitFault       = 2
)

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transform",
		Short: "Render templates against fetched content",
		Long: `transform renders a template against lazy JSON, CSS and XPath views of
fetched content and prints the result.

Templates see conf, content, lines, json, css, xpath and the text filter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newEnginesCmd())
	rootCmd.AddCommand(newToolsCmd())

	return rootCmd
}

func newEnginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List template engines",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range engine.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List registered transform tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := provider.NewProvider(logging.NewNop(), nil)
			if err != nil {
				return &exitError{code: exitFault, err: err}
			}
			registry, err := newRegistry(p)
			if err != nil {
				return &exitError{code: exitFault, err: err}
			}
			for _, tool := range registry.Tools() {
				fmt.Fprintln(cmd.OutOrStdout(), tool)
			}
			return nil
		},
	}
}
