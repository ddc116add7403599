/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"os"

	"github.com/go-logr/logr"
	"github.com/samwightt/gqlhover/pkg/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	schemaFilePath string
	outputFormat   render.Format
	verbosity      int
	logger         = logr.Discard()
)

func formatFlag() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return string(render.FormatPretty)
	}
	return string(render.FormatText)
}

// NewRootCmd creates and returns the root command with all subcommands attached.
// This function creates a fresh command tree, ensuring no state leaks between invocations.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gqlhover",
		Short: "Show what the schema says about any position in a GraphQL query",
		Long: `gqlhover answers the question an editor asks when you hover over a GraphQL query:
what is this? Point it at a position in a query document and it prints the field,
argument, directive, enum value or type found there, with its signature and the
documentation from the schema.

Positions are zero-based line and character numbers, like in the Language Server
Protocol. Queries are read from a file argument or from stdin.

By default, gqlhover tries to read ./schema.graphql in the current directory.
A different schema file can be specified using -s.

Output can be formatted as pretty text (default in terminals), plain text
(default when piping), or JSON shaped like an LSP hover response.`,
		Example: `  # What is the field on the third line?
  gqlhover hover query.graphql --line 2 --character 6

  # Hover from stdin with a custom schema
  echo 'query { user { name } }' | gqlhover hover -s api.graphql -l 0 -c 16

  # Feed an editor integration
  gqlhover hover query.graphql -l 2 -c 6 -f json

  # Debug which syntax nodes sit under a position
  gqlhover nodes query.graphql -l 2 -c 6`,
	}

	// Persistent flags
	cmd.PersistentFlags().StringVarP(&schemaFilePath, "schema", "s", "schema.graphql", "File path of GraphQL schema")

	var formatStr string
	cmd.PersistentFlags().StringVarP(&formatStr, "format", "f", formatFlag(), "Output format: json, text, pretty (default: pretty if interactive, text otherwise)")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Log resolution steps to stderr (repeat for more detail)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		outputFormat, err = render.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		logger = newLogger(cmd.ErrOrStderr(), verbosity)
		return nil
	}

	cmd.AddCommand(NewHoverCmd())
	cmd.AddCommand(NewNodesCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the CLI with the given arguments and returns stdout, stderr, and any error.
// This is useful for testing.
func ExecuteWithArgs(args []string) (stdout string, stderr string, err error) {
	return ExecuteWithArgsAndStdin(args, nil)
}

// ExecuteWithArgsAndStdin runs the CLI with the given arguments and stdin, returns stdout, stderr, and any error.
// This is useful for testing commands that read from stdin.
func ExecuteWithArgsAndStdin(args []string, stdin *bytes.Buffer) (stdout string, stderr string, err error) {
	cmd := NewRootCmd()

	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)

	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs(args)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err = cmd.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}
