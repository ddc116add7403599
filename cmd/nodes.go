/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samwightt/gqlhover/pkg/render"
	"github.com/samwightt/gqlhover/pkg/syntax"
	"github.com/spf13/cobra"
)

func formatRange(n NodeInfo) string {
	return fmt.Sprintf("%d:%d-%d:%d", n.Start.Line, n.Start.Character, n.End.Line, n.End.Character)
}

func formatNodeName(n NodeInfo) string {
	if n.Alias != "" {
		return n.Alias + ": " + n.Name
	}
	return n.Name
}

func formatNodeText(n NodeInfo) string {
	line := strings.Repeat("  ", n.Depth) + n.Kind
	if name := formatNodeName(n); name != "" {
		line += " " + name
	}
	return line + " " + formatRange(n)
}

func formatNodesPretty(nodes []NodeInfo) string {
	t := makeTable()

	for _, n := range nodes {
		t.Row(strconv.Itoa(n.Depth), n.Kind, formatNodeName(n), formatRange(n))
	}
	t.Headers("depth", "kind", "name", "range")

	return t.String()
}

func NewNodesCmd() *cobra.Command {
	opts := &positionOptions{}

	cmd := &cobra.Command{
		Use:   "nodes [file]",
		Short: "Show the syntax nodes enclosing a position in a query",
		Long: `Prints the chain of syntax nodes from the document root down to the node
found at a position, the same chain the hover command interprets.

The schema is not consulted. The query can be provided as a file path argument
or piped via stdin.

Output formats:
  text    One indented line per node: "Field thing 0:8-0:13" (default when piping)
  json    [{"depth": 0, "kind": "Document", ...}, ...]
  pretty  Formatted table with columns (default in terminal)`,
		Example: `  # Why does hovering here show the parent field?
  gqlhover nodes query.graphql --line 1 --character 9

  # From stdin
  echo '{ thing { testField } }' | gqlhover nodes -l 0 -c 12 -f json`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNodes(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runNodes(cmd *cobra.Command, args []string, opts *positionOptions) error {
	pos, err := opts.position()
	if err != nil {
		return err
	}

	sourceName, text, err := readDocument(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	root, err := syntax.Parse(text)
	if err != nil {
		return reportParseError(cmd.ErrOrStderr(), err, sourceName, text)
	}

	offset := syntax.OffsetAt(text, pos)
	chain := syntax.Resolve(root, offset)
	logger.V(1).Info("resolved position", "source", sourceName, "offset", offset, "chain", chain.String())

	nodes := make([]NodeInfo, 0, len(chain))
	for i, n := range chain {
		nodes = append(nodes, NodeInfo{
			Depth: i,
			Kind:  n.Kind.String(),
			Name:  n.Name,
			Alias: n.Alias,
			Start: syntax.PositionAt(text, n.Span.Start),
			End:   syntax.PositionAt(text, n.Span.End),
		})
	}

	renderer := render.Renderer[NodeInfo]{
		Data:         nodes,
		TextFormat:   formatNodeText,
		PrettyFormat: formatNodesPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
