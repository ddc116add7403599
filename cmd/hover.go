/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samwightt/gqlhover/pkg/diagnostic"
	"github.com/samwightt/gqlhover/pkg/hover"
	"github.com/samwightt/gqlhover/pkg/render"
	"github.com/samwightt/gqlhover/pkg/syntax"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var (
	// ErrParseFailed is returned when the query document is not valid
	// GraphQL syntax. The details have already been written to stderr.
	ErrParseFailed = errors.New("document does not parse")

	// ErrNoHover is returned when nothing in the schema describes the
	// requested position.
	ErrNoHover = errors.New("no hover information")
)

var (
	signatureStyle     = lipgloss.NewStyle().Bold(true)
	documentationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type positionOptions struct {
	line      int
	character int
}

func (o *positionOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.line, "line", "l", 0, "Zero-based line of the position")
	cmd.Flags().IntVarP(&o.character, "character", "c", 0, "Zero-based character of the position within the line")
}

func (o *positionOptions) position() (syntax.Position, error) {
	if o.line < 0 || o.character < 0 {
		return syntax.Position{}, fmt.Errorf("--line and --character must not be negative")
	}
	return syntax.Position{Line: o.line, Character: o.character}, nil
}

// reportParseError writes a gqlparser syntax error with a snippet of the
// offending line to w and returns ErrParseFailed.
func reportParseError(w io.Writer, err error, sourceName string, text string) error {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) || len(gqlErr.Locations) == 0 {
		fmt.Fprintf(w, "✗ %v\n", err)
		return ErrParseFailed
	}

	loc := Location{Line: gqlErr.Locations[0].Line, Column: gqlErr.Locations[0].Column}
	lines := strings.Split(text, "\n")

	output := "✗ Query does not parse:\n"
	output += diagnostic.RenderLocation(sourceName, loc.Line, loc.Column) + "\n"
	if loc.Line > 0 && loc.Line <= len(lines) {
		sourceLine := strings.TrimSuffix(lines[loc.Line-1], "\r")
		output += diagnostic.RenderSnippet(sourceLine, loc.Line, loc.Column, 1, gqlErr.Message) + "\n"
	}
	if zshHelp := detectZshEscapeIssue(loc, text, sourceName); zshHelp != "" {
		output += diagnostic.RenderHelp(zshHelp) + "\n"
	}

	fmt.Fprint(w, output)
	return ErrParseFailed
}

// detectZshEscapeIssue checks if a parse error might be caused by zsh's history
// expansion escaping `!` as `\!`. Returns a help message if detected.
func detectZshEscapeIssue(loc Location, sourceContent string, sourceName string) string {
	if sourceName != "stdin" {
		return ""
	}
	if !strings.Contains(sourceContent, `\!`) {
		return ""
	}
	lines := strings.Split(sourceContent, "\n")
	if loc.Line < 1 || loc.Line > len(lines) {
		return ""
	}
	line := lines[loc.Line-1]
	col := loc.Column - 1
	if col >= 0 && col < len(line)-1 && line[col] == '\\' && line[col+1] == '!' {
		return "it looks like zsh escaped `!` as `\\!`. Try using a heredoc instead:\n" +
			"       cat <<'EOF' | gqlhover hover -l 0 -c 8\n" +
			"       query { ... }\n" +
			"       EOF"
	}
	return ""
}

// suggestion returns a "did you mean" hint when the hovered field, argument
// or directive is not known to the schema.
func suggestion(schema *ast.Schema, chain syntax.Chain) string {
	names, known := hover.Candidates(schema, chain)
	if known {
		return ""
	}
	if closest := findClosest(chain.Leaf().Name, names); closest != "" {
		return fmt.Sprintf("did you mean `%s`?", closest)
	}
	return ""
}

func formatHoverText(res *hover.Result) string {
	return string(res.Content)
}

// formatHoverPretty renders the hover followed by the source line with the
// hovered token underlined.
func formatHoverPretty(res *hover.Result, sourceName string) string {
	output := signatureStyle.Render(res.Content.Signature())
	if doc := res.Content.Documentation(); doc != "" {
		output += "\n\n" + documentationStyle.Render(doc)
	}

	span, ok := res.Target()
	if !ok {
		return output
	}
	start := syntax.PositionAt(res.Text, span.Start)
	end := syntax.PositionAt(res.Text, span.End)
	lines := strings.Split(res.Text, "\n")
	if start.Line >= len(lines) {
		return output
	}
	line := strings.TrimSuffix(lines[start.Line], "\r")

	length := span.Len()
	if end.Line != start.Line {
		length = len([]rune(line)) - start.Character
	}

	output += "\n\n" + diagnostic.RenderLocation(sourceName, start.Line+1, start.Character+1)
	output += "\n" + diagnostic.RenderHighlight(line, start.Line+1, start.Character+1, length, "")
	return output
}

func NewHoverCmd() *cobra.Command {
	opts := &positionOptions{}

	cmd := &cobra.Command{
		Use:   "hover [file]",
		Short: "Describe the schema element at a position in a query",
		Long: `Prints the hover information for a position in a GraphQL query document:
the signature of the field, argument, directive, enum value or type found there,
followed by its description or deprecation notice from the schema.

The query can be provided as a file path argument or piped via stdin.

Exit codes:
  0 - Hover information was found
  1 - Nothing to show at the position, or the query does not parse

Output formats:
  text    The hover content as an editor would show it (default when piping)
  json    An LSP Hover object {"contents": {...}, "range": {...}}, or null
  pretty  Styled content and the hovered token underlined (default in terminal)`,
		Example: `  # Hover over the field on the third line
  gqlhover hover query.graphql --line 2 --character 6

  # Hover from stdin
  echo 'query { user(id: 1) { name } }' | gqlhover hover -l 0 -c 10

  # LSP-shaped output for editor integrations
  gqlhover hover query.graphql -l 2 -c 6 -f json`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHover(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runHover(cmd *cobra.Command, args []string, opts *positionOptions) error {
	pos, err := opts.position()
	if err != nil {
		return err
	}

	schema, err := loadCliForSchema()
	if err != nil {
		return err
	}

	sourceName, text, err := readDocument(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	res, err := hover.Resolve(schema, text, pos)
	if err != nil {
		logger.V(1).Info("parse failed", "source", sourceName, "error", err.Error())
		return reportParseError(cmd.ErrOrStderr(), err, sourceName, text)
	}
	logger.V(1).Info("resolved position",
		"source", sourceName,
		"offset", res.Offset,
		"chain", res.Chain.String(),
		"entity", hover.EntityKind(res.Entity))

	if hint := suggestion(schema, res.Chain); hint != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), diagnostic.RenderHelp(hint))
	}

	if res.Content != "" || outputFormat == render.FormatJSON {
		renderer := render.Renderer[*hover.Result]{
			Data:       []*hover.Result{res},
			TextFormat: formatHoverText,
			PrettyFormat: func(results []*hover.Result) string {
				return formatHoverPretty(results[0], sourceName)
			},
			JSONFormat: func(results []*hover.Result) any {
				return results[0].LSP()
			},
		}

		output, err := renderer.Render(outputFormat)
		if err != nil {
			return fmt.Errorf("error rendering output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	if res.Content == "" {
		return fmt.Errorf("%w at %d:%d", ErrNoHover, pos.Line, pos.Character)
	}
	return nil
}
