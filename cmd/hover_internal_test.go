package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/samwightt/gqlhover/pkg/hover"
	"github.com/samwightt/gqlhover/pkg/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestDetectZshEscapeIssue_NonStdin(t *testing.T) {
	result := detectZshEscapeIssue(Location{Line: 1, Column: 9}, `query { \!bad }`, "query.graphql")
	assert.Empty(t, result)
}

func TestDetectZshEscapeIssue_NoBackslashBang(t *testing.T) {
	result := detectZshEscapeIssue(Location{Line: 1, Column: 1}, `query { bad }`, "stdin")
	assert.Empty(t, result)
}

func TestDetectZshEscapeIssue_LineOutOfBounds(t *testing.T) {
	assert.Empty(t, detectZshEscapeIssue(Location{Line: 0, Column: 1}, `query { \!bad }`, "stdin"))
	assert.Empty(t, detectZshEscapeIssue(Location{Line: 10, Column: 1}, `query { \!bad }`, "stdin"))
}

func TestDetectZshEscapeIssue_BackslashBangAtErrorLocation(t *testing.T) {
	result := detectZshEscapeIssue(Location{Line: 1, Column: 9}, `query { \!bad }`, "stdin")
	assert.Contains(t, result, "zsh escaped")
	assert.Contains(t, result, "heredoc")
}

func TestDetectZshEscapeIssue_BackslashBangNotAtErrorLocation(t *testing.T) {
	result := detectZshEscapeIssue(Location{Line: 1, Column: 1}, `query { \!bad }`, "stdin")
	assert.Empty(t, result)
}

func TestDetectZshEscapeIssue_MultilineContent(t *testing.T) {
	result := detectZshEscapeIssue(Location{Line: 2, Column: 3}, "query {\n  \x5c!bad\n}", "stdin")
	assert.Contains(t, result, "heredoc")
}

func TestDetectZshEscapeIssue_ColumnEdges(t *testing.T) {
	assert.Empty(t, detectZshEscapeIssue(Location{Line: 1, Column: 0}, `\!query`, "stdin"))
	assert.Empty(t, detectZshEscapeIssue(Location{Line: 1, Column: 6}, `hello\`, "stdin"))
}

func TestReportParseError_WritesSnippet(t *testing.T) {
	text := "query {\n  thing {\n}"
	_, parseErr := syntax.Parse(text)
	require.Error(t, parseErr)

	var out bytes.Buffer
	err := reportParseError(&out, parseErr, "query.graphql", text)
	assert.True(t, errors.Is(err, ErrParseFailed))
	assert.Contains(t, out.String(), "Query does not parse")
	assert.Contains(t, out.String(), "query.graphql:3:")
	assert.Contains(t, out.String(), "^")
}

func TestReportParseError_WithoutLocation(t *testing.T) {
	var out bytes.Buffer
	err := reportParseError(&out, errors.New("boom"), "stdin", "")
	assert.True(t, errors.Is(err, ErrParseFailed))
	assert.Contains(t, out.String(), "boom")
}

func mustSchema(t *testing.T, input string) *ast.Schema {
	t.Helper()
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: input})
	require.NoError(t, err)
	return schema
}

func TestSuggestion(t *testing.T) {
	schema := mustSchema(t, `type Query { user: User } type User { name: String email: String }`)

	res, err := hover.Resolve(schema, "{ user { nmae } }", syntax.Position{Line: 0, Character: 10})
	require.NoError(t, err)
	assert.Equal(t, "did you mean `name`?", suggestion(schema, res.Chain))

	res, err = hover.Resolve(schema, "{ user { name } }", syntax.Position{Line: 0, Character: 10})
	require.NoError(t, err)
	assert.Empty(t, suggestion(schema, res.Chain))
}

func TestFormatHoverPretty_UnderlinesToken(t *testing.T) {
	schema := mustSchema(t, `type Query { "The user." user: User } type User { name: String }`)
	text := "query {\n  user { name }\n}"

	res, err := hover.Resolve(schema, text, syntax.Position{Line: 1, Character: 3})
	require.NoError(t, err)

	output := formatHoverPretty(res, "query.graphql")
	assert.Contains(t, output, "Query.user: User")
	assert.Contains(t, output, "The user.")
	assert.Contains(t, output, "query.graphql:2:3")
	assert.Contains(t, output, "  user { name }")
	assert.True(t, strings.Contains(output, "^^^^") && !strings.Contains(output, "^^^^^"))
}

func TestPositionOptions_RejectsNegative(t *testing.T) {
	opts := positionOptions{line: -1}
	_, err := opts.position()
	assert.Error(t, err)

	opts = positionOptions{line: 2, character: 4}
	pos, err := opts.position()
	require.NoError(t, err)
	assert.Equal(t, syntax.Position{Line: 2, Character: 4}, pos)
}
