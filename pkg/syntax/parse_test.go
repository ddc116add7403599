package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// text returns the source covered by a node.
func text(src string, n *Node) string {
	return string([]rune(src)[n.Span.Start:n.Span.End])
}

func TestParse_ShorthandQuery(t *testing.T) {
	src := "{ thing { testField } }"
	doc, err := Parse(src)
	require.NoError(t, err)

	assert.Equal(t, Document, doc.Kind)
	assert.Equal(t, Span{Start: 0, End: len(src)}, doc.Span)
	require.Len(t, doc.Children, 1)

	op := doc.Children[0]
	assert.Equal(t, OperationDefinition, op.Kind)
	assert.Equal(t, ast.Query, op.Operation)
	assert.Equal(t, src, text(src, op))
}

func TestParse_FieldSpans(t *testing.T) {
	src := "query { thing { testField } }"
	doc, err := Parse(src)
	require.NoError(t, err)

	selections := doc.Children[0].Child(SelectionSet)
	require.NotNil(t, selections)
	assert.Equal(t, "{ thing { testField } }", text(src, selections))

	thing := selections.Children[0]
	assert.Equal(t, Field, thing.Kind)
	assert.Equal(t, "thing", thing.Name)
	assert.Equal(t, "thing { testField }", text(src, thing))

	testField := thing.Child(SelectionSet).Children[0]
	assert.Equal(t, "testField", testField.Name)
	assert.Equal(t, Span{Start: 16, End: 25}, testField.Span)
}

func TestParse_AliasedField(t *testing.T) {
	src := "query { thing { other: testField } }"
	doc, err := Parse(src)
	require.NoError(t, err)

	field := doc.Children[0].Child(SelectionSet).Children[0].Child(SelectionSet).Children[0]
	assert.Equal(t, "testField", field.Name)
	assert.Equal(t, "other", field.Alias)
	assert.Equal(t, "other: testField", text(src, field))
}

func TestParse_OperationHeader(t *testing.T) {
	src := `mutation Update($id: ID!, $tags: [String!] = ["a"]) @cached { update(id: $id) }`
	doc, err := Parse(src)
	require.NoError(t, err)

	op := doc.Children[0]
	assert.Equal(t, ast.Mutation, op.Operation)
	assert.Equal(t, "Update", op.Name)
	require.Len(t, op.Children, 4)

	id := op.Children[0]
	assert.Equal(t, VariableDefinition, id.Kind)
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "$id: ID!", text(src, id))
	assert.Equal(t, "$id", text(src, id.Child(Variable)))
	nonNull := id.Child(NonNullType)
	require.NotNil(t, nonNull)
	assert.Equal(t, "ID!", text(src, nonNull))
	assert.Equal(t, "ID", text(src, nonNull.Child(NamedType)))

	tags := op.Children[1]
	assert.Equal(t, `$tags: [String!] = ["a"]`, text(src, tags))
	list := tags.Child(ListType)
	require.NotNil(t, list)
	assert.Equal(t, "[String!]", text(src, list))
	assert.Equal(t, `["a"]`, text(src, tags.Child(ListValue)))

	directive := op.Children[2]
	assert.Equal(t, Directive, directive.Kind)
	assert.Equal(t, "@cached", text(src, directive))

	assert.Equal(t, SelectionSet, op.Children[3].Kind)
}

func TestParse_ArgumentsAndValues(t *testing.T) {
	src := `{ search(filter: {name: "x", colors: [RED, GREEN]}, first: 10, exact: true, after: null, ratio: 1.5) }`
	doc, err := Parse(src)
	require.NoError(t, err)

	field := doc.Children[0].Child(SelectionSet).Children[0]
	require.Len(t, field.Children, 5)

	filter := field.Children[0]
	assert.Equal(t, Argument, filter.Kind)
	assert.Equal(t, `filter: {name: "x", colors: [RED, GREEN]}`, text(src, filter))

	object := filter.Child(ObjectValue)
	require.Len(t, object.Children, 2)
	assert.Equal(t, `name: "x"`, text(src, object.Children[0]))
	assert.Equal(t, StringValue, object.Children[0].Children[0].Kind)
	assert.Equal(t, `"x"`, text(src, object.Children[0].Children[0]))

	colors := object.Children[1].Child(ListValue)
	require.Len(t, colors.Children, 2)
	assert.Equal(t, EnumValue, colors.Children[1].Kind)
	assert.Equal(t, "GREEN", colors.Children[1].Name)

	assert.Equal(t, IntValue, field.Children[1].Children[0].Kind)
	assert.Equal(t, BooleanValue, field.Children[2].Children[0].Kind)
	assert.Equal(t, NullValue, field.Children[3].Children[0].Kind)
	assert.Equal(t, FloatValue, field.Children[4].Children[0].Kind)
}

func TestParse_Directives(t *testing.T) {
	src := "query { thing { testField @skip(if:true) } }"
	doc, err := Parse(src)
	require.NoError(t, err)

	field := doc.Children[0].Child(SelectionSet).Children[0].Child(SelectionSet).Children[0]
	directive := field.Child(Directive)
	require.NotNil(t, directive)
	assert.Equal(t, "skip", directive.Name)
	assert.Equal(t, "@skip(if:true)", text(src, directive))
	assert.Equal(t, "if:true", text(src, directive.Child(Argument)))
}

func TestParse_Fragments(t *testing.T) {
	src := `query { thing { ...Parts ... on TestType { testField } ... @include(if: true) { testField } } }
fragment Parts on TestType { testEnumField }`
	doc, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, doc.Children, 2)

	selections := doc.Children[0].Child(SelectionSet).Children[0].Child(SelectionSet)
	require.Len(t, selections.Children, 3)

	spread := selections.Children[0]
	assert.Equal(t, FragmentSpread, spread.Kind)
	assert.Equal(t, "...Parts", text(src, spread))

	inline := selections.Children[1]
	assert.Equal(t, InlineFragment, inline.Kind)
	assert.Equal(t, "TestType", inline.Name)
	assert.Equal(t, "TestType", text(src, inline.Child(NamedType)))

	untyped := selections.Children[2]
	assert.Equal(t, InlineFragment, untyped.Kind)
	assert.Empty(t, untyped.Name)
	assert.NotNil(t, untyped.Child(Directive))

	fragment := doc.Children[1]
	assert.Equal(t, FragmentDefinition, fragment.Kind)
	assert.Equal(t, "Parts", fragment.Name)
	assert.Equal(t, "TestType", fragment.Child(NamedType).Name)
}

func TestParse_SkipsComments(t *testing.T) {
	src := "query {\n  # the thing\n  thing\n}"
	doc, err := Parse(src)
	require.NoError(t, err)

	field := doc.Children[0].Child(SelectionSet).Children[0]
	assert.Equal(t, "thing", text(src, field))
}

func TestParse_SyntaxError(t *testing.T) {
	doc, err := Parse("query { thing ")
	assert.Nil(t, doc)
	require.Error(t, err)

	var gqlErr *gqlerror.Error
	assert.True(t, errors.As(err, &gqlErr))
	assert.NotEmpty(t, gqlErr.Locations)
}

func TestParse_EmptyDocument(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Document, doc.Kind)
	assert.Empty(t, doc.Children)
}
