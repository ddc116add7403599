package hover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestFormat_Nil(t *testing.T) {
	assert.Equal(t, Content(""), Format(nil))
}

func TestFormat_FieldWithoutDocumentation(t *testing.T) {
	parent := &ast.Definition{Name: "Query"}
	field := &ast.FieldDefinition{Name: "listOfThing", Type: ast.ListType(ast.NonNullNamedType("TestType", nil), nil)}

	got := Format(FieldInfo{Parent: parent, Field: field})
	assert.Equal(t, Content("Query.listOfThing: [TestType!]"), got)
	assert.Empty(t, got.Documentation())
}

func TestFormat_DeprecationWithoutReasonOrDefinition(t *testing.T) {
	parent := &ast.Definition{Name: "Query"}
	field := &ast.FieldDefinition{
		Name:       "old",
		Type:       ast.NamedType("Int", nil),
		Directives: ast.DirectiveList{{Name: "deprecated"}},
	}

	assert.Equal(t, Content("Query.old: Int\n\nDeprecated: "), Format(FieldInfo{Parent: parent, Field: field}))
}

func TestFormat_DirectiveWithoutDescription(t *testing.T) {
	assert.Equal(t, Content("@live"), Format(DirectiveInfo{Directive: &ast.DirectiveDefinition{Name: "live"}}))
}

func TestFormat_TypeWithFieldContextDropsDescription(t *testing.T) {
	typ := &ast.Definition{Name: "TestType", Description: "A type."}
	parent := &ast.Definition{Name: "Query"}
	field := &ast.FieldDefinition{Name: "thing", Type: ast.NamedType("TestType", nil)}

	assert.Equal(t, Content("Query.thing: TestType"), Format(TypeInfo{Type: typ, Parent: parent, Field: field}))
	assert.Equal(t, Content("TestType\n\nA type."), Format(TypeInfo{Type: typ}))
}

func TestFormat_VariableType(t *testing.T) {
	typ := ast.NonNullListType(ast.ListType(ast.NonNullNamedType("Int", nil), nil), nil)
	assert.Equal(t, Content("[[Int!]]!"), Format(VariableTypeInfo{Type: typ}))
}

func TestFormat_IncompleteEntitiesRenderNothing(t *testing.T) {
	for _, e := range []Entity{
		FieldInfo{},
		ArgumentInfo{},
		ArgumentInfo{Argument: &ast.ArgumentDefinition{Name: "id", Type: ast.NamedType("ID", nil)}},
		DirectiveInfo{},
		EnumValueInfo{},
		TypeInfo{},
		VariableTypeInfo{},
	} {
		assert.Equal(t, Content(""), Format(e), EntityKind(e))
	}
}

func TestContent_Sections(t *testing.T) {
	c := Content("Query.thing: TestType\n\nFirst paragraph.\n\nSecond paragraph.")

	assert.Equal(t, "Query.thing: TestType", c.Signature())
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", c.Documentation())
}
