package hover

import (
	"github.com/samwightt/gqlhover/pkg/syntax"
	"github.com/vektah/gqlparser/v2/ast"
)

// typenameField is the meta field every composite type answers to.
var typenameField = &ast.FieldDefinition{
	Name:        "__typename",
	Description: "The name of the current Object type at runtime.",
	Type:        ast.NonNullNamedType("String", nil),
}

// cursor is what a type checker knows at one node of the document. It is
// a value: enter returns an updated copy and never touches the receiver.
type cursor struct {
	schema   *ast.Schema
	document *syntax.Node

	// definition is the enclosing operation or fragment definition.
	definition *syntax.Node

	// composite is the object, interface or union type fields are read from.
	composite *ast.Definition

	parent *ast.Definition
	field  *ast.FieldDefinition

	directive *ast.DirectiveDefinition

	// argument belongs to argDirective when that is set, else to field.
	argument     *ast.ArgumentDefinition
	argDirective *ast.DirectiveDefinition

	inputType   *ast.Type
	inputParent *ast.Definition
	inputField  *ast.FieldDefinition

	enumType  *ast.Definition
	enumValue *ast.EnumValueDefinition

	namedType    *ast.Definition
	variableType *ast.Type
}

// enter returns the cursor for n, whose parent in the chain is parent.
func (c cursor) enter(parent, n *syntax.Node) cursor {
	switch n.Kind {
	case syntax.Document:
		c = cursor{schema: c.schema, document: n}

	case syntax.OperationDefinition:
		c = cursor{schema: c.schema, document: c.document, definition: n}
		c.composite = c.rootType(n.Operation)

	case syntax.FragmentDefinition:
		c = cursor{schema: c.schema, document: c.document, definition: n}
		if condition := n.Child(syntax.NamedType); condition != nil {
			c.composite = c.compositeNamed(condition.Name)
		}

	case syntax.InlineFragment:
		if n.Name != "" {
			c.composite = c.compositeNamed(n.Name)
		}

	case syntax.Field:
		c.clearInput()
		c.directive = nil
		c.field = c.lookupField(n.Name)
		if c.field == nil {
			c.parent, c.composite = nil, nil
			break
		}
		c.parent = c.composite
		c.composite = c.compositeNamed(baseTypeName(c.field.Type))

	case syntax.Directive:
		c.clearInput()
		c.directive = c.schema.Directives[n.Name]

	case syntax.Argument:
		c.clearInput()
		if parent != nil && parent.Kind == syntax.Directive {
			c.argDirective = c.directive
			if c.directive != nil {
				c.argument = c.directive.Arguments.ForName(n.Name)
			}
		} else if c.field != nil {
			c.argument = c.field.Arguments.ForName(n.Name)
		}
		if c.argument != nil {
			c.inputType = c.argument.Type
		}

	case syntax.VariableDefinition:
		c.clearInput()
		c.variableType = n.TypeRef()
		c.inputType = c.variableType

	case syntax.Variable:
		c.variableType = nil
		if def := c.definition.VariableDefinition(n.Name); def != nil {
			c.variableType = def.TypeRef()
		}

	case syntax.NamedType:
		c.namedType = c.schema.Types[n.Name]

	case syntax.ListValue:
		if c.inputType != nil {
			c.inputType = c.inputType.Elem
		}

	case syntax.ObjectField:
		c.inputParent, c.inputField = nil, nil
		if def := c.typeOf(c.inputType); def != nil && def.Kind == ast.InputObject {
			c.inputParent = def
			c.inputField = def.Fields.ForName(n.Name)
		}
		c.inputType = nil
		if c.inputField != nil {
			c.inputType = c.inputField.Type
		}

	case syntax.EnumValue:
		c.enumType, c.enumValue = nil, nil
		if def := c.typeOf(c.inputType); def != nil && def.Kind == ast.Enum {
			c.enumType = def
			c.enumValue = def.EnumValues.ForName(n.Name)
		}
	}
	return c
}

func (c *cursor) clearInput() {
	c.argument, c.argDirective = nil, nil
	c.inputType, c.inputParent, c.inputField = nil, nil, nil
	c.enumType, c.enumValue = nil, nil
	c.namedType, c.variableType = nil, nil
}

func (c cursor) rootType(op ast.Operation) *ast.Definition {
	switch op {
	case ast.Mutation:
		return c.schema.Mutation
	case ast.Subscription:
		return c.schema.Subscription
	default:
		return c.schema.Query
	}
}

func (c cursor) compositeNamed(name string) *ast.Definition {
	if def := c.schema.Types[name]; def != nil && def.IsCompositeType() {
		return def
	}
	return nil
}

func (c cursor) lookupField(name string) *ast.FieldDefinition {
	if c.composite == nil {
		return nil
	}
	if name == typenameField.Name {
		return typenameField
	}
	return c.composite.Fields.ForName(name)
}

// typeOf returns the definition of the named type under any list and
// non-null wrappers of t.
func (c cursor) typeOf(t *ast.Type) *ast.Definition {
	if t == nil {
		return nil
	}
	return c.schema.Types[baseTypeName(t)]
}

// baseTypeName returns the underlying named type from a (potentially wrapped) type.
// For example, [User!]! returns "User".
func baseTypeName(t *ast.Type) string {
	if t.Elem != nil {
		return baseTypeName(t.Elem)
	}
	return t.NamedType
}
