package hover

import (
	"github.com/samwightt/gqlhover/pkg/syntax"
	"github.com/vektah/gqlparser/v2/ast"
)

// Annotate replays the schema's typing rules along chain and returns the
// entity described by its leaf. Names that do not resolve against the
// schema are absorbed: the result degrades to the nearest ancestor that
// does resolve, or to nil.
func Annotate(schema *ast.Schema, chain syntax.Chain) Entity {
	if schema == nil || len(chain) == 0 {
		return nil
	}

	c := cursor{schema: schema}
	for i, n := range chain {
		c = c.enter(chain.Parent(i), n)
	}
	return c.entity(chain.Leaf())
}

// entity picks the entity for leaf. Some kinds always describe themselves;
// everything else takes the most specific thing the cursor knows.
func (c cursor) entity(leaf *syntax.Node) Entity {
	switch leaf.Kind {
	case syntax.EnumValue:
		if c.enumValue != nil {
			return EnumValueInfo{Enum: c.enumType, Value: c.enumValue}
		}
	case syntax.Variable:
		if c.variableType != nil {
			return VariableTypeInfo{Type: c.variableType}
		}
	case syntax.NamedType:
		if c.namedType != nil {
			return c.typeInfo(c.namedType)
		}
	case syntax.FragmentSpread:
		fragment := c.document.Fragment(leaf.Name)
		if fragment == nil {
			return nil
		}
		if condition := fragment.Child(syntax.NamedType); condition != nil {
			if def := c.schema.Types[condition.Name]; def != nil {
				return TypeInfo{Type: def}
			}
		}
		return nil
	}

	switch {
	case c.enumValue != nil:
		return EnumValueInfo{Enum: c.enumType, Value: c.enumValue}
	case c.inputField != nil:
		return FieldInfo{Parent: c.inputParent, Field: c.inputField}
	case c.argument != nil:
		if c.argDirective != nil {
			return ArgumentInfo{Directive: c.argDirective, Argument: c.argument}
		}
		return ArgumentInfo{Parent: c.parent, Field: c.field, Argument: c.argument}
	case c.directive != nil:
		return DirectiveInfo{Directive: c.directive}
	case c.field != nil:
		return FieldInfo{Parent: c.parent, Field: c.field}
	case c.namedType != nil:
		return c.typeInfo(c.namedType)
	case c.variableType != nil:
		return VariableTypeInfo{Type: c.variableType}
	}
	return nil
}

// typeInfo describes def, through the enclosing field when def is exactly
// what that field returns.
func (c cursor) typeInfo(def *ast.Definition) TypeInfo {
	info := TypeInfo{Type: def}
	if c.field != nil && baseTypeName(c.field.Type) == def.Name {
		info.Parent, info.Field = c.parent, c.field
	}
	return info
}
