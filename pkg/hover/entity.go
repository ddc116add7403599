package hover

import "github.com/vektah/gqlparser/v2/ast"

// Entity is the schema element a hover describes. It is one of FieldInfo,
// ArgumentInfo, DirectiveInfo, EnumValueInfo, TypeInfo or
// VariableTypeInfo. A nil Entity means there is nothing to show.
type Entity interface {
	isEntity()
}

// FieldInfo is a field of an object, interface or input object type.
type FieldInfo struct {
	Parent *ast.Definition
	Field  *ast.FieldDefinition
}

// ArgumentInfo is an argument of a field or of a directive. Exactly one of
// Field and Directive is set.
type ArgumentInfo struct {
	Parent    *ast.Definition
	Field     *ast.FieldDefinition
	Directive *ast.DirectiveDefinition
	Argument  *ast.ArgumentDefinition
}

type DirectiveInfo struct {
	Directive *ast.DirectiveDefinition
}

type EnumValueInfo struct {
	Enum  *ast.Definition
	Value *ast.EnumValueDefinition
}

// TypeInfo is a named type reference. When the reference narrows the
// enclosing field to its own return type, Parent and Field describe that
// field.
type TypeInfo struct {
	Type   *ast.Definition
	Parent *ast.Definition
	Field  *ast.FieldDefinition
}

// VariableTypeInfo is the declared type of a variable.
type VariableTypeInfo struct {
	Type *ast.Type
}

func (FieldInfo) isEntity()        {}
func (ArgumentInfo) isEntity()     {}
func (DirectiveInfo) isEntity()    {}
func (EnumValueInfo) isEntity()    {}
func (TypeInfo) isEntity()         {}
func (VariableTypeInfo) isEntity() {}

// EntityKind names the variant held by e, "None" for nil.
func EntityKind(e Entity) string {
	switch e.(type) {
	case FieldInfo:
		return "FieldInfo"
	case ArgumentInfo:
		return "ArgumentInfo"
	case DirectiveInfo:
		return "DirectiveInfo"
	case EnumValueInfo:
		return "EnumValueInfo"
	case TypeInfo:
		return "TypeInfo"
	case VariableTypeInfo:
		return "VariableTypeInfo"
	default:
		return "None"
	}
}
