package hover

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Content is the text shown for a hover: a signature line, optionally
// followed by a blank line and documentation. Empty means no hover.
type Content string

const sectionBreak = "\n\n"

// Signature returns the first line of the content.
func (c Content) Signature() string {
	signature, _, _ := strings.Cut(string(c), sectionBreak)
	return signature
}

// Documentation returns the section after the signature, if any.
func (c Content) Documentation() string {
	_, doc, _ := strings.Cut(string(c), sectionBreak)
	return doc
}

// Format renders e. A nil entity, or one missing the definitions it
// names, renders as empty content.
func Format(e Entity) Content {
	switch e := e.(type) {
	case FieldInfo:
		if e.Parent == nil || e.Field == nil {
			return ""
		}
		return section(fieldSignature(e.Parent, e.Field), documentation(e.Field.Description, e.Field.Directives))

	case ArgumentInfo:
		if e.Argument == nil {
			return ""
		}
		arg := fmt.Sprintf("(%s: %s)", e.Argument.Name, renderType(e.Argument.Type))
		var owner string
		switch {
		case e.Directive != nil:
			owner = "@" + e.Directive.Name
		case e.Parent != nil && e.Field != nil:
			owner = e.Parent.Name + "." + e.Field.Name
		default:
			return ""
		}
		return section(owner+arg, documentation(e.Argument.Description, e.Argument.Directives))

	case DirectiveInfo:
		if e.Directive == nil {
			return ""
		}
		return section("@"+e.Directive.Name, e.Directive.Description)

	case EnumValueInfo:
		if e.Enum == nil || e.Value == nil {
			return ""
		}
		return section(e.Enum.Name+"."+e.Value.Name, documentation(e.Value.Description, e.Value.Directives))

	case TypeInfo:
		if e.Parent != nil && e.Field != nil {
			return Content(fieldSignature(e.Parent, e.Field))
		}
		if e.Type == nil {
			return ""
		}
		return section(e.Type.Name, e.Type.Description)

	case VariableTypeInfo:
		if e.Type == nil {
			return ""
		}
		return Content(renderType(e.Type))
	}
	return ""
}

func section(signature, doc string) Content {
	if doc == "" {
		return Content(signature)
	}
	return Content(signature + sectionBreak + doc)
}

func fieldSignature(parent *ast.Definition, field *ast.FieldDefinition) string {
	return fmt.Sprintf("%s.%s: %s", parent.Name, field.Name, renderType(field.Type))
}

// documentation returns the description, or the deprecation notice when
// there is no description.
func documentation(description string, directives ast.DirectiveList) string {
	if description != "" {
		return description
	}
	if reason, ok := deprecation(directives); ok {
		return "Deprecated: " + reason
	}
	return ""
}

// deprecation reports whether directives mark an element deprecated and
// why. Without an explicit reason the directive's declared default is used.
func deprecation(directives ast.DirectiveList) (string, bool) {
	d := directives.ForName("deprecated")
	if d == nil {
		return "", false
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return arg.Value.Raw, true
	}
	if d.Definition != nil {
		if arg := d.Definition.Arguments.ForName("reason"); arg != nil && arg.DefaultValue != nil {
			return arg.DefaultValue.Raw, true
		}
	}
	return "", true
}

// renderType converts an ast.Type to a human-readable string (e.g., "String!", "[User!]!").
func renderType(t *ast.Type) string {
	required := ""
	if t.NonNull {
		required = "!"
	}
	if t.Elem != nil {
		return fmt.Sprintf("[%s]%s", renderType(t.Elem), required)
	}
	return t.NamedType + required
}
