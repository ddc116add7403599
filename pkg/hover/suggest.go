package hover

import (
	"sort"

	"github.com/samwightt/gqlhover/pkg/syntax"
	"github.com/vektah/gqlparser/v2/ast"
)

// Candidates lists the names the schema accepts in place of the leaf of
// chain when the leaf is a field, argument or directive. The second result
// reports whether the leaf's own name is among them. Other leaves have no
// candidates and always report true.
func Candidates(schema *ast.Schema, chain syntax.Chain) ([]string, bool) {
	if schema == nil || len(chain) == 0 {
		return nil, true
	}

	c := cursor{schema: schema}
	for i, n := range chain[:len(chain)-1] {
		c = c.enter(chain.Parent(i), n)
	}

	leaf := chain.Leaf()
	var names []string
	switch leaf.Kind {
	case syntax.Field:
		if c.composite == nil {
			return nil, true
		}
		names = append(names, typenameField.Name)
		for _, f := range c.composite.Fields {
			names = append(names, f.Name)
		}
	case syntax.Directive:
		for name := range schema.Directives {
			names = append(names, name)
		}
	case syntax.Argument:
		var args ast.ArgumentDefinitionList
		if chain.Parent(len(chain)-1).Kind == syntax.Directive {
			if c.directive == nil {
				return nil, true
			}
			args = c.directive.Arguments
		} else {
			if c.field == nil {
				return nil, true
			}
			args = c.field.Arguments
		}
		for _, a := range args {
			names = append(names, a.Name)
		}
	default:
		return nil, true
	}

	sort.Strings(names)
	for _, name := range names {
		if name == leaf.Name {
			return names, true
		}
	}
	return names, false
}
