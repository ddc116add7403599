package syntax

import "github.com/vektah/gqlparser/v2/ast"

// TypeRef returns the type reference written at n. Type nodes return
// themselves, a VariableDefinition returns its declared type. Any other
// node returns nil.
func (n *Node) TypeRef() *ast.Type {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case NamedType:
		return ast.NamedType(n.Name, nil)
	case ListType:
		if len(n.Children) == 0 {
			return nil
		}
		elem := n.Children[0].TypeRef()
		if elem == nil {
			return nil
		}
		return ast.ListType(elem, nil)
	case NonNullType:
		if len(n.Children) == 0 {
			return nil
		}
		inner := n.Children[0].TypeRef()
		if inner == nil {
			return nil
		}
		inner.NonNull = true
		return inner
	case VariableDefinition:
		for _, c := range n.Children {
			if t := c.TypeRef(); t != nil {
				return t
			}
		}
	}
	return nil
}

// VariableDefinition returns the definition of the variable called name
// declared by an operation or fragment definition.
func (n *Node) VariableDefinition(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == VariableDefinition && c.Name == name {
			return c
		}
	}
	return nil
}

// Fragment returns the fragment definition called name in a document.
func (n *Node) Fragment(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == FragmentDefinition && c.Name == name {
			return c
		}
	}
	return nil
}
