// Package syntax builds a span-annotated tree for GraphQL executable
// documents and finds the nodes under a cursor.
//
// gqlparser only records the position of the first token of each node, so
// the tree here is rebuilt from gqlparser's token stream with a full
// [start, end) span for every node.
package syntax

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

type Kind int

const (
	Document Kind = iota
	OperationDefinition
	FragmentDefinition
	VariableDefinition
	Variable
	NamedType
	ListType
	NonNullType
	SelectionSet
	Field
	Argument
	Directive
	FragmentSpread
	InlineFragment
	IntValue
	FloatValue
	StringValue
	BooleanValue
	NullValue
	EnumValue
	ListValue
	ObjectValue
	ObjectField
)

var kindNames = [...]string{
	Document:            "Document",
	OperationDefinition: "OperationDefinition",
	FragmentDefinition:  "FragmentDefinition",
	VariableDefinition:  "VariableDefinition",
	Variable:            "Variable",
	NamedType:           "NamedType",
	ListType:            "ListType",
	NonNullType:         "NonNullType",
	SelectionSet:        "SelectionSet",
	Field:               "Field",
	Argument:            "Argument",
	Directive:           "Directive",
	FragmentSpread:      "FragmentSpread",
	InlineFragment:      "InlineFragment",
	IntValue:            "IntValue",
	FloatValue:          "FloatValue",
	StringValue:         "StringValue",
	BooleanValue:        "BooleanValue",
	NullValue:           "NullValue",
	EnumValue:           "EnumValue",
	ListValue:           "ListValue",
	ObjectValue:         "ObjectValue",
	ObjectField:         "ObjectField",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// structural kinds only carry punctuation and whitespace of their own.
func (k Kind) structural() bool {
	return k == SelectionSet
}

// Span is a half-open range of rune offsets into the source text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether offset lies in [Start, End).
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Node is one element of the syntax tree. Nodes are never modified after
// Parse returns.
type Node struct {
	Kind Kind
	Span Span

	// Name is the identifier carried by the node: the field, argument,
	// directive, fragment, type or enum value name, the variable name
	// without "$", or the raw literal for scalar values.
	Name string

	// NameSpan covers the token Name was read from. It is empty for
	// nodes without a name.
	NameSpan Span

	// Alias is set on aliased fields only.
	Alias string

	// Operation is set on OperationDefinition nodes.
	Operation ast.Operation

	Children []*Node
}

// Target returns the span an editor should highlight for the node: its
// name token when it has one, else the whole node.
func (n *Node) Target() Span {
	if n.NameSpan.Len() > 0 {
		return n.NameSpan
	}
	return n.Span
}

func (n *Node) add(children ...*Node) {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
}

// Child returns the first direct child of the given kind.
func (n *Node) Child(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// Chain is the path from the document root to a resolved node.
type Chain []*Node

// Leaf returns the innermost node of the chain.
func (c Chain) Leaf() *Node {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Parent returns the node enclosing the one at index i, or nil.
func (c Chain) Parent(i int) *Node {
	if i <= 0 || i > len(c)-1 {
		return nil
	}
	return c[i-1]
}

func (c Chain) String() string {
	parts := make([]string, 0, len(c))
	for _, n := range c {
		if n.Name != "" {
			parts = append(parts, n.Kind.String()+"("+n.Name+")")
		} else {
			parts = append(parts, n.Kind.String())
		}
	}
	return strings.Join(parts, " > ")
}
