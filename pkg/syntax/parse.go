package syntax

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/lexer"
	"github.com/vektah/gqlparser/v2/parser"
)

// Parse validates text as an executable GraphQL document with gqlparser and
// returns its span tree. Any error is the *gqlerror.Error reported by
// gqlparser; no tree is returned for documents that do not parse.
func Parse(text string) (*Node, error) {
	source := &ast.Source{Input: text}
	if _, err := parser.ParseQuery(source); err != nil {
		return nil, err
	}

	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}

	b := &builder{tokens: tokens}
	return b.document(len([]rune(text))), nil
}

// tokenize returns every significant token of source, comments excluded,
// terminated by the EOF token.
func tokenize(source *ast.Source) ([]lexer.Token, error) {
	lex := lexer.New(source)
	var tokens []lexer.Token
	for {
		tok, err := lex.ReadToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.Comment {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == lexer.EOF {
			return tokens, nil
		}
	}
}

// builder walks an already validated token stream with the same grammar
// gqlparser uses, recording where every node starts and ends.
type builder struct {
	tokens []lexer.Token
	pos    int
}

func (b *builder) peek() lexer.Token {
	return b.tokens[b.pos]
}

func (b *builder) next() lexer.Token {
	tok := b.tokens[b.pos]
	if tok.Kind != lexer.EOF {
		b.pos++
	}
	return tok
}

func (b *builder) skip(kind lexer.Type) bool {
	if b.peek().Kind != kind {
		return false
	}
	b.next()
	return true
}

// until reports whether the list closed by kind still has items.
func (b *builder) until(kind lexer.Type) bool {
	k := b.peek().Kind
	return k != kind && k != lexer.EOF
}

func (b *builder) start() int {
	return b.peek().Pos.Start
}

// name consumes a name token and returns its value and span.
func (b *builder) name() (string, Span) {
	tok := b.next()
	return tok.Value, Span{Start: tok.Pos.Start, End: tok.Pos.End}
}

// finish closes the span of n at the end of the last consumed token.
func (b *builder) finish(n *Node, start int) *Node {
	end := start
	if b.pos > 0 {
		end = b.tokens[b.pos-1].Pos.End
	}
	n.Span = Span{Start: start, End: max(start, end)}
	return n
}

func (b *builder) document(length int) *Node {
	doc := &Node{Kind: Document, Span: Span{Start: 0, End: length}}
	for b.peek().Kind != lexer.EOF {
		before := b.pos
		if tok := b.peek(); tok.Kind == lexer.Name && tok.Value == "fragment" {
			doc.add(b.fragmentDefinition())
		} else {
			doc.add(b.operationDefinition())
		}
		if b.pos == before {
			break
		}
	}
	return doc
}

func (b *builder) operationDefinition() *Node {
	start := b.start()
	n := &Node{Kind: OperationDefinition, Operation: ast.Query}
	if b.peek().Kind == lexer.Name {
		n.Operation = ast.Operation(b.next().Value)
		if b.peek().Kind == lexer.Name {
			n.Name = b.next().Value
		}
		n.add(b.variableDefinitions()...)
		n.add(b.directives()...)
	}
	n.add(b.selectionSet())
	return b.finish(n, start)
}

func (b *builder) fragmentDefinition() *Node {
	start := b.start()
	b.next() // "fragment"
	n := &Node{Kind: FragmentDefinition}
	n.Name, n.NameSpan = b.name()
	n.add(b.variableDefinitions()...)
	b.next() // "on"
	n.add(b.namedType())
	n.add(b.directives()...)
	n.add(b.selectionSet())
	return b.finish(n, start)
}

func (b *builder) variableDefinitions() []*Node {
	var defs []*Node
	if !b.skip(lexer.ParenL) {
		return nil
	}
	for b.until(lexer.ParenR) {
		defs = append(defs, b.variableDefinition())
	}
	b.next()
	return defs
}

func (b *builder) variableDefinition() *Node {
	start := b.start()
	variable := b.variable()
	n := &Node{Kind: VariableDefinition, Name: variable.Name, NameSpan: variable.NameSpan}
	n.add(variable)
	b.skip(lexer.Colon)
	n.add(b.typeReference())
	if b.skip(lexer.Equals) {
		n.add(b.value())
	}
	n.add(b.directives()...)
	return b.finish(n, start)
}

func (b *builder) variable() *Node {
	start := b.start()
	b.next() // "$"
	n := &Node{Kind: Variable}
	n.Name, _ = b.name()
	b.finish(n, start)
	n.NameSpan = n.Span
	return n
}

func (b *builder) typeReference() *Node {
	start := b.start()
	var n *Node
	if b.skip(lexer.BracketL) {
		n = &Node{Kind: ListType}
		n.add(b.typeReference())
		b.next() // "]"
		b.finish(n, start)
	} else {
		n = b.namedType()
	}

	if b.skip(lexer.Bang) {
		wrapped := &Node{Kind: NonNullType, Name: n.Name, NameSpan: n.NameSpan}
		wrapped.add(n)
		return b.finish(wrapped, start)
	}
	return n
}

func (b *builder) namedType() *Node {
	start := b.start()
	n := &Node{Kind: NamedType}
	n.Name, n.NameSpan = b.name()
	return b.finish(n, start)
}

func (b *builder) selectionSet() *Node {
	if b.peek().Kind != lexer.BraceL {
		return nil
	}
	start := b.start()
	b.next()
	n := &Node{Kind: SelectionSet}
	for b.until(lexer.BraceR) {
		n.add(b.selection())
	}
	b.next()
	return b.finish(n, start)
}

func (b *builder) selection() *Node {
	if b.peek().Kind == lexer.Spread {
		return b.fragment()
	}
	return b.field()
}

func (b *builder) field() *Node {
	start := b.start()
	n := &Node{Kind: Field}
	n.Name, n.NameSpan = b.name()
	if b.skip(lexer.Colon) {
		n.Alias = n.Name
		n.Name, n.NameSpan = b.name()
	}
	n.add(b.arguments()...)
	n.add(b.directives()...)
	n.add(b.selectionSet())
	return b.finish(n, start)
}

func (b *builder) arguments() []*Node {
	var args []*Node
	if !b.skip(lexer.ParenL) {
		return nil
	}
	for b.until(lexer.ParenR) {
		start := b.start()
		arg := &Node{Kind: Argument}
		arg.Name, arg.NameSpan = b.name()
		b.skip(lexer.Colon)
		arg.add(b.value())
		args = append(args, b.finish(arg, start))
	}
	b.next()
	return args
}

func (b *builder) fragment() *Node {
	start := b.start()
	b.next() // "..."

	if tok := b.peek(); tok.Kind == lexer.Name && tok.Value != "on" {
		n := &Node{Kind: FragmentSpread}
		n.Name, n.NameSpan = b.name()
		n.add(b.directives()...)
		return b.finish(n, start)
	}

	n := &Node{Kind: InlineFragment}
	if b.peek().Value == "on" {
		b.next()
		condition := b.namedType()
		n.Name, n.NameSpan = condition.Name, condition.NameSpan
		n.add(condition)
	}
	n.add(b.directives()...)
	n.add(b.selectionSet())
	return b.finish(n, start)
}

func (b *builder) directives() []*Node {
	var directives []*Node
	for b.peek().Kind == lexer.At {
		start := b.start()
		b.next()
		n := &Node{Kind: Directive}
		n.Name, n.NameSpan = b.name()
		n.add(b.arguments()...)
		directives = append(directives, b.finish(n, start))
	}
	return directives
}

func (b *builder) value() *Node {
	start := b.start()
	tok := b.peek()

	switch tok.Kind {
	case lexer.BracketL:
		b.next()
		n := &Node{Kind: ListValue}
		for b.until(lexer.BracketR) {
			n.add(b.value())
		}
		b.next()
		return b.finish(n, start)
	case lexer.BraceL:
		b.next()
		n := &Node{Kind: ObjectValue}
		for b.until(lexer.BraceR) {
			fieldStart := b.start()
			field := &Node{Kind: ObjectField}
			field.Name, field.NameSpan = b.name()
			b.skip(lexer.Colon)
			field.add(b.value())
			n.add(b.finish(field, fieldStart))
		}
		b.next()
		return b.finish(n, start)
	case lexer.Dollar:
		return b.variable()
	}

	n := &Node{}
	n.Name, n.NameSpan = b.name()
	switch tok.Kind {
	case lexer.Int:
		n.Kind = IntValue
	case lexer.Float:
		n.Kind = FloatValue
	case lexer.String, lexer.BlockString:
		n.Kind = StringValue
	default:
		switch tok.Value {
		case "true", "false":
			n.Kind = BooleanValue
		case "null":
			n.Kind = NullValue
		default:
			n.Kind = EnumValue
		}
	}
	return b.finish(n, start)
}
