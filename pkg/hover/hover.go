// Package hover describes the schema element under a cursor in a GraphQL
// query document.
//
// A request parses the document, resolves the position to a chain of
// syntax nodes, replays the schema's typing rules along that chain and
// formats whatever the innermost node refers to. Everything here is pure:
// a single *ast.Schema may serve any number of concurrent requests.
package hover

import (
	"github.com/samwightt/gqlhover/pkg/syntax"
	"github.com/vektah/gqlparser/v2/ast"
)

// Result holds every intermediate step of a hover request.
type Result struct {
	Text    string
	Offset  int
	Chain   syntax.Chain
	Entity  Entity
	Content Content
}

// Resolve computes the hover for pos in text. The only error returned is
// the *gqlerror.Error gqlparser reports for a document that does not
// parse. A nil schema resolves the chain but never an entity.
func Resolve(schema *ast.Schema, text string, pos syntax.Position) (*Result, error) {
	root, err := syntax.Parse(text)
	if err != nil {
		return nil, err
	}

	res := &Result{Text: text, Offset: syntax.OffsetAt(text, pos)}
	res.Chain = syntax.Resolve(root, res.Offset)
	res.Entity = Annotate(schema, res.Chain)
	res.Content = Format(res.Entity)
	return res, nil
}

// Hover returns the hover content for pos in text, or "" when there is
// nothing to show or the document does not parse.
func Hover(schema *ast.Schema, text string, pos syntax.Position) Content {
	res, err := Resolve(schema, text, pos)
	if err != nil {
		return ""
	}
	return res.Content
}

// Target returns the span of the hovered node, or false when there is no
// content to show for it.
func (r *Result) Target() (syntax.Span, bool) {
	if r == nil || r.Content == "" || len(r.Chain) == 0 {
		return syntax.Span{}, false
	}
	return r.Chain.Leaf().Target(), true
}
