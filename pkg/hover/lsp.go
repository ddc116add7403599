package hover

import (
	"fortio.org/safecast"
	"github.com/samwightt/gqlhover/pkg/syntax"
	"go.lsp.dev/protocol"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

func lspPosition(pos syntax.Position) protocol.Position {
	return protocol.Position{
		Line:      safeUint32(pos.Line),
		Character: safeUint32(pos.Character),
	}
}

// LSP converts the result into a textDocument/hover response: plain text
// contents and the range of the hovered token. It returns nil when there
// is nothing to show.
func (r *Result) LSP() *protocol.Hover {
	span, ok := r.Target()
	if !ok {
		return nil
	}

	rng := protocol.Range{
		Start: lspPosition(syntax.PositionAt(r.Text, span.Start)),
		End:   lspPosition(syntax.PositionAt(r.Text, span.End)),
	}
	return &protocol.Hover{
		Range: &rng,
		Contents: protocol.MarkupContent{
			Kind:  protocol.PlainText,
			Value: string(r.Content),
		},
	}
}
