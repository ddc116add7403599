package syntax

// Resolve returns the chain of nodes from root down to the innermost node
// at offset.
//
// A child whose span contains the offset is always preferred. When none
// does, a child whose span ends exactly at the offset is taken, so a
// cursor placed right after the last character of a name still resolves
// to that name. Later children win over earlier ones. A trailing
// selection set is dropped from the chain so the result ends on the
// node that owns the braces.
func Resolve(root *Node, offset int) Chain {
	if root == nil {
		return nil
	}

	chain := Chain{root}
	for n := root; ; {
		next := childAt(n, offset)
		if next == nil {
			break
		}
		chain = append(chain, next)
		n = next
	}

	for len(chain) > 1 && chain.Leaf().Kind.structural() {
		chain = chain[:len(chain)-1]
	}
	return chain
}

func childAt(n *Node, offset int) *Node {
	var inside, touching *Node
	for _, c := range n.Children {
		switch {
		case c.Span.Contains(offset):
			inside = c
		case c.Span.End == offset:
			touching = c
		}
	}
	if inside != nil {
		return inside
	}
	return touching
}
