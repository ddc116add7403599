package cmd

import "github.com/samwightt/gqlhover/pkg/syntax"

// NodeInfo is one entry of the syntax chain printed by the nodes command.
type NodeInfo struct {
	Depth int             `json:"depth"`
	Kind  string          `json:"kind"`
	Name  string          `json:"name,omitempty"`
	Alias string          `json:"alias,omitempty"`
	Start syntax.Position `json:"start"`
	End   syntax.Position `json:"end"`
}

// Location is a 1-based line and column, as gqlparser reports them.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}
