package printer

import (
	vtpl "github.com/vtpl/compiler/internal"
	"github.com/vtpl/compiler/internal/loc"
)

type PrintResult struct {
	Output []byte
}

type PrintOptions struct {
	// Position adds line, column and offset information to every node.
	Position bool
	// Interpolation attaches the parsed {{ }} bindings to text nodes.
	Interpolation bool
	Delimiters    *vtpl.Delimiters
	// Indent pretty-prints the output when non-empty.
	Indent string
}

type printer struct {
	lines *loc.LineTable
	text  *vtpl.TextParser
	opts  PrintOptions
}
