package printer

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	. "github.com/vtpl/compiler/internal"
	"github.com/vtpl/compiler/internal/loc"
)

type ASTPosition struct {
	Start ASTPoint `json:"start"`
	End   ASTPoint `json:"end"`
}

type ASTPoint struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

type ASTNode struct {
	Type          string           `json:"type"`
	Name          string           `json:"name,omitempty"`
	Value         string           `json:"value,omitempty"`
	Component     string           `json:"component,omitempty"`
	Unary         bool             `json:"unary,omitzero"`
	Attributes    []ASTNode        `json:"attributes,omitempty"`
	Directives    []ASTNode        `json:"directives,omitempty"`
	Children      []ASTNode        `json:"children,omitempty"`
	Interpolation *TextParseResult `json:"interpolation,omitempty"`
	Position      *ASTPosition     `json:"position,omitempty"`

	// Directives only
	Kind string `json:"kind,omitempty"`
}

// PrintToJSON renders scanned events as a tree rooted at a "root" node.
// Warnings are not part of the tree; they travel as diagnostics.
func PrintToJSON(sourcetext string, events []Event, opts PrintOptions) (PrintResult, error) {
	root := RenderTree(sourcetext, events, opts)
	var jsonOpts []json.Options
	if opts.Indent != "" {
		jsonOpts = append(jsonOpts, jsontext.WithIndent(opts.Indent))
	}
	out, err := json.Marshal(root, jsonOpts...)
	if err != nil {
		return PrintResult{}, err
	}
	return PrintResult{Output: out}, nil
}

// RenderTree nests events into ASTNodes. Stray end tags are dropped.
func RenderTree(sourcetext string, events []Event, opts PrintOptions) ASTNode {
	p := &printer{
		lines: loc.NewLineTable(sourcetext),
		opts:  opts,
	}
	if opts.Interpolation {
		p.text = NewTextParser(nil)
	}
	root := ASTNode{Type: "root"}
	for i := 0; i < len(events); i++ {
		i = renderNodes(p, &root, events, i)
	}
	return root
}

func locToPoint(p *printer, offset int) ASTPoint {
	line, column := p.lines.LineAndColumn(loc.Loc{Start: offset})
	return ASTPoint{
		Line:   line,
		Column: column,
		Offset: offset,
	}
}

func positionAt(p *printer, span loc.Span) *ASTPosition {
	if !p.opts.Position {
		return nil
	}
	return &ASTPosition{
		Start: locToPoint(p, span.Start),
		End:   locToPoint(p, span.End),
	}
}

// renderNodes appends the nodes starting at events[i] to parent until it
// reaches an end tag or runs out of events, and returns the index it
// stopped at.
func renderNodes(p *printer, parent *ASTNode, events []Event, i int) int {
	for ; i < len(events); i++ {
		e := events[i]
		var node ASTNode
		switch e.Type {
		case EndTagEvent:
			return i
		case StartTagEvent:
			node.Name = e.Data
			node.Unary = e.Unary
			node.Type = "element"
			if name := getComponentName(e.Data); name != "" {
				node.Type = "component"
				node.Component = name
			}
			for _, attr := range e.Attr {
				attrNode := ASTNode{
					Type:  "attribute",
					Name:  attr.Name,
					Value: attr.Value,
				}
				if attr.End > attr.Start {
					attrNode.Position = positionAt(p, loc.Span{Start: attr.Start, End: attr.End})
				}
				if kind := attributeKind(attr.Name); kind != "" {
					attrNode.Type = "directive"
					attrNode.Kind = kind
					node.Directives = append(node.Directives, attrNode)
				} else {
					node.Attributes = append(node.Attributes, attrNode)
				}
			}
			span := e.Span
			if !e.Unary {
				i = renderNodes(p, &node, events, i+1)
				if i < len(events) {
					span.End = events[i].Span.End
				}
			}
			node.Position = positionAt(p, span)
		case TextEvent:
			node.Type = "text"
			node.Value = e.Data
			if p.text != nil {
				if result, ok := p.text.Parse(e.Data, p.opts.Delimiters); ok {
					node.Interpolation = result
				}
			}
			node.Position = positionAt(p, e.Span)
		case CommentEvent:
			node.Type = "comment"
			node.Value = e.Data
			node.Position = positionAt(p, e.Span)
		default:
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return i
}
