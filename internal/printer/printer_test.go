package printer

import (
	"strings"
	"testing"

	vtpl "github.com/vtpl/compiler/internal"
	"github.com/vtpl/compiler/internal/loc"
	"github.com/vtpl/compiler/internal/test_utils"
)

func scan(source string) []vtpl.Event {
	opts := vtpl.BaseOptions()
	opts.ShouldKeepComment = true
	r := &vtpl.Recorder{}
	vtpl.Scan(source, r, opts)
	return r.Markup()
}

func TestPrintToJSON(t *testing.T) {
	tests := []struct {
		name   string
		source string
		opts   PrintOptions
		want   string
	}{
		{
			name:   "text",
			source: `hello`,
			want:   `{"type":"root","children":[{"type":"text","value":"hello"}]}`,
		},
		{
			name:   "empty",
			source: ``,
			want:   `{"type":"root"}`,
		},
		{
			name:   "element with directives",
			source: `<div id="app"><my-comp :a="b" @click="go"/>hi {{ x }}<!-- c --></div>`,
			opts:   PrintOptions{Interpolation: true},
			want: `{"type":"root","children":[{"type":"element","name":"div","attributes":[{"type":"attribute","name":"id","value":"app"}],"children":[` +
				`{"type":"component","name":"my-comp","component":"MyComp","unary":true,"directives":[{"type":"directive","name":":a","value":"b","kind":"bind"},{"type":"directive","name":"@click","value":"go","kind":"on"}]},` +
				`{"type":"text","value":"hi {{ x }}","interpolation":{"expression":"\"hi \"+_s(x)","tokens":["hi ",{"@binding":"x"}]}},` +
				`{"type":"comment","value":" c "}]}]}`,
		},
		{
			name:   "interpolation with custom delimiters",
			source: `<p>${ a | b }</p>`,
			opts:   PrintOptions{Interpolation: true, Delimiters: &vtpl.Delimiters{"${", "}"}},
			want:   `{"type":"root","children":[{"type":"element","name":"p","children":[{"type":"text","value":"${ a | b }","interpolation":{"expression":"_s(_f(\"b\")(a))","tokens":[{"@binding":"_f(\"b\")(a)"}]}}]}]}`,
		},
		{
			name:   "text without bindings",
			source: `<p>plain</p>`,
			opts:   PrintOptions{Interpolation: true},
			want:   `{"type":"root","children":[{"type":"element","name":"p","children":[{"type":"text","value":"plain"}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PrintToJSON(tt.source, scan(tt.source), tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if diff := test_utils.ANSIDiff(tt.want, string(result.Output)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderTreePositions(t *testing.T) {
	source := "<p>\n  a\n</p>"
	want := ASTNode{
		Type: "root",
		Children: []ASTNode{{
			Type: "element",
			Name: "p",
			Children: []ASTNode{{
				Type:  "text",
				Value: "\n  a\n",
				Position: &ASTPosition{
					Start: ASTPoint{Line: 1, Column: 4, Offset: 3},
					End:   ASTPoint{Line: 3, Column: 1, Offset: 8},
				},
			}},
			Position: &ASTPosition{
				Start: ASTPoint{Line: 1, Column: 1, Offset: 0},
				End:   ASTPoint{Line: 3, Column: 5, Offset: 12},
			},
		}},
	}
	got := RenderTree(source, scan(source), PrintOptions{Position: true})
	if diff := test_utils.ANSIDiff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTreeAttributePositions(t *testing.T) {
	source := "<a\n  href=\"x\">"
	opts := vtpl.BaseOptions()
	opts.OutputSourceRange = true
	r := &vtpl.Recorder{}
	vtpl.Scan(source, r, opts)

	got := RenderTree(source, r.Markup(), PrintOptions{Position: true})
	attr := got.Children[0].Attributes[0]
	want := &ASTPosition{
		Start: ASTPoint{Line: 2, Column: 3, Offset: 5},
		End:   ASTPoint{Line: 2, Column: 11, Offset: 13},
	}
	if diff := test_utils.ANSIDiff(want, attr.Position); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTreeUnbalancedEvents(t *testing.T) {
	events := []vtpl.Event{
		{Type: vtpl.EndTagEvent, Data: "x"},
		{Type: vtpl.StartTagEvent, Data: "br", Unary: true},
		{Type: vtpl.WarningEvent, Data: "ignored"},
		{Type: vtpl.StartTagEvent, Data: "div"},
		{Type: vtpl.TextEvent, Data: "t", Span: loc.Span{Start: 5, End: 6}},
	}
	want := ASTNode{
		Type: "root",
		Children: []ASTNode{
			{Type: "element", Name: "br", Unary: true},
			{Type: "element", Name: "div", Children: []ASTNode{{Type: "text", Value: "t"}}},
		},
	}
	got := RenderTree("", events, PrintOptions{})
	if diff := test_utils.ANSIDiff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintToJSONSnapshots(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name: "todo list",
			source: `
			<ul id="todos">
				<li v-for="todo in todos" :key="todo.id" :class="{ done: todo.done }">
					{{ todo.title | capitalize }}
					<button @click="remove(todo)">&times;</button>
				</li>
			</ul>`,
		},
		{
			name: "implied end tags",
			source: `
			<p>intro
			<div>block</div>
			<ul><li>a<li>b</ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := test_utils.Dedent(tt.source)
			result, err := PrintToJSON(source, scan(source), PrintOptions{Position: true, Interpolation: true, Indent: "  "})
			if err != nil {
				t.Fatal(err)
			}
			test_utils.MakeSnapshot(&test_utils.SnapshotOptions{
				Testing:      t,
				TestCaseName: strings.ReplaceAll(tt.name, " ", "_"),
				Input:        source,
				Output:       string(result.Output),
				Kind:         test_utils.JsonOutput,
			})
		})
	}
}
