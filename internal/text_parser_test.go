package vtpl

import (
	"strings"
	"testing"
	"time"

	"github.com/go-json-experiment/json"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func literal(s string) TextToken { return TextToken{Text: s} }

func binding(exp string) TextToken { return TextToken{Binding: &Binding{Expression: exp}} }

func TestParseText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		delimiters *Delimiters
		expression string
		tokens     []TextToken
	}{
		{
			name:       "filter",
			text:       "hi {{ name | upper }}!",
			expression: `"hi "+_s(_f("upper")(name))+"!"`,
			tokens:     []TextToken{literal("hi "), binding(`_f("upper")(name)`), literal("!")},
		},
		{
			name:       "binding only",
			text:       "{{msg}}",
			expression: `_s(msg)`,
			tokens:     []TextToken{binding("msg")},
		},
		{
			name:       "adjacent bindings",
			text:       "{{ a }}{{ b }} c",
			expression: `_s(a)+_s(b)+" c"`,
			tokens:     []TextToken{binding("a"), binding("b"), literal(" c")},
		},
		{
			name:       "multiline binding",
			text:       "{{\n  a +\n  b\n}}",
			expression: `_s(a +
  b)`,
			tokens: []TextToken{binding("a +\n  b")},
		},
		{
			name:       "crlf binding",
			text:       "{{ a\r\n+ b }}",
			expression: "_s(a\r\n+ b)",
			tokens:     []TextToken{binding("a\r\n+ b")},
		},
		{
			name:       "quotes in literal",
			text:       `say "{{ word }}"`,
			expression: `"say \""+_s(word)+"\""`,
			tokens:     []TextToken{literal(`say "`), binding("word"), literal(`"`)},
		},
		{
			name:       "custom delimiters",
			text:       "a ${ b } {{ c }}",
			delimiters: &Delimiters{"${", "}"},
			expression: `"a "+_s(b)+" {{ c }}"`,
			tokens:     []TextToken{literal("a "), binding("b"), literal(" {{ c }}")},
		},
		{
			name:       "regexp characters in delimiters",
			text:       "x [[ y ]] z",
			delimiters: &Delimiters{"[[", "]]"},
			expression: `"x "+_s(y)+" z"`,
			tokens:     []TextToken{literal("x "), binding("y"), literal(" z")},
		},
		{
			name:       "non-ascii literal",
			text:       "héllo {{ n }} wörld",
			expression: `"héllo "+_s(n)+" wörld"`,
			tokens:     []TextToken{literal("héllo "), binding("n"), literal(" wörld")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParseText(tt.text, tt.delimiters)
			assert.Assert(t, ok)
			assert.Equal(t, tt.expression, result.Expression)
			assert.DeepEqual(t, tt.tokens, result.Tokens)
		})
	}
}

func TestParseTextWithoutInterpolation(t *testing.T) {
	for _, text := range []string{"no bindings here", "", "{{ unclosed", "}} {{", "{{}}"} {
		result, ok := ParseText(text, nil)
		assert.Assert(t, !ok, text)
		assert.Assert(t, is.Nil(result), text)
	}

	result, ok := ParseText("{{ a }}", &Delimiters{"<%", "%>"})
	assert.Assert(t, !ok)
	assert.Assert(t, is.Nil(result))
}

func TestTextParserExpressionParser(t *testing.T) {
	var seen []string
	tp := NewTextParser(func(exp string) string {
		seen = append(seen, exp)
		return strings.ToUpper(exp)
	})
	result, ok := tp.Parse("{{ a | b }} and {{c}}", nil)
	assert.Assert(t, ok)
	assert.DeepEqual(t, []string{"a | b", "c"}, seen)
	assert.Equal(t, `_s(A | B)+" and "+_s(C)`, result.Expression)
}

func TestTextParserCachesDelimiters(t *testing.T) {
	tp := NewTextParser(nil)
	for i := 0; i < 3; i++ {
		_, ok := tp.Parse("<% x %>", &Delimiters{"<%", "%>"})
		assert.Assert(t, ok)
		_, ok = tp.Parse("{{ x }}", nil)
		assert.Assert(t, ok)
	}
	assert.Equal(t, 1, tp.patterns.Len())
}

func TestTextParseResultJSON(t *testing.T) {
	result, ok := ParseText("a {{ b }}", nil)
	assert.Assert(t, ok)
	out, err := json.Marshal(result)
	assert.NilError(t, err)
	assert.Equal(t, `{"expression":"\"a \"+_s(b)","tokens":["a ",{"@binding":"b"}]}`, string(out))
}

func TestParseTextUnclosedDelimiterWithCRLF(t *testing.T) {
	text := "{{" + strings.Repeat("\r\n", 40)
	var (
		result *TextParseResult
		ok     bool
	)
	finishesWithin(t, 2*time.Second, func() {
		result, ok = ParseText(text, nil)
	})
	assert.Assert(t, !ok)
	assert.Assert(t, is.Nil(result))
}
