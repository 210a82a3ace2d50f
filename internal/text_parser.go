package vtpl

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/go-json-experiment/json"
	"github.com/vtpl/compiler/internal/filters"
)

// Delimiters is an interpolation delimiter pair such as {"${", "}"}.
type Delimiters [2]string

var DefaultDelimiters = Delimiters{"{{", "}}"}

// . matches \r, so \n is the only extra alternative; an overlapping \r?\n
// branch backtracks exponentially on unclosed delimiters.
var defaultTagRE = regexp2.MustCompile(`\{\{((?:.|\n)+?)\}\}`, regexp2.None)

// An ExpressionParser turns the trimmed content of an interpolation into
// the expression evaluated at runtime.
type ExpressionParser func(exp string) string

// A Binding is a dynamic segment of interpolated text.
type Binding struct {
	Expression string
}

// A TextToken is either a literal segment (Binding is nil) or a binding.
type TextToken struct {
	Text    string
	Binding *Binding
}

func (t TextToken) IsBinding() bool {
	return t.Binding != nil
}

// MarshalJSON encodes literals as strings and bindings as {"@binding": ...}.
func (t TextToken) MarshalJSON() ([]byte, error) {
	if t.Binding != nil {
		return json.Marshal(map[string]string{"@binding": t.Binding.Expression})
	}
	return json.Marshal(t.Text)
}

type TextParseResult struct {
	// Expression concatenates the quoted literals and _s(binding) calls
	// with +.
	Expression string      `json:"expression"`
	Tokens     []TextToken `json:"tokens"`
}

// TextParser splits text into literal and interpolated segments. It is safe
// for concurrent use.
type TextParser struct {
	parseExpression ExpressionParser
	patterns        *PatternCache[*regexp2.Regexp]
}

// NewTextParser returns a TextParser using parse for binding content, or
// the filter pipeline parser when parse is nil.
func NewTextParser(parse ExpressionParser) *TextParser {
	if parse == nil {
		parse = filters.Parse
	}
	return &TextParser{parseExpression: parse, patterns: NewPatternCache[*regexp2.Regexp]()}
}

// ParseText is a shorthand for NewTextParser(nil).Parse(text, delimiters).
func ParseText(text string, delimiters *Delimiters) (*TextParseResult, bool) {
	return NewTextParser(nil).Parse(text, delimiters)
}

func (tp *TextParser) tagRE(delimiters *Delimiters) *regexp2.Regexp {
	if delimiters == nil || delimiters[0] == "" || delimiters[1] == "" || *delimiters == DefaultDelimiters {
		return defaultTagRE
	}
	openDelim, closeDelim := delimiters[0], delimiters[1]
	return tp.patterns.Get(openDelim+"\x00"+closeDelim, func() *regexp2.Regexp {
		return regexp2.MustCompile(regexp2.Escape(openDelim)+`((?:.|\n)+?)`+regexp2.Escape(closeDelim), regexp2.None)
	})
}

// Parse tokenizes text. It reports false when text holds no interpolation.
// A nil or incomplete delimiter pair selects DefaultDelimiters.
func (tp *TextParser) Parse(text string, delimiters *Delimiters) (*TextParseResult, bool) {
	re := tp.tagRE(delimiters)
	m, err := re.FindStringMatch(text)
	if err != nil || m == nil {
		return nil, false
	}

	// regexp2 reports positions in runes.
	runes := []rune(text)
	var (
		tokens    []string
		rawTokens []TextToken
		lastIndex int
	)
	for m != nil {
		index := m.Index
		if index > lastIndex {
			value := string(runes[lastIndex:index])
			rawTokens = append(rawTokens, TextToken{Text: value})
			tokens = append(tokens, quote(value))
		}
		exp := tp.parseExpression(strings.TrimSpace(m.GroupByNumber(1).String()))
		tokens = append(tokens, "_s("+exp+")")
		rawTokens = append(rawTokens, TextToken{Binding: &Binding{Expression: exp}})
		lastIndex = index + m.Length

		if m, err = re.FindNextMatch(m); err != nil {
			break
		}
	}
	if lastIndex < len(runes) {
		value := string(runes[lastIndex:])
		rawTokens = append(rawTokens, TextToken{Text: value})
		tokens = append(tokens, quote(value))
	}

	return &TextParseResult{
		Expression: strings.Join(tokens, "+"),
		Tokens:     rawTokens,
	}, true
}

// quote returns s as a JSON string literal.
func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}
