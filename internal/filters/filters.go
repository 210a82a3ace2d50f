// Package filters rewrites filter pipelines found in template expressions,
// such as `msg | capitalize | wrap('-')`, into nested calls of the runtime
// filter resolver `_f`.
package filters

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// Parse returns exp with each top-level | filter applied as a call:
//
//	msg | capitalize          =>  _f("capitalize")(msg)
//	msg | wrap('-') | upper   =>  _f("upper")(_f("wrap")(msg,'-'))
//
// Pipes inside strings, template literals, regular expressions and brackets,
// as well as ||, are left alone. The result is trimmed.
func Parse(exp string) string {
	segments := Split(exp)
	expression := strings.TrimSpace(segments[0])
	for _, filter := range segments[1:] {
		expression = wrapFilter(expression, strings.TrimSpace(filter))
	}
	return expression
}

// Split cuts exp at every top-level filter pipe. The first segment is the
// filtered expression. If exp cannot be lexed it is returned whole.
func Split(exp string) []string {
	l := js.NewLexer(parse.NewInputBytes([]byte(exp)))

	var (
		segments []string
		current  strings.Builder
		depth    int
		prev     []byte
	)
	for {
		tt, value := l.Next()
		if tt == js.ErrorToken {
			if l.Err() != io.EOF {
				return []string{exp}
			}
			break
		}
		if (tt == js.DivToken || tt == js.DivEqToken) && !endsOperand(prev) {
			if tt, value = l.RegExp(); tt == js.ErrorToken {
				return []string{exp}
			}
		}

		if depth == 0 && string(value) == "|" {
			segments = append(segments, current.String())
			current.Reset()
			prev = nil
			continue
		}

		switch {
		case opensTemplate(value):
			depth++
		case closesTemplate(value):
			depth--
		case len(value) == 1:
			switch value[0] {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			}
		}

		current.Write(value)
		if significant(tt, value) {
			prev = value
		}
	}
	return append(segments, current.String())
}

// endsOperand reports whether a / after the token tok is a division rather
// than the start of a regular expression literal.
func endsOperand(tok []byte) bool {
	if len(tok) == 0 {
		return false
	}
	c := tok[len(tok)-1]
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(`)._$]+-`, c) >= 0
}

// significant reports whether a token counts when deciding how a following
// slash is read. Whitespace and comments do not.
func significant(tt js.TokenType, tok []byte) bool {
	if tt == js.WhitespaceToken || len(strings.TrimSpace(string(tok))) == 0 {
		return false
	}
	return !strings.HasPrefix(string(tok), "//") && !strings.HasPrefix(string(tok), "/*")
}

func opensTemplate(tok []byte) bool {
	return len(tok) >= 3 && tok[0] == '`' && strings.HasSuffix(string(tok), "${")
}

func closesTemplate(tok []byte) bool {
	return len(tok) >= 2 && tok[0] == '}' && tok[len(tok)-1] == '`'
}

func wrapFilter(exp, filter string) string {
	i := strings.IndexByte(filter, '(')
	if i < 0 {
		return `_f("` + filter + `")(` + exp + `)`
	}
	name, args := filter[:i], filter[i+1:]
	if args != ")" {
		return `_f("` + name + `")(` + exp + `,` + args
	}
	return `_f("` + name + `")(` + exp + args
}
