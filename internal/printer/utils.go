package printer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// getComponentName returns the PascalCase name a tag resolves to when it
// names a component rather than a native element, or "".
func getComponentName(tag string) string {
	if tag == "" || strings.IndexByte(tag, ':') >= 0 {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(tag)
	if !unicode.IsUpper(r) && strings.IndexByte(tag, '-') < 0 {
		return ""
	}
	return strcase.ToCamel(tag)
}

// attributeKind classifies an attribute name. Plain attributes have no
// kind; directives and their shorthands do.
func attributeKind(name string) string {
	switch {
	case strings.HasPrefix(name, ":"), strings.HasPrefix(name, "v-bind"):
		return "bind"
	case strings.HasPrefix(name, "@"), strings.HasPrefix(name, "v-on"):
		return "on"
	case strings.HasPrefix(name, "#"), strings.HasPrefix(name, "v-slot"):
		return "slot"
	case strings.HasPrefix(name, "v-"):
		return "directive"
	}
	return ""
}
