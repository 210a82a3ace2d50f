package vtpl

import "regexp"

const (
	// letters allowed in tag names beyond ASCII, as in XML NameChar
	unicodeLetters = `a-zA-Z\x{00B7}\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{037D}\x{037F}-\x{1FFF}` +
		`\x{200C}-\x{200D}\x{203F}-\x{2040}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}\x{3001}-\x{D7FF}` +
		`\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}`
	ncname       = `[a-zA-Z_][\-\.0-9_` + unicodeLetters + `]*`
	qnameCapture = `((?:` + ncname + `:)?` + ncname + `)`

	// whitespace as in ECMAScript, which unlike \s includes NBSP and the
	// other Unicode space separators
	spaceChars = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`
	space      = `[` + spaceChars + `]`

	// = followed by a "double", 'single' or bare value
	attrValue = `(?:` + space + `*(=)` + space + `*(?:"([^"]*)"+|'([^']*)'+|([^` + spaceChars + `"'=<>` + "`" + `]+)))?`

	commentOpen            = "<!--"
	commentClose           = "-->"
	conditionalCommentOpen = "<!["
	conditionalCommentEnd  = "]>"
)

var (
	attributeRE = regexp.MustCompile(`^` + space + `*([^` + spaceChars + `"'<>/=]+)` + attrValue)
	// dynamicArgAttributeRE matches bindings with a bracketed argument such
	// as v-bind:[key]="x", @[event]="h" or #[slot].
	dynamicArgAttributeRE = regexp.MustCompile(`^` + space + `*((?:v-[\w-]+:|@|:|#)\[[^=]+\][^` + spaceChars + `"'<>/=]*)` + attrValue)

	startTagOpenRE  = regexp.MustCompile(`^<` + qnameCapture)
	startTagCloseRE = regexp.MustCompile(`^` + space + `*(/?)>`)
	endTagRE        = regexp.MustCompile(`^</` + qnameCapture + `[^>]*>`)
	doctypeRE       = regexp.MustCompile(`(?i)^<!DOCTYPE [^>]+>`)
	leadingSpaceRE  = regexp.MustCompile(`^` + space + `*`)

	htmlCommentRE = regexp.MustCompile(`(?s)<!--(.*?)-->`)
	cdataRE       = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)]]>`)
)
