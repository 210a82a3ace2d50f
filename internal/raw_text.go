package vtpl

import (
	"regexp"
	"strings"
)

// rawTextCloser returns the pattern that splits the content of a raw-text
// element from its closing tag.
func (s *Scanner) rawTextCloser(lowerTag string) *regexp.Regexp {
	return s.rawText.Get(lowerTag, func() *regexp.Regexp {
		return regexp.MustCompile(`(?i)^([\s\S]*?)(</` + regexp.QuoteMeta(lowerTag) + `[^>]*>)`)
	})
}

// parseRawText consumes the content of a script, style or textarea up to
// its closing tag as a single text event. The content is never tokenized.
func (p *scan) parseRawText(top *element) {
	stackedTag := top.lowerTag
	m := p.rawTextCloser(stackedTag).FindStringSubmatchIndex(p.html)
	if m == nil {
		// No closing tag: the element ends here and the rest of the input
		// is flushed as text by the progress check.
		p.closeElement(stackedTag, p.index, p.index)
		return
	}

	contentLen, matchLen := m[3], m[1]
	content := p.html[:contentLen]
	endTagLen := matchLen - contentLen

	text := content
	if !p.opts.IsUnwrapExempt(stackedTag) {
		text = htmlCommentRE.ReplaceAllString(text, "$1")
		text = cdataRE.ReplaceAllString(text, "$1")
	}
	if p.opts.IsIgnoreNewlineTag(stackedTag) && strings.HasPrefix(text, "\n") {
		text = text[1:]
	}

	start := p.index
	p.advance(matchLen)
	if text != "" {
		p.h.Chars(text, start, start+contentLen)
	}
	p.closeElement(stackedTag, p.index-endTagLen, p.index)
}
