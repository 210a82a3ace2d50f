package vtpl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vtpl/compiler/internal/loc"
)

// A Scanner turns template markup into a stream of start tag, end tag,
// text and comment events. A Scanner may be reused and is safe for
// concurrent use; each call to Scan keeps its own cursor and element stack.
type Scanner struct {
	opts ParseOptions
	// rawText holds the closing-tag patterns of raw-text elements, keyed
	// by lower-cased tag name.
	rawText *PatternCache[*regexp.Regexp]
}

func NewScanner(opts ParseOptions) *Scanner {
	opts.withDefaults()
	return &Scanner{opts: opts, rawText: NewPatternCache[*regexp.Regexp]()}
}

// Scan is a shorthand for NewScanner(opts).Scan(source, h).
func Scan(source string, h Handler, opts ParseOptions) {
	NewScanner(opts).Scan(source, h)
}

// scan is the state of a single Scan call.
type scan struct {
	*Scanner
	h        Handler
	comments CommentHandler
	warner   WarnHandler

	// html is the unconsumed input; index is its offset in the source.
	html  string
	index int
	stack []element
}

// Scan consumes source, calling h for every event in document order. Any
// elements still open at the end of the input are closed with a warning.
func (s *Scanner) Scan(source string, h Handler) {
	p := &scan{Scanner: s, h: h, html: source}
	p.comments, _ = h.(CommentHandler)
	p.warner, _ = h.(WarnHandler)
	p.run()
}

func (p *scan) run() {
	for p.html != "" {
		last := p.html
		if top := p.top(); top == nil || !p.opts.IsRawTextElement(top.lowerTag) {
			p.parseMarkupOrText()
		} else {
			p.parseRawText(top)
		}

		if p.html == last {
			// Nothing was consumed: flush the rest as text and stop.
			rest := p.html
			p.advance(len(rest))
			p.h.Chars(rest, p.index-len(rest), p.index)
			if len(p.stack) > 0 {
				p.warn(loc.WARNING_MALFORMED_TAG,
					fmt.Sprintf("Mal-formatted tag at end of template: %q", rest),
					loc.Span{Start: p.index - len(rest), End: p.index})
			}
			break
		}
	}

	p.closeAll()
}

func (p *scan) advance(n int) {
	p.index += n
	p.html = p.html[n:]
}

func (p *scan) warn(code loc.DiagnosticCode, msg string, span loc.Span) {
	if p.warner != nil {
		p.warner.Warn(msg, span)
	}
	if p.opts.Handler != nil {
		p.opts.Handler.AppendWarning(&loc.ErrorWithRange{
			Code:  code,
			Text:  msg,
			Range: span.Range(),
		})
	}
}

// parseMarkupOrText consumes one comment, doctype or tag at the cursor, or
// else the text up to the next construct.
func (p *scan) parseMarkupOrText() {
	textEnd := strings.IndexByte(p.html, '<')
	if textEnd == 0 && p.parseMarkup() {
		return
	}

	// A failed start tag may have consumed its name and attributes, in
	// which case textEnd is stale and the scan restarts at the cursor.
	var text string
	if textEnd >= 0 {
		rest := p.html[textEnd:]
		for rest != "" && !opensConstruct(rest) {
			// < in plain text, be forgiving and treat it as text
			next := strings.IndexByte(rest[1:], '<')
			if next < 0 {
				break
			}
			textEnd += next + 1
			rest = p.html[textEnd:]
		}
		text = p.html[:textEnd]
	} else {
		text = p.html
	}

	if text != "" {
		p.advance(len(text))
		p.h.Chars(text, p.index-len(text), p.index)
	}
}

// opensConstruct reports whether s starts with something other than text.
func opensConstruct(s string) bool {
	return endTagRE.MatchString(s) ||
		startTagOpenRE.MatchString(s) ||
		strings.HasPrefix(s, commentOpen) ||
		strings.HasPrefix(s, conditionalCommentOpen)
}

// parseMarkup tries, in order, a comment, a conditional comment, a doctype,
// an end tag and a start tag at the cursor.
func (p *scan) parseMarkup() bool {
	if strings.HasPrefix(p.html, commentOpen) {
		if commentEnd := strings.Index(p.html, commentClose); commentEnd >= 0 {
			if p.opts.ShouldKeepComment && p.comments != nil {
				var text string
				if commentEnd > len(commentOpen) {
					text = p.html[len(commentOpen):commentEnd]
				}
				p.comments.Comment(text, p.index, p.index+commentEnd+len(commentClose))
			}
			p.advance(commentEnd + len(commentClose))
			return true
		}
	}

	// http://en.wikipedia.org/wiki/Conditional_comment#Downlevel-revealed_conditional_comment
	if strings.HasPrefix(p.html, conditionalCommentOpen) {
		if conditionalEnd := strings.Index(p.html, conditionalCommentEnd); conditionalEnd >= 0 {
			p.advance(conditionalEnd + len(conditionalCommentEnd))
			return true
		}
	}

	if doctype := doctypeRE.FindString(p.html); doctype != "" {
		p.advance(len(doctype))
		return true
	}

	if m := endTagRE.FindStringSubmatch(p.html); m != nil {
		start := p.index
		p.advance(len(m[0]))
		p.closeElement(m[1], start, p.index)
		return true
	}

	if match := p.parseStartTag(); match != nil {
		p.handleStartTag(match)
		if p.opts.IsIgnoreNewlineTag(match.tagName) && strings.HasPrefix(p.html, "\n") {
			p.advance(1)
		}
		return true
	}
	return false
}
