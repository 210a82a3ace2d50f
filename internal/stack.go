package vtpl

import (
	"fmt"
	"strings"

	"github.com/vtpl/compiler/internal/loc"
	"golang.org/x/net/html/atom"
)

// An element is an open element waiting for its end tag.
type element struct {
	tag      string
	lowerTag string
	atom     atom.Atom
	attrs    []Attribute
	// start and end delimit the element's start tag.
	start, end int
}

func lower(tag string) string {
	return strings.ToLower(tag)
}

func (p *scan) push(e element) {
	p.stack = append(p.stack, e)
}

// top returns the most recently opened element, or nil.
func (p *scan) top() *element {
	if len(p.stack) == 0 {
		return nil
	}
	return &p.stack[len(p.stack)-1]
}

// closeElement handles an end tag spanning start to end. The nearest open
// element with the same name is closed along with everything opened after
// it. Without a match, </br> acts as <br> and </p> as <p></p>; other stray
// end tags are dropped.
func (p *scan) closeElement(tagName string, start, end int) {
	lowerTag := lower(tagName)
	pos := len(p.stack) - 1
	for ; pos >= 0; pos-- {
		if p.stack[pos].lowerTag == lowerTag {
			break
		}
	}
	if pos >= 0 {
		p.popTo(pos, start, end, false)
		return
	}

	switch atom.Lookup([]byte(lowerTag)) {
	case atom.Br:
		p.h.Start(tagName, []Attribute{}, true, start, end)
	case atom.P:
		p.h.Start(tagName, []Attribute{}, false, start, end)
		p.h.End(tagName, start, end)
	}
}

// closeAll closes every open element at the cursor.
func (p *scan) closeAll() {
	p.popTo(0, p.index, p.index, true)
}

// popTo emits end events for the stack entries from the top down to pos
// and truncates the stack to length pos. Entries above pos, or all of them
// when flushing, were never explicitly closed and are reported.
func (p *scan) popTo(pos, start, end int, flush bool) {
	for i := len(p.stack) - 1; i >= pos; i-- {
		e := p.stack[i]
		if i > pos || flush {
			p.warn(loc.WARNING_UNCLOSED_HTML_TAG,
				fmt.Sprintf("tag <%s> has no matching end tag.", e.tag),
				loc.Span{Start: e.start, End: e.end})
		}
		p.h.End(e.tag, start, end)
	}
	p.stack = p.stack[:pos]
}
