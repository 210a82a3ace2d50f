package vtpl

import "golang.org/x/net/html/atom"

// attrMatch holds the submatches of one attribute: the whole match, the
// name, "=", and the double-quoted, single-quoted and bare values.
type attrMatch struct {
	groups     []string
	start, end int
}

// name returns the attribute name.
func (a attrMatch) name() string { return a.groups[1] }

// value returns the first non-empty value alternative, or "" for
// attributes written without a value.
func (a attrMatch) value() string {
	for _, v := range a.groups[3:6] {
		if v != "" {
			return v
		}
	}
	return ""
}

type startTagMatch struct {
	tagName    string
	attrs      []attrMatch
	unarySlash string
	start, end int
}

// parseStartTag reads a start tag and its attributes at the cursor. It
// returns nil if the tag is not closed by > or />; attributes read before
// that point stay consumed.
func (p *scan) parseStartTag() *startTagMatch {
	open := startTagOpenRE.FindStringSubmatch(p.html)
	if open == nil {
		return nil
	}
	match := &startTagMatch{tagName: open[1], start: p.index}
	p.advance(len(open[0]))
	for {
		if end := startTagCloseRE.FindStringSubmatch(p.html); end != nil {
			match.unarySlash = end[1]
			p.advance(len(end[0]))
			match.end = p.index
			return match
		}
		attr, ok := p.scanAttribute()
		if !ok {
			return nil
		}
		match.attrs = append(match.attrs, attr)
	}
}

// scanAttribute matches one attribute at the cursor, trying bindings with a
// dynamic argument before plain attributes.
func (p *scan) scanAttribute() (attrMatch, bool) {
	groups := dynamicArgAttributeRE.FindStringSubmatch(p.html)
	if groups == nil {
		groups = attributeRE.FindStringSubmatch(p.html)
	}
	if groups == nil {
		return attrMatch{}, false
	}
	attr := attrMatch{groups: groups, start: p.index}
	p.advance(len(groups[0]))
	attr.end = p.index
	return attr, true
}

func (p *scan) handleStartTag(match *startTagMatch) {
	tagName := match.tagName

	if p.opts.ExpectHTML {
		// A <p> may only hold phrasing content.
		if last := p.top(); last != nil && last.atom == atom.P && p.opts.IsNonPhrasingTag(tagName) {
			p.closeElement(last.tag, p.index, p.index)
		}
		if last := p.top(); last != nil && last.tag == tagName && p.opts.CanBeLeftOpenTag(tagName) {
			p.closeElement(tagName, p.index, p.index)
		}
	}

	unary := p.opts.IsUnaryTag(tagName) || match.unarySlash != ""

	attrs := make([]Attribute, len(match.attrs))
	for i, args := range match.attrs {
		shouldDecodeNewlines := p.opts.ShouldDecodeNewlines
		if tagName == "a" && args.name() == "href" {
			shouldDecodeNewlines = p.opts.ShouldDecodeNewlinesForHref
		}
		attrs[i] = Attribute{
			Name:  args.name(),
			Value: decodeAttr(args.value(), shouldDecodeNewlines),
		}
		if p.opts.OutputSourceRange {
			attrs[i].Start = args.start + len(leadingSpaceRE.FindString(args.groups[0]))
			attrs[i].End = args.end
		}
	}

	if !unary {
		p.push(element{
			tag:      tagName,
			lowerTag: lower(tagName),
			atom:     atom.Lookup([]byte(tagName)),
			attrs:    attrs,
			start:    match.start,
			end:      match.end,
		})
	}

	p.h.Start(tagName, attrs, unary, match.start, match.end)
}
