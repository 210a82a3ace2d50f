package vtpl

import (
	"strings"

	"github.com/vtpl/compiler/internal/handler"
	"golang.org/x/net/html/atom"
)

// A TagPredicate reports whether a tag name belongs to some class of
// elements (void, optional-closing, raw text...).
type TagPredicate func(tag string) bool

func no(string) bool { return false }

// tagSet holds known element names as atoms and anything else by name.
type tagSet struct {
	atoms map[atom.Atom]bool
	names map[string]bool
}

func newTagSet(names ...string) tagSet {
	s := tagSet{atoms: make(map[atom.Atom]bool), names: make(map[string]bool)}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if a := atom.Lookup([]byte(name)); a != 0 {
			s.atoms[a] = true
		} else {
			s.names[name] = true
		}
	}
	return s
}

func (s tagSet) has(tag string) bool {
	if a := atom.Lookup([]byte(tag)); a != 0 {
		return s.atoms[a]
	}
	return s.names[tag]
}

// MakeMap builds a TagPredicate from a comma separated list of tag names.
// With lowercase set, lookups ignore the case of the tag.
func MakeMap(list string, lowercase bool) TagPredicate {
	set := newTagSet(strings.Split(list, ",")...)
	if lowercase {
		return func(tag string) bool { return set.has(strings.ToLower(tag)) }
	}
	return set.has
}

var (
	IsUnaryTag = MakeMap(
		"area,base,br,col,embed,frame,hr,img,input,isindex,keygen,"+
			"link,meta,param,source,track,wbr", false)

	// CanBeLeftOpenTag lists elements whose end tag may be omitted because
	// the next sibling of the same kind closes them.
	CanBeLeftOpenTag = MakeMap("colgroup,dd,dt,li,options,p,td,tfoot,th,thead,tr,source", false)

	// IsNonPhrasingTag lists elements that may not appear inside a <p>.
	// https://html.spec.whatwg.org/multipage/indices.html#elements-3
	IsNonPhrasingTag = MakeMap(
		"address,article,aside,base,blockquote,body,caption,col,colgroup,dd,"+
			"details,dialog,div,dl,dt,fieldset,figcaption,figure,footer,form,"+
			"h1,h2,h3,h4,h5,h6,head,header,hgroup,hr,html,legend,li,menuitem,meta,"+
			"optgroup,option,param,rp,rt,source,style,summary,tbody,td,tfoot,th,thead,"+
			"title,tr,track", false)

	IsPlainTextElement = MakeMap("script,style,textarea", true)

	// IsIgnoreNewlineTag lists elements whose first newline is dropped.
	IsIgnoreNewlineTag = MakeMap("pre,textarea", true)

	// IsUnwrapExempt lists raw-text elements whose content keeps any
	// <!-- --> and <![CDATA[ ]]> wrappers.
	IsUnwrapExempt = MakeMap("script,style,textarea,noscript", true)
)

type ParseOptions struct {
	// ExpectHTML enables the <p> and optional-closing auto-close rules.
	ExpectHTML       bool
	IsUnaryTag       TagPredicate
	CanBeLeftOpenTag TagPredicate
	IsNonPhrasingTag TagPredicate
	// IsRawTextElement selects elements whose content is not tokenized.
	// The predicate receives the lower-cased tag name.
	IsRawTextElement   TagPredicate
	IsIgnoreNewlineTag TagPredicate
	IsUnwrapExempt     TagPredicate

	ShouldKeepComment           bool
	ShouldDecodeNewlines        bool
	ShouldDecodeNewlinesForHref bool
	// OutputSourceRange fills Attribute.Start and Attribute.End.
	OutputSourceRange bool

	// Handler, when set, collects warnings as diagnostics in addition to
	// any WarnHandler passed to Scan.
	Handler *handler.Handler
}

// BaseOptions returns the options used for web templates.
func BaseOptions() ParseOptions {
	return ParseOptions{
		ExpectHTML:         true,
		IsUnaryTag:         IsUnaryTag,
		CanBeLeftOpenTag:   CanBeLeftOpenTag,
		IsNonPhrasingTag:   IsNonPhrasingTag,
		IsRawTextElement:   IsPlainTextElement,
		IsIgnoreNewlineTag: IsIgnoreNewlineTag,
		IsUnwrapExempt:     IsUnwrapExempt,
	}
}

func (o *ParseOptions) withDefaults() {
	if o.IsUnaryTag == nil {
		o.IsUnaryTag = no
	}
	if o.CanBeLeftOpenTag == nil {
		o.CanBeLeftOpenTag = no
	}
	if o.IsNonPhrasingTag == nil {
		o.IsNonPhrasingTag = IsNonPhrasingTag
	}
	if o.IsRawTextElement == nil {
		o.IsRawTextElement = IsPlainTextElement
	}
	if o.IsIgnoreNewlineTag == nil {
		o.IsIgnoreNewlineTag = IsIgnoreNewlineTag
	}
	if o.IsUnwrapExempt == nil {
		o.IsUnwrapExempt = IsUnwrapExempt
	}
}
