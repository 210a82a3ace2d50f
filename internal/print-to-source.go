package vtpl

import (
	"strings"
)

var attrEncoder = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
)

// PrintToSource writes events back out as markup. Warnings are skipped,
// comments are printed as they were kept, and attribute values are
// re-encoded so that scanning the output again yields the same events.
// Empty attribute values print as bare names.
func PrintToSource(buf *strings.Builder, events []Event) {
	for _, e := range events {
		switch e.Type {
		case StartTagEvent:
			buf.WriteString("<")
			buf.WriteString(e.Data)
			for _, attr := range e.Attr {
				buf.WriteString(" ")
				buf.WriteString(attr.Name)
				if attr.Value == "" {
					continue
				}
				buf.WriteString(`="`)
				buf.WriteString(attrEncoder.Replace(attr.Value))
				buf.WriteString(`"`)
			}
			if e.Unary {
				buf.WriteString("/")
			}
			buf.WriteString(">")
		case EndTagEvent:
			buf.WriteString("</")
			buf.WriteString(e.Data)
			buf.WriteString(">")
		case TextEvent:
			buf.WriteString(e.Data)
		case CommentEvent:
			buf.WriteString(commentOpen)
			buf.WriteString(e.Data)
			buf.WriteString(commentClose)
		}
	}
}
