package vtpl

import (
	"strconv"

	"github.com/vtpl/compiler/internal/loc"
	"golang.org/x/net/html/atom"
)

// An EventType is the type of an Event.
type EventType uint32

const (
	// ErrorEvent is the zero value and is never emitted.
	ErrorEvent EventType = iota
	// A StartTagEvent is emitted for <a> and for synthesized start tags.
	StartTagEvent
	// An EndTagEvent is emitted whenever an element is closed, explicitly
	// or implicitly.
	EndTagEvent
	// A TextEvent carries a literal text run.
	TextEvent
	// A CommentEvent looks like <!--x-->.
	CommentEvent
	// A WarningEvent carries a recoverable structural anomaly.
	WarningEvent
)

// String returns a string representation of the EventType.
func (t EventType) String() string {
	switch t {
	case ErrorEvent:
		return "Error"
	case StartTagEvent:
		return "StartTag"
	case EndTagEvent:
		return "EndTag"
	case TextEvent:
		return "Text"
	case CommentEvent:
		return "Comment"
	case WarningEvent:
		return "Warning"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// An Attribute is a name-value pair from a start tag. Value is decoded (it
// looks like "a<b" rather than "a&lt;b"). Start and End are only set when
// ParseOptions.OutputSourceRange is enabled.
type Attribute struct {
	Name  string
	Value string
	Start int
	End   int
}

// An Event is one call made by the scanner, as captured by a Recorder.
// Data is the tag name for tag events, the content for text and comments,
// and the message for warnings.
type Event struct {
	Type     EventType
	DataAtom atom.Atom
	Data     string
	Attr     []Attribute
	Unary    bool
	Span     loc.Span
}

// String returns a compact representation of the Event, used in tests and
// debugging output.
func (e Event) String() string {
	switch e.Type {
	case StartTagEvent:
		s := "<" + e.Data
		for _, a := range e.Attr {
			s += " " + a.Name + "=" + strconv.Quote(a.Value)
		}
		if e.Unary {
			s += "/"
		}
		return s + ">"
	case EndTagEvent:
		return "</" + e.Data + ">"
	case TextEvent:
		return strconv.Quote(e.Data)
	case CommentEvent:
		return "<!--" + e.Data + "-->"
	case WarningEvent:
		return "warn: " + e.Data
	}
	return "Invalid(" + strconv.Itoa(int(e.Type)) + ")"
}
