package vtpl

import (
	"github.com/vtpl/compiler/internal/loc"
	"golang.org/x/net/html/atom"
)

// Handler receives the structural events of a scan in document order.
// Offsets are byte offsets into the scanned source.
type Handler interface {
	Start(tag string, attrs []Attribute, unary bool, start, end int)
	End(tag string, start, end int)
	Chars(text string, start, end int)
}

// CommentHandler is implemented by handlers that want comments. Comments
// are only reported when ParseOptions.ShouldKeepComment is set.
type CommentHandler interface {
	Comment(text string, start, end int)
}

// WarnHandler is implemented by handlers that want advisory warnings about
// unbalanced or malformed markup.
type WarnHandler interface {
	Warn(msg string, span loc.Span)
}

// Funcs adapts plain functions to the handler interfaces. Nil fields are
// skipped.
type Funcs struct {
	OnStart   func(tag string, attrs []Attribute, unary bool, start, end int)
	OnEnd     func(tag string, start, end int)
	OnChars   func(text string, start, end int)
	OnComment func(text string, start, end int)
	OnWarn    func(msg string, span loc.Span)
}

func (f Funcs) Start(tag string, attrs []Attribute, unary bool, start, end int) {
	if f.OnStart != nil {
		f.OnStart(tag, attrs, unary, start, end)
	}
}

func (f Funcs) End(tag string, start, end int) {
	if f.OnEnd != nil {
		f.OnEnd(tag, start, end)
	}
}

func (f Funcs) Chars(text string, start, end int) {
	if f.OnChars != nil {
		f.OnChars(text, start, end)
	}
}

func (f Funcs) Comment(text string, start, end int) {
	if f.OnComment != nil {
		f.OnComment(text, start, end)
	}
}

func (f Funcs) Warn(msg string, span loc.Span) {
	if f.OnWarn != nil {
		f.OnWarn(msg, span)
	}
}

// Recorder is a Handler that keeps every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Start(tag string, attrs []Attribute, unary bool, start, end int) {
	r.Events = append(r.Events, Event{
		Type:     StartTagEvent,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
		Attr:     attrs,
		Unary:    unary,
		Span:     loc.Span{Start: start, End: end},
	})
}

func (r *Recorder) End(tag string, start, end int) {
	r.Events = append(r.Events, Event{
		Type:     EndTagEvent,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
		Span:     loc.Span{Start: start, End: end},
	})
}

func (r *Recorder) Chars(text string, start, end int) {
	r.Events = append(r.Events, Event{Type: TextEvent, Data: text, Span: loc.Span{Start: start, End: end}})
}

func (r *Recorder) Comment(text string, start, end int) {
	r.Events = append(r.Events, Event{Type: CommentEvent, Data: text, Span: loc.Span{Start: start, End: end}})
}

func (r *Recorder) Warn(msg string, span loc.Span) {
	r.Events = append(r.Events, Event{Type: WarningEvent, Data: msg, Span: span})
}

// Warnings returns the messages of the recorded warnings.
func (r *Recorder) Warnings() []string {
	var msgs []string
	for _, e := range r.Events {
		if e.Type == WarningEvent {
			msgs = append(msgs, e.Data)
		}
	}
	return msgs
}

// Markup returns the recorded events without warnings.
func (r *Recorder) Markup() []Event {
	events := make([]Event, 0, len(r.Events))
	for _, e := range r.Events {
		if e.Type != WarningEvent {
			events = append(events, e)
		}
	}
	return events
}
