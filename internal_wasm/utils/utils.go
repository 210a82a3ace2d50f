//go:build js && wasm

package wasm_utils

import (
	"runtime/debug"
	"strings"
	"syscall/js"

	"github.com/norunners/vert"
	vtpl "github.com/vtpl/compiler/internal"
)

// GetAttrs converts attributes to a plain object. Valueless attributes map
// to true.
func GetAttrs(attrs []vtpl.Attribute) js.Value {
	obj := js.Global().Get("Object").New()
	for _, attr := range attrs {
		if attr.Value == "" {
			obj.Set(attr.Name, true)
		} else {
			obj.Set(attr.Name, attr.Value)
		}
	}
	return obj
}

// GetEvents converts recorded events to an array of plain objects.
func GetEvents(events []vtpl.Event) js.Value {
	arr := js.Global().Get("Array").New(len(events))
	for i, e := range events {
		obj := js.Global().Get("Object").New()
		obj.Set("type", e.Type.String())
		obj.Set("data", e.Data)
		obj.Set("start", e.Span.Start)
		obj.Set("end", e.Span.End)
		if e.Type == vtpl.StartTagEvent {
			obj.Set("attrs", GetAttrs(e.Attr))
			obj.Set("unary", e.Unary)
		}
		arr.SetIndex(i, obj)
	}
	return arr
}

type JSError struct {
	Message string `js:"message"`
	Stack   string `js:"stack"`
}

func (err *JSError) Value() js.Value {
	return vert.ValueOf(err).Value
}

func ErrorToJSError(err error) js.Value {
	stack := string(debug.Stack())
	message := strings.TrimSpace(err.Error())
	jsError := JSError{
		Message: message,
		Stack:   stack,
	}
	return jsError.Value()
}
