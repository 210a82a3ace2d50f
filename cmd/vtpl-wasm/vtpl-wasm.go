//go:build js && wasm

package main

import (
	"errors"
	"syscall/js"

	"github.com/norunners/vert"
	vtpl "github.com/vtpl/compiler/internal"
	"github.com/vtpl/compiler/internal/handler"
	"github.com/vtpl/compiler/internal/loc"
	"github.com/vtpl/compiler/internal/printer"
	wasm_utils "github.com/vtpl/compiler/internal_wasm/utils"
)

func main() {
	js.Global().Set("__vtpl_parse", js.FuncOf(Parse))
	js.Global().Set("__vtpl_scan", js.FuncOf(ScanEvents))
	<-make(chan bool)
}

func jsString(j js.Value) string {
	if j.IsUndefined() || j.IsNull() {
		return ""
	}
	return j.String()
}

func jsBool(j js.Value) bool {
	if j.IsUndefined() || j.IsNull() {
		return false
	}
	return j.Bool()
}

func jsDelimiters(j js.Value) *vtpl.Delimiters {
	if j.IsUndefined() || j.IsNull() || j.Length() != 2 {
		return nil
	}
	return &vtpl.Delimiters{jsString(j.Index(0)), jsString(j.Index(1))}
}

type ParseResult struct {
	AST         string                  `js:"ast"`
	Diagnostics []loc.DiagnosticMessage `js:"diagnostics"`
}

type ScanResult struct {
	Diagnostics []loc.DiagnosticMessage `js:"diagnostics"`
}

func makeParseOptions(options js.Value, h *handler.Handler) vtpl.ParseOptions {
	opts := vtpl.BaseOptions()
	opts.Handler = h
	if options.IsUndefined() || options.IsNull() {
		return opts
	}
	if v := options.Get("expectHTML"); !v.IsUndefined() {
		opts.ExpectHTML = v.Bool()
	}
	opts.ShouldKeepComment = jsBool(options.Get("comments"))
	opts.ShouldDecodeNewlines = jsBool(options.Get("shouldDecodeNewlines"))
	opts.ShouldDecodeNewlinesForHref = jsBool(options.Get("shouldDecodeNewlinesForHref"))
	opts.OutputSourceRange = jsBool(options.Get("outputSourceRange"))
	return opts
}

func optionsArg(args []js.Value) js.Value {
	if len(args) > 1 && !args[1].IsNull() {
		return args[1]
	}
	return js.Undefined()
}

var errMissingSource = errors.New("missing template source argument")

func scanSource(args []js.Value) (string, *vtpl.Recorder, *handler.Handler, error) {
	if len(args) == 0 {
		return "", nil, nil, errMissingSource
	}
	source := jsString(args[0])
	options := optionsArg(args)
	filename := ""
	if !options.IsUndefined() {
		filename = jsString(options.Get("filename"))
	}
	h := handler.NewHandler(source, filename)
	r := &vtpl.Recorder{}
	vtpl.Scan(source, r, makeParseOptions(options, h))
	return source, r, h, nil
}

// Parse scans a template and returns its tree as JSON along with any
// diagnostics.
func Parse(this js.Value, args []js.Value) interface{} {
	source, r, h, err := scanSource(args)
	if err != nil {
		return wasm_utils.ErrorToJSError(err)
	}
	options := optionsArg(args)
	printOpts := printer.PrintOptions{}
	if !options.IsUndefined() {
		printOpts.Position = jsBool(options.Get("position"))
		printOpts.Interpolation = jsBool(options.Get("interpolation"))
		printOpts.Delimiters = jsDelimiters(options.Get("delimiters"))
	}
	result, err := printer.PrintToJSON(source, r.Markup(), printOpts)
	if err != nil {
		return wasm_utils.ErrorToJSError(err)
	}
	return vert.ValueOf(ParseResult{
		AST:         string(result.Output),
		Diagnostics: h.Diagnostics(),
	}).Value
}

// ScanEvents scans a template and returns the raw event stream.
func ScanEvents(this js.Value, args []js.Value) interface{} {
	_, r, h, err := scanSource(args)
	if err != nil {
		return wasm_utils.ErrorToJSError(err)
	}
	value := vert.ValueOf(ScanResult{Diagnostics: h.Diagnostics()}).Value
	value.Set("events", wasm_utils.GetEvents(r.Markup()))
	return value
}
