// Command vtpl scans a template and prints its structure.
//
//	vtpl [flags] [file]
//
// With no file, or when file is -, the template is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	vtpl "github.com/vtpl/compiler/internal"
	"github.com/vtpl/compiler/internal/handler"
	"github.com/vtpl/compiler/internal/loc"
	"github.com/vtpl/compiler/internal/printer"
	"github.com/vtpl/compiler/internal/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	format       string
	comments     bool
	expectHTML   bool
	sourceRange  bool
	position     bool
	interpolate  bool
	delimiters   string
	charset      string
	gzip         bool
	strict       bool
	quiet        bool
	decodeNL     bool
	decodeHrefNL bool
}

func parseFlags(args []string, stderr io.Writer) (*config, []string, error) {
	c := &config{}
	fs := flag.NewFlagSet("vtpl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.format, "format", "json", "output format: json, html or events")
	fs.BoolVar(&c.comments, "comments", false, "keep comments")
	fs.BoolVar(&c.expectHTML, "expect-html", true, "apply HTML auto-closing rules")
	fs.BoolVar(&c.sourceRange, "source-range", false, "record attribute source ranges")
	fs.BoolVar(&c.position, "position", false, "include line and column positions in json output")
	fs.BoolVar(&c.interpolate, "interpolate", false, "parse {{ }} bindings in text")
	fs.StringVar(&c.delimiters, "delimiters", "", "interpolation delimiters as open,close")
	fs.StringVar(&c.charset, "charset", "", "input charset, default UTF-8")
	fs.BoolVar(&c.gzip, "gzip", false, "input is gzip compressed")
	fs.BoolVar(&c.strict, "strict", false, "exit with status 1 when there are warnings")
	fs.BoolVar(&c.quiet, "q", false, "do not print the summary line")
	fs.BoolVar(&c.decodeNL, "decode-newlines", false, "decode &#10; and &#9; in attribute values")
	fs.BoolVar(&c.decodeHrefNL, "decode-href-newlines", false, "decode &#10; and &#9; in a[href]")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	switch c.format {
	case "json", "html", "events":
	default:
		return nil, nil, fmt.Errorf("unknown format %q", c.format)
	}
	return c, fs.Args(), nil
}

func (c *config) parseDelimiters() (*vtpl.Delimiters, error) {
	if c.delimiters == "" {
		return nil, nil
	}
	openDelim, closeDelim, ok := strings.Cut(c.delimiters, ",")
	if !ok || openDelim == "" || closeDelim == "" {
		return nil, fmt.Errorf("invalid delimiters %q, want open,close", c.delimiters)
	}
	return &vtpl.Delimiters{openDelim, closeDelim}, nil
}

func readInput(files []string, stdin io.Reader, c *config) (string, string, error) {
	opts := source.Options{Charset: c.charset, Gzip: c.gzip}
	if len(files) == 0 || files[0] == "-" {
		text, err := source.Read(stdin, "<stdin>", opts)
		return "<stdin>", text, err
	}
	name := files[0]
	f, err := os.Open(name)
	if err != nil {
		return name, "", err
	}
	defer f.Close()
	text, err := source.Read(f, name, opts)
	return name, text, err
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c, files, err := parseFlags(args, stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(stderr, err)
		}
		return 2
	}
	delimiters, err := c.parseDelimiters()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	name, text, err := readInput(files, stdin, c)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	h := handler.NewHandler(text, name)
	opts := vtpl.BaseOptions()
	opts.ExpectHTML = c.expectHTML
	opts.ShouldKeepComment = c.comments
	opts.OutputSourceRange = c.sourceRange
	opts.ShouldDecodeNewlines = c.decodeNL
	opts.ShouldDecodeNewlinesForHref = c.decodeHrefNL
	opts.Handler = h

	r := &vtpl.Recorder{}
	vtpl.Scan(text, r, opts)
	events := r.Markup()

	switch c.format {
	case "json":
		result, err := printer.PrintToJSON(text, events, printer.PrintOptions{
			Position:      c.position,
			Interpolation: c.interpolate,
			Delimiters:    delimiters,
			Indent:        "  ",
		})
		if err != nil {
			h.AppendError(fmt.Errorf("printing json: %w", err))
			break
		}
		stdout.Write(result.Output)
		fmt.Fprintln(stdout)
	case "html":
		var b strings.Builder
		vtpl.PrintToSource(&b, events)
		fmt.Fprintln(stdout, b.String())
	case "events":
		tp := vtpl.NewTextParser(nil)
		for _, e := range events {
			fmt.Fprintf(stdout, "%d-%d\t%s\n", e.Span.Start, e.Span.End, e)
			if !c.interpolate || e.Type != vtpl.TextEvent {
				continue
			}
			if result, ok := tp.Parse(e.Data, delimiters); ok {
				fmt.Fprintf(stdout, "\t= %s\n", result.Expression)
			}
		}
	}

	diagnostics := h.Diagnostics()
	for _, d := range diagnostics {
		printDiagnostic(stderr, d)
	}
	if !c.quiet {
		fmt.Fprintf(stderr, "%s: scanned %s into %s events, %s\n",
			name,
			humanize.Bytes(uint64(len(text))),
			humanize.Comma(int64(len(events))),
			plural(len(h.Warnings()), "warning"),
		)
	}
	if h.HasErrors() || c.strict && h.HasWarnings() {
		return 1
	}
	return 0
}

func printDiagnostic(w io.Writer, d loc.DiagnosticMessage) {
	severity := loc.DiagnosticSeverity(d.Severity)
	if d.Location == nil {
		fmt.Fprintf(w, "%s: %s\n", severity, d.Text)
		return
	}
	l := d.Location
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", l.File, l.Line, l.Column, severity, d.Text)
	if l.LineText != "" {
		fmt.Fprintf(w, "  %s\n", l.LineText)
		fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", l.Column-1), strings.Repeat("^", max(l.Length, 1)))
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}
