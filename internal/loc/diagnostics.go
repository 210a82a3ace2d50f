package loc

import "fmt"

type DiagnosticCode int

const (
	WARNING_UNCLOSED_HTML_TAG DiagnosticCode = 2002
	WARNING_MALFORMED_TAG     DiagnosticCode = 2010
)

type DiagnosticSeverity int

const (
	ErrorType   DiagnosticSeverity = 1
	WarningType DiagnosticSeverity = 2
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case ErrorType:
		return "error"
	case WarningType:
		return "warning"
	}
	return fmt.Sprintf("Invalid(%d)", int(s))
}

type DiagnosticMessage struct {
	Severity int                 `js:"severity" json:"severity"`
	Code     int                 `js:"code" json:"code"`
	Location *DiagnosticLocation `js:"location" json:"location,omitempty"`
	Hint     string              `js:"hint" json:"hint,omitempty"`
	Text     string              `js:"text" json:"text"`
}

type DiagnosticLocation struct {
	File     string `js:"file" json:"file,omitempty"`
	Line     int    `js:"line" json:"line"`
	Column   int    `js:"column" json:"column"`
	Length   int    `js:"length" json:"length"`
	LineText string `js:"lineText" json:"lineText,omitempty"`
}

type ErrorWithRange struct {
	Code  DiagnosticCode
	Text  string
	Hint  string
	Range Range
}

func (e *ErrorWithRange) Error() string {
	return e.Text
}

func (e *ErrorWithRange) ToMessage(location *DiagnosticLocation) DiagnosticMessage {
	return DiagnosticMessage{
		Code:     int(e.Code),
		Text:     e.Text,
		Hint:     e.Hint,
		Location: location,
	}
}
