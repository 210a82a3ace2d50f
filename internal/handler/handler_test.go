package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vtpl/compiler/internal/loc"
)

func TestDiagnosticsResolveLocations(t *testing.T) {
	h := NewHandler("<div>\n  <p>\n</div>", "App.vue")
	h.AppendWarning(&loc.ErrorWithRange{
		Code:  loc.WARNING_UNCLOSED_HTML_TAG,
		Text:  "tag <p> has no matching end tag.",
		Range: loc.Span{Start: 8, End: 11}.Range(),
	})
	h.AppendError(errors.New("boom"))

	assert.True(t, h.HasErrors())
	assert.True(t, h.HasWarnings())

	warnings := h.Warnings()
	if assert.Len(t, warnings, 1) {
		w := warnings[0]
		assert.Equal(t, int(loc.WarningType), w.Severity)
		assert.Equal(t, int(loc.WARNING_UNCLOSED_HTML_TAG), w.Code)
		assert.Equal(t, &loc.DiagnosticLocation{
			File:     "App.vue",
			Line:     2,
			Column:   3,
			Length:   3,
			LineText: "  <p>",
		}, w.Location)
	}

	diagnostics := h.Diagnostics()
	assert.Len(t, diagnostics, 2)
	assert.Equal(t, "boom", diagnostics[0].Text)
	assert.Nil(t, diagnostics[0].Location)
}
