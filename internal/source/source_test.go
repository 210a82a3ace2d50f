package source

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, s string) *bytes.Buffer {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestRead(t *testing.T) {
	got, err := Read(strings.NewReader("<p>{{ a }}</p>"), "a.html", Options{})
	require.NoError(t, err)
	assert.Equal(t, "<p>{{ a }}</p>", got)
}

func TestReadGzip(t *testing.T) {
	got, err := Read(gzipped(t, "<div>x</div>"), "page.html.gz", Options{})
	require.NoError(t, err)
	assert.Equal(t, "<div>x</div>", got)

	got, err = Read(gzipped(t, "<br>"), "-", Options{Gzip: true})
	require.NoError(t, err)
	assert.Equal(t, "<br>", got)

	_, err = Read(strings.NewReader("not gzip"), "bad.gz", Options{})
	assert.ErrorContains(t, err, "bad.gz")
}

func TestReadCharset(t *testing.T) {
	got, err := Read(bytes.NewReader([]byte("<p>caf\xe9</p>")), "latin.html", Options{Charset: "windows-1252"})
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", got)

	got, err = Read(bytes.NewReader([]byte("<p>caf\xe9</p>")), "latin.html", Options{Charset: "ISO-8859-1"})
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", got)

	_, err = Read(strings.NewReader("x"), "x.html", Options{Charset: "no-such-charset"})
	assert.ErrorContains(t, err, "no-such-charset")
}
