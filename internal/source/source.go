// Package source reads template sources for scanning. Inputs may be gzip
// compressed and in any encoding known to the WHATWG Encoding Standard.
package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding/htmlindex"
)

type Options struct {
	// Charset names the input encoding, for example "windows-1252".
	// Empty means UTF-8.
	Charset string
	// Gzip forces gzip decompression. Names ending in .gz are always
	// decompressed.
	Gzip bool
}

// Read returns the content of r as a UTF-8 string.
func Read(r io.Reader, name string, opts Options) (string, error) {
	if opts.Gzip || strings.HasSuffix(name, ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		defer zr.Close()
		r = zr
	}
	if opts.Charset != "" {
		enc, err := htmlindex.Get(opts.Charset)
		if err != nil {
			return "", fmt.Errorf("charset %q: %w", opts.Charset, err)
		}
		r = enc.NewDecoder().Reader(r)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(b), nil
}
