package loc

import "sort"

type Loc struct {
	// This is the 0-based index of this location from the start of the source, in bytes
	Start int
}

type Range struct {
	Loc Loc
	Len int
}

// Span is a range of bytes in the scanned source. The start is inclusive,
// the end is exclusive.
type Span struct {
	Start, End int
}

func (s Span) Range() Range {
	n := s.End - s.Start
	if n < 0 {
		n = 0
	}
	return Range{Loc: Loc{Start: s.Start}, Len: n}
}

// LineTable maps byte offsets to 1-based line and column numbers.
type LineTable struct {
	source string
	starts []int
}

func NewLineTable(source string) *LineTable {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineTable{source: source, starts: starts}
}

// LineAndColumn returns the 1-based line and column for a byte offset.
// Offsets past the end of the source are clamped to it.
func (t *LineTable) LineAndColumn(l Loc) (line int, column int) {
	offset := l.Start
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.source) {
		offset = len(t.source)
	}
	i := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > offset }) - 1
	return i + 1, offset - t.starts[i] + 1
}

// LineText returns the text of the 1-based line, without its terminator.
func (t *LineTable) LineText(line int) string {
	if line < 1 || line > len(t.starts) {
		return ""
	}
	start := t.starts[line-1]
	end := len(t.source)
	if line < len(t.starts) {
		end = t.starts[line] - 1
	}
	if end > start && t.source[end-1] == '\r' {
		end--
	}
	return t.source[start:end]
}
