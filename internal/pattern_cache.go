package vtpl

import (
	"sync"
)

// PatternCache memoizes compiled patterns by key. Entries are never
// evicted; the set of keys (raw-text tag names, delimiter pairs) is small
// and fixed for a given configuration.
type PatternCache[P any] struct {
	mu      sync.RWMutex
	entries map[string]P
}

func NewPatternCache[P any]() *PatternCache[P] {
	return &PatternCache[P]{entries: make(map[string]P)}
}

// Get returns the pattern stored under key, compiling and storing it with
// compile on first use. If two callers race on the same key the first
// stored pattern wins.
func (c *PatternCache[P]) Get(key string, compile func() P) P {
	c.mu.RLock()
	re, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return re
	}
	re = compile()
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = re
	return re
}

// Len returns the number of cached patterns.
func (c *PatternCache[P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
