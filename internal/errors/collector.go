package errors

import (
	"fmt"
	"sync"
	"time"
)

// Collector collects per-country failures during a batch build.
// The extraction layer itself never recovers from an error; the batch
// caller decides whether a failed country is skipped or fatal.
type Collector struct {
	// entries stores all collected failures
	entries []Entry

	// mu protects the entries slice
	mu sync.RWMutex

	// maxEntries is the maximum number of failures to store (0 = unlimited)
	maxEntries int
}

// Entry represents a single collected failure with context
type Entry struct {
	Country   string
	Err       error
	Timestamp time.Time
}

// NewCollector creates a new Collector. limit caps the number of stored
// entries; 0 means unlimited.
func NewCollector(limit int) *Collector {
	return &Collector{
		entries:    make([]Entry, 0),
		maxEntries: limit,
	}
}

// Add records a failure for country. Returns an error when the entry
// limit has been reached.
func (c *Collector) Add(country string, err error) error {
	if err == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		return fmt.Errorf("maximum error limit reached (%d errors)", c.maxEntries)
	}

	c.entries = append(c.entries, Entry{
		Country:   country,
		Err:       err,
		Timestamp: time.Now(),
	})

	return nil
}

// Entries returns a copy of all collected failures
func (c *Collector) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// HasErrors returns true if any failures were collected
func (c *Collector) HasErrors() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries) > 0
}

// Count returns the number of collected failures
func (c *Collector) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// NotFoundCount returns how many collected failures were missing-country errors
func (c *Collector) NotFoundCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, e := range c.entries {
		if IsNotFound(e.Err) {
			n++
		}
	}
	return n
}
