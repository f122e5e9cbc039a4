// Package titles rotates the role titles shown in the page heading.
package titles

import (
	"errors"
	"sync"
)

// ErrNoTitles is returned when a cycle is built from an empty list.
var ErrNoTitles = errors.New("titles: at least one title is required")

// Tick is the position of a cycle after an advance.
type Tick struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// Cycle holds an index into a fixed list of titles.
type Cycle struct {
	mu     sync.Mutex
	titles []string
	index  int
}

// New returns a cycle positioned on the first title.
func New(titles []string) (*Cycle, error) {
	if len(titles) == 0 {
		return nil, ErrNoTitles
	}
	return &Cycle{titles: append([]string(nil), titles...)}, nil
}

// Len returns the number of titles.
func (c *Cycle) Len() int {
	return len(c.titles)
}

// Index returns the current position.
func (c *Cycle) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Current returns the current title.
func (c *Cycle) Current() Tick {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Tick{Index: c.index, Title: c.titles[c.index]}
}

// Advance moves to the next title, wrapping after the last one.
func (c *Cycle) Advance() Tick {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % len(c.titles)
	return Tick{Index: c.index, Title: c.titles[c.index]}
}
