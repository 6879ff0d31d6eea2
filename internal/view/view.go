// Package view holds the shared display-mode state observed by every
// presentation surface.
package view

import "sync"

// Mode selects how the current page of records is rendered.
type Mode string

const (
	ModeList Mode = "list"
	ModeCard Mode = "card"
)

func (m Mode) Valid() bool { return m == ModeList || m == ModeCard }

// Controller broadcasts display-mode changes to subscribers so no surface
// has to poll. The zero mode on startup is list.
type Controller struct {
	mu   sync.Mutex
	mode Mode
	subs []func(Mode)
}

func NewController() *Controller {
	return &Controller{mode: ModeList}
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Subscribe registers fn for future mode changes.
func (c *Controller) Subscribe(fn func(Mode)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Set switches the mode and notifies subscribers. Requesting the current
// mode again, or an unknown mode, changes nothing and notifies nobody.
func (c *Controller) Set(mode Mode) bool {
	c.mu.Lock()
	if !mode.Valid() || mode == c.mode {
		c.mu.Unlock()
		return false
	}
	c.mode = mode
	subs := make([]func(Mode), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(mode)
	}
	return true
}
