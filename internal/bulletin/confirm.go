package bulletin

import "sync"

// ConfirmRemovalThreshold is the number of repositories above which removing
// a section asks for confirmation.
const ConfirmRemovalThreshold = 3

// ConfirmStatus remembers that the viewer confirmed a section removal once.
// It lives as long as the viewer's login session and is never persisted.
type ConfirmStatus struct {
	mu        sync.Mutex
	confirmed bool
}

func (c *ConfirmStatus) Confirmed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmed
}

func (c *ConfirmStatus) Confirm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmed = true
}

// NeedsConfirmation reports whether removing a section with n repositories
// must be confirmed first.
func (c *ConfirmStatus) NeedsConfirmation(n int) bool {
	return n > ConfirmRemovalThreshold && !c.Confirmed()
}
