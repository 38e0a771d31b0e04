package view

import "sync"

// Dialog is modal state: closed, or open with a payload. The browser closes
// a dialog by following its dismiss link, which renders the page without it.
type Dialog[T any] struct {
	mu      sync.RWMutex
	open    bool
	payload T
}

func (d *Dialog[T]) Open(payload T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.open = true
	d.payload = payload
}

// Payload returns the open payload; ok is false when the dialog is closed.
func (d *Dialog[T]) Payload() (payload T, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.payload, d.open
}
