// v0
// internal/store/window.go
package store

import (
	"sync"

	"thermoview/analysis/internal/core"
)

// Window owns the series for the current dashboard view: the most recent samples,
// oldest first, capped at a fixed capacity. The feed appends while the refresh
// loop snapshots, so access is serialized here; the analysis functions themselves
// only ever see read-only copies.
type Window struct {
	mu  sync.RWMutex
	cap int
	buf core.Series
}

// New returns a window keeping the last capacity samples. Capacities below one
// are clamped to one.
func New(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{cap: capacity, buf: make(core.Series, 0, capacity)}
}

// Append adds one sample, evicting the oldest once the window is full.
func (w *Window) Append(s core.Sample) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.buf) == w.cap {
		copy(w.buf, w.buf[1:])
		w.buf = w.buf[:len(w.buf)-1]
	}
	w.buf = append(w.buf, s)
}

// Snapshot copies the current window, oldest first. Appends after the snapshot
// never mutate a copy already handed out.
func (w *Window) Snapshot() core.Series {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make(core.Series, len(w.buf))
	copy(out, w.buf)
	return out
}

// Len reports the number of samples currently held.
func (w *Window) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.buf)
}
