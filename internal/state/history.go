package state

import (
	"log"
	"sync"
)

// History is a linear undo/redo stack of canvas snapshots. Snapshots are
// immutable, so a reader holding Current never sees a half-applied edit.
type History struct {
	snapshots []Snapshot
	cursor    int
	mu        sync.RWMutex
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Push records s as the newest state, dropping anything that was undone.
func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.snapshots) > 0 {
		h.snapshots = h.snapshots[:h.cursor+1]
	}
	h.snapshots = append(h.snapshots, s)
	h.cursor = len(h.snapshots) - 1

	log.Printf("[HISTORY] Pushed snapshot %d with %d elements", h.cursor, s.Len())
}

// Undo steps back one snapshot. It reports whether the cursor moved.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == 0 {
		return false
	}
	h.cursor--
	log.Printf("[HISTORY] Undo to snapshot %d", h.cursor)
	return true
}

// Redo steps forward one snapshot. It reports whether the cursor moved.
func (h *History) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor >= len(h.snapshots)-1 {
		return false
	}
	h.cursor++
	log.Printf("[HISTORY] Redo to snapshot %d", h.cursor)
	return true
}

// Current returns the snapshot under the cursor, or an empty canvas when
// nothing was pushed yet.
func (h *History) Current() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.snapshots) == 0 {
		return Snapshot{}
	}
	return h.snapshots[h.cursor]
}

// DeleteAll pushes an empty canvas, so clearing can be undone.
func (h *History) DeleteAll() {
	h.Push(Snapshot{})
}

// Reset discards every snapshot.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snapshots = nil
	h.cursor = 0
	log.Println("[HISTORY] Reset")
}

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cursor > 0
}

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cursor < len(h.snapshots)-1
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.snapshots)
}
