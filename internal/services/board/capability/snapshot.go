package capability

import "sync"

// SnapshotHolder owns the most recently loaded capability set.
//
// Replace swaps the whole set; readers get the set as of their call.
type SnapshotHolder struct {
	mu      sync.RWMutex
	current Set
	loaded  bool
}

// Replace stores set as the current snapshot.
func (h *SnapshotHolder) Replace(set Set) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = set
	h.loaded = true
}

// Current returns the current snapshot and whether one has been loaded.
func (h *SnapshotHolder) Current() (Set, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current, h.loaded
}
