package memory

import (
	"sync"

	"go-weather/internal/domain/entity"
)

// HistoryCapacity is how many searches the ring keeps
const HistoryCapacity = 3

// HistoryGateway keeps the most recent successful searches for the lifetime of the process
type HistoryGateway interface {
	// Record pushes a search to the front, evicting the oldest one beyond capacity
	Record(entry entity.HistoryEntry)
	// Entries returns the recorded searches, most recent first
	Entries() []entity.HistoryEntry
}

// historyRing implements HistoryGateway with a bounded slice
type historyRing struct {
	mu       sync.RWMutex
	entries  []entity.HistoryEntry
	capacity int
}

var _ HistoryGateway = (*historyRing)(nil)

func NewHistoryRing(capacity int) HistoryGateway {
	if capacity <= 0 {
		capacity = HistoryCapacity
	}
	return &historyRing{
		entries:  make([]entity.HistoryEntry, 0, capacity),
		capacity: capacity,
	}
}

func (h *historyRing) Record(entry entity.HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) < h.capacity {
		h.entries = append(h.entries, entity.HistoryEntry{})
	}
	copy(h.entries[1:], h.entries[:len(h.entries)-1])
	h.entries[0] = entry
}

func (h *historyRing) Entries() []entity.HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return append([]entity.HistoryEntry(nil), h.entries...)
}
