package game

import (
	"hockey-tracker/internal/domain"
)

// History is the strictly ordered log of every recorded action in the game.
// It drives undo and scopes it to the active period.
type History struct {
	entries []domain.HistoryEntry
}

func (h *History) Append(entry domain.HistoryEntry) {
	h.entries = append(h.entries, entry)
}

// Last returns the newest entry without removing it.
func (h *History) Last() (domain.HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return domain.HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// PopLast removes and returns the newest entry.
func (h *History) PopLast() (domain.HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return domain.HistoryEntry{}, false
	}
	entry := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return entry, true
}

func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the log in temporal order.
func (h *History) Entries() []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
