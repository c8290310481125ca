// Package feed holds the client-side bookkeeping for the aggregated feed
// view: which feed items are already in the user's saved collection, keyed
// for quick membership checks and for deletion by saved-record ID.
package feed

import (
	"sync"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// Tracker maps content IDs to saved-record IDs. Membership drives the
// save/unsave toggle in the UI; the saved-record ID is what the API needs
// to delete an entry.
type Tracker struct {
	mu    sync.RWMutex
	saved map[string]string
}

func NewTracker() *Tracker {
	return &Tracker{saved: make(map[string]string)}
}

// Reset replaces the tracked set with the given saved collection, typically
// after fetching /feed/saved.
func (t *Tracker) Reset(items []domain.SavedItem) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.saved = make(map[string]string, len(items))
	for _, it := range items {
		t.saved[it.ContentID] = it.ID
	}
}

// MarkSaved records a freshly saved item.
func (t *Tracker) MarkSaved(item domain.SavedItem) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.saved[item.ContentID] = item.ID
}

// Unmark forgets a content ID after its saved record was deleted.
func (t *Tracker) Unmark(contentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.saved, contentID)
}

// IsSaved reports whether the content is in the saved collection.
func (t *Tracker) IsSaved(contentID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.saved[contentID]
	return ok
}

// SavedID returns the saved-record ID for a content ID, if tracked.
func (t *Tracker) SavedID(contentID string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.saved[contentID]
	return id, ok
}

// Len returns the number of tracked saved items.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.saved)
}
