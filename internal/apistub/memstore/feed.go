package memstore

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

const feedPageSize = 10

// Feed serves a deterministic aggregated feed and each user's saved
// collection. Feed items are generated once at startup so paging is stable
// across requests.
type Feed struct {
	mu    sync.RWMutex
	items []domain.FeedItem
	saved map[string]*domain.SavedItem
}

// NewFeed seeds perSource items for every known source.
func NewFeed(perSource int) *Feed {
	f := &Feed{saved: make(map[string]*domain.SavedItem)}
	base := time.Now().UTC().Add(-24 * time.Hour)
	for _, src := range domain.AllFeedSources {
		for i := 1; i <= perSource; i++ {
			f.items = append(f.items, domain.FeedItem{
				ContentID:   fmt.Sprintf("%s-%d", src, i),
				Source:      src,
				Author:      fmt.Sprintf("%s_creator_%d", src, i),
				Title:       fmt.Sprintf("%s post #%d", strings.ToUpper(string(src)[:1])+string(src)[1:], i),
				Summary:     fmt.Sprintf("Sample %s item %d from the stub aggregator", src, i),
				URL:         fmt.Sprintf("https://%s.example.com/posts/%d", src, i),
				PublishedAt: base.Add(time.Duration(i) * time.Minute),
			})
		}
	}
	sort.Slice(f.items, func(i, j int) bool {
		return f.items[i].PublishedAt.After(f.items[j].PublishedAt)
	})
	return f
}

// List returns one page of the feed filtered by sources and search term.
func (f *Feed) List(q domain.FeedQuery) ([]domain.FeedItem, domain.Pagination) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	wanted := make(map[domain.FeedSource]struct{}, len(q.Sources))
	for _, s := range q.Sources {
		wanted[s] = struct{}{}
	}
	search := strings.ToLower(q.Search)

	matched := make([]domain.FeedItem, 0, len(f.items))
	for _, item := range f.items {
		if len(wanted) > 0 {
			if _, ok := wanted[item.Source]; !ok {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Title), search) {
			continue
		}
		matched = append(matched, item)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	total := len(matched)
	totalPages := (total + feedPageSize - 1) / feedPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * feedPageSize
	if start > total {
		start = total
	}
	end := start + feedPageSize
	if end > total {
		end = total
	}

	return matched[start:end], domain.Pagination{Page: page, TotalPages: totalPages, Total: total}
}

// Save stores a feed item in userID's collection. Saving the same content
// twice returns the existing record.
func (f *Feed) Save(userID string, item domain.FeedItem) *domain.SavedItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.saved {
		if s.UserID == userID && s.ContentID == item.ContentID {
			clone := *s
			return &clone
		}
	}

	saved := &domain.SavedItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ContentID: item.ContentID,
		Source:    item.Source,
		Title:     item.Title,
		URL:       item.URL,
		SavedAt:   time.Now().UTC(),
	}
	f.saved[saved.ID] = saved
	clone := *saved
	return &clone
}

// Saved lists userID's collection, newest first.
func (f *Feed) Saved(userID string) []domain.SavedItem {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.SavedItem, 0)
	for _, s := range f.saved {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out
}

// DeleteSaved removes a saved record. Only the owner may delete it.
func (f *Feed) DeleteSaved(savedID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.saved[savedID]
	if !ok {
		return domain.ErrContentNotFound
	}
	if s.UserID != userID {
		return domain.ErrForbidden
	}
	delete(f.saved, savedID)
	return nil
}
