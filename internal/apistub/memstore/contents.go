package memstore

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// Contents stores published items keyed by ID.
type Contents struct {
	mu   sync.RWMutex
	byID map[string]*domain.Content
}

func NewContents() *Contents {
	return &Contents{byID: make(map[string]*domain.Content)}
}

func cloneContent(c *domain.Content) *domain.Content {
	clone := *c
	clone.Likes = append([]string(nil), c.Likes...)
	clone.Comments = append([]domain.Comment(nil), c.Comments...)
	return &clone
}

// Create inserts a new item owned by userID.
func (s *Contents) Create(userID string, in domain.ContentInput) *domain.Content {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	item := &domain.Content{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		MediaURL:    in.MediaURL,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.byID[item.ID] = item
	return cloneContent(item)
}

// Get returns the item by ID.
func (s *Contents) Get(id string) (*domain.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	return cloneContent(item), nil
}

// ListFilter narrows List results.
type ListFilter struct {
	Type   domain.ContentType
	UserID string
	Search string
}

// List returns matching items, newest first.
func (s *Contents) List(f ListFilter) []domain.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Content, 0, len(s.byID))
	search := strings.ToLower(f.Search)
	for _, item := range s.byID {
		if f.Type != "" && item.Type != f.Type {
			continue
		}
		if f.UserID != "" && item.UserID != f.UserID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Title), search) {
			continue
		}
		out = append(out, *cloneContent(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Update replaces the editable fields. Only the owner may update.
func (s *Contents) Update(id, userID string, admin bool, in domain.ContentInput) (*domain.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	if item.UserID != userID && !admin {
		return nil, domain.ErrForbidden
	}
	item.Type = in.Type
	item.Title = in.Title
	item.Description = in.Description
	item.Body = in.Body
	item.MediaURL = in.MediaURL
	item.Tags = in.Tags
	item.UpdatedAt = time.Now().UTC()
	return cloneContent(item), nil
}

// Delete removes the item. Only the owner or an admin may delete.
func (s *Contents) Delete(id, userID string, admin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.byID[id]
	if !ok {
		return domain.ErrContentNotFound
	}
	if item.UserID != userID && !admin {
		return domain.ErrForbidden
	}
	delete(s.byID, id)
	return nil
}

// ToggleLike adds or removes userID from the likes list.
func (s *Contents) ToggleLike(id, userID string) (*domain.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	for i, liker := range item.Likes {
		if liker == userID {
			item.Likes = append(item.Likes[:i], item.Likes[i+1:]...)
			return cloneContent(item), nil
		}
	}
	item.Likes = append(item.Likes, userID)
	return cloneContent(item), nil
}

// AddComment appends a comment and returns the updated item.
func (s *Contents) AddComment(id, userID, userName, text string) (*domain.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	item.Comments = append(item.Comments, domain.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	return cloneContent(item), nil
}
