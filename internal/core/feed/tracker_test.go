package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

func TestTracker_MarkAndUnmark(t *testing.T) {
	tr := NewTracker()

	assert.False(t, tr.IsSaved("twitter-1"))
	assert.Zero(t, tr.Len())

	tr.MarkSaved(domain.SavedItem{ID: "s1", ContentID: "twitter-1"})

	assert.True(t, tr.IsSaved("twitter-1"))
	id, ok := tr.SavedID("twitter-1")
	assert.True(t, ok)
	assert.Equal(t, "s1", id)
	assert.Equal(t, 1, tr.Len())

	tr.Unmark("twitter-1")

	assert.False(t, tr.IsSaved("twitter-1"))
	_, ok = tr.SavedID("twitter-1")
	assert.False(t, ok)
}

func TestTracker_ResetReplacesCollection(t *testing.T) {
	tr := NewTracker()
	tr.MarkSaved(domain.SavedItem{ID: "old", ContentID: "reddit-9"})

	tr.Reset([]domain.SavedItem{
		{ID: "s1", ContentID: "twitter-1"},
		{ID: "s2", ContentID: "linkedin-3"},
	})

	assert.Equal(t, 2, tr.Len())
	assert.False(t, tr.IsSaved("reddit-9"))
	assert.True(t, tr.IsSaved("twitter-1"))
	assert.True(t, tr.IsSaved("linkedin-3"))
}

func TestTracker_UnmarkUnknownIsNoop(t *testing.T) {
	tr := NewTracker()
	tr.Unmark("never-seen")
	assert.Zero(t, tr.Len())
}
