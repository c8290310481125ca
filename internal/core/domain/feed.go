package domain

import "time"

// FeedSource identifies where an aggregated feed item originated.
type FeedSource string

const (
	SourceTwitter  FeedSource = "twitter"
	SourceReddit   FeedSource = "reddit"
	SourceLinkedIn FeedSource = "linkedin"
)

// AllFeedSources lists every source the aggregator knows about, in the
// order the UI presents them.
var AllFeedSources = []FeedSource{SourceTwitter, SourceReddit, SourceLinkedIn}

// FeedItem is one entry of the aggregated social feed.
type FeedItem struct {
	ContentID   string     `json:"contentId"`
	Source      FeedSource `json:"source"`
	Author      string     `json:"author"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	URL         string     `json:"url,omitempty"`
	PublishedAt time.Time  `json:"publishedAt"`
}

// SavedItem is a feed item the user stored in their collection. ID is the
// saved-record identifier used for deletion; ContentID links back to the
// feed entry for set-membership checks in the UI.
type SavedItem struct {
	ID        string     `json:"_id"`
	UserID    string     `json:"user"`
	ContentID string     `json:"contentId"`
	Source    FeedSource `json:"source"`
	Title     string     `json:"title"`
	URL       string     `json:"url,omitempty"`
	SavedAt   time.Time  `json:"savedAt"`
}

// FeedQuery captures the filter state of the feed view.
type FeedQuery struct {
	Page    int
	Sources []FeedSource
	Search  string
}

// Pagination is the paging block returned alongside list responses.
type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}
