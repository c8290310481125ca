package domain

import "time"

// ContentType enumerates what a creator can publish.
type ContentType string

const (
	ContentArticle ContentType = "article"
	ContentVideo   ContentType = "video"
	ContentImage   ContentType = "image"
	ContentAudio   ContentType = "audio"
)

// Comment is a single comment attached to a piece of content.
type Comment struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	UserName  string    `json:"userName,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Content is a published item owned by a creator.
type Content struct {
	ID          string      `json:"_id"`
	UserID      string      `json:"user"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Body        string      `json:"body,omitempty"`
	MediaURL    string      `json:"mediaUrl,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Likes       []string    `json:"likes,omitempty"`
	Comments    []Comment   `json:"comments,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// LikedBy reports whether userID appears in the likes list.
func (c *Content) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ContentInput is the payload for creating or updating content.
type ContentInput struct {
	Type        ContentType `json:"type" validate:"required,oneof=article video image audio"`
	Title       string      `json:"title" validate:"required,min=3"`
	Description string      `json:"description,omitempty"`
	Body        string      `json:"body,omitempty"`
	MediaURL    string      `json:"mediaUrl,omitempty" validate:"omitempty,url"`
	Tags        []string    `json:"tags,omitempty"`
}
