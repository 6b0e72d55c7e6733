package events

import (
	"time"
)

const (
	PostCreated = "post.created"
	PostUpdated = "post.updated"
)

// PostEvent is published after a post is stored.
type PostEvent struct {
	PostID      string    `json:"post_id"`
	AuthorID    string    `json:"author_id"`
	GroupSlug   *string   `json:"group_slug,omitempty"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"pub_date"`
}
