package publisher

import (
	"context"
	"encoding/json"
	"log"

	"yatube/internal/events"
	"yatube/internal/models"
)

// Conn is the part of the NATS client the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
}

type EventPublisher struct {
	conn Conn
}

func NewEventPublisher(conn Conn) *EventPublisher {
	return &EventPublisher{conn: conn}
}

func (p *EventPublisher) PublishPostCreated(ctx context.Context, post *models.Post) error {
	return p.publish(events.PostCreated, post)
}

func (p *EventPublisher) PublishPostUpdated(ctx context.Context, post *models.Post) error {
	return p.publish(events.PostUpdated, post)
}

func (p *EventPublisher) publish(subject string, post *models.Post) error {
	data, err := json.Marshal(events.PostEvent{
		PostID:      post.PostID,
		AuthorID:    post.AuthorID,
		GroupSlug:   post.GroupSlug,
		Text:        post.Text,
		PublishedAt: post.PublishedAt,
	})
	if err != nil {
		return err
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return err
	}

	log.Printf("Published event: %s for post %s", subject, post.PostID)
	return nil
}

// Noop is used when NATS is not configured.
type Noop struct{}

func (Noop) PublishPostCreated(context.Context, *models.Post) error { return nil }

func (Noop) PublishPostUpdated(context.Context, *models.Post) error { return nil }
