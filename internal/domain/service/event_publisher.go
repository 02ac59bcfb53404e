package service

import (
	"context"
)

// PagesPublishedEvent announces one completed publish batch.
type PagesPublishedEvent struct {
	RequestID   string   `json:"request_id,omitempty"` // For distributed tracing
	EventID     string   `json:"event_id"`
	BatchID     string   `json:"batch_id,omitempty"`
	PublishedBy string   `json:"published_by,omitempty"` // Authenticated trigger caller
	PageIDs     []string `json:"page_ids"`
	FilePaths   []string `json:"file_paths"`
	PublishedAt string   `json:"published_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPagesEvent publishes a publish-batch event
	PublishPagesEvent(ctx context.Context, event *PagesPublishedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
