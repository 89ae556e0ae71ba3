package service

import (
	"context"
)

// CatalogEvent represents a catalog change published for downstream consumers
// (campaign tooling, cache invalidation, search indexing).
type CatalogEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`
	Type      string `json:"type"` // e.g. "product.published"
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
}

// CatalogEventTypePublished is emitted when a draft product goes live.
const CatalogEventTypePublished = "product.published"

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog event for async processing
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
