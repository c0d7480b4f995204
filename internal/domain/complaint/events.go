package complaint

import "context"

// EventType classifies a change notification from the backing store.
type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// ChangeEvent is a coarse-grained change notification. It carries no row
// payload: consumers must not assume the event identifies the changed
// record, only that something changed in the named table.
type ChangeEvent struct {
	Type      EventType `json:"type"`
	Table     string    `json:"table"`
	Timestamp int64     `json:"timestamp"`
}

// Subscription is a cancellable handle on a change-event stream.
type Subscription interface {
	// Close cancels the subscription. Idempotent; safe to call more
	// than once.
	Close()
}

// ChangeFeed is the push channel of change notifications for the
// complaint table. Delivery is at-most-once best-effort: a missed event
// is only recovered by the next successful event or a fresh full load.
type ChangeFeed interface {
	Subscribe(ctx context.Context, handler func(ChangeEvent)) (Subscription, error)
}

// ChangePublisher is the write side of the feed, invoked by the record
// store after each successful mutation.
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}
