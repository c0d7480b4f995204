package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/goroutine"
	"complaintbox/internal/shared/logger"
)

const complaintEventChannel = "complaintbox:complaints:events"

// RedisChangeBus implements both complaint.ChangePublisher and
// complaint.ChangeFeed over Redis Pub/Sub so multiple server instances
// share one change stream. Delivery is at-most-once: subscribers that
// reconnect simply miss events and recover via their next full load.
type RedisChangeBus struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisChangeBus(client *redis.Client, log logger.Interface) *RedisChangeBus {
	return &RedisChangeBus{
		client: client,
		logger: log,
	}
}

// Publish pushes a change event onto the shared channel.
func (b *RedisChangeBus) Publish(ctx context.Context, event complaint.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if err := b.client.Publish(ctx, complaintEventChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish change event",
			"event_type", event.Type,
			"error", err,
		)
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	b.logger.Debugw("change event published",
		"event_type", event.Type,
		"table", event.Table,
	)
	return nil
}

// Subscribe starts a background listener that invokes handler for each
// decoded change event. The returned subscription detaches the listener;
// closing it more than once is harmless.
func (b *RedisChangeBus) Subscribe(ctx context.Context, handler func(complaint.ChangeEvent)) (complaint.Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)

	goroutine.SafeGo(b.logger, "complaint-change-subscriber", func() {
		b.subscribeWithReconnect(subCtx, func(payload string) {
			var event complaint.ChangeEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal change event",
					"payload", payload,
					"error", err,
				)
				return
			}
			handler(event)
		})
	})

	return &redisSubscription{cancel: cancel}, nil
}

type redisSubscription struct {
	cancel context.CancelFunc
	once   sync.Once
}

func (s *redisSubscription) Close() {
	s.once.Do(s.cancel)
}

// subscribeWithReconnect wraps subscribe with automatic reconnection and
// exponential backoff.
func (b *RedisChangeBus) subscribeWithReconnect(ctx context.Context, handler func(payload string)) {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx, handler)
		if ctx.Err() != nil {
			return
		}

		b.logger.Warnw("change event subscription disconnected, reconnecting",
			"channel", complaintEventChannel,
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisChangeBus) subscribe(ctx context.Context, handler func(payload string)) error {
	pubsub := b.client.Subscribe(ctx, complaintEventChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", complaintEventChannel, err)
	}

	b.logger.Infow("subscribed to change event channel",
		"channel", complaintEventChannel,
	)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("change event subscriber stopped",
				"reason", ctx.Err(),
			)
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("change event channel closed")
				return nil
			}
			handler(msg.Payload)
		}
	}
}
