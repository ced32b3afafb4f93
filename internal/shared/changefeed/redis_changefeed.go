package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/acertaplus/solicitation-api/internal/domain"
)

const defaultChannel = "solicitations:changes"

type wireRequest struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	OwnerID     string    `json:"owner_id"`
	ServiceName string    `json:"service_name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type wireChange struct {
	Type    string      `json:"type"`
	Request wireRequest `json:"request"`
}

// RedisOption customizes the Redis changefeed.
type RedisOption func(*RedisChangefeed)

// WithChannel overrides the pub/sub channel name.
func WithChannel(channel string) RedisOption {
	return func(f *RedisChangefeed) {
		if strings.TrimSpace(channel) != "" {
			f.channel = channel
		}
	}
}

// RedisChangefeed publishes and subscribes to request changes over a single
// Redis pub/sub channel. Scope filtering happens subscriber-side.
type RedisChangefeed struct {
	client   *redis.Client
	snapshot SnapshotLoader
	channel  string
}

var _ Publisher = (*RedisChangefeed)(nil)
var _ Subscriber = (*RedisChangefeed)(nil)

// NewRedisChangefeed creates a changefeed backed by the given Redis client.
// The snapshot loader supplies each subscription's initial backlog batch.
func NewRedisChangefeed(client *redis.Client, snapshot SnapshotLoader, opts ...RedisOption) (*RedisChangefeed, error) {
	if client == nil {
		return nil, errors.New("changefeed: redis client is required")
	}
	if snapshot == nil {
		return nil, errors.New("changefeed: snapshot loader is required")
	}

	feed := &RedisChangefeed{
		client:   client,
		snapshot: snapshot,
		channel:  defaultChannel,
	}
	for _, opt := range opts {
		opt(feed)
	}
	return feed, nil
}

func (f *RedisChangefeed) Publish(ctx context.Context, change Change) error {
	payload, err := json.Marshal(toWire(change))
	if err != nil {
		return fmt.Errorf("changefeed: failed to encode change: %w", err)
	}

	if err := f.client.Publish(ctx, f.channel, payload).Err(); err != nil {
		return fmt.Errorf("changefeed: failed to publish change: %w", err)
	}
	return nil
}

// Subscribe opens the pub/sub channel before loading the snapshot so that a
// change landing between the two is never lost, only possibly duplicated.
// Consumers reconcile duplicates by identifier.
func (f *RedisChangefeed) Subscribe(ctx context.Context, filter Filter) (Subscription, error) {
	if !filter.Unscoped && strings.TrimSpace(filter.ScopeID) == "" {
		return nil, ErrScopeRequired
	}

	subCtx, cancel := context.WithCancel(ctx)
	pubsub := f.client.Subscribe(subCtx, f.channel)
	if _, err := pubsub.Receive(subCtx); err != nil {
		cancel()
		pubsub.Close()
		return nil, fmt.Errorf("changefeed: failed to open subscription: %w", err)
	}

	backlog, err := f.snapshot.PendingSnapshot(subCtx, filter)
	if err != nil {
		cancel()
		pubsub.Close()
		return nil, fmt.Errorf("changefeed: failed to load pending snapshot: %w", err)
	}

	sub := &redisSubscription{
		pubsub:  pubsub,
		cancel:  cancel,
		batches: make(chan []Change, 8),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}

	go sub.run(subCtx, filter, backlog)
	return sub, nil
}

type redisSubscription struct {
	pubsub  *redis.PubSub
	cancel  context.CancelFunc
	batches chan []Change
	errs    chan error
	done    chan struct{}

	closeOnce sync.Once
}

func (s *redisSubscription) Batches() <-chan []Change { return s.batches }
func (s *redisSubscription) Errors() <-chan error     { return s.errs }

func (s *redisSubscription) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		s.pubsub.Close()
	})
	<-s.done
	return nil
}

func (s *redisSubscription) run(ctx context.Context, filter Filter, backlog []domain.ServiceRequest) {
	defer close(s.done)
	defer close(s.batches)

	initial := make([]Change, 0, len(backlog))
	for _, request := range backlog {
		initial = append(initial, Change{Type: ChangeAdded, Request: request})
	}

	// The snapshot is always delivered, even when empty: the first batch is
	// what moves consumers out of their initial-load phase.
	select {
	case s.batches <- initial:
	case <-ctx.Done():
		return
	}

	messages := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				select {
				case s.errs <- ErrSubscriptionClosed:
				default:
				}
				return
			}

			batch := s.collect(msg, messages, filter)
			if len(batch) == 0 {
				continue
			}

			select {
			case s.batches <- batch:
			case <-ctx.Done():
				return
			}
		}
	}
}

// collect decodes the received message and drains whatever else is already
// buffered, so bursts arrive as one batch.
func (s *redisSubscription) collect(first *redis.Message, messages <-chan *redis.Message, filter Filter) []Change {
	batch := make([]Change, 0, 4)
	if change, ok := decode(first); ok && filter.Matches(change) {
		batch = append(batch, change)
	}

	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return batch
			}
			if change, ok := decode(msg); ok && filter.Matches(change) {
				batch = append(batch, change)
			}
		default:
			return batch
		}
	}
}

func decode(msg *redis.Message) (Change, bool) {
	var wire wireChange
	if err := json.Unmarshal([]byte(msg.Payload), &wire); err != nil {
		return Change{}, false
	}
	return fromWire(wire), true
}

func toWire(change Change) wireChange {
	return wireChange{
		Type: string(change.Type),
		Request: wireRequest{
			ID:          change.Request.ID,
			ClientID:    change.Request.ClientID,
			OwnerID:     change.Request.OwnerID,
			ServiceName: change.Request.ServiceName,
			Description: change.Request.Description,
			Price:       change.Request.Price,
			Status:      string(change.Request.Status),
			CreatedAt:   change.Request.CreatedAt,
		},
	}
}

func fromWire(wire wireChange) Change {
	return Change{
		Type: ChangeType(wire.Type),
		Request: domain.ServiceRequest{
			ID:          wire.Request.ID,
			ClientID:    wire.Request.ClientID,
			OwnerID:     wire.Request.OwnerID,
			ServiceName: wire.Request.ServiceName,
			Description: wire.Request.Description,
			Price:       wire.Request.Price,
			Status:      domain.RequestStatus(wire.Request.Status),
			CreatedAt:   wire.Request.CreatedAt,
		},
	}
}
