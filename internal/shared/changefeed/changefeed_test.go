package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acertaplus/solicitation-api/internal/domain"
)

type stubSnapshotLoader struct {
	requests []domain.ServiceRequest
	err      error
}

func (s *stubSnapshotLoader) PendingSnapshot(_ context.Context, _ Filter) ([]domain.ServiceRequest, error) {
	return s.requests, s.err
}

func TestFilterMatches_TableDriven(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		change  Change
		matches bool
	}{
		{
			name:    "unscoped matches any owner",
			filter:  Filter{Unscoped: true},
			change:  Change{Type: ChangeAdded, Request: domain.ServiceRequest{OwnerID: "clinic-7"}},
			matches: true,
		},
		{
			name:    "scoped matches same owner",
			filter:  Filter{ScopeID: "clinic-7"},
			change:  Change{Type: ChangeModified, Request: domain.ServiceRequest{OwnerID: "clinic-7"}},
			matches: true,
		},
		{
			name:    "scoped rejects other owner",
			filter:  Filter{ScopeID: "clinic-7"},
			change:  Change{Type: ChangeAdded, Request: domain.ServiceRequest{OwnerID: "clinic-9"}},
			matches: false,
		},
		{
			name:    "scoped rejects empty owner",
			filter:  Filter{ScopeID: "clinic-7"},
			change:  Change{Type: ChangeRemoved, Request: domain.ServiceRequest{}},
			matches: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.matches, tc.filter.Matches(tc.change))
		})
	}
}

func TestDecode_TableDriven(t *testing.T) {
	createdAt := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	valid, err := json.Marshal(toWire(Change{
		Type: ChangeAdded,
		Request: domain.ServiceRequest{
			ID:          "req-1",
			ClientID:    "client-1",
			OwnerID:     "clinic-7",
			ServiceName: "dental-checkup",
			Description: "annual checkup",
			Price:       "150.00",
			Status:      domain.StatusPending,
			CreatedAt:   createdAt,
		},
	}))
	require.NoError(t, err)

	tests := []struct {
		name      string
		payload   string
		ok        bool
		assertion func(Change)
	}{
		{
			name:    "valid payload round trips",
			payload: string(valid),
			ok:      true,
			assertion: func(change Change) {
				assert.Equal(t, ChangeAdded, change.Type)
				assert.Equal(t, "req-1", change.Request.ID)
				assert.Equal(t, "clinic-7", change.Request.OwnerID)
				assert.Equal(t, domain.StatusPending, change.Request.Status)
				assert.True(t, createdAt.Equal(change.Request.CreatedAt))
			},
		},
		{
			name:    "malformed payload is dropped",
			payload: `{"type":`,
			ok:      false,
		},
		{
			name:    "non json payload is dropped",
			payload: "not-json",
			ok:      false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			change, ok := decode(&redis.Message{Payload: tc.payload})
			assert.Equal(t, tc.ok, ok)
			if tc.assertion != nil {
				tc.assertion(change)
			}
		})
	}
}

func TestNewRedisChangefeed_Validation(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()

	tests := []struct {
		name     string
		client   *redis.Client
		snapshot SnapshotLoader
		opts     []RedisOption
		wantErr  bool
		channel  string
	}{
		{
			name:    "nil client",
			client:  nil,
			wantErr: true,
		},
		{
			name:    "nil snapshot loader",
			client:  client,
			wantErr: true,
		},
		{
			name:     "defaults channel",
			client:   client,
			snapshot: &stubSnapshotLoader{},
			channel:  defaultChannel,
		},
		{
			name:     "channel override",
			client:   client,
			snapshot: &stubSnapshotLoader{},
			opts:     []RedisOption{WithChannel("custom:changes")},
			channel:  "custom:changes",
		},
		{
			name:     "blank channel override is ignored",
			client:   client,
			snapshot: &stubSnapshotLoader{},
			opts:     []RedisOption{WithChannel("   ")},
			channel:  defaultChannel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			feed, err := NewRedisChangefeed(tc.client, tc.snapshot, tc.opts...)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, feed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.channel, feed.channel)
		})
	}
}

func TestSubscribe_RequiresScope(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()

	feed, err := NewRedisChangefeed(client, &stubSnapshotLoader{})
	require.NoError(t, err)

	sub, err := feed.Subscribe(context.Background(), Filter{ScopeID: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScopeRequired))
	assert.Nil(t, sub)
}
