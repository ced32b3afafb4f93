// Package changefeed delivers service-request change events to live feed
// consumers. The store of record is Postgres; Redis pub/sub carries the
// change notifications. A subscription delivers batches: the first batch is
// the pending backlog snapshot, every later batch holds live changes.
package changefeed

import (
	"context"
	"errors"

	"github.com/acertaplus/solicitation-api/internal/domain"
)

// ChangeType classifies a change relative to the pending set.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeRemoved  ChangeType = "removed"
)

// Change is a single change notification for one service request.
type Change struct {
	Type    ChangeType
	Request domain.ServiceRequest
}

// Filter scopes a subscription to the requests an actor may see.
// Unscoped subscriptions receive every change; otherwise only changes whose
// request owner matches ScopeID are delivered.
type Filter struct {
	ScopeID  string
	Unscoped bool
}

// Matches reports whether a change is visible under the filter.
func (f Filter) Matches(change Change) bool {
	if f.Unscoped {
		return true
	}
	return change.Request.OwnerID == f.ScopeID
}

// SnapshotLoader loads the pending backlog used as a subscription's first batch.
type SnapshotLoader interface {
	PendingSnapshot(ctx context.Context, filter Filter) ([]domain.ServiceRequest, error)
}

// Publisher broadcasts a change to every live subscription.
// Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, change Change) error
}

// Subscription is a live, cancelable stream of change batches.
//
// Batches is closed after Close, after context cancellation, or after a
// fatal transport error; a fatal error is reported on Errors before the
// close. Reconnection is the caller's concern, not the subscription's.
type Subscription interface {
	Batches() <-chan []Change
	Errors() <-chan error
	Close() error
}

// Subscriber opens live subscriptions. Implementations must be safe for
// concurrent use.
type Subscriber interface {
	Subscribe(ctx context.Context, filter Filter) (Subscription, error)
}

var ErrSubscriptionClosed = errors.New("changefeed: subscription closed")
var ErrScopeRequired = errors.New("changefeed: scope id is required for scoped subscriptions")
