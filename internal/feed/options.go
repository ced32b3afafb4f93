package feed

import "strings"

// Order controls where live arrivals are inserted in the feed.
type Order string

const (
	// OrderNewestFirst prepends arrivals, notification-inbox style.
	OrderNewestFirst Order = "newest_first"

	// OrderArrival appends arrivals, preserving server delivery order.
	OrderArrival Order = "arrival"
)

// ParseOrder maps a config value to an Order, defaulting to newest-first.
func ParseOrder(value string) Order {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case string(OrderArrival):
		return OrderArrival
	default:
		return OrderNewestFirst
	}
}

// Options configures feed sessions.
type Options struct {
	// Order is the feed insertion policy for live arrivals.
	Order Order

	// ClearSeenOnConfirm removes a confirmed identifier from the session
	// dedup set, letting it re-trigger a presentation if it ever reappears
	// as pending. Default false: an identifier interrupts the operator at
	// most once per session.
	ClearSeenOnConfirm bool

	// EventBuffer is the outbound event channel capacity. When a consumer
	// lags past it, events are dropped oldest-first; the feed list itself is
	// never lost since every feed_updated carries the full reconciled state.
	EventBuffer int
}

const defaultEventBuffer = 32

func (o Options) withDefaults() Options {
	if o.Order != OrderArrival {
		o.Order = OrderNewestFirst
	}
	if o.EventBuffer <= 0 {
		o.EventBuffer = defaultEventBuffer
	}
	return o
}
