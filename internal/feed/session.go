package feed

import (
	"errors"
	"sync"

	"github.com/acertaplus/solicitation-api/internal/domain"
	"github.com/acertaplus/solicitation-api/internal/domain/vo"
	"github.com/acertaplus/solicitation-api/internal/shared/changefeed"
)

var ErrSessionClosed = errors.New("feed: session closed")
var ErrConfirmInFlight = errors.New("feed: confirmation already in flight")
var ErrNoSession = errors.New("feed: no active session")

// Actor is the resolved identity a session is scoped to. Sessions are never
// created for an unresolved actor.
type Actor struct {
	UID     string
	Role    string
	ScopeID string
}

// Filter derives the change visibility filter for the actor.
func (a Actor) Filter() changefeed.Filter {
	return changefeed.Filter{
		ScopeID:  a.ScopeID,
		Unscoped: domain.UnscopedRole(a.Role),
	}
}

// phase is the subscription lifecycle. The transition initializing -> live
// happens exactly once, on the first delivered batch; only changes observed
// in the live phase count as new arrivals.
type phase int

const (
	phaseInitializing phase = iota
	phaseLive
)

// State is a point-in-time copy of a session's presentation state.
type State struct {
	Feed        []domain.ServiceRequest
	Highlighted *domain.ServiceRequest
	ModalOpen   bool
	AutoPresent bool
	Live        bool
}

// Session owns the presentation state of one operator's live request feed:
// the reconciled pending list, the highlighted request and modal flag, the
// session dedup set, and the in-flight confirmation guard. All state moves
// through guarded transitions under one mutex; store I/O never happens
// inside the lock.
type Session struct {
	actor Actor
	opts  Options

	mu          sync.Mutex
	ph          phase
	feed        []domain.ServiceRequest
	highlighted *domain.ServiceRequest
	modalOpen   bool
	autoPresent bool
	interacted  bool
	seen        map[string]struct{}
	inflight    map[string]struct{}
	closed      bool

	events  chan Event
	cleanup func()
}

func newSession(actor Actor, opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		actor:       actor,
		opts:        opts,
		autoPresent: true,
		seen:        make(map[string]struct{}),
		inflight:    make(map[string]struct{}),
		events:      make(chan Event, opts.EventBuffer),
	}
}

// Actor returns the identity this session is scoped to.
func (s *Session) Actor() Actor { return s.actor }

// Events is the session's outbound UI event stream. It is closed when the
// session closes. The channel is single-consumer: concurrent receivers split
// the stream between them.
func (s *Session) Events() <-chan Event { return s.events }

// State returns a copy of the current presentation state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		Feed:        append([]domain.ServiceRequest(nil), s.feed...),
		ModalOpen:   s.modalOpen,
		AutoPresent: s.autoPresent,
		Live:        s.ph == phaseLive,
	}
	if s.highlighted != nil {
		highlighted := *s.highlighted
		state.Highlighted = &highlighted
	}
	return state
}

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// RecordInteraction marks that the operator has interacted with the page,
// unlocking chime events. Browsers block unprompted audio, so the client
// reports the first interaction and chimes are suppressed until then.
func (s *Session) RecordInteraction() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.interacted = true
	return nil
}

// Inspect opens the modal on a specific feed entry at the operator's request
// and disables auto-presentation so a concurrent arrival cannot steal the
// modal mid-read. CloseModal restores it.
func (s *Session) Inspect(requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	for _, request := range s.feed {
		if request.ID == requestID {
			highlighted := request
			s.highlighted = &highlighted
			s.modalOpen = true
			s.autoPresent = false
			return nil
		}
	}
	return vo.ErrRequestNotFound
}

// CloseModal clears the highlighted request and re-enables auto-presentation.
func (s *Session) CloseModal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	s.highlighted = nil
	s.modalOpen = false
	s.autoPresent = true
	return nil
}

// BeginConfirm resolves and reserves an identifier for confirmation. An empty
// requestID means "the currently highlighted request". A duplicate confirm
// for an identifier already in flight returns ErrConfirmInFlight so the
// caller performs no second store write.
func (s *Session) BeginConfirm(requestID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrSessionClosed
	}

	if requestID == "" {
		if s.highlighted == nil {
			return "", vo.ErrNoRequestSelected
		}
		requestID = s.highlighted.ID
	}

	if _, inflight := s.inflight[requestID]; inflight {
		return "", ErrConfirmInFlight
	}
	s.inflight[requestID] = struct{}{}
	return requestID, nil
}

// CompleteConfirm settles a reservation made by BeginConfirm once the store
// write has resolved. On success the entry is removed locally without waiting
// for the server push; on failure the feed and modal are left untouched so
// the operator can retry. A session closed while the write was in flight
// keeps its state frozen.
func (s *Session) CompleteConfirm(requestID string, confirmErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, requestID)
	if s.closed {
		return
	}

	if confirmErr != nil {
		s.emitLocked(Event{Type: EventFeedError, Message: "confirmation failed"})
		return
	}

	s.removeLocked(requestID)
	if s.highlighted != nil && s.highlighted.ID == requestID {
		s.highlighted = nil
		s.modalOpen = false
		s.autoPresent = true
	}
	if s.opts.ClearSeenOnConfirm {
		delete(s.seen, requestID)
	}
	s.emitLocked(Event{Type: EventFeedUpdated, Requests: s.feedCopyLocked()})
}

// apply reconciles one delivered change batch against the local feed and
// decides the presentation outcome. The first batch is the backlog: it marks
// every identifier seen, flips the session live, and triggers nothing.
func (s *Session) apply(batch []changefeed.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	var fresh []domain.ServiceRequest
	for _, change := range batch {
		switch change.Type {
		case changefeed.ChangeAdded, changefeed.ChangeModified:
			if !change.Request.IsPending() {
				s.removeLocked(change.Request.ID)
				continue
			}
			if s.updateLocked(change.Request) {
				continue
			}
			s.insertLocked(change.Request)
			if _, dup := s.seen[change.Request.ID]; dup {
				continue
			}
			s.seen[change.Request.ID] = struct{}{}
			if s.ph == phaseLive {
				fresh = append(fresh, change.Request)
			}
		case changefeed.ChangeRemoved:
			s.removeLocked(change.Request.ID)
		}
	}

	if s.ph == phaseInitializing {
		s.ph = phaseLive
		s.emitLocked(Event{Type: EventSnapshot, Requests: s.feedCopyLocked()})
		return
	}

	if len(batch) > 0 {
		s.emitLocked(Event{Type: EventFeedUpdated, Requests: s.feedCopyLocked()})
	}

	if len(fresh) == 0 || !s.autoPresent || s.modalOpen {
		return
	}

	highlighted := fresh[0]
	s.highlighted = &highlighted
	s.modalOpen = true
	s.emitLocked(Event{Type: EventRequestPresented, Request: &highlighted})
	if s.interacted {
		s.emitLocked(Event{Type: EventChime})
	}
}

// reportError surfaces a subscription failure as a distinguishable event
// instead of a silently stale feed.
func (s *Session) reportError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.emitLocked(Event{Type: EventFeedError, Message: err.Error()})
}

// Close tears the session down: no state mutates and no event is delivered
// afterwards. Idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	cleanup := s.cleanup
	s.cleanup = nil
	close(s.events)
	s.mu.Unlock()

	if cleanup != nil {
		cleanup()
	}
	return nil
}

func (s *Session) updateLocked(request domain.ServiceRequest) bool {
	for i := range s.feed {
		if s.feed[i].ID == request.ID {
			s.feed[i] = request
			return true
		}
	}
	return false
}

func (s *Session) insertLocked(request domain.ServiceRequest) {
	if s.opts.Order == OrderNewestFirst && s.ph == phaseLive {
		s.feed = append([]domain.ServiceRequest{request}, s.feed...)
		return
	}
	s.feed = append(s.feed, request)
}

// removeLocked is a no-op for absent identifiers: a local confirm removal
// followed by the server push removal of the same request must not error.
func (s *Session) removeLocked(requestID string) {
	for i := range s.feed {
		if s.feed[i].ID == requestID {
			s.feed = append(s.feed[:i], s.feed[i+1:]...)
			return
		}
	}
}

func (s *Session) feedCopyLocked() []domain.ServiceRequest {
	return append([]domain.ServiceRequest(nil), s.feed...)
}

// emitLocked delivers without blocking the state machine: if the consumer
// lags past the buffer, the oldest queued event is dropped. feed_updated
// events carry the full reconciled list, so a drop never loses feed state.
func (s *Session) emitLocked(event Event) {
	for {
		select {
		case s.events <- event:
			return
		default:
		}
		select {
		case <-s.events:
		default:
		}
	}
}
