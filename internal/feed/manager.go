package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/acertaplus/solicitation-api/internal/shared/changefeed"
)

// Manager owns the live feed sessions. It guarantees at most one session per
// actor: re-attaching with the same scope returns the existing session, and a
// scope change swaps the replacement in under the lock before the displaced
// session is torn down, so two live sessions never coexist for one actor.
type Manager struct {
	subscriber changefeed.Subscriber
	opts       Options
	logger     *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
}

func NewManager(subscriber changefeed.Subscriber, opts Options, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		subscriber: subscriber,
		opts:       opts.withDefaults(),
		logger:     logger,
		sessions:   make(map[string]*Session),
	}
}

// Attach returns the actor's live session, creating one and subscribing if
// needed. The actor must be resolved; the JWT middleware guarantees that
// before any feed route runs.
func (m *Manager) Attach(ctx context.Context, actor Actor) (*Session, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrSessionClosed
	}

	existing := m.sessions[actor.UID]
	if existing != nil && existing.Actor() == actor && !existing.Closed() {
		m.mu.Unlock()
		return existing, nil
	}

	// The replacement is registered before the lock is released: a concurrent
	// Attach for the same actor finds it in the map instead of registering a
	// second live session. The displaced session is closed outside the lock.
	session := newSession(actor, m.opts)
	m.sessions[actor.UID] = session
	m.mu.Unlock()

	if existing != nil {
		existing.Close()
	}

	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	subscription, err := m.subscriber.Subscribe(subCtx, actor.Filter())
	if err != nil {
		cancel()
		m.detach(actor.UID, session)
		session.Close()
		return nil, fmt.Errorf("feed: failed to subscribe for actor %s: %w", actor.UID, err)
	}

	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		cancel()
		subscription.Close()
		return nil, ErrSessionClosed
	}
	session.cleanup = func() {
		cancel()
		subscription.Close()
	}
	session.mu.Unlock()

	go m.pump(session, subscription)
	return session, nil
}

// Get returns the actor's live session, or nil.
func (m *Manager) Get(uid string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[uid]
	if !ok || session.Closed() {
		return nil
	}
	return session
}

// Detach closes and forgets the actor's session.
func (m *Manager) Detach(uid string) {
	m.mu.Lock()
	session, ok := m.sessions[uid]
	if ok {
		delete(m.sessions, uid)
	}
	m.mu.Unlock()

	if ok {
		session.Close()
	}
}

// Close tears down every session. Used from the fx shutdown hook.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	sessions := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
	return nil
}

func (m *Manager) detach(uid string, session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.sessions[uid]; ok && current == session {
		delete(m.sessions, uid)
	}
}

// pump moves subscription batches into the session until the subscription
// closes. Fatal subscription errors surface on the session event stream; a
// batch stream that dies under a still-open session is reported too, so a
// dead subscription is never mistaken for a quiet one.
func (m *Manager) pump(session *Session, subscription changefeed.Subscription) {
	batches := subscription.Batches()
	errs := subscription.Errors()
	for {
		select {
		case batch, ok := <-batches:
			if !ok {
				reported := false
				if errs != nil {
					select {
					case err, errOk := <-errs:
						if errOk {
							session.reportError(err)
							reported = true
						}
					default:
					}
				}
				if !reported && !session.Closed() {
					m.logger.Warn("feed subscription ended",
						"actor_uid", session.Actor().UID)
					session.reportError(changefeed.ErrSubscriptionClosed)
				}
				return
			}
			session.apply(batch)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			m.logger.Warn("feed subscription degraded",
				"actor_uid", session.Actor().UID, "error", err)
			session.reportError(err)
		}
	}
}
