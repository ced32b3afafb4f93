package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/acertaplus/solicitation-api/internal/domain"
	"github.com/acertaplus/solicitation-api/internal/shared/changefeed"
)

type recordingSubscription struct {
	batches chan []changefeed.Change
	errs    chan error
	once    sync.Once
	closed  bool

	// closeGate, when set, parks Close until the gate channel is closed.
	closeGate chan struct{}
}

func newRecordingSubscription() *recordingSubscription {
	return &recordingSubscription{
		batches: make(chan []changefeed.Change, 4),
		errs:    make(chan error, 1),
	}
}

func (s *recordingSubscription) Batches() <-chan []changefeed.Change { return s.batches }
func (s *recordingSubscription) Errors() <-chan error                { return s.errs }
func (s *recordingSubscription) Close() error {
	if s.closeGate != nil {
		<-s.closeGate
	}
	s.once.Do(func() {
		s.closed = true
		close(s.batches)
		close(s.errs)
	})
	return nil
}

// recordingSubscriber hands out one fresh subscription per Subscribe call and
// remembers them, so tests can drive and inspect each.
type recordingSubscriber struct {
	mu            sync.Mutex
	err           error
	subscriptions []*recordingSubscription
	filters       []changefeed.Filter
}

func (s *recordingSubscriber) Subscribe(_ context.Context, filter changefeed.Filter) (changefeed.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	subscription := newRecordingSubscription()
	s.subscriptions = append(s.subscriptions, subscription)
	s.filters = append(s.filters, filter)
	return subscription, nil
}

func (s *recordingSubscriber) last() *recordingSubscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscriptions[len(s.subscriptions)-1]
}

func (s *recordingSubscriber) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscriptions)
}

type ManagerSuite struct {
	suite.Suite

	subscriber *recordingSubscriber
	manager    *Manager
}

func (s *ManagerSuite) SetupTest() {
	s.subscriber = &recordingSubscriber{}
	s.manager = NewManager(s.subscriber, Options{}, testLogger())
}

func (s *ManagerSuite) TearDownTest() {
	s.manager.Close()
}

func (s *ManagerSuite) waitEvent(session *Session) Event {
	s.T().Helper()
	select {
	case event := <-session.Events():
		return event
	case <-time.After(time.Second):
		s.T().Fatal("timed out waiting for feed event")
		return Event{}
	}
}

func (s *ManagerSuite) TestAttach_ReusesLiveSession() {
	actor := Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-7"}

	session, err := s.manager.Attach(context.Background(), actor)
	require.NoError(s.T(), err)

	again, err := s.manager.Attach(context.Background(), actor)
	require.NoError(s.T(), err)
	assert.Same(s.T(), session, again)
	assert.Equal(s.T(), 1, s.subscriber.count())
}

func (s *ManagerSuite) TestAttach_ScopeChangeReplacesSession() {
	first, err := s.manager.Attach(context.Background(), Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-7"})
	require.NoError(s.T(), err)
	firstSubscription := s.subscriber.last()

	second, err := s.manager.Attach(context.Background(), Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-8"})
	require.NoError(s.T(), err)

	assert.NotSame(s.T(), first, second)
	assert.True(s.T(), first.Closed())
	assert.True(s.T(), firstSubscription.closed)
	assert.Equal(s.T(), 2, s.subscriber.count())
	assert.Equal(s.T(), "clinic-8", s.subscriber.filters[1].ScopeID)
}

func (s *ManagerSuite) TestAttach_ConcurrentScopeChangeKeepsOneSession() {
	first, err := s.manager.Attach(context.Background(), Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-7"})
	require.NoError(s.T(), err)

	gate := make(chan struct{})
	s.subscriber.last().closeGate = gate

	type attachResult struct {
		session *Session
		err     error
	}
	results := make(chan attachResult, 1)
	go func() {
		session, err := s.manager.Attach(context.Background(), Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-8"})
		results <- attachResult{session: session, err: err}
	}()

	// The replacing attach parks inside the old session's teardown; its
	// replacement must already be registered so concurrent attaches for the
	// same actor land on it instead of creating a second live session.
	var replacement *Session
	require.Eventually(s.T(), func() bool {
		replacement = s.manager.Get("op-1")
		return replacement != nil && replacement != first
	}, time.Second, time.Millisecond)

	concurrent, err := s.manager.Attach(context.Background(), Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-8"})
	require.NoError(s.T(), err)
	assert.Same(s.T(), replacement, concurrent)

	close(gate)
	result := <-results
	require.NoError(s.T(), result.err)
	assert.Same(s.T(), replacement, result.session)

	assert.True(s.T(), first.Closed())
	assert.False(s.T(), replacement.Closed())
	assert.Same(s.T(), replacement, s.manager.Get("op-1"))
	assert.Equal(s.T(), 2, s.subscriber.count())
	assert.True(s.T(), s.subscriber.subscriptions[0].closed)
}

func (s *ManagerSuite) TestAttach_SubscribesWithActorFilter() {
	_, err := s.manager.Attach(context.Background(), Actor{UID: "op-9", Role: domain.RoleAdmin})
	require.NoError(s.T(), err)

	require.Len(s.T(), s.subscriber.filters, 1)
	assert.True(s.T(), s.subscriber.filters[0].Unscoped)
}

func (s *ManagerSuite) TestAttach_SubscribeFailureLeavesNoSession() {
	s.subscriber.err = errors.New("broker down")

	session, err := s.manager.Attach(context.Background(), Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-7"})
	require.Error(s.T(), err)
	assert.Nil(s.T(), session)
	assert.Nil(s.T(), s.manager.Get("op-1"))
}

func (s *ManagerSuite) TestGet_UnknownActor() {
	assert.Nil(s.T(), s.manager.Get("ghost"))
}

func (s *ManagerSuite) TestDetach_ClosesSessionAndSubscription() {
	actor := Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-7"}
	session, err := s.manager.Attach(context.Background(), actor)
	require.NoError(s.T(), err)
	subscription := s.subscriber.last()

	s.manager.Detach("op-1")

	assert.True(s.T(), session.Closed())
	assert.True(s.T(), subscription.closed)
	assert.Nil(s.T(), s.manager.Get("op-1"))
}

func (s *ManagerSuite) TestClose_TearsDownEverySessionAndRejectsAttach() {
	first, err := s.manager.Attach(context.Background(), Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-7"})
	require.NoError(s.T(), err)
	second, err := s.manager.Attach(context.Background(), Actor{UID: "op-2", Role: domain.RoleProvider, ScopeID: "clinic-8"})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.manager.Close())

	assert.True(s.T(), first.Closed())
	assert.True(s.T(), second.Closed())
	assert.Nil(s.T(), s.manager.Get("op-1"))

	_, err = s.manager.Attach(context.Background(), Actor{UID: "op-3", Role: domain.RoleProvider, ScopeID: "clinic-9"})
	assert.ErrorIs(s.T(), err, ErrSessionClosed)
}

func (s *ManagerSuite) TestPump_DeliversBatchesToSession() {
	actor := Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-7"}
	session, err := s.manager.Attach(context.Background(), actor)
	require.NoError(s.T(), err)
	subscription := s.subscriber.last()

	subscription.batches <- []changefeed.Change{added(pendingRequest("req-1"))}

	event := s.waitEvent(session)
	require.Equal(s.T(), EventSnapshot, event.Type)
	require.Len(s.T(), event.Requests, 1)
	assert.Equal(s.T(), "req-1", event.Requests[0].ID)
}

func (s *ManagerSuite) TestPump_SurfacesSubscriptionErrors() {
	actor := Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-7"}
	session, err := s.manager.Attach(context.Background(), actor)
	require.NoError(s.T(), err)
	subscription := s.subscriber.last()

	subscription.batches <- []changefeed.Change{}
	require.Equal(s.T(), EventSnapshot, s.waitEvent(session).Type)

	subscription.errs <- errors.New("connection reset")

	event := s.waitEvent(session)
	assert.Equal(s.T(), EventFeedError, event.Type)
	assert.Equal(s.T(), "connection reset", event.Message)

	// The stream keeps flowing after a reported error.
	subscription.batches <- []changefeed.Change{added(pendingRequest("req-1"))}
	assert.Equal(s.T(), EventFeedUpdated, s.waitEvent(session).Type)
}

func (s *ManagerSuite) TestPump_ReportsDeadSubscription() {
	actor := Actor{UID: "op-1", Role: domain.RoleProvider, ScopeID: "clinic-7"}
	session, err := s.manager.Attach(context.Background(), actor)
	require.NoError(s.T(), err)
	subscription := s.subscriber.last()

	subscription.batches <- []changefeed.Change{}
	require.Equal(s.T(), EventSnapshot, s.waitEvent(session).Type)

	// The transport dies underneath a session that is still open: the
	// channels close without the session being torn down.
	subscription.Close()

	event := s.waitEvent(session)
	assert.Equal(s.T(), EventFeedError, event.Type)
	assert.Equal(s.T(), changefeed.ErrSubscriptionClosed.Error(), event.Message)
	assert.False(s.T(), session.Closed())
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}
