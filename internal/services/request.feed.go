package services

import (
	"context"

	"github.com/acertaplus/solicitation-api/internal/feed"
)

// FeedManager is the session registry the feed endpoints drive.
type FeedManager interface {
	Attach(ctx context.Context, actor feed.Actor) (*feed.Session, error)
	Get(uid string) *feed.Session
}

type RequestFeedService struct {
	manager FeedManager
}

func NewRequestFeedService(manager FeedManager) *RequestFeedService {
	return &RequestFeedService{manager: manager}
}

// Attach returns the actor's live session, subscribing if none exists yet.
func (s *RequestFeedService) Attach(ctx context.Context, actor feed.Actor) (*feed.Session, error) {
	return s.manager.Attach(ctx, actor)
}

// RecordInteraction unlocks chime playback for the actor's session.
func (s *RequestFeedService) RecordInteraction(uid string) error {
	session := s.manager.Get(uid)
	if session == nil {
		return feed.ErrNoSession
	}
	return session.RecordInteraction()
}

// Inspect opens the modal on a specific feed entry.
func (s *RequestFeedService) Inspect(uid, requestID string) error {
	session := s.manager.Get(uid)
	if session == nil {
		return feed.ErrNoSession
	}
	return session.Inspect(requestID)
}

// CloseModal dismisses the modal and re-enables auto-presentation.
func (s *RequestFeedService) CloseModal(uid string) error {
	session := s.manager.Get(uid)
	if session == nil {
		return feed.ErrNoSession
	}
	return session.CloseModal()
}
