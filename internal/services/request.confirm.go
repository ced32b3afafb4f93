package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/acertaplus/solicitation-api/internal/domain"
	"github.com/acertaplus/solicitation-api/internal/domain/vo"
	"github.com/acertaplus/solicitation-api/internal/feed"
	"github.com/acertaplus/solicitation-api/internal/shared/changefeed"
)

type RequestConfirmRepository interface {
	ConfirmPendingRequest(ctx context.Context, requestID string) (domain.ServiceRequest, time.Time, error)
}

// FeedSessions resolves the actor's live feed session, if any. Confirmation
// works without one (plain API call), but when a session exists its in-flight
// guard and local reconciliation must be driven through it.
type FeedSessions interface {
	Get(uid string) *feed.Session
}

type RequestConfirmService struct {
	repository RequestConfirmRepository
	sessions   FeedSessions
	publisher  changefeed.Publisher
	logger     *slog.Logger
}

func NewRequestConfirmService(
	repository RequestConfirmRepository,
	sessions FeedSessions,
	publisher changefeed.Publisher,
	logger *slog.Logger,
) *RequestConfirmService {
	return &RequestConfirmService{
		repository: repository,
		sessions:   sessions,
		publisher:  publisher,
		logger:     logger,
	}
}

// Confirm transitions one request from pending to confirmed. The session's
// in-flight set guarantees a duplicate confirm for the same identifier never
// reaches the store; local feed state settles immediately on write success
// rather than waiting for the server push.
func (s *RequestConfirmService) Confirm(ctx context.Context, actor feed.Actor, requestID string) (vo.RequestConfirmation, error) {
	requestID = strings.TrimSpace(requestID)

	session := s.sessions.Get(actor.UID)
	if session != nil {
		resolved, err := session.BeginConfirm(requestID)
		if err != nil {
			return vo.RequestConfirmation{}, err
		}
		requestID = resolved
	} else if requestID == "" {
		return vo.RequestConfirmation{}, vo.ErrNoRequestSelected
	}

	confirmed, confirmedAt, err := s.repository.ConfirmPendingRequest(ctx, requestID)
	if session != nil {
		session.CompleteConfirm(requestID, err)
	}
	if err != nil {
		return vo.RequestConfirmation{}, err
	}

	if pubErr := s.publisher.Publish(ctx, changefeed.Change{Type: changefeed.ChangeModified, Request: confirmed}); pubErr != nil {
		s.logger.Warn("failed to publish request confirmed event", "request_id", confirmed.ID, "error", pubErr)
	}

	return vo.RequestConfirmation{
		RequestID:   confirmed.ID,
		OwnerID:     confirmed.OwnerID,
		Status:      string(confirmed.Status),
		ConfirmedAt: confirmedAt,
	}, nil
}
