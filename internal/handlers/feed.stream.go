package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/acertaplus/solicitation-api/internal/domain/vo"
	"github.com/acertaplus/solicitation-api/internal/feed"
)

type FeedService interface {
	Attach(ctx context.Context, actor feed.Actor) (*feed.Session, error)
	RecordInteraction(uid string) error
	Inspect(uid, requestID string) error
	CloseModal(uid string) error
}

// FeedHandler serves the live feed: an SSE event stream plus the small
// JSON endpoints the dashboard calls to report interaction, open a feed
// entry manually, and dismiss the modal.
//
// The stream is single-consumer: one open /feed/stream connection per
// operator. A second concurrent connection for the same operator competes
// for the same session event channel and each receives only part of the
// stream, so clients must close the previous connection before opening
// another.
type FeedHandler struct {
	service FeedService
	logger  *slog.Logger
}

type inspectRequestBody struct {
	RequestID string `json:"request_id"`
}

func NewFeedHandler(service FeedService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{service: service, logger: logger}
}

func (h *FeedHandler) Register(router fiber.Router) {
	router.Get("/feed/stream", h.Stream)
	router.Post("/feed/interaction", h.Interaction)
	router.Post("/feed/inspect", h.Inspect)
	router.Post("/feed/close", h.CloseModal)
}

func (h *FeedHandler) Stream(c fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	session, err := h.service.Attach(c.Context(), actor)
	if err != nil {
		h.logger.Error("failed to attach feed session", "user_id", actor.UID, "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "feed unavailable",
		})
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	return c.SendStreamWriter(func(w *bufio.Writer) {
		// Late joiners get the current state up front; the session emits its
		// own snapshot event only once, on going live.
		state := session.State()
		if state.Live {
			if err := writeSSE(w, feed.Event{Type: feed.EventSnapshot, Requests: state.Feed}); err != nil {
				return
			}
		}

		for event := range session.Events() {
			if err := writeSSE(w, event); err != nil {
				return
			}
		}
	})
}

func (h *FeedHandler) Interaction(c fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	if err := h.service.RecordInteraction(actor.UID); err != nil {
		return h.feedActionError(c, actor.UID, "record interaction", err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *FeedHandler) Inspect(c fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	var requestBody inspectRequestBody
	if err := c.Bind().JSON(&requestBody); err != nil || requestBody.RequestID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "request_id is required",
		})
	}

	if err := h.service.Inspect(actor.UID, requestBody.RequestID); err != nil {
		return h.feedActionError(c, actor.UID, "inspect request", err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *FeedHandler) CloseModal(c fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	if err := h.service.CloseModal(actor.UID); err != nil {
		return h.feedActionError(c, actor.UID, "close modal", err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *FeedHandler) feedActionError(c fiber.Ctx, uid, action string, err error) error {
	switch {
	case errors.Is(err, feed.ErrNoSession), errors.Is(err, feed.ErrSessionClosed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "no active feed session"})
	case errors.Is(err, vo.ErrRequestNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "service request not found"})
	default:
		h.logger.Error("feed action failed", "action", action, "user_id", uid, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func writeSSE(w *bufio.Writer, event feed.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}
