package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/acertaplus/solicitation-api/internal/domain/vo"
	"github.com/acertaplus/solicitation-api/internal/feed"
)

type RequestConfirmService interface {
	Confirm(ctx context.Context, actor feed.Actor, requestID string) (vo.RequestConfirmation, error)
}

type RequestConfirmHandler struct {
	service RequestConfirmService
	logger  *slog.Logger
}

func NewRequestConfirmHandler(service RequestConfirmService, logger *slog.Logger) *RequestConfirmHandler {
	return &RequestConfirmHandler{service: service, logger: logger}
}

func (h *RequestConfirmHandler) Register(router fiber.Router) {
	router.Post("/requests/:id/confirm", h.Handle)
}

func (h *RequestConfirmHandler) Handle(c fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	confirmation, err := h.service.Confirm(c.Context(), actor, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrConfirmInFlight):
			// Duplicate submit while the first write is still resolving:
			// acknowledged, not re-executed.
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "in_flight"})
		case errors.Is(err, vo.ErrNoRequestSelected):
			// Unreachable through normal UI flow.
			h.logger.Warn("confirm with no selected request", "user_id", actor.UID)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no request selected"})
		case errors.Is(err, vo.ErrRequestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "service request not found"})
		case errors.Is(err, vo.ErrRequestNotPending):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "service request is not pending"})
		case errors.Is(err, feed.ErrSessionClosed):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "feed session closed"})
		default:
			h.logger.Error("failed to confirm service request", "user_id", actor.UID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(confirmation)
}
