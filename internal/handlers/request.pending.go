package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/acertaplus/solicitation-api/internal/domain/vo"
	"github.com/acertaplus/solicitation-api/internal/feed"
)

type RequestPendingService interface {
	PendingRequests(ctx context.Context, actor feed.Actor) (vo.PendingRequestList, error)
}

type RequestPendingHandler struct {
	service RequestPendingService
	logger  *slog.Logger
}

func NewRequestPendingHandler(service RequestPendingService, logger *slog.Logger) *RequestPendingHandler {
	return &RequestPendingHandler{service: service, logger: logger}
}

func (h *RequestPendingHandler) Register(router fiber.Router) {
	router.Get("/requests/pending", h.Handle)
}

func (h *RequestPendingHandler) Handle(c fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	list, err := h.service.PendingRequests(c.Context(), actor)
	if err != nil {
		h.logger.Error("failed to list pending requests", "user_id", actor.UID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(list)
}
