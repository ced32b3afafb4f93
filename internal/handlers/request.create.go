package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/acertaplus/solicitation-api/internal/domain/vo"
	"github.com/acertaplus/solicitation-api/internal/services"
)

type RequestCreateService interface {
	Create(ctx context.Context, input services.CreateRequestInput) (vo.RequestCreated, error)
}

type RequestCreateHandler struct {
	service RequestCreateService
	logger  *slog.Logger
}

type createRequestBody struct {
	ClientID    string `json:"client_id"`
	OwnerID     string `json:"owner_id"`
	ServiceName string `json:"service_name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func NewRequestCreateHandler(service RequestCreateService, logger *slog.Logger) *RequestCreateHandler {
	return &RequestCreateHandler{service: service, logger: logger}
}

func (h *RequestCreateHandler) Register(router fiber.Router) {
	router.Post("/requests", h.Handle)
}

func (h *RequestCreateHandler) Handle(c fiber.Ctx) error {
	var requestBody createRequestBody
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	created, err := h.service.Create(c.Context(), services.CreateRequestInput{
		ClientID:    requestBody.ClientID,
		OwnerID:     requestBody.OwnerID,
		ServiceName: requestBody.ServiceName,
		Description: requestBody.Description,
		Price:       requestBody.Price,
	})
	if err != nil {
		if errors.Is(err, vo.ErrInvalidRequestPayload) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "client_id, owner_id, service_name and price are required",
			})
		}

		h.logger.Error("failed to create service request", "owner_id", requestBody.OwnerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
