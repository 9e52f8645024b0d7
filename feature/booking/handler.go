package booking

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quest-zone/core/logger"
)

// Handler handles HTTP requests for bookings.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the booking routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/booking")
	group.Post("/", h.HandleSubmit)
}

// HandleSubmit accepts a booking form submission.
// @Summary Submit Booking
// @Description Validate a booking submission against the current content and acknowledge it.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body Request true "Booking request"
// @Success 200 {object} Confirmation "Accepted"
// @Failure 400 {object} map[string]string "Invalid Submission"
// @Router /booking [post]
func (h *Handler) HandleSubmit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	confirmation, err := h.service.Submit(req)
	if err != nil {
		if errors.Is(err, ErrInvalidSubmission) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Booking submission failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(confirmation)
}
