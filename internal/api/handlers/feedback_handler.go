package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/internal/api/presenters"
	"GiveBridge-Backend/pkg/feedback"
)

type (
	FeedbackHandler interface {
		SubmitFeedback(c *fiber.Ctx) error
	}

	feedbackHandler struct {
		feedbackService feedback.FeedbackService
		validator       *validator.Validate
	}
)

func NewFeedbackHandler(feedbackService feedback.FeedbackService, validator *validator.Validate) FeedbackHandler {
	return &feedbackHandler{
		feedbackService: feedbackService,
		validator:       validator,
	}
}

func (h *feedbackHandler) SubmitFeedback(c *fiber.Ctx) error {
	req := new(domain.SubmitFeedbackRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitFeedback, err)
	}

	donorID := ""
	if c.Locals("role") == domain.RoleDonor {
		donorID = c.Locals("user_id").(string)
	}

	result, err := h.feedbackService.SubmitFeedback(c.Context(), *req, donorID)
	if err != nil {
		return presenters.ErrorResponse(c, feedbackStatus(err), domain.MessageFailedSubmitFeedback, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessSubmitFeedback)
}

func feedbackStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNGONotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrPickupCommentRequired),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
