package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/internal/api/presenters"
	"GiveBridge-Backend/internal/utils/analysis"
	"GiveBridge-Backend/internal/utils/storage"
	"GiveBridge-Backend/pkg/donation"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetUserDonations(c *fiber.Ctx) error
		GetNGODonations(c *fiber.Ctx) error
		GetDonationByID(c *fiber.Ctx) error
		UpdateDonationStatus(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
		s3              storage.AwsS3
		analyzer        analysis.ImageAnalyzer
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate, s3 storage.AwsS3, analyzer analysis.ImageAnalyzer) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
		s3:              s3,
		analyzer:        analyzer,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	donorID := c.Locals("user_id").(string)

	req := new(domain.CreateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	created, err := h.donationService.CreateDonation(c.Context(), *req, donorID)
	if err != nil {
		return presenters.ErrorResponse(c, donationStatus(err), domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetUserDonations(c *fiber.Ctx) error {
	donorID := c.Params("donorId")
	if _, err := uuid.Parse(donorID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, domain.ErrParseUUID)
	}

	donations, err := h.donationService.GetDonorDonations(c.Context(), donorID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonations, domain.ErrDonationNotFound)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": donations,
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetNGODonations(c *fiber.Ctx) error {
	ngoID := c.Locals("user_id").(string)

	donations, err := h.donationService.GetNGODonations(c.Context(), ngoID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonations, domain.ErrDonationNotFound)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": donations,
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationByID(c *fiber.Ctx) error {
	donationID := c.Params("id")
	donorID := c.Params("donorId")

	record, err := h.donationService.GetDonationByID(c.Context(), donationID, donorID)
	if err != nil {
		return presenters.ErrorResponse(c, donationStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, record, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) UpdateDonationStatus(c *fiber.Ctx) error {
	role := c.Locals("role").(string)

	req := new(domain.UpdateDonationStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.DonationID = c.Params("id")
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonation, err)
	}

	updated, err := h.donationService.UpdateDonationStatus(c.Context(), *req, role)
	if err != nil {
		return presenters.ErrorResponse(c, donationStatus(err), domain.MessageFailedUpdateDonation, err)
	}

	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateDonation)
}

// UploadItemImage stores an item photo and runs it through the analyzer.
// Analysis is best effort; a failure still returns the uploaded image.
func (h *donationHandler) UploadItemImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	objectKey, err := h.s3.UploadFile(
		uuid.New().String(),
		file,
		"donation-items",
		storage.AllowImage...,
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	imageURL := h.s3.GetPublicLinkKey(objectKey)
	analysisText, err := h.analyzer.AnalyzeImage(c.Context(), imageURL)
	if err != nil {
		analysisText = "Analysis failed"
	}

	return presenters.SuccessResponse(c, domain.UploadItemImageResponse{
		URL:      imageURL,
		Analysis: analysisText,
	}, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}

func donationStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDonorNotFound),
		errors.Is(err, domain.ErrNGONotFound),
		errors.Is(err, domain.ErrDonationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrForbiddenDonation),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrEmptyItems),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPickupOption),
		errors.Is(err, domain.ErrInvalidPickupTime),
		errors.Is(err, domain.ErrMissingPickupSchedule),
		errors.Is(err, domain.ErrUnexpectedPickupSchedule),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrRejectionReasonTooShort):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
