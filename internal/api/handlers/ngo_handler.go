package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/internal/api/presenters"
	"GiveBridge-Backend/pkg/ngo"
)

type (
	NGOHandler interface {
		GetNGOs(c *fiber.Ctx) error
		GetNGOByID(c *fiber.Ctx) error
	}

	ngoHandler struct {
		ngoService ngo.NGOService
	}
)

func NewNGOHandler(ngoService ngo.NGOService) NGOHandler {
	return &ngoHandler{ngoService: ngoService}
}

func (h *ngoHandler) GetNGOs(c *fiber.Ctx) error {
	ngos, err := h.ngoService.GetNGOs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNGOs, domain.ErrNGONotFound)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"ngos": ngos,
	}, fiber.StatusOK, domain.MessageSuccessGetNGOs)
}

func (h *ngoHandler) GetNGOByID(c *fiber.Ctx) error {
	record, err := h.ngoService.GetNGOByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNGONotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetNGOs, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNGOs, domain.ErrNGONotFound)
	}

	return presenters.SuccessResponse(c, record, fiber.StatusOK, domain.MessageSuccessGetNGOs)
}
