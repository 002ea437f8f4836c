package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/internal/api/presenters"
	"GiveBridge-Backend/internal/middleware"
	"GiveBridge-Backend/pkg/auth"
)

type (
	AuthHandler interface {
		RegisterDonor(c *fiber.Ctx) error
		RegisterNGO(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *authHandler) RegisterDonor(c *fiber.Ctx) error {
	req := new(domain.RegisterDonorRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	profile, err := h.authService.RegisterDonor(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, registerStatus(err), domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *authHandler) RegisterNGO(c *fiber.Ctx) error {
	req := new(domain.RegisterNGORequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	profile, err := h.authService.RegisterNGO(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, registerStatus(err), domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	result, err := h.authService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, domain.ErrInvalidCredentials)
	}

	// Cookie for server-rendered flows, token in the body for SPA clients.
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    result.Token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *authHandler) Me(c *fiber.Ctx) error {
	subjectID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	profile, err := h.authService.GetProfile(c.Context(), subjectID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessMe)
}

func registerStatus(err error) int {
	if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrRegistrationTaken) {
		return fiber.StatusConflict
	}
	return fiber.StatusBadRequest
}
