package routes

import (
	"github.com/gofiber/fiber/v2"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/internal/api/handlers"
	"GiveBridge-Backend/internal/middleware"
	"GiveBridge-Backend/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	AuthHandler     handlers.AuthHandler
	DonationHandler handlers.DonationHandler
	NGOHandler      handlers.NGOHandler
	FeedbackHandler handlers.FeedbackHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Donations()
	c.NGOs()
	c.Feedback()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register/donor", c.AuthHandler.RegisterDonor)
		auth.Post("/register/ngo", c.AuthHandler.RegisterNGO)
		auth.Post("/login", c.AuthHandler.Login)
		auth.Post("/logout", c.AuthHandler.Logout)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Me)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		donations.Post("", c.Middleware.RequireRole(domain.RoleDonor), c.DonationHandler.CreateDonation)
		donations.Post("/images", c.Middleware.RequireRole(domain.RoleDonor), c.DonationHandler.UploadItemImage)
		donations.Get("/user/:donorId", c.DonationHandler.GetUserDonations)
		donations.Get("/ngo", c.Middleware.RequireRole(domain.RoleNGO), c.DonationHandler.GetNGODonations)
		donations.Get("/:id/:donorId", c.DonationHandler.GetDonationByID)
		donations.Patch("/:id", c.Middleware.RequireRole(domain.RoleNGO), c.DonationHandler.UpdateDonationStatus)
	}
}

func (c *Config) NGOs() {
	ngos := c.App.Group("/api/v1/ngos")
	{
		ngos.Get("", c.NGOHandler.GetNGOs)
		ngos.Get("/:id", c.NGOHandler.GetNGOByID)
	}
}

func (c *Config) Feedback() {
	fb := c.App.Group("/api/v1/feedback", c.Middleware.AuthMiddleware(c.JWTService))
	{
		fb.Post("/submit", c.FeedbackHandler.SubmitFeedback)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
