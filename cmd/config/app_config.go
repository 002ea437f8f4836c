package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"GiveBridge-Backend/internal/api/handlers"
	"GiveBridge-Backend/internal/api/routes"
	"GiveBridge-Backend/internal/middleware"
	"GiveBridge-Backend/internal/utils"
	"GiveBridge-Backend/internal/utils/analysis"
	"GiveBridge-Backend/internal/utils/sms"
	"GiveBridge-Backend/internal/utils/storage"
	"GiveBridge-Backend/pkg/account"
	"GiveBridge-Backend/pkg/auth"
	"GiveBridge-Backend/pkg/donation"
	"GiveBridge-Backend/pkg/feedback"
	"GiveBridge-Backend/pkg/jwt"
	"GiveBridge-Backend/pkg/ngo"
	"GiveBridge-Backend/pkg/notification"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	analyzer := analysis.NewGeminiAnalyzer()
	smsSender := sms.NewTwilioSender()

	// Repository
	accountRepository := account.NewAccountRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	ngoRepository := ngo.NewNGORepository(db)
	feedbackRepository := feedback.NewFeedbackRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	dispatcher := notification.NewDispatcher(smsSender)
	authService := auth.NewAuthService(accountRepository, jwtService)
	donationService := donation.NewDonationService(donationRepository, accountRepository, dispatcher)
	ngoService := ngo.NewNGOService(ngoRepository)
	feedbackService := feedback.NewFeedbackService(feedbackRepository, ngoRepository)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator, s3, analyzer)
	ngoHandler := handlers.NewNGOHandler(ngoService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		AuthHandler:     authHandler,
		DonationHandler: donationHandler,
		NGOHandler:      ngoHandler,
		FeedbackHandler: feedbackHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
