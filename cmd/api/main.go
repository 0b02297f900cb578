package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"donorblog/internal/config"
	"donorblog/internal/database"
	"donorblog/internal/gateway"
	"donorblog/internal/mailer"
	"donorblog/internal/middleware"
	"donorblog/internal/modules/auth"
	"donorblog/internal/modules/blog"
	"donorblog/internal/modules/donation"
	jwtsvc "donorblog/internal/pkg/jwt"
	"donorblog/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	donationRepo := repository.NewDonationRepository(db)
	eventRepo := repository.NewWebhookEventRepository(db)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	stripeClient := gateway.NewStripeClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	var receipts mailer.Mailer
	if cfg.SMTPHost != "" {
		receipts = mailer.NewSMTPMailer(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
			cfg.MailFrom, cfg.ContactEmail, cfg.DonationsBCC, cfg.DefaultLocale,
		)
	} else {
		log.Println("SMTP_HOST is empty, receipts go to the log")
		receipts = mailer.NewConsoleMailer(true)
	}

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	donationService := donation.NewService(donationRepo, eventRepo, stripeClient, receipts, cfg, log.Printf)
	donationHandler := donation.NewHandler(donationService, log.Printf)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	blogService := blog.NewService(postRepo)
	blogHandler := blog.NewHandler(blogService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.ErrorLogger(), middleware.CORS())

	// non-POST requests to the checkout endpoint must get a 405, not a 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Only POST allowed"})
	})

	root := r.Group("/")
	{
		donationHandler.RegisterPublicRoutes(root)
		authHandler.RegisterRoutes(root)
		blogHandler.RegisterRoutes(root)

		staff := root.Group("/")
		staff.Use(middleware.JWTAuth(j), middleware.StaffOnly())
		{
			donationHandler.RegisterStaffRoutes(staff)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
