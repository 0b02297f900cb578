package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"donorblog/internal/config"
	"donorblog/internal/database"
	"donorblog/internal/domain"
	"donorblog/internal/repository"
)

// Provisions the staff account used by the CSV export endpoint and a couple
// of starter posts. Safe to re-run: the account is upserted by email.
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
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	email := os.Getenv("SEED_STAFF_EMAIL")
	password := os.Getenv("SEED_STAFF_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_STAFF_EMAIL and SEED_STAFF_PASSWORD are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	if err := users.UpsertByEmail(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
		Name:         "Staff",
	}); err != nil {
		log.Fatal("staff user upsert failed:", err)
	}
	log.Println("Staff user ready:", email)

	var count int64
	if err := db.Model(&domain.Post{}).Count(&count).Error; err != nil {
		log.Fatal(err)
	}
	if count == 0 {
		log.Println("Creating starter posts...")
		posts := []domain.Post{
			{
				Title:      "Welcome",
				Slug:       "welcome",
				TeaserText: "Why this blog exists",
				Content:    "Welcome to the blog. Posts about the project and how donations are used will appear here.",
				Tags:       "news",
				Status:     domain.PostPublished,
			},
			{
				Title:      "How donations are spent",
				Slug:       "how-donations-are-spent",
				TeaserText: "A transparent breakdown",
				Content:    "Every donation is recorded and reconciled against the payment provider. This post explains where the money goes.",
				Tags:       "news,donations",
				Status:     domain.PostPublished,
			},
		}
		for i := range posts {
			if err := db.Create(&posts[i]).Error; err != nil {
				log.Fatal(err)
			}
		}
	}

	log.Println("Seed complete")
}
