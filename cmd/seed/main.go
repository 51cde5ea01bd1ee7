package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/OlegMusatov3000/BlitzMarket/internal/config"
	"github.com/OlegMusatov3000/BlitzMarket/internal/db"
	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/repository"
)

// SeedAd represents one demo ad from the fixture file.
type SeedAd struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Type        string `json:"type"`
}

func main() {
	fixture := flag.String("ads", "", "path to a JSON file with demo ads")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Ad{},
		&model.Comment{},
		&model.Review{},
		&model.Complaint{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	ads := repository.NewAdRepository(gormDB)

	admin, err := seedAdmin(ctx, users)
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	log.Printf("Admin user ready: %s (id=%d)", admin.Email, admin.ID)

	if *fixture == "" {
		log.Println("No ads fixture given, done")
		return
	}

	raw, err := os.ReadFile(*fixture)
	if err != nil {
		log.Fatalf("read fixture: %v", err)
	}
	var seedAds []SeedAd
	if err := json.Unmarshal(raw, &seedAds); err != nil {
		log.Fatalf("parse fixture: %v", err)
	}

	count := 0
	for _, sa := range seedAds {
		price, err := decimal.NewFromString(sa.Price)
		if err != nil {
			log.Printf("skip ad %q: bad price %q", sa.Title, sa.Price)
			continue
		}
		adType := model.AdType(sa.Type)
		if !adType.Valid() {
			log.Printf("skip ad %q: bad type %q", sa.Title, sa.Type)
			continue
		}
		ad := &model.Ad{
			Title:       sa.Title,
			Description: sa.Description,
			Price:       price,
			Type:        adType,
			UserID:      admin.ID,
		}
		if err := ads.Create(ctx, ad); err != nil {
			log.Fatalf("create ad %q: %v", sa.Title, err)
		}
		count++
	}
	log.Printf("Seeded %d ads", count)
}

// seedAdmin creates the admin account if it does not exist yet. Credentials
// come from ADMIN_EMAIL and ADMIN_PASSWORD.
func seedAdmin(ctx context.Context, users repository.UserRepository) (*model.User, error) {
	email := getEnv("ADMIN_EMAIL", "admin@blitzmarket.local")
	password := getEnv("ADMIN_PASSWORD", "admin123")

	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}
	admin := &model.User{
		Email:        email,
		Username:     "admin",
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
		IsActive:     true,
		IsSuperuser:  true,
		IsVerified:   true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
