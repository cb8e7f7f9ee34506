package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/ricardomoraes/minimart-inventory/docs"
	"github.com/ricardomoraes/minimart-inventory/internal/auth"
	"github.com/ricardomoraes/minimart-inventory/internal/config"
	"github.com/ricardomoraes/minimart-inventory/internal/db"
	router "github.com/ricardomoraes/minimart-inventory/internal/http"
	"github.com/ricardomoraes/minimart-inventory/internal/http/handlers"
	rl "github.com/ricardomoraes/minimart-inventory/internal/http/rate_limiter"
	"github.com/ricardomoraes/minimart-inventory/internal/models"
	"github.com/ricardomoraes/minimart-inventory/internal/repo"
	"github.com/ricardomoraes/minimart-inventory/internal/sku"
)

var ctx = context.Background()

// @title Minimart Inventory API
// @version 1.0
// @description REST API for a small-business product catalog, purchase/sale ledger and sales reporting.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load configuration:", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	handlers.SetRefreshStore(auth.NewRefreshStore(rdb, ctx))

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	userRepo := repo.NewPostgresUserRepository(database)
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetLedgerRepo(repo.NewPostgresLedgerRepository(database))
	handlers.SetReportRepo(repo.NewPostgresReportRepository(database))
	handlers.SetUserRepo(userRepo)
	handlers.SetSKUIssuer(sku.NewQRIssuer(cfg.QRDir))

	if err := ensureAdmin(userRepo, cfg.AdminUser, cfg.AdminPassword); err != nil {
		log.Fatal("could not bootstrap admin user:", err)
	}

	r := router.NewRouter()
	log.Printf("✅ Server running on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}

// ensureAdmin creates the admin account on first start so the session gate
// has someone to let in.
func ensureAdmin(users repo.UserRepository, username, password string) error {
	_, err := users.GetByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = users.CreateUser(models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
	if errors.Is(err, repo.ErrDuplicateUsername) {
		return nil
	}
	return err
}
