package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"github.com/sentinelx-dev/sentinelx/db"
	"github.com/sentinelx-dev/sentinelx/internal/config"
	"github.com/sentinelx-dev/sentinelx/internal/router"
	"github.com/sentinelx-dev/sentinelx/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mailer := services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)
	alerts := services.NewAlertService(conn, mailer)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	checker := services.NewBreachChecker(conn, alerts, rng)

	r := router.NewRouter(conn, checker)

	log.Printf("Starting SentinelX backend on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
