package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"helpdesk/internal/httpserver"
	"helpdesk/internal/logger"
	"helpdesk/internal/models"
	"helpdesk/internal/seed"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		lg.Fatalw("DATABASE_URL is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Ticket{}, &models.Attachment{}, &models.Message{}); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	if path := os.Getenv("SEED_FILE"); path != "" {
		if err := seed.Load(db, lg, path); err != nil {
			lg.Fatalw("seed failed", "error", err)
		}
	}
	router := httpserver.NewRouter(db, lg)
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	lg.Infow("listening", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}
