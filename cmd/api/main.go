// server/cmd/api/main.go
package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pharma-factory-api-server/config"
	"pharma-factory-api-server/internal/api/routes"
	"pharma-factory-api-server/internal/auth"
	"pharma-factory-api-server/internal/database"
	"pharma-factory-api-server/internal/mailer"
	"pharma-factory-api-server/internal/s3"
	"pharma-factory-api-server/internal/socket"
)

func main() {
	// 1. Load configuration (.env overlays, then config.yaml + env vars)
	_ = godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Logger
	var logger *zap.Logger
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer logger.Sync()

	// 3. Storage handle, with explicit lifecycle
	db, err := database.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	// 4. Seed the default admin so a fresh deployment can log in
	if err := database.SeedAdmin(db.Database, logger); err != nil {
		logger.Fatal("failed to seed admin employee", zap.Error(err))
	}

	// 5. External collaborators
	tokens, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		logger.Fatal("failed to build token manager", zap.Error(err))
	}
	mail := mailer.New(cfg.SMTP, logger)
	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		logger.Fatal("failed to build S3 uploader", zap.Error(err))
	}
	wsHub := socket.NewHub(logger)

	// 6. Router
	router := routes.SetupRouter(cfg, db.Database, tokens, mail, s3Uploader, wsHub, logger)

	// 7. Start server
	logger.Info("starting API server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
