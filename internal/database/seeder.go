// server/internal/database/seeder.go
package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"pharma-factory-api-server/internal/auth"
	"pharma-factory-api-server/internal/models"
)

// SeedAdmin creates the default admin employee if no admin exists yet,
// so a fresh deployment can log in and register the rest of the staff.
func SeedAdmin(db *mongo.Database, logger *zap.Logger) error {
	employees := db.Collection("employees")
	adminEmail := "admin@pharmafactory.local"

	count, err := employees.CountDocuments(context.Background(), bson.M{"email": adminEmail})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("admin employee already exists, seeding skipped")
		return nil
	}

	logger.Info("admin employee not found, seeding")
	hashedPassword, err := auth.HashPassword("changeme")
	if err != nil {
		return err
	}

	now := time.Now()
	admin := models.Employee{
		FirstName:    "System",
		LastName:     "Admin",
		Email:        adminEmail,
		Password:     hashedPassword,
		JobPosition:  "Administrator",
		Role:         "admin",
		JobStartDate: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := employees.InsertOne(context.Background(), admin); err != nil {
		return err
	}

	logger.Info("admin employee seeded", zap.String("email", adminEmail))
	return nil
}
