package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/fkresna23/promptlabidv2/config"
	"github.com/fkresna23/promptlabidv2/internal/api"
	"github.com/fkresna23/promptlabidv2/internal/database"
	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/internal/services"
	"github.com/fkresna23/promptlabidv2/pkg/logger"
)

// @title PromptLab API
// @version 1.0
// @description Prompt catalog and engagement backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Prompt{},
		&models.Like{},
		&models.PromptUse{},
		&models.Favorite{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	admin := initAdminUser()

	if cfg.SeedDemoData {
		if err := services.SeedDemoData(database.DB, admin.ID); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
		log.Println("Demo data seeded.")
	}

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func initAdminUser() models.User {
	adminEmail := "admin@promptlab.local"
	adminPassword := "ChangeMe1234"

	var adminUser models.User
	result := database.DB.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error != nil {
		if result.Error.Error() == "record not found" {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("failed to hash admin password: %v", err)
			}

			adminUser = models.User{
				Email:        adminEmail,
				Password:     string(hashedPassword),
				FirstName:    "Admin",
				LastName:     "User",
				Role:         models.RoleAdmin,
				Status:       models.StatusActive,
				Subscription: models.SubscriptionPremium,
			}

			if err := database.DB.Create(&adminUser).Error; err != nil {
				log.Fatalf("failed to create admin user: %v", err)
			}
			log.Println("Admin user created successfully!")
		} else {
			log.Fatalf("failed to check for admin user: %v", result.Error)
		}
	} else {
		log.Println("Admin user already exists.")
	}

	return adminUser
}
