package api

import (
	_ "github.com/fkresna23/promptlabidv2/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fkresna23/promptlabidv2/config"
	adminCategory "github.com/fkresna23/promptlabidv2/internal/api/v1/admin/category"
	adminPrompt "github.com/fkresna23/promptlabidv2/internal/api/v1/admin/prompt"
	adminStats "github.com/fkresna23/promptlabidv2/internal/api/v1/admin/stats"
	adminUser "github.com/fkresna23/promptlabidv2/internal/api/v1/admin/user"
	"github.com/fkresna23/promptlabidv2/internal/api/v1/auth"
	"github.com/fkresna23/promptlabidv2/internal/api/v1/category"
	"github.com/fkresna23/promptlabidv2/internal/api/v1/common/upload"
	"github.com/fkresna23/promptlabidv2/internal/api/v1/prompt"
	"github.com/fkresna23/promptlabidv2/internal/api/v1/stats"
	userRoutes "github.com/fkresna23/promptlabidv2/internal/api/v1/user"
	"github.com/fkresna23/promptlabidv2/internal/database"
	"github.com/fkresna23/promptlabidv2/internal/middleware"
	"github.com/fkresna23/promptlabidv2/internal/services"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	catalogService := services.NewCatalogService(database.DB)
	promptService := services.NewPromptService(database.DB)
	categoryService := services.NewCategoryService(database.DB)
	engagementService := services.NewEngagementService(database.DB)
	statsService := services.NewStatsService(database.DB)
	auditService := services.NewAuditService(database.DB)

	promptHandler := &prompt.Handler{
		Catalog:    catalogService,
		Prompts:    promptService,
		Engagement: engagementService,
	}
	categoryHandler := &category.Handler{Categories: categoryService}
	statsHandler := &stats.Handler{Stats: statsService}
	userHandler := &userRoutes.Handler{Engagement: engagementService}
	uploadHandler := upload.NewHandler(services.NewSTSClientManager())

	adminPromptHandler := adminPrompt.NewHandler(promptService, auditService)
	adminCategoryHandler := adminCategory.NewHandler(categoryService, auditService)
	adminUserHandler := adminUser.NewHandler(auditService)
	adminStatsHandler := adminStats.NewHandler(statsService, auditService)

	router := gin.Default()
	router.Use(middleware.Logger())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)
		prompt.RegisterRoutes(v1, promptHandler)
		category.RegisterRoutes(v1, categoryHandler)
		stats.RegisterRoutes(v1, statsHandler)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			userRoutes.RegisterRoutes(authorized, userHandler)
			upload.RegisterRoutes(authorized, uploadHandler)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminPrompt.RegisterRoutes(admin, adminPromptHandler)
			adminCategory.RegisterRoutes(admin, adminCategoryHandler)
			adminUser.RegisterRoutes(admin, adminUserHandler)
			adminStats.RegisterRoutes(admin, adminStatsHandler)
		}
	}

	return router, nil
}
