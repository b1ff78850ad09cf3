package routes

import (
	"impact-explorer-backend/internal/api/handlers"
	"impact-explorer-backend/internal/api/middleware"
	"impact-explorer-backend/internal/auth"
	"impact-explorer-backend/internal/config"
	"impact-explorer-backend/internal/repository"
	"impact-explorer-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	vocabularyRepo := repository.NewVocabularyRepository(db)
	associationRepo := repository.NewAssociationRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, vocabularyRepo, associationRepo, validator)
	vocabularyService := service.NewVocabularyService(vocabularyRepo)

	// Initialize auth services
	authService := auth.NewAuthService(cfg)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	vocabularyHandler := handlers.NewVocabularyHandler(vocabularyService)
	dashboardHandler := handlers.NewDashboardHandler(organizationService)
	quizHandler := handlers.NewQuizHandler(organizationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Admin gate
		v1.POST("/auth/admin/login", authHandler.AdminLogin)

		// Organization routes - reads are public, writes require the admin token
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("/filter", organizationHandler.FilterOrganizations)
			organizations.POST("/export", organizationHandler.ExportOrganizations)
			organizations.GET("/:id", organizationHandler.GetOrganization)

			admin := organizations.Group("")
			admin.Use(authMiddleware.RequireAdmin())
			{
				admin.POST("", organizationHandler.CreateOrganization)
				admin.PUT("/:id", organizationHandler.UpdateOrganization)
				admin.DELETE("/:id", organizationHandler.DeleteOrganization)
			}
		}

		// Lookup vocabularies
		v1.GET("/lookups", vocabularyHandler.GetLookups)

		// Dashboard aggregations
		v1.GET("/dashboard", dashboardHandler.GetDashboard)

		// Quiz flow
		v1.POST("/quiz/results", quizHandler.GetQuizResults)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
