package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/opygoal/nextride-api/internal/application/service"
	"github.com/opygoal/nextride-api/internal/config"
	"github.com/opygoal/nextride-api/internal/infrastructure/assets"
	"github.com/opygoal/nextride-api/internal/presentation/http/handler"
	"github.com/opygoal/nextride-api/internal/presentation/http/routes"
	"github.com/opygoal/nextride-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.ExpiryHours)

	// Initialize asset store
	assetStore, err := assets.NewStore(
		cfg.Storage.UploadPath,
		cfg.Storage.DefaultLogo,
		cfg.Storage.DefaultSignature,
	)
	if err != nil {
		log.Fatalf("Failed to initialize asset store: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(cfg.Auth, jwtManager)
	companyService := service.NewCompanyService()
	documentService := service.NewDocumentService(companyService, assetStore, cfg.Render)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Document: handler.NewDocumentHandler(documentService, assetStore, cfg.Storage.UploadMaxSize),
		Company:  handler.NewCompanyHandler(companyService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
