package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opygoal/nextride-api/internal/config"
	"github.com/opygoal/nextride-api/internal/presentation/http/handler"
	"github.com/opygoal/nextride-api/internal/presentation/http/middleware"
	"github.com/opygoal/nextride-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Document *handler.DocumentHandler
	Company  *handler.CompanyHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Per-client rate limiter covers the render endpoints
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		documents := v1.Group("/documents")
		documents.Use(rateLimiter.Middleware())
		{
			documents.POST("/invoice", h.Document.GenerateInvoice)
			documents.POST("/receipt", h.Document.GenerateReceipt)
		}

		// Company profile: reads are public, updates require the admin token
		v1.GET("/company", h.Company.GetCompany)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		{
			protected.PUT("/company", h.Company.UpdateCompany)
		}
	}

	return router
}
