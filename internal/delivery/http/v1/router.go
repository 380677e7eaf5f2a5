package v1

import (
	"net/http"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", "")
	})

	// Public routes; contact gets its own stricter limit on top of the
	// global one
	contact := api.Group("")
	contact.Use(middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config)))
	NewContactHandler(contact, deps.ContactUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
