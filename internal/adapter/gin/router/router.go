package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"user-management-api/api"
	"user-management-api/internal/adapter/gin/handler"
	"user-management-api/internal/adapter/gin/middleware"
)

// HealthPath is the auth-exempt liveness endpoint.
const HealthPath = "/health"

// Options configures the router.
type Options struct {
	AuthToken      string
	SwaggerEnabled bool
	ServiceName    string
}

// SetupRouter configures and returns a Gin router. Every request runs
// Recovery, then BearerAuth, then Logger before reaching a route.
// rateLimiter may be nil, in which case /users is not throttled.
func SetupRouter(
	opts Options,
	userHandler *handler.UserHandler,
	rateLimiter *middleware.RateLimiter,
	log *zap.Logger,
) *gin.Engine {
	router := gin.New()
	// /users/ must reach the pipeline instead of being redirected ahead of auth
	router.RedirectTrailingSlash = false

	// Global middleware, order matters
	router.Use(middleware.Recovery(log))
	router.Use(middleware.BearerAuth(opts.AuthToken, HealthPath))
	router.Use(middleware.Logger(log))

	// Health check endpoint
	router.GET(HealthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": opts.ServiceName,
		})
	})

	if opts.SwaggerEnabled {
		ui := gin.WrapH(httpSwagger.Handler(httpSwagger.URL(middleware.SwaggerPathPrefix + "/doc.json")))
		router.GET(middleware.SwaggerPathPrefix+"/*any", func(c *gin.Context) {
			if c.Param("any") == "/doc.json" {
				c.Data(http.StatusOK, "application/json; charset=utf-8", api.SwaggerJSON)
				return
			}
			ui(c)
		})
	}

	users := router.Group("/users")
	if rateLimiter != nil {
		users.Use(rateLimiter.Middleware())
	}
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	return router
}
