package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ginhandler "user-management-api/internal/adapter/gin/handler"
	"user-management-api/internal/adapter/gin/middleware"
	ginrouter "user-management-api/internal/adapter/gin/router"
	"user-management-api/internal/config"
)

// SetupGinServer creates the REST API server. rateLimiter may be nil.
func SetupGinServer(
	cfg *config.Config,
	handler *ginhandler.UserHandler,
	rateLimiter *middleware.RateLimiter,
	l *zap.Logger,
) *http.Server {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := ginrouter.SetupRouter(ginrouter.Options{
		AuthToken:      cfg.Auth.Token,
		SwaggerEnabled: cfg.Swagger.Enabled,
		ServiceName:    cfg.Logger.ServiceName,
	}, handler, rateLimiter, l)

	addr := ":" + cfg.App.HTTPPort
	l.Info("Gin REST API configured",
		zap.String("address", addr),
		zap.Bool("swagger", cfg.Swagger.Enabled),
		zap.Bool("rate_limit", rateLimiter != nil),
	)

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
