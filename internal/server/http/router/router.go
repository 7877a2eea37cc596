package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/heavybuild/heavybuild-pro/internal/server/http/handlers"
	"github.com/heavybuild/heavybuild-pro/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	systemHandler := handlers.NewSystemHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", systemHandler.Health)
	api.GET("/config/razorpay", systemHandler.GatewayKey)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Create)
	orders.POST("/verify", orderHandler.Verify)
	orders.GET("/myorders", orderHandler.Mine)
	orders.PUT("/:id/cancel", orderHandler.Cancel)

	admin := orders.Group("")
	admin.Use(middleware.AdminOnly())
	admin.GET("", orderHandler.All)
	admin.PUT("/:id/status", orderHandler.UpdateStatus)

	return engine
}
