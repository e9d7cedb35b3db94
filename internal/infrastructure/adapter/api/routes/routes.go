package routes

import (
	"github.com/gin-gonic/gin"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/handler"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// registers the generated OpenAPI document
	_ "github.com/paywise/paywise-api/docs"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Transfer    *handler.TransferHandler
	Transaction *handler.TransactionHandler
	Category    *handler.CategoryHandler
	Analytics   *handler.AnalyticsHandler
	Health      *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, auth usecase.AuthUseCase, logger coreport.Logger) {
	router.GET("/health", h.Health.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(middleware.NotFound())

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.GET("", middleware.Auth(auth, logger), h.Auth.Me)
	}

	protected := api.Group("", middleware.Auth(auth, logger))
	{
		protected.GET("/balance/:id", h.User.GetBalance)
		protected.POST("/send", h.Transfer.Send)

		protected.GET("/transactions/history/:userId", h.Transaction.History)
		protected.GET("/transactions/:id", h.Transaction.Get)
		protected.POST("/transactions/message/:id", h.Transaction.AddMessage)

		protected.GET("/categories/:userId", h.Category.List)
		protected.POST("/categories/:userId", h.Category.Add)
		protected.DELETE("/categories/:userId/:categoryName", h.Category.Delete)
		protected.PUT("/categories/:userId/:categoryName/set-limit", h.Category.SetLimit)

		protected.GET("/analysis/:userId", h.Analytics.Analysis)
		protected.GET("/analytics/:userId/monthly-spending", h.Analytics.MonthlySpending)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Request id first so every later middleware can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
