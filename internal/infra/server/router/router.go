// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finlog/backend/internal/integration/entrypoint/controller"
	"github.com/finlog/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	analyticsController   *controller.AnalyticsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	analyticsController *controller.AnalyticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		transactionController: transactionController,
		analyticsController:   analyticsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
		}

		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.GET("/:id", r.categoryController.Get)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		transactions := v1.Group("/transactions")
		transactions.Use(r.authMiddleware.Authenticate())
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		analytics := v1.Group("/analytics")
		analytics.Use(r.authMiddleware.Authenticate())
		{
			analytics.GET("/summary", r.analyticsController.GetSummary)
			analytics.GET("/spending-by-category", r.analyticsController.GetSpendingByCategory)
			analytics.GET("/monthly-trends", r.analyticsController.GetMonthlyTrends)
			analytics.GET("/recent-transactions", r.analyticsController.GetRecentTransactions)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
