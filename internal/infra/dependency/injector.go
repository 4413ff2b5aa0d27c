// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finlog/backend/config"
	"github.com/finlog/backend/internal/application/usecase/analytics"
	"github.com/finlog/backend/internal/application/usecase/auth"
	"github.com/finlog/backend/internal/application/usecase/category"
	"github.com/finlog/backend/internal/application/usecase/ownership"
	"github.com/finlog/backend/internal/application/usecase/transaction"
	"github.com/finlog/backend/internal/infra/server/router"
	"github.com/finlog/backend/internal/integration/adapters"
	"github.com/finlog/backend/internal/integration/entrypoint/controller"
	"github.com/finlog/backend/internal/integration/entrypoint/middleware"
	"github.com/finlog/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Ownership guard shared by category, transaction and analytics flows
	guard := ownership.NewGuard(categoryRepo, transactionRepo)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase()

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(guard)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, guard)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, guard)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, guard)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(guard)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, guard)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, guard)

	// Analytics use cases
	summaryUseCase := analytics.NewGetSummaryUseCase(analyticsRepo)
	spendingUseCase := analytics.NewGetSpendingByCategoryUseCase(analyticsRepo)
	trendsUseCase := analytics.NewGetMonthlyTrendsUseCase(analyticsRepo)
	recentUseCase := analytics.NewGetRecentTransactionsUseCase(analyticsRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		logoutUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		getCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		summaryUseCase,
		spendingUseCase,
		trendsUseCase,
		recentUseCase,
	)

	// Middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
