package routes

import (
	"time"

	"company-portal-backend/internal/api/handlers"
	"company-portal-backend/internal/api/middleware"
	"company-portal-backend/internal/auth"
	"company-portal-backend/internal/config"
	"company-portal-backend/internal/repository"
	"company-portal-backend/internal/service"
	"company-portal-backend/internal/storage"
	"company-portal-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The file store
// and validator are injected so tests can substitute in-memory variants.
func SetupRoutes(db *gorm.DB, cfg *config.Config, files storage.Store, validator *validation.Validator) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewAccessTokenRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// Initialize auth
	tokenService := auth.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour, userRepo, tokenRepo)
	authMiddleware := auth.NewMiddleware(tokenService)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService, validator)
	companyService := service.NewCompanyService(companyRepo, files, validator)
	employeeService := service.NewEmployeeService(employeeRepo, companyRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	api := router.Group("/api")
	{
		// Guest routes
		api.GET("/login", authMiddleware.RequireGuest(), authHandler.LoginCheck)
		api.POST("/login", authMiddleware.RequireGuest(), authHandler.Login)

		// Authenticated session routes
		session := api.Group("", authMiddleware.RequireAuth())
		{
			session.GET("/user", authHandler.CurrentUser)
			session.POST("/logout", authHandler.Logout)
		}

		// Company routes, admin only
		company := api.Group("/company", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			company.GET("", companyHandler.ListCompanies)
			company.POST("", companyHandler.CreateCompany)
			company.GET("/:id", companyHandler.GetCompany)
			company.PUT("/:id", companyHandler.UpdateCompany)
			company.PATCH("/:id", companyHandler.UpdateCompany)
			company.DELETE("/:id", companyHandler.DeleteCompany)
		}

		// Employee routes, any authenticated user
		employee := api.Group("/employee", authMiddleware.RequireAuth())
		{
			employee.GET("", employeeHandler.ListEmployees)
			employee.POST("", employeeHandler.CreateEmployee)
			employee.GET("/:id", employeeHandler.GetEmployee)
			employee.PUT("/:id", employeeHandler.UpdateEmployee)
			employee.PATCH("/:id", employeeHandler.UpdateEmployee)
			employee.DELETE("/:id", employeeHandler.DeleteEmployee)
		}
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
	router.GET("/health/live", healthHandler.Live)

	return router
}
