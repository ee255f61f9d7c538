package routes

import (
	"football-manager-backend/internal/api/handlers"
	"football-manager-backend/internal/api/middleware"
	"football-manager-backend/internal/auth"
	"football-manager-backend/internal/config"
	"football-manager-backend/internal/notifications"
	"football-manager-backend/internal/repository"
	"football-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	clubRepo := repository.NewClubRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize notification pipeline
	emailSender := notifications.NewEmailSender()
	notificationRouter := notifications.NewRouter(emailSender)
	dispatcher := notifications.NewDispatcher(notificationRouter, cfg.NotificationTimeout())

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL())
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize services
	clubService := service.NewClubService(clubRepo, playerRepo, coachRepo, dispatcher, validator)
	playerService := service.NewPlayerService(playerRepo, clubRepo, dispatcher, validator)
	coachService := service.NewCoachService(coachRepo, clubRepo, dispatcher, validator)
	userService := service.NewUserService(userRepo, authService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	clubHandler := handlers.NewClubHandler(clubService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	coachHandler := handlers.NewCoachHandler(coachService)
	authHandler := handlers.NewAuthHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Club routes
		clubs := v1.Group("/clubs")
		{
			clubs.GET("", clubHandler.GetAllClubs)
			clubs.POST("", clubHandler.CreateClub)
			clubs.GET("/:id", clubHandler.GetClub)
			clubs.GET("/:id/players", clubHandler.GetClubPlayers)
			clubs.POST("/:id/players", clubHandler.AddPlayers)
			clubs.POST("/:id/coaches", clubHandler.AddCoach)
			clubs.PATCH("/:id/budget", clubHandler.AdjustBudget)
		}

		// Player routes
		players := v1.Group("/players")
		{
			players.POST("", playerHandler.CreatePlayer)
			players.GET("/:id", playerHandler.GetPlayer)
			players.POST("/:id/transfer", playerHandler.TransferPlayer)
			players.POST("/:id/release", playerHandler.ReleasePlayer)
		}

		// Coach routes
		coaches := v1.Group("/coaches")
		{
			coaches.POST("", coachHandler.CreateCoach)
			coaches.GET("/:id", coachHandler.GetCoach)
			coaches.POST("/:id/transfer", coachHandler.TransferCoach)
			coaches.POST("/:id/release", coachHandler.ReleaseCoach)
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
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
