package routes

import (
	"log"

	"writing-tracker-backend/internal/api/handlers"
	"writing-tracker-backend/internal/api/middleware"
	"writing-tracker-backend/internal/auth"
	"writing-tracker-backend/internal/config"
	"writing-tracker-backend/internal/repository"
	"writing-tracker-backend/internal/service"

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
	txManager := repository.NewTxManager(db)
	workRepo := repository.NewWorkRepository(db)
	tagRepo := repository.NewTagRepository(db)
	tallyRepo := repository.NewTallyRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)
	teamRepo := repository.NewLeaderboardTeamRepository(db)
	memberRepo := repository.NewLeaderboardMemberRepository(db)

	// Initialize services
	workService := service.NewWorkService(workRepo, tallyRepo, txManager, validator)
	tagService := service.NewTagService(tagRepo, validator)
	tallyService := service.NewTallyService(tallyRepo, workRepo, tagRepo, txManager, validator)
	goalService := service.NewGoalService(goalRepo, tallyRepo, validator, cfg.WeekStart())
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, teamRepo, memberRepo, tallyRepo, txManager, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		log.Printf("Warning: failed to initialize auth service: %v", err)
	}
	var authMiddleware *auth.AuthMiddleware
	if authService != nil {
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	workHandler := handlers.NewWorkHandler(workService)
	tagHandler := handlers.NewTagHandler(tagService)
	tallyHandler := handlers.NewTallyHandler(tallyService)
	goalHandler := handlers.NewGoalHandler(goalService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	membershipHandler := handlers.NewMembershipHandler(leaderboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Work routes
		works := v1.Group("/works")
		{
			works.GET("", workHandler.ListWorks)
			works.POST("", workHandler.CreateWork)
			works.GET("/:id", workHandler.GetWork)
			works.PUT("/:id", workHandler.UpdateWork)
			works.DELETE("/:id", workHandler.DeleteWork)
		}

		// Tag routes
		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.POST("", tagHandler.CreateTag)
			tags.PUT("/:id", tagHandler.UpdateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		// Tally ledger routes
		tallies := v1.Group("/tallies")
		{
			tallies.POST("", tallyHandler.CreateTally)
			tallies.POST("/batch", tallyHandler.BatchCreateTallies)
			tallies.POST("/query", tallyHandler.QueryTallies)
			tallies.GET("/:id", tallyHandler.GetTally)
			tallies.PUT("/:id", tallyHandler.UpdateTally)
			tallies.DELETE("/:id", tallyHandler.DeleteTally)
		}

		// Goal routes
		goals := v1.Group("/goals")
		{
			goals.GET("", goalHandler.ListGoals)
			goals.POST("", goalHandler.CreateGoal)
			goals.GET("/:id", goalHandler.GetGoal)
			goals.PUT("/:id", goalHandler.UpdateGoal)
			goals.DELETE("/:id", goalHandler.DeleteGoal)
		}

		// Leaderboard routes
		leaderboards := v1.Group("/leaderboards")
		{
			leaderboards.POST("", leaderboardHandler.CreateLeaderboard)
			leaderboards.GET("/by-code/:code", leaderboardHandler.GetLeaderboardByJoinCode)
			leaderboards.GET("/:id", leaderboardHandler.GetLeaderboard)
			leaderboards.PUT("/:id", leaderboardHandler.UpdateLeaderboard)
			leaderboards.DELETE("/:id", leaderboardHandler.DeleteLeaderboard)
			leaderboards.PUT("/:id/star", leaderboardHandler.StarLeaderboard)
			leaderboards.GET("/:id/standings", leaderboardHandler.GetStandings)

			// Teams
			leaderboards.GET("/:id/teams", leaderboardHandler.ListTeams)
			leaderboards.POST("/:id/teams", leaderboardHandler.CreateTeam)
			leaderboards.PUT("/:id/teams/:teamId", leaderboardHandler.UpdateTeam)
			leaderboards.DELETE("/:id/teams/:teamId", leaderboardHandler.DeleteTeam)

			// Memberships
			leaderboards.GET("/:id/members", membershipHandler.ListMembers)
			leaderboards.POST("/:id/members", membershipHandler.JoinLeaderboard)
			leaderboards.GET("/:id/members/me", membershipHandler.GetMyMembership)
			leaderboards.PUT("/:id/members/me", membershipHandler.UpdateMyMembership)
			leaderboards.DELETE("/:id/members/me", membershipHandler.LeaveLeaderboard)
			leaderboards.PUT("/:id/members/:memberId", membershipHandler.UpdateMember)
			leaderboards.DELETE("/:id/members/:memberId", membershipHandler.RemoveMember)
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
