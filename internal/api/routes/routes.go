package routes

import (
	"teamflow-backend/internal/api/handlers"
	"teamflow-backend/internal/api/middleware"
	"teamflow-backend/internal/auth"
	"teamflow-backend/internal/config"
	"teamflow-backend/internal/repository"
	"teamflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	// Initialize auth
	authService := auth.NewService(cfg)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize services
	userService := service.NewUserService(userRepo, authService, validator)
	teamService := service.NewTeamService(teamRepo, membershipRepo, userRepo, cfg, validator)
	taskService := service.NewTaskService(taskRepo, teamRepo, membershipRepo, evaluationRepo, cfg, validator)
	commentService := service.NewCommentService(commentRepo, taskService, validator)
	meetingService := service.NewMeetingService(meetingRepo, teamRepo, membershipRepo, userRepo, cfg, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	taskHandler := handlers.NewTaskHandler(taskService)
	commentHandler := handlers.NewCommentHandler(commentService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Public auth routes
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// Everything else requires a valid token
		protected := v1.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			users := protected.Group("/users")
			{
				users.GET("/me", userHandler.GetMe)
				users.POST("/set_password", userHandler.SetPassword)
			}

			teams := protected.Group("/teams")
			{
				teams.POST("", teamHandler.CreateTeam)
				teams.GET("", teamHandler.ListTeams)
				teams.GET("/:id", teamHandler.GetTeam)
				teams.PUT("/:id", handlers.MethodNotAllowed)
				teams.DELETE("/:id", handlers.MethodNotAllowed)
				teams.GET("/:id/users", teamHandler.GetTeamUsers)
				teams.GET("/:id/my-role", teamHandler.GetMyRole)
				teams.PUT("/:id/change-role", teamHandler.ChangeRole)
				teams.PUT("/:id/add-participant", teamHandler.AddParticipant)
				teams.DELETE("/:id/remove-participant", teamHandler.RemoveParticipant)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.POST("", taskHandler.CreateTask)
				tasks.GET("", taskHandler.ListTasks)
				tasks.GET("/executor-evaluations", taskHandler.ExecutorEvaluations)
				tasks.GET("/:id", taskHandler.GetTask)
				tasks.PUT("/:id", taskHandler.UpdateTask)
				tasks.DELETE("/:id", handlers.MethodNotAllowed)
				tasks.PUT("/:id/status", taskHandler.UpdateTaskStatus)
				tasks.POST("/:id/evaluate", taskHandler.EvaluateTask)
				tasks.GET("/:id/comments", commentHandler.ListComments)
				tasks.POST("/:id/comments", commentHandler.CreateComment)
			}

			meetings := protected.Group("/meetings")
			{
				meetings.POST("", meetingHandler.CreateMeeting)
				meetings.GET("", meetingHandler.ListMeetings)
				meetings.GET("/:id", meetingHandler.GetMeeting)
				meetings.PUT("/:id", meetingHandler.UpdateMeeting)
			}
		}
	}

	return router
}
