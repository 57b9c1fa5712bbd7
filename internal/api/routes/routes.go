package routes

import (
	"context"
	"net/http"

	"trackflow-backend/internal/api/handlers"
	"trackflow-backend/internal/api/middleware"
	"trackflow-backend/internal/auth"
	"trackflow-backend/internal/config"
	"trackflow-backend/internal/repository"
	"trackflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies carries the connections the router is built from.
// ActivityRepo, Denylist and Storage are optional.
type Dependencies struct {
	DB        *gorm.DB
	Config    *config.Config
	Validator *validator.Validate

	// ActivityRepo overrides the postgres activity log, e.g. with the mongo store
	ActivityRepo repository.ActivityLogRepositoryInterface
	// Denylist defaults to process memory
	Denylist auth.Denylist
	// Storage stays nil when object storage is not configured
	Storage service.ObjectStorage

	// HealthChecks are reported next to the database check
	HealthChecks map[string]handlers.HealthCheck
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	validate := deps.Validator
	if validate == nil {
		validate = service.NewValidator()
	}

	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	if cfg.MetricsEnabled {
		metrics := middleware.NewMetrics()
		router.Use(metrics.Middleware())
		router.GET("/metrics", metrics.Handler())
	}

	// Initialize repositories
	txm := repository.NewTransactionManager(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB)
	teamRepo := repository.NewTeamRepository(deps.DB)
	membershipRepo := repository.NewMembershipRepository(deps.DB)
	joinRepo := repository.NewJoinRequestRepository(deps.DB)
	leaveRepo := repository.NewLeaveRequestRepository(deps.DB)
	invitationRepo := repository.NewInvitationRepository(deps.DB)
	projectRepo := repository.NewProjectRepository(deps.DB)
	taskRepo := repository.NewTaskRepository(deps.DB)
	commentRepo := repository.NewCommentRepository(deps.DB)
	timeLogRepo := repository.NewTimeLogRepository(deps.DB)
	attachmentRepo := repository.NewAttachmentRepository(deps.DB)
	notificationRepo := repository.NewNotificationRepository(deps.DB)

	activityRepo := deps.ActivityRepo
	if activityRepo == nil {
		activityRepo = repository.NewActivityLogRepository(deps.DB)
	}

	denylist := deps.Denylist
	if denylist == nil {
		denylist = auth.NewMemoryDenylist()
	}

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo)
	activityService := service.NewActivityService(activityRepo, projectRepo)

	teamService := service.NewTeamService(txm, service.TeamRepositories{
		Teams:         teamRepo,
		Memberships:   membershipRepo,
		JoinRequests:  joinRepo,
		LeaveRequests: leaveRepo,
		Invitations:   invitationRepo,
		Projects:      projectRepo,
	}, activityService, validate)
	joinRequestService := service.NewJoinRequestService(txm, teamRepo, joinRepo, membershipRepo, projectRepo, notificationService, activityService)
	leaveRequestService := service.NewLeaveRequestService(txm, teamRepo, leaveRepo, membershipRepo, notificationService, activityService)
	invitationService := service.NewInvitationService(txm, teamRepo, userRepo, invitationRepo, membershipRepo, notificationService, activityService, validate)

	projectService := service.NewProjectService(txm, service.ProjectRepositories{
		Projects:    projectRepo,
		Teams:       teamRepo,
		Users:       userRepo,
		Tasks:       taskRepo,
		Comments:    commentRepo,
		TimeLogs:    timeLogRepo,
		Attachments: attachmentRepo,
	}, deps.Storage, activityService, validate)
	taskService := service.NewTaskService(txm, service.TaskRepositories{
		Tasks:       taskRepo,
		Projects:    projectRepo,
		Comments:    commentRepo,
		TimeLogs:    timeLogRepo,
		Attachments: attachmentRepo,
	}, deps.Storage, notificationService, activityService, validate)
	commentService := service.NewCommentService(txm, commentRepo, taskRepo, projectRepo, notificationService, activityService, validate)
	timeLogService := service.NewTimeLogService(timeLogRepo, taskRepo, projectRepo, activityService, validate)
	attachmentService := service.NewAttachmentService(attachmentRepo, taskRepo, projectRepo, deps.Storage, activityService, cfg.MaxUploadSize())
	reportService := service.NewReportService(projectRepo, taskRepo, timeLogRepo, userRepo)

	sessions := auth.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.SessionTTL(), validate)
	authHandler := auth.NewAuthHandler(sessions, cfg.SessionCookieName, cfg.CookieSecure)
	authMiddleware := auth.NewAuthMiddleware(sessions, cfg.SessionCookieName)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(Version, healthChecks(deps))
	teamHandler := handlers.NewTeamHandler(teamService)
	joinRequestHandler := handlers.NewJoinRequestHandler(joinRequestService)
	leaveRequestHandler := handlers.NewLeaveRequestHandler(leaveRequestService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	commentHandler := handlers.NewCommentHandler(commentService)
	timeLogHandler := handlers.NewTimeLogHandler(timeLogService)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService, cfg.MaxUploadSize())
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	activityHandler := handlers.NewActivityHandler(activityService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListMyTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/members", teamHandler.ListMembers)
			teams.POST("/:id/join-requests", joinRequestHandler.Submit)
			teams.GET("/:id/join-requests", joinRequestHandler.ListByTeam)
			teams.POST("/:id/leave-requests", leaveRequestHandler.Submit)
			teams.GET("/:id/leave-requests", leaveRequestHandler.ListByTeam)
			teams.POST("/:id/invitations", invitationHandler.Invite)
		}

		joinRequests := v1.Group("/join-requests")
		{
			joinRequests.GET("/mine", joinRequestHandler.ListMine)
			joinRequests.PUT("/:id", joinRequestHandler.Resolve)
		}

		v1.PUT("/leave-requests/:id", leaveRequestHandler.Resolve)

		invitations := v1.Group("/invitations")
		{
			invitations.GET("/mine", invitationHandler.ListMine)
			invitations.PUT("/:id", invitationHandler.Respond)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListMyProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/members", projectHandler.ListMembers)
			projects.POST("/:id/members", projectHandler.AddMember)
			projects.GET("/:id/tasks", taskHandler.ListTasks)
			projects.POST("/:id/tasks", taskHandler.CreateTask)
			projects.GET("/:id/activity", activityHandler.ListProjectActivity)
			projects.GET("/:id/report", reportHandler.ProjectReport)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.GET("/:id/subtasks", taskHandler.ListSubtasks)
			tasks.GET("/:id/comments", commentHandler.ListComments)
			tasks.POST("/:id/comments", commentHandler.AddComment)
			tasks.GET("/:id/time-logs", timeLogHandler.ListTimeLogs)
			tasks.POST("/:id/time-logs", timeLogHandler.LogTime)
			tasks.GET("/:id/attachments", attachmentHandler.ListAttachments)
			tasks.POST("/:id/attachments", attachmentHandler.UploadAttachment)
		}

		v1.DELETE("/comments/:id", commentHandler.DeleteComment)
		v1.DELETE("/time-logs/:id", timeLogHandler.DeleteTimeLog)

		attachments := v1.Group("/attachments")
		{
			attachments.GET("/:id/download", attachmentHandler.DownloadAttachment)
			attachments.DELETE("/:id", attachmentHandler.DeleteAttachment)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
		}

		v1.GET("/activity/mine", activityHandler.ListMyActivity)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.Writer.Header().Get(middleware.RequestIDHeader),
		})
	})

	return router
}

func healthChecks(deps Dependencies) map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := deps.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	for name, check := range deps.HealthChecks {
		checks[name] = check
	}
	return checks
}
