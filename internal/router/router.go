package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lucassfers/My-task-back-end/internal/cascade"
	"github.com/Lucassfers/My-task-back-end/internal/config"
	"github.com/Lucassfers/My-task-back-end/internal/constants"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/Lucassfers/My-task-back-end/internal/handlers"
	"github.com/Lucassfers/My-task-back-end/internal/middleware"
	"github.com/Lucassfers/My-task-back-end/internal/repository"
	"github.com/Lucassfers/My-task-back-end/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Users  *handlers.UserHandler
	Admins *handlers.AdminHandler
	Boards *handlers.BoardHandler
	Tasks  *handlers.TaskHandler
}

// Services is exposed so the server can seed data before serving.
type Services struct {
	Auth     *services.AuthService
	Boards   *services.BoardService
	Tasks    *services.TaskService
	Deletion *services.DeletionService
}

// NewServices wires repositories, the cascade engine and services on db.
func NewServices(db *gorm.DB, logger *slog.Logger) Services {
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	logRepo := repository.NewLogRepository(db)

	engine := cascade.NewEngine(db, cascade.DefaultGraph(), logger)

	return Services{
		Auth:     services.NewAuthService(userRepo, adminRepo, logRepo),
		Boards:   services.NewBoardService(boardRepo),
		Tasks:    services.NewTaskService(taskRepo, boardRepo, userRepo),
		Deletion: services.NewDeletionService(engine),
	}
}

func NewHandlers(svc Services) Handlers {
	return Handlers{
		Auth:   handlers.NewAuthHandler(svc.Auth),
		Users:  handlers.NewUserHandler(svc.Auth, svc.Deletion),
		Admins: handlers.NewAdminHandler(svc.Auth, svc.Deletion),
		Boards: handlers.NewBoardHandler(svc.Boards, svc.Deletion),
		Tasks:  handlers.NewTaskHandler(svc.Tasks, svc.Deletion),
	}
}

// NewSessionStore uses Redis when it is configured and signed cookies otherwise.
func NewSessionStore(cfg *config.Config) (sessions.Store, error) {
	options := sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	if addr := cfg.RedisAddr(); addr != "" {
		store, err := redisStore.NewStore(
			10,    // Redis pool size
			"tcp", // network type
			addr,
			"", // username (empty for default user)
			"", // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store.Options(options)
		return store, nil
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(options)
	return store, nil
}

// New builds the gin engine with middleware and every route.
func New(cfg *config.Config, db *gorm.DB, store sessions.Store, h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			apierrors.ServiceUnavailable(c, "Database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "MyTask API is running",
		})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), h.Auth.GetCurrentUser)
		}
		api.POST("/admin/auth/login", h.Auth.AdminLogin)

		users := api.Group("/users")
		{
			users.POST("", h.Users.Signup)
			users.GET("", middleware.RequireAdmin(), h.Users.ListUsers)
			users.GET("/:id", h.Users.GetUser)
			users.PUT("/:id", middleware.RequireAuth(), h.Users.UpdateUser)
			users.PATCH("/:id/password", middleware.RequireAuth(), h.Users.ChangePassword)
			users.DELETE("/:id", middleware.RequireAdmin(), h.Users.DeleteUser)
		}

		admins := api.Group("/admins")
		admins.Use(middleware.RequireAdmin())
		{
			admins.POST("", h.Admins.CreateAdmin)
			admins.GET("", h.Admins.ListAdmins)
			admins.GET("/:id", h.Admins.GetAdmin)
			admins.DELETE("/:id", h.Admins.DeleteAdmin)
		}

		boards := api.Group("/boards")
		boards.Use(middleware.RequireAuth())
		{
			boards.POST("", h.Boards.CreateBoard)
			boards.GET("", h.Boards.ListBoards)
			boards.GET("/:id", middleware.RequireBoardOwner(), h.Boards.GetBoard)
			boards.PUT("/:id", middleware.RequireBoardOwner(), h.Boards.UpdateBoard)
			boards.DELETE("/:id", middleware.RequireBoardOwner(), h.Boards.DeleteBoard)
		}

		lists := api.Group("/lists")
		lists.Use(middleware.RequireAuth())
		{
			lists.POST("", h.Boards.CreateList)
			lists.GET("", h.Boards.ListLists)
			lists.PUT("/:id", h.Boards.UpdateList)
			lists.GET("/:id/tasks", h.Tasks.ListListTasks)
			lists.DELETE("/:id", h.Boards.DeleteList)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.POST("", h.Tasks.CreateTask)
			tasks.GET("/highlighted", h.Tasks.ListHighlighted)
			tasks.GET("/:id", middleware.RequireTaskAccess(), h.Tasks.GetTask)
			tasks.PUT("/:id", middleware.RequireTaskAccess(), middleware.RequireTaskOwner(), h.Tasks.UpdateTask)
			tasks.PATCH("/:id/highlight", middleware.RequireTaskAccess(), middleware.RequireTaskOwner(), h.Tasks.ToggleHighlight)
			tasks.DELETE("/:id", middleware.RequireTaskAccess(), middleware.RequireTaskOwner(), h.Tasks.DeleteTask)
			tasks.POST("/:id/comments", middleware.RequireTaskAccess(), h.Tasks.AddComment)
			tasks.GET("/:id/comments", middleware.RequireTaskAccess(), h.Tasks.ListComments)
		}
	}

	return r
}
