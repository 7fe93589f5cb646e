package main

import (
	"errors"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/Lucassfers/My-task-back-end/internal/config"
	"github.com/Lucassfers/My-task-back-end/internal/database"
	"github.com/Lucassfers/My-task-back-end/internal/router"
	"github.com/Lucassfers/My-task-back-end/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (environment is used when empty)")
	envFile := flag.String("env-file", ".env", "Path to a .env file loaded before reading the environment")
	migrateOnly := flag.Bool("migrate-only", false, "Run database migrations and exit")
	flag.Parse()

	// A missing .env file is fine; real deployments set the environment directly
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Failed to load %s: %v", *envFile, err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := mustMakeLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.MigrateDatabase(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if *migrateOnly {
		logger.Info("migrations completed, exiting")
		return
	}

	svc := router.NewServices(database.GetDB(), logger)
	ensureBootstrapAdmin(cfg, svc.Auth, logger)

	store, err := router.NewSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	r := router.New(cfg, database.GetDB(), store, router.NewHandlers(svc))

	logger.Info("server starting", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// ensureBootstrapAdmin creates the first admin so the admin-only routes are
// reachable on a fresh database.
func ensureBootstrapAdmin(cfg *config.Config, auth *services.AuthService, logger *slog.Logger) {
	if cfg.AdminEmail == "" {
		return
	}

	admin, err := auth.CreateAdmin(services.SignupInput{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		logger.Debug("bootstrap admin already exists", "email", cfg.AdminEmail)
	case err != nil:
		log.Fatalf("Failed to create bootstrap admin: %v", err)
	default:
		logger.Info("bootstrap admin created", "id", admin.ID)
	}
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
