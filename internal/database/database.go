package database

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Lucassfers/My-task-back-end/internal/config"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Dialector picks the GORM driver for cfg.DBDriver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		// Referential actions are enforced by the application, but the
		// constraints still guard against out-of-order writes.
		return sqlite.Open(cfg.DBPath + "?_foreign_keys=1"), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

func Connect(cfg *config.Config) error {
	dialector, err := Dialector(cfg)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established", "driver", cfg.DBDriver)
	return nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logger.Info
	case "ERROR":
		return logger.Error
	default:
		return logger.Warn
	}
}

// Models lists every table in dependency order, parents first.
func Models() []any {
	return []any{
		&models.Admin{},
		&models.User{},
		&models.Board{},
		&models.List{},
		&models.Task{},
		&models.Comment{},
		&models.Log{},
	}
}

func Migrate() error {
	slog.Info("running database migrations")
	if err := DB.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
