package database

import (
	"fmt"
	"log/slog"

	"github.com/Lucassfers/My-task-back-end/internal/models"
	"gorm.io/gorm"
)

// AddIndexes makes sure every foreign key the cascade walks is indexed, so
// collecting children never scans a whole table.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model  any
		name   string
		column string
	}{
		{&models.User{}, "idx_users_admin_id", "admin_id"},

		{&models.Board{}, "idx_boards_user_id", "user_id"},
		{&models.Board{}, "idx_boards_admin_id", "admin_id"},

		{&models.List{}, "idx_lists_board_id", "board_id"},

		{&models.Task{}, "idx_tasks_list_id", "list_id"},
		{&models.Task{}, "idx_tasks_assignee_id", "assignee_id"},
		{&models.Task{}, "idx_tasks_highlight", "highlight"},

		{&models.Comment{}, "idx_comments_task_id", "task_id"},
		{&models.Comment{}, "idx_comments_author_id", "author_id"},

		{&models.Log{}, "idx_logs_user_id", "user_id"},
		{&models.Log{}, "idx_logs_admin_id", "admin_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}
		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.column)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", stmt.Schema.Table, "column", idx.column)
	}

	return nil
}

// MigrateDatabase runs all database migrations
func MigrateDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}
