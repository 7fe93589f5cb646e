package services

import (
	"testing"

	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const strongPassword = "Sup3r$ecret"

type serviceTestEnv struct {
	db     *gorm.DB
	auth   *AuthService
	boards *BoardService
	tasks  *TaskService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Board{},
		&models.List{},
		&models.Task{},
		&models.Comment{},
		&models.Log{},
	))

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)

	return serviceTestEnv{
		db:     db,
		auth:   NewAuthService(userRepo, repository.NewAdminRepository(db), repository.NewLogRepository(db)),
		boards: NewBoardService(boardRepo),
		tasks:  NewTaskService(repository.NewTaskRepository(db), boardRepo, userRepo),
	}
}

func (env serviceTestEnv) signup(t *testing.T, name string) *models.User {
	t.Helper()
	user, err := env.auth.Signup(SignupInput{Name: name, Email: name + "@example.com", Password: strongPassword})
	require.NoError(t, err)
	return user
}
