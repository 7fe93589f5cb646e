package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoDB(t *testing.T) *gorm.DB {
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
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com", PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func TestBoardRepository_FindWithContent(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewBoardRepository(db)
	tasks := NewTaskRepository(db)
	owner := createUser(t, db, "owner")

	board := &models.Board{Title: "b", Reason: models.ReasonWork, UserID: owner.ID}
	require.NoError(t, repo.Create(board))

	base := time.Now()
	for i, title := range []string{"first", "second"} {
		list := &models.List{Base: models.Base{CreatedAt: base.Add(time.Duration(i) * time.Minute)}, Title: title, BoardID: board.ID}
		require.NoError(t, repo.CreateList(list))
	}

	var first models.List
	require.NoError(t, db.Where("title = ?", "first").First(&first).Error)
	task := &models.Task{Title: "t", ListID: first.ID, AssigneeID: &owner.ID}
	require.NoError(t, tasks.Create(task))
	require.NoError(t, tasks.CreateComment(&models.Comment{Text: "c", TaskID: task.ID, AuthorID: &owner.ID}))

	got, err := repo.FindWithContent(board.ID)
	require.NoError(t, err)
	require.Len(t, got.Lists, 2)
	assert.Equal(t, "first", got.Lists[0].Title)
	assert.Equal(t, "second", got.Lists[1].Title)
	require.Len(t, got.Lists[0].Tasks, 1)
	require.Len(t, got.Lists[0].Tasks[0].Comments, 1)
	assert.Equal(t, "owner", got.Lists[0].Tasks[0].Comments[0].Author.Name)
	assert.Empty(t, got.Lists[1].Tasks)

	_, err = repo.FindWithContent(uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestBoardRepository_ListByOwner(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewBoardRepository(db)
	owner := createUser(t, db, "owner")

	base := time.Now()
	for i := 0; i < 5; i++ {
		board := &models.Board{Base: models.Base{CreatedAt: base.Add(time.Duration(i) * time.Minute)}, Title: string(rune('a' + i)), Reason: models.ReasonOther, UserID: owner.ID}
		require.NoError(t, repo.Create(board))
	}

	boards, total, err := repo.ListByOwner(owner.ID, utils.PaginationParams{Page: 2, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, boards, 2)
	// Newest first
	assert.Equal(t, "c", boards[0].Title)
	assert.Equal(t, "b", boards[1].Title)

	boards, total, err = repo.ListByOwner(uuid.New(), utils.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, boards)
}

func TestTaskRepository_FindBoardIDAndHighlight(t *testing.T) {
	db := setupRepoDB(t)
	boards := NewBoardRepository(db)
	repo := NewTaskRepository(db)
	owner := createUser(t, db, "owner")

	board := &models.Board{Title: "b", Reason: models.ReasonOther, UserID: owner.ID}
	require.NoError(t, boards.Create(board))
	list := &models.List{Title: "l", BoardID: board.ID}
	require.NoError(t, boards.CreateList(list))
	task := &models.Task{Title: "t", ListID: list.ID, AssigneeID: &owner.ID}
	require.NoError(t, repo.Create(task))

	boardID, err := repo.FindBoardID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, board.ID, boardID)

	_, err = repo.FindBoardID(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.SetHighlight(task.ID, true))
	highlighted, err := repo.ListHighlighted(owner.ID, true)
	require.NoError(t, err)
	require.Len(t, highlighted, 1)
	assert.Equal(t, task.ID, highlighted[0].ID)

	assert.ErrorIs(t, repo.SetHighlight(uuid.New(), true), gorm.ErrRecordNotFound)
}

func TestUserRepository_UpdatePasswordWithLog(t *testing.T) {
	db := setupRepoDB(t)
	users := NewUserRepository(db)
	logs := NewLogRepository(db)
	user := createUser(t, db, "owner")

	entry := &models.Log{Description: "Password changed", UserID: &user.ID}
	require.NoError(t, users.UpdatePasswordWithLog(user.ID, "new-hash", entry))

	got, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)

	entries, err := logs.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Password changed", entries[0].Description)
}

func TestUserRepository_UpdatePasswordWithLogRollsBack(t *testing.T) {
	db := setupRepoDB(t)
	users := NewUserRepository(db)
	user := createUser(t, db, "owner")

	// A log pointing at a missing admin violates the foreign key
	missing := uuid.New()
	entry := &models.Log{Description: "Password changed", UserID: &user.ID, AdminID: &missing}
	err := users.UpdatePasswordWithLog(user.ID, "new-hash", entry)
	require.ErrorIs(t, err, ErrCreateLog)

	got, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)

	err = users.UpdatePasswordWithLog(uuid.New(), "new-hash", &models.Log{Description: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdminRepository(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewAdminRepository(db)

	admin := &models.Admin{Name: "Administrator", Email: "root@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(admin))

	got, err := repo.FindByEmail("root@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)

	_, err = repo.FindByID(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
