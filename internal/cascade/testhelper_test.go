package cascade

import (
	"testing"
	"time"

	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with foreign keys enforced,
// so deleting a parent before its children fails the same way it would in
// production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database
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

func ptr[T any](v T) *T {
	return &v
}

func createAdmin(t *testing.T, db *gorm.DB, name string) *models.Admin {
	t.Helper()
	admin := &models.Admin{Name: name, Email: name + "@example.com", PasswordHash: "hashed"}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func createUser(t *testing.T, db *gorm.DB, name string, adminID *uuid.UUID) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com", PasswordHash: "hashed", AdminID: adminID}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createBoard(t *testing.T, db *gorm.DB, title string, ownerID uuid.UUID, adminID *uuid.UUID) *models.Board {
	t.Helper()
	board := &models.Board{Title: title, Reason: models.ReasonWork, UserID: ownerID, AdminID: adminID}
	require.NoError(t, db.Create(board).Error)
	return board
}

func createList(t *testing.T, db *gorm.DB, title string, boardID uuid.UUID) *models.List {
	t.Helper()
	list := &models.List{Title: title, BoardID: boardID}
	require.NoError(t, db.Create(list).Error)
	return list
}

func createTask(t *testing.T, db *gorm.DB, title string, listID, assigneeID uuid.UUID) *models.Task {
	t.Helper()
	due := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	task := &models.Task{Title: title, Description: "Test Description", DueDate: &due, ListID: listID, AssigneeID: ptr(assigneeID)}
	require.NoError(t, db.Create(task).Error)
	return task
}

func createComment(t *testing.T, db *gorm.DB, text string, taskID uuid.UUID, authorID *uuid.UUID) *models.Comment {
	t.Helper()
	comment := &models.Comment{Text: text, TaskID: taskID, AuthorID: authorID}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func createLog(t *testing.T, db *gorm.DB, description string, userID, adminID *uuid.UUID) *models.Log {
	t.Helper()
	entry := &models.Log{Description: description, UserID: userID, AdminID: adminID}
	require.NoError(t, db.Create(entry).Error)
	return entry
}

// userScenario is the reference data set for a user deletion:
//
//	U owns board B -> list L -> task T1 (comments C1 by V, C2 by U)
//	V owns board B2 -> list L2 -> task T2 assigned to U (comment C3 by V)
//	                           -> task T3 assigned to V (comment C4 by U)
//	logs G1, G2 reference U; G3 references V
type userScenario struct {
	U, V           *models.User
	B, B2          *models.Board
	L, L2          *models.List
	T1, T2, T3     *models.Task
	C1, C2, C3, C4 *models.Comment
	G1, G2, G3     *models.Log
}

func seedUserScenario(t *testing.T, db *gorm.DB) *userScenario {
	t.Helper()
	s := &userScenario{}

	s.U = createUser(t, db, "usera", nil)
	s.V = createUser(t, db, "userb", nil)

	s.B = createBoard(t, db, "U board", s.U.ID, nil)
	s.L = createList(t, db, "U list", s.B.ID)
	s.T1 = createTask(t, db, "T1", s.L.ID, s.V.ID)
	s.C1 = createComment(t, db, "first", s.T1.ID, ptr(s.V.ID))
	s.C2 = createComment(t, db, "second", s.T1.ID, ptr(s.U.ID))

	s.B2 = createBoard(t, db, "V board", s.V.ID, nil)
	s.L2 = createList(t, db, "V list", s.B2.ID)
	s.T2 = createTask(t, db, "T2", s.L2.ID, s.U.ID)
	s.C3 = createComment(t, db, "on T2", s.T2.ID, ptr(s.V.ID))
	s.T3 = createTask(t, db, "T3", s.L2.ID, s.V.ID)
	s.C4 = createComment(t, db, "by U elsewhere", s.T3.ID, ptr(s.U.ID))

	s.G1 = createLog(t, db, "password changed", ptr(s.U.ID), nil)
	s.G2 = createLog(t, db, "wrong password", ptr(s.U.ID), nil)
	s.G3 = createLog(t, db, "password changed", ptr(s.V.ID), nil)

	return s
}

// storeState is every row of every table, used to prove a rollback left
// nothing behind.
type storeState struct {
	Admins   []models.Admin
	Users    []models.User
	Boards   []models.Board
	Lists    []models.List
	Tasks    []models.Task
	Comments []models.Comment
	Logs     []models.Log
}

func captureState(t *testing.T, db *gorm.DB) storeState {
	t.Helper()
	var s storeState
	require.NoError(t, db.Order("id").Find(&s.Admins).Error)
	require.NoError(t, db.Order("id").Find(&s.Users).Error)
	require.NoError(t, db.Order("id").Find(&s.Boards).Error)
	require.NoError(t, db.Order("id").Find(&s.Lists).Error)
	require.NoError(t, db.Order("id").Find(&s.Tasks).Error)
	require.NoError(t, db.Order("id").Find(&s.Comments).Error)
	require.NoError(t, db.Order("id").Find(&s.Logs).Error)
	return s
}

func exists(t *testing.T, db *gorm.DB, model any, id uuid.UUID) bool {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Where("id = ?", id).Count(&count).Error)
	return count == 1
}
