package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lucassfers/My-task-back-end/internal/cascade"
	"github.com/Lucassfers/My-task-back-end/internal/constants"
	"github.com/Lucassfers/My-task-back-end/internal/dto"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/repository"
	"github.com/Lucassfers/My-task-back-end/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.db = setupTestDB(suite.T())

	boardRepo := repository.NewBoardRepository(suite.db)
	taskService := services.NewTaskService(
		repository.NewTaskRepository(suite.db),
		boardRepo,
		repository.NewUserRepository(suite.db),
	)
	deletion := services.NewDeletionService(cascade.NewEngine(suite.db, cascade.DefaultGraph(), nil))
	suite.handler = NewTaskHandler(taskService, deletion)
}

// Helper function to create test data
func (suite *TaskHandlerTestSuite) createTestUser(name string) *models.User {
	user := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hashedpassword",
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *TaskHandlerTestSuite) createTestList(owner *models.User) *models.List {
	board := &models.Board{Title: "Board", Reason: models.ReasonWork, UserID: owner.ID}
	suite.Require().NoError(suite.db.Create(board).Error)
	list := &models.List{Title: "List", BoardID: board.ID}
	suite.Require().NoError(suite.db.Create(list).Error)
	return list
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, list *models.List, assignee *models.User) *models.Task {
	task := &models.Task{
		Title:       title,
		Description: "Test Description",
		ListID:      list.ID,
		AssigneeID:  &assignee.ID,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

// Helper function to create authenticated context
func (suite *TaskHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uuid.UUID) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

// Helper function to set task context (simulates RequireTaskAccess middleware)
func (suite *TaskHandlerTestSuite) setTaskContext(c *gin.Context, task models.Task) {
	c.Set(constants.ContextKeyTask, task)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	owner := suite.createTestUser("owner")
	helper := suite.createTestUser("helper")
	list := suite.createTestList(owner)

	due := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	body, _ := json.Marshal(map[string]any{
		"title":       "New Task",
		"description": "New Description",
		"due_date":    due,
		"list_id":     list.ID,
		"assignee_id": helper.ID,
	})

	c, w := suite.createAuthContext("POST", "/api/tasks", body, owner.ID)
	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "New Task", response.Title)
	suite.Require().NotNil(response.AssigneeID)
	assert.Equal(suite.T(), helper.ID, *response.AssigneeID)
	suite.Require().NotNil(response.DueDate)
	assert.True(suite.T(), due.Equal(*response.DueDate))
}

func (suite *TaskHandlerTestSuite) TestCreateTask_ForeignList() {
	owner := suite.createTestUser("owner")
	intruder := suite.createTestUser("intruder")
	list := suite.createTestList(owner)

	body, _ := json.Marshal(map[string]any{
		"title":       "Sneaky",
		"list_id":     list.ID,
		"assignee_id": intruder.ID,
	})

	c, w := suite.createAuthContext("POST", "/api/tasks", body, intruder.ID)
	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_InvalidBody() {
	owner := suite.createTestUser("owner")

	body, _ := json.Marshal(map[string]any{
		"title":       "Missing list",
		"assignee_id": "not-a-uuid",
	})

	c, w := suite.createAuthContext("POST", "/api/tasks", body, owner.ID)
	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGetTask_WithComments() {
	owner := suite.createTestUser("owner")
	list := suite.createTestList(owner)
	task := suite.createTestTask("Test Task", list, owner)
	suite.Require().NoError(suite.db.Create(&models.Comment{Text: "first", TaskID: task.ID, AuthorID: &owner.ID}).Error)

	c, w := suite.createAuthContext("GET", "/api/tasks/"+task.ID.String(), nil, owner.ID)
	suite.setTaskContext(c, *task)

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Comments, 1)
	suite.Require().NotNil(response.Comments[0].Author)
	assert.Equal(suite.T(), "owner", response.Comments[0].Author.Name)
}

func (suite *TaskHandlerTestSuite) TestGetTask_MissingContext() {
	owner := suite.createTestUser("owner")

	c, w := suite.createAuthContext("GET", "/api/tasks/x", nil, owner.ID)
	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func (suite *TaskHandlerTestSuite) TestToggleHighlight() {
	owner := suite.createTestUser("owner")
	list := suite.createTestList(owner)
	task := suite.createTestTask("Test Task", list, owner)

	c, w := suite.createAuthContext("PATCH", "/api/tasks/"+task.ID.String()+"/highlight", nil, owner.ID)
	suite.setTaskContext(c, *task)

	suite.handler.ToggleHighlight(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Task
	suite.db.First(&updated, "id = ?", task.ID)
	assert.True(suite.T(), updated.Highlight)
}

func (suite *TaskHandlerTestSuite) TestListHighlighted() {
	owner := suite.createTestUser("owner")
	list := suite.createTestList(owner)
	starred := suite.createTestTask("Starred", list, owner)
	suite.createTestTask("Plain", list, owner)
	suite.db.Model(starred).Update("highlight", true)

	c, w := suite.createAuthContext("GET", "/api/tasks/highlighted", nil, owner.ID)
	suite.handler.ListHighlighted(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Tasks []dto.TaskDTO `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Tasks, 1)
	assert.Equal(suite.T(), "Starred", response.Tasks[0].Title)

	c, w = suite.createAuthContext("GET", "/api/tasks/highlighted?value=false", nil, owner.ID)
	suite.handler.ListHighlighted(c)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Tasks, 1)
	assert.Equal(suite.T(), "Plain", response.Tasks[0].Title)

	c, w = suite.createAuthContext("GET", "/api/tasks/highlighted?value=maybe", nil, owner.ID)
	suite.handler.ListHighlighted(c)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestAddAndListComments() {
	owner := suite.createTestUser("owner")
	helper := suite.createTestUser("helper")
	list := suite.createTestList(owner)
	task := suite.createTestTask("Test Task", list, helper)

	body, _ := json.Marshal(map[string]string{"text": "On it"})
	c, w := suite.createAuthContext("POST", "/api/tasks/"+task.ID.String()+"/comments", body, helper.ID)
	suite.setTaskContext(c, *task)
	suite.handler.AddComment(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	body, _ = json.Marshal(map[string]string{"text": "   "})
	c, w = suite.createAuthContext("POST", "/api/tasks/"+task.ID.String()+"/comments", body, helper.ID)
	suite.setTaskContext(c, *task)
	suite.handler.AddComment(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	c, w = suite.createAuthContext("GET", "/api/tasks/"+task.ID.String()+"/comments", nil, owner.ID)
	suite.setTaskContext(c, *task)
	suite.handler.ListComments(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response struct {
		Comments []dto.CommentDTO `json:"comments"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Comments, 1)
	assert.Equal(suite.T(), "On it", response.Comments[0].Text)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_ReportsAffectedRows() {
	owner := suite.createTestUser("owner")
	list := suite.createTestList(owner)
	task := suite.createTestTask("Doomed", list, owner)
	for _, text := range []string{"one", "two"} {
		suite.Require().NoError(suite.db.Create(&models.Comment{Text: text, TaskID: task.ID, AuthorID: &owner.ID}).Error)
	}

	c, w := suite.createAuthContext("DELETE", "/api/tasks/"+task.ID.String(), nil, owner.ID)
	suite.setTaskContext(c, *task)
	suite.handler.DeleteTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Message     string           `json:"message"`
		DeletedRoot dto.TaskDTO      `json:"deleted_root"`
		Affected    map[string]int64 `json:"affected"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), task.ID, response.DeletedRoot.ID)
	assert.Equal(suite.T(), int64(2), response.Affected["comments_deleted"])

	var count int64
	suite.db.Model(&models.Comment{}).Count(&count)
	assert.Zero(suite.T(), count)

	// Deleting again finds nothing
	c, w = suite.createAuthContext("DELETE", "/api/tasks/"+task.ID.String(), nil, owner.ID)
	suite.setTaskContext(c, *task)
	suite.handler.DeleteTask(c)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask() {
	owner := suite.createTestUser("owner")
	helper := suite.createTestUser("helper")
	list := suite.createTestList(owner)
	target := suite.createTestList(owner)
	foreign := suite.createTestList(helper)
	task := suite.createTestTask("Draft", list, owner)

	tests := []struct {
		name     string
		payload  map[string]any
		wantCode int
	}{
		{"malformed list id", map[string]any{"list_id": "nope"}, http.StatusBadRequest},
		{"list on a foreign board", map[string]any{"list_id": foreign.ID}, http.StatusNotFound},
		{"unknown assignee", map[string]any{"assignee_id": uuid.New()}, http.StatusBadRequest},
		{"success", map[string]any{"title": "Final", "list_id": target.ID, "assignee_id": helper.ID}, http.StatusOK},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body, _ := json.Marshal(tt.payload)
			c, w := suite.createAuthContext("PUT", "/api/tasks/"+task.ID.String(), body, owner.ID)
			suite.setTaskContext(c, *task)
			suite.handler.UpdateTask(c)
			suite.Require().Equal(tt.wantCode, w.Code, w.Body.String())
		})
	}

	var reloaded models.Task
	suite.Require().NoError(suite.db.First(&reloaded, "id = ?", task.ID).Error)
	assert.Equal(suite.T(), "Final", reloaded.Title)
	assert.Equal(suite.T(), target.ID, reloaded.ListID)
	suite.Require().NotNil(reloaded.AssigneeID)
	assert.Equal(suite.T(), helper.ID, *reloaded.AssigneeID)
}

func (suite *TaskHandlerTestSuite) TestListListTasks() {
	owner := suite.createTestUser("owner")
	intruder := suite.createTestUser("intruder")
	list := suite.createTestList(owner)
	suite.createTestTask("one", list, owner)
	suite.createTestTask("two", list, owner)

	c, w := suite.createAuthContext("GET", "/api/lists/"+list.ID.String()+"/tasks", nil, owner.ID)
	c.Params = gin.Params{{Key: "id", Value: list.ID.String()}}
	suite.handler.ListListTasks(c)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Tasks []dto.TaskDTO `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response.Tasks, 2)

	c, w = suite.createAuthContext("GET", "/api/lists/"+list.ID.String()+"/tasks", nil, intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: list.ID.String()}}
	suite.handler.ListListTasks(c)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestTaskHandlerTestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
