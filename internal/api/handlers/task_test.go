package handlers_test

import (
	"net/http"
	"testing"

	"trackflow-backend/internal/api/handlers"
	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/mocks"
	"trackflow-backend/internal/service"
	"trackflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TaskHandlerTestSuite covers tasks with their comments and time logs
type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	tasks     *mocks.MockTaskServiceInterface
	comments  *mocks.MockCommentServiceInterface
	timeLogs  *mocks.MockTimeLogServiceInterface
	httpSuite *testutils.HTTPTestSuite
	actor     service.Actor
}

// SetupTest sets up the test suite
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tasks = mocks.NewMockTaskServiceInterface(suite.ctrl)
	suite.comments = mocks.NewMockCommentServiceInterface(suite.ctrl)
	suite.timeLogs = mocks.NewMockTimeLogServiceInterface(suite.ctrl)
	suite.actor = service.Actor{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	taskHandler := handlers.NewTaskHandler(suite.tasks)
	commentHandler := handlers.NewCommentHandler(suite.comments)
	timeLogHandler := handlers.NewTimeLogHandler(suite.timeLogs)

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.actor)
	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.POST("/projects/:id/tasks", taskHandler.CreateTask)
		v1.GET("/projects/:id/tasks", taskHandler.ListTasks)
		v1.GET("/tasks/:id", taskHandler.GetTask)
		v1.GET("/tasks/:id/subtasks", taskHandler.ListSubtasks)
		v1.PUT("/tasks/:id", taskHandler.UpdateTask)
		v1.DELETE("/tasks/:id", taskHandler.DeleteTask)

		v1.POST("/tasks/:id/comments", commentHandler.AddComment)
		v1.GET("/tasks/:id/comments", commentHandler.ListComments)
		v1.DELETE("/comments/:id", commentHandler.DeleteComment)

		v1.POST("/tasks/:id/time-logs", timeLogHandler.LogTime)
		v1.GET("/tasks/:id/time-logs", timeLogHandler.ListTimeLogs)
		v1.DELETE("/time-logs/:id", timeLogHandler.DeleteTimeLog)
	}
}

// TearDownTest cleans up after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskHandlerTestSuite) TestCreateSubtask() {
	projectID := uuid.New()
	parentID := uuid.New()
	req := &service.CreateTaskRequest{Title: "Write copy", ParentID: &parentID, Priority: models.TaskPriorityHigh}
	created := &models.Task{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: projectID,
		ParentID:  &parentID,
		Title:     "Write copy",
		Status:    models.TaskStatusTodo,
		Priority:  models.TaskPriorityHigh,
	}
	suite.tasks.EXPECT().Create(gomock.Any(), suite.actor, projectID, req).Return(created, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/projects/"+projectID.String()+"/tasks", map[string]interface{}{
		"title":     "Write copy",
		"parent_id": parentID,
		"priority":  "high",
	})

	var response models.Task
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Require().NotNil(response.ParentID)
	suite.Equal(parentID, *response.ParentID)
}

func (suite *TaskHandlerTestSuite) TestCreateTaskInvalidParent() {
	projectID := uuid.New()
	suite.tasks.EXPECT().Create(gomock.Any(), suite.actor, projectID, gomock.Any()).Return(nil, apperrors.ErrInvalidParentTask)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/projects/"+projectID.String()+"/tasks", map[string]interface{}{
		"title":     "Too deep",
		"parent_id": uuid.New(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "parent_id")
}

func (suite *TaskHandlerTestSuite) TestListTasksFilters() {
	projectID := uuid.New()
	assignee := uuid.New()
	suite.tasks.EXPECT().
		ListByProject(gomock.Any(), suite.actor, projectID, models.TaskStatusInProgress, &assignee).
		Return([]models.Task{{Title: "Ship it"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/projects/"+projectID.String()+"/tasks?status=in_progress&assignee_id="+assignee.String(), nil)

	var response []models.Task
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal("Ship it", response[0].Title)
}

func (suite *TaskHandlerTestSuite) TestListTasksWithoutFilters() {
	projectID := uuid.New()
	suite.tasks.EXPECT().
		ListByProject(gomock.Any(), suite.actor, projectID, models.TaskStatus(""), gomock.Nil()).
		Return([]models.Task{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/tasks", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *TaskHandlerTestSuite) TestListTasksInvalidAssignee() {
	projectID := uuid.New()

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/tasks?assignee_id=bob", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid assignee ID")
}

func (suite *TaskHandlerTestSuite) TestListSubtasks() {
	id := uuid.New()
	suite.tasks.EXPECT().ListSubtasks(gomock.Any(), suite.actor, id).Return([]models.Task{{ParentID: &id}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks/"+id.String()+"/subtasks", nil)

	var response []models.Task
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask() {
	id := uuid.New()
	status := models.TaskStatusDone
	suite.tasks.EXPECT().
		Update(gomock.Any(), suite.actor, id, &service.UpdateTaskRequest{Status: &status}).
		Return(&models.Task{BaseModel: models.BaseModel{ID: id}, Status: status}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/tasks/"+id.String(), map[string]string{"status": "done"})

	var response models.Task
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.TaskStatusDone, response.Status)
}

func (suite *TaskHandlerTestSuite) TestDeleteTaskForbidden() {
	id := uuid.New()
	suite.tasks.EXPECT().Delete(gomock.Any(), suite.actor, id).Return(apperrors.ErrNotResourceAuthor)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/tasks/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "author")
}

func (suite *TaskHandlerTestSuite) TestGetTaskNotFound() {
	id := uuid.New()
	suite.tasks.EXPECT().GetByID(gomock.Any(), suite.actor, id).Return(nil, apperrors.ErrTaskNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "task not found")
}

func (suite *TaskHandlerTestSuite) TestAddComment() {
	taskID := uuid.New()
	suite.comments.EXPECT().
		Add(gomock.Any(), suite.actor, taskID, &service.CreateCommentRequest{Body: "Looks good"}).
		Return(&models.Comment{TaskID: taskID, AuthorID: suite.actor.ID, Body: "Looks good"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks/"+taskID.String()+"/comments", map[string]string{"body": "Looks good"})

	var response models.Comment
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("Looks good", response.Body)
}

func (suite *TaskHandlerTestSuite) TestDeleteComment() {
	id := uuid.New()
	suite.comments.EXPECT().Delete(gomock.Any(), suite.actor, id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/comments/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *TaskHandlerTestSuite) TestLogTime() {
	taskID := uuid.New()
	suite.timeLogs.EXPECT().
		Log(gomock.Any(), suite.actor, taskID, &service.CreateTimeLogRequest{Minutes: 90, Note: "pairing"}).
		Return(&models.TimeLog{TaskID: taskID, UserID: suite.actor.ID, Minutes: 90, Note: "pairing"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks/"+taskID.String()+"/time-logs", map[string]interface{}{"minutes": 90, "note": "pairing"})

	var response models.TimeLog
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(90, response.Minutes)
}

func (suite *TaskHandlerTestSuite) TestListTimeLogs() {
	taskID := uuid.New()
	suite.timeLogs.EXPECT().ListByTask(gomock.Any(), suite.actor, taskID).Return(&service.TimeLogListResponse{
		TimeLogs:     []models.TimeLog{{Minutes: 30}, {Minutes: 45}},
		TotalMinutes: 75,
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks/"+taskID.String()+"/time-logs", nil)

	var response service.TimeLogListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(75), response.TotalMinutes)
	suite.Len(response.TimeLogs, 2)
}

func (suite *TaskHandlerTestSuite) TestDeleteTimeLogInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/time-logs/abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid time log ID")
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
