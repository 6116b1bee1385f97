package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"writing-tracker-backend/internal/api/handlers"
	"writing-tracker-backend/internal/database/models"
	apperrors "writing-tracker-backend/internal/errors"
	mocks "writing-tracker-backend/internal/mocks/servicemocks"
	"writing-tracker-backend/internal/service"
	"writing-tracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GoalHandlerTestSuite defines the test suite for GoalHandler
type GoalHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockGoalServiceInterface
	handler     *handlers.GoalHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *GoalHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGoalServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGoalHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	goals := v1.Group("/goals")
	{
		goals.GET("", suite.handler.ListGoals)
		goals.POST("", suite.handler.CreateGoal)
		goals.GET("/:id", suite.handler.GetGoal)
		goals.PUT("/:id", suite.handler.UpdateGoal)
		goals.DELETE("/:id", suite.handler.DeleteGoal)
	}
}

// TearDownTest cleans up after each test
func (suite *GoalHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GoalHandlerTestSuite) TestCreateGoal() {
	suite.T().Run("Success", func(t *testing.T) {
		goalID := uuid.New()
		requestBody := map[string]interface{}{
			"title": "Finish the draft",
			"type":  "target",
			"target": map[string]interface{}{
				"measure": "word",
				"count":   50000,
			},
		}

		expectedResponse := &service.GoalResponse{
			ID:     goalID,
			Title:  "Finish the draft",
			Type:   models.GoalTypeTarget,
			Target: &models.TargetParams{Measure: models.MeasureWord, Count: 50000},
			Evaluation: service.GoalEvaluation{
				Progress: models.MeasureMap{models.MeasureWord: 12000},
			},
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/goals", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.GoalResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Finish the draft", response.Title)
		assert.Equal(t, 12000, response.Evaluation.Progress.Get(models.MeasureWord))
	})

	suite.T().Run("Invalid Date Range", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":      "Backwards",
			"type":       "target",
			"start_date": "2026-02-01",
			"end_date":   "2026-01-01",
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrInvalidDateRange).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/goals", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *GoalHandlerTestSuite) TestGetGoal() {
	suite.T().Run("Success With Evaluation", func(t *testing.T) {
		goalID := uuid.New()
		expectedResponse := &service.GoalResponse{
			ID:    goalID,
			Title: "Write daily",
			Type:  models.GoalTypeHabit,
			Habit: &models.HabitParams{
				Cadence: models.Cadence{Unit: models.CadenceUnitDay, Period: 1},
			},
			Evaluation: service.GoalEvaluation{
				Achieved: true,
				Streak:   3,
			},
		}

		suite.mockService.EXPECT().
			GetByID(suite.userID, goalID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/goals/%s", goalID), nil)

		var response service.GoalResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 3, response.Evaluation.Streak)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		goalID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(suite.userID, goalID).
			Return(nil, apperrors.ErrGoalNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/goals/%s", goalID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *GoalHandlerTestSuite) TestListGoals() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []service.GoalResponse{
			{ID: uuid.New(), Title: "Finish the draft", Type: models.GoalTypeTarget},
			{ID: uuid.New(), Title: "Write daily", Type: models.GoalTypeHabit},
		}

		suite.mockService.EXPECT().
			List(suite.userID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/goals", nil)

		var response []service.GoalResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})
}

func (suite *GoalHandlerTestSuite) TestDeleteGoal() {
	suite.T().Run("Success", func(t *testing.T) {
		goalID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.userID, goalID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/goals/%s", goalID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestGoalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GoalHandlerTestSuite))
}
