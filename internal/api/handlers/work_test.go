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

// WorkHandlerTestSuite defines the test suite for WorkHandler
type WorkHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockWorkServiceInterface
	handler     *handlers.WorkHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockWorkServiceInterface(suite.ctrl)
	suite.handler = handlers.NewWorkHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	works := v1.Group("/works")
	{
		works.GET("", suite.handler.ListWorks)
		works.POST("", suite.handler.CreateWork)
		works.GET("/:id", suite.handler.GetWork)
		works.PUT("/:id", suite.handler.UpdateWork)
		works.DELETE("/:id", suite.handler.DeleteWork)
	}
}

// TearDownTest cleans up after each test
func (suite *WorkHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkHandlerTestSuite) TestCreateWork() {
	suite.T().Run("Success", func(t *testing.T) {
		workID := uuid.New()
		requestBody := map[string]interface{}{
			"title":            "The Long Draft",
			"phase":            "revising",
			"starting_balance": map[string]int{"word": 42000},
		}

		expectedResponse := &service.WorkResponse{
			ID:              workID,
			Title:           "The Long Draft",
			Phase:           models.WorkPhaseRevising,
			StartingBalance: models.MeasureMap{models.MeasureWord: 42000},
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/works", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.WorkResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "The Long Draft", response.Title)
		assert.Equal(t, models.WorkPhaseRevising, response.Phase)
	})

	suite.T().Run("Validation Error", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title": "Simmering",
			"phase": "simmering",
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("phase", "unknown phase \"simmering\"")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/works", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/works", "not an object")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *WorkHandlerTestSuite) TestGetWork() {
	suite.T().Run("Success", func(t *testing.T) {
		workID := uuid.New()
		expectedResponse := &service.WorkResponse{
			ID:    workID,
			Title: "The Long Draft",
			Phase: models.WorkPhaseDrafting,
		}

		suite.mockService.EXPECT().
			GetByID(suite.userID, workID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/works/%s", workID), nil)

		var response service.WorkResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, workID, response.ID)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		workID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(suite.userID, workID).
			Return(nil, apperrors.ErrWorkNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/works/%s", workID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *WorkHandlerTestSuite) TestListWorks() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []service.WorkResponse{
			{ID: uuid.New(), Title: "The Long Draft", Phase: models.WorkPhaseDrafting},
			{ID: uuid.New(), Title: "Short Story Collection", Phase: models.WorkPhasePlanning},
		}

		suite.mockService.EXPECT().
			List(suite.userID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/works", nil)

		var response []service.WorkResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})
}

func (suite *WorkHandlerTestSuite) TestUpdateWork() {
	suite.T().Run("Success", func(t *testing.T) {
		workID := uuid.New()
		requestBody := map[string]interface{}{
			"title": "The Long Draft, Revised",
			"phase": "revising",
		}

		expectedResponse := &service.WorkResponse{
			ID:    workID,
			Title: "The Long Draft, Revised",
			Phase: models.WorkPhaseRevising,
		}

		suite.mockService.EXPECT().
			Update(suite.userID, workID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/works/%s", workID), requestBody)

		var response service.WorkResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "The Long Draft, Revised", response.Title)
	})
}

func (suite *WorkHandlerTestSuite) TestDeleteWork() {
	suite.T().Run("Success", func(t *testing.T) {
		workID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.userID, workID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/works/%s", workID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		workID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.userID, workID).
			Return(apperrors.ErrWorkNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/works/%s", workID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestWorkHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkHandlerTestSuite))
}
