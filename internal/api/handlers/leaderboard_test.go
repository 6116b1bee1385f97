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

// LeaderboardHandlerTestSuite defines the test suite for LeaderboardHandler
type LeaderboardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLeaderboardServiceInterface
	handler     *handlers.LeaderboardHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *LeaderboardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLeaderboardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLeaderboardHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	leaderboards := v1.Group("/leaderboards")
	{
		leaderboards.POST("", suite.handler.CreateLeaderboard)
		leaderboards.GET("/by-code/:code", suite.handler.GetLeaderboardByJoinCode)
		leaderboards.GET("/:id", suite.handler.GetLeaderboard)
		leaderboards.PUT("/:id", suite.handler.UpdateLeaderboard)
		leaderboards.DELETE("/:id", suite.handler.DeleteLeaderboard)
		leaderboards.PUT("/:id/star", suite.handler.StarLeaderboard)
		leaderboards.GET("/:id/standings", suite.handler.GetStandings)
	}
}

// TearDownTest cleans up after each test
func (suite *LeaderboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeaderboardHandlerTestSuite) TestCreateLeaderboard() {
	suite.T().Run("Success", func(t *testing.T) {
		boardID := uuid.New()
		requestBody := map[string]interface{}{
			"title":       "November Novel Sprint",
			"measures":    []string{"word"},
			"goal":        map[string]int{"word": 50000},
			"is_joinable": true,
		}

		expectedResponse := &service.LeaderboardResponse{
			ID:         boardID,
			Title:      "November Novel Sprint",
			Measures:   models.MeasureList{models.MeasureWord},
			Goal:       models.MeasureMap{models.MeasureWord: 50000},
			IsJoinable: true,
			JoinCode:   "a1b2c3d4e5f60718",
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/leaderboards", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.LeaderboardResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "November Novel Sprint", response.Title)
		assert.NotEmpty(t, response.JoinCode)
	})

	suite.T().Run("Validation Error", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":    "Broken",
			"measures": []string{"furlong"},
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("measures", "unknown measure \"furlong\"")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/leaderboards", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *LeaderboardHandlerTestSuite) TestGetLeaderboard() {
	suite.T().Run("Success", func(t *testing.T) {
		boardID := uuid.New()
		expectedResponse := &service.LeaderboardResponse{
			ID:    boardID,
			Title: "November Novel Sprint",
		}

		suite.mockService.EXPECT().
			GetByID(suite.userID, boardID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/leaderboards/%s", boardID), nil)

		var response service.LeaderboardResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, boardID, response.ID)
	})

	// Private boards are indistinguishable from missing ones
	suite.T().Run("Invisible", func(t *testing.T) {
		boardID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(suite.userID, boardID).
			Return(nil, apperrors.ErrLeaderboardNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/leaderboards/%s", boardID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *LeaderboardHandlerTestSuite) TestGetLeaderboardByJoinCode() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.LeaderboardResponse{
			ID:       uuid.New(),
			Title:    "November Novel Sprint",
			JoinCode: "nov-sprint-2026",
		}

		suite.mockService.EXPECT().
			GetByJoinCode(suite.userID, "nov-sprint-2026").
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leaderboards/by-code/nov-sprint-2026", nil)

		var response service.LeaderboardResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "nov-sprint-2026", response.JoinCode)
	})
}

func (suite *LeaderboardHandlerTestSuite) TestUpdateLeaderboard() {
	suite.T().Run("Not An Owner", func(t *testing.T) {
		boardID := uuid.New()
		requestBody := map[string]interface{}{
			"title":    "Renamed",
			"measures": []string{"word"},
		}

		suite.mockService.EXPECT().
			Update(suite.userID, boardID, gomock.Any()).
			Return(nil, apperrors.ErrNotBoardOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/leaderboards/%s", boardID), requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func (suite *LeaderboardHandlerTestSuite) TestStarLeaderboard() {
	suite.T().Run("Success", func(t *testing.T) {
		boardID := uuid.New()
		requestBody := map[string]interface{}{
			"starred": true,
		}

		suite.mockService.EXPECT().
			Star(suite.userID, boardID, true).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/leaderboards/%s/star", boardID), requestBody)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func (suite *LeaderboardHandlerTestSuite) TestGetStandings() {
	suite.T().Run("Success", func(t *testing.T) {
		boardID := uuid.New()
		expectedResponse := &service.AggregationResponse{
			LeaderboardID: boardID,
			Participants: []service.ParticipantStanding{
				{MemberID: uuid.New(), Rank: 1, Percent: 1.0},
				{MemberID: uuid.New(), Rank: 2, Percent: 0.5},
			},
		}

		suite.mockService.EXPECT().
			Aggregate(suite.userID, boardID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/leaderboards/%s/standings", boardID), nil)

		var response service.AggregationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Participants, 2)
		assert.Equal(t, 1, response.Participants[0].Rank)
	})
}

func (suite *LeaderboardHandlerTestSuite) TestDeleteLeaderboard() {
	suite.T().Run("Success", func(t *testing.T) {
		boardID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.userID, boardID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/leaderboards/%s", boardID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestLeaderboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardHandlerTestSuite))
}
