package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"writing-tracker-backend/internal/api/handlers"
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

// TagHandlerTestSuite defines the test suite for TagHandler
type TagHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTagServiceInterface
	handler     *handlers.TagHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TagHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTagServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTagHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	tags := v1.Group("/tags")
	{
		tags.GET("", suite.handler.ListTags)
		tags.POST("", suite.handler.CreateTag)
		tags.PUT("/:id", suite.handler.UpdateTag)
		tags.DELETE("/:id", suite.handler.DeleteTag)
	}
}

// TearDownTest cleans up after each test
func (suite *TagHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TagHandlerTestSuite) TestCreateTag() {
	suite.T().Run("Success", func(t *testing.T) {
		tagID := uuid.New()
		requestBody := map[string]interface{}{
			"name":  "nanowrimo",
			"color": "#1f77b4",
		}

		expectedResponse := &service.TagResponse{
			ID:    tagID,
			Name:  "nanowrimo",
			Color: "#1f77b4",
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tags", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.TagResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "nanowrimo", response.Name)
	})

	suite.T().Run("Duplicate Name", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name": "nanowrimo",
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrTagExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tags", requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func (suite *TagHandlerTestSuite) TestListTags() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []service.TagResponse{
			{ID: uuid.New(), Name: "nanowrimo"},
			{ID: uuid.New(), Name: "morning-pages"},
		}

		suite.mockService.EXPECT().
			List(suite.userID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tags", nil)

		var response []service.TagResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})
}

func (suite *TagHandlerTestSuite) TestUpdateTag() {
	suite.T().Run("Rename To Taken Name", func(t *testing.T) {
		tagID := uuid.New()
		requestBody := map[string]interface{}{
			"name": "morning-pages",
		}

		suite.mockService.EXPECT().
			Update(suite.userID, tagID, gomock.Any()).
			Return(nil, apperrors.ErrTagExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/tags/%s", tagID), requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func (suite *TagHandlerTestSuite) TestDeleteTag() {
	suite.T().Run("Success", func(t *testing.T) {
		tagID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.userID, tagID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/tags/%s", tagID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		tagID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.userID, tagID).
			Return(apperrors.ErrTagNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/tags/%s", tagID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestTagHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TagHandlerTestSuite))
}
