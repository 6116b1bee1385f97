package service_test

import (
	"testing"

	"writing-tracker-backend/internal/database/models"
	apperrors "writing-tracker-backend/internal/errors"
	"writing-tracker-backend/internal/mocks"
	"writing-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type WorkServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockWorkRepo  *mocks.MockWorkRepositoryInterface
	mockTallyRepo *mocks.MockTallyRepositoryInterface
	mockTx        *mocks.MockTxManager
	workService   *service.WorkService

	ownerID uuid.UUID
}

func (suite *WorkServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkRepo = mocks.NewMockWorkRepositoryInterface(suite.ctrl)
	suite.mockTallyRepo = mocks.NewMockTallyRepositoryInterface(suite.ctrl)
	suite.mockTx = mocks.NewMockTxManager(suite.ctrl)
	suite.workService = service.NewWorkService(suite.mockWorkRepo, suite.mockTallyRepo, suite.mockTx, validator.New())
	suite.ownerID = uuid.New()

	suite.mockTx.EXPECT().Do(gomock.Any()).DoAndReturn(func(fn func(tx *gorm.DB) error) error {
		return fn(nil)
	}).AnyTimes()
	suite.mockWorkRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockWorkRepo).AnyTimes()
	suite.mockTallyRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockTallyRepo).AnyTimes()
}

func (suite *WorkServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkServiceTestSuite) TestCreate_DefaultsToDrafting() {
	var created *models.Work
	suite.mockWorkRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(w *models.Work) error {
		w.ID = uuid.New()
		created = w
		return nil
	})

	resp, err := suite.workService.Create(suite.ownerID, &service.CreateWorkRequest{
		Title: "Moby Dick 2",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkPhaseDrafting, resp.Phase)
	assert.Equal(suite.T(), models.WorkPhaseDrafting, created.Phase)
	assert.NotNil(suite.T(), resp.StartingBalance)
}

func (suite *WorkServiceTestSuite) TestCreate_WithStartingBalance() {
	suite.mockWorkRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.workService.Create(suite.ownerID, &service.CreateWorkRequest{
		Title:           "Imported Draft",
		Phase:           models.WorkPhaseRevising,
		StartingBalance: models.MeasureMap{models.MeasureWord: 42000},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 42000, resp.StartingBalance.Get(models.MeasureWord))
}

func (suite *WorkServiceTestSuite) TestCreate_UnknownPhase_Rejected() {
	resp, err := suite.workService.Create(suite.ownerID, &service.CreateWorkRequest{
		Title: "Moby Dick 2",
		Phase: "simmering",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *WorkServiceTestSuite) TestCreate_UnknownBalanceMeasure_Rejected() {
	resp, err := suite.workService.Create(suite.ownerID, &service.CreateWorkRequest{
		Title:           "Moby Dick 2",
		StartingBalance: models.MeasureMap{"furlong": 10},
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *WorkServiceTestSuite) TestGetByID_ForeignWork_NotFound() {
	workID := uuid.New()
	suite.mockWorkRepo.EXPECT().GetByID(workID).Return(&models.Work{
		BaseModel: models.BaseModel{ID: workID},
		OwnerID:   uuid.New(),
	}, nil)

	resp, err := suite.workService.GetByID(suite.ownerID, workID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkNotFound)
}

func (suite *WorkServiceTestSuite) TestDelete_CascadesToTallies() {
	workID := uuid.New()
	suite.mockWorkRepo.EXPECT().GetByID(workID).Return(&models.Work{
		BaseModel: models.BaseModel{ID: workID},
		OwnerID:   suite.ownerID,
	}, nil)
	suite.mockWorkRepo.EXPECT().Delete(workID).Return(nil)
	suite.mockTallyRepo.EXPECT().DeleteByWorkID(workID).Return(nil)

	err := suite.workService.Delete(suite.ownerID, workID)

	assert.NoError(suite.T(), err)
}

func (suite *WorkServiceTestSuite) TestUpdate_KeepsBalanceWhenOmitted() {
	workID := uuid.New()
	suite.mockWorkRepo.EXPECT().GetByID(workID).Return(&models.Work{
		BaseModel:       models.BaseModel{ID: workID},
		OwnerID:         suite.ownerID,
		Title:           "Moby Dick 2",
		Phase:           models.WorkPhaseDrafting,
		StartingBalance: models.MeasureMap{models.MeasureWord: 100},
	}, nil)
	suite.mockWorkRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.workService.Update(suite.ownerID, workID, &service.UpdateWorkRequest{
		Title: "Moby Dick: The Squeakquel",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Moby Dick: The Squeakquel", resp.Title)
	assert.Equal(suite.T(), 100, resp.StartingBalance.Get(models.MeasureWord))
}

func TestWorkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkServiceTestSuite))
}
