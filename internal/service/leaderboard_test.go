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

type LeaderboardServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockBoardRepo  *mocks.MockLeaderboardRepositoryInterface
	mockTeamRepo   *mocks.MockLeaderboardTeamRepositoryInterface
	mockMemberRepo *mocks.MockLeaderboardMemberRepositoryInterface
	mockTallyRepo  *mocks.MockTallyRepositoryInterface
	mockTx         *mocks.MockTxManager
	boardService   *service.LeaderboardService
	validator      *validator.Validate

	userID uuid.UUID
}

func (suite *LeaderboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBoardRepo = mocks.NewMockLeaderboardRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockLeaderboardTeamRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockLeaderboardMemberRepositoryInterface(suite.ctrl)
	suite.mockTallyRepo = mocks.NewMockTallyRepositoryInterface(suite.ctrl)
	suite.mockTx = mocks.NewMockTxManager(suite.ctrl)
	suite.validator = validator.New()
	suite.boardService = service.NewLeaderboardService(
		suite.mockBoardRepo, suite.mockTeamRepo, suite.mockMemberRepo, suite.mockTallyRepo, suite.mockTx, suite.validator)
	suite.userID = uuid.New()

	suite.mockTx.EXPECT().Do(gomock.Any()).DoAndReturn(func(fn func(tx *gorm.DB) error) error {
		return fn(nil)
	}).AnyTimes()
	suite.mockBoardRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockBoardRepo).AnyTimes()
	suite.mockTeamRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockTeamRepo).AnyTimes()
	suite.mockMemberRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockMemberRepo).AnyTimes()
	suite.mockTallyRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockTallyRepo).AnyTimes()
}

func (suite *LeaderboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeaderboardServiceTestSuite) board() *models.Leaderboard {
	id := uuid.New()
	return &models.Leaderboard{
		BaseModel:  models.BaseModel{ID: id},
		OwnerID:    suite.userID,
		Title:      "November Challenge",
		Measures:   models.MeasureList{models.MeasureWord},
		Goal:       models.MeasureMap{models.MeasureWord: 50000},
		IsJoinable: true,
		JoinCode:   "aabbccddeeff0011",
	}
}

func (suite *LeaderboardServiceTestSuite) TestCreate_CreatesOwnerMembership() {
	var createdBoard *models.Leaderboard
	var createdMember *models.LeaderboardMember

	suite.mockBoardRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *models.Leaderboard) error {
		b.ID = uuid.New()
		createdBoard = b
		return nil
	})
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.LeaderboardMember) error {
		m.ID = uuid.New()
		createdMember = m
		return nil
	})

	resp, err := suite.boardService.Create(suite.userID, &service.CreateLeaderboardRequest{
		Title:      "November Challenge",
		Measures:   models.MeasureList{models.MeasureWord},
		Goal:       models.MeasureMap{models.MeasureWord: 50000},
		IsJoinable: true,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.NotEmpty(suite.T(), resp.JoinCode)
	assert.Len(suite.T(), createdBoard.JoinCode, 16)
	assert.True(suite.T(), createdMember.IsOwner)
	assert.True(suite.T(), createdMember.IsParticipant)
	assert.Equal(suite.T(), createdBoard.ID, createdMember.LeaderboardID)
	assert.Equal(suite.T(), suite.userID, createdMember.UserID)
}

func (suite *LeaderboardServiceTestSuite) TestCreate_IndividualGoalMode_ClearsSharedGoal() {
	var createdBoard *models.Leaderboard
	suite.mockBoardRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *models.Leaderboard) error {
		b.ID = uuid.New()
		createdBoard = b
		return nil
	})
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.boardService.Create(suite.userID, &service.CreateLeaderboardRequest{
		Title:              "Race your own goal",
		Measures:           models.MeasureList{models.MeasureWord},
		Goal:               models.MeasureMap{models.MeasureWord: 50000},
		IndividualGoalMode: true,
		FundraiserMode:     true,
		PersonalGoal:       &models.TargetParams{Measure: models.MeasureWord, Count: 30000},
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.IndividualGoalMode)
	assert.Empty(suite.T(), createdBoard.Goal)
	assert.Empty(suite.T(), createdBoard.Measures)
	assert.False(suite.T(), createdBoard.FundraiserMode)
}

func (suite *LeaderboardServiceTestSuite) TestCreate_UnknownMeasure_Rejected() {
	resp, err := suite.boardService.Create(suite.userID, &service.CreateLeaderboardRequest{
		Title:    "Broken",
		Measures: models.MeasureList{"furlong"},
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaderboardServiceTestSuite) TestCreate_GoalForUntrackedMeasure_Rejected() {
	resp, err := suite.boardService.Create(suite.userID, &service.CreateLeaderboardRequest{
		Title:    "Words only",
		Measures: models.MeasureList{models.MeasureWord},
		Goal:     models.MeasureMap{models.MeasureTime: 600},
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaderboardServiceTestSuite) TestGetByID_Member_SeesJoinCode() {
	board := suite.board()
	member := &models.LeaderboardMember{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		LeaderboardID: board.ID,
		UserID:        suite.userID,
		IsParticipant: true,
		Starred:       true,
	}

	suite.mockBoardRepo.EXPECT().GetByID(board.ID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(board.ID, suite.userID).Return(member, nil)

	resp, err := suite.boardService.GetByID(suite.userID, board.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), board.JoinCode, resp.JoinCode)
	assert.True(suite.T(), resp.Starred)
}

func (suite *LeaderboardServiceTestSuite) TestGetByID_PublicNonMember_JoinCodeHidden() {
	board := suite.board()
	board.IsPublic = true

	suite.mockBoardRepo.EXPECT().GetByID(board.ID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(board.ID, suite.userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.boardService.GetByID(suite.userID, board.ID)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp.JoinCode)
	assert.False(suite.T(), resp.Starred)
}

func (suite *LeaderboardServiceTestSuite) TestGetByID_PrivateNonMember_NotFound() {
	board := suite.board()

	suite.mockBoardRepo.EXPECT().GetByID(board.ID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(board.ID, suite.userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.boardService.GetByID(suite.userID, board.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaderboardNotFound)
}

func (suite *LeaderboardServiceTestSuite) TestGetByJoinCode_Success() {
	board := suite.board()

	suite.mockBoardRepo.EXPECT().GetByJoinCode(board.JoinCode).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(board.ID, suite.userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.boardService.GetByJoinCode(suite.userID, board.JoinCode)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), board.ID, resp.ID)
}

func (suite *LeaderboardServiceTestSuite) TestUpdate_NonOwnerMember_Forbidden() {
	board := suite.board()
	member := &models.LeaderboardMember{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		LeaderboardID: board.ID,
		UserID:        suite.userID,
		IsParticipant: true,
	}

	suite.mockBoardRepo.EXPECT().GetByID(board.ID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(board.ID, suite.userID).Return(member, nil)

	resp, err := suite.boardService.Update(suite.userID, board.ID, &service.UpdateLeaderboardRequest{
		Title: "Renamed",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotBoardOwner)
}

func (suite *LeaderboardServiceTestSuite) TestUpdate_IndividualGoalMode_Normalizes() {
	board := suite.board()
	owner := &models.LeaderboardMember{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		LeaderboardID: board.ID,
		UserID:        suite.userID,
		IsOwner:       true,
		IsParticipant: true,
	}

	suite.mockBoardRepo.EXPECT().GetByID(board.ID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(board.ID, suite.userID).Return(owner, nil)

	var updated *models.Leaderboard
	suite.mockBoardRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(b *models.Leaderboard) error {
		updated = b
		return nil
	})

	resp, err := suite.boardService.Update(suite.userID, board.ID, &service.UpdateLeaderboardRequest{
		Title:              "November Challenge",
		Measures:           models.MeasureList{models.MeasureWord},
		Goal:               models.MeasureMap{models.MeasureWord: 50000},
		IndividualGoalMode: true,
		FundraiserMode:     true,
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.IndividualGoalMode)
	assert.Empty(suite.T(), updated.Goal)
	assert.Empty(suite.T(), updated.Measures)
	assert.False(suite.T(), updated.FundraiserMode)
}

func (suite *LeaderboardServiceTestSuite) TestStar_NonMember_NotFound() {
	boardID := uuid.New()
	suite.mockMemberRepo.EXPECT().GetActive(boardID, suite.userID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.boardService.Star(suite.userID, boardID, true)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaderboardNotFound)
}

func (suite *LeaderboardServiceTestSuite) TestStar_TogglesMembershipFlag() {
	boardID := uuid.New()
	member := &models.LeaderboardMember{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		LeaderboardID: boardID,
		UserID:        suite.userID,
		IsParticipant: true,
	}

	suite.mockMemberRepo.EXPECT().GetActive(boardID, suite.userID).Return(member, nil)
	suite.mockMemberRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(m *models.LeaderboardMember) error {
		assert.True(suite.T(), m.Starred)
		return nil
	})

	err := suite.boardService.Star(suite.userID, boardID, true)

	assert.NoError(suite.T(), err)
}

func (suite *LeaderboardServiceTestSuite) TestDelete_Owner_RemovesMemberships() {
	board := suite.board()
	owner := &models.LeaderboardMember{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		LeaderboardID: board.ID,
		UserID:        suite.userID,
		IsOwner:       true,
	}

	suite.mockBoardRepo.EXPECT().GetByID(board.ID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(board.ID, suite.userID).Return(owner, nil)
	suite.mockBoardRepo.EXPECT().Delete(board.ID).Return(nil)
	suite.mockMemberRepo.EXPECT().DeleteByLeaderboard(board.ID).Return(nil)

	err := suite.boardService.Delete(suite.userID, board.ID)

	assert.NoError(suite.T(), err)
}

func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}
