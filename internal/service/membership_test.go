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

type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockBoardRepo  *mocks.MockLeaderboardRepositoryInterface
	mockTeamRepo   *mocks.MockLeaderboardTeamRepositoryInterface
	mockMemberRepo *mocks.MockLeaderboardMemberRepositoryInterface
	mockTallyRepo  *mocks.MockTallyRepositoryInterface
	mockTx         *mocks.MockTxManager
	boardService   *service.LeaderboardService

	userID  uuid.UUID
	boardID uuid.UUID
}

func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBoardRepo = mocks.NewMockLeaderboardRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockLeaderboardTeamRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockLeaderboardMemberRepositoryInterface(suite.ctrl)
	suite.mockTallyRepo = mocks.NewMockTallyRepositoryInterface(suite.ctrl)
	suite.mockTx = mocks.NewMockTxManager(suite.ctrl)
	suite.boardService = service.NewLeaderboardService(
		suite.mockBoardRepo, suite.mockTeamRepo, suite.mockMemberRepo, suite.mockTallyRepo, suite.mockTx, validator.New())
	suite.userID = uuid.New()
	suite.boardID = uuid.New()

	suite.mockTx.EXPECT().Do(gomock.Any()).DoAndReturn(func(fn func(tx *gorm.DB) error) error {
		return fn(nil)
	}).AnyTimes()
	suite.mockBoardRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockBoardRepo).AnyTimes()
	suite.mockTeamRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockTeamRepo).AnyTimes()
	suite.mockMemberRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockMemberRepo).AnyTimes()
	suite.mockTallyRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockTallyRepo).AnyTimes()
}

func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) joinableBoard() *models.Leaderboard {
	return &models.Leaderboard{
		BaseModel:  models.BaseModel{ID: suite.boardID},
		OwnerID:    uuid.New(),
		Title:      "November Challenge",
		Measures:   models.MeasureList{models.MeasureWord},
		Goal:       models.MeasureMap{models.MeasureWord: 50000},
		IsJoinable: true,
	}
}

func (suite *MembershipServiceTestSuite) member(isOwner bool) *models.LeaderboardMember {
	return &models.LeaderboardMember{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		LeaderboardID: suite.boardID,
		UserID:        suite.userID,
		IsOwner:       isOwner,
		IsParticipant: true,
	}
}

func (suite *MembershipServiceTestSuite) TestJoin_Success() {
	board := suite.joinableBoard()
	suite.mockBoardRepo.EXPECT().GetByID(suite.boardID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(nil, gorm.ErrRecordNotFound)

	var created *models.LeaderboardMember
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.LeaderboardMember) error {
		m.ID = uuid.New()
		created = m
		return nil
	})

	resp, err := suite.boardService.Join(suite.userID, suite.boardID, &service.JoinLeaderboardRequest{
		DisplayName: "Ishmael",
	})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.IsOwner)
	assert.True(suite.T(), resp.IsParticipant)
	assert.Equal(suite.T(), "Ishmael", resp.DisplayName)
	assert.False(suite.T(), created.IsOwner)
}

func (suite *MembershipServiceTestSuite) TestJoin_AsSpectator() {
	board := suite.joinableBoard()
	spectator := false
	suite.mockBoardRepo.EXPECT().GetByID(suite.boardID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.boardService.Join(suite.userID, suite.boardID, &service.JoinLeaderboardRequest{
		AsParticipant: &spectator,
	})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.IsParticipant)
}

func (suite *MembershipServiceTestSuite) TestJoin_NotJoinable_Conflict() {
	board := suite.joinableBoard()
	board.IsJoinable = false
	suite.mockBoardRepo.EXPECT().GetByID(suite.boardID).Return(board, nil)

	resp, err := suite.boardService.Join(suite.userID, suite.boardID, &service.JoinLeaderboardRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBoardNotJoinable)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *MembershipServiceTestSuite) TestJoin_AlreadyMember_Conflict() {
	board := suite.joinableBoard()
	suite.mockBoardRepo.EXPECT().GetByID(suite.boardID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(suite.member(false), nil)

	resp, err := suite.boardService.Join(suite.userID, suite.boardID, &service.JoinLeaderboardRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyMember)
}

func (suite *MembershipServiceTestSuite) TestJoin_TeamOnTeamlessBoard_Rejected() {
	board := suite.joinableBoard()
	teamID := uuid.New()
	suite.mockBoardRepo.EXPECT().GetByID(suite.boardID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.boardService.Join(suite.userID, suite.boardID, &service.JoinLeaderboardRequest{
		TeamID: &teamID,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MembershipServiceTestSuite) TestJoin_ForeignTeam_NotFound() {
	board := suite.joinableBoard()
	board.EnableTeams = true
	teamID := uuid.New()
	suite.mockBoardRepo.EXPECT().GetByID(suite.boardID).Return(board, nil)
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(&models.LeaderboardTeam{
		BaseModel:     models.BaseModel{ID: teamID},
		LeaderboardID: uuid.New(),
		Name:          "Team Plot",
	}, nil)

	resp, err := suite.boardService.Join(suite.userID, suite.boardID, &service.JoinLeaderboardRequest{
		TeamID: &teamID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *MembershipServiceTestSuite) TestLeave_RegularMember_Success() {
	member := suite.member(false)
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(member, nil)
	suite.mockMemberRepo.EXPECT().Delete(member.ID).Return(nil)

	err := suite.boardService.Leave(suite.userID, suite.boardID)

	assert.NoError(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestLeave_LastOwner_Conflict() {
	member := suite.member(true)
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(member, nil)
	suite.mockMemberRepo.EXPECT().CountOwners(suite.boardID, &member.ID).Return(int64(0), nil)

	err := suite.boardService.Leave(suite.userID, suite.boardID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastOwner)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *MembershipServiceTestSuite) TestLeave_OwnerWithCoOwner_Success() {
	member := suite.member(true)
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(member, nil)
	suite.mockMemberRepo.EXPECT().CountOwners(suite.boardID, &member.ID).Return(int64(1), nil)
	suite.mockMemberRepo.EXPECT().Delete(member.ID).Return(nil)

	err := suite.boardService.Leave(suite.userID, suite.boardID)

	assert.NoError(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestLeave_NotMember_NotFound() {
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.boardService.Leave(suite.userID, suite.boardID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

func (suite *MembershipServiceTestSuite) TestRemoveMember_NonOwner_Forbidden() {
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(suite.member(false), nil)

	err := suite.boardService.RemoveMember(suite.userID, suite.boardID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotBoardOwner)
	assert.True(suite.T(), apperrors.IsForbidden(err))
}

func (suite *MembershipServiceTestSuite) TestRemoveMember_LastOwnerTarget_Conflict() {
	acting := suite.member(true)
	target := &models.LeaderboardMember{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		LeaderboardID: suite.boardID,
		UserID:        uuid.New(),
		IsOwner:       true,
		IsParticipant: true,
	}

	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(acting, nil)
	suite.mockMemberRepo.EXPECT().GetByID(target.ID).Return(target, nil)
	suite.mockMemberRepo.EXPECT().CountOwners(suite.boardID, &target.ID).Return(int64(0), nil)

	err := suite.boardService.RemoveMember(suite.userID, suite.boardID, target.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastOwner)
}

func (suite *MembershipServiceTestSuite) TestRemoveMember_MemberOfOtherBoard_NotFound() {
	acting := suite.member(true)
	target := &models.LeaderboardMember{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		LeaderboardID: uuid.New(),
		UserID:        uuid.New(),
	}

	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(acting, nil)
	suite.mockMemberRepo.EXPECT().GetByID(target.ID).Return(target, nil)

	err := suite.boardService.RemoveMember(suite.userID, suite.boardID, target.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

func (suite *MembershipServiceTestSuite) TestUpdateMember_DemoteLastOwner_Conflict() {
	acting := suite.member(true)
	demote := false

	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(acting, nil)
	suite.mockMemberRepo.EXPECT().GetByID(acting.ID).Return(acting, nil)
	suite.mockMemberRepo.EXPECT().CountOwners(suite.boardID, &acting.ID).Return(int64(0), nil)

	resp, err := suite.boardService.UpdateMember(suite.userID, suite.boardID, acting.ID, &service.UpdateMemberRequest{
		IsOwner: &demote,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLastOwner)
}

func (suite *MembershipServiceTestSuite) TestUpdateMember_PromoteMember_Success() {
	acting := suite.member(true)
	target := &models.LeaderboardMember{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		LeaderboardID: suite.boardID,
		UserID:        uuid.New(),
		IsParticipant: true,
	}
	promote := true

	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(acting, nil)
	suite.mockMemberRepo.EXPECT().GetByID(target.ID).Return(target, nil)
	suite.mockMemberRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.boardService.UpdateMember(suite.userID, suite.boardID, target.ID, &service.UpdateMemberRequest{
		IsOwner: &promote,
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.IsOwner)
}

func (suite *MembershipServiceTestSuite) TestUpdateMyMembership_PartialUpdate() {
	member := suite.member(false)
	member.DisplayName = "Ishmael"
	member.Color = "#aabbcc"
	name := "Queequeg"

	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(member, nil)
	suite.mockMemberRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.boardService.UpdateMyMembership(suite.userID, suite.boardID, &service.UpdateMembershipRequest{
		DisplayName: &name,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Queequeg", resp.DisplayName)
	// untouched fields survive
	assert.Equal(suite.T(), "#aabbcc", resp.Color)
}

func (suite *MembershipServiceTestSuite) TestUpdateMyMembership_ClearTeam() {
	member := suite.member(false)
	teamID := uuid.New()
	member.TeamID = &teamID

	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(member, nil)
	suite.mockMemberRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.boardService.UpdateMyMembership(suite.userID, suite.boardID, &service.UpdateMembershipRequest{
		ClearTeam: true,
	})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.TeamID)
}

func (suite *MembershipServiceTestSuite) TestGetMyMembership_NotMember_NotFound() {
	suite.mockMemberRepo.EXPECT().GetActive(suite.boardID, suite.userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.boardService.GetMyMembership(suite.userID, suite.boardID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
