//go:build integration
// +build integration

package repository

import (
	"testing"

	"writing-tracker-backend/internal/database/models"
	"writing-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeaderboardMemberRepositoryTestSuite tests the membership repository
type LeaderboardMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeaderboardMemberRepository
	boardRepo     *LeaderboardRepository
	factories     *testutils.FactorySet

	board *models.Leaderboard
}

func (suite *LeaderboardMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeaderboardMemberRepository(suite.baseTestSuite.DB)
	suite.boardRepo = NewLeaderboardRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *LeaderboardMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *LeaderboardMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.board = suite.factories.Leaderboard.Create(uuid.New())
	suite.Require().NoError(suite.boardRepo.Create(suite.board))
}

func (suite *LeaderboardMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LeaderboardMemberRepositoryTestSuite) TestGetActive() {
	member := suite.factories.Member.Participant(suite.board.ID, uuid.New())
	suite.Require().NoError(suite.repo.Create(member))

	got, err := suite.repo.GetActive(suite.board.ID, member.UserID)

	suite.NoError(err)
	suite.Equal(member.ID, got.ID)

	_, err = suite.repo.GetActive(suite.board.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *LeaderboardMemberRepositoryTestSuite) TestCreate_DuplicateActiveMembership_Fails() {
	userID := uuid.New()
	first := suite.factories.Member.Participant(suite.board.ID, userID)
	suite.Require().NoError(suite.repo.Create(first))

	dup := suite.factories.Member.Participant(suite.board.ID, userID)
	err := suite.repo.Create(dup)

	suite.Error(err)
}

func (suite *LeaderboardMemberRepositoryTestSuite) TestCreate_RejoinAfterLeaving_Succeeds() {
	userID := uuid.New()
	first := suite.factories.Member.Participant(suite.board.ID, userID)
	suite.Require().NoError(suite.repo.Create(first))

	// The unique index only covers live rows, so leaving frees the slot.
	suite.Require().NoError(suite.repo.Delete(first.ID))

	again := suite.factories.Member.Participant(suite.board.ID, userID)
	suite.NoError(suite.repo.Create(again))

	got, err := suite.repo.GetActive(suite.board.ID, userID)
	suite.NoError(err)
	suite.Equal(again.ID, got.ID)
}

func (suite *LeaderboardMemberRepositoryTestSuite) TestGetByLeaderboard_JoinOrder() {
	first := suite.factories.Member.Owner(suite.board.ID, uuid.New())
	suite.Require().NoError(suite.repo.Create(first))
	second := suite.factories.Member.Participant(suite.board.ID, uuid.New())
	suite.Require().NoError(suite.repo.Create(second))
	third := suite.factories.Member.Spectator(suite.board.ID, uuid.New())
	suite.Require().NoError(suite.repo.Create(third))

	members, err := suite.repo.GetByLeaderboard(suite.board.ID)

	suite.NoError(err)
	suite.Require().Len(members, 3)
	suite.Equal(first.ID, members[0].ID)
	suite.Equal(second.ID, members[1].ID)
	suite.Equal(third.ID, members[2].ID)
}

func (suite *LeaderboardMemberRepositoryTestSuite) TestCountOwners() {
	owner := suite.factories.Member.Owner(suite.board.ID, uuid.New())
	suite.Require().NoError(suite.repo.Create(owner))
	coOwner := suite.factories.Member.Owner(suite.board.ID, uuid.New())
	suite.Require().NoError(suite.repo.Create(coOwner))
	regular := suite.factories.Member.Participant(suite.board.ID, uuid.New())
	suite.Require().NoError(suite.repo.Create(regular))

	count, err := suite.repo.CountOwners(suite.board.ID, nil)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repo.CountOwners(suite.board.ID, &owner.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *LeaderboardMemberRepositoryTestSuite) TestCountOwners_IgnoresRemovedOwners() {
	owner := suite.factories.Member.Owner(suite.board.ID, uuid.New())
	suite.Require().NoError(suite.repo.Create(owner))
	former := suite.factories.Member.Owner(suite.board.ID, uuid.New())
	suite.Require().NoError(suite.repo.Create(former))
	suite.Require().NoError(suite.repo.Delete(former.ID))

	count, err := suite.repo.CountOwners(suite.board.ID, &owner.ID)

	suite.NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *LeaderboardMemberRepositoryTestSuite) TestDeleteByLeaderboard() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Member.Owner(suite.board.ID, uuid.New())))
	suite.Require().NoError(suite.repo.Create(suite.factories.Member.Participant(suite.board.ID, uuid.New())))

	suite.NoError(suite.repo.DeleteByLeaderboard(suite.board.ID))

	members, err := suite.repo.GetByLeaderboard(suite.board.ID)
	suite.NoError(err)
	suite.Empty(members)
}

func TestLeaderboardMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardMemberRepositoryTestSuite))
}
