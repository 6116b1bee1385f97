//go:build integration
// +build integration

package repository

import (
	"testing"

	"writing-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeaderboardRepositoryTestSuite tests the LeaderboardRepository
type LeaderboardRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeaderboardRepository
	factories     *testutils.FactorySet
}

func (suite *LeaderboardRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeaderboardRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *LeaderboardRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *LeaderboardRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *LeaderboardRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LeaderboardRepositoryTestSuite) TestGetByJoinCode() {
	board := suite.factories.Leaderboard.Create(uuid.New())
	suite.Require().NoError(suite.repo.Create(board))

	got, err := suite.repo.GetByJoinCode(board.JoinCode)

	suite.NoError(err)
	suite.Equal(board.ID, got.ID)

	_, err = suite.repo.GetByJoinCode("no-such-code")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *LeaderboardRepositoryTestSuite) TestDelete_HidesBoardAndFreesJoinCode() {
	board := suite.factories.Leaderboard.Create(uuid.New())
	suite.Require().NoError(suite.repo.Create(board))

	suite.NoError(suite.repo.Delete(board.ID))

	_, err := suite.repo.GetByID(board.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.repo.GetByJoinCode(board.JoinCode)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// The join code index only covers live boards, so it can be reissued.
	reissued := suite.factories.Leaderboard.Create(uuid.New())
	reissued.JoinCode = board.JoinCode
	suite.NoError(suite.repo.Create(reissued))
}

func (suite *LeaderboardRepositoryTestSuite) TestUpdate_PersistsGoalAndMeasures() {
	board := suite.factories.Leaderboard.Create(uuid.New())
	suite.Require().NoError(suite.repo.Create(board))

	board.Title = "Renamed Challenge"
	board.IsJoinable = false
	suite.Require().NoError(suite.repo.Update(board))

	got, err := suite.repo.GetByID(board.ID)
	suite.NoError(err)
	suite.Equal("Renamed Challenge", got.Title)
	suite.False(got.IsJoinable)
	suite.Equal(board.Goal, got.Goal)
	suite.Equal(board.Measures, got.Measures)
}

func TestLeaderboardRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardRepositoryTestSuite))
}
