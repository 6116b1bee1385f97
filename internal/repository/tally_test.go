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

// TallyRepositoryTestSuite tests the TallyRepository against a real Postgres
type TallyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TallyRepository
	workRepo      *WorkRepository
	tagRepo       *TagRepository
	factories     *testutils.FactorySet

	ownerID uuid.UUID
}

func (suite *TallyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTallyRepository(suite.baseTestSuite.DB)
	suite.workRepo = NewWorkRepository(suite.baseTestSuite.DB)
	suite.tagRepo = NewTagRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TallyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TallyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.ownerID = uuid.New()
}

func (suite *TallyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TallyRepositoryTestSuite) createWork() *models.Work {
	work := suite.factories.Work.WithOwner(suite.ownerID)
	suite.Require().NoError(suite.workRepo.Create(work))
	return work
}

func (suite *TallyRepositoryTestSuite) createTally(workID *uuid.UUID, date string, measure models.Measure, count int) *models.Tally {
	tally := suite.factories.Tally.Unattributed(suite.ownerID, date, measure, count)
	tally.WorkID = workID
	suite.Require().NoError(suite.repo.Create(tally))
	return tally
}

func (suite *TallyRepositoryTestSuite) TestCreateAndGetByID() {
	work := suite.createWork()
	tally := suite.createTally(&work.ID, "2026-01-10", models.MeasureWord, 500)

	got, err := suite.repo.GetByID(tally.ID)

	suite.NoError(err)
	suite.Equal(tally.ID, got.ID)
	suite.Equal("2026-01-10", got.Date)
	suite.Equal(500, got.Count)
	suite.Equal(work.ID, *got.WorkID)
}

func (suite *TallyRepositoryTestSuite) TestQuery_FiltersByWork() {
	work := suite.createWork()
	other := suite.createWork()
	suite.createTally(&work.ID, "2026-01-10", models.MeasureWord, 100)
	suite.createTally(&other.ID, "2026-01-10", models.MeasureWord, 200)
	suite.createTally(nil, "2026-01-10", models.MeasureWord, 300)

	tallies, err := suite.repo.Query(suite.ownerID, TallyFilter{WorkIDs: []uuid.UUID{work.ID}})

	suite.NoError(err)
	suite.Len(tallies, 1)
	suite.Equal(100, tallies[0].Count)
}

func (suite *TallyRepositoryTestSuite) TestQuery_FiltersByMeasureAndDateRange() {
	suite.createTally(nil, "2026-01-09", models.MeasureWord, 100)
	suite.createTally(nil, "2026-01-10", models.MeasureWord, 200)
	suite.createTally(nil, "2026-01-10", models.MeasureTime, 60)
	suite.createTally(nil, "2026-01-12", models.MeasureWord, 400)

	tallies, err := suite.repo.Query(suite.ownerID, TallyFilter{
		Measures:  []models.Measure{models.MeasureWord},
		StartDate: "2026-01-10",
		EndDate:   "2026-01-11",
	})

	suite.NoError(err)
	suite.Len(tallies, 1)
	suite.Equal(200, tallies[0].Count)
}

func (suite *TallyRepositoryTestSuite) TestQuery_FiltersByTag() {
	tag := suite.factories.Tag.WithOwner(suite.ownerID)
	suite.Require().NoError(suite.tagRepo.Create(tag))

	tagged := suite.createTally(nil, "2026-01-10", models.MeasureWord, 100)
	suite.Require().NoError(suite.repo.ReplaceTags(tagged, []models.Tag{*tag}))
	suite.createTally(nil, "2026-01-10", models.MeasureWord, 200)

	tallies, err := suite.repo.Query(suite.ownerID, TallyFilter{TagIDs: []uuid.UUID{tag.ID}})

	suite.NoError(err)
	suite.Len(tallies, 1)
	suite.Equal(tagged.ID, tallies[0].ID)
	suite.Len(tallies[0].Tags, 1)
}

func (suite *TallyRepositoryTestSuite) TestQuery_ScopedToOwner() {
	suite.createTally(nil, "2026-01-10", models.MeasureWord, 100)

	stranger := suite.factories.Tally.Unattributed(uuid.New(), "2026-01-10", models.MeasureWord, 999)
	suite.Require().NoError(suite.repo.Create(stranger))

	tallies, err := suite.repo.Query(suite.ownerID, TallyFilter{})

	suite.NoError(err)
	suite.Len(tallies, 1)
	suite.Equal(100, tallies[0].Count)
}

func (suite *TallyRepositoryTestSuite) TestSumCounts_ThroughDate() {
	work := suite.createWork()
	suite.createTally(&work.ID, "2026-01-09", models.MeasureWord, 100)
	suite.createTally(&work.ID, "2026-01-10", models.MeasureWord, 200)
	suite.createTally(&work.ID, "2026-01-11", models.MeasureWord, 400)
	// Different measure and different work never count.
	suite.createTally(&work.ID, "2026-01-10", models.MeasureTime, 60)
	other := suite.createWork()
	suite.createTally(&other.ID, "2026-01-10", models.MeasureWord, 999)

	sum, err := suite.repo.SumCounts(suite.ownerID, work.ID, models.MeasureWord, "2026-01-10", nil)

	suite.NoError(err)
	suite.Equal(300, sum)
}

func (suite *TallyRepositoryTestSuite) TestSumCounts_ExcludesRevisedTally() {
	work := suite.createWork()
	suite.createTally(&work.ID, "2026-01-09", models.MeasureWord, 100)
	revised := suite.createTally(&work.ID, "2026-01-10", models.MeasureWord, 200)

	sum, err := suite.repo.SumCounts(suite.ownerID, work.ID, models.MeasureWord, "2026-01-10", &revised.ID)

	suite.NoError(err)
	suite.Equal(100, sum)
}

func (suite *TallyRepositoryTestSuite) TestSumCounts_EmptyLedgerIsZero() {
	work := suite.createWork()

	sum, err := suite.repo.SumCounts(suite.ownerID, work.ID, models.MeasureWord, "2026-01-10", nil)

	suite.NoError(err)
	suite.Equal(0, sum)
}

func (suite *TallyRepositoryTestSuite) TestDelete_SoftDeletesAndDropsFromSums() {
	work := suite.createWork()
	tally := suite.createTally(&work.ID, "2026-01-10", models.MeasureWord, 500)

	suite.NoError(suite.repo.Delete(tally.ID))

	_, err := suite.repo.GetByID(tally.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	sum, err := suite.repo.SumCounts(suite.ownerID, work.ID, models.MeasureWord, "2026-01-10", nil)
	suite.NoError(err)
	suite.Equal(0, sum)
}

func (suite *TallyRepositoryTestSuite) TestDeleteByWorkID() {
	work := suite.createWork()
	suite.createTally(&work.ID, "2026-01-10", models.MeasureWord, 100)
	suite.createTally(&work.ID, "2026-01-11", models.MeasureWord, 200)
	kept := suite.createTally(nil, "2026-01-10", models.MeasureWord, 300)

	suite.NoError(suite.repo.DeleteByWorkID(work.ID))

	tallies, err := suite.repo.Query(suite.ownerID, TallyFilter{})
	suite.NoError(err)
	suite.Len(tallies, 1)
	suite.Equal(kept.ID, tallies[0].ID)
}

func (suite *TallyRepositoryTestSuite) TestCreateBatch() {
	tallies := []models.Tally{
		*suite.factories.Tally.Unattributed(suite.ownerID, "2026-01-10", models.MeasureWord, 100),
		*suite.factories.Tally.Unattributed(suite.ownerID, "2026-01-11", models.MeasureWord, 200),
	}

	suite.NoError(suite.repo.CreateBatch(tallies))

	got, err := suite.repo.Query(suite.ownerID, TallyFilter{})
	suite.NoError(err)
	suite.Len(got, 2)
}

func TestTallyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TallyRepositoryTestSuite))
}
