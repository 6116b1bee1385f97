package repository

import (
	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TxManager runs a function inside one database transaction. Read-check-
// then-act sections (set-total reconciliation, last-owner removal, duplicate
// join checks) go through it so they are never observed half-done.
type TxManager interface {
	Do(fn func(tx *gorm.DB) error) error
}

// TallyFilter selects a slice of the ledger. Empty id sets leave that
// dimension unfiltered; dates are inclusive YYYY-MM-DD bounds.
type TallyFilter struct {
	WorkIDs   []uuid.UUID
	TagIDs    []uuid.UUID
	Measures  []models.Measure
	StartDate string
	EndDate   string
}

// WorkRepositoryInterface defines the interface for work repository operations
type WorkRepositoryInterface interface {
	WithTx(tx *gorm.DB) WorkRepositoryInterface
	Create(work *models.Work) error
	GetByID(id uuid.UUID) (*models.Work, error)
	GetByOwner(ownerID uuid.UUID) ([]models.Work, error)
	Update(work *models.Work) error
	Delete(id uuid.UUID) error
}

// TagRepositoryInterface defines the interface for tag repository operations
type TagRepositoryInterface interface {
	WithTx(tx *gorm.DB) TagRepositoryInterface
	Create(tag *models.Tag) error
	GetByID(id uuid.UUID) (*models.Tag, error)
	GetByOwner(ownerID uuid.UUID) ([]models.Tag, error)
	GetByName(ownerID uuid.UUID, name string) (*models.Tag, error)
	GetByIDs(ownerID uuid.UUID, ids []uuid.UUID) ([]models.Tag, error)
	Update(tag *models.Tag) error
	HardDelete(id uuid.UUID) error
}

// TallyRepositoryInterface defines the interface for tally ledger operations
type TallyRepositoryInterface interface {
	WithTx(tx *gorm.DB) TallyRepositoryInterface
	Create(tally *models.Tally) error
	CreateBatch(tallies []models.Tally) error
	GetByID(id uuid.UUID) (*models.Tally, error)
	Update(tally *models.Tally) error
	ReplaceTags(tally *models.Tally, tags []models.Tag) error
	Delete(id uuid.UUID) error
	DeleteByWorkID(workID uuid.UUID) error
	Query(ownerID uuid.UUID, filter TallyFilter) ([]models.Tally, error)
	SumCounts(ownerID, workID uuid.UUID, measure models.Measure, throughDate string, excludeID *uuid.UUID) (int, error)
}

// GoalRepositoryInterface defines the interface for goal repository operations
type GoalRepositoryInterface interface {
	WithTx(tx *gorm.DB) GoalRepositoryInterface
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	GetByOwner(ownerID uuid.UUID) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id uuid.UUID) error
}

// LeaderboardRepositoryInterface defines the interface for leaderboard repository operations
type LeaderboardRepositoryInterface interface {
	WithTx(tx *gorm.DB) LeaderboardRepositoryInterface
	Create(board *models.Leaderboard) error
	GetByID(id uuid.UUID) (*models.Leaderboard, error)
	GetByJoinCode(code string) (*models.Leaderboard, error)
	Update(board *models.Leaderboard) error
	Delete(id uuid.UUID) error
}

// LeaderboardTeamRepositoryInterface defines the interface for leaderboard team repository operations
type LeaderboardTeamRepositoryInterface interface {
	WithTx(tx *gorm.DB) LeaderboardTeamRepositoryInterface
	Create(team *models.LeaderboardTeam) error
	GetByID(id uuid.UUID) (*models.LeaderboardTeam, error)
	GetByLeaderboard(leaderboardID uuid.UUID) ([]models.LeaderboardTeam, error)
	Update(team *models.LeaderboardTeam) error
	Delete(id uuid.UUID) error
}

// LeaderboardMemberRepositoryInterface defines the interface for membership repository operations
type LeaderboardMemberRepositoryInterface interface {
	WithTx(tx *gorm.DB) LeaderboardMemberRepositoryInterface
	Create(member *models.LeaderboardMember) error
	GetByID(id uuid.UUID) (*models.LeaderboardMember, error)
	GetActive(leaderboardID, userID uuid.UUID) (*models.LeaderboardMember, error)
	GetByLeaderboard(leaderboardID uuid.UUID) ([]models.LeaderboardMember, error)
	CountOwners(leaderboardID uuid.UUID, excludeMemberID *uuid.UUID) (int64, error)
	Update(member *models.LeaderboardMember) error
	Delete(id uuid.UUID) error
	DeleteByLeaderboard(leaderboardID uuid.UUID) error
}
