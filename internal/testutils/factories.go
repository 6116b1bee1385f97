package testutils

import (
	"time"

	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet provides access to all factories
type FactorySet struct {
	Work        *WorkFactory
	Tag         *TagFactory
	Tally       *TallyFactory
	Goal        *GoalFactory
	Leaderboard *LeaderboardFactory
	Member      *MemberFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Work:        NewWorkFactory(),
		Tag:         NewTagFactory(),
		Tally:       NewTallyFactory(),
		Goal:        NewGoalFactory(),
		Leaderboard: NewLeaderboardFactory(),
		Member:      NewMemberFactory(),
	}
}

// WorkFactory provides methods to create test Work data
type WorkFactory struct{}

// NewWorkFactory creates a new WorkFactory
func NewWorkFactory() *WorkFactory {
	return &WorkFactory{}
}

// Create creates a test Work with default values
func (f *WorkFactory) Create() *models.Work {
	return &models.Work{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID:         uuid.New(),
		Title:           "Test Novel",
		Description:     "A test writing project",
		Phase:           models.WorkPhaseDrafting,
		StartingBalance: models.MeasureMap{},
	}
}

// WithOwner sets the owner for the work
func (f *WorkFactory) WithOwner(ownerID uuid.UUID) *models.Work {
	work := f.Create()
	work.OwnerID = ownerID
	return work
}

// WithStartingBalance sets a starting balance for the work
func (f *WorkFactory) WithStartingBalance(balance models.MeasureMap) *models.Work {
	work := f.Create()
	work.StartingBalance = balance
	return work
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// Create creates a test Tag with default values
func (f *TagFactory) Create() *models.Tag {
	id := uuid.New()
	return &models.Tag{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID: uuid.New(),
		// Unique per factory call to dodge the per-owner name index
		Name:  "tag-" + id.String()[:8],
		Color: "#6b8e23",
	}
}

// WithOwner sets the owner for the tag
func (f *TagFactory) WithOwner(ownerID uuid.UUID) *models.Tag {
	tag := f.Create()
	tag.OwnerID = ownerID
	return tag
}

// WithName sets a custom name for the tag
func (f *TagFactory) WithName(ownerID uuid.UUID, name string) *models.Tag {
	tag := f.Create()
	tag.OwnerID = ownerID
	tag.Name = name
	return tag
}

// TallyFactory provides methods to create test Tally data
type TallyFactory struct{}

// NewTallyFactory creates a new TallyFactory
func NewTallyFactory() *TallyFactory {
	return &TallyFactory{}
}

// Create creates a test Tally with default values
func (f *TallyFactory) Create() *models.Tally {
	return &models.Tally{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID: uuid.New(),
		Date:    time.Now().Format("2006-01-02"),
		Measure: models.MeasureWord,
		Count:   500,
	}
}

// ForWork creates a tally attributed to a work
func (f *TallyFactory) ForWork(ownerID uuid.UUID, workID uuid.UUID, date string, measure models.Measure, count int) *models.Tally {
	tally := f.Create()
	tally.OwnerID = ownerID
	tally.WorkID = &workID
	tally.Date = date
	tally.Measure = measure
	tally.Count = count
	return tally
}

// Unattributed creates a tally not attached to any work
func (f *TallyFactory) Unattributed(ownerID uuid.UUID, date string, measure models.Measure, count int) *models.Tally {
	tally := f.Create()
	tally.OwnerID = ownerID
	tally.Date = date
	tally.Measure = measure
	tally.Count = count
	return tally
}

// GoalFactory provides methods to create test Goal data
type GoalFactory struct{}

// NewGoalFactory creates a new GoalFactory
func NewGoalFactory() *GoalFactory {
	return &GoalFactory{}
}

// Target creates a target goal with the given threshold
func (f *GoalFactory) Target(ownerID uuid.UUID, measure models.Measure, count int) *models.Goal {
	return &models.Goal{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID: ownerID,
		Title:   "Test Target Goal",
		Type:    models.GoalTypeTarget,
		Target:  &models.TargetParams{Measure: measure, Count: count},
	}
}

// Habit creates a habit goal with the given cadence
func (f *GoalFactory) Habit(ownerID uuid.UUID, unit models.CadenceUnit, period int) *models.Goal {
	return &models.Goal{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID: ownerID,
		Title:   "Test Habit Goal",
		Type:    models.GoalTypeHabit,
		Habit: &models.HabitParams{
			Cadence: models.Cadence{Unit: unit, Period: period},
		},
	}
}

// LeaderboardFactory provides methods to create test Leaderboard data
type LeaderboardFactory struct{}

// NewLeaderboardFactory creates a new LeaderboardFactory
func NewLeaderboardFactory() *LeaderboardFactory {
	return &LeaderboardFactory{}
}

// Create creates a joinable test Leaderboard with a shared word goal
func (f *LeaderboardFactory) Create(ownerID uuid.UUID) *models.Leaderboard {
	id := uuid.New()
	return &models.Leaderboard{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID:    ownerID,
		Title:      "Test Leaderboard",
		Measures:   models.MeasureList{models.MeasureWord},
		Goal:       models.MeasureMap{models.MeasureWord: 10000},
		IsJoinable: true,
		JoinCode:   "code-" + id.String()[:8],
	}
}

// IndividualGoalMode creates a board where members race their own goals
func (f *LeaderboardFactory) IndividualGoalMode(ownerID uuid.UUID) *models.Leaderboard {
	board := f.Create(ownerID)
	board.IndividualGoalMode = true
	board.Goal = models.MeasureMap{}
	board.Measures = models.MeasureList{}
	return board
}

// MemberFactory provides methods to create test LeaderboardMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Owner creates an owning, participating membership
func (f *MemberFactory) Owner(boardID, userID uuid.UUID) *models.LeaderboardMember {
	member := f.Participant(boardID, userID)
	member.IsOwner = true
	return member
}

// Participant creates a non-owning, participating membership
func (f *MemberFactory) Participant(boardID, userID uuid.UUID) *models.LeaderboardMember {
	return &models.LeaderboardMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeaderboardID: boardID,
		UserID:        userID,
		IsParticipant: true,
	}
}

// Spectator creates a membership that watches without competing
func (f *MemberFactory) Spectator(boardID, userID uuid.UUID) *models.LeaderboardMember {
	member := f.Participant(boardID, userID)
	member.IsParticipant = false
	return member
}
