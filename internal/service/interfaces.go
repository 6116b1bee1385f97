package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// WorkServiceInterface defines the interface for work service
type WorkServiceInterface interface {
	Create(ownerID uuid.UUID, req *CreateWorkRequest) (*WorkResponse, error)
	GetByID(ownerID, id uuid.UUID) (*WorkResponse, error)
	List(ownerID uuid.UUID) ([]WorkResponse, error)
	Update(ownerID, id uuid.UUID, req *UpdateWorkRequest) (*WorkResponse, error)
	Delete(ownerID, id uuid.UUID) error
}

// TagServiceInterface defines the interface for tag service
type TagServiceInterface interface {
	Create(ownerID uuid.UUID, req *CreateTagRequest) (*TagResponse, error)
	List(ownerID uuid.UUID) ([]TagResponse, error)
	Update(ownerID, id uuid.UUID, req *UpdateTagRequest) (*TagResponse, error)
	Delete(ownerID, id uuid.UUID) error
}

// TallyServiceInterface defines the interface for the progress ledger service
type TallyServiceInterface interface {
	Create(ownerID uuid.UUID, req *CreateTallyRequest) (*TallyResponse, error)
	CreateBatch(ownerID uuid.UUID, req *BatchCreateTalliesRequest) ([]TallyResponse, error)
	GetByID(ownerID, id uuid.UUID) (*TallyResponse, error)
	List(ownerID uuid.UUID, req *ListTalliesRequest) ([]TallyResponse, error)
	Update(ownerID, id uuid.UUID, req *UpdateTallyRequest) (*TallyResponse, error)
	Delete(ownerID, id uuid.UUID) error
}

// GoalServiceInterface defines the interface for goal service
type GoalServiceInterface interface {
	Create(ownerID uuid.UUID, req *CreateGoalRequest) (*GoalResponse, error)
	GetByID(ownerID, id uuid.UUID) (*GoalResponse, error)
	List(ownerID uuid.UUID) ([]GoalResponse, error)
	Update(ownerID, id uuid.UUID, req *UpdateGoalRequest) (*GoalResponse, error)
	Delete(ownerID, id uuid.UUID) error
}

// LeaderboardServiceInterface defines the interface for leaderboard, team
// and membership operations
type LeaderboardServiceInterface interface {
	Create(userID uuid.UUID, req *CreateLeaderboardRequest) (*LeaderboardResponse, error)
	GetByID(userID, id uuid.UUID) (*LeaderboardResponse, error)
	GetByJoinCode(userID uuid.UUID, code string) (*LeaderboardResponse, error)
	Update(userID, id uuid.UUID, req *UpdateLeaderboardRequest) (*LeaderboardResponse, error)
	Star(userID, id uuid.UUID, starred bool) error
	Delete(userID, id uuid.UUID) error
	Aggregate(userID, boardID uuid.UUID) (*AggregationResponse, error)

	CreateTeam(userID, boardID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	ListTeams(userID, boardID uuid.UUID) ([]TeamResponse, error)
	UpdateTeam(userID, boardID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(userID, boardID, teamID uuid.UUID) error

	Join(userID, boardID uuid.UUID, req *JoinLeaderboardRequest) (*MembershipResponse, error)
	GetMyMembership(userID, boardID uuid.UUID) (*MembershipResponse, error)
	ListMembers(userID, boardID uuid.UUID) ([]MembershipResponse, error)
	UpdateMyMembership(userID, boardID uuid.UUID, req *UpdateMembershipRequest) (*MembershipResponse, error)
	UpdateMember(actingUserID, boardID, memberID uuid.UUID, req *UpdateMemberRequest) (*MembershipResponse, error)
	Leave(userID, boardID uuid.UUID) error
	RemoveMember(actingUserID, boardID, memberID uuid.UUID) error
}
