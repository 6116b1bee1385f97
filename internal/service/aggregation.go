package service

import (
	"fmt"
	"sort"

	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// ParticipantStanding is one ranked row of an aggregated leaderboard.
type ParticipantStanding struct {
	MemberID     uuid.UUID            `json:"member_id"`
	UserID       uuid.UUID            `json:"user_id"`
	DisplayName  string               `json:"display_name,omitempty"`
	Color        string               `json:"color,omitempty"`
	TeamID       *uuid.UUID           `json:"team_id,omitempty"`
	Rank         int                  `json:"rank"`
	Progress     models.MeasureMap    `json:"progress"`
	Percent      float64              `json:"percent"`
	PersonalGoal *models.TargetParams `json:"personal_goal,omitempty"`
}

// TeamStanding is one team's aggregate row.
type TeamStanding struct {
	TeamID      uuid.UUID         `json:"team_id"`
	Name        string            `json:"name"`
	Color       string            `json:"color"`
	Rank        int               `json:"rank"`
	Progress    models.MeasureMap `json:"progress"`
	Percent     float64           `json:"percent"`
	MemberCount int               `json:"member_count"`
}

// AggregationResponse is a board's full standings at the moment of the call.
// Nothing here is cached; every call re-reads the ledger.
type AggregationResponse struct {
	LeaderboardID uuid.UUID             `json:"leaderboard_id"`
	Participants  []ParticipantStanding `json:"participants"`
	Teams         []TeamStanding        `json:"teams,omitempty"`
}

// Aggregate computes every participant's progress and percent-to-goal and
// ranks them. Spectator members and non-participating owners get no row.
func (s *LeaderboardService) Aggregate(userID, boardID uuid.UUID) (*AggregationResponse, error) {
	board, _, err := s.visibleBoard(userID, boardID)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.GetByLeaderboard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	standings := make([]ParticipantStanding, 0, len(members))
	joinOrder := make(map[uuid.UUID]int, len(members))
	for i := range members {
		m := &members[i]
		if !m.IsParticipant {
			continue
		}

		progress, err := s.memberProgress(board, m)
		if err != nil {
			return nil, err
		}

		standings = append(standings, ParticipantStanding{
			MemberID:     m.ID,
			UserID:       m.UserID,
			DisplayName:  m.DisplayName,
			Color:        m.Color,
			TeamID:       m.TeamID,
			Progress:     progress,
			Percent:      memberPercent(board, m, progress),
			PersonalGoal: m.PersonalGoal,
		})
		joinOrder[m.ID] = i
	}

	rankStandings(standings, board, joinOrder)

	resp := &AggregationResponse{
		LeaderboardID: board.ID,
		Participants:  standings,
	}

	if board.EnableTeams {
		teams, err := s.teamStandings(board, standings)
		if err != nil {
			return nil, err
		}
		resp.Teams = teams
	}
	return resp, nil
}

// memberProgress queries the ledger for one participant, restricted by their
// personal scope filter and the board's window and measures.
func (s *LeaderboardService) memberProgress(board *models.Leaderboard, m *models.LeaderboardMember) (models.MeasureMap, error) {
	measures := boardMeasures(board, m)
	filter := buildTallyFilter(m.Scope, measures, board.StartDate, board.EndDate)
	tallies, err := s.tallyRepo.Query(m.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query tallies: %w", err)
	}
	return sumByMeasure(tallies), nil
}

// boardMeasures resolves which measures count for a participant: the
// member's personal goal measure under individual-goal mode, otherwise the
// board's measure list (empty meaning all).
func boardMeasures(board *models.Leaderboard, m *models.LeaderboardMember) []models.Measure {
	if board.IndividualGoalMode {
		if m.PersonalGoal != nil {
			return []models.Measure{m.PersonalGoal.Measure}
		}
		return nil
	}
	if len(board.Measures) > 0 {
		return board.Measures
	}
	return nil
}

// memberPercent computes fractional completion in [0, 1]. Shared boards take
// the mean completion across the goal's measures; individual-goal boards
// compare against the member's personal goal. No goal means zero, so ranking
// falls through to raw progress.
func memberPercent(board *models.Leaderboard, m *models.LeaderboardMember, progress models.MeasureMap) float64 {
	if board.IndividualGoalMode {
		if m.PersonalGoal == nil || m.PersonalGoal.Count <= 0 {
			return 0
		}
		return capRatio(progress.Get(m.PersonalGoal.Measure), m.PersonalGoal.Count)
	}
	return goalPercent(board.Goal, progress)
}

// goalPercent averages per-measure completion over a goal map.
func goalPercent(goal models.MeasureMap, progress models.MeasureMap) float64 {
	total := 0.0
	n := 0
	for measure, count := range goal {
		if count <= 0 {
			continue
		}
		total += capRatio(progress.Get(measure), count)
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

func capRatio(progress, goal int) float64 {
	ratio := float64(progress) / float64(goal)
	if ratio > 1 {
		return 1
	}
	return ratio
}

// rawTotal is the tiebreak quantity: total progress across the measures the
// board counts, or across everything when the board counts everything.
func rawTotal(board *models.Leaderboard, progress models.MeasureMap) int {
	if !board.IndividualGoalMode && len(board.Measures) > 0 {
		total := 0
		for _, m := range board.Measures {
			total += progress.Get(m)
		}
		return total
	}
	total := 0
	for _, count := range progress {
		total += count
	}
	return total
}

// rankStandings orders rows by percent, then raw progress, then join order,
// and assigns dense ranks with ties sharing a rank.
func rankStandings(standings []ParticipantStanding, board *models.Leaderboard, joinOrder map[uuid.UUID]int) {
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Percent != standings[j].Percent {
			return standings[i].Percent > standings[j].Percent
		}
		ri, rj := rawTotal(board, standings[i].Progress), rawTotal(board, standings[j].Progress)
		if ri != rj {
			return ri > rj
		}
		return joinOrder[standings[i].MemberID] < joinOrder[standings[j].MemberID]
	})

	rank := 0
	for i := range standings {
		if i == 0 || standings[i].Percent != standings[i-1].Percent || rawTotal(board, standings[i].Progress) != rawTotal(board, standings[i-1].Progress) {
			rank = i + 1
		}
		standings[i].Rank = rank
	}
}

// teamStandings folds participant rows into per-team aggregates. A team's
// percent compares its combined progress against the shared goal scaled by
// its participant count, so team size does not make the goal easier.
func (s *LeaderboardService) teamStandings(board *models.Leaderboard, standings []ParticipantStanding) ([]TeamStanding, error) {
	teams, err := s.teamRepo.GetByLeaderboard(board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	byTeam := make(map[uuid.UUID]*TeamStanding, len(teams))
	ordered := make([]*TeamStanding, 0, len(teams))
	for i := range teams {
		ts := &TeamStanding{
			TeamID:   teams[i].ID,
			Name:     teams[i].Name,
			Color:    teams[i].Color,
			Progress: models.MeasureMap{},
		}
		byTeam[teams[i].ID] = ts
		ordered = append(ordered, ts)
	}

	for i := range standings {
		if standings[i].TeamID == nil {
			continue
		}
		ts, ok := byTeam[*standings[i].TeamID]
		if !ok {
			continue
		}
		ts.Progress = ts.Progress.Merge(standings[i].Progress)
		ts.MemberCount++
	}

	for _, ts := range ordered {
		if board.IndividualGoalMode || ts.MemberCount == 0 {
			continue
		}
		scaled := models.MeasureMap{}
		for measure, count := range board.Goal {
			scaled = scaled.Add(measure, count*ts.MemberCount)
		}
		ts.Percent = goalPercent(scaled, ts.Progress)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Percent != ordered[j].Percent {
			return ordered[i].Percent > ordered[j].Percent
		}
		return totalProgress(ordered[i].Progress) > totalProgress(ordered[j].Progress)
	})

	result := make([]TeamStanding, 0, len(ordered))
	rank := 0
	for i, ts := range ordered {
		if i == 0 || ts.Percent != ordered[i-1].Percent || totalProgress(ts.Progress) != totalProgress(ordered[i-1].Progress) {
			rank = i + 1
		}
		ts.Rank = rank
		result = append(result, *ts)
	}
	return result, nil
}

func totalProgress(progress models.MeasureMap) int {
	total := 0
	for _, count := range progress {
		total += count
	}
	return total
}
