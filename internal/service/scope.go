package service

import (
	"writing-tracker-backend/internal/database/models"
	"writing-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// ScopeFilterRequest is the wire shape of a scope filter, shared by goals
// and leaderboard memberships. Empty id sets mean "all".
type ScopeFilterRequest struct {
	WorkIDs []uuid.UUID `json:"work_ids"`
	TagIDs  []uuid.UUID `json:"tag_ids"`
}

// toModel converts the request shape into the persisted scope filter.
func (r ScopeFilterRequest) toModel() models.ScopeFilter {
	return models.ScopeFilter{WorkIDs: r.WorkIDs, TagIDs: r.TagIDs}
}

// buildTallyFilter translates a scope filter plus measure and date bounds
// into a ledger query. This is the single place the empty-means-unfiltered
// convention is interpreted; goal evaluation and leaderboard aggregation
// both go through it.
func buildTallyFilter(scope models.ScopeFilter, measures []models.Measure, startDate, endDate string) repository.TallyFilter {
	return repository.TallyFilter{
		WorkIDs:   scope.WorkIDs,
		TagIDs:    scope.TagIDs,
		Measures:  measures,
		StartDate: startDate,
		EndDate:   endDate,
	}
}

// sumByMeasure folds a slice of the ledger into per-measure progress.
// Negative deltas (corrections) subtract exactly like positive ones add.
func sumByMeasure(tallies []models.Tally) models.MeasureMap {
	progress := models.MeasureMap{}
	for _, t := range tallies {
		progress = progress.Add(t.Measure, t.Count)
	}
	return progress
}
