package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
)

// ScopeFilter restricts which tallies count toward a goal or a leaderboard
// membership. An empty id set means "no restriction" on that dimension.
// Goals and memberships share this type so the empty-means-all convention
// lives in exactly one place. Stored as jsonb.
type ScopeFilter struct {
	WorkIDs []uuid.UUID `json:"work_ids"`
	TagIDs  []uuid.UUID `json:"tag_ids"`
}

// Value implements driver.Valuer for jsonb storage
func (f ScopeFilter) Value() (driver.Value, error) {
	return json.Marshal(f)
}

// Scan implements sql.Scanner for jsonb storage
func (f *ScopeFilter) Scan(value interface{}) error {
	if value == nil {
		*f = ScopeFilter{}
		return nil
	}
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, f)
}
