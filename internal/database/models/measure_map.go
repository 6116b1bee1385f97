package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MeasureMap maps a measure to an integer amount. Stored as jsonb.
type MeasureMap map[Measure]int

// Value implements driver.Valuer for jsonb storage
func (m MeasureMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(MeasureMap{})
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb storage
func (m *MeasureMap) Scan(value interface{}) error {
	if value == nil {
		*m = MeasureMap{}
		return nil
	}
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, m)
}

// Get returns the amount for a measure, defaulting to zero.
func (m MeasureMap) Get(measure Measure) int {
	if m == nil {
		return 0
	}
	return m[measure]
}

// Add accumulates amount under measure, allocating if needed.
func (m MeasureMap) Add(measure Measure, amount int) MeasureMap {
	if m == nil {
		m = MeasureMap{}
	}
	m[measure] += amount
	return m
}

// Merge adds every entry of other into m.
func (m MeasureMap) Merge(other MeasureMap) MeasureMap {
	for measure, amount := range other {
		m = m.Add(measure, amount)
	}
	return m
}

// MeasureList is an ordered set of measures. Stored as jsonb.
type MeasureList []Measure

// Value implements driver.Valuer for jsonb storage
func (l MeasureList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(MeasureList{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage
func (l *MeasureList) Scan(value interface{}) error {
	if value == nil {
		*l = MeasureList{}
		return nil
	}
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, l)
}

// Contains reports whether measure is in the list.
func (l MeasureList) Contains(measure Measure) bool {
	for _, m := range l {
		if m == measure {
			return true
		}
	}
	return false
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
