package models

// Measure is the unit progress is counted in. Time is always minutes,
// end to end, so sums never accumulate rounding drift.
type Measure string

const (
	MeasureWord    Measure = "word"
	MeasurePage    Measure = "page"
	MeasureChapter Measure = "chapter"
	MeasureScene   Measure = "scene"
	MeasureLine    Measure = "line"
	MeasureTime    Measure = "time"
)

// AllMeasures lists every valid measure in display order.
var AllMeasures = []Measure{
	MeasureWord, MeasurePage, MeasureChapter, MeasureScene, MeasureLine, MeasureTime,
}

// IsValid checks if the Measure is valid
func (m Measure) IsValid() bool {
	switch m {
	case MeasureWord, MeasurePage, MeasureChapter, MeasureScene, MeasureLine, MeasureTime:
		return true
	}
	return false
}

// WorkPhase defines the lifecycle phase of a writing project
type WorkPhase string

const (
	WorkPhasePlanning  WorkPhase = "planning"
	WorkPhaseOutlining WorkPhase = "outlining"
	WorkPhaseDrafting  WorkPhase = "drafting"
	WorkPhaseRevising  WorkPhase = "revising"
	WorkPhaseOnHold    WorkPhase = "on_hold"
	WorkPhaseFinished  WorkPhase = "finished"
	WorkPhaseAbandoned WorkPhase = "abandoned"
)

// IsValid checks if the WorkPhase is valid
func (p WorkPhase) IsValid() bool {
	switch p {
	case WorkPhasePlanning, WorkPhaseOutlining, WorkPhaseDrafting,
		WorkPhaseRevising, WorkPhaseOnHold, WorkPhaseFinished, WorkPhaseAbandoned:
		return true
	}
	return false
}

// GoalType discriminates the two goal shapes
type GoalType string

const (
	GoalTypeTarget GoalType = "target"
	GoalTypeHabit  GoalType = "habit"
)

// IsValid checks if the GoalType is valid
func (t GoalType) IsValid() bool {
	return t == GoalTypeTarget || t == GoalTypeHabit
}

// CadenceUnit is the calendar unit a habit goal recurs in
type CadenceUnit string

const (
	CadenceUnitDay   CadenceUnit = "day"
	CadenceUnitWeek  CadenceUnit = "week"
	CadenceUnitMonth CadenceUnit = "month"
	CadenceUnitYear  CadenceUnit = "year"
)

// IsValid checks if the CadenceUnit is valid
func (u CadenceUnit) IsValid() bool {
	switch u {
	case CadenceUnitDay, CadenceUnitWeek, CadenceUnitMonth, CadenceUnitYear:
		return true
	}
	return false
}
