package service

import (
	"time"

	"writing-tracker-backend/internal/database/models"
)

const dateLayout = "2006-01-02"

// HabitWindow is one cadence window of a habit goal, with inclusive bounds.
type HabitWindow struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Progress  models.MeasureMap `json:"progress"`
	Achieved  bool              `json:"achieved"`
}

// habitWindows partitions [startDate, rangeEnd] into consecutive cadence
// windows and marks each achieved or not. rangeEnd is the later of today and
// the goal's end date cap; the final window may still be in progress.
//
// Alignment is calendar-aware: week windows snap back to the configured week
// start day, month windows to the first of the month, year windows to
// January 1st. Day windows start exactly at startDate.
func habitWindows(params models.HabitParams, tallies []models.Tally, startDate, rangeEnd string, weekStart time.Weekday) []HabitWindow {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, rangeEnd)
	if err != nil || end.Before(start) {
		return nil
	}

	origin := alignWindowOrigin(start, params.Cadence.Unit, weekStart)
	period := params.Cadence.Period
	if period < 1 {
		period = 1
	}

	var windows []HabitWindow
	for ws := origin; !ws.After(end); ws = stepCadence(ws, params.Cadence.Unit, period) {
		next := stepCadence(ws, params.Cadence.Unit, period)
		we := next.AddDate(0, 0, -1)

		wsStr := ws.Format(dateLayout)
		weStr := we.Format(dateLayout)

		progress := models.MeasureMap{}
		logged := 0
		for _, t := range tallies {
			if t.Date >= wsStr && t.Date <= weStr {
				progress = progress.Add(t.Measure, t.Count)
				logged++
			}
		}

		achieved := false
		if params.Threshold == nil {
			achieved = logged > 0
		} else {
			achieved = progress.Get(params.Threshold.Measure) >= params.Threshold.Count
		}

		windows = append(windows, HabitWindow{
			StartDate: wsStr,
			EndDate:   weStr,
			Progress:  progress,
			Achieved:  achieved,
		})
	}
	return windows
}

// currentStreak counts consecutive achieved windows ending at the most
// recent fully-or-partially elapsed window. An unachieved final window that
// is still open (contains today) does not break the run.
func currentStreak(windows []HabitWindow, today string) int {
	i := len(windows) - 1
	if i >= 0 && !windows[i].Achieved && windows[i].EndDate >= today {
		i--
	}

	streak := 0
	for ; i >= 0; i-- {
		if !windows[i].Achieved {
			break
		}
		streak++
	}
	return streak
}

func alignWindowOrigin(start time.Time, unit models.CadenceUnit, weekStart time.Weekday) time.Time {
	switch unit {
	case models.CadenceUnitWeek:
		offset := (int(start.Weekday()) - int(weekStart) + 7) % 7
		return start.AddDate(0, 0, -offset)
	case models.CadenceUnitMonth:
		return time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	case models.CadenceUnitYear:
		return time.Date(start.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return start
	}
}

func stepCadence(t time.Time, unit models.CadenceUnit, period int) time.Time {
	switch unit {
	case models.CadenceUnitWeek:
		return t.AddDate(0, 0, 7*period)
	case models.CadenceUnitMonth:
		return t.AddDate(0, period, 0)
	case models.CadenceUnitYear:
		return t.AddDate(period, 0, 0)
	default:
		return t.AddDate(0, 0, period)
	}
}

// minDate compares YYYY-MM-DD strings, which ordering makes safe.
func minDate(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if a < b {
		return a
	}
	return b
}
