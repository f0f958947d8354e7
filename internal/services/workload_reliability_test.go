package services

import (
	"testing"
	"time"

	"github.com/praxishq/praxis/internal/models"
)

func entryOn(day int, taskID *uint) models.TimeEntry {
	return models.TimeEntry{
		EmployeeID: 1,
		TaskID:     taskID,
		Date:       time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
		Minutes:    60,
	}
}

func TestScoreReliability_TemporalReporting(t *testing.T) {
	// Week of Mar 10; elapsed work days through Wednesday: Mon, Tue, Wed.
	// Entries exist for Mon and Tue only.
	taskID := uint(1)
	tasks := []models.Task{activeTask(1, 10, 2, nil)}
	entries := []models.TimeEntry{entryOn(10, &taskID), entryOn(11, &taskID)}

	dc := scoreReliability(tasks, entries, testNow, weekdayCalendar{})

	if dc.Details.WorkDaysElapsed != 3 {
		t.Errorf("WorkDaysElapsed = %d, expected 3", dc.Details.WorkDaysElapsed)
	}
	if dc.Details.DaysWithEntries != 2 {
		t.Errorf("DaysWithEntries = %d, expected 2", dc.Details.DaysWithEntries)
	}
	if !almostEqual(dc.Components.TemporalReporting, 200.0/3) {
		t.Errorf("TemporalReporting = %f, expected %f", dc.Components.TemporalReporting, 200.0/3)
	}
}

func TestScoreReliability_TaskCoverage(t *testing.T) {
	taskID := uint(1)
	tasks := []models.Task{
		activeTask(1, 10, 2, nil),
		activeTask(2, 5, 0, nil),
	}
	entries := []models.TimeEntry{entryOn(12, &taskID)}

	dc := scoreReliability(tasks, entries, testNow, weekdayCalendar{})

	if dc.Details.TrackedTasks != 1 || dc.Details.TotalTasks != 2 {
		t.Errorf("tracked/total = %d/%d, expected 1/2", dc.Details.TrackedTasks, dc.Details.TotalTasks)
	}
	if !almostEqual(dc.Components.TaskCoverage, 50) {
		t.Errorf("TaskCoverage = %f, expected 50", dc.Components.TaskCoverage)
	}
}

func TestScoreReliability_QualityPenalties(t *testing.T) {
	stale := activeTask(1, 10, 2, nil)
	stale.UpdatedAt = testNow.AddDate(0, 0, -45)

	overdueUnreported := activeTask(2, 5, 0, datePtr(2025, time.March, 3))

	tasks := []models.Task{stale, overdueUnreported}
	dc := scoreReliability(tasks, nil, testNow, weekdayCalendar{})

	if dc.Details.StaleTasks != 1 {
		t.Errorf("StaleTasks = %d, expected 1", dc.Details.StaleTasks)
	}
	if dc.Details.OverdueNoReport != 1 {
		t.Errorf("OverdueNoReport = %d, expected 1", dc.Details.OverdueNoReport)
	}
	if !almostEqual(dc.Components.QualityScore, 100-penaltyOverdueNoReport-penaltyStaleTask) {
		t.Errorf("QualityScore = %f, expected %f", dc.Components.QualityScore, 100-penaltyOverdueNoReport-penaltyStaleTask)
	}
}

func TestScoreReliability_DueTodayOnWesternServer(t *testing.T) {
	// An unreported task due today is not overdue, so no penalty applies
	// regardless of the server's zone.
	tasks := []models.Task{activeTask(1, 10, 0, datePtr(2025, time.March, 12))}

	dc := scoreReliability(tasks, nil, testNowWest, weekdayCalendar{})

	if dc.Details.OverdueNoReport != 0 {
		t.Errorf("OverdueNoReport = %d, expected 0 for a task due today", dc.Details.OverdueNoReport)
	}
	if !almostEqual(dc.Components.QualityScore, 100) {
		t.Errorf("QualityScore = %f, expected 100", dc.Components.QualityScore)
	}
}

func TestScoreReliability_QualityFloorsAtZero(t *testing.T) {
	var tasks []models.Task
	for i := uint(1); i <= 6; i++ {
		tasks = append(tasks, activeTask(i, 5, 0, datePtr(2025, time.March, 3)))
	}

	dc := scoreReliability(tasks, nil, testNow, weekdayCalendar{})

	if dc.Components.QualityScore != 0 {
		t.Errorf("QualityScore = %f, expected floor at 0", dc.Components.QualityScore)
	}
}

// mar17HolidayCalendar marks Monday 2025-03-17 as a holiday; otherwise
// plain weekdays.
type mar17HolidayCalendar struct{ weekdayCalendar }

func (mar17HolidayCalendar) IsWorkDay(t time.Time) bool {
	if t.Year() == 2025 && t.Month() == time.March && t.Day() == 17 {
		return false
	}
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func TestScoreReliability_NoElapsedWorkDays(t *testing.T) {
	// Monday is a holiday and it is still Monday: the week has zero elapsed
	// work days, so the absence of entries cannot count against anyone.
	holidayMonday := time.Date(2025, time.March, 17, 9, 0, 0, 0, time.UTC)
	taskID := uint(1)
	tasks := []models.Task{activeTask(1, 10, 2, nil)}
	entries := []models.TimeEntry{entryOn(12, &taskID)}

	dc := scoreReliability(tasks, entries, holidayMonday, mar17HolidayCalendar{})

	if dc.Details.WorkDaysElapsed != 0 {
		t.Errorf("WorkDaysElapsed = %d, expected 0", dc.Details.WorkDaysElapsed)
	}
	if !almostEqual(dc.Components.TemporalReporting, 100) {
		t.Errorf("TemporalReporting = %f, expected 100 with no elapsed work days", dc.Components.TemporalReporting)
	}
}

func TestScoreReliability_WeightedTotal(t *testing.T) {
	taskID := uint(1)
	tasks := []models.Task{activeTask(1, 10, 2, nil)}
	entries := []models.TimeEntry{entryOn(10, &taskID), entryOn(11, &taskID), entryOn(12, &taskID)}

	dc := scoreReliability(tasks, entries, testNow, weekdayCalendar{})

	want := weightTemporalReporting*dc.Components.TemporalReporting +
		weightTaskCoverage*dc.Components.TaskCoverage +
		weightQualityScore*dc.Components.QualityScore
	if !almostEqual(dc.Score, want) {
		t.Errorf("Score = %f, expected weighted %f", dc.Score, want)
	}
	// All components perfect here: high confidence.
	if dc.Level != ConfidenceHigh {
		t.Errorf("Level = %s, expected %s", dc.Level, ConfidenceHigh)
	}
}

func TestScoreReliability_EmptyDefaults(t *testing.T) {
	// Zero active tasks still scores taskCoverage at 100, but with no
	// entries at all the level is the no-data state.
	dc := scoreReliability(nil, nil, testNow, weekdayCalendar{})

	if !almostEqual(dc.Components.TaskCoverage, 100) {
		t.Errorf("TaskCoverage = %f, expected 100 with zero tasks", dc.Components.TaskCoverage)
	}
	if dc.Level != ConfidenceNoData {
		t.Errorf("Level = %s, expected %s", dc.Level, ConfidenceNoData)
	}
}

func TestScoreReliability_ComponentsBounded(t *testing.T) {
	taskID := uint(1)
	tasks := []models.Task{activeTask(1, 10, 2, nil)}
	var entries []models.TimeEntry
	// Multiple entries on the same day must not push temporal above 100.
	for i := 0; i < 5; i++ {
		entries = append(entries, entryOn(12, &taskID))
	}

	dc := scoreReliability(tasks, entries, testNow, weekdayCalendar{})

	for name, v := range map[string]float64{
		"temporal": dc.Components.TemporalReporting,
		"coverage": dc.Components.TaskCoverage,
		"quality":  dc.Components.QualityScore,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s component = %f, expected within [0,100]", name, v)
		}
	}
}
