package services

import (
	"time"

	"github.com/praxishq/praxis/internal/models"
)

// Reliability sub-score weights and penalties.
const (
	weightTemporalReporting = 0.30
	weightTaskCoverage      = 0.35
	weightQualityScore      = 0.35

	penaltyOverdueNoReport = 25.0
	penaltyStaleTask       = 10.0
	staleAfterDays         = 30

	confidenceHighMin   = 70.0
	confidenceMediumMin = 30.0
)

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// scoreReliability combines three weighted sub-scores into one 0-100 data
// confidence score with an explainable breakdown:
//   - temporalReporting: share of elapsed work days this week with at least
//     one time entry (100 when the week has no elapsed work days yet).
//   - taskCoverage: share of active tasks with at least one time entry ever
//     (100 when there are no active tasks).
//   - qualityScore: 100 minus penalties for overdue-unreported and stale tasks.
func scoreReliability(tasks []models.Task, entries []models.TimeEntry, now time.Time, wc WorkCalendar) DataConfidence {
	today := dateOnly(now)

	// Monday of the current week.
	weekStart := today
	for weekStart.Weekday() != time.Monday {
		weekStart = weekStart.AddDate(0, 0, -1)
	}

	entryDays := make(map[string]bool)
	for i := range entries {
		entryDays[dateKey(entries[i].Date)] = true
	}

	elapsed := 0
	reported := 0
	for d := weekStart; !d.After(today); d = d.AddDate(0, 0, 1) {
		if !wc.IsWorkDay(d) {
			continue
		}
		elapsed++
		if entryDays[dateKey(d)] {
			reported++
		}
	}

	temporal := 100.0
	if elapsed > 0 {
		temporal = float64(reported) / float64(elapsed) * 100
	}

	trackedTaskIDs := make(map[uint]bool)
	for i := range entries {
		if entries[i].TaskID != nil {
			trackedTaskIDs[*entries[i].TaskID] = true
		}
	}

	tracked := 0
	overdueNoReport := 0
	stale := 0
	for i := range tasks {
		task := &tasks[i]
		if trackedTaskIDs[task.ID] {
			tracked++
		}
		if task.ReportedHours == 0 && task.Deadline != nil && dateIn(*task.Deadline, today.Location()).Before(today) {
			overdueNoReport++
		}
		if now.Sub(task.UpdatedAt) >= staleAfterDays*24*time.Hour {
			stale++
		}
	}

	taskCoverage := 100.0
	if len(tasks) > 0 {
		taskCoverage = float64(tracked) / float64(len(tasks)) * 100
	}

	quality := 100.0 - float64(overdueNoReport)*penaltyOverdueNoReport - float64(stale)*penaltyStaleTask

	components := ConfidenceComponents{
		TemporalReporting: clampScore(temporal),
		TaskCoverage:      clampScore(taskCoverage),
		QualityScore:      clampScore(quality),
	}

	score := weightTemporalReporting*components.TemporalReporting +
		weightTaskCoverage*components.TaskCoverage +
		weightQualityScore*components.QualityScore

	level := ConfidenceLow
	switch {
	case len(tasks) == 0 && len(entries) == 0:
		// No signal at all: nothing here is worth trusting.
		level = ConfidenceNoData
	case score >= confidenceHighMin:
		level = ConfidenceHigh
	case score >= confidenceMediumMin:
		level = ConfidenceMedium
	}

	return DataConfidence{
		Score:      score,
		Level:      level,
		Components: components,
		Details: ConfidenceDetails{
			WorkDaysElapsed:  elapsed,
			DaysWithEntries:  reported,
			TrackedTasks:     tracked,
			TotalTasks:       len(tasks),
			OverdueNoReport:  overdueNoReport,
			StaleTasks:       stale,
			TotalTimeEntries: len(entries),
		},
	}
}
