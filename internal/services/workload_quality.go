package services

import (
	"time"

	"github.com/praxishq/praxis/internal/models"
)

// Task hygiene thresholds.
const (
	shouldBeClosedProgress = 0.80
	almostDoneProgress     = 0.95
	almostDoneRemainingMax = 1.0
	nearCompleteProgress   = 0.90
	missingTrackingAgeDays = 1
)

// taskProgress returns reported/estimated, guarding the zero-estimate case:
// a zero-budget task with reported work counts as fully progressed.
func taskProgress(t *models.Task) float64 {
	if t.EstimatedHours > 0 {
		return t.ReportedHours / t.EstimatedHours
	}
	if t.ReportedHours > 0 {
		return 1
	}
	return 0
}

// inspectTaskQuality classifies each active task into mutually-exclusive
// headline buckets, priority order: shouldBeClosed, almostDone,
// nearComplete, missingTimeTracking. Detail lists are per-predicate and may
// overlap.
func inspectTaskQuality(tasks []models.Task, now time.Time, wc WorkCalendar) TaskQuality {
	today := dateOnly(now)
	q := TaskQuality{}

	for i := range tasks {
		task := &tasks[i]
		progress := taskProgress(task)
		overdue := task.Deadline != nil && dateIn(*task.Deadline, today.Location()).Before(today)
		ref := TaskRef{TaskID: task.ID, Description: task.Description, ClientName: task.ClientName}

		shouldClose := overdue && progress >= shouldBeClosedProgress
		almostDone := progress >= almostDoneProgress && task.RemainingHours() < almostDoneRemainingMax
		nearComplete := progress >= nearCompleteProgress
		missingTracking := task.ReportedHours == 0 &&
			workDaysAfter(wc, task.CreatedAt, now) > missingTrackingAgeDays

		if shouldClose {
			q.ShouldBeClosed = append(q.ShouldBeClosed, ref)
		}
		if almostDone {
			q.AlmostDone = append(q.AlmostDone, ref)
		}
		if nearComplete {
			q.NearComplete = append(q.NearComplete, ref)
		}
		if missingTracking {
			q.MissingTimeTracking = append(q.MissingTimeTracking, ref)
		}

		switch {
		case shouldClose:
			q.ShouldBeClosedCount++
		case almostDone:
			q.AlmostDoneCount++
		case nearComplete:
			q.NearCompleteCount++
		case missingTracking:
			q.MissingTimeTrackingCount++
		}
	}

	q.HasIssues = q.ShouldBeClosedCount > 0 || q.AlmostDoneCount > 0 ||
		q.NearCompleteCount > 0 || q.MissingTimeTrackingCount > 0

	return q
}
