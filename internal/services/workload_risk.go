package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/praxishq/praxis/internal/models"
)

// Risk thresholds.
const (
	workloadMediumMax = 85.0
	workloadLowMax    = 50.0
	workloadHighMax   = 110.0

	urgentWindowDays      = 3
	urgentCriticalCount   = 3
	coverageCriticalBelow = 70.0
	coverageHighBelow     = 100.0
	peakOverloadFactor    = 1.5
)

// classifyWorkload maps a capacity-utilization percentage to a level.
func classifyWorkload(score float64) RiskLevel {
	switch {
	case score <= workloadLowMax:
		return RiskLow
	case score <= workloadMediumMax:
		return RiskMedium
	case score <= workloadHighMax:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// countUrgentTasks returns (urgent, overdue) for active tasks with remaining
// work. Urgent means overdue or due within the next 3 calendar days.
func countUrgentTasks(tasks []models.Task, now time.Time) (int, int) {
	today := dateOnly(now)
	urgentCutoff := today.AddDate(0, 0, urgentWindowDays)

	urgent := 0
	overdue := 0
	for i := range tasks {
		task := &tasks[i]
		if task.Deadline == nil || task.RemainingHours() <= 0 {
			continue
		}
		deadline := dateIn(*task.Deadline, today.Location())
		if deadline.Before(today) {
			overdue++
			urgent++
		} else if !deadline.After(urgentCutoff) {
			urgent++
		}
	}
	return urgent, overdue
}

// escalate returns the more severe of the two levels. Manager risk may only
// escalate above the workload level, never downgrade.
func escalate(base, to RiskLevel) RiskLevel {
	if to.Rank() > base.Rank() {
		return to
	}
	return base
}

// classifyManagerRisk escalates the workload level using urgent-task count
// and coverage, and builds reasons in a fixed priority order: overdue tasks,
// urgent count, peak-day overload, insufficient coverage.
func classifyManagerRisk(workloadLevel RiskLevel, urgent, overdue int, coverage Coverage, breakdown DailyBreakdown) ManagerRisk {
	level := workloadLevel
	if urgent >= urgentCriticalCount {
		level = escalate(level, RiskCritical)
	}
	if coverage.CoverageRatio != nil && *coverage.CoverageRatio < coverageCriticalBelow {
		level = escalate(level, RiskCritical)
	}
	if urgent > 0 {
		level = escalate(level, RiskHigh)
	}
	if coverage.CoverageRatio != nil && *coverage.CoverageRatio < coverageHighBelow {
		level = escalate(level, RiskHigh)
	}

	var reasons []string
	if overdue > 0 {
		reasons = append(reasons, fmt.Sprintf("%d task(s) past deadline", overdue))
	}
	if urgent > 0 {
		reasons = append(reasons, fmt.Sprintf("%d task(s) due within %d days", urgent, urgentWindowDays))
	}
	if breakdown.PeakMultiplier >= peakOverloadFactor {
		reasons = append(reasons, fmt.Sprintf("peak day %s at %.1fx daily capacity", breakdown.PeakDay, breakdown.PeakMultiplier))
	}
	if coverage.CoverageRatio != nil && *coverage.CoverageRatio < coverageHighBelow {
		reasons = append(reasons, fmt.Sprintf("only %.0f%% of deadline work is covered by available hours", *coverage.CoverageRatio))
	}

	return ManagerRisk{Level: level, Reasons: reasons}
}

// rankRiskyTasks lists deadline-bearing tasks with remaining work, most
// pressing first: fewest days until deadline, then most remaining hours.
func rankRiskyTasks(tasks []models.Task, now time.Time) []RiskyTask {
	today := dateOnly(now)

	var risky []RiskyTask
	for i := range tasks {
		task := &tasks[i]
		if task.Deadline == nil || task.RemainingHours() <= 0 {
			continue
		}
		deadline := dateIn(*task.Deadline, today.Location())
		days := int(deadline.Sub(today).Hours() / 24)

		level := RiskLow
		switch {
		case days < 0:
			level = RiskCritical
		case days <= 1:
			level = RiskHigh
		case days <= horizonDays:
			level = RiskMedium
		}

		risky = append(risky, RiskyTask{
			TaskID:            task.ID,
			Description:       task.Description,
			ClientName:        task.ClientName,
			Deadline:          dateKey(deadline),
			DaysUntilDeadline: days,
			RemainingHours:    task.RemainingHours(),
			RiskLevel:         level,
		})
	}

	sort.Slice(risky, func(i, j int) bool {
		if risky[i].DaysUntilDeadline != risky[j].DaysUntilDeadline {
			return risky[i].DaysUntilDeadline < risky[j].DaysUntilDeadline
		}
		if risky[i].RemainingHours != risky[j].RemainingHours {
			return risky[i].RemainingHours > risky[j].RemainingHours
		}
		return risky[i].TaskID < risky[j].TaskID
	})

	return risky
}

// buildAlerts derives dashboard alerts in a fixed order: overdue work,
// peak-day overload, coverage shortfall, sparse reporting, task hygiene.
func buildAlerts(overdue int, breakdown DailyBreakdown, coverage Coverage, confidence DataConfidence, quality TaskQuality) []Alert {
	var alerts []Alert

	if overdue > 0 {
		alerts = append(alerts, Alert{
			Severity: "critical",
			Message:  fmt.Sprintf("%d task(s) past deadline", overdue),
			Tip:      "Close or reschedule overdue work before it distorts planning",
		})
	}
	if breakdown.PeakMultiplier >= peakOverloadFactor {
		alerts = append(alerts, Alert{
			Severity: "warning",
			Message:  fmt.Sprintf("%s is loaded at %.1fx the daily target", breakdown.PeakDay, breakdown.PeakMultiplier),
			Tip:      "Spread deadline work across quieter days",
		})
	}
	if coverage.CoverageRatio != nil && coverage.CoverageGap > 0 {
		alerts = append(alerts, Alert{
			Severity: "warning",
			Message:  fmt.Sprintf("deadline work exceeds available hours by %.1fh this week", coverage.CoverageGap),
		})
	}
	if confidence.Level == ConfidenceLow || confidence.Level == ConfidenceNoData {
		alerts = append(alerts, Alert{
			Severity: "info",
			Message:  "time reporting is too sparse to trust these numbers",
			Tip:      "Encourage daily time entries",
		})
	}
	if quality.HasIssues {
		issues := quality.ShouldBeClosedCount + quality.AlmostDoneCount +
			quality.NearCompleteCount + quality.MissingTimeTrackingCount
		alerts = append(alerts, Alert{
			Severity: "info",
			Message:  fmt.Sprintf("%d task hygiene issue(s) found", issues),
		})
	}

	return alerts
}
