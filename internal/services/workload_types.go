package services

import (
	"time"

	"github.com/praxishq/praxis/internal/models"
)

// RiskLevel classifies capacity utilization and manager-facing risk.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Rank orders risk levels for escalation: low < medium < high < critical.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return -1
	}
}

// Confidence levels for the data-reliability score.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
	ConfidenceNoData = "no_data" // zero tasks and zero time entries
)

// TaskAllocation is one task's share of a single day's load.
type TaskAllocation struct {
	TaskID      uint    `json:"task_id"`
	Description string  `json:"description"`
	ClientName  string  `json:"client_name"`
	Hours       float64 `json:"hours"`
}

// DailyBreakdown is the per-day load histogram over the forward horizon.
type DailyBreakdown struct {
	DailyLoads     map[string]float64          `json:"daily_loads"`
	TasksByDay     map[string][]TaskAllocation `json:"tasks_by_day"`
	PeakDay        string                      `json:"peak_day"`
	PeakDayLoad    float64                     `json:"peak_day_load"`
	PeakMultiplier float64                     `json:"peak_multiplier"`
}

// Coverage compares deadline-driven hours against available capacity in the
// horizon. CoverageRatio is nil when there is no deadline pressure at all;
// it is never produced by dividing by zero.
type Coverage struct {
	RequiredHours  float64  `json:"required_hours"`
	AvailableHours float64  `json:"available_hours"`
	CoverageRatio  *float64 `json:"coverage_ratio"`
	CoverageGap    float64  `json:"coverage_gap"`
}

// ConfidenceComponents are the three weighted sub-scores, each in [0,100].
type ConfidenceComponents struct {
	TemporalReporting float64 `json:"temporal_reporting"`
	TaskCoverage      float64 `json:"task_coverage"`
	QualityScore      float64 `json:"quality_score"`
}

// ConfidenceDetails carries the raw counts behind each sub-score so a
// consumer can explain the score.
type ConfidenceDetails struct {
	WorkDaysElapsed  int `json:"work_days_elapsed"`
	DaysWithEntries  int `json:"days_with_entries"`
	TrackedTasks     int `json:"tracked_tasks"`
	TotalTasks       int `json:"total_tasks"`
	OverdueNoReport  int `json:"overdue_no_report"`
	StaleTasks       int `json:"stale_tasks"`
	TotalTimeEntries int `json:"total_time_entries"`
}

// DataConfidence estimates how trustworthy the computed metrics are.
type DataConfidence struct {
	Score      float64              `json:"score"`
	Level      string               `json:"level"`
	Components ConfidenceComponents `json:"components"`
	Details    ConfidenceDetails    `json:"details"`
}

// TaskRef identifies a task inside a quality detail list.
type TaskRef struct {
	TaskID      uint   `json:"task_id"`
	Description string `json:"description"`
	ClientName  string `json:"client_name"`
}

// TaskQuality flags hygiene defects in the task list. Headline counts are
// mutually exclusive by priority; detail lists are per-predicate and a task
// may appear in more than one.
type TaskQuality struct {
	ShouldBeClosedCount      int  `json:"should_be_closed_count"`
	AlmostDoneCount          int  `json:"almost_done_count"`
	NearCompleteCount        int  `json:"near_complete_count"`
	MissingTimeTrackingCount int  `json:"missing_time_tracking_count"`
	HasIssues                bool `json:"has_issues"`

	ShouldBeClosed      []TaskRef `json:"should_be_closed,omitempty"`
	AlmostDone          []TaskRef `json:"almost_done,omitempty"`
	NearComplete        []TaskRef `json:"near_complete,omitempty"`
	MissingTimeTracking []TaskRef `json:"missing_time_tracking,omitempty"`
}

// ManagerRisk is the escalated risk level with ordered human-readable reasons.
type ManagerRisk struct {
	Level   RiskLevel `json:"level"`
	Reasons []string  `json:"reasons"`
}

// RiskyTask is one deadline-bearing task in the ranked risk list.
type RiskyTask struct {
	TaskID            uint      `json:"task_id"`
	Description       string    `json:"description"`
	ClientName        string    `json:"client_name"`
	Deadline          string    `json:"deadline"`
	DaysUntilDeadline int       `json:"days_until_deadline"`
	RemainingHours    float64   `json:"remaining_hours"`
	RiskLevel         RiskLevel `json:"risk_level"`
}

// Alert is a dashboard-facing warning with an optional tip.
type Alert struct {
	Severity string `json:"severity"` // critical, warning, info
	Message  string `json:"message"`
	Tip      string `json:"tip,omitempty"`
}

// WorkloadMetrics is the complete immutable scoring snapshot for one
// employee. A new computation produces a new value; nothing mutates it.
type WorkloadMetrics struct {
	EmployeeID  uint   `json:"employee_id"`
	DisplayName string `json:"display_name"`

	WorkloadScore float64     `json:"workload_score"`
	WorkloadLevel RiskLevel   `json:"workload_level"`
	ManagerRisk   ManagerRisk `json:"manager_risk"`

	ActiveTasksCount       int     `json:"active_tasks_count"`
	UrgentTasksCount       int     `json:"urgent_tasks_count"`
	TotalBacklogHours      float64 `json:"total_backlog_hours"`
	AvailableHoursThisWeek float64 `json:"available_hours_this_week"`

	DailyBreakdown    DailyBreakdown `json:"daily_breakdown"`
	Next5DaysCoverage Coverage       `json:"next_5_days_coverage"`
	DataConfidence    DataConfidence `json:"data_confidence"`
	TaskQuality       TaskQuality    `json:"task_quality"`
	RiskyTasks        []RiskyTask    `json:"risky_tasks"`
	Alerts            []Alert        `json:"alerts"`

	ComputedAt time.Time `json:"computed_at"`
}

// TeamStats aggregates all employees' metrics.
type TeamStats struct {
	AverageScore     float64 `json:"average_score"`
	AvailableCount   int     `json:"available_count"`
	CriticalCount    int     `json:"critical_count"`
	TotalUrgentTasks int     `json:"total_urgent_tasks"`
}

// EmployeeSnapshot is one employee's immutable input to the engine. The
// caller fetches everything up front; the engine performs no I/O.
type EmployeeSnapshot struct {
	Employee *models.Employee
	Tasks    []models.Task
	Entries  []models.TimeEntry
}
