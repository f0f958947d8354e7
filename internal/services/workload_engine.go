package services

import (
	"sync"
	"time"

	"github.com/praxishq/praxis/internal/models"
)

// WorkloadEngine computes capacity-utilization metrics from immutable
// snapshots. It is a pure function of its inputs and "now": no hidden
// state, no I/O, safe for concurrent use.
type WorkloadEngine struct {
	cal WorkCalendar
}

func NewWorkloadEngine(cal WorkCalendar) *WorkloadEngine {
	return &WorkloadEngine{cal: cal}
}

// ComputeForEmployee runs the full scoring pipeline for one employee.
// It fails (rather than defaulting) when the calendar cannot resolve a
// valid daily-hour target: a silent default would corrupt every ratio
// downstream without any visible signal.
func (e *WorkloadEngine) ComputeForEmployee(snap EmployeeSnapshot, now time.Time) (*WorkloadMetrics, error) {
	target, err := e.cal.DailyTarget(snap.Employee)
	if err != nil {
		return nil, err
	}

	active := make([]models.Task, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if t.IsActive() {
			active = append(active, t)
		}
	}

	alloc, err := allocateDailyLoad(active, now, e.cal)
	if err != nil {
		if ce, ok := err.(*ConfigError); ok && ce.EmployeeID == 0 {
			ce.EmployeeID = snap.Employee.ID
		}
		return nil, err
	}

	breakdown := alloc.breakdown(target)
	coverage := analyzeCoverage(alloc.required, target, horizonDays)

	availableThisWeek := coverage.AvailableHours
	workloadScore := 0.0
	if availableThisWeek > 0 {
		workloadScore = alloc.backlog / availableThisWeek * 100
	}
	workloadLevel := classifyWorkload(workloadScore)

	urgent, overdue := countUrgentTasks(active, now)
	confidence := scoreReliability(active, snap.Entries, now, e.cal)
	quality := inspectTaskQuality(active, now, e.cal)
	managerRisk := classifyManagerRisk(workloadLevel, urgent, overdue, coverage, breakdown)

	return &WorkloadMetrics{
		EmployeeID:  snap.Employee.ID,
		DisplayName: snap.Employee.DisplayName,

		WorkloadScore: workloadScore,
		WorkloadLevel: workloadLevel,
		ManagerRisk:   managerRisk,

		ActiveTasksCount:       len(active),
		UrgentTasksCount:       urgent,
		TotalBacklogHours:      alloc.backlog,
		AvailableHoursThisWeek: availableThisWeek,

		DailyBreakdown:    breakdown,
		Next5DaysCoverage: coverage,
		DataConfidence:    confidence,
		TaskQuality:       quality,
		RiskyTasks:        rankRiskyTasks(active, now),
		Alerts:            buildAlerts(overdue, breakdown, coverage, confidence, quality),

		ComputedAt: now,
	}, nil
}

// ComputeTeam scores every employee independently, fanning out one
// goroutine per snapshot. The batch is all-or-nothing: any failure discards
// every result, so a consumer never sees a partially-populated team.
func (e *WorkloadEngine) ComputeTeam(snapshots []EmployeeSnapshot, now time.Time) (map[uint]*WorkloadMetrics, error) {
	results := make([]*WorkloadMetrics, len(snapshots))
	errs := make([]error, len(snapshots))

	var wg sync.WaitGroup
	for i := range snapshots {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = e.ComputeForEmployee(snapshots[i], now)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	metrics := make(map[uint]*WorkloadMetrics, len(snapshots))
	for i, m := range results {
		metrics[snapshots[i].Employee.ID] = m
	}
	return metrics, nil
}
