package services

import (
	"time"

	"github.com/praxishq/praxis/internal/models"
)

// horizonDays is the forward planning window: the next 5 work days,
// today included when today is a work day.
const horizonDays = 5

const dateKeyLayout = "2006-01-02"

func dateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// dateOnly truncates to midnight in the time's location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dateIn rebuilds t's calendar date at midnight in loc. Stored deadlines
// are UTC midnights while "today" carries the server's zone; comparing them
// as instants would shift the date, so both sides are rebuilt in one
// location first.
func dateIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// nextWorkDays returns the first n work days starting at from (inclusive).
// A calendar that produces no work day within a year is broken configuration.
func nextWorkDays(wc WorkCalendar, from time.Time, n int) ([]time.Time, error) {
	days := make([]time.Time, 0, n)
	d := dateOnly(from)
	for i := 0; i < 366 && len(days) < n; i++ {
		if wc.IsWorkDay(d) {
			days = append(days, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	if len(days) < n {
		return nil, &ConfigError{Reason: "work calendar yields no work days"}
	}
	return days, nil
}

// workDaysAfter counts work days in (from, to], used for task age.
func workDaysAfter(wc WorkCalendar, from, to time.Time) int {
	start := dateIn(from, to.Location()).AddDate(0, 0, 1)
	end := dateOnly(to)
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wc.IsWorkDay(d) {
			count++
		}
	}
	return count
}

// dailyAllocation is the allocator's output consumed by the coverage and
// risk stages.
type dailyAllocation struct {
	horizon  []time.Time
	loads    map[string]float64
	byDay    map[string][]TaskAllocation
	required float64 // hours allocated into the horizon
	backlog  float64 // remaining hours across all active tasks
}

// allocateDailyLoad spreads each task's remaining hours across the forward
// horizon. Overdue work lands entirely in the first bucket; deadlines inside
// the horizon split evenly across the work days from now to the deadline;
// deadlines beyond the horizon (or absent) count toward backlog only.
func allocateDailyLoad(tasks []models.Task, now time.Time, wc WorkCalendar) (*dailyAllocation, error) {
	horizon, err := nextWorkDays(wc, now, horizonDays)
	if err != nil {
		return nil, err
	}

	alloc := &dailyAllocation{
		horizon: horizon,
		loads:   make(map[string]float64, len(horizon)),
		byDay:   make(map[string][]TaskAllocation, len(horizon)),
	}
	for _, d := range horizon {
		alloc.loads[dateKey(d)] = 0
	}

	today := dateOnly(now)
	last := horizon[len(horizon)-1]

	for i := range tasks {
		task := &tasks[i]
		remaining := task.RemainingHours()
		if remaining <= 0 {
			continue
		}
		alloc.backlog += remaining

		if task.Deadline == nil {
			continue
		}
		deadline := dateIn(*task.Deadline, today.Location())
		if deadline.After(last) {
			continue
		}

		var window []time.Time
		if deadline.Before(today) {
			// Overdue: everything is due now.
			window = horizon[:1]
		} else {
			for _, d := range horizon {
				if !d.After(deadline) {
					window = append(window, d)
				}
			}
			if len(window) == 0 {
				// Deadline falls before the first work day (e.g. a
				// weekend deadline seen on Saturday). Treat as due now.
				window = horizon[:1]
			}
		}

		share := remaining / float64(len(window))
		for _, d := range window {
			key := dateKey(d)
			alloc.loads[key] += share
			alloc.byDay[key] = append(alloc.byDay[key], TaskAllocation{
				TaskID:      task.ID,
				Description: task.Description,
				ClientName:  task.ClientName,
				Hours:       share,
			})
		}
		alloc.required += remaining
	}

	return alloc, nil
}

// breakdown folds the allocation into the dashboard-facing histogram.
// The peak day is the earliest day carrying the maximum load.
func (a *dailyAllocation) breakdown(dailyTarget float64) DailyBreakdown {
	peakDay := a.horizon[0]
	peakLoad := a.loads[dateKey(peakDay)]
	for _, d := range a.horizon[1:] {
		if load := a.loads[dateKey(d)]; load > peakLoad {
			peakLoad = load
			peakDay = d
		}
	}

	multiplier := 0.0
	if dailyTarget > 0 {
		multiplier = peakLoad / dailyTarget
	}

	return DailyBreakdown{
		DailyLoads:     a.loads,
		TasksByDay:     a.byDay,
		PeakDay:        dateKey(peakDay),
		PeakDayLoad:    peakLoad,
		PeakMultiplier: multiplier,
	}
}
