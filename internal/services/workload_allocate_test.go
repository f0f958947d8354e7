package services

import (
	"testing"
	"time"

	"github.com/praxishq/praxis/internal/models"
)

func TestNextWorkDays_SkipsWeekend(t *testing.T) {
	friday := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	days, err := nextWorkDays(weekdayCalendar{}, friday, 5)
	if err != nil {
		t.Fatalf("nextWorkDays() error = %v", err)
	}

	want := []string{"2025-03-14", "2025-03-17", "2025-03-18", "2025-03-19", "2025-03-20"}
	if len(days) != len(want) {
		t.Fatalf("got %d days, expected %d", len(days), len(want))
	}
	for i, d := range days {
		if dateKey(d) != want[i] {
			t.Errorf("day[%d] = %s, expected %s", i, dateKey(d), want[i])
		}
	}
}

func TestWorkDaysAfter(t *testing.T) {
	// Friday Mar 7 to Wednesday Mar 12: Mon 10, Tue 11, Wed 12.
	from := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	if got := workDaysAfter(weekdayCalendar{}, from, testNow); got != 3 {
		t.Errorf("workDaysAfter() = %d, expected 3", got)
	}

	// Same day yields zero.
	if got := workDaysAfter(weekdayCalendar{}, testNow, testNow); got != 0 {
		t.Errorf("workDaysAfter(same day) = %d, expected 0", got)
	}
}

func TestAllocateDailyLoad_EvenSplitWithinHorizon(t *testing.T) {
	// TaskA: 10h remaining, due today+2 work days. TaskB: 4h remaining,
	// due beyond the horizon. TaskB counts toward backlog only.
	tasks := []models.Task{
		activeTask(1, 10, 0, datePtr(2025, time.March, 14)),
		activeTask(2, 4, 0, datePtr(2025, time.March, 26)),
	}

	alloc, err := allocateDailyLoad(tasks, testNow, weekdayCalendar{})
	if err != nil {
		t.Fatalf("allocateDailyLoad() error = %v", err)
	}

	if !almostEqual(alloc.required, 10) {
		t.Errorf("required = %f, expected 10", alloc.required)
	}
	if !almostEqual(alloc.backlog, 14) {
		t.Errorf("backlog = %f, expected 14", alloc.backlog)
	}

	for _, day := range []string{"2025-03-12", "2025-03-13", "2025-03-14"} {
		if !almostEqual(alloc.loads[day], 10.0/3) {
			t.Errorf("loads[%s] = %f, expected %f", day, alloc.loads[day], 10.0/3)
		}
	}
	for _, day := range []string{"2025-03-17", "2025-03-18"} {
		if alloc.loads[day] != 0 {
			t.Errorf("loads[%s] = %f, expected 0", day, alloc.loads[day])
		}
	}

	bd := alloc.breakdown(8)
	if bd.PeakDay != "2025-03-12" {
		t.Errorf("PeakDay = %s, expected earliest max day 2025-03-12", bd.PeakDay)
	}
	if !almostEqual(bd.PeakMultiplier, 10.0/3/8) {
		t.Errorf("PeakMultiplier = %f, expected %f", bd.PeakMultiplier, 10.0/3/8)
	}
}

func TestAllocateDailyLoad_DeadlineDateOnWesternServer(t *testing.T) {
	// A UTC-midnight deadline two work days out still spans three days of
	// the split when "now" carries a zone west of UTC; comparing instants
	// instead of calendar dates would drop the deadline day itself.
	tasks := []models.Task{
		activeTask(1, 10, 0, datePtr(2025, time.March, 14)),
	}

	alloc, err := allocateDailyLoad(tasks, testNowWest, weekdayCalendar{})
	if err != nil {
		t.Fatalf("allocateDailyLoad() error = %v", err)
	}

	for _, day := range []string{"2025-03-12", "2025-03-13", "2025-03-14"} {
		if !almostEqual(alloc.loads[day], 10.0/3) {
			t.Errorf("loads[%s] = %f, expected %f", day, alloc.loads[day], 10.0/3)
		}
	}
}

func TestAllocateDailyLoad_OverdueGoesToToday(t *testing.T) {
	tasks := []models.Task{
		activeTask(1, 6, 0, datePtr(2025, time.March, 10)),
	}

	alloc, err := allocateDailyLoad(tasks, testNow, weekdayCalendar{})
	if err != nil {
		t.Fatalf("allocateDailyLoad() error = %v", err)
	}

	if !almostEqual(alloc.loads["2025-03-12"], 6) {
		t.Errorf("today's load = %f, expected all 6 overdue hours", alloc.loads["2025-03-12"])
	}
	if !almostEqual(alloc.required, 6) {
		t.Errorf("required = %f, expected 6", alloc.required)
	}
}

func TestAllocateDailyLoad_DeadlineToday(t *testing.T) {
	tasks := []models.Task{
		activeTask(1, 4, 0, datePtr(2025, time.March, 12)),
	}

	alloc, err := allocateDailyLoad(tasks, testNow, weekdayCalendar{})
	if err != nil {
		t.Fatalf("allocateDailyLoad() error = %v", err)
	}

	if !almostEqual(alloc.loads["2025-03-12"], 4) {
		t.Errorf("today's load = %f, expected 4", alloc.loads["2025-03-12"])
	}
}

func TestAllocateDailyLoad_NoQualifyingTasks(t *testing.T) {
	tasks := []models.Task{
		activeTask(1, 5, 0, nil),               // no deadline: backlog only
		activeTask(2, 3, 3, datePtr(2025, time.March, 13)), // nothing remaining
	}

	alloc, err := allocateDailyLoad(tasks, testNow, weekdayCalendar{})
	if err != nil {
		t.Fatalf("allocateDailyLoad() error = %v", err)
	}

	if !almostEqual(alloc.backlog, 5) {
		t.Errorf("backlog = %f, expected 5", alloc.backlog)
	}
	if alloc.required != 0 {
		t.Errorf("required = %f, expected 0", alloc.required)
	}
	for day, load := range alloc.loads {
		if load != 0 {
			t.Errorf("loads[%s] = %f, expected all-zero map", day, load)
		}
	}

	bd := alloc.breakdown(8)
	if bd.PeakMultiplier != 0 {
		t.Errorf("PeakMultiplier = %f, expected 0", bd.PeakMultiplier)
	}
	if bd.PeakDay != "2025-03-12" {
		t.Errorf("PeakDay = %s, expected first horizon day", bd.PeakDay)
	}
}

func TestAllocateDailyLoad_RemainingNeverNegative(t *testing.T) {
	// Reported beyond estimate must not produce negative backlog.
	tasks := []models.Task{
		activeTask(1, 5, 9, datePtr(2025, time.March, 13)),
	}

	alloc, err := allocateDailyLoad(tasks, testNow, weekdayCalendar{})
	if err != nil {
		t.Fatalf("allocateDailyLoad() error = %v", err)
	}

	if alloc.backlog != 0 {
		t.Errorf("backlog = %f, expected 0 for over-reported task", alloc.backlog)
	}
	if alloc.required != 0 {
		t.Errorf("required = %f, expected 0", alloc.required)
	}
}

func TestAllocateDailyLoad_TasksByDayCarriesShares(t *testing.T) {
	tasks := []models.Task{
		activeTask(1, 8, 2, datePtr(2025, time.March, 13)),
	}

	alloc, err := allocateDailyLoad(tasks, testNow, weekdayCalendar{})
	if err != nil {
		t.Fatalf("allocateDailyLoad() error = %v", err)
	}

	// 6h remaining over Wed+Thu.
	for _, day := range []string{"2025-03-12", "2025-03-13"} {
		allocations := alloc.byDay[day]
		if len(allocations) != 1 {
			t.Fatalf("byDay[%s] has %d allocations, expected 1", day, len(allocations))
		}
		if allocations[0].TaskID != 1 || !almostEqual(allocations[0].Hours, 3) {
			t.Errorf("byDay[%s] = %+v, expected task 1 with 3h", day, allocations[0])
		}
	}
}
