package services

import (
	"math"
	"time"

	"github.com/praxishq/praxis/internal/models"
)

// weekdayCalendar is a fixed Monday-Friday calendar so engine tests do not
// depend on region holiday data.
type weekdayCalendar struct{}

func (weekdayCalendar) IsWorkDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func (weekdayCalendar) HolidayName(t time.Time) string { return "" }

func (weekdayCalendar) DailyTarget(emp *models.Employee) (float64, error) {
	if emp == nil || emp.DailyHourTarget <= 0 {
		return 0, &ConfigError{Reason: "daily hour target missing or invalid"}
	}
	return emp.DailyHourTarget, nil
}

// testNow is Wednesday 2025-03-12. The weekday horizon from here is
// Mar 12, 13, 14, 17, 18.
var testNow = time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)

// testNowWest is the same instant seen from a server five hours west of
// UTC, still on Mar 12 locally. Deadlines are stored as UTC midnights, so
// this exercises the calendar-date comparison against a non-UTC "today".
var testNowWest = testNow.In(time.FixedZone("UTC-5", -5*60*60))

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func testEmployee() *models.Employee {
	return &models.Employee{ID: 1, DisplayName: "Dana Reeves", Role: "associate", DailyHourTarget: 8}
}

func activeTask(id uint, estimated, reported float64, deadline *time.Time) models.Task {
	return models.Task{
		ID:             id,
		EmployeeID:     1,
		Description:    "task",
		EstimatedHours: estimated,
		ReportedHours:  reported,
		Deadline:       deadline,
		Status:         models.TaskStatusActive,
		CreatedAt:      testNow.AddDate(0, 0, -10),
		UpdatedAt:      testNow.AddDate(0, 0, -1),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
