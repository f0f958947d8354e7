package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/praxishq/praxis/internal/models"
)

// Upstream trackers export loosely-shaped records where the same value can
// hide under several field names. Everything is normalized here, once, at
// the boundary; the strict models never carry ambiguity into the engine.

// TaskImport is a loose task record as exported by external trackers.
type TaskImport struct {
	EmployeeID uint `json:"employee_id"`

	Client     string `json:"client,omitempty"`
	ClientName string `json:"client_name,omitempty"`

	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	Estimate       *float64 `json:"estimate,omitempty"`
	BudgetHours    *float64 `json:"budget_hours,omitempty"`

	ReportedHours *float64 `json:"reported_hours,omitempty"`
	SpentHours    *float64 `json:"spent_hours,omitempty"`
	LoggedHours   *float64 `json:"logged_hours,omitempty"`

	Deadline string `json:"deadline,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
	Due      string `json:"due,omitempty"`

	Status string `json:"status,omitempty"`
}

// TimeEntryImport is a loose time-entry record.
type TimeEntryImport struct {
	EmployeeID uint  `json:"employee_id"`
	TaskID     *uint `json:"task_id,omitempty"`

	Date     string `json:"date,omitempty"`
	Day      string `json:"day,omitempty"`
	WorkedOn string `json:"worked_on,omitempty"`

	Minutes         *int     `json:"minutes,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Hours           *float64 `json:"hours,omitempty"`

	Note string `json:"note,omitempty"`
}

func firstFloat(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

var importDateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "02.01.2006"}

func parseImportDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := dateOnly(t)
			return &d
		}
	}
	return nil
}

// clampHours floors negative hour values to zero, recording a warning.
// Malformed numbers are a data-quality problem, not a batch failure.
func clampHours(v float64, field string, warnings *[]string) float64 {
	if v < 0 {
		*warnings = append(*warnings, fmt.Sprintf("negative %s %.2f clamped to 0", field, v))
		return 0
	}
	return v
}

// NormalizeTask converts a loose import record into a strict Task, picking
// the first populated synonym per field and clamping bad numbers. Returned
// warnings describe every repair applied.
func NormalizeTask(in *TaskImport) (models.Task, []string) {
	var warnings []string

	estimated := clampHours(firstFloat(in.EstimatedHours, in.Estimate, in.BudgetHours), "estimated hours", &warnings)
	reported := clampHours(firstFloat(in.ReportedHours, in.SpentHours, in.LoggedHours), "reported hours", &warnings)

	deadlineRaw := firstString(in.Deadline, in.DueDate, in.Due)
	deadline := parseImportDate(deadlineRaw)
	if deadlineRaw != "" && deadline == nil {
		warnings = append(warnings, fmt.Sprintf("unparsable deadline %q dropped", deadlineRaw))
	}

	status := models.TaskStatusActive
	switch strings.ToLower(in.Status) {
	case "done", "closed", "completed", "finished":
		status = models.TaskStatusCompleted
	}

	return models.Task{
		EmployeeID:     in.EmployeeID,
		ClientName:     firstString(in.ClientName, in.Client),
		Description:    firstString(in.Description, in.Title, in.Name),
		EstimatedHours: estimated,
		ReportedHours:  reported,
		Deadline:       deadline,
		Status:         status,
	}, warnings
}

// NormalizeTimeEntry converts a loose time entry. The second return is false
// when the record is unusable (no date, or no positive duration).
func NormalizeTimeEntry(in *TimeEntryImport) (models.TimeEntry, []string, bool) {
	var warnings []string

	dateRaw := firstString(in.Date, in.Day, in.WorkedOn)
	date := parseImportDate(dateRaw)
	if date == nil {
		warnings = append(warnings, fmt.Sprintf("unparsable date %q, entry dropped", dateRaw))
		return models.TimeEntry{}, warnings, false
	}

	minutes := 0
	if in.Minutes != nil {
		minutes = *in.Minutes
	} else if in.DurationMinutes != nil {
		minutes = *in.DurationMinutes
	} else if in.Hours != nil {
		minutes = int(*in.Hours * 60)
	}
	if minutes <= 0 {
		warnings = append(warnings, fmt.Sprintf("non-positive duration %d min, entry dropped", minutes))
		return models.TimeEntry{}, warnings, false
	}

	return models.TimeEntry{
		EmployeeID: in.EmployeeID,
		TaskID:     in.TaskID,
		Date:       *date,
		Minutes:    minutes,
		Note:       in.Note,
	}, warnings, true
}
