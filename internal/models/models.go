package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a system login account.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash
	Email     string         `gorm:"size:255" json:"email"`
	Role      string         `gorm:"size:50;default:user" json:"role"` // admin, user
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time     `json:"last_login"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Employee represents a fee earner whose workload is scored.
type Employee struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	DisplayName     string         `gorm:"size:200;not null" json:"display_name"`
	Role            string         `gorm:"size:100" json:"role"` // partner, associate, paralegal, ...
	DailyHourTarget float64        `gorm:"default:8" json:"daily_hour_target"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// Client represents a client account tasks are billed against.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:200;not null" json:"name"`
	Contact   string         `gorm:"size:255" json:"contact"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Task statuses
const (
	TaskStatusActive    = "active"
	TaskStatusCompleted = "completed"
)

// Task represents a budgeted piece of work assigned to one employee.
type Task struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	EmployeeID     uint           `gorm:"index;not null" json:"employee_id"`
	Employee       *Employee      `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	ClientID       *uint          `gorm:"index" json:"client_id"`
	ClientName     string         `gorm:"size:200" json:"client_name"`
	Description    string         `gorm:"size:500" json:"description"`
	EstimatedHours float64        `json:"estimated_hours"`
	ReportedHours  float64        `json:"reported_hours"`
	Deadline       *time.Time     `json:"deadline"`
	Status         string         `gorm:"size:20;default:active;index" json:"status"`
	ImportBatchID  string         `gorm:"size:40;index" json:"import_batch_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// RemainingHours returns the unreported part of the task budget.
// Never negative, regardless of overage.
func (t *Task) RemainingHours() float64 {
	remaining := t.EstimatedHours - t.ReportedHours
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsActive reports whether the task still counts toward workload.
func (t *Task) IsActive() bool {
	return t.Status == TaskStatusActive
}

// TimeEntry is one reported block of work. TaskID is nil for internal,
// non-billable activity.
type TimeEntry struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	EmployeeID    uint           `gorm:"index;not null" json:"employee_id"`
	TaskID        *uint          `gorm:"index" json:"task_id"`
	Date          time.Time      `gorm:"index;not null" json:"date"`
	Minutes       int            `gorm:"not null" json:"minutes"`
	Note          string         `gorm:"size:500" json:"note"`
	ImportBatchID string         `gorm:"size:40;index" json:"import_batch_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// SystemLog records operational events (imports, digests, batch failures).
type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     string    `gorm:"size:20;index" json:"level"` // info, warning, error
	Module    string    `gorm:"size:100;index" json:"module"`
	Action    string    `gorm:"size:200;index" json:"action"`
	Message   string    `gorm:"type:text" json:"message"`
	Extra     string    `gorm:"type:text" json:"extra"` // JSON extra data
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (SystemLog) TableName() string { return "system_logs" }
