package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/praxishq/praxis/pkg/logger"
	"gorm.io/gorm"

	"github.com/praxishq/praxis/internal/models"
)

// WorkloadService is the snapshot provider around the pure engine: it
// fetches tasks and time entries once, normalizes them, and layers the
// short-TTL result cache the engine itself must not contain.
type WorkloadService struct {
	db     *gorm.DB
	engine *WorkloadEngine
	cache  *MetricsCache
}

func NewWorkloadService(db *gorm.DB, cal WorkCalendar, cacheTTL time.Duration) *WorkloadService {
	return &WorkloadService{
		db:     db,
		engine: NewWorkloadEngine(cal),
		cache:  NewMetricsCache(cacheTTL),
	}
}

// Engine exposes the underlying pure engine (used by the digest job and
// the recompute worker).
func (s *WorkloadService) Engine() *WorkloadEngine { return s.engine }

// snapshotEmployee loads one employee's immutable inputs.
func (s *WorkloadService) snapshotEmployee(employeeID uint) (EmployeeSnapshot, error) {
	var emp models.Employee
	if err := s.db.First(&emp, employeeID).Error; err != nil {
		return EmployeeSnapshot{}, fmt.Errorf("employee %d: %w", employeeID, err)
	}
	return s.snapshotFor(&emp)
}

func (s *WorkloadService) snapshotFor(emp *models.Employee) (EmployeeSnapshot, error) {
	var tasks []models.Task
	if err := s.db.Where("employee_id = ? AND status = ?", emp.ID, models.TaskStatusActive).
		Order("id").Find(&tasks).Error; err != nil {
		return EmployeeSnapshot{}, err
	}

	var entries []models.TimeEntry
	if err := s.db.Where("employee_id = ?", emp.ID).
		Order("date, id").Find(&entries).Error; err != nil {
		return EmployeeSnapshot{}, err
	}

	return EmployeeSnapshot{
		Employee: emp,
		Tasks:    sanitizeTasks(tasks),
		Entries:  sanitizeEntries(entries),
	}, nil
}

// sanitizeTasks clamps malformed stored records at the boundary. Bad data
// is repaired and logged, never fatal.
func sanitizeTasks(tasks []models.Task) []models.Task {
	for i := range tasks {
		t := &tasks[i]
		if t.EstimatedHours < 0 {
			logger.Warnf("task %d has negative estimated hours %.2f, clamped", t.ID, t.EstimatedHours)
			t.EstimatedHours = 0
		}
		if t.ReportedHours < 0 {
			logger.Warnf("task %d has negative reported hours %.2f, clamped", t.ID, t.ReportedHours)
			t.ReportedHours = 0
		}
	}
	return tasks
}

func sanitizeEntries(entries []models.TimeEntry) []models.TimeEntry {
	kept := entries[:0]
	for _, e := range entries {
		if e.Minutes <= 0 {
			logger.Warnf("time entry %d has non-positive minutes %d, dropped", e.ID, e.Minutes)
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// EmployeeMetrics computes (or serves from cache) one employee's metrics.
func (s *WorkloadService) EmployeeMetrics(employeeID uint) (*WorkloadMetrics, error) {
	snap, err := s.snapshotEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hash := SnapshotHash(snap)
	if cached := s.cache.Get(employeeID, hash, now); cached != nil {
		return cached, nil
	}

	metrics, err := s.engine.ComputeForEmployee(snap, now)
	if err != nil {
		return nil, err
	}
	s.cache.Put(employeeID, hash, now, metrics)
	return metrics, nil
}

// PrewarmEmployee computes metrics off the request path and primes the
// cache. Used by the async recompute worker after imports.
func (s *WorkloadService) PrewarmEmployee(employeeID uint) error {
	_, err := s.EmployeeMetrics(employeeID)
	return err
}

// TeamOverview is the team dashboard payload.
type TeamOverview struct {
	Stats     TeamStats          `json:"stats"`
	Employees []*WorkloadMetrics `json:"employees"`
}

// TeamMetrics scores every active employee. All-or-nothing: a single
// configuration error aborts the whole batch and no metrics are returned.
func (s *WorkloadService) TeamMetrics() (*TeamOverview, error) {
	var employees []models.Employee
	if err := s.db.Where("is_active = ?", true).Order("id").Find(&employees).Error; err != nil {
		return nil, err
	}

	snapshots := make([]EmployeeSnapshot, 0, len(employees))
	for i := range employees {
		snap, err := s.snapshotFor(&employees[i])
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	metrics, err := s.engine.ComputeTeam(snapshots, time.Now())
	if err != nil {
		if IsConfigError(err) {
			LogError("workload", "team_compute", err.Error(), nil)
		}
		return nil, err
	}

	overview := &TeamOverview{
		Stats:     ComputeTeamStats(metrics),
		Employees: make([]*WorkloadMetrics, 0, len(metrics)),
	}
	for _, snap := range snapshots {
		overview.Employees = append(overview.Employees, metrics[snap.Employee.ID])
	}
	sort.Slice(overview.Employees, func(i, j int) bool {
		return overview.Employees[i].EmployeeID < overview.Employees[j].EmployeeID
	})

	return overview, nil
}
