package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/praxishq/praxis/internal/models"
	"github.com/praxishq/praxis/pkg/logger"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type TimeEntryService struct {
	db    *gorm.DB
	queue TaskQueue
}

func NewTimeEntryService(db *gorm.DB, queue TaskQueue) *TimeEntryService {
	return &TimeEntryService{db: db, queue: queue}
}

type TimeEntryRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	TaskID     *uint  `json:"task_id"`
	Date       string `json:"date" binding:"required"` // "2006-01-02"
	Minutes    int    `json:"minutes" binding:"required,min=1"`
	Note       string `json:"note"`
}

type TimeEntryListRequest struct {
	EmployeeID uint   `form:"employee_id"`
	From       string `form:"from"`
	To         string `form:"to"`
}

func (s *TimeEntryService) List(req *TimeEntryListRequest) ([]models.TimeEntry, error) {
	query := s.db.Model(&models.TimeEntry{})
	if req.EmployeeID != 0 {
		query = query.Where("employee_id = ?", req.EmployeeID)
	}
	if req.From != "" {
		if from, err := time.Parse(dateKeyLayout, req.From); err == nil {
			query = query.Where("date >= ?", from)
		}
	}
	if req.To != "" {
		if to, err := time.Parse(dateKeyLayout, req.To); err == nil {
			query = query.Where("date <= ?", to)
		}
	}

	var entries []models.TimeEntry
	err := query.Order("date, id").Find(&entries).Error
	return entries, err
}

func (s *TimeEntryService) Create(req *TimeEntryRequest) (*models.TimeEntry, error) {
	date, err := time.Parse(dateKeyLayout, req.Date)
	if err != nil {
		return nil, response.NewBadRequest("date must be YYYY-MM-DD")
	}

	entry := models.TimeEntry{
		EmployeeID: req.EmployeeID,
		TaskID:     req.TaskID,
		Date:       date,
		Minutes:    req.Minutes,
		Note:       req.Note,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	s.enqueueRecompute(entry.EmployeeID, "time entry created")
	return &entry, nil
}

func (s *TimeEntryService) Delete(id uint) error {
	var entry models.TimeEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		return response.NewNotFound("time entry not found")
	}
	if err := s.db.Delete(&models.TimeEntry{}, id).Error; err != nil {
		return err
	}

	s.enqueueRecompute(entry.EmployeeID, "time entry deleted")
	return nil
}

type TimeEntryImportResult struct {
	BatchID  string   `json:"batch_id"`
	Imported int      `json:"imported"`
	Dropped  int      `json:"dropped"`
	Warnings []string `json:"warnings,omitempty"`
}

// Import normalizes loose time-entry records. Entries without a usable date
// or positive duration are dropped with a warning. The batch writes in one
// transaction: a DB error rolls back every row.
func (s *TimeEntryService) Import(records []TimeEntryImport) (*TimeEntryImportResult, error) {
	result := &TimeEntryImportResult{BatchID: uuid.NewString()}
	touched := make(map[uint]bool)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			entry, warnings, ok := NormalizeTimeEntry(&records[i])
			result.Warnings = append(result.Warnings, warnings...)
			if !ok || entry.EmployeeID == 0 {
				result.Dropped++
				continue
			}

			entry.ImportBatchID = result.BatchID
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			result.Imported++
			touched[entry.EmployeeID] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	LogInfo("time_entries", "import", "time entry import finished", result)
	for employeeID := range touched {
		s.enqueueRecompute(employeeID, "time entry import")
	}
	return result, nil
}

func (s *TimeEntryService) enqueueRecompute(employeeID uint, reason string) {
	if s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(&RecomputeTask{EmployeeID: employeeID, Reason: reason}); err != nil {
		logger.Warnf("recompute enqueue failed for employee %d: %v", employeeID, err)
	}
}
