package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/praxishq/praxis/internal/models"
	"github.com/praxishq/praxis/pkg/logger"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type TaskService struct {
	db    *gorm.DB
	queue TaskQueue
}

func NewTaskService(db *gorm.DB, queue TaskQueue) *TaskService {
	return &TaskService{db: db, queue: queue}
}

type TaskRequest struct {
	EmployeeID     uint    `json:"employee_id" binding:"required"`
	ClientID       *uint   `json:"client_id"`
	ClientName     string  `json:"client_name"`
	Description    string  `json:"description" binding:"required"`
	EstimatedHours float64 `json:"estimated_hours"`
	ReportedHours  float64 `json:"reported_hours"`
	Deadline       *string `json:"deadline"` // "2006-01-02", absent = no deadline
	Status         string  `json:"status"`
}

type TaskListRequest struct {
	EmployeeID uint   `form:"employee_id"`
	Status     string `form:"status"`
}

func (s *TaskService) List(req *TaskListRequest) ([]models.Task, error) {
	query := s.db.Model(&models.Task{})
	if req.EmployeeID != 0 {
		query = query.Where("employee_id = ?", req.EmployeeID)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	var tasks []models.Task
	err := query.Order("id").Find(&tasks).Error
	return tasks, err
}

func (s *TaskService) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, response.NewNotFound("task not found")
	}
	return &task, nil
}

func (s *TaskService) applyRequest(task *models.Task, req *TaskRequest) error {
	task.EmployeeID = req.EmployeeID
	task.ClientID = req.ClientID
	task.ClientName = req.ClientName
	task.Description = req.Description
	task.EstimatedHours = req.EstimatedHours
	task.ReportedHours = req.ReportedHours

	if task.EstimatedHours < 0 {
		task.EstimatedHours = 0
	}
	if task.ReportedHours < 0 {
		task.ReportedHours = 0
	}

	task.Deadline = nil
	if req.Deadline != nil && *req.Deadline != "" {
		d, err := time.Parse(dateKeyLayout, *req.Deadline)
		if err != nil {
			return response.NewBadRequest("deadline must be YYYY-MM-DD")
		}
		task.Deadline = &d
	}

	task.Status = models.TaskStatusActive
	if req.Status == models.TaskStatusCompleted {
		task.Status = models.TaskStatusCompleted
	}
	return nil
}

func (s *TaskService) Create(req *TaskRequest) (*models.Task, error) {
	var task models.Task
	if err := s.applyRequest(&task, req); err != nil {
		return nil, err
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}

	s.enqueueRecompute(task.EmployeeID, "task created")
	return &task, nil
}

func (s *TaskService) Update(id uint, req *TaskRequest) (*models.Task, error) {
	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyRequest(task, req); err != nil {
		return nil, err
	}
	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}

	s.enqueueRecompute(task.EmployeeID, "task updated")
	return task, nil
}

func (s *TaskService) Delete(id uint) error {
	task, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.Task{}, id).Error; err != nil {
		return err
	}

	s.enqueueRecompute(task.EmployeeID, "task deleted")
	return nil
}

type TaskImportResult struct {
	BatchID  string   `json:"batch_id"`
	Imported int      `json:"imported"`
	Warnings []string `json:"warnings,omitempty"`
}

// Import normalizes loosely-shaped external task records and stores the
// strict result. Malformed values are repaired and reported as warnings,
// never rejected wholesale. The batch writes in one transaction: a DB
// error rolls back every row.
func (s *TaskService) Import(records []TaskImport) (*TaskImportResult, error) {
	result := &TaskImportResult{BatchID: uuid.NewString()}
	touched := make(map[uint]bool)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			task, warnings := NormalizeTask(&records[i])
			task.ImportBatchID = result.BatchID
			result.Warnings = append(result.Warnings, warnings...)

			if task.EmployeeID == 0 {
				result.Warnings = append(result.Warnings, "record without employee_id skipped")
				continue
			}

			if err := tx.Create(&task).Error; err != nil {
				return err
			}
			result.Imported++
			touched[task.EmployeeID] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	LogInfo("tasks", "import", "task import finished", result)
	for employeeID := range touched {
		s.enqueueRecompute(employeeID, "task import")
	}
	return result, nil
}

func (s *TaskService) enqueueRecompute(employeeID uint, reason string) {
	if s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(&RecomputeTask{EmployeeID: employeeID, Reason: reason}); err != nil {
		logger.Warnf("recompute enqueue failed for employee %d: %v", employeeID, err)
	}
}
