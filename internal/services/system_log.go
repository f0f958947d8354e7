package services

import (
	"encoding/json"
	"time"

	"github.com/praxishq/praxis/internal/models"
	"gorm.io/gorm"
)

var systemLogDB *gorm.DB

// InitSystemLogger wires the DB-backed operational log. Safe to leave
// uninitialized in tests; logging becomes a no-op.
func InitSystemLogger(db *gorm.DB) {
	systemLogDB = db
}

func LogInfo(module, action, message string, extra interface{}) {
	writeSystemLog("info", module, action, message, extra)
}

func LogWarning(module, action, message string, extra interface{}) {
	writeSystemLog("warning", module, action, message, extra)
}

func LogError(module, action, message string, extra interface{}) {
	writeSystemLog("error", module, action, message, extra)
}

func writeSystemLog(level, module, action, message string, extra interface{}) {
	if systemLogDB == nil {
		return
	}

	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	systemLogDB.Create(&models.SystemLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	})
}

type SystemLogService struct {
	db *gorm.DB
}

func NewSystemLogService(db *gorm.DB) *SystemLogService {
	return &SystemLogService{db: db}
}

type SystemLogListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Level    string `form:"level"`
	Module   string `form:"module"`
}

type SystemLogListResponse struct {
	Total int64              `json:"total"`
	Items []models.SystemLog `json:"items"`
}

func (s *SystemLogService) List(req *SystemLogListRequest) (*SystemLogListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.SystemLog{})
	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Module != "" {
		query = query.Where("module = ?", req.Module)
	}

	var resp SystemLogListResponse
	if err := query.Count(&resp.Total).Error; err != nil {
		return nil, err
	}

	err := query.Order("created_at DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&resp.Items).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
