package services

import (
	"github.com/praxishq/praxis/internal/models"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

type EmployeeRequest struct {
	DisplayName     string  `json:"display_name" binding:"required"`
	Role            string  `json:"role"`
	DailyHourTarget float64 `json:"daily_hour_target"`
	IsActive        *bool   `json:"is_active"`
}

func (s *EmployeeService) List() ([]models.Employee, error) {
	var employees []models.Employee
	err := s.db.Order("display_name").Find(&employees).Error
	return employees, err
}

func (s *EmployeeService) GetByID(id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.First(&emp, id).Error; err != nil {
		return nil, response.NewNotFound("employee not found")
	}
	return &emp, nil
}

func (s *EmployeeService) Create(req *EmployeeRequest) (*models.Employee, error) {
	emp := models.Employee{
		DisplayName:     req.DisplayName,
		Role:            req.Role,
		DailyHourTarget: req.DailyHourTarget,
		IsActive:        true,
	}
	if emp.DailyHourTarget <= 0 {
		emp.DailyHourTarget = 8
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.db.Create(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *EmployeeService) Update(id uint, req *EmployeeRequest) (*models.Employee, error) {
	emp, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	emp.DisplayName = req.DisplayName
	emp.Role = req.Role
	if req.DailyHourTarget > 0 {
		emp.DailyHourTarget = req.DailyHourTarget
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.db.Save(emp).Error; err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *EmployeeService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Employee{}, id).Error
}
