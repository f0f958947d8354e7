package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/praxishq/praxis/internal/services"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: services.NewEmployeeService(db),
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// List returns all employees
// GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employees)
}

// GetByID returns one employee
// GET /api/employees/:id
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	emp, err := h.employeeService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, emp)
}

// Create adds an employee
// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req services.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	emp, err := h.employeeService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, emp)
}

// Update modifies an employee
// PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	emp, err := h.employeeService.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, emp)
}

// Delete removes an employee
// DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}
