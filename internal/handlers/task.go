package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/praxishq/praxis/internal/services"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(db *gorm.DB, queue services.TaskQueue) *TaskHandler {
	return &TaskHandler{
		taskService: services.NewTaskService(db, queue),
	}
}

// List returns tasks, filterable by employee and status
// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	var req services.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tasks, err := h.taskService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tasks)
}

// GetByID returns one task
// GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, task)
}

// Create adds a task
// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req services.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, task)
}

// Update modifies a task
// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, task)
}

// Delete removes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}

// Import accepts loosely-shaped external task records
// POST /api/tasks/import
func (h *TaskHandler) Import(c *gin.Context) {
	var records []services.TaskImport
	if err := c.ShouldBindJSON(&records); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.taskService.Import(records)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
