package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/praxishq/praxis/internal/services"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type TimeEntryHandler struct {
	timeEntryService *services.TimeEntryService
}

func NewTimeEntryHandler(db *gorm.DB, queue services.TaskQueue) *TimeEntryHandler {
	return &TimeEntryHandler{
		timeEntryService: services.NewTimeEntryService(db, queue),
	}
}

// List returns time entries, filterable by employee and date range
// GET /api/time-entries
func (h *TimeEntryHandler) List(c *gin.Context) {
	var req services.TimeEntryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entries, err := h.timeEntryService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

// Create adds a time entry
// POST /api/time-entries
func (h *TimeEntryHandler) Create(c *gin.Context) {
	var req services.TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.timeEntryService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Delete removes a time entry
// DELETE /api/time-entries/:id
func (h *TimeEntryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.timeEntryService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}

// Import accepts loosely-shaped external time-entry records
// POST /api/time-entries/import
func (h *TimeEntryHandler) Import(c *gin.Context) {
	var records []services.TimeEntryImport
	if err := c.ShouldBindJSON(&records); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.timeEntryService.Import(records)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
