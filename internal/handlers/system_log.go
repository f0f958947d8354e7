package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/praxishq/praxis/internal/services"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type SystemLogHandler struct {
	systemLogService *services.SystemLogService
}

func NewSystemLogHandler(db *gorm.DB) *SystemLogHandler {
	return &SystemLogHandler{
		systemLogService: services.NewSystemLogService(db),
	}
}

// List returns operational log entries
// GET /api/system-logs
func (h *SystemLogHandler) List(c *gin.Context) {
	var req services.SystemLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.systemLogService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}
