package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/praxishq/praxis/internal/services"
	"github.com/praxishq/praxis/pkg/response"
)

type WorkloadHandler struct {
	workloadService *services.WorkloadService
}

func NewWorkloadHandler(workloadService *services.WorkloadService) *WorkloadHandler {
	return &WorkloadHandler{workloadService: workloadService}
}

// EmployeeMetrics returns one employee's workload metrics
// GET /api/workload/employees/:id
func (h *WorkloadHandler) EmployeeMetrics(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	metrics, err := h.workloadService.EmployeeMetrics(id)
	if err != nil {
		if services.IsConfigError(err) {
			response.Error(c, response.NewUnavailable(err.Error()))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}

// TeamMetrics returns every employee's metrics plus team stats.
// The batch is all-or-nothing: on a configuration error the client gets an
// explicit unavailable state and no metrics at all.
// GET /api/workload/team
func (h *WorkloadHandler) TeamMetrics(c *gin.Context) {
	overview, err := h.workloadService.TeamMetrics()
	if err != nil {
		if services.IsConfigError(err) {
			response.Error(c, response.NewUnavailable(err.Error()))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}
