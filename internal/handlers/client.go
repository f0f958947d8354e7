package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/praxishq/praxis/internal/services"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{
		clientService: services.NewClientService(db),
	}
}

// List returns all clients
// GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, clients)
}

// GetByID returns one client
// GET /api/clients/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, client)
}

// Create adds a client
// POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req services.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, client)
}

// Update modifies a client
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, client)
}

// Delete removes a client
// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}
