package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"glg-capital.backend/internal/domain/entities"
	"glg-capital.backend/internal/interfaces/http/response"
	"glg-capital.backend/internal/usecases"
)

// AdminHandler serves the admin console endpoints that are not tied to one resource
type AdminHandler struct {
	adminUsecase  *usecases.AdminUsecase
	clientUsecase *usecases.ClientUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase, clientUsecase *usecases.ClientUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, clientUsecase: clientUsecase}
}

// ListUsers
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": users})
}

// ListClients
// GET /api/v1/admin/clients
func (h *AdminHandler) ListClients(c *gin.Context) {
	clients, err := h.clientUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": clients})
}

// GetClient
// GET /api/v1/admin/clients/:id
func (h *AdminHandler) GetClient(c *gin.Context) {
	client, err := h.clientUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, client)
}

// Stats returns dashboard counters
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// SendMessage delivers an admin message to one user
// POST /api/v1/admin/notifications
func (h *AdminHandler) SendMessage(c *gin.Context) {
	var input entities.AdminMessageInput
	if !bindJSON(c, &input) {
		return
	}

	notification, err := h.adminUsecase.SendMessage(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, notification)
}
