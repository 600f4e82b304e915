package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"glg-capital.backend/internal/domain/entities"
	"glg-capital.backend/internal/interfaces/http/response"
	"glg-capital.backend/internal/usecases"
)

// ClientHandler serves the client settings of the current user
type ClientHandler struct {
	clientUsecase *usecases.ClientUsecase
}

func NewClientHandler(clientUsecase *usecases.ClientUsecase) *ClientHandler {
	return &ClientHandler{clientUsecase: clientUsecase}
}

// GetMine returns the client row of the current user
// GET /api/v1/me/client
func (h *ClientHandler) GetMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	client, err := h.clientUsecase.GetForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, client)
}

// SaveMine replaces the client settings of the current user
// PUT /api/v1/me/client
func (h *ClientHandler) SaveMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.ClientInput
	if !bindJSON(c, &input) {
		return
	}

	client, err := h.clientUsecase.SaveForUser(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, client)
}
