package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/interfaces/http/response"
	"glg-capital.backend/internal/usecases"
)

// InvestmentHandler handles investment endpoints
type InvestmentHandler struct {
	investmentUsecase *usecases.InvestmentUsecase
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentUsecase *usecases.InvestmentUsecase) *InvestmentHandler {
	return &InvestmentHandler{investmentUsecase: investmentUsecase}
}

// Create opens a pending investment for the current user
// POST /api/v1/investments
func (h *InvestmentHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.CreateInvestmentInput
	if !bindJSON(c, &input) {
		return
	}

	investment, err := h.investmentUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, investment)
}

// ListMine lists the investments of the current user
// GET /api/v1/investments
func (h *InvestmentHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	investments, err := h.investmentUsecase.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": investments})
}

// GetMine returns one investment owned by the current user
// GET /api/v1/investments/:id
func (h *InvestmentHandler) GetMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	investment, err := h.investmentUsecase.GetForUser(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, investment)
}

// List lists every investment
// GET /api/v1/admin/investments
func (h *InvestmentHandler) List(c *gin.Context) {
	investments, err := h.investmentUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": investments})
}

// UpdateStatus changes the status and notifies the owner
// PATCH /api/v1/admin/investments/:id/status
func (h *InvestmentHandler) UpdateStatus(c *gin.Context) {
	var input entities.UpdateInvestmentStatusInput
	if !bindJSON(c, &input) {
		return
	}
	status := entities.InvestmentStatus(input.Status)
	if !status.Valid() {
		response.Error(c, domainerrors.BadRequest("Invalid investment status"))
		return
	}

	investment, err := h.investmentUsecase.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, investment)
}

// Update applies a partial update without notifying the owner
// PATCH /api/v1/admin/investments/:id
func (h *InvestmentHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if !bindJSON(c, &fields) {
		return
	}
	if len(fields) == 0 {
		response.Error(c, domainerrors.BadRequest("No fields to update"))
		return
	}

	investment, err := h.investmentUsecase.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, investment)
}

// Delete removes an investment
// DELETE /api/v1/admin/investments/:id
func (h *InvestmentHandler) Delete(c *gin.Context) {
	if err := h.investmentUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
