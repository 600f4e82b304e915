package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/interfaces/http/response"
	"glg-capital.backend/internal/usecases"
)

// KYCHandler handles both the onboarding form and the document records
type KYCHandler struct {
	kycUsecase *usecases.KYCUsecase
}

// NewKYCHandler creates a new KYC handler
func NewKYCHandler(kycUsecase *usecases.KYCUsecase) *KYCHandler {
	return &KYCHandler{kycUsecase: kycUsecase}
}

// Submit stores the onboarding form and sends the e-mail code
// POST /api/v1/kyc/simple
func (h *KYCHandler) Submit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.SubmitSimpleKYCInput
	if !bindJSON(c, &input) {
		return
	}

	form, err := h.kycUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, form)
}

// GetMine returns the latest onboarding form of the current user
// GET /api/v1/kyc/simple
func (h *KYCHandler) GetMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	form, err := h.kycUsecase.GetFormForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, form)
}

// VerifyEmail checks the one-time code
// POST /api/v1/kyc/simple/:id/verify
func (h *KYCHandler) VerifyEmail(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.VerifyEmailInput
	if !bindJSON(c, &input) {
		return
	}

	form, err := h.kycUsecase.VerifyEmail(c.Request.Context(), userID, c.Param("id"), input.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, form)
}

// ResendCode issues a fresh verification code
// POST /api/v1/kyc/simple/:id/resend
func (h *KYCHandler) ResendCode(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.kycUsecase.ResendCode(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Verification code sent"})
}

// SubmitRecord stores a document based KYC submission
// POST /api/v1/kyc/records
func (h *KYCHandler) SubmitRecord(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.SubmitKYCRecordInput
	if !bindJSON(c, &input) {
		return
	}

	record, err := h.kycUsecase.SubmitRecord(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, record)
}

// GetMyRecord returns the document record of the current user
// GET /api/v1/kyc/records
func (h *KYCHandler) GetMyRecord(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	record, err := h.kycUsecase.GetRecordForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// ListRecords lists every document record
// GET /api/v1/admin/kyc
func (h *KYCHandler) ListRecords(c *gin.Context) {
	records, err := h.kycUsecase.ListRecords(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": records})
}

// ReviewRecord sets the status of a document record
// PATCH /api/v1/admin/kyc/:id/status
func (h *KYCHandler) ReviewRecord(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	status := entities.KYCStatus(input.Status)
	if !status.Valid() {
		response.Error(c, domainerrors.BadRequest("Invalid KYC status"))
		return
	}

	record, err := h.kycUsecase.ReviewRecord(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// ListForms lists every onboarding form
// GET /api/v1/admin/simple-kyc
func (h *KYCHandler) ListForms(c *gin.Context) {
	forms, err := h.kycUsecase.ListForms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": forms})
}

// GetForm returns one onboarding form
// GET /api/v1/admin/simple-kyc/:id
func (h *KYCHandler) GetForm(c *gin.Context) {
	form, err := h.kycUsecase.GetForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, form)
}

// ReviewForm records an admin decision on an onboarding form
// PATCH /api/v1/admin/simple-kyc/:id/review
func (h *KYCHandler) ReviewForm(c *gin.Context) {
	reviewerID, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.ReviewKYCInput
	if !bindJSON(c, &input) {
		return
	}
	if !entities.SimpleKYCStatus(input.Status).Reviewable() {
		response.Error(c, domainerrors.BadRequest("Status must be under_review, approved or rejected"))
		return
	}

	form, err := h.kycUsecase.Review(c.Request.Context(), c.Param("id"), reviewerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, form)
}
