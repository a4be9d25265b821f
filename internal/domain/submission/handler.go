package submission

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/pkg/response"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/pkg/validator"
)

// retryMessage matches the copy shown on the website forms.
const retryMessage = "There was an error submitting your form. Please try again or call us directly."

// Handler handles submission HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates submission handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SubmitContact handles POST /api/v1/submissions/contact (public)
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Required fields are missing or invalid", errs)
		return
	}

	receipt, err := h.service.ProcessContact(c.Request.Context(), &req)
	if err != nil {
		h.writeSubmissionError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, receipt)
}

// SubmitReferral handles POST /api/v1/submissions/referral (public)
func (h *Handler) SubmitReferral(c *gin.Context) {
	var req ReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Required fields are missing or invalid", errs)
		return
	}

	receipt, err := h.service.ProcessReferral(c.Request.Context(), &req)
	if err != nil {
		h.writeSubmissionError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, receipt)
}

// writeSubmissionError maps service errors onto the response envelope.
// Persistence and notification failures look identical to the submitter.
func (h *Handler) writeSubmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Required fields are missing or invalid")
	case errors.Is(err, ErrPersistence), errors.Is(err, ErrNotification):
		response.Error(c, http.StatusInternalServerError, "SUBMISSION_FAILED", retryMessage)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", retryMessage)
	}
}
