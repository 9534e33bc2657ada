package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/service"
)

type ContactHandler struct {
	service service.ContactService
	log     *logger.Logger
}

func NewContactHandler(service service.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log,
	}
}

// @Summary Submit a contact message
// @Description Submit a message through the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param submission body dto.SubmitContactRequest true "Submission"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req dto.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SubmitContact(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Success: true,
		Message: "Message sent successfully. We will get back to you soon.",
		ID:      resp.Submission.ID,
	})
}

// @Summary List contact submissions
// @Description List contact form submissions, newest first
// @Tags Contact
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListContactSubmissionsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /contact [get]
func (h *ContactHandler) ListContactSubmissions(c *gin.Context) {
	resp, err := h.service.ListContactSubmissions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Submit a custom vehicle search
// @Description Ask the dealership to find a specific vehicle
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitCustomSearchRequest true "Request"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /custom-search [post]
func (h *ContactHandler) SubmitCustomSearch(c *gin.Context) {
	var req dto.SubmitCustomSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SubmitCustomSearch(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Success: true,
		Message: "Search request received. Our team will reach out with matches.",
		ID:      resp.CustomSearchRequest.ID,
	})
}

// @Summary List custom search requests
// @Description List custom vehicle search requests, newest first
// @Tags Contact
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListCustomSearchesResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /custom-search [get]
func (h *ContactHandler) ListCustomSearches(c *gin.Context) {
	resp, err := h.service.ListCustomSearches(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
