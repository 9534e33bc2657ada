package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/service"
)

type FAQHandler struct {
	service service.FAQService
	log     *logger.Logger
}

func NewFAQHandler(service service.FAQService, log *logger.Logger) *FAQHandler {
	return &FAQHandler{
		service: service,
		log:     log,
	}
}

// @Summary List FAQs
// @Description List active FAQs ordered for display
// @Tags FAQs
// @Accept json
// @Produce json
// @Success 200 {object} dto.ListFAQsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /faqs [get]
func (h *FAQHandler) ListFAQs(c *gin.Context) {
	resp, err := h.service.ListFAQs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Create an FAQ
// @Description Create an FAQ entry
// @Tags FAQs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param faq body dto.CreateFAQRequest true "FAQ"
// @Success 201 {object} dto.FAQResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /faqs [post]
func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req dto.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Update an FAQ
// @Description Update fields of an FAQ entry
// @Tags FAQs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "FAQ ID"
// @Param faq body dto.UpdateFAQRequest true "FAQ"
// @Success 200 {object} dto.FAQResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /faqs/{id} [put]
func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	var req dto.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateFAQ(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Submit a question
// @Description Submit a customer question for the dealership to answer
// @Tags FAQs
// @Accept json
// @Produce json
// @Param question body dto.SubmitFAQQuestionRequest true "Question"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /faqs/questions [post]
func (h *FAQHandler) SubmitQuestion(c *gin.Context) {
	var req dto.SubmitFAQQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SubmitQuestion(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Success: true,
		Message: "Question submitted successfully. We will get back to you soon.",
		ID:      resp.Question.ID,
	})
}

// @Summary List questions
// @Description List customer submitted questions, newest first
// @Tags FAQs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListFAQQuestionsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /faqs/questions [get]
func (h *FAQHandler) ListQuestions(c *gin.Context) {
	resp, err := h.service.ListQuestions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
