package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/service"
	"github.com/nvamotors/dealership-api/internal/types"
)

type TestimonialHandler struct {
	service service.TestimonialService
	log     *logger.Logger
}

func NewTestimonialHandler(service service.TestimonialService, log *logger.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		service: service,
		log:     log,
	}
}

// @Summary List testimonials
// @Description List testimonials, approved only by default
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param filter query types.TestimonialFilter false "Filter"
// @Success 200 {object} dto.ListTestimonialsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	var filter types.TestimonialFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListTestimonials(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Submit a testimonial
// @Description Submit a customer testimonial for moderation
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param testimonial body dto.CreateTestimonialRequest true "Testimonial"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /testimonials [post]
func (h *TestimonialHandler) SubmitTestimonial(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SubmitTestimonial(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Success: true,
		Message: "Thank you for your feedback. Your testimonial is pending review.",
		ID:      resp.Testimonial.ID,
	})
}

// @Summary Update a testimonial
// @Description Update fields of a testimonial, including approval
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Testimonial ID"
// @Param testimonial body dto.UpdateTestimonialRequest true "Testimonial"
// @Success 200 {object} dto.TestimonialResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /testimonials/{id} [put]
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	var req dto.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateTestimonial(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a testimonial
// @Description Delete a testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.service.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "testimonial deleted successfully"})
}
