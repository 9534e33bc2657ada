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

type PromotionHandler struct {
	service service.PromotionService
	log     *logger.Logger
}

func NewPromotionHandler(service service.PromotionService, log *logger.Logger) *PromotionHandler {
	return &PromotionHandler{
		service: service,
		log:     log,
	}
}

// @Summary List promotions
// @Description List promotions, active and unexpired by default
// @Tags Promotions
// @Accept json
// @Produce json
// @Param filter query types.PromotionFilter false "Filter"
// @Success 200 {object} dto.ListPromotionsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /promotions [get]
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	var filter types.PromotionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPromotions(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get a promotion
// @Description Get a promotion by ID
// @Tags Promotions
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} dto.PromotionResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /promotions/{id} [get]
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	resp, err := h.service.GetPromotion(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Create a promotion
// @Description Create a promotion
// @Tags Promotions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param promotion body dto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} dto.PromotionResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /promotions [post]
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePromotion(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Update a promotion
// @Description Update fields of a promotion
// @Tags Promotions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Promotion ID"
// @Param promotion body dto.UpdatePromotionRequest true "Promotion"
// @Success 200 {object} dto.PromotionResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /promotions/{id} [put]
func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	var req dto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdatePromotion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a promotion
// @Description Delete a promotion
// @Tags Promotions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Promotion ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	if err := h.service.DeletePromotion(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "promotion deleted successfully"})
}
