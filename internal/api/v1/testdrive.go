package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/service"
)

type TestDriveHandler struct {
	service service.TestDriveService
	log     *logger.Logger
}

func NewTestDriveHandler(service service.TestDriveService, log *logger.Logger) *TestDriveHandler {
	return &TestDriveHandler{
		service: service,
		log:     log,
	}
}

// @Summary Schedule a test drive
// @Description Schedule a test drive appointment
// @Tags TestDrives
// @Accept json
// @Produce json
// @Param request body dto.ScheduleTestDriveRequest true "Request"
// @Success 200 {object} dto.TestDriveResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /test-drives [post]
func (h *TestDriveHandler) ScheduleTestDrive(c *gin.Context) {
	var req dto.ScheduleTestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ScheduleTestDrive(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get a test drive request
// @Description Get a test drive request by ID
// @Tags TestDrives
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.TestDriveResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /test-drives/{id} [get]
func (h *TestDriveHandler) GetTestDrive(c *gin.Context) {
	resp, err := h.service.GetTestDrive(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List test drive requests
// @Description List all test drive requests, newest first
// @Tags TestDrives
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListTestDrivesResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /test-drives [get]
func (h *TestDriveHandler) ListTestDrives(c *gin.Context) {
	resp, err := h.service.ListTestDrives(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a test drive request
// @Description Update the status or details of a test drive request
// @Tags TestDrives
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Param request body dto.UpdateTestDriveRequest true "Request"
// @Success 200 {object} dto.TestDriveResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /test-drives/{id} [put]
func (h *TestDriveHandler) UpdateTestDrive(c *gin.Context) {
	var req dto.UpdateTestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateTestDrive(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
