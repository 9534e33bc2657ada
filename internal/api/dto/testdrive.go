package dto

import (
	"context"
	"time"

	"github.com/nvamotors/dealership-api/internal/domain/testdrive"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/types"
	"github.com/nvamotors/dealership-api/internal/validator"
)

// ScheduleTestDriveRequest mirrors the booking form payload, hence the
// camelCase field names.
type ScheduleTestDriveRequest struct {
	CustomerName    string `json:"customerName" validate:"required,min=1,max=100"`
	CustomerEmail   string `json:"customerEmail" validate:"required,email,max=255"`
	CustomerPhone   string `json:"customerPhone" validate:"required,min=5,max=30"`
	SelectedVehicle string `json:"selectedVehicle" validate:"required,min=1,max=200"`
	PreferredDate   string `json:"preferredDate" validate:"required,max=30"`
	PreferredTime   string `json:"preferredTime" validate:"required,max=30"`
	AdditionalNotes string `json:"additionalNotes" validate:"omitempty,max=2000"`
}

type UpdateTestDriveRequest struct {
	Status          *types.TestDriveStatus `json:"status"`
	PreferredDate   *string                `json:"preferredDate" validate:"omitempty,max=30"`
	PreferredTime   *string                `json:"preferredTime" validate:"omitempty,max=30"`
	AdditionalNotes *string                `json:"additionalNotes" validate:"omitempty,max=2000"`
}

type TestDriveResponse struct {
	*testdrive.Request
}

type ListTestDrivesResponse struct {
	Requests []*TestDriveResponse `json:"requests"`
}

func (r *ScheduleTestDriveRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *ScheduleTestDriveRequest) ToRequest(ctx context.Context) *testdrive.Request {
	return &testdrive.Request{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TEST_DRIVE),
		BookingCode:     types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_BOOKING),
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		SelectedVehicle: r.SelectedVehicle,
		PreferredDate:   r.PreferredDate,
		PreferredTime:   r.PreferredTime,
		AdditionalNotes: r.AdditionalNotes,
		Status:          types.TestDriveStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}

func (r *UpdateTestDriveRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != nil && !r.Status.Validate() {
		return ierr.NewError("invalid test drive status").
			WithHintf("Status %q is not a valid test drive status", *r.Status).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *UpdateTestDriveRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	if r.PreferredDate != nil {
		changes["preferredDate"] = *r.PreferredDate
	}
	if r.PreferredTime != nil {
		changes["preferredTime"] = *r.PreferredTime
	}
	if r.AdditionalNotes != nil {
		changes["additionalNotes"] = *r.AdditionalNotes
	}
	return changes
}
