package dto

import (
	"context"
	"time"

	"github.com/nvamotors/dealership-api/internal/domain/contact"
	"github.com/nvamotors/dealership-api/internal/types"
	"github.com/nvamotors/dealership-api/internal/validator"
)

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type ContactSubmissionResponse struct {
	*contact.Submission
}

type ListContactSubmissionsResponse struct {
	Submissions []*ContactSubmissionResponse `json:"submissions"`
}

func (r *SubmitContactRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *SubmitContactRequest) ToSubmission(ctx context.Context) *contact.Submission {
	return &contact.Submission{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONTACT_SUBMISSION),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Message:   r.Message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
}

// SubmitCustomSearchRequest is the "find me a car" lead form. Everything
// beyond contact details is free text the customer may leave blank.
type SubmitCustomSearchRequest struct {
	Name                 string `json:"name" validate:"required,min=1,max=100"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Phone                string `json:"phone" validate:"omitempty,max=20"`
	PreferredBrand       string `json:"preferred_brand" validate:"omitempty,max=50"`
	BudgetRange          string `json:"budget_range" validate:"omitempty,max=50"`
	VehicleType          string `json:"vehicle_type" validate:"omitempty,max=50"`
	YearRange            string `json:"year_range" validate:"omitempty,max=50"`
	SpecificRequirements string `json:"specific_requirements" validate:"omitempty,max=2000"`
	Suggestions          string `json:"suggestions" validate:"omitempty,max=2000"`
}

type CustomSearchResponse struct {
	*contact.CustomSearchRequest
}

type ListCustomSearchesResponse struct {
	Requests []*CustomSearchResponse `json:"requests"`
}

func (r *SubmitCustomSearchRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *SubmitCustomSearchRequest) ToCustomSearchRequest(ctx context.Context) *contact.CustomSearchRequest {
	return &contact.CustomSearchRequest{
		ID:                   types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOM_SEARCH),
		Name:                 r.Name,
		Email:                r.Email,
		Phone:                r.Phone,
		PreferredBrand:       r.PreferredBrand,
		BudgetRange:          r.BudgetRange,
		VehicleType:          r.VehicleType,
		YearRange:            r.YearRange,
		SpecificRequirements: r.SpecificRequirements,
		Suggestions:          r.Suggestions,
		Status:               types.CustomSearchStatusPending,
		CreatedAt:            time.Now().UTC(),
	}
}
