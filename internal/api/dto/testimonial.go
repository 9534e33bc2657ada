package dto

import (
	"context"
	"time"

	"github.com/nvamotors/dealership-api/internal/domain/testimonial"
	"github.com/nvamotors/dealership-api/internal/types"
	"github.com/nvamotors/dealership-api/internal/validator"
)

type CreateTestimonialRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,min=1,max=1000"`
	Vehicle string `json:"vehicle" validate:"omitempty,max=100"`
}

type UpdateTestimonialRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	Rating     *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment    *string `json:"comment" validate:"omitempty,min=1,max=1000"`
	Vehicle    *string `json:"vehicle" validate:"omitempty,max=100"`
	IsApproved *bool   `json:"is_approved"`
}

type TestimonialResponse struct {
	*testimonial.Testimonial
}

type ListTestimonialsResponse struct {
	Testimonials []*TestimonialResponse `json:"testimonials"`
}

func (r *CreateTestimonialRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateTestimonialRequest) ToTestimonial(ctx context.Context) *testimonial.Testimonial {
	now := time.Now().UTC()

	// Public submissions wait for moderation before they show up.
	return &testimonial.Testimonial{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TESTIMONIAL),
		Name:       r.Name,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Vehicle:    r.Vehicle,
		Date:       now,
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (r *UpdateTestimonialRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateTestimonialRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Rating != nil {
		changes["rating"] = *r.Rating
	}
	if r.Comment != nil {
		changes["comment"] = *r.Comment
	}
	if r.Vehicle != nil {
		changes["vehicle"] = *r.Vehicle
	}
	if r.IsApproved != nil {
		changes["is_approved"] = *r.IsApproved
	}
	return changes
}
