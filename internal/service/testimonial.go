package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	"github.com/nvamotors/dealership-api/internal/domain/testimonial"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/types"
)

type TestimonialService interface {
	SubmitTestimonial(ctx context.Context, req dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error)
	ListTestimonials(ctx context.Context, filter *types.TestimonialFilter) (*dto.ListTestimonialsResponse, error)
	UpdateTestimonial(ctx context.Context, id string, req dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

type testimonialService struct {
	ServiceParams
}

func NewTestimonialService(params ServiceParams) TestimonialService {
	return &testimonialService{
		ServiceParams: params,
	}
}

func (s *testimonialService) SubmitTestimonial(ctx context.Context, req dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := req.ToTestimonial(ctx)
	if err := s.TestimonialRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.Logger.Infow("submitted testimonial", "testimonial_id", t.ID, "rating", t.Rating)
	return &dto.TestimonialResponse{Testimonial: t}, nil
}

func (s *testimonialService) ListTestimonials(ctx context.Context, filter *types.TestimonialFilter) (*dto.ListTestimonialsResponse, error) {
	if filter == nil {
		filter = &types.TestimonialFilter{}
	}

	testimonials, err := s.TestimonialRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListTestimonialsResponse{
		Testimonials: lo.Map(testimonials, func(t *testimonial.Testimonial, _ int) *dto.TestimonialResponse {
			return &dto.TestimonialResponse{Testimonial: t}
		}),
	}, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, id string, req dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error) {
	if id == "" {
		return nil, ierr.NewError("testimonial ID is required").
			WithHint("Testimonial ID is required").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return nil, ierr.NewError("nothing to update").
			WithHint("Provide at least one field to update").
			Mark(ierr.ErrInvalidOperation)
	}

	if _, err := s.TestimonialRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	t, err := s.TestimonialRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated testimonial", "testimonial_id", id)
	return &dto.TestimonialResponse{Testimonial: t}, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("testimonial ID is required").
			WithHint("Testimonial ID is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.TestimonialRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.Infow("deleted testimonial", "testimonial_id", id)
	return nil
}
