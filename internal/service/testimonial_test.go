package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/testutil"
	"github.com/nvamotors/dealership-api/internal/types"
)

type TestimonialServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TestimonialService
}

func TestTestimonialService(t *testing.T) {
	suite.Run(t, new(TestimonialServiceSuite))
}

func (s *TestimonialServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewTestimonialService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *TestimonialServiceSuite) TestSubmitTestimonialStartsUnapproved() {
	resp, err := s.service.SubmitTestimonial(s.GetContext(), dto.CreateTestimonialRequest{
		Name:    "Maria G.",
		Rating:  5,
		Comment: "Great experience.",
		Vehicle: "Toyota Camry",
	})
	s.NoError(err)
	s.Contains(resp.Testimonial.ID, "tstm_")
	s.False(resp.Testimonial.IsApproved)
}

func (s *TestimonialServiceSuite) TestSubmitTestimonialRatingBounds() {
	testCases := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{name: "rating_zero", rating: 0, wantErr: true},
		{name: "rating_one", rating: 1, wantErr: false},
		{name: "rating_five", rating: 5, wantErr: false},
		{name: "rating_six", rating: 6, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.SubmitTestimonial(s.GetContext(), dto.CreateTestimonialRequest{
				Name:    "Maria G.",
				Rating:  tc.rating,
				Comment: "Great experience.",
			})
			if tc.wantErr {
				s.Error(err)
				s.True(ierr.IsValidation(err))
			} else {
				s.NoError(err)
				s.Equal(tc.rating, resp.Testimonial.Rating)
			}
		})
	}
}

func (s *TestimonialServiceSuite) TestListTestimonialsApprovedOnlyDefault() {
	submitted, err := s.service.SubmitTestimonial(s.GetContext(), dto.CreateTestimonialRequest{
		Name:    "Maria G.",
		Rating:  5,
		Comment: "Great experience.",
	})
	s.NoError(err)

	// hidden until approved
	resp, err := s.service.ListTestimonials(s.GetContext(), &types.TestimonialFilter{})
	s.NoError(err)
	s.Len(resp.Testimonials, 0)

	// admins can still see everything
	resp, err = s.service.ListTestimonials(s.GetContext(), &types.TestimonialFilter{
		ApprovedOnly: lo.ToPtr(false),
	})
	s.NoError(err)
	s.Len(resp.Testimonials, 1)

	// approval makes it public
	_, err = s.service.UpdateTestimonial(s.GetContext(), submitted.Testimonial.ID, dto.UpdateTestimonialRequest{
		IsApproved: lo.ToPtr(true),
	})
	s.NoError(err)

	resp, err = s.service.ListTestimonials(s.GetContext(), &types.TestimonialFilter{})
	s.NoError(err)
	s.Len(resp.Testimonials, 1)
	s.True(resp.Testimonials[0].IsApproved)
}

func (s *TestimonialServiceSuite) TestUpdateTestimonialEmptyChangeSet() {
	submitted, err := s.service.SubmitTestimonial(s.GetContext(), dto.CreateTestimonialRequest{
		Name:    "Maria G.",
		Rating:  5,
		Comment: "Great experience.",
	})
	s.NoError(err)

	_, err = s.service.UpdateTestimonial(s.GetContext(), submitted.Testimonial.ID, dto.UpdateTestimonialRequest{})
	s.True(ierr.IsInvalidOperation(err))
}

func (s *TestimonialServiceSuite) TestUpdateTestimonialNotFound() {
	_, err := s.service.UpdateTestimonial(s.GetContext(), "tstm_missing", dto.UpdateTestimonialRequest{
		IsApproved: lo.ToPtr(true),
	})
	s.True(ierr.IsNotFound(err))
}

func (s *TestimonialServiceSuite) TestDeleteTestimonial() {
	submitted, err := s.service.SubmitTestimonial(s.GetContext(), dto.CreateTestimonialRequest{
		Name:    "Maria G.",
		Rating:  5,
		Comment: "Great experience.",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteTestimonial(s.GetContext(), submitted.Testimonial.ID))

	err = s.service.DeleteTestimonial(s.GetContext(), submitted.Testimonial.ID)
	s.True(ierr.IsNotFound(err))
}
