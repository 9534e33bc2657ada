package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/notification"
	"github.com/nvamotors/dealership-api/internal/testutil"
	"github.com/nvamotors/dealership-api/internal/types"
)

type ContactServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ContactService
}

func TestContactService(t *testing.T) {
	suite.Run(t, new(ContactServiceSuite))
}

func (s *ContactServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewContactService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *ContactServiceSuite) TestSubmitContact() {
	resp, err := s.service.SubmitContact(s.GetContext(), dto.SubmitContactRequest{
		Name:    "John Smith",
		Email:   "john@example.com",
		Phone:   "+1 555 0123",
		Subject: "Financing options",
		Message: "Do you offer financing on certified pre-owned vehicles?",
	})
	s.NoError(err)
	s.Contains(resp.ID, "contact_")
	s.False(resp.IsRead)
	s.False(resp.CreatedAt.IsZero())

	events := s.GetNotifier().Events()
	s.Len(events, 1)
	s.Equal(notification.EventContactSubmitted, events[0].Kind)
	s.Contains(events[0].Subject, "Financing options")
}

func (s *ContactServiceSuite) TestSubmitContactValidation() {
	testCases := []struct {
		name    string
		request dto.SubmitContactRequest
	}{
		{
			name: "invalid_email",
			request: dto.SubmitContactRequest{
				Name:    "John",
				Email:   "not-an-email",
				Subject: "Hello",
				Message: "Hi",
			},
		},
		{
			name: "missing_message",
			request: dto.SubmitContactRequest{
				Name:    "John",
				Email:   "john@example.com",
				Subject: "Hello",
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.SubmitContact(s.GetContext(), tc.request)
			s.Error(err)
			s.Nil(resp)
			s.True(ierr.IsValidation(err))
		})
	}

	list, err := s.service.ListContactSubmissions(s.GetContext())
	s.NoError(err)
	s.Len(list.Submissions, 0)
	s.Len(s.GetNotifier().Events(), 0)
}

func (s *ContactServiceSuite) TestListContactSubmissionsNewestFirst() {
	for _, subject := range []string{"first", "second", "third"} {
		_, err := s.service.SubmitContact(s.GetContext(), dto.SubmitContactRequest{
			Name:    "John Smith",
			Email:   "john@example.com",
			Subject: subject,
			Message: "message body",
		})
		s.NoError(err)
		time.Sleep(time.Millisecond)
	}

	list, err := s.service.ListContactSubmissions(s.GetContext())
	s.NoError(err)
	s.Len(list.Submissions, 3)
	s.Equal("third", list.Submissions[0].Subject)
	s.Equal("first", list.Submissions[2].Subject)
}

func (s *ContactServiceSuite) TestSubmitCustomSearch() {
	resp, err := s.service.SubmitCustomSearch(s.GetContext(), dto.SubmitCustomSearchRequest{
		Name:           "Ana Lopez",
		Email:          "ana@example.com",
		PreferredBrand: "Honda",
		BudgetRange:    "$15,000 - $20,000",
		VehicleType:    "SUV",
	})
	s.NoError(err)
	s.Contains(resp.ID, "csr_")
	s.Equal(types.CustomSearchStatusPending, resp.Status)

	events := s.GetNotifier().Events()
	s.Len(events, 1)
	s.Equal(notification.EventCustomSearchSubmitted, events[0].Kind)
	s.Contains(events[0].Subject, "Ana Lopez")
}

func (s *ContactServiceSuite) TestSubmitCustomSearchValidation() {
	resp, err := s.service.SubmitCustomSearch(s.GetContext(), dto.SubmitCustomSearchRequest{
		Name:  "Ana Lopez",
		Email: "nope",
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))

	list, err := s.service.ListCustomSearches(s.GetContext())
	s.NoError(err)
	s.Len(list.Requests, 0)
	s.Len(s.GetNotifier().Events(), 0)
}

func (s *ContactServiceSuite) TestListCustomSearches() {
	for i := 0; i < 2; i++ {
		_, err := s.service.SubmitCustomSearch(s.GetContext(), dto.SubmitCustomSearchRequest{
			Name:  "Ana Lopez",
			Email: "ana@example.com",
		})
		s.NoError(err)
	}

	list, err := s.service.ListCustomSearches(s.GetContext())
	s.NoError(err)
	s.Len(list.Requests, 2)
}
