package service

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/notification"
	"github.com/nvamotors/dealership-api/internal/testutil"
	"github.com/nvamotors/dealership-api/internal/types"
)

type TestDriveServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TestDriveService
}

func TestTestDriveService(t *testing.T) {
	suite.Run(t, new(TestDriveServiceSuite))
}

func (s *TestDriveServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewTestDriveService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *TestDriveServiceSuite) schedule() *dto.TestDriveResponse {
	resp, err := s.service.ScheduleTestDrive(s.GetContext(), dto.ScheduleTestDriveRequest{
		CustomerName:    "Maria Garcia",
		CustomerEmail:   "maria@example.com",
		CustomerPhone:   "+1 555 0100",
		SelectedVehicle: "Toyota Camry 2022",
		PreferredDate:   "2026-09-15",
		PreferredTime:   "10:30",
	})
	s.NoError(err)
	return resp
}

func (s *TestDriveServiceSuite) TestScheduleTestDrive() {
	resp := s.schedule()

	s.Contains(resp.Request.ID, "td_")
	s.True(strings.HasPrefix(resp.Request.BookingCode, "TD-"))
	s.LessOrEqual(len(resp.Request.BookingCode), 12)
	s.Equal(types.TestDriveStatusPending, resp.Request.Status)
	s.False(resp.Request.CreatedAt.IsZero())

	// booking triggers the dealership notification
	events := s.GetNotifier().Events()
	s.Len(events, 1)
	s.Equal(notification.EventTestDriveScheduled, events[0].Kind)
	s.Contains(events[0].Subject, resp.Request.BookingCode)

	// customer can look the booking up afterwards
	got, err := s.service.GetTestDrive(s.GetContext(), resp.Request.ID)
	s.NoError(err)
	s.Equal(resp.Request.BookingCode, got.Request.BookingCode)
}

func (s *TestDriveServiceSuite) TestScheduleTestDriveValidation() {
	testCases := []struct {
		name    string
		request dto.ScheduleTestDriveRequest
	}{
		{
			name: "invalid_email",
			request: dto.ScheduleTestDriveRequest{
				CustomerName:    "Maria",
				CustomerEmail:   "not-an-email",
				CustomerPhone:   "+1 555 0100",
				SelectedVehicle: "Toyota Camry",
				PreferredDate:   "2026-09-15",
				PreferredTime:   "10:30",
			},
		},
		{
			name: "missing_vehicle",
			request: dto.ScheduleTestDriveRequest{
				CustomerName:  "Maria",
				CustomerEmail: "maria@example.com",
				CustomerPhone: "+1 555 0100",
				PreferredDate: "2026-09-15",
				PreferredTime: "10:30",
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.ScheduleTestDrive(s.GetContext(), tc.request)
			s.Error(err)
			s.Nil(resp)
			s.True(ierr.IsValidation(err))
		})
	}

	// failed submissions never persist or notify
	list, err := s.service.ListTestDrives(s.GetContext())
	s.NoError(err)
	s.Len(list.Requests, 0)
	s.Len(s.GetNotifier().Events(), 0)
}

func (s *TestDriveServiceSuite) TestUpdateTestDriveStatus() {
	created := s.schedule()

	resp, err := s.service.UpdateTestDrive(s.GetContext(), created.Request.ID, dto.UpdateTestDriveRequest{
		Status: lo.ToPtr(types.TestDriveStatusConfirmed),
	})
	s.NoError(err)
	s.Equal(types.TestDriveStatusConfirmed, resp.Request.Status)
	s.Equal(created.Request.BookingCode, resp.Request.BookingCode)
}

func (s *TestDriveServiceSuite) TestUpdateTestDriveInvalidStatus() {
	created := s.schedule()

	_, err := s.service.UpdateTestDrive(s.GetContext(), created.Request.ID, dto.UpdateTestDriveRequest{
		Status: lo.ToPtr(types.TestDriveStatus("parked")),
	})
	s.True(ierr.IsValidation(err))
}

func (s *TestDriveServiceSuite) TestUpdateTestDriveEmptyChangeSet() {
	created := s.schedule()

	_, err := s.service.UpdateTestDrive(s.GetContext(), created.Request.ID, dto.UpdateTestDriveRequest{})
	s.True(ierr.IsInvalidOperation(err))
}

func (s *TestDriveServiceSuite) TestUpdateTestDriveNotFound() {
	_, err := s.service.UpdateTestDrive(s.GetContext(), "td_missing", dto.UpdateTestDriveRequest{
		Status: lo.ToPtr(types.TestDriveStatusCancelled),
	})
	s.True(ierr.IsNotFound(err))
}

func (s *TestDriveServiceSuite) TestBookingCodesAreUnique() {
	codes := make(map[string]bool)
	for i := 0; i < 10; i++ {
		resp := s.schedule()
		s.False(codes[resp.Request.BookingCode], "duplicate booking code %s", resp.Request.BookingCode)
		codes[resp.Request.BookingCode] = true
	}
}
