package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	"github.com/nvamotors/dealership-api/internal/domain/testdrive"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/notification"
)

type TestDriveService interface {
	ScheduleTestDrive(ctx context.Context, req dto.ScheduleTestDriveRequest) (*dto.TestDriveResponse, error)
	GetTestDrive(ctx context.Context, id string) (*dto.TestDriveResponse, error)
	ListTestDrives(ctx context.Context) (*dto.ListTestDrivesResponse, error)
	UpdateTestDrive(ctx context.Context, id string, req dto.UpdateTestDriveRequest) (*dto.TestDriveResponse, error)
}

type testDriveService struct {
	ServiceParams
}

func NewTestDriveService(params ServiceParams) TestDriveService {
	return &testDriveService{
		ServiceParams: params,
	}
}

func (s *testDriveService) ScheduleTestDrive(ctx context.Context, req dto.ScheduleTestDriveRequest) (*dto.TestDriveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r := req.ToRequest(ctx)
	if err := s.TestDriveRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.Logger.Infow("scheduled test drive",
		"request_id", r.ID,
		"booking_code", r.BookingCode,
		"vehicle", r.SelectedVehicle)
	s.Notifier.DispatchAsync(notification.NewTestDriveEvent(r))

	return &dto.TestDriveResponse{Request: r}, nil
}

func (s *testDriveService) GetTestDrive(ctx context.Context, id string) (*dto.TestDriveResponse, error) {
	if id == "" {
		return nil, ierr.NewError("test drive ID is required").
			WithHint("Test drive ID is required").
			Mark(ierr.ErrValidation)
	}

	r, err := s.TestDriveRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TestDriveResponse{Request: r}, nil
}

func (s *testDriveService) ListTestDrives(ctx context.Context) (*dto.ListTestDrivesResponse, error) {
	requests, err := s.TestDriveRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ListTestDrivesResponse{
		Requests: lo.Map(requests, func(r *testdrive.Request, _ int) *dto.TestDriveResponse {
			return &dto.TestDriveResponse{Request: r}
		}),
	}, nil
}

func (s *testDriveService) UpdateTestDrive(ctx context.Context, id string, req dto.UpdateTestDriveRequest) (*dto.TestDriveResponse, error) {
	if id == "" {
		return nil, ierr.NewError("test drive ID is required").
			WithHint("Test drive ID is required").
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

	if _, err := s.TestDriveRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	r, err := s.TestDriveRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated test drive", "request_id", id, "status", r.Status)
	return &dto.TestDriveResponse{Request: r}, nil
}
