package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	"github.com/nvamotors/dealership-api/internal/domain/vehicle"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/types"
)

type VehicleService interface {
	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	GetVehicle(ctx context.Context, id string) (*dto.VehicleResponse, error)
	ListVehicles(ctx context.Context, filter *types.VehicleFilter) (*dto.ListVehiclesResponse, error)
	UpdateVehicle(ctx context.Context, id string, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, id string) error
}

type vehicleService struct {
	ServiceParams
}

func NewVehicleService(params ServiceParams) VehicleService {
	return &vehicleService{
		ServiceParams: params,
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v := req.ToVehicle(ctx)
	if err := s.VehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.Logger.Infow("created vehicle", "vehicle_id", v.ID, "make", v.Make, "model", v.Model)
	return &dto.VehicleResponse{Vehicle: v}, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	if id == "" {
		return nil, ierr.NewError("vehicle ID is required").
			WithHint("Vehicle ID is required").
			Mark(ierr.ErrValidation)
	}

	v, err := s.VehicleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.VehicleResponse{Vehicle: v}, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter *types.VehicleFilter) (*dto.ListVehiclesResponse, error) {
	if filter == nil {
		filter = &types.VehicleFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	// Count runs against the same filter so pagination math stays
	// consistent with the page contents.
	total, err := s.VehicleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.VehicleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListVehiclesResponse{
		Vehicles: lo.Map(vehicles, func(v *vehicle.Vehicle, _ int) *dto.VehicleResponse {
			return &dto.VehicleResponse{Vehicle: v}
		}),
		Total:   int64(total),
		HasMore: filter.GetOffset()+len(vehicles) < total,
	}, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id string, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	if id == "" {
		return nil, ierr.NewError("vehicle ID is required").
			WithHint("Vehicle ID is required").
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

	// Existence first so a missing vehicle reads as not found rather
	// than a failed update.
	if _, err := s.VehicleRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	v, err := s.VehicleRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated vehicle", "vehicle_id", id)
	return &dto.VehicleResponse{Vehicle: v}, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("vehicle ID is required").
			WithHint("Vehicle ID is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.VehicleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.Infow("deleted vehicle", "vehicle_id", id)
	return nil
}
