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

type VehicleServiceSuite struct {
	testutil.BaseServiceTestSuite
	service VehicleService
}

func TestVehicleService(t *testing.T) {
	suite.Run(t, new(VehicleServiceSuite))
}

func (s *VehicleServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewVehicleService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *VehicleServiceSuite) createVehicle(make, model string, year int, price float64, condition string) *dto.VehicleResponse {
	resp, err := s.service.CreateVehicle(s.GetContext(), dto.CreateVehicleRequest{
		Make:      make,
		Model:     model,
		Year:      year,
		Price:     price,
		Condition: condition,
	})
	s.NoError(err)
	s.NotNil(resp)
	return resp
}

func (s *VehicleServiceSuite) TestCreateVehicle() {
	testCases := []struct {
		name          string
		request       dto.CreateVehicleRequest
		expectedError bool
	}{
		{
			name: "successful_creation",
			request: dto.CreateVehicleRequest{
				Make:         "Toyota",
				Model:        "Camry",
				Year:         2022,
				Price:        24500,
				Mileage:      31000,
				Transmission: "Automatic",
				FuelType:     "Gasoline",
				Condition:    "used",
				Features:     []string{"Backup Camera"},
			},
			expectedError: false,
		},
		{
			name: "missing_make",
			request: dto.CreateVehicleRequest{
				Model: "Camry",
				Year:  2022,
			},
			expectedError: true,
		},
		{
			name: "year_below_range",
			request: dto.CreateVehicleRequest{
				Make:  "Toyota",
				Model: "Camry",
				Year:  1899,
			},
			expectedError: true,
		},
		{
			name: "year_above_range",
			request: dto.CreateVehicleRequest{
				Make:  "Toyota",
				Model: "Camry",
				Year:  2031,
			},
			expectedError: true,
		},
		{
			name: "negative_price",
			request: dto.CreateVehicleRequest{
				Make:  "Toyota",
				Model: "Camry",
				Year:  2022,
				Price: -1,
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.CreateVehicle(s.GetContext(), tc.request)

			if tc.expectedError {
				s.Error(err)
				s.Nil(resp)
				s.True(ierr.IsValidation(err))
			} else {
				s.NoError(err)
				s.NotNil(resp)
				s.NotEmpty(resp.Vehicle.ID)
				s.Contains(resp.Vehicle.ID, "veh_")
				s.Equal(tc.request.Make, resp.Vehicle.Make)
				s.NotNil(resp.Vehicle.Gallery)
				s.False(resp.Vehicle.CreatedAt.IsZero())

				// roundtrip through the store
				got, err := s.service.GetVehicle(s.GetContext(), resp.Vehicle.ID)
				s.NoError(err)
				s.Equal(resp.Vehicle.Make, got.Vehicle.Make)
			}
		})
	}
}

func (s *VehicleServiceSuite) TestGetVehicleNotFound() {
	resp, err := s.service.GetVehicle(s.GetContext(), "veh_missing")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *VehicleServiceSuite) TestListVehiclesFilters() {
	s.createVehicle("Toyota", "Camry", 2022, 24500, "used")
	s.createVehicle("Toyota", "Corolla", 2021, 19000, "used")
	s.createVehicle("Honda", "Civic", 2023, 26000, "new")
	s.createVehicle("Ford", "F-150", 2024, 48750, "new")

	testCases := []struct {
		name     string
		filter   *types.VehicleFilter
		expected int
	}{
		{
			name:     "no_filter",
			filter:   &types.VehicleFilter{},
			expected: 4,
		},
		{
			name:     "search_matches_make_case_insensitive",
			filter:   &types.VehicleFilter{Search: "toy"},
			expected: 2,
		},
		{
			name:     "search_matches_model",
			filter:   &types.VehicleFilter{Search: "civ"},
			expected: 1,
		},
		{
			name:     "make_exact",
			filter:   &types.VehicleFilter{Make: "Toyota"},
			expected: 2,
		},
		{
			name:     "make_all_is_no_filter",
			filter:   &types.VehicleFilter{Make: "all"},
			expected: 4,
		},
		{
			name:     "condition_exact",
			filter:   &types.VehicleFilter{Condition: "new"},
			expected: 2,
		},
		{
			name:     "price_range",
			filter:   &types.VehicleFilter{MinPrice: lo.ToPtr(20000.0), MaxPrice: lo.ToPtr(30000.0)},
			expected: 2,
		},
		{
			name:     "price_bounds_inclusive",
			filter:   &types.VehicleFilter{MinPrice: lo.ToPtr(24500.0), MaxPrice: lo.ToPtr(24500.0)},
			expected: 1,
		},
		{
			name: "clauses_combine_with_and",
			filter: &types.VehicleFilter{
				Make:      "Toyota",
				Condition: "used",
				MaxPrice:  lo.ToPtr(20000.0),
			},
			expected: 1,
		},
		{
			name:     "search_no_match",
			filter:   &types.VehicleFilter{Search: "tesla"},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.ListVehicles(s.GetContext(), tc.filter)
			s.NoError(err)
			s.Len(resp.Vehicles, tc.expected)
			s.Equal(int64(tc.expected), resp.Total)
		})
	}
}

func (s *VehicleServiceSuite) TestListVehiclesFilterValidation() {
	testCases := []struct {
		name   string
		filter *types.VehicleFilter
	}{
		{
			name:   "limit_too_small",
			filter: &types.VehicleFilter{QueryFilter: types.QueryFilter{Limit: lo.ToPtr(0)}},
		},
		{
			name:   "limit_too_large",
			filter: &types.VehicleFilter{QueryFilter: types.QueryFilter{Limit: lo.ToPtr(101)}},
		},
		{
			name:   "negative_offset",
			filter: &types.VehicleFilter{QueryFilter: types.QueryFilter{Offset: lo.ToPtr(-1)}},
		},
		{
			name:   "negative_min_price",
			filter: &types.VehicleFilter{MinPrice: lo.ToPtr(-1.0)},
		},
		{
			name:   "min_above_max",
			filter: &types.VehicleFilter{MinPrice: lo.ToPtr(100.0), MaxPrice: lo.ToPtr(50.0)},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.ListVehicles(s.GetContext(), tc.filter)
			s.Error(err)
			s.Nil(resp)
			s.True(ierr.IsValidation(err))
		})
	}
}

func (s *VehicleServiceSuite) TestListVehiclesPagination() {
	for i := 0; i < 5; i++ {
		s.createVehicle("Toyota", "Camry", 2020+i, 20000+float64(i)*1000, "used")
	}

	seen := make(map[string]bool)
	offset := 0
	for {
		resp, err := s.service.ListVehicles(s.GetContext(), &types.VehicleFilter{
			QueryFilter: types.QueryFilter{
				Limit:  lo.ToPtr(2),
				Offset: lo.ToPtr(offset),
			},
		})
		s.NoError(err)
		s.Equal(int64(5), resp.Total)

		for _, v := range resp.Vehicles {
			s.False(seen[v.Vehicle.ID], "vehicle %s returned twice", v.Vehicle.ID)
			seen[v.Vehicle.ID] = true
		}

		if !resp.HasMore {
			break
		}
		offset += len(resp.Vehicles)
	}

	s.Len(seen, 5)
}

func (s *VehicleServiceSuite) TestUpdateVehicle() {
	created := s.createVehicle("Toyota", "Camry", 2022, 24500, "used")

	resp, err := s.service.UpdateVehicle(s.GetContext(), created.Vehicle.ID, dto.UpdateVehicleRequest{
		Price:   lo.ToPtr(23000.0),
		Mileage: lo.ToPtr(35000),
	})
	s.NoError(err)

	// named fields change, the rest stay put
	s.Equal(23000.0, resp.Vehicle.Price)
	s.Equal(35000, resp.Vehicle.Mileage)
	s.Equal("Toyota", resp.Vehicle.Make)
	s.Equal("Camry", resp.Vehicle.Model)
	s.Equal(2022, resp.Vehicle.Year)
	s.True(resp.Vehicle.UpdatedAt.After(created.Vehicle.UpdatedAt) ||
		resp.Vehicle.UpdatedAt.Equal(created.Vehicle.UpdatedAt))
}

func (s *VehicleServiceSuite) TestUpdateVehicleEmptyChangeSet() {
	created := s.createVehicle("Toyota", "Camry", 2022, 24500, "used")

	resp, err := s.service.UpdateVehicle(s.GetContext(), created.Vehicle.ID, dto.UpdateVehicleRequest{})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *VehicleServiceSuite) TestUpdateVehicleNotFound() {
	resp, err := s.service.UpdateVehicle(s.GetContext(), "veh_missing", dto.UpdateVehicleRequest{
		Price: lo.ToPtr(1000.0),
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *VehicleServiceSuite) TestDeleteVehicle() {
	created := s.createVehicle("Toyota", "Camry", 2022, 24500, "used")

	s.NoError(s.service.DeleteVehicle(s.GetContext(), created.Vehicle.ID))

	_, err := s.service.GetVehicle(s.GetContext(), created.Vehicle.ID)
	s.True(ierr.IsNotFound(err))

	// deleting again reports not found
	err = s.service.DeleteVehicle(s.GetContext(), created.Vehicle.ID)
	s.True(ierr.IsNotFound(err))
}
