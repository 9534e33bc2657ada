package testutil

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/domain/vehicle"
	"github.com/nvamotors/dealership-api/internal/types"
)

// InMemoryVehicleStore implements vehicle.Repository
type InMemoryVehicleStore struct {
	*InMemoryStore[*vehicle.Vehicle]
}

func NewInMemoryVehicleStore() *InMemoryVehicleStore {
	return &InMemoryVehicleStore{
		InMemoryStore: NewInMemoryStore[*vehicle.Vehicle](),
	}
}

func copyVehicle(v *vehicle.Vehicle) *vehicle.Vehicle {
	if v == nil {
		return nil
	}

	cp := *v
	cp.Gallery = append([]string{}, v.Gallery...)
	cp.Features = append([]string{}, v.Features...)
	return &cp
}

// vehicleFilterFn mirrors the store query: free-text search ORs across
// make and model, everything else ANDs.
func vehicleFilterFn(ctx context.Context, v *vehicle.Vehicle, filter interface{}) bool {
	f, ok := filter.(*types.VehicleFilter)
	if !ok || f == nil {
		return true
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(v.Make), needle) &&
			!strings.Contains(strings.ToLower(v.Model), needle) {
			return false
		}
	}

	if f.Make != "" && f.Make != "all" && v.Make != f.Make {
		return false
	}

	if f.Condition != "" && f.Condition != "all" && v.Condition != f.Condition {
		return false
	}

	if f.MinPrice != nil && v.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && v.Price > *f.MaxPrice {
		return false
	}

	return true
}

func vehicleSortFn(i, j *vehicle.Vehicle) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryVehicleStore) Create(ctx context.Context, v *vehicle.Vehicle) error {
	return s.InMemoryStore.Create(ctx, v.ID, copyVehicle(v))
}

func (s *InMemoryVehicleStore) Get(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	v, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyVehicle(v), nil
}

func (s *InMemoryVehicleStore) List(ctx context.Context, filter *types.VehicleFilter) ([]*vehicle.Vehicle, error) {
	items, err := s.InMemoryStore.List(ctx, filter, vehicleFilterFn, vehicleSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(v *vehicle.Vehicle, _ int) *vehicle.Vehicle {
		return copyVehicle(v)
	}), nil
}

func (s *InMemoryVehicleStore) Count(ctx context.Context, filter *types.VehicleFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, vehicleFilterFn)
}

func (s *InMemoryVehicleStore) Update(ctx context.Context, id string, changes map[string]any) (*vehicle.Vehicle, error) {
	v, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := copyVehicle(v)
	for key, value := range changes {
		switch key {
		case "make":
			updated.Make = value.(string)
		case "model":
			updated.Model = value.(string)
		case "year":
			updated.Year = value.(int)
		case "price":
			updated.Price = value.(float64)
		case "mileage":
			updated.Mileage = value.(int)
		case "transmission":
			updated.Transmission = value.(string)
		case "fuel_type":
			updated.FuelType = value.(string)
		case "condition":
			updated.Condition = value.(string)
		case "image":
			updated.Image = value.(string)
		case "gallery":
			updated.Gallery = value.([]string)
		case "features":
			updated.Features = value.([]string)
		case "description":
			updated.Description = value.(string)
		}
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.InMemoryStore.Update(ctx, id, updated); err != nil {
		return nil, err
	}
	return copyVehicle(updated), nil
}

func (s *InMemoryVehicleStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
