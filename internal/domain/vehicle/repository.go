package vehicle

import (
	"context"

	"github.com/nvamotors/dealership-api/internal/types"
)

// Repository defines the interface for vehicle data access
type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	Get(ctx context.Context, id string) (*Vehicle, error)
	List(ctx context.Context, filter *types.VehicleFilter) ([]*Vehicle, error)
	Count(ctx context.Context, filter *types.VehicleFilter) (int, error)
	// Update applies the sparse change-set atomically to the single
	// document matching id and returns the post-update entity.
	Update(ctx context.Context, id string, changes map[string]any) (*Vehicle, error)
	Delete(ctx context.Context, id string) error
}
