package promotion

import (
	"context"

	"github.com/nvamotors/dealership-api/internal/types"
)

// Repository defines the interface for promotion data access
type Repository interface {
	Create(ctx context.Context, p *Promotion) error
	Get(ctx context.Context, id string) (*Promotion, error)
	List(ctx context.Context, filter *types.PromotionFilter) ([]*Promotion, error)
	Update(ctx context.Context, id string, changes map[string]any) (*Promotion, error)
	Delete(ctx context.Context, id string) error
}
