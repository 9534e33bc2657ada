package testutil

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/domain/promotion"
	"github.com/nvamotors/dealership-api/internal/types"
)

// InMemoryPromotionStore implements promotion.Repository
type InMemoryPromotionStore struct {
	*InMemoryStore[*promotion.Promotion]
}

func NewInMemoryPromotionStore() *InMemoryPromotionStore {
	return &InMemoryPromotionStore{
		InMemoryStore: NewInMemoryStore[*promotion.Promotion](),
	}
}

func copyPromotion(p *promotion.Promotion) *promotion.Promotion {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func promotionFilterFn(ctx context.Context, p *promotion.Promotion, filter interface{}) bool {
	f, ok := filter.(*types.PromotionFilter)
	if !ok || f == nil {
		return true
	}
	if f.GetActiveOnly() {
		return p.IsCurrentlyValid(time.Now().UTC())
	}
	return true
}

func promotionSortFn(i, j *promotion.Promotion) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryPromotionStore) Create(ctx context.Context, p *promotion.Promotion) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyPromotion(p))
}

func (s *InMemoryPromotionStore) Get(ctx context.Context, id string) (*promotion.Promotion, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyPromotion(p), nil
}

func (s *InMemoryPromotionStore) List(ctx context.Context, filter *types.PromotionFilter) ([]*promotion.Promotion, error) {
	items, err := s.InMemoryStore.List(ctx, filter, promotionFilterFn, promotionSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(p *promotion.Promotion, _ int) *promotion.Promotion {
		return copyPromotion(p)
	}), nil
}

func (s *InMemoryPromotionStore) Update(ctx context.Context, id string, changes map[string]any) (*promotion.Promotion, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := copyPromotion(p)
	for key, value := range changes {
		switch key {
		case "title":
			updated.Title = value.(string)
		case "description":
			updated.Description = value.(string)
		case "valid_until":
			updated.ValidUntil = value.(time.Time)
		case "promotion_type":
			updated.PromotionType = value.(string)
		case "image":
			updated.Image = value.(string)
		case "terms":
			updated.Terms = value.(string)
		case "is_active":
			updated.IsActive = value.(bool)
		}
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.InMemoryStore.Update(ctx, id, updated); err != nil {
		return nil, err
	}
	return copyPromotion(updated), nil
}

func (s *InMemoryPromotionStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
