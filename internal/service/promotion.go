package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	"github.com/nvamotors/dealership-api/internal/domain/promotion"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/types"
)

type PromotionService interface {
	CreatePromotion(ctx context.Context, req dto.CreatePromotionRequest) (*dto.PromotionResponse, error)
	GetPromotion(ctx context.Context, id string) (*dto.PromotionResponse, error)
	ListPromotions(ctx context.Context, filter *types.PromotionFilter) (*dto.ListPromotionsResponse, error)
	UpdatePromotion(ctx context.Context, id string, req dto.UpdatePromotionRequest) (*dto.PromotionResponse, error)
	DeletePromotion(ctx context.Context, id string) error
}

type promotionService struct {
	ServiceParams
}

func NewPromotionService(params ServiceParams) PromotionService {
	return &promotionService{
		ServiceParams: params,
	}
}

func (s *promotionService) CreatePromotion(ctx context.Context, req dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToPromotion(ctx)
	if err := s.PromotionRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created promotion", "promotion_id", p.ID, "type", p.PromotionType)
	return &dto.PromotionResponse{Promotion: p}, nil
}

func (s *promotionService) GetPromotion(ctx context.Context, id string) (*dto.PromotionResponse, error) {
	if id == "" {
		return nil, ierr.NewError("promotion ID is required").
			WithHint("Promotion ID is required").
			Mark(ierr.ErrValidation)
	}

	p, err := s.PromotionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PromotionResponse{Promotion: p}, nil
}

func (s *promotionService) ListPromotions(ctx context.Context, filter *types.PromotionFilter) (*dto.ListPromotionsResponse, error) {
	if filter == nil {
		filter = &types.PromotionFilter{}
	}

	promotions, err := s.PromotionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListPromotionsResponse{
		Promotions: lo.Map(promotions, func(p *promotion.Promotion, _ int) *dto.PromotionResponse {
			return &dto.PromotionResponse{Promotion: p}
		}),
	}, nil
}

func (s *promotionService) UpdatePromotion(ctx context.Context, id string, req dto.UpdatePromotionRequest) (*dto.PromotionResponse, error) {
	if id == "" {
		return nil, ierr.NewError("promotion ID is required").
			WithHint("Promotion ID is required").
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

	if _, err := s.PromotionRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	p, err := s.PromotionRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated promotion", "promotion_id", id)
	return &dto.PromotionResponse{Promotion: p}, nil
}

func (s *promotionService) DeletePromotion(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("promotion ID is required").
			WithHint("Promotion ID is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.PromotionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.Infow("deleted promotion", "promotion_id", id)
	return nil
}
