package dto

import (
	"context"
	"time"

	"github.com/nvamotors/dealership-api/internal/domain/promotion"
	"github.com/nvamotors/dealership-api/internal/types"
	"github.com/nvamotors/dealership-api/internal/validator"
)

type CreatePromotionRequest struct {
	Title         string    `json:"title" validate:"required,min=1,max=200"`
	Description   string    `json:"description" validate:"required,min=1,max=1000"`
	ValidUntil    time.Time `json:"valid_until" validate:"required"`
	PromotionType string    `json:"promotion_type" validate:"required,oneof=financing trade-in discount"`
	Image         string    `json:"image" validate:"omitempty,max=2048"`
	Terms         string    `json:"terms" validate:"omitempty,max=2000"`
	IsActive      *bool     `json:"is_active"`
}

type UpdatePromotionRequest struct {
	Title         *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string    `json:"description" validate:"omitempty,min=1,max=1000"`
	ValidUntil    *time.Time `json:"valid_until"`
	PromotionType *string    `json:"promotion_type" validate:"omitempty,oneof=financing trade-in discount"`
	Image         *string    `json:"image" validate:"omitempty,max=2048"`
	Terms         *string    `json:"terms" validate:"omitempty,max=2000"`
	IsActive      *bool      `json:"is_active"`
}

type PromotionResponse struct {
	*promotion.Promotion
}

type ListPromotionsResponse struct {
	Promotions []*PromotionResponse `json:"promotions"`
}

func (r *CreatePromotionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreatePromotionRequest) ToPromotion(ctx context.Context) *promotion.Promotion {
	now := time.Now().UTC()

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &promotion.Promotion{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROMOTION),
		Title:         r.Title,
		Description:   r.Description,
		ValidUntil:    r.ValidUntil.UTC(),
		PromotionType: r.PromotionType,
		Image:         r.Image,
		Terms:         r.Terms,
		IsActive:      isActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *UpdatePromotionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdatePromotionRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Title != nil {
		changes["title"] = *r.Title
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.ValidUntil != nil {
		changes["valid_until"] = r.ValidUntil.UTC()
	}
	if r.PromotionType != nil {
		changes["promotion_type"] = *r.PromotionType
	}
	if r.Image != nil {
		changes["image"] = *r.Image
	}
	if r.Terms != nil {
		changes["terms"] = *r.Terms
	}
	if r.IsActive != nil {
		changes["is_active"] = *r.IsActive
	}
	return changes
}
