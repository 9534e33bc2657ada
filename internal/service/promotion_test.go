package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/testutil"
	"github.com/nvamotors/dealership-api/internal/types"
)

type PromotionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PromotionService
}

func TestPromotionService(t *testing.T) {
	suite.Run(t, new(PromotionServiceSuite))
}

func (s *PromotionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPromotionService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *PromotionServiceSuite) createPromotion(title string, validUntil time.Time, active bool) *dto.PromotionResponse {
	resp, err := s.service.CreatePromotion(s.GetContext(), dto.CreatePromotionRequest{
		Title:         title,
		Description:   "Limited time offer.",
		ValidUntil:    validUntil,
		PromotionType: "financing",
		IsActive:      lo.ToPtr(active),
	})
	s.NoError(err)
	return resp
}

func (s *PromotionServiceSuite) TestCreatePromotion() {
	resp := s.createPromotion("0% APR", s.GetNow().AddDate(0, 1, 0), true)
	s.Contains(resp.Promotion.ID, "promo_")
	s.Equal("financing", resp.Promotion.PromotionType)
}

func (s *PromotionServiceSuite) TestCreatePromotionInvalidType() {
	resp, err := s.service.CreatePromotion(s.GetContext(), dto.CreatePromotionRequest{
		Title:         "Mystery Deal",
		Description:   "Something.",
		ValidUntil:    s.GetNow().AddDate(0, 1, 0),
		PromotionType: "mystery",
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
}

func (s *PromotionServiceSuite) TestListPromotionsActiveOnlyDefault() {
	s.createPromotion("Current", s.GetNow().AddDate(0, 1, 0), true)
	s.createPromotion("Expired", s.GetNow().AddDate(0, 0, -2), true)
	s.createPromotion("Disabled", s.GetNow().AddDate(0, 1, 0), false)

	resp, err := s.service.ListPromotions(s.GetContext(), &types.PromotionFilter{})
	s.NoError(err)
	s.Len(resp.Promotions, 1)
	s.Equal("Current", resp.Promotions[0].Title)
}

func (s *PromotionServiceSuite) TestListPromotionsAll() {
	s.createPromotion("Current", s.GetNow().AddDate(0, 1, 0), true)
	s.createPromotion("Expired", s.GetNow().AddDate(0, 0, -2), true)

	resp, err := s.service.ListPromotions(s.GetContext(), &types.PromotionFilter{
		ActiveOnly: lo.ToPtr(false),
	})
	s.NoError(err)
	s.Len(resp.Promotions, 2)
}

func (s *PromotionServiceSuite) TestPromotionValidThroughEndOfDay() {
	// a promotion expiring today stays listed; the comparison is by date
	today := time.Date(s.GetNow().Year(), s.GetNow().Month(), s.GetNow().Day(), 0, 0, 0, 0, time.UTC)
	s.createPromotion("Last Day", today, true)

	resp, err := s.service.ListPromotions(s.GetContext(), &types.PromotionFilter{})
	s.NoError(err)
	s.Len(resp.Promotions, 1)
}

func (s *PromotionServiceSuite) TestUpdatePromotion() {
	created := s.createPromotion("0% APR", s.GetNow().AddDate(0, 1, 0), true)

	resp, err := s.service.UpdatePromotion(s.GetContext(), created.Promotion.ID, dto.UpdatePromotionRequest{
		Title:    lo.ToPtr("0% APR Extended"),
		IsActive: lo.ToPtr(false),
	})
	s.NoError(err)
	s.Equal("0% APR Extended", resp.Promotion.Title)
	s.False(resp.Promotion.IsActive)
	s.Equal("Limited time offer.", resp.Promotion.Description)
}

func (s *PromotionServiceSuite) TestUpdatePromotionEmptyChangeSet() {
	created := s.createPromotion("0% APR", s.GetNow().AddDate(0, 1, 0), true)

	_, err := s.service.UpdatePromotion(s.GetContext(), created.Promotion.ID, dto.UpdatePromotionRequest{})
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PromotionServiceSuite) TestUpdatePromotionNotFound() {
	_, err := s.service.UpdatePromotion(s.GetContext(), "promo_missing", dto.UpdatePromotionRequest{
		Title: lo.ToPtr("Anything"),
	})
	s.True(ierr.IsNotFound(err))
}

func (s *PromotionServiceSuite) TestDeletePromotion() {
	created := s.createPromotion("0% APR", s.GetNow().AddDate(0, 1, 0), true)

	s.NoError(s.service.DeletePromotion(s.GetContext(), created.Promotion.ID))

	_, err := s.service.GetPromotion(s.GetContext(), created.Promotion.ID)
	s.True(ierr.IsNotFound(err))

	err = s.service.DeletePromotion(s.GetContext(), created.Promotion.ID)
	s.True(ierr.IsNotFound(err))
}
