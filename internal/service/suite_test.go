package service

import (
	"github.com/nvamotors/dealership-api/internal/testutil"
)

// newTestParams wires service params from the suite's in-memory stores.
func newTestParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		VehicleRepo:      stores.VehicleRepo,
		FAQRepo:          stores.FAQRepo,
		FAQQuestionRepo:  stores.FAQQuestionRepo,
		PromotionRepo:    stores.PromotionRepo,
		TestimonialRepo:  stores.TestimonialRepo,
		TestDriveRepo:    stores.TestDriveRepo,
		ContactRepo:      stores.ContactRepo,
		CustomSearchRepo: stores.CustomSearchRepo,
		Notifier:         s.GetNotifier(),
	}
}
