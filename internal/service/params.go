package service

import (
	"github.com/nvamotors/dealership-api/internal/config"
	"github.com/nvamotors/dealership-api/internal/domain/contact"
	"github.com/nvamotors/dealership-api/internal/domain/faq"
	"github.com/nvamotors/dealership-api/internal/domain/promotion"
	"github.com/nvamotors/dealership-api/internal/domain/testdrive"
	"github.com/nvamotors/dealership-api/internal/domain/testimonial"
	"github.com/nvamotors/dealership-api/internal/domain/vehicle"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/notification"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	VehicleRepo      vehicle.Repository
	FAQRepo          faq.Repository
	FAQQuestionRepo  faq.QuestionRepository
	PromotionRepo    promotion.Repository
	TestimonialRepo  testimonial.Repository
	TestDriveRepo    testdrive.Repository
	ContactRepo      contact.Repository
	CustomSearchRepo contact.CustomSearchRepository

	Notifier notification.Notifier
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	vehicleRepo vehicle.Repository,
	faqRepo faq.Repository,
	faqQuestionRepo faq.QuestionRepository,
	promotionRepo promotion.Repository,
	testimonialRepo testimonial.Repository,
	testDriveRepo testdrive.Repository,
	contactRepo contact.Repository,
	customSearchRepo contact.CustomSearchRepository,
	notifier notification.Notifier,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		VehicleRepo:      vehicleRepo,
		FAQRepo:          faqRepo,
		FAQQuestionRepo:  faqQuestionRepo,
		PromotionRepo:    promotionRepo,
		TestimonialRepo:  testimonialRepo,
		TestDriveRepo:    testDriveRepo,
		ContactRepo:      contactRepo,
		CustomSearchRepo: customSearchRepo,
		Notifier:         notifier,
	}
}
