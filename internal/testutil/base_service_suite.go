package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nvamotors/dealership-api/internal/config"
	"github.com/nvamotors/dealership-api/internal/domain/contact"
	"github.com/nvamotors/dealership-api/internal/domain/faq"
	"github.com/nvamotors/dealership-api/internal/domain/promotion"
	"github.com/nvamotors/dealership-api/internal/domain/testdrive"
	"github.com/nvamotors/dealership-api/internal/domain/testimonial"
	"github.com/nvamotors/dealership-api/internal/domain/vehicle"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/types"
	"github.com/nvamotors/dealership-api/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	VehicleRepo      vehicle.Repository
	FAQRepo          faq.Repository
	FAQQuestionRepo  faq.QuestionRepository
	PromotionRepo    promotion.Repository
	TestimonialRepo  testimonial.Repository
	TestDriveRepo    testdrive.Repository
	ContactRepo      contact.Repository
	CustomSearchRepo contact.CustomSearchRepository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	stores   Stores
	notifier *InMemoryNotifier
	logger   *logger.Logger
	config   *config.Configuration
	now      time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.notifier = NewInMemoryNotifier()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		VehicleRepo:      NewInMemoryVehicleStore(),
		FAQRepo:          NewInMemoryFAQStore(),
		FAQQuestionRepo:  NewInMemoryFAQQuestionStore(),
		PromotionRepo:    NewInMemoryPromotionStore(),
		TestimonialRepo:  NewInMemoryTestimonialStore(),
		TestDriveRepo:    NewInMemoryTestDriveStore(),
		ContactRepo:      NewInMemoryContactStore(),
		CustomSearchRepo: NewInMemoryCustomSearchStore(),
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.VehicleRepo.(*InMemoryVehicleStore).Clear()
	s.stores.FAQRepo.(*InMemoryFAQStore).Clear()
	s.stores.FAQQuestionRepo.(*InMemoryFAQQuestionStore).Clear()
	s.stores.PromotionRepo.(*InMemoryPromotionStore).Clear()
	s.stores.TestimonialRepo.(*InMemoryTestimonialStore).Clear()
	s.stores.TestDriveRepo.(*InMemoryTestDriveStore).Clear()
	s.stores.ContactRepo.(*InMemoryContactStore).Clear()
	s.stores.CustomSearchRepo.(*InMemoryCustomSearchStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetStores returns the test stores
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetNotifier returns the recording notifier
func (s *BaseServiceTestSuite) GetNotifier() *InMemoryNotifier {
	return s.notifier
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetConfig returns the test config
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
