package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	_ "github.com/nvamotors/dealership-api/docs/swagger"
	"github.com/nvamotors/dealership-api/internal/api"
	v1 "github.com/nvamotors/dealership-api/internal/api/v1"
	"github.com/nvamotors/dealership-api/internal/config"
	"github.com/nvamotors/dealership-api/internal/email"
	"github.com/nvamotors/dealership-api/internal/logger"
	mongostore "github.com/nvamotors/dealership-api/internal/mongo"
	"github.com/nvamotors/dealership-api/internal/notification"
	repository "github.com/nvamotors/dealership-api/internal/repository/mongo"
	"github.com/nvamotors/dealership-api/internal/service"
	"github.com/nvamotors/dealership-api/internal/sms"
	"github.com/nvamotors/dealership-api/internal/validator"
)

// @title NVAMOTORS Dealership API
// @version 1.0
// @description REST backend for the NVAMOTORS dealership marketing site
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Document store
			mongostore.NewClient,

			// Notification channels
			provideEmailClient,
			provideSMSClient,
			notification.NewDispatcher,

			// Repositories
			repository.NewVehicleRepository,
			repository.NewFAQRepository,
			repository.NewFAQQuestionRepository,
			repository.NewPromotionRepository,
			repository.NewTestimonialRepository,
			repository.NewTestDriveRepository,
			repository.NewContactRepository,
			repository.NewCustomSearchRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewVehicleService,
			service.NewFAQService,
			service.NewPromotionService,
			service.NewTestimonialService,
			service.NewTestDriveService,
			service.NewContactService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideEmailClient(cfg *config.Configuration) *email.Client {
	return email.NewClient(cfg.Email)
}

func provideSMSClient(cfg *config.Configuration) *sms.Client {
	return sms.NewClient(cfg.SMS)
}

func provideHandlers(
	cfg *config.Configuration,
	logger *logger.Logger,
	vehicleService service.VehicleService,
	faqService service.FAQService,
	promotionService service.PromotionService,
	testimonialService service.TestimonialService,
	testDriveService service.TestDriveService,
	contactService service.ContactService,
) api.Handlers {
	return api.Handlers{
		Health:      v1.NewHealthHandler(logger),
		Vehicle:     v1.NewVehicleHandler(vehicleService, logger),
		FAQ:         v1.NewFAQHandler(faqService, logger),
		Promotion:   v1.NewPromotionHandler(promotionService, logger),
		Testimonial: v1.NewTestimonialHandler(testimonialService, logger),
		TestDrive:   v1.NewTestDriveHandler(testDriveService, logger),
		Contact:     v1.NewContactHandler(contactService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	client mongostore.IClient,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return client.Close(ctx)
		},
	})
}
