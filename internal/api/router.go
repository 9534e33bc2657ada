package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	v1 "github.com/nvamotors/dealership-api/internal/api/v1"
	"github.com/nvamotors/dealership-api/internal/config"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/rest/middleware"
)

type Handlers struct {
	Health      *v1.HealthHandler
	Vehicle     *v1.VehicleHandler
	FAQ         *v1.FAQHandler
	Promotion   *v1.PromotionHandler
	Testimonial *v1.TestimonialHandler
	TestDrive   *v1.TestDriveHandler
	Contact     *v1.ContactHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/api/v1")
	registerV1Routes(v1Group, handlers, cfg, logger)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, cfg *config.Configuration, logger *logger.Logger) {
	admin := middleware.AdminAuthMiddleware(cfg, logger)

	// Vehicle routes: listings are public, catalog management is admin
	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", handlers.Vehicle.ListVehicles)
		vehicles.GET("/:id", handlers.Vehicle.GetVehicle)
		vehicles.POST("", admin, handlers.Vehicle.CreateVehicle)
		vehicles.PUT("/:id", admin, handlers.Vehicle.UpdateVehicle)
		vehicles.DELETE("/:id", admin, handlers.Vehicle.DeleteVehicle)
	}

	// FAQ routes: customers read FAQs and ask questions, admins curate
	faqs := router.Group("/faqs")
	{
		faqs.GET("", handlers.FAQ.ListFAQs)
		faqs.POST("", admin, handlers.FAQ.CreateFAQ)
		faqs.PUT("/:id", admin, handlers.FAQ.UpdateFAQ)
		faqs.POST("/questions", handlers.FAQ.SubmitQuestion)
		faqs.GET("/questions", admin, handlers.FAQ.ListQuestions)
	}

	// Promotion routes
	promotions := router.Group("/promotions")
	{
		promotions.GET("", handlers.Promotion.ListPromotions)
		promotions.GET("/:id", handlers.Promotion.GetPromotion)
		promotions.POST("", admin, handlers.Promotion.CreatePromotion)
		promotions.PUT("/:id", admin, handlers.Promotion.UpdatePromotion)
		promotions.DELETE("/:id", admin, handlers.Promotion.DeletePromotion)
	}

	// Testimonial routes: anyone can submit, moderation is admin
	testimonials := router.Group("/testimonials")
	{
		testimonials.GET("", handlers.Testimonial.ListTestimonials)
		testimonials.POST("", handlers.Testimonial.SubmitTestimonial)
		testimonials.PUT("/:id", admin, handlers.Testimonial.UpdateTestimonial)
		testimonials.DELETE("/:id", admin, handlers.Testimonial.DeleteTestimonial)
	}

	// Test drive routes: customers book and look up their own request
	testDrives := router.Group("/test-drives")
	{
		testDrives.POST("", handlers.TestDrive.ScheduleTestDrive)
		testDrives.GET("/:id", handlers.TestDrive.GetTestDrive)
		testDrives.GET("", admin, handlers.TestDrive.ListTestDrives)
		testDrives.PUT("/:id", admin, handlers.TestDrive.UpdateTestDrive)
	}

	// Contact routes
	contact := router.Group("/contact")
	{
		contact.POST("", handlers.Contact.SubmitContact)
		contact.GET("", admin, handlers.Contact.ListContactSubmissions)
	}

	customSearch := router.Group("/custom-search")
	{
		customSearch.POST("", handlers.Contact.SubmitCustomSearch)
		customSearch.GET("", admin, handlers.Contact.ListCustomSearches)
	}
}
