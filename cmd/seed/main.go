package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nvamotors/dealership-api/internal/config"
	"github.com/nvamotors/dealership-api/internal/domain/faq"
	"github.com/nvamotors/dealership-api/internal/domain/promotion"
	"github.com/nvamotors/dealership-api/internal/domain/testimonial"
	"github.com/nvamotors/dealership-api/internal/domain/vehicle"
	"github.com/nvamotors/dealership-api/internal/logger"
	mongostore "github.com/nvamotors/dealership-api/internal/mongo"
	repository "github.com/nvamotors/dealership-api/internal/repository/mongo"
	"github.com/nvamotors/dealership-api/internal/types"
)

// Seeds the document store with the initial site content. Collections
// that already hold documents are left untouched so reruns are safe.
func main() {
	godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		panic(err)
	}

	client, err := mongostore.NewClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Close(ctx)

	seedVehicles(ctx, client, log)
	seedFAQs(ctx, client, log)
	seedPromotions(ctx, client, log)
	seedTestimonials(ctx, client, log)

	log.Info("Seeding complete")
}

func collectionEmpty(ctx context.Context, client mongostore.IClient, name string, log *logger.Logger) bool {
	count, err := client.Collection(name).CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count %s: %v", name, err)
	}
	if count > 0 {
		log.Infow("collection already seeded, skipping", "collection", name, "count", count)
		return false
	}
	return true
}

func seedVehicles(ctx context.Context, client mongostore.IClient, log *logger.Logger) {
	if !collectionEmpty(ctx, client, "vehicles", log) {
		return
	}

	repo := repository.NewVehicleRepository(client, log)
	now := time.Now().UTC()

	vehicles := []*vehicle.Vehicle{
		{
			ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VEHICLE),
			Make:         "Toyota",
			Model:        "Camry",
			Year:         2022,
			Price:        24500,
			Mileage:      31000,
			Transmission: "Automatic",
			FuelType:     "Gasoline",
			Condition:    "used",
			Image:        "https://images.nvamotors.com/vehicles/toyota-camry-2022.jpg",
			Gallery:      []string{},
			Features:     []string{"Backup Camera", "Bluetooth", "Lane Assist"},
			Description:  "Well maintained sedan with a single previous owner.",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VEHICLE),
			Make:         "Honda",
			Model:        "CR-V",
			Year:         2023,
			Price:        31900,
			Mileage:      12000,
			Transmission: "Automatic",
			FuelType:     "Hybrid",
			Condition:    "used",
			Image:        "https://images.nvamotors.com/vehicles/honda-crv-2023.jpg",
			Gallery:      []string{},
			Features:     []string{"All Wheel Drive", "Sunroof", "Heated Seats"},
			Description:  "Low mileage hybrid SUV, still under factory warranty.",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VEHICLE),
			Make:         "Ford",
			Model:        "F-150",
			Year:         2024,
			Price:        48750,
			Mileage:      0,
			Transmission: "Automatic",
			FuelType:     "Gasoline",
			Condition:    "new",
			Image:        "https://images.nvamotors.com/vehicles/ford-f150-2024.jpg",
			Gallery:      []string{},
			Features:     []string{"Towing Package", "Crew Cab", "Touchscreen"},
			Description:  "Brand new work truck ready for delivery.",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	for _, v := range vehicles {
		if err := repo.Create(ctx, v); err != nil {
			log.Fatalf("Failed to seed vehicle: %v", err)
		}
	}
	log.Infow("seeded vehicles", "count", len(vehicles))
}

func seedFAQs(ctx context.Context, client mongostore.IClient, log *logger.Logger) {
	if !collectionEmpty(ctx, client, "faqs", log) {
		return
	}

	repo := repository.NewFAQRepository(client, log)
	now := time.Now().UTC()

	faqs := []*faq.FAQ{
		{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FAQ),
			Question:  "Do you offer financing?",
			Answer:    "Yes, we work with several lenders and can tailor a plan to your budget.",
			Category:  "financing",
			Order:     1,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FAQ),
			Question:  "Can I trade in my current vehicle?",
			Answer:    "Absolutely. Bring it in for a free appraisal and we will apply the value to your purchase.",
			Category:  "trade-in",
			Order:     2,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FAQ),
			Question:  "Are your used vehicles inspected?",
			Answer:    "Every used vehicle passes a multi point inspection before it goes on the lot.",
			Category:  "inventory",
			Order:     3,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for _, f := range faqs {
		if err := repo.Create(ctx, f); err != nil {
			log.Fatalf("Failed to seed faq: %v", err)
		}
	}
	log.Infow("seeded faqs", "count", len(faqs))
}

func seedPromotions(ctx context.Context, client mongostore.IClient, log *logger.Logger) {
	if !collectionEmpty(ctx, client, "promotions", log) {
		return
	}

	repo := repository.NewPromotionRepository(client, log)
	now := time.Now().UTC()

	promotions := []*promotion.Promotion{
		{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROMOTION),
			Title:         "0% APR for 36 Months",
			Description:   "Qualified buyers pay no interest on select new models.",
			ValidUntil:    now.AddDate(0, 3, 0),
			PromotionType: "financing",
			Terms:         "On approved credit. See dealer for details.",
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROMOTION),
			Title:         "$1,000 Trade-In Bonus",
			Description:   "Extra value on top of your appraisal when you trade up this season.",
			ValidUntil:    now.AddDate(0, 1, 0),
			PromotionType: "trade-in",
			Terms:         "One bonus per transaction.",
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	for _, p := range promotions {
		if err := repo.Create(ctx, p); err != nil {
			log.Fatalf("Failed to seed promotion: %v", err)
		}
	}
	log.Infow("seeded promotions", "count", len(promotions))
}

func seedTestimonials(ctx context.Context, client mongostore.IClient, log *logger.Logger) {
	if !collectionEmpty(ctx, client, "testimonials", log) {
		return
	}

	repo := repository.NewTestimonialRepository(client, log)
	now := time.Now().UTC()

	testimonials := []*testimonial.Testimonial{
		{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TESTIMONIAL),
			Name:       "Maria G.",
			Rating:     5,
			Comment:    "The team made buying my first car painless. Highly recommend.",
			Vehicle:    "Toyota Camry",
			Date:       now,
			IsApproved: true,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TESTIMONIAL),
			Name:       "James R.",
			Rating:     4,
			Comment:    "Fair trade-in value and a quick close. Would buy here again.",
			Vehicle:    "Ford F-150",
			Date:       now,
			IsApproved: true,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	for _, t := range testimonials {
		if err := repo.Create(ctx, t); err != nil {
			log.Fatalf("Failed to seed testimonial: %v", err)
		}
	}
	log.Infow("seeded testimonials", "count", len(testimonials))
}
