package vehicle

import (
	"time"
)

// Vehicle represents a vehicle listing on the marketing site
type Vehicle struct {
	// ID is the public identifier, distinct from the store's native _id
	ID string `bson:"id" json:"id"`

	// Make is the vehicle manufacturer, e.g. Toyota
	Make string `bson:"make" json:"make"`

	// Model is the manufacturer model name, e.g. Camry
	Model string `bson:"model" json:"model"`

	// Year is the model year, bounded to 1900-2030 at the API boundary
	Year int `bson:"year" json:"year"`

	// Price is the listing price, never negative
	Price float64 `bson:"price" json:"price"`

	// Mileage is the odometer reading, never negative
	Mileage int `bson:"mileage" json:"mileage"`

	Transmission string `bson:"transmission" json:"transmission"`
	FuelType     string `bson:"fuel_type" json:"fuel_type"`
	Condition    string `bson:"condition" json:"condition"`

	// Image is the primary listing photo URL
	Image string `bson:"image" json:"image"`

	// Gallery holds additional photo URLs, defaults to an empty list
	Gallery []string `bson:"gallery" json:"gallery"`

	// Features holds highlight bullet points, defaults to an empty list
	Features []string `bson:"features" json:"features"`

	Description string `bson:"description" json:"description"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
