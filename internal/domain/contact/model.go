package contact

import (
	"time"

	"github.com/nvamotors/dealership-api/internal/types"
)

// Submission is a contact form entry from the public site.
type Submission struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string `bson:"subject" json:"subject"`
	Message string `bson:"message" json:"message"`

	IsRead      bool       `bson:"is_read" json:"is_read"`
	RespondedAt *time.Time `bson:"responded_at,omitempty" json:"responded_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CustomSearchRequest is a "find me a car" lead: the customer describes
// what they want and staff take it from there.
type CustomSearchRequest struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`

	PreferredBrand       string `bson:"preferred_brand,omitempty" json:"preferred_brand,omitempty"`
	BudgetRange          string `bson:"budget_range,omitempty" json:"budget_range,omitempty"`
	VehicleType          string `bson:"vehicle_type,omitempty" json:"vehicle_type,omitempty"`
	YearRange            string `bson:"year_range,omitempty" json:"year_range,omitempty"`
	SpecificRequirements string `bson:"specific_requirements,omitempty" json:"specific_requirements,omitempty"`
	Suggestions          string `bson:"suggestions,omitempty" json:"suggestions,omitempty"`

	Status     types.CustomSearchStatus `bson:"status" json:"status"`
	AssignedTo string                   `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	Notes      string                   `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
