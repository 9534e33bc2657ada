package testimonial

import (
	"time"
)

// Testimonial is a customer review. Submissions start unapproved and
// stay out of public listings until an admin approves them.
type Testimonial struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Rating  int    `bson:"rating" json:"rating"`
	Comment string `bson:"comment" json:"comment"`

	// Vehicle optionally names the purchased vehicle
	Vehicle string `bson:"vehicle,omitempty" json:"vehicle,omitempty"`

	Date       time.Time `bson:"date" json:"date"`
	IsApproved bool      `bson:"is_approved" json:"is_approved"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
