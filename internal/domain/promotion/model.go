package promotion

import (
	"time"
)

// Promotion is a time-bounded marketing offer. A promotion is publicly
// visible while IsActive is true and ValidUntil has not passed.
type Promotion struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	ValidUntil  time.Time `bson:"valid_until" json:"valid_until"`

	// PromotionType is one of financing, trade-in, discount
	PromotionType string `bson:"promotion_type" json:"promotion_type"`

	Image    string `bson:"image,omitempty" json:"image,omitempty"`
	Terms    string `bson:"terms,omitempty" json:"terms,omitempty"`
	IsActive bool   `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsCurrentlyValid reports whether the promotion is still redeemable at
// the given instant, comparing on date only.
func (p *Promotion) IsCurrentlyValid(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return p.IsActive && !p.ValidUntil.Before(today)
}
