package faq

import (
	"time"

	"github.com/nvamotors/dealership-api/internal/types"
)

// FAQ is a curated question/answer pair shown on the site, ordered by
// the Order field ascending. Inactive FAQs never appear publicly.
type FAQ struct {
	ID       string `bson:"id" json:"id"`
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`
	Order    int    `bson:"order" json:"order"`
	IsActive bool   `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Question is a customer submitted question awaiting an answer.
type Question struct {
	ID       string                  `bson:"id" json:"id"`
	Name     string                  `bson:"name" json:"name"`
	Email    string                  `bson:"email" json:"email"`
	Question string                  `bson:"question" json:"question"`
	Status   types.FAQQuestionStatus `bson:"status" json:"status"`

	// Answer and AnsweredAt are set only once the question is answered.
	Answer     *string    `bson:"answer,omitempty" json:"answer,omitempty"`
	AnsweredAt *time.Time `bson:"answered_at,omitempty" json:"answered_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
