package dto

import (
	"context"
	"time"

	"github.com/nvamotors/dealership-api/internal/domain/faq"
	"github.com/nvamotors/dealership-api/internal/types"
	"github.com/nvamotors/dealership-api/internal/validator"
)

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required,min=1,max=500"`
	Answer   string `json:"answer" validate:"required,min=1,max=2000"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Order    int    `json:"order" validate:"gte=0"`
	IsActive *bool  `json:"is_active"`
}

type UpdateFAQRequest struct {
	Question *string `json:"question" validate:"omitempty,min=1,max=500"`
	Answer   *string `json:"answer" validate:"omitempty,min=1,max=2000"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
	IsActive *bool   `json:"is_active"`
}

type FAQResponse struct {
	*faq.FAQ
}

type ListFAQsResponse struct {
	FAQs []*FAQResponse `json:"faqs"`
}

func (r *CreateFAQRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateFAQRequest) ToFAQ(ctx context.Context) *faq.FAQ {
	now := time.Now().UTC()

	// New FAQs go live immediately unless the request says otherwise.
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &faq.FAQ{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FAQ),
		Question:  r.Question,
		Answer:    r.Answer,
		Category:  r.Category,
		Order:     r.Order,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *UpdateFAQRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateFAQRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Question != nil {
		changes["question"] = *r.Question
	}
	if r.Answer != nil {
		changes["answer"] = *r.Answer
	}
	if r.Category != nil {
		changes["category"] = *r.Category
	}
	if r.Order != nil {
		changes["order"] = *r.Order
	}
	if r.IsActive != nil {
		changes["is_active"] = *r.IsActive
	}
	return changes
}

// SubmitFAQQuestionRequest is the public "ask us anything" form.
type SubmitFAQQuestionRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Question string `json:"question" validate:"required,min=1,max=1000"`
}

type FAQQuestionResponse struct {
	*faq.Question
}

type ListFAQQuestionsResponse struct {
	Questions []*FAQQuestionResponse `json:"questions"`
}

func (r *SubmitFAQQuestionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *SubmitFAQQuestionRequest) ToQuestion(ctx context.Context) *faq.Question {
	return &faq.Question{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FAQ_QUESTION),
		Name:      r.Name,
		Email:     r.Email,
		Question:  r.Question,
		Status:    types.FAQQuestionStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}
