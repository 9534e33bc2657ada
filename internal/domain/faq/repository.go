package faq

import "context"

// Repository defines the interface for FAQ data access. FAQs are never
// deleted, only deactivated via partial update.
type Repository interface {
	Create(ctx context.Context, f *FAQ) error
	Get(ctx context.Context, id string) (*FAQ, error)
	// ListActive returns active FAQs ordered ascending by Order.
	ListActive(ctx context.Context) ([]*FAQ, error)
	Update(ctx context.Context, id string, changes map[string]any) (*FAQ, error)
}

// QuestionRepository defines the interface for customer question data
// access. Questions are append-only.
type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	List(ctx context.Context) ([]*Question, error)
}
