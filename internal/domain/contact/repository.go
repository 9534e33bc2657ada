package contact

import "context"

// Repository defines the interface for contact submission data access.
// Submissions are append-only.
type Repository interface {
	Create(ctx context.Context, s *Submission) error
	List(ctx context.Context) ([]*Submission, error)
}

// CustomSearchRepository defines the interface for custom search
// request data access. Requests are append-only.
type CustomSearchRepository interface {
	Create(ctx context.Context, r *CustomSearchRequest) error
	List(ctx context.Context) ([]*CustomSearchRequest, error)
}
